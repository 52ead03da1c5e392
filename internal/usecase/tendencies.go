package usecase

import (
	"context"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	"MetricPull/pkg/config"
)

const PanelTendencies = "tendencies"

// NewTendenciesPanel wires the trend panel: seven indicator calls joined
// into one snapshot. Structure bias is classified locally from the swing
// sequences; the remote bias label is ignored.
func NewTendenciesPanel(cfg *config.Config, src repository.TendenciesSource, deps PanelDeps) *Panel[models.TendenciesSnapshot] {
	symbol := cfg.Symbol
	build := func(ctx context.Context) (*models.TendenciesSnapshot, error) {
		var (
			ema200 *models.Ema200Response
			ema50  *models.Ema50Response
			ema21  *models.Ema21Response
			slope  *models.Ema200SlopeResponse
			hhhl   *models.HHHLResponse
			rsi    *models.Rsi14Response
			macd   *models.MacdHistogramResponse
		)
		err := RunBatch(ctx,
			FetchInto("ema200", &ema200, func(ctx context.Context) (*models.Ema200Response, error) {
				return src.Ema200(ctx, symbol)
			}),
			FetchInto("ema50", &ema50, func(ctx context.Context) (*models.Ema50Response, error) {
				return src.Ema50(ctx, symbol)
			}),
			FetchInto("ema21", &ema21, func(ctx context.Context) (*models.Ema21Response, error) {
				return src.Ema21(ctx, symbol)
			}),
			FetchInto("ema200-slope", &slope, func(ctx context.Context) (*models.Ema200SlopeResponse, error) {
				return src.Ema200Slope(ctx, symbol)
			}),
			FetchInto("hhhl", &hhhl, func(ctx context.Context) (*models.HHHLResponse, error) {
				return src.HHHL(ctx, symbol)
			}),
			FetchInto("rsi14", &rsi, func(ctx context.Context) (*models.Rsi14Response, error) {
				return src.Rsi14(ctx, symbol)
			}),
			FetchInto("macd-histogram", &macd, func(ctx context.Context) (*models.MacdHistogramResponse, error) {
				return src.MacdHistogram(ctx, symbol)
			}),
		)
		if err != nil {
			return nil, err
		}

		snap := &models.TendenciesSnapshot{
			Ema200H1:      ema200.Ema200.H1,
			Ema200H4:      ema200.Ema200.H4,
			Ema50H1:       ema50.Ema50.H1,
			Ema21H1:       ema21.Ema21.H1,
			SlopeH1:       classifiedSlope(slope.Ema200Slope.H1),
			SlopeH4:       classifiedSlope(slope.Ema200Slope.H4),
			HighSeq:       hhhl.HighSeq,
			LowSeq:        hhhl.LowSeq,
			StructureBias: StructureBias(hhhl.HighSeq, hhhl.LowSeq),
			Rsi14:         rsi.Rsi,
			MacdHistogram: macd.Histogram,
			Sources: map[string]string{
				"ema200":         ema200.Source,
				"ema50":          ema50.Source,
				"ema21":          ema21.Source,
				"ema200-slope":   slope.Source,
				"hhhl":           hhhl.Source,
				"rsi14":          rsi.Source,
				"macd-histogram": macd.Source,
			},
		}
		if rsi.Rsi != nil {
			b := rsi.Bias
			snap.RsiBias = &b
		}
		if macd.Histogram != nil {
			s := macd.Sign
			snap.MacdSign = &s
		}
		return snap, nil
	}
	return NewPanel(PanelTendencies, cfg.Panels.Tendencies.Interval, build, deps)
}

// classifiedSlope copies a slope with its sign rederived from pctPerBar,
// so the label always agrees with the displayed number.
func classifiedSlope(s *models.Slope) *models.Slope {
	if s == nil {
		return nil
	}
	cp := *s
	if sign := TriSignFor(&cp.PctPerBar); sign != nil {
		cp.Sign = *sign
	}
	return &cp
}
