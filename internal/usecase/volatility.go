package usecase

import (
	"context"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	"MetricPull/pkg/config"
)

const PanelVolatility = "volatility"

// NewVolatilityPanel wires the volatility panel. The squeeze state is a
// passthrough of the remote enum.
func NewVolatilityPanel(cfg *config.Config, src repository.VolatilitySource, deps PanelDeps) *Panel[models.VolatilitySnapshot] {
	symbol := cfg.Symbol
	build := func(ctx context.Context) (*models.VolatilitySnapshot, error) {
		var (
			atr     *models.Atr14Response
			atrPct  *models.Atr14PctResponse
			bb      *models.BbWidthResponse
			squeeze *models.SqueezeResponse
			vwap    *models.VwapDistanceResponse
			pctile  *models.AtrPctPercentileResponse
		)
		err := RunBatch(ctx,
			FetchInto("atr14", &atr, func(ctx context.Context) (*models.Atr14Response, error) {
				return src.Atr14(ctx, symbol)
			}),
			FetchInto("atr14pct", &atrPct, func(ctx context.Context) (*models.Atr14PctResponse, error) {
				return src.Atr14Pct(ctx, symbol)
			}),
			FetchInto("bbwidth", &bb, func(ctx context.Context) (*models.BbWidthResponse, error) {
				return src.BbWidth(ctx, symbol)
			}),
			FetchInto("squeeze", &squeeze, func(ctx context.Context) (*models.SqueezeResponse, error) {
				return src.Squeeze(ctx, symbol)
			}),
			FetchInto("vwap-distance", &vwap, func(ctx context.Context) (*models.VwapDistanceResponse, error) {
				return src.VwapDistance(ctx, symbol)
			}),
			FetchInto("atrpct-percentile", &pctile, func(ctx context.Context) (*models.AtrPctPercentileResponse, error) {
				return src.AtrPctPercentile(ctx, symbol)
			}),
		)
		if err != nil {
			return nil, err
		}

		snap := &models.VolatilitySnapshot{
			Atr14:            atr.Atr,
			AtrPct:           atrPct.AtrPct,
			BbWidthAbs:       bb.WidthAbs,
			BbWidthPct:       bb.WidthPct,
			InSqueeze:        squeeze.InSqueeze,
			Vwap:             vwap.Vwap,
			Close:            vwap.Close,
			VwapDistAbs:      vwap.DistanceAbs,
			VwapDistPct:      vwap.DistancePct,
			AtrPctCurrent:    pctile.CurrentAtrPct,
			AtrPctPercentile: pctile.Percentile,
			AtrPctSamples:    pctile.Samples,
			Sources: map[string]string{
				"atr14":             atr.Source,
				"atr14pct":          atrPct.Source,
				"bbwidth":           bb.Source,
				"squeeze":           squeeze.Source,
				"vwap-distance":     vwap.Source,
				"atrpct-percentile": pctile.Source,
			},
		}
		if squeeze.InSqueeze != nil {
			st := squeeze.State
			snap.SqueezeState = &st
		}
		return snap, nil
	}
	return NewPanel(PanelVolatility, cfg.Panels.Volatility.Interval, build, deps)
}
