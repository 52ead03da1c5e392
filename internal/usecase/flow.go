package usecase

import (
	"context"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	"MetricPull/pkg/config"
)

const PanelFlow = "flow"

// NewFlowPanel wires the order-flow panel. Volume state, flow balance and
// book pressure are classified locally from the raw numbers.
func NewFlowPanel(cfg *config.Config, src repository.FlowSource, deps PanelDeps) *Panel[models.FlowSnapshot] {
	symbol := cfg.Symbol
	highRatio := cfg.Panels.Flow.VolumeHighRatio
	lowRatio := cfg.Panels.Flow.VolumeLowRatio
	build := func(ctx context.Context) (*models.FlowSnapshot, error) {
		var (
			vol  *models.VolumeMa20Response
			obv  *models.ObvSlopeResponse
			cvd  *models.Cvd1hResponse
			bsr  *models.BuySellRatioResponse
			book *models.OrderbookImbalanceResponse
		)
		err := RunBatch(ctx,
			FetchInto("volume-ma20", &vol, func(ctx context.Context) (*models.VolumeMa20Response, error) {
				return src.VolumeMa20(ctx, symbol)
			}),
			FetchInto("obv-slope", &obv, func(ctx context.Context) (*models.ObvSlopeResponse, error) {
				return src.ObvSlope(ctx, symbol)
			}),
			FetchInto("cvd1h", &cvd, func(ctx context.Context) (*models.Cvd1hResponse, error) {
				return src.Cvd1h(ctx, symbol)
			}),
			FetchInto("buy-sell-ratio", &bsr, func(ctx context.Context) (*models.BuySellRatioResponse, error) {
				return src.BuySellRatio(ctx, symbol)
			}),
			FetchInto("orderbook-imbalance", &book, func(ctx context.Context) (*models.OrderbookImbalanceResponse, error) {
				return src.OrderbookImbalance(ctx, symbol)
			}),
		)
		if err != nil {
			return nil, err
		}

		return &models.FlowSnapshot{
			LastVolume:      vol.LastVolume,
			VolumeMa20:      vol.Ma20,
			VolumeRatio:     vol.Ratio,
			VolumeState:     VolumeStateFor(vol.Ratio, highRatio, lowRatio),
			Obv:             obv.Obv,
			ObvPctPerBar:    obv.PctPerBar,
			ObvSign:         TriSignFor(obv.PctPerBar),
			BuysVolume:      cvd.BuysVolume,
			SellsVolume:     cvd.SellsVolume,
			Cvd:             cvd.Cvd,
			BuySellRatioPct: bsr.BuySellRatioPct,
			FlowBalance:     FlowBalanceFor(bsr.BuySellRatioPct),
			BidVolume:       book.BidVolume,
			AskVolume:       book.AskVolume,
			ImbalancePct:    book.ImbalancePct,
			BookPressure:    BookPressureFor(book.ImbalancePct),
			Sources: map[string]string{
				"volume-ma20":         vol.Source,
				"obv-slope":           obv.Source,
				"cvd1h":               cvd.Source,
				"buy-sell-ratio":      bsr.Source,
				"orderbook-imbalance": book.Source,
			},
		}, nil
	}
	return NewPanel(PanelFlow, cfg.Panels.Flow.Interval, build, deps)
}
