package usecase

import (
	"context"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	"MetricPull/pkg/config"
)

const PanelDerivatives = "derivatives"

// NewDerivativesPanel wires the derivatives panel. Basis sign and the
// long/short balance are classified locally; LiqFallback is raised when
// the liquidation feed answered for a proxy symbol.
func NewDerivativesPanel(cfg *config.Config, src repository.DerivativesSource, deps PanelDeps) *Panel[models.DerivativesSnapshot] {
	symbol := cfg.Symbol
	build := func(ctx context.Context) (*models.DerivativesSnapshot, error) {
		var (
			oi      *models.OpenInterestResponse
			funding *models.FundingRateResponse
			basis   *models.Basis1mResponse
			lsr     *models.LongShortRatioResponse
			liq     *models.Liquidations24hResponse
			elr     *models.EstimatedLeverageResponse
		)
		err := RunBatch(ctx,
			FetchInto("open-interest", &oi, func(ctx context.Context) (*models.OpenInterestResponse, error) {
				return src.OpenInterest(ctx, symbol)
			}),
			FetchInto("funding-rate", &funding, func(ctx context.Context) (*models.FundingRateResponse, error) {
				return src.FundingRate(ctx, symbol)
			}),
			FetchInto("basis-1m", &basis, func(ctx context.Context) (*models.Basis1mResponse, error) {
				return src.Basis1m(ctx, symbol)
			}),
			FetchInto("long-short-ratio", &lsr, func(ctx context.Context) (*models.LongShortRatioResponse, error) {
				return src.LongShortRatio(ctx, symbol)
			}),
			FetchInto("liquidations-24h", &liq, func(ctx context.Context) (*models.Liquidations24hResponse, error) {
				return src.Liquidations24h(ctx, symbol)
			}),
			FetchInto("estimated-leverage", &elr, func(ctx context.Context) (*models.EstimatedLeverageResponse, error) {
				return src.EstimatedLeverage(ctx, symbol)
			}),
		)
		if err != nil {
			return nil, err
		}

		snap := &models.DerivativesSnapshot{
			OiH1:             oi.Oi.H1,
			OiH4:             oi.Oi.H4,
			FundingRatePct:   funding.FundingRatePct,
			FundingTime:      funding.FundingTime,
			BasisRate:        basis.BasisRate,
			Annualized1M:     basis.Annualized1M,
			BasisSign:        BasisSignFor(basis.BasisRate),
			LongShortRatio:   lsr.LongShortRatio,
			LongAccount:      lsr.LongAccount,
			ShortAccount:     lsr.ShortAccount,
			PositionBalance:  PositionBalanceFor(lsr.LongShortRatio),
			LiqCount:         liq.Count,
			LiqTotalNotional: liq.TotalNotional,
			LiqBuy:           liq.BySide.Buy,
			LiqSell:          liq.BySide.Sell,
			Elr:              elr.Elr,
			OiUsd:            elr.OiUsd,
			Sources: map[string]string{
				"open-interest":      oi.Source,
				"funding-rate":       funding.Source,
				"basis-1m":           basis.Source,
				"long-short-ratio":   lsr.Source,
				"liquidations-24h":   liq.Source,
				"estimated-leverage": elr.Source,
			},
		}
		if liq.SymbolQueried != "" {
			s := liq.SymbolQueried
			snap.LiqSymbol = &s
			snap.LiqFallback = liq.SymbolQueried != symbol
		}
		return snap, nil
	}
	return NewPanel(PanelDerivatives, cfg.Panels.Derivatives.Interval, build, deps)
}
