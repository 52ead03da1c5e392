package repository

import (
	"context"

	"MetricPull/internal/domain/models"
)

// TendenciesSource fetches the trend-indicator group from the remote
// analytics API. One method per endpoint; implementations must honor
// ctx cancellation.
type TendenciesSource interface {
	Ema200(ctx context.Context, symbol string) (*models.Ema200Response, error)
	Ema50(ctx context.Context, symbol string) (*models.Ema50Response, error)
	Ema21(ctx context.Context, symbol string) (*models.Ema21Response, error)
	Ema200Slope(ctx context.Context, symbol string) (*models.Ema200SlopeResponse, error)
	HHHL(ctx context.Context, symbol string) (*models.HHHLResponse, error)
	Rsi14(ctx context.Context, symbol string) (*models.Rsi14Response, error)
	MacdHistogram(ctx context.Context, symbol string) (*models.MacdHistogramResponse, error)
}

type VolatilitySource interface {
	Atr14(ctx context.Context, symbol string) (*models.Atr14Response, error)
	Atr14Pct(ctx context.Context, symbol string) (*models.Atr14PctResponse, error)
	BbWidth(ctx context.Context, symbol string) (*models.BbWidthResponse, error)
	Squeeze(ctx context.Context, symbol string) (*models.SqueezeResponse, error)
	VwapDistance(ctx context.Context, symbol string) (*models.VwapDistanceResponse, error)
	AtrPctPercentile(ctx context.Context, symbol string) (*models.AtrPctPercentileResponse, error)
}

type FlowSource interface {
	VolumeMa20(ctx context.Context, symbol string) (*models.VolumeMa20Response, error)
	ObvSlope(ctx context.Context, symbol string) (*models.ObvSlopeResponse, error)
	Cvd1h(ctx context.Context, symbol string) (*models.Cvd1hResponse, error)
	BuySellRatio(ctx context.Context, symbol string) (*models.BuySellRatioResponse, error)
	OrderbookImbalance(ctx context.Context, symbol string) (*models.OrderbookImbalanceResponse, error)
}

type DerivativesSource interface {
	OpenInterest(ctx context.Context, symbol string) (*models.OpenInterestResponse, error)
	FundingRate(ctx context.Context, symbol string) (*models.FundingRateResponse, error)
	Basis1m(ctx context.Context, pair string) (*models.Basis1mResponse, error)
	LongShortRatio(ctx context.Context, symbol string) (*models.LongShortRatioResponse, error)
	Liquidations24h(ctx context.Context, symbol string) (*models.Liquidations24hResponse, error)
	EstimatedLeverage(ctx context.Context, symbol string) (*models.EstimatedLeverageResponse, error)
}

// SessionSource fetches the session-context group. Sessions and MacroFlag
// are global endpoints and take no symbol; Avwap takes an optional anchor
// timestamp (0 means let the server pick the default anchor).
type SessionSource interface {
	VwapDaily(ctx context.Context, symbol string) (*models.VwapDailyResponse, error)
	Avwap(ctx context.Context, symbol string, anchorTs int64) (*models.AvwapResponse, error)
	PrevDayHiLo(ctx context.Context, symbol string) (*models.PrevDayHiLoResponse, error)
	OpeningRange60(ctx context.Context, symbol string) (*models.OpeningRangeResponse, error)
	Sessions(ctx context.Context) (*models.SessionsResponse, error)
	MacroFlag(ctx context.Context) (*models.MacroFlagResponse, error)
}

type Metrics interface {
	RecordRefresh(panel string, success bool, seconds float64)
	RecordLastRefresh(panel string, unixSeconds float64)
	RecordUpstreamError(kind string)
}
