package models

// Responses for the Derivatives metric group. Every numeric here is
// nullable upstream: exchanges gap on funding and open-interest history.

type OiPoint struct {
	OpenInterest      *float64 `json:"openInterest"`
	OpenInterestValue *float64 `json:"openInterestValue"`
	Delta             *float64 `json:"delta"`
	Pct               *float64 `json:"pct"`
	Timestamp         *int64   `json:"timestamp"`
}

type OpenInterestResponse struct {
	Symbol string `json:"symbol"`
	Oi     struct {
		H1 *OiPoint `json:"1h"`
		H4 *OiPoint `json:"4h"`
	} `json:"oi"`
	Source string `json:"source"`
}

type FundingRateResponse struct {
	Symbol         string   `json:"symbol"`
	FundingRate    *float64 `json:"fundingRate"`
	FundingTime    *int64   `json:"fundingTime"`
	FundingRatePct *float64 `json:"fundingRatePct"`
	Source         string   `json:"source"`
}

type Basis1mResponse struct {
	Pair         string   `json:"pair"`
	ContractType string   `json:"contractType"`
	Basis        *float64 `json:"basis"`
	BasisRate    *float64 `json:"basisRate"`
	Annualized1M *float64 `json:"annualized1M"`
	FuturesPrice *float64 `json:"futuresPrice"`
	IndexPrice   *float64 `json:"indexPrice"`
	Source       string   `json:"source"`
}

type LongShortRatioResponse struct {
	Symbol         string   `json:"symbol"`
	LongShortRatio *float64 `json:"longShortRatio"`
	LongAccount    *float64 `json:"longAccount"`
	ShortAccount   *float64 `json:"shortAccount"`
	Timestamp      *int64   `json:"timestamp"`
	Source         string   `json:"source"`
}

type LiquidationSide struct {
	Count         int     `json:"count"`
	TotalNotional float64 `json:"totalNotional"`
}

type Liquidations24hResponse struct {
	Symbol        string   `json:"symbol"`
	SymbolQueried string   `json:"symbolQueried,omitempty"`
	Window        string   `json:"window"`
	Count         *int     `json:"count"`
	TotalNotional *float64 `json:"totalNotional"`
	BySide        struct {
		Buy  *LiquidationSide `json:"BUY"`
		Sell *LiquidationSide `json:"SELL"`
	} `json:"bySide"`
	Note   string `json:"note,omitempty"`
	Source string `json:"source"`
}

type EstimatedLeverageResponse struct {
	Symbol    string   `json:"symbol"`
	Elr       *float64 `json:"elr"`
	OiUsd     *float64 `json:"oiUsd"`
	Timestamp *int64   `json:"timestamp"`
	Note      string   `json:"note,omitempty"`
	Source    string   `json:"source"`
}

// DerivativesSnapshot is the display-ready state of the Derivatives panel.
// LiqFallback flags that liquidation data came from a proxy symbol.
type DerivativesSnapshot struct {
	OiH1             *OiPoint          `json:"oi1h"`
	OiH4             *OiPoint          `json:"oi4h"`
	FundingRatePct   *float64          `json:"fundingRatePct"`
	FundingTime      *int64            `json:"fundingTime"`
	BasisRate        *float64          `json:"basisRate"`
	Annualized1M     *float64          `json:"annualized1M"`
	BasisSign        *BasisSign        `json:"basisSign"`
	LongShortRatio   *float64          `json:"longShortRatio"`
	LongAccount      *float64          `json:"longAccount"`
	ShortAccount     *float64          `json:"shortAccount"`
	PositionBalance  *PositionBalance  `json:"positionBalance"`
	LiqCount         *int              `json:"liqCount"`
	LiqTotalNotional *float64          `json:"liqTotalNotional"`
	LiqBuy           *LiquidationSide  `json:"liqBuy"`
	LiqSell          *LiquidationSide  `json:"liqSell"`
	LiqSymbol        *string           `json:"liqSymbol"`
	LiqFallback      bool              `json:"liqFallback"`
	Elr              *float64          `json:"elr"`
	OiUsd            *float64          `json:"oiUsd"`
	Sources          map[string]string `json:"sources"`
}
