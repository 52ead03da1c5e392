package models

// Responses for the Volatility metric group.

type Atr14Response struct {
	Symbol   string   `json:"symbol"`
	Interval string   `json:"interval"`
	Period   int      `json:"period"`
	Atr      *float64 `json:"atr"`
	Source   string   `json:"source"`
}

type Atr14PctResponse struct {
	Symbol   string   `json:"symbol"`
	Interval string   `json:"interval"`
	Period   int      `json:"period"`
	AtrPct   *float64 `json:"atrPct"`
	Source   string   `json:"source"`
}

type Band struct {
	Middle   *float64 `json:"middle"`
	Upper    *float64 `json:"upper"`
	Lower    *float64 `json:"lower"`
	WidthAbs *float64 `json:"widthAbs"`
	WidthPct *float64 `json:"widthPct"`
}

type BbWidthResponse struct {
	Symbol   string   `json:"symbol"`
	Interval string   `json:"interval"`
	Period   int      `json:"period"`
	K        float64  `json:"k"`
	Middle   *float64 `json:"middle"`
	Upper    *float64 `json:"upper"`
	Lower    *float64 `json:"lower"`
	WidthAbs *float64 `json:"widthAbs"`
	WidthPct *float64 `json:"widthPct"`
	Source   string   `json:"source"`
}

type SqueezeResponse struct {
	Symbol    string       `json:"symbol"`
	Interval  string       `json:"interval"`
	BbPeriod  int          `json:"bbPeriod"`
	BbK       float64      `json:"bbK"`
	KcPeriod  int          `json:"kcPeriod"`
	KcMult    float64      `json:"kcMult"`
	Bb        Band         `json:"bb"`
	Kc        Band         `json:"kc"`
	InSqueeze *bool        `json:"inSqueeze"`
	State     SqueezeState `json:"state"`
	Source    string       `json:"source"`
}

type VwapDistanceResponse struct {
	Symbol      string   `json:"symbol"`
	Interval    string   `json:"interval"`
	Lookback    int      `json:"lookback"`
	Vwap        *float64 `json:"vwap"`
	Close       *float64 `json:"close"`
	DistanceAbs *float64 `json:"distanceAbs"`
	DistancePct *float64 `json:"distancePct"`
	Source      string   `json:"source"`
}

type AtrPctPercentileResponse struct {
	Symbol        string   `json:"symbol"`
	Interval      string   `json:"interval"`
	Period        int      `json:"period"`
	Days          int      `json:"days"`
	CurrentAtrPct *float64 `json:"currentAtrPct"`
	Percentile    *float64 `json:"percentile"` // 0-100
	Samples       *int     `json:"samples"`
	Source        string   `json:"source"`
}

// VolatilitySnapshot is the display-ready state of the Volatility panel.
// The squeeze state is a passthrough of the remote enum; nothing is
// recomputed locally.
type VolatilitySnapshot struct {
	Atr14            *float64          `json:"atr14"`
	AtrPct           *float64          `json:"atrPct"`
	BbWidthAbs       *float64          `json:"bbWidthAbs"`
	BbWidthPct       *float64          `json:"bbWidthPct"`
	SqueezeState     *SqueezeState     `json:"squeezeState"`
	InSqueeze        *bool             `json:"inSqueeze"`
	Vwap             *float64          `json:"vwap"`
	Close            *float64          `json:"close"`
	VwapDistAbs      *float64          `json:"vwapDistanceAbs"`
	VwapDistPct      *float64          `json:"vwapDistancePct"`
	AtrPctCurrent    *float64          `json:"atrPctCurrent"`
	AtrPctPercentile *float64          `json:"atrPctPercentile"`
	AtrPctSamples    *int              `json:"atrPctSamples"`
	Sources          map[string]string `json:"sources"`
}
