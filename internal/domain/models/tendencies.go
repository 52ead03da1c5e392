package models

// Responses for the Tendencies metric group. Numeric fields decode to
// pointers: the remote API reports null when an indicator is not
// computable, which is distinct from zero.

type Slope struct {
	DeltaPerBar float64 `json:"deltaPerBar"`
	PctPerBar   float64 `json:"pctPerBar"`
	Sign        TriSign `json:"sign"`
}

type Ema200Response struct {
	Symbol string `json:"symbol"`
	Ema200 struct {
		H1 *float64 `json:"1h"`
		H4 *float64 `json:"4h"`
	} `json:"ema200"`
	Source string `json:"source"`
}

type Ema50Response struct {
	Symbol string `json:"symbol"`
	Ema50  struct {
		H1 *float64 `json:"1h"`
	} `json:"ema50"`
	Source string `json:"source"`
}

type Ema21Response struct {
	Symbol string `json:"symbol"`
	Ema21  struct {
		H1 *float64 `json:"1h"`
	} `json:"ema21"`
	Source string `json:"source"`
}

type Ema200SlopeResponse struct {
	Symbol      string `json:"symbol"`
	Ema200Slope struct {
		H1 *Slope `json:"1h"`
		H4 *Slope `json:"4h"`
	} `json:"ema200_slope"`
	Source string `json:"source"`
}

type HHHLResponse struct {
	Symbol   string  `json:"symbol"`
	Interval string  `json:"interval"`
	Window   int     `json:"window"`
	HighSeq  *string `json:"highSeq"` // "HH" or "LH"
	LowSeq   *string `json:"lowSeq"`  // "HL" or "LL"
	Bias     Bias    `json:"bias"`
	Source   string  `json:"source"`
}

type Rsi14Response struct {
	Symbol   string   `json:"symbol"`
	Interval string   `json:"interval"`
	Period   int      `json:"period"`
	Rsi      *float64 `json:"rsi"`
	Bias     Bias     `json:"bias"`
	Source   string   `json:"source"`
}

type MacdHistogramResponse struct {
	Symbol      string   `json:"symbol"`
	Interval    string   `json:"interval"`
	Fast        int      `json:"fast"`
	Slow        int      `json:"slow"`
	Signal      int      `json:"signal"`
	Macd        *float64 `json:"macd"`
	SignalValue *float64 `json:"signalValue"`
	Histogram   *float64 `json:"histogram"`
	Sign        MacdSign `json:"sign"`
	Source      string   `json:"source"`
}

// TendenciesSnapshot is the display-ready state of the Tendencies panel.
type TendenciesSnapshot struct {
	Ema200H1      *float64          `json:"ema200_1h"`
	Ema200H4      *float64          `json:"ema200_4h"`
	Ema50H1       *float64          `json:"ema50_1h"`
	Ema21H1       *float64          `json:"ema21_1h"`
	SlopeH1       *Slope            `json:"ema200Slope1h"`
	SlopeH4       *Slope            `json:"ema200Slope4h"`
	HighSeq       *string           `json:"highSeq"`
	LowSeq        *string           `json:"lowSeq"`
	StructureBias *Bias             `json:"structureBias"`
	Rsi14         *float64          `json:"rsi14"`
	RsiBias       *Bias             `json:"rsiBias"`
	MacdHistogram *float64          `json:"macdHistogram"`
	MacdSign      *MacdSign         `json:"macdSign"`
	Sources       map[string]string `json:"sources"`
}
