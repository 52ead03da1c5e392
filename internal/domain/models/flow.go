package models

// Responses for the Flow metric group.

type VolumeMa20Response struct {
	Symbol     string   `json:"symbol"`
	Interval   string   `json:"interval"`
	Period     int      `json:"period"`
	LastVolume *float64 `json:"lastVolume"`
	Ma20       *float64 `json:"ma20"`
	Ratio      *float64 `json:"ratio"`
	State      string   `json:"state"` // remote label, kept as provenance only
	Source     string   `json:"source"`
}

type ObvSlopeResponse struct {
	Symbol      string   `json:"symbol"`
	Interval    string   `json:"interval"`
	Obv         *float64 `json:"obv"`
	DeltaPerBar *float64 `json:"deltaPerBar"`
	PctPerBar   *float64 `json:"pctPerBar"`
	Sign        TriSign  `json:"sign"`
	Source      string   `json:"source"`
}

type Cvd1hResponse struct {
	Symbol      string   `json:"symbol"`
	Interval    string   `json:"interval"`
	BuysVolume  *float64 `json:"buysVolume"`
	SellsVolume *float64 `json:"sellsVolume"`
	Cvd         *float64 `json:"cvd"`
	Source      string   `json:"source"`
}

type BuySellRatioResponse struct {
	Symbol          string   `json:"symbol"`
	Interval        string   `json:"interval"`
	BuySellRatioPct *float64 `json:"buySellRatioPct"`
	Source          string   `json:"source"`
}

type OrderbookImbalanceResponse struct {
	Symbol       string   `json:"symbol"`
	Levels       int      `json:"levels"`
	BidVolume    *float64 `json:"bidVolume"`
	AskVolume    *float64 `json:"askVolume"`
	ImbalancePct *float64 `json:"imbalancePct"`
	Source       string   `json:"source"`
}

// FlowSnapshot is the display-ready state of the Flow panel. Labels are
// computed locally from the raw numbers, never copied from the remote.
type FlowSnapshot struct {
	LastVolume      *float64          `json:"lastVolume"`
	VolumeMa20      *float64          `json:"volumeMa20"`
	VolumeRatio     *float64          `json:"volumeRatio"`
	VolumeState     *VolumeState      `json:"volumeState"`
	Obv             *float64          `json:"obv"`
	ObvPctPerBar    *float64          `json:"obvPctPerBar"`
	ObvSign         *TriSign          `json:"obvSign"`
	BuysVolume      *float64          `json:"buysVolume"`
	SellsVolume     *float64          `json:"sellsVolume"`
	Cvd             *float64          `json:"cvd"`
	BuySellRatioPct *float64          `json:"buySellRatioPct"`
	FlowBalance     *FlowBalance      `json:"flowBalance"`
	BidVolume       *float64          `json:"bidVolume"`
	AskVolume       *float64          `json:"askVolume"`
	ImbalancePct    *float64          `json:"imbalancePct"`
	BookPressure    *BookPressure     `json:"bookPressure"`
	Sources         map[string]string `json:"sources"`
}
