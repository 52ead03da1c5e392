package models

// Responses for the Session metric group.

type VwapDailyResponse struct {
	Symbol   string   `json:"symbol"`
	Vwap     *float64 `json:"vwap"`
	Interval string   `json:"interval"`
	Window   string   `json:"window"`
	Source   string   `json:"source"`
}

type AvwapResponse struct {
	Symbol   string   `json:"symbol"`
	AnchorTs *int64   `json:"anchorTs"`
	Avwap    *float64 `json:"avwap"`
	Source   string   `json:"source"`
}

type PrevDayHiLoResponse struct {
	Symbol       string   `json:"symbol"`
	PrevDayHigh  *float64 `json:"prevDayHigh"`
	PrevDayLow   *float64 `json:"prevDayLow"`
	PrevOpenTime *int64   `json:"prevOpenTime"`
	Source       string   `json:"source"`
}

type OpeningRangeResponse struct {
	Symbol       string   `json:"symbol"`
	RangeMinutes int      `json:"rangeMinutes"`
	OrHigh       *float64 `json:"orHigh"`
	OrLow        *float64 `json:"orLow"`
	Range        *float64 `json:"range"`
	Source       string   `json:"source"`
}

type SessionWindow struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

type SessionsResponse struct {
	UtcDayStart int64         `json:"utcDayStart"`
	Asia        SessionWindow `json:"asia"`
	London      SessionWindow `json:"london"`
	NewYork     SessionWindow `json:"newYork"`
	Overlaps    struct {
		AsiaLondon SessionWindow `json:"asia_london"`
		LondonNY   SessionWindow `json:"london_ny"`
	} `json:"overlaps"`
	CurrentSession *string `json:"currentSession"`
	Source         string  `json:"source"`
}

type MacroFlagResponse struct {
	DateUtc       string   `json:"dateUtc"`
	HasHighImpact bool     `json:"hasHighImpact"`
	Note          string   `json:"note,omitempty"`
	KeyEvents     []string `json:"keyEvents"`
	Source        string   `json:"source"`
}

// SessionSnapshot is the display-ready state of the Session panel.
type SessionSnapshot struct {
	VwapDaily       *float64          `json:"vwapDaily"`
	Avwap           *float64          `json:"avwap"`
	AvwapAnchor     *int64            `json:"avwapAnchor"`
	PrevDayHigh     *float64          `json:"prevDayHigh"`
	PrevDayLow      *float64          `json:"prevDayLow"`
	PrevOpenTime    *int64            `json:"prevOpenTime"`
	OrHigh          *float64          `json:"orHigh"`
	OrLow           *float64          `json:"orLow"`
	OrRange         *float64          `json:"orRange"`
	UtcDayStart     *int64            `json:"utcDayStart"`
	Asia            *SessionWindow    `json:"asia"`
	London          *SessionWindow    `json:"london"`
	NewYork         *SessionWindow    `json:"newYork"`
	CurrentSession  *string           `json:"currentSession"`
	MacroHighImpact *bool             `json:"macroHighImpact"`
	MacroNote       *string           `json:"macroNote"`
	MacroKeyEvents  []string          `json:"macroKeyEvents"`
	Sources         map[string]string `json:"sources"`
}
