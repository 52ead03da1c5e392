package usecase

import "MetricPull/internal/domain/models"

// Threshold classifiers for the panel snapshots. All are pure, all treat
// nil as "no data" and return nil, and all bounds are exclusive: a value
// sitting exactly on a threshold classifies as the middle label.

// VolumeStateFor labels the volume/MA20 ratio against configured bounds.
func VolumeStateFor(ratio *float64, high, low float64) *models.VolumeState {
	if ratio == nil {
		return nil
	}
	s := models.VolumeNormal
	switch {
	case *ratio > high:
		s = models.VolumeHigh
	case *ratio < low:
		s = models.VolumeLow
	}
	return &s
}

// TriSignFor labels a per-bar slope.
func TriSignFor(pctPerBar *float64) *models.TriSign {
	if pctPerBar == nil {
		return nil
	}
	s := models.TriSignFlat
	switch {
	case *pctPerBar > 0:
		s = models.TriSignUp
	case *pctPerBar < 0:
		s = models.TriSignDown
	}
	return &s
}

// StructureBias derives trend bias from the swing sequences: higher highs
// with higher lows is bullish, lower highs with lower lows bearish,
// anything mixed or missing is neutral.
func StructureBias(highSeq, lowSeq *string) *models.Bias {
	if highSeq == nil || lowSeq == nil {
		return nil
	}
	b := models.BiasNeutral
	switch {
	case *highSeq == "HH" && *lowSeq == "HL":
		b = models.BiasBullish
	case *highSeq == "LH" && *lowSeq == "LL":
		b = models.BiasBearish
	}
	return &b
}

// FlowBalanceFor labels taker buy percentage: above 55 buys dominate,
// below 45 sells dominate.
func FlowBalanceFor(buyPct *float64) *models.FlowBalance {
	if buyPct == nil {
		return nil
	}
	f := models.FlowBalanced
	switch {
	case *buyPct > 55:
		f = models.FlowBuysDominate
	case *buyPct < 45:
		f = models.FlowSellsDominate
	}
	return &f
}

// BookPressureFor labels order-book imbalance percentage at ±5.
func BookPressureFor(imbalancePct *float64) *models.BookPressure {
	if imbalancePct == nil {
		return nil
	}
	b := models.BookBalanced
	switch {
	case *imbalancePct > 5:
		b = models.BookBidDominant
	case *imbalancePct < -5:
		b = models.BookAskDominant
	}
	return &b
}

// BasisSignFor labels the futures basis rate.
func BasisSignFor(basisRate *float64) *models.BasisSign {
	if basisRate == nil {
		return nil
	}
	b := models.BasisNeutral
	switch {
	case *basisRate > 0:
		b = models.BasisContango
	case *basisRate < 0:
		b = models.BasisBackwardation
	}
	return &b
}

// PositionBalanceFor labels the long/short account ratio at 1.05/0.95.
func PositionBalanceFor(ratio *float64) *models.PositionBalance {
	if ratio == nil {
		return nil
	}
	p := models.PositionBalanced
	switch {
	case *ratio > 1.05:
		p = models.PositionLongsDominate
	case *ratio < 0.95:
		p = models.PositionShortsDominate
	}
	return &p
}
