package models

// Qualitative labels derived from raw indicator values. Classification
// depends only on the numeric payload, never on provenance.

type Bias string

const (
	BiasBullish Bias = "bullish"
	BiasBearish Bias = "bearish"
	BiasNeutral Bias = "neutral"
)

type TriSign string

const (
	TriSignUp   TriSign = "up"
	TriSignDown TriSign = "down"
	TriSignFlat TriSign = "flat"
)

type MacdSign string

const (
	MacdPositive MacdSign = "positive"
	MacdNegative MacdSign = "negative"
	MacdFlat     MacdSign = "flat"
)

type SqueezeState string

const (
	SqueezeOn      SqueezeState = "squeeze_on"
	SqueezeOff     SqueezeState = "squeeze_off"
	SqueezeNeutral SqueezeState = "neutral"
)

type VolumeState string

const (
	VolumeHigh   VolumeState = "high"
	VolumeNormal VolumeState = "normal"
	VolumeLow    VolumeState = "low"
)

type FlowBalance string

const (
	FlowBuysDominate  FlowBalance = "buys dominate"
	FlowSellsDominate FlowBalance = "sells dominate"
	FlowBalanced      FlowBalance = "balanced"
)

type BookPressure string

const (
	BookBidDominant BookPressure = "bid dominant"
	BookAskDominant BookPressure = "ask dominant"
	BookBalanced    BookPressure = "balanced"
)

type BasisSign string

const (
	BasisContango      BasisSign = "contango"
	BasisBackwardation BasisSign = "backwardation"
	BasisNeutral       BasisSign = "neutral"
)

type PositionBalance string

const (
	PositionLongsDominate  PositionBalance = "longs dominate"
	PositionShortsDominate PositionBalance = "shorts dominate"
	PositionBalanced       PositionBalance = "balanced"
)
