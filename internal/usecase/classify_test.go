package usecase

import (
	"testing"

	"MetricPull/internal/domain/models"
)

func fp(v float64) *float64 { return &v }
func sp(s string) *string   { return &s }

func TestVolumeStateFor(t *testing.T) {
	tests := []struct {
		name  string
		ratio *float64
		want  *models.VolumeState
	}{
		{"nil", nil, nil},
		{"above high", fp(1.6), stateP(models.VolumeHigh)},
		{"exactly high", fp(1.5), stateP(models.VolumeNormal)},
		{"between", fp(1.0), stateP(models.VolumeNormal)},
		{"exactly low", fp(0.5), stateP(models.VolumeNormal)},
		{"below low", fp(0.4), stateP(models.VolumeLow)},
	}
	for _, tt := range tests {
		got := VolumeStateFor(tt.ratio, 1.5, 0.5)
		if !eq(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, deref(got), deref(tt.want))
		}
	}
}

func TestTriSignFor(t *testing.T) {
	if got := TriSignFor(nil); got != nil {
		t.Errorf("nil input: got %v", *got)
	}
	if got := TriSignFor(fp(0.01)); *got != models.TriSignUp {
		t.Errorf("positive: got %v", *got)
	}
	if got := TriSignFor(fp(-0.01)); *got != models.TriSignDown {
		t.Errorf("negative: got %v", *got)
	}
	if got := TriSignFor(fp(0)); *got != models.TriSignFlat {
		t.Errorf("zero: got %v", *got)
	}
}

func TestStructureBias(t *testing.T) {
	tests := []struct {
		name   string
		hi, lo *string
		want   *models.Bias
	}{
		{"bullish", sp("HH"), sp("HL"), biasP(models.BiasBullish)},
		{"bearish", sp("LH"), sp("LL"), biasP(models.BiasBearish)},
		{"mixed", sp("HH"), sp("LL"), biasP(models.BiasNeutral)},
		{"missing high", nil, sp("HL"), nil},
		{"missing low", sp("HH"), nil, nil},
	}
	for _, tt := range tests {
		got := StructureBias(tt.hi, tt.lo)
		if !eq(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, deref(got), deref(tt.want))
		}
	}
}

func TestFlowBalanceFor(t *testing.T) {
	tests := []struct {
		name string
		pct  *float64
		want models.FlowBalance
	}{
		{"above 55", fp(55.1), models.FlowBuysDominate},
		{"exactly 55", fp(55), models.FlowBalanced},
		{"midpoint", fp(50), models.FlowBalanced},
		{"exactly 45", fp(45), models.FlowBalanced},
		{"below 45", fp(44.9), models.FlowSellsDominate},
	}
	for _, tt := range tests {
		got := FlowBalanceFor(tt.pct)
		if got == nil || *got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, deref(got), tt.want)
		}
	}
	if got := FlowBalanceFor(nil); got != nil {
		t.Errorf("nil input: got %v", *got)
	}
}

func TestBookPressureFor(t *testing.T) {
	tests := []struct {
		name string
		pct  *float64
		want models.BookPressure
	}{
		{"above 5", fp(5.0001), models.BookBidDominant},
		{"exactly 5", fp(5), models.BookBalanced},
		{"exactly -5", fp(-5), models.BookBalanced},
		{"below -5", fp(-5.0001), models.BookAskDominant},
	}
	for _, tt := range tests {
		got := BookPressureFor(tt.pct)
		if got == nil || *got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, deref(got), tt.want)
		}
	}
}

func TestBasisSignFor(t *testing.T) {
	if got := BasisSignFor(fp(0.002)); *got != models.BasisContango {
		t.Errorf("positive: got %v", *got)
	}
	if got := BasisSignFor(fp(-0.002)); *got != models.BasisBackwardation {
		t.Errorf("negative: got %v", *got)
	}
	if got := BasisSignFor(fp(0)); *got != models.BasisNeutral {
		t.Errorf("zero: got %v", *got)
	}
	if got := BasisSignFor(nil); got != nil {
		t.Errorf("nil input: got %v", *got)
	}
}

func TestPositionBalanceFor(t *testing.T) {
	tests := []struct {
		name  string
		ratio *float64
		want  models.PositionBalance
	}{
		{"longs dominate", fp(1.10), models.PositionLongsDominate},
		{"exactly 1.05", fp(1.05), models.PositionBalanced},
		{"balanced", fp(1.0), models.PositionBalanced},
		{"exactly 0.95", fp(0.95), models.PositionBalanced},
		{"shorts dominate", fp(0.90), models.PositionShortsDominate},
	}
	for _, tt := range tests {
		got := PositionBalanceFor(tt.ratio)
		if got == nil || *got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, deref(got), tt.want)
		}
	}
}

// --- helpers ---

func stateP(s models.VolumeState) *models.VolumeState { return &s }
func biasP(b models.Bias) *models.Bias                { return &b }

func eq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref[T any](p *T) any {
	if p == nil {
		return "<nil>"
	}
	return *p
}
