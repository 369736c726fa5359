package audio

import (
	"math"
	"strings"
	"testing"
)

const square = "0,0,.3,0,.4,.5,0,0,0,0,0,0,0,.5,0,0,0,0,1,0,0,0,0,.5"

func floatNear(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestParseParams_Basic(t *testing.T) {
	p, err := ParseParams("0,.1,.2,.3,.4,.5,.6,.7,.8,.9,.1,.11,.12,.13,.14,.15,.16,.17,.18,.19,.2,.21,.22,.5")
	if err != nil {
		t.Fatalf("ParseParams: %v", err)
	}
	if p.Wave != WaveSquare {
		t.Errorf("Wave: expected square, got %s", p.Wave)
	}
	if !floatNear(p.Attack, 0.1, 0.001) || !floatNear(p.Sustain, 0.2, 0.001) {
		t.Errorf("Envelope: expected .1/.2, got %f/%f", p.Attack, p.Sustain)
	}
	if !floatNear(p.HPSweep, 0.22, 0.001) || !floatNear(p.Volume, 0.5, 0.001) {
		t.Errorf("Tail: expected .22/.5, got %f/%f", p.HPSweep, p.Volume)
	}
}

func TestParseParams_EmptyAndNegative(t *testing.T) {
	p, err := ParseParams("0,,0.3,,0.4,0.5,,-.363,,,,,,,,,,,1,,,,,.5")
	if err != nil {
		t.Fatalf("ParseParams: %v", err)
	}
	if !floatNear(p.Slide, -0.363, 0.001) {
		t.Errorf("Slide: expected -0.363, got %f", p.Slide)
	}
	if p.Attack != 0 {
		t.Errorf("Attack: expected 0, got %f", p.Attack)
	}
}

func TestParseParams_StretchesShortEnvelope(t *testing.T) {
	p, err := ParseParams("0,.001,.001,0,.001,0.5,0,0,0,0,0,0,0,0,0,0,0,0,1,0,0,0,0,.5")
	if err != nil {
		t.Fatalf("ParseParams: %v", err)
	}
	if p.Sustain < 0.01 {
		t.Errorf("Expected sustain of at least 0.01, got %f", p.Sustain)
	}
	if total := p.Attack + p.Sustain + p.Decay; total < 0.18-1e-9 {
		t.Errorf("Expected envelope of at least 0.18, got %f", total)
	}
}

func TestParseParams_Errors(t *testing.T) {
	tests := []struct {
		name     string
		settings string
	}{
		{"too few fields", "0,.1,.2"},
		{"not a number", strings.Replace(square, ".3", "x", 1)},
		{"unknown wave", "7" + square[1:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseParams(tt.settings); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParams_StringRoundTrip(t *testing.T) {
	p := MustParseParams(square)
	again := MustParseParams(p.String())
	if again != p {
		t.Errorf("Expected %+v, got %+v", p, again)
	}
}

func TestRender_WaveShapes(t *testing.T) {
	tests := []struct {
		name     string
		settings string
	}{
		{"square", square},
		{"sawtooth", "1" + square[1:]},
		{"sine", "2" + square[1:]},
		{"noise", "3" + square[1:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := Render(MustParseParams(tt.settings))
			if len(samples) == 0 {
				t.Fatal("Expected samples")
			}
			nonZero := false
			for _, s := range samples {
				if s != 0 {
					nonZero = true
					break
				}
			}
			if !nonZero {
				t.Error("Expected audible samples")
			}
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	p := MustParseParams("3" + square[1:])
	a, b := Render(p), Render(p)
	if len(a) != len(b) {
		t.Fatalf("Expected equal lengths, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Sample %d differs: %d != %d", i, a[i], b[i])
		}
	}
}

func TestRender_LengthFollowsEnvelope(t *testing.T) {
	p := MustParseParams(square)
	want := int(p.Attack*p.Attack*100000 + p.Sustain*p.Sustain*100000 + p.Decay*p.Decay*100000 + 10)
	if got := len(Render(p)); got < want-3 || got > want+3 {
		t.Errorf("Expected about %d samples, got %d", want, got)
	}
}
