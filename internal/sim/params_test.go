package sim

import (
	"math/rand"
	"testing"
)

func TestSetClampsToRange(t *testing.T) {
	cases := []struct {
		key  ParamKey
		in   float64
		want float64
	}{
		{ParamTreeDensity, -1, 0.1},
		{ParamTreeDensity, 0.5, 0.5},
		{ParamTreeDensity, 2, 0.9},
		{ParamWindStr, -0.3, 0},
		{ParamWindStr, 1.7, 1},
		{ParamMoisture, 0.9, 0.5},
		{ParamMoisture, -0.1, 0},
		{ParamTemperature, -5, 0},
		{ParamTemperature, 120, 50},
	}

	for _, tc := range cases {
		var p Params
		p.Set(tc.key, tc.in)
		if got := p.Get(tc.key); got != tc.want {
			t.Errorf("Set(%v, %v): got %v, want %v", tc.key, tc.in, got, tc.want)
		}
	}
}

func TestSetWrapsWindDirection(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
	}

	for _, tc := range cases {
		var p Params
		p.Set(ParamWindDir, tc.in)
		if got := p.WindDir; got != tc.want {
			t.Errorf("Set(WindDir, %v): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFireProbabilityBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		var p Params
		p.Randomize(rng)
		// Push extremes too, not just randomize's sub-ranges.
		if i%3 == 0 {
			p.Set(ParamTemperature, rng.Float64()*200-100)
			p.Set(ParamMoisture, rng.Float64()*2-1)
			p.Set(ParamWindStr, rng.Float64()*2-1)
		}

		prob := p.FireProbability()
		if prob < 0.05 || prob > 0.95 {
			t.Fatalf("FireProbability() = %v out of [0.05, 0.95] for %+v", prob, p)
		}
	}
}

func TestFireProbabilityMonotonic(t *testing.T) {
	base := DefaultParams()

	// Non-decreasing in temperature.
	prev := -1.0
	for temp := 0.0; temp <= 50; temp += 2.5 {
		p := base
		p.Set(ParamTemperature, temp)
		if prob := p.FireProbability(); prob < prev {
			t.Errorf("probability decreased with temperature: %v at %v°C (prev %v)", prob, temp, prev)
		} else {
			prev = prob
		}
	}

	// Non-decreasing in wind strength.
	prev = -1.0
	for ws := 0.0; ws <= 1.0; ws += 0.05 {
		p := base
		p.Set(ParamWindStr, ws)
		if prob := p.FireProbability(); prob < prev {
			t.Errorf("probability decreased with wind strength: %v at %v (prev %v)", prob, ws, prev)
		} else {
			prev = prob
		}
	}

	// Non-increasing in moisture.
	prev = 2.0
	for m := 0.0; m <= 0.5; m += 0.025 {
		p := base
		p.Set(ParamMoisture, m)
		if prob := p.FireProbability(); prob > prev {
			t.Errorf("probability increased with moisture: %v at %v (prev %v)", prob, m, prev)
		} else {
			prev = prob
		}
	}
}

func TestFireProbabilityAnchors(t *testing.T) {
	// Temperature factor is 0 at 10 °C and 1 at 50 °C; with no wind and no
	// moisture the formula reduces to 0.15 and 0.65.
	p := Params{Temperature: 10}
	if got := p.FireProbability(); !near(got, 0.15) {
		t.Errorf("at 10°C: got %v, want 0.15", got)
	}
	p.Temperature = 50
	if got := p.FireProbability(); !near(got, 0.65) {
		t.Errorf("at 50°C: got %v, want 0.65", got)
	}
	// Below 10 °C the factor stays clamped at zero.
	p.Temperature = 0
	if got := p.FireProbability(); !near(got, 0.15) {
		t.Errorf("at 0°C: got %v, want 0.15", got)
	}
}

func TestRandomizeStaysInSubRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		var p Params
		p.Randomize(rng)

		for key, r := range randomizeRanges {
			v := p.Get(key)
			if v < r.Min || v > r.Max {
				t.Fatalf("Randomize: %v = %v outside [%v, %v]", key, v, r.Min, r.Max)
			}
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	return d > -1e-9 && d < 1e-9
}
