package sim

import "math/rand"

// ParamKey identifies one of the five tunable environment parameters.
type ParamKey int

const (
	ParamTreeDensity ParamKey = iota
	ParamWindDir
	ParamWindStr
	ParamMoisture
	ParamTemperature
)

// String returns the parameter's display label.
func (k ParamKey) String() string {
	switch k {
	case ParamTreeDensity:
		return "Tree Density"
	case ParamWindDir:
		return "Wind Direction"
	case ParamWindStr:
		return "Wind Strength"
	case ParamMoisture:
		return "Moisture"
	case ParamTemperature:
		return "Temperature (°C)"
	default:
		return "Unknown"
	}
}

// ParamKeys lists all parameters in display order.
var ParamKeys = []ParamKey{
	ParamTreeDensity,
	ParamWindDir,
	ParamWindStr,
	ParamMoisture,
	ParamTemperature,
}

// Range is the valid interval for a parameter. Setters clamp into it.
type Range struct {
	Min, Max float64
}

// paramRanges maps each parameter to its full valid range.
var paramRanges = map[ParamKey]Range{
	ParamTreeDensity: {0.1, 0.9},
	ParamWindDir:     {0, 360},
	ParamWindStr:     {0, 1},
	ParamMoisture:    {0, 0.5},
	ParamTemperature: {0, 50},
}

// randomizeRanges are the tighter sub-ranges used by Randomize so that random
// scenarios stay interesting rather than extreme.
var randomizeRanges = map[ParamKey]Range{
	ParamTreeDensity: {0.3, 0.8},
	ParamWindDir:     {0, 360},
	ParamWindStr:     {0.2, 0.9},
	ParamMoisture:    {0, 0.4},
	ParamTemperature: {10, 45},
}

// RangeOf returns the full valid range for a parameter.
func RangeOf(key ParamKey) Range {
	return paramRanges[key]
}

// Params holds the five tunable environment scalars. The zero value is not
// meaningful; use DefaultParams or populate every field through Set.
type Params struct {
	TreeDensity float64 // fraction of cells seeded as trees, [0.1, 0.9]
	WindDir     float64 // compass bearing wind blows toward, [0, 360)
	WindStr     float64 // wind influence magnitude, [0, 1]
	Moisture    float64 // dampens ignition, [0, 0.5]
	Temperature float64 // raises ignition, [0, 50] °C
}

// DefaultParams returns the initial parameter set: a moderately dense forest
// with mild wind and moisture at 25 °C.
func DefaultParams() Params {
	return Params{
		TreeDensity: 0.6,
		WindDir:     0,
		WindStr:     0.5,
		Moisture:    0.2,
		Temperature: 25,
	}
}

// Get returns the current value of a parameter.
func (p *Params) Get(key ParamKey) float64 {
	switch key {
	case ParamTreeDensity:
		return p.TreeDensity
	case ParamWindDir:
		return p.WindDir
	case ParamWindStr:
		return p.WindStr
	case ParamMoisture:
		return p.Moisture
	case ParamTemperature:
		return p.Temperature
	default:
		return 0
	}
}

// Set stores a parameter value, silently clamping it into the valid range.
// Wind direction is circular and wraps modulo 360 instead of clamping.
func (p *Params) Set(key ParamKey, value float64) {
	if key == ParamWindDir {
		value = wrapDegrees(value)
		p.WindDir = value
		return
	}

	r := paramRanges[key]
	value = clampF(value, r.Min, r.Max)

	switch key {
	case ParamTreeDensity:
		p.TreeDensity = value
	case ParamWindStr:
		p.WindStr = value
	case ParamMoisture:
		p.Moisture = value
	case ParamTemperature:
		p.Temperature = value
	}
}

// Randomize assigns each parameter a uniform draw from its sub-range.
// Parameters are drawn in display order so a given seed always produces the
// same scenario.
func (p *Params) Randomize(rng *rand.Rand) {
	for _, key := range ParamKeys {
		r := randomizeRanges[key]
		p.Set(key, r.Min+rng.Float64()*(r.Max-r.Min))
	}
}

// FireProbability derives the base per-neighbor ignition probability from
// temperature, wind strength and moisture. Pure function of the current
// parameter set, always within [0.05, 0.95].
//
// The temperature factor is 0 at 10 °C and 1 at 50 °C, linear in between.
func (p *Params) FireProbability() float64 {
	tempFactor := clampF((p.Temperature-10)/40, 0, 1)
	return clampF(0.15+0.5*tempFactor+0.2*p.WindStr-0.4*p.Moisture, 0.05, 0.95)
}

// clampF restricts a float64 value to be within [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// wrapDegrees maps an angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = deg - 360*float64(int(deg/360))
	if deg < 0 {
		deg += 360
	}
	return deg
}
