// Package cii implements the IMO Carbon Intensity Indicator rating model:
// attained and required CII, the five-band A-E rating scale, and the
// per-band CII thresholds used as optimization targets.
package cii

import "math"

// CO2 conversion factors in tonnes CO2 per tonne fuel burned.
var co2Factors = map[string]float64{
	"HFO":      3.114,
	"MDO":      3.206,
	"MGO":      3.206,
	"LNG":      2.750,
	"Methanol": 1.375,
	"Ammonia":  0.0,
	"LPG":      3.000,
}

// defaultCO2Factor is applied for fuel types outside the table (HFO value).
const defaultCO2Factor = 3.114

// BaselineParams are the (a, c) regression constants of the required-CII
// power law for one ship type.
type BaselineParams struct {
	A float64
	C float64
}

var baselines = map[string]BaselineParams{
	"Bulk Carrier":   {A: 4745, C: 0.622},
	"Oil Tanker":     {A: 5247, C: 0.610},
	"Container Ship": {A: 1984, C: 0.489},
	"LNG Carrier":    {A: 9.827, C: 0},
	"General Cargo":  {A: 31948, C: 0.792},
}

// Annual reduction factors relative to the 2019 baseline.
var reductionFactors = map[int]float64{
	2023: 0.05, 2024: 0.07, 2025: 0.09, 2026: 0.11, 2027: 0.13,
	2028: 0.15, 2029: 0.17, 2030: 0.19, 2031: 0.21, 2032: 0.23,
	2033: 0.25, 2034: 0.27, 2035: 0.29, 2036: 0.31, 2037: 0.33,
	2038: 0.35, 2039: 0.37, 2040: 0.39,
}

// defaultReduction is applied for years outside the 2023-2040 schedule.
const defaultReduction = 0.09

// Ratings lists the bands from best to worst.
var Ratings = []string{"A", "B", "C", "D", "E"}

// Band upper bounds on attained/required. E is open-ended.
var ratingThresholds = map[string]float64{
	"A": 0.88,
	"B": 0.94,
	"C": 1.06,
	"D": 1.18,
}

// CO2Factor returns the emission factor for a fuel type, falling back to the
// HFO factor for unrecognized fuels.
func CO2Factor(fuelType string) float64 {
	if f, ok := co2Factors[fuelType]; ok {
		return f
	}
	return defaultCO2Factor
}

// KnownFuel reports whether fuelType has an entry in the factor table.
func KnownFuel(fuelType string) bool {
	_, ok := co2Factors[fuelType]
	return ok
}

// FuelTypes returns the fuel factor table for reference endpoints.
func FuelTypes() map[string]float64 {
	out := make(map[string]float64, len(co2Factors))
	for k, v := range co2Factors {
		out[k] = v
	}
	return out
}

// Baseline returns the regression parameters for a ship type, falling back to
// the Bulk Carrier baseline for unrecognized types.
func Baseline(shipType string) BaselineParams {
	if b, ok := baselines[shipType]; ok {
		return b
	}
	return baselines["Bulk Carrier"]
}

// Baselines returns the baseline table for reference endpoints.
func Baselines() map[string]BaselineParams {
	out := make(map[string]BaselineParams, len(baselines))
	for k, v := range baselines {
		out[k] = v
	}
	return out
}

// ReductionFactor returns the required CII reduction for a year. Years outside
// the 2023-2040 schedule use the 2025 fraction.
func ReductionFactor(year int) float64 {
	if r, ok := reductionFactors[year]; ok {
		return r
	}
	return defaultReduction
}

// Attained computes the attained CII in grams CO2 per tonne-mile:
// fuel * Cf / (capacity * distance) * 1e6. Zero transport work yields +Inf
// rather than an error; the ratio against any finite required CII then lands
// in the E band deterministically.
func Attained(fuelConsumed, distance, capacity float64, fuelType string) float64 {
	work := capacity * distance
	if work == 0 {
		return math.Inf(1)
	}
	return fuelConsumed * CO2Factor(fuelType) / work * 1_000_000
}

// Required computes the regulatory CII ceiling:
// a * capacity^(-c) * (1 - reduction(year)).
func Required(shipType string, capacity float64, year int) float64 {
	b := Baseline(shipType)
	return b.A * math.Pow(capacity, -b.C) * (1 - ReductionFactor(year))
}

// Rating classifies attained against required. Band upper bounds are
// inclusive, so a ratio of exactly 1.00 is a C.
func Rating(attained, required float64) string {
	ratio := attained / required
	switch {
	case ratio <= 0.88:
		return "A"
	case ratio <= 0.94:
		return "B"
	case ratio <= 1.06:
		return "C"
	case ratio <= 1.18:
		return "D"
	default:
		return "E"
	}
}

// ThresholdFor converts a target rating into the maximum attained CII that
// still earns it. Unrecognized ratings resolve to the A threshold.
func ThresholdFor(required float64, rating string) float64 {
	t, ok := ratingThresholds[rating]
	if !ok {
		t = ratingThresholds["A"]
	}
	return required * t
}

// ValidRating reports whether r is one of the five band letters.
func ValidRating(r string) bool {
	for _, v := range Ratings {
		if v == r {
			return true
		}
	}
	return false
}

// Better reports whether rating a is strictly better than rating b
// (earlier in the A-E order).
func Better(a, b string) bool {
	return ratingIndex(a) < ratingIndex(b)
}

// NextBetter returns the rating one band better than current; A maps to A.
func NextBetter(current string) string {
	i := ratingIndex(current)
	if i <= 0 {
		return "A"
	}
	return Ratings[i-1]
}

func ratingIndex(r string) int {
	for i, v := range Ratings {
		if v == r {
			return i
		}
	}
	return len(Ratings) - 1
}
