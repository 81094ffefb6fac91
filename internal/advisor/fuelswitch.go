package advisor

import (
	"ciinav/internal/cii"
	"ciinav/internal/model"
)

// Fuel switching is only proposed for vessels currently burning the
// high-carbon fossil fuels.
var fossilFuels = map[string]bool{
	"HFO": true,
	"MDO": true,
	"MGO": true,
}

// SwitchCandidates are the lower-carbon fuels evaluated as replacements.
var SwitchCandidates = []string{"LNG", "Methanol"}

type AlternativeQuery struct {
	OptimizedFuel     float64
	OptimizedDistance float64
	Capacity          float64
	CurrentFuelType   string
	RequiredCII       float64
	CurrentCII        float64
	OptimizedCII      float64
	CurrentRating     string
	TargetRating      string
	Candidates        []string // defaults to SwitchCandidates
}

// EvaluateAlternatives recomputes attained CII at the optimized operating
// point under each candidate fuel. A candidate qualifies when its rating is
// strictly better than the pre-optimization rating, or when it reaches the
// target rating with a lower CII than the optimized fossil-fuel point.
// Improvement is reported against the pre-optimization CII.
func EvaluateAlternatives(q AlternativeQuery) []model.AlternativeFuel {
	if !fossilFuels[q.CurrentFuelType] {
		return nil
	}
	candidates := q.Candidates
	if candidates == nil {
		candidates = SwitchCandidates
	}
	var out []model.AlternativeFuel
	for _, fuel := range candidates {
		altCII := cii.Attained(q.OptimizedFuel, q.OptimizedDistance, q.Capacity, fuel)
		altRating := cii.Rating(altCII, q.RequiredCII)
		if cii.Better(altRating, q.CurrentRating) || (altRating == q.TargetRating && altCII < q.OptimizedCII) {
			out = append(out, model.AlternativeFuel{
				Fuel:        fuel,
				CII:         round2(altCII),
				Rating:      altRating,
				Improvement: round1((q.CurrentCII - altCII) / q.CurrentCII * 100),
			})
		}
	}
	return out
}
