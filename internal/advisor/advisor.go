// Package advisor runs the CII optimization pipeline: rate the current
// operating profile, search for an improved fuel/distance point within
// operational bounds, evaluate alternative fuels at that point, and assemble
// the recommendation list.
package advisor

import (
	"math"

	"ciinav/internal/cii"
	"ciinav/internal/model"
	"ciinav/internal/opt"
)

const (
	// DefaultSeed keeps search results reproducible for identical inputs.
	DefaultSeed = 42

	// penaltyWeight prices attained CII above the target ceiling.
	penaltyWeight = 100
)

type Advisor struct {
	Seed           int64
	MaxIterations  int
	PopulationSize int
	Tol            float64
	Atol           float64
}

func New() *Advisor {
	return &Advisor{
		Seed:          DefaultSeed,
		MaxIterations: 100,
		Tol:           0.01,
		Atol:          0.01,
	}
}

// Optimize runs the full pipeline. The caller validates presence of
// currentParams and shipInfo; beyond that every malformed value resolves to a
// documented fallback and the result is always a value, never a panic.
func (a *Advisor) Optimize(req model.OptimizeRequest) model.OptimizeResponse {
	params := *req.CurrentParams
	ship := *req.ShipInfo

	currentCII := cii.Attained(params.AnnualFuelConsumption, params.DistanceTraveled, ship.Capacity, params.FuelType)
	requiredCII := cii.Required(ship.ShipType, ship.Capacity, ship.Year)
	currentRating := cii.Rating(currentCII, requiredCII)

	targetRating := req.TargetRating
	if targetRating == "" {
		targetRating = cii.NextBetter(currentRating)
	}

	if currentRating == "A" {
		// Already in the best band: identity result, no search.
		p := params
		return model.OptimizeResponse{
			Success:         true,
			Message:         "Already at optimal A rating",
			CurrentRating:   currentRating,
			TargetRating:    "A",
			AchievedRating:  currentRating,
			CurrentCII:      round2(currentCII),
			TargetCII:       round2(cii.ThresholdFor(requiredCII, "A")),
			OptimizedCII:    round2(currentCII),
			RequiredCII:     round2(requiredCII),
			Converged:       true,
			Recommendations: []model.Recommendation{},
			OptimizedParams: &p,
		}
	}

	targetCII := cii.ThresholdFor(requiredCII, targetRating)

	// Fuel may only be held or reduced; distance may flex 20% either way.
	bounds := [][2]float64{
		{params.AnnualFuelConsumption * 0.7, params.AnnualFuelConsumption * 1.0},
		{params.DistanceTraveled * 0.8, params.DistanceTraveled * 1.2},
	}
	objective := func(x []float64) float64 {
		c := cii.Attained(x[0], x[1], ship.Capacity, params.FuelType)
		return c + penaltyWeight*math.Max(0, c-targetCII)
	}
	seed := a.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	sol, m := opt.Solve(opt.Problem{
		Objective: objective,
		Bounds:    bounds,
		MaxIter:   a.MaxIterations,
		PopSize:   a.PopulationSize,
		Tol:       a.Tol,
		Atol:      a.Atol,
	}, seed)
	opt.RecordMetrics(ship.ShipType, m)

	optFuel, optDistance := sol.X[0], sol.X[1]
	optimizedCII := cii.Attained(optFuel, optDistance, ship.Capacity, params.FuelType)
	achievedRating := cii.Rating(optimizedCII, requiredCII)

	recs := buildRecommendations(params, optFuel, optDistance)
	alts := EvaluateAlternatives(AlternativeQuery{
		OptimizedFuel:     optFuel,
		OptimizedDistance: optDistance,
		Capacity:          ship.Capacity,
		CurrentFuelType:   params.FuelType,
		RequiredCII:       requiredCII,
		CurrentCII:        currentCII,
		OptimizedCII:      optimizedCII,
		CurrentRating:     currentRating,
		TargetRating:      targetRating,
	})
	if len(alts) > 0 {
		recs = append(recs, fuelSwitchRecommendation(alts))
	}

	return model.OptimizeResponse{
		Success:         true,
		CurrentRating:   currentRating,
		TargetRating:    targetRating,
		AchievedRating:  achievedRating,
		CurrentCII:      round2(currentCII),
		TargetCII:       round2(targetCII),
		OptimizedCII:    round2(optimizedCII),
		RequiredCII:     round2(requiredCII),
		Improvement:     round1((currentCII - optimizedCII) / currentCII * 100),
		Converged:       sol.Converged,
		Recommendations: recs,
		OptimizedParams: &model.OperationalParams{
			AnnualFuelConsumption: round2(optFuel),
			DistanceTraveled:      round2(optDistance),
			FuelType:              params.FuelType,
		},
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
