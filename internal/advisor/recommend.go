package advisor

import (
	"fmt"

	"ciinav/internal/model"
)

// changeThresholdPct filters out sub-1% deltas, which are search noise
// rather than actionable changes.
const changeThresholdPct = 1.0

func buildRecommendations(current model.OperationalParams, optFuel, optDistance float64) []model.Recommendation {
	recs := []model.Recommendation{}

	fuelReductionPct := (current.AnnualFuelConsumption - optFuel) / current.AnnualFuelConsumption * 100
	if fuelReductionPct > changeThresholdPct {
		recs = append(recs, model.Recommendation{
			Type:        "fuel_reduction",
			Title:       "Reduce Fuel Consumption",
			Description: fmt.Sprintf("Reduce annual fuel consumption by %.1f%%", fuelReductionPct),
			From:        round2(current.AnnualFuelConsumption),
			To:          round2(optFuel),
			Unit:        "tonnes",
			Impact:      "high",
			Suggestions: []string{
				"Optimize speed (slow steaming)",
				"Improve hull maintenance and cleaning",
				"Optimize trim and ballast",
				"Use weather routing systems",
			},
		})
	}

	distanceChangePct := (optDistance - current.DistanceTraveled) / current.DistanceTraveled * 100
	if distanceChangePct > changeThresholdPct {
		recs = append(recs, model.Recommendation{
			Type:        "distance_increase",
			Title:       "Optimize Route Efficiency",
			Description: fmt.Sprintf("Increase operational distance by %.1f%% while maintaining fuel efficiency", distanceChangePct),
			From:        round2(current.DistanceTraveled),
			To:          round2(optDistance),
			Unit:        "nautical miles",
			Impact:      "medium",
			Suggestions: []string{
				"Optimize cargo capacity utilization",
				"Reduce ballast voyages",
				"Improve route planning",
			},
		})
	} else if distanceChangePct < -changeThresholdPct {
		recs = append(recs, model.Recommendation{
			Type:        "distance_reduction",
			Title:       "Reduce Unnecessary Distance",
			Description: fmt.Sprintf("Reduce travel distance by %.1f%%", -distanceChangePct),
			From:        round2(current.DistanceTraveled),
			To:          round2(optDistance),
			Unit:        "nautical miles",
			Impact:      "medium",
			Suggestions: []string{
				"Optimize port selection",
				"Improve route planning",
				"Reduce waiting times",
			},
		})
	}

	return recs
}

func fuelSwitchRecommendation(alts []model.AlternativeFuel) model.Recommendation {
	return model.Recommendation{
		Type:         "fuel_switching",
		Title:        "Consider Alternative Fuels",
		Description:  "Switching to cleaner fuels can significantly improve CII rating",
		Impact:       "high",
		Alternatives: alts,
		Suggestions: []string{
			"Evaluate LNG conversion feasibility",
			"Consider dual-fuel engines for new builds",
			"Assess methanol availability at ports",
		},
	}
}
