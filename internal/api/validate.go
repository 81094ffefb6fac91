package api

import (
	"fmt"

	"ciinav/internal/cii"
	"ciinav/internal/model"
)

// validateOptimizeRequest enforces field presence and basic numeric sanity at
// the boundary; past this point the core resolves every odd value to a
// documented fallback instead of failing.
func validateOptimizeRequest(req *model.OptimizeRequest) error {
	if req.CurrentParams == nil {
		return fmt.Errorf("currentParams is required")
	}
	if req.ShipInfo == nil {
		return fmt.Errorf("shipInfo is required")
	}
	if req.CurrentParams.AnnualFuelConsumption < 0 {
		return fmt.Errorf("annualFuelConsumption must be >= 0")
	}
	if req.CurrentParams.DistanceTraveled <= 0 {
		return fmt.Errorf("distanceTraveled must be > 0")
	}
	if req.CurrentParams.FuelType == "" {
		return fmt.Errorf("fuelType is required")
	}
	if req.ShipInfo.ShipType == "" {
		return fmt.Errorf("shipType is required")
	}
	if req.ShipInfo.Capacity <= 0 {
		return fmt.Errorf("capacity must be > 0")
	}
	if req.ShipInfo.Year == 0 {
		return fmt.Errorf("year is required")
	}
	if req.TargetRating != "" && !cii.ValidRating(req.TargetRating) {
		return fmt.Errorf("invalid targetRating: %s (allowed: A,B,C,D,E)", req.TargetRating)
	}
	return nil
}
