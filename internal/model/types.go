package model

// Core request/response types for the CII optimization API.

// OperationalParams is one vessel's annual operating profile.
type OperationalParams struct {
	AnnualFuelConsumption float64 `json:"annualFuelConsumption"` // tonnes
	DistanceTraveled      float64 `json:"distanceTraveled"`      // nautical miles
	FuelType              string  `json:"fuelType"`
}

type ShipInfo struct {
	ShipType string  `json:"shipType"`
	Capacity float64 `json:"capacity"` // DWT or GT depending on ship type
	Year     int     `json:"year"`
}

type OptimizeRequest struct {
	CurrentParams *OperationalParams `json:"currentParams"`
	ShipInfo      *ShipInfo          `json:"shipInfo"`
	TargetRating  string             `json:"targetRating,omitempty"` // A-E; empty means one band better
}

// AlternativeFuel is one qualifying fuel-switch candidate evaluated at the
// optimized operating point.
type AlternativeFuel struct {
	Fuel        string  `json:"fuel"`
	CII         float64 `json:"cii"`
	Rating      string  `json:"rating"`
	Improvement float64 `json:"improvement"` // percent vs the pre-optimization CII
}

type Recommendation struct {
	Type         string            `json:"type"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	From         float64           `json:"from,omitempty"`
	To           float64           `json:"to,omitempty"`
	Unit         string            `json:"unit,omitempty"`
	Impact       string            `json:"impact"` // high, medium, low
	Suggestions  []string          `json:"suggestions,omitempty"`
	Alternatives []AlternativeFuel `json:"alternatives,omitempty"`
}

type OptimizeResponse struct {
	Success         bool               `json:"success"`
	Message         string             `json:"message,omitempty"`
	CurrentRating   string             `json:"currentRating"`
	TargetRating    string             `json:"targetRating"`
	AchievedRating  string             `json:"achievedRating,omitempty"`
	CurrentCII      float64            `json:"currentCII"`
	TargetCII       float64            `json:"targetCII"`
	OptimizedCII    float64            `json:"optimizedCII,omitempty"`
	RequiredCII     float64            `json:"requiredCII,omitempty"`
	Improvement     float64            `json:"improvement,omitempty"` // percent, 1 decimal
	Converged       bool               `json:"converged"`
	Recommendations []Recommendation   `json:"recommendations"`
	OptimizedParams *OperationalParams `json:"optimizedParams"`
}

// ErrorResponse is the boundary failure shape; the core itself never faults.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
