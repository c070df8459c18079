package freight

import "math"

// ComparisonResult holds a sea vs air cost comparison.
type ComparisonResult struct {
	SeaCost    float64 `json:"seaCost"`
	AirCost    float64 `json:"airCost"`
	Winner     Mode    `json:"winner"`
	Difference float64 `json:"difference"`
	Savings    float64 `json:"savingsPercent"`
}

// Compare picks the cheaper mode. Sea wins ties.
// Savings is the difference as a percentage of the more expensive cost, 0 when both are 0.
func Compare(seaCost, airCost float64) ComparisonResult {
	winner := ModeAir
	if seaCost <= airCost {
		winner = ModeSea
	}

	difference := math.Abs(seaCost - airCost)
	maxCost := math.Max(seaCost, airCost)

	savings := 0.0
	if maxCost > 0 {
		savings = difference / maxCost * 100
	}

	return ComparisonResult{
		SeaCost:    seaCost,
		AirCost:    airCost,
		Winner:     winner,
		Difference: difference,
		Savings:    savings,
	}
}

// CompareQuotes compares a computed sea quote against a computed air quote.
func CompareQuotes(sea SeaQuote, air AirQuote) ComparisonResult {
	return Compare(sea.Cost, air.Cost)
}
