package freight

import "math"

// TransitEstimate is a delivery window in days.
type TransitEstimate struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

var transitTimes = map[Mode]TransitEstimate{
	ModeSea: {MinDays: 30, MaxDays: 45},
	ModeAir: {MinDays: 3, MaxDays: 7},
}

// Transit returns the usual delivery window for a mode.
func Transit(mode Mode) TransitEstimate {
	return transitTimes[mode]
}

func (t TransitEstimate) midpoint() float64 {
	return float64(t.MinDays+t.MaxDays) / 2
}

// TransitGapDays is how many days faster air is than sea, comparing window midpoints.
func TransitGapDays() int {
	return int(math.Round(Transit(ModeSea).midpoint() - Transit(ModeAir).midpoint()))
}
