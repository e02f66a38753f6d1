package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundPercent rounds a ratio expressed as a percentage to the nearest
// whole number. A non-finite input collapses to zero.
func RoundPercent(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return int(math.Round(f))
}
