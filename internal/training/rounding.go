package training

import "math"

// RoundToIncrement rounds value to the nearest multiple of increment.
//
// ok is false when value is not finite. An increment that is not a positive finite number leaves value unchanged.
func RoundToIncrement(value, increment float64) (float64, bool) {
	if !isFinite(value) {
		return 0, false
	}
	if !isFinite(increment) || increment <= 0 {
		return value, true
	}
	return math.Round(value/increment) * increment, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
