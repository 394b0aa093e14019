package model

import "math"

// Round rounds value to the given number of decimals, ties away from zero.
// The result is never negative zero.
func Round(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))

	rounded := math.Round(value*scale) / scale
	if rounded == 0 {
		return 0
	}

	return rounded
}
