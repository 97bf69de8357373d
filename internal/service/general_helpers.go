package service

import "math"

// RoundingPrecision controls monetary rounding: two decimal places.
const RoundingPrecision = 100.0

func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}
