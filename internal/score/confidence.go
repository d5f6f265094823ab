package score

import "math"

// ConfidenceDivisor maps raw scores onto [0,1]. Calibrated empirically: a
// same-filename match with two matching ancestor segments scores 70 raw.
const ConfidenceDivisor = 70

// Confidence normalizes a raw similarity score to a [0,1] confidence value
// rounded to two decimal places. Monotonic, deterministic, total.
func Confidence(raw int) float64 {
	c := float64(raw) / ConfidenceDivisor
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return math.Round(c*100) / 100
}
