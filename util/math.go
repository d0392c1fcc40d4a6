package util

import "math/rand"

// RandomInInterval returns a value drawn uniformly from [lo, hi).
func RandomInInterval(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
