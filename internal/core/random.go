package core

import "math/rand"

// Random samples uniform values from integer and float ranges.
// It wraps a seeded source so simulations can be replayed exactly.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [min, max], both inclusive.
// Reversed bounds are swapped; equal bounds return min.
func (r *Random) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	if max == min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// FloatRange returns a uniform float in [min, max).
func (r *Random) FloatRange(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Float64()*(max-min)
}
