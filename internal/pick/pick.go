// Package pick implements weighted-random selection over ordered
// category distributions.
package pick

import "math/rand"

// Entry is one category with its probability mass. Distributions are
// slices, not maps: selection walks entries in declaration order, so the
// cumulative thresholds are stable across runs.
type Entry struct {
	Category string
	Prob     float64
}

// Weighted draws one category from the distribution. A single uniform
// value in [0,1) is compared against the running cumulative mass; the
// first entry whose cumulative mass reaches the draw wins. When the
// masses do not sum to 1 and the draw lands past the final threshold,
// fallback is returned instead of the last entry, so rounding never
// silently biases the tail category.
func Weighted(rng *rand.Rand, dist []Entry, fallback string) string {
	draw := rng.Float64()
	cumulative := 0.0
	for _, e := range dist {
		cumulative += e.Prob
		if draw <= cumulative {
			return e.Category
		}
	}
	return fallback
}

// One returns a uniformly chosen element of items.
func One(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}

// Between returns a uniform int in [min, max].
func Between(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
