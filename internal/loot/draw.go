package loot

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")

// WeightedIndex picks an index with probability proportional to its weight.
// r ~ U[0, sum) is walked down by each weight in order; the first index that
// brings it to <= 0 wins. If rounding leaves r slightly positive after the
// last weight, the last index is returned.
// weights must be non-empty and positive.
func WeightedIndex(weights []float64, rng RandomSource) int {
	if rng == nil {
		rng = DefaultRNG()
	}
	var sum float64
	for _, w := range weights {
		sum += w
	}
	r := rng.Float64() * sum
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return i
		}
	}
	return len(weights) - 1
}

// rarityWeights maps each item to 1/rarity.
func rarityWeights(items []Item) []float64 {
	weights := make([]float64, len(items))
	for i, it := range items {
		weights[i] = 1.0 / float64(it.Rarity)
	}
	return weights
}
