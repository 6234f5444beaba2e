package loot

// Generate filters catalog by c and samples the survivors under budget.
// See Sample for how materials and rng are used.
func Generate(catalog []Item, budget int, c Constraints, materials []Material, rng RandomSource) ([]Item, error) {
	if err := validateBudget(budget); err != nil {
		return nil, err
	}
	return Sample(Filter(catalog, c), budget, materials, rng)
}

// Sample draws items until their point values reach budget.
//
// Each round keeps the items still affordable with the remaining budget and
// draws one with weight 1/rarity; the run ends once nothing is affordable.
// When materials is non-nil (even empty) every pick goes through Resolve.
// A resolved pick whose value no longer fits the remaining budget ends the
// run without being added, so the total never exceeds budget.
//
// filtered is expected to come from Filter: every rarity and point value
// positive. A nil rng uses DefaultRNG.
func Sample(filtered []Item, budget int, materials []Material, rng RandomSource) ([]Item, error) {
	if err := validateBudget(budget); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	var idx *materialIndex
	if materials != nil {
		idx = newMaterialIndex(materials)
	}

	out := []Item{}
	total := 0
	available := make([]Item, 0, len(filtered))
	for total < budget {
		remaining := budget - total
		available = affordable(available[:0], filtered, remaining)
		if len(available) == 0 {
			break
		}
		pick := available[WeightedIndex(rarityWeights(available), rng)]
		if idx != nil {
			pick = idx.resolve(pick, rng)
			if pick.PointValue > remaining {
				break
			}
		}
		out = append(out, pick)
		total += pick.PointValue
	}
	return out, nil
}

// affordable appends to dst the items of src costing at most remaining.
func affordable(dst, src []Item, remaining int) []Item {
	for _, it := range src {
		if it.PointValue > 0 && it.Rarity > 0 && it.PointValue <= remaining {
			dst = append(dst, it)
		}
	}
	return dst
}

// Total sums the point values of items.
func Total(items []Item) int {
	sum := 0
	for _, it := range items {
		sum += it.PointValue
	}
	return sum
}
