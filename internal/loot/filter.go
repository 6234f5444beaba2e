package loot

// Filter returns, in catalog order, the items satisfying c. Items with a
// non-positive rarity or point value never pass, whatever c says.
func Filter(items []Item, c Constraints) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if c.allows(it) {
			out = append(out, it)
		}
	}
	return out
}

func (c Constraints) allows(it Item) bool {
	if it.Rarity <= 0 || it.PointValue <= 0 {
		return false
	}
	if len(c.IncludeTags) > 0 && !it.HasAnyTag(c.IncludeTags) {
		return false
	}
	if len(c.ExcludeTags) > 0 && it.HasAnyTag(c.ExcludeTags) {
		return false
	}
	if c.MinRarity != nil && it.Rarity < *c.MinRarity {
		return false
	}
	if c.MaxRarity != nil && it.Rarity > *c.MaxRarity {
		return false
	}
	return true
}
