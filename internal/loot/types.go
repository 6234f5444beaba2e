// Package loot generates randomized loot under a point budget.
//
// The package is pure: it reads the catalog slices it is given, never
// mutates them, and draws all randomness from an injected RandomSource.
package loot

import "slices"

// Item is one catalog entry. Tags keep their catalog order for display;
// matching treats them as a set.
type Item struct {
	Name        string   `json:"name" yaml:"name"`
	Rarity      int      `json:"rarity" yaml:"rarity"`
	Description string   `json:"description" yaml:"description"`
	PointValue  int      `json:"point_value" yaml:"point_value"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// WithResolved returns a copy of it carrying the given name and point value.
// Rarity, description and tags are copied unchanged.
func (it Item) WithResolved(name string, pointValue int) Item {
	return Item{
		Name:        name,
		Rarity:      it.Rarity,
		Description: it.Description,
		PointValue:  pointValue,
		Tags:        slices.Clone(it.Tags),
	}
}

// HasAnyTag reports whether it carries at least one of tags.
func (it Item) HasAnyTag(tags []string) bool {
	for _, t := range it.Tags {
		if slices.Contains(tags, t) {
			return true
		}
	}
	return false
}

// Material can be substituted into a placeholder whose category list names
// its Type. Modifier scales the point value of the item it lands in.
type Material struct {
	Name     string  `json:"name" yaml:"name"`
	Modifier float64 `json:"modifier" yaml:"modifier"`
	Type     string  `json:"type" yaml:"type"`
}

// Constraints narrows the catalog before sampling. Empty tag lists and nil
// bounds place no constraint on their axis.
type Constraints struct {
	IncludeTags []string
	ExcludeTags []string
	MinRarity   *int
	MaxRarity   *int
}
