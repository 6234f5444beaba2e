package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func testCatalog() []Item {
	return []Item{
		{Name: "Sword", Rarity: 1, Description: "A sword", PointValue: 10, Tags: []string{"weapon", "melee"}},
		{Name: "Potion", Rarity: 2, Description: "Heals", PointValue: 5, Tags: []string{"consumable"}},
		{Name: "Staff", Rarity: 3, Description: "Glows", PointValue: 15, Tags: []string{"weapon", "magic"}},
		{Name: "Broken Bow", Rarity: 0, Description: "Unusable", PointValue: 5, Tags: []string{"weapon"}},
		{Name: "Pebble", Rarity: 1, Description: "Worthless", PointValue: 0, Tags: []string{"misc"}},
		{Name: "Amulet", Rarity: 5, Description: "Old", PointValue: 25, Tags: []string{"magic", "jewelry"}},
	}
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		c    Constraints
		want []string
	}{
		{"no constraints drops non-positive items", Constraints{}, []string{"Sword", "Potion", "Staff", "Amulet"}},
		{"include tags", Constraints{IncludeTags: []string{"weapon"}}, []string{"Sword", "Staff"}},
		{"include any of several", Constraints{IncludeTags: []string{"consumable", "jewelry"}}, []string{"Potion", "Amulet"}},
		{"exclude tags", Constraints{ExcludeTags: []string{"magic"}}, []string{"Sword", "Potion"}},
		{"include and exclude", Constraints{IncludeTags: []string{"weapon"}, ExcludeTags: []string{"magic"}}, []string{"Sword"}},
		{"rarity range", Constraints{MinRarity: intPtr(2), MaxRarity: intPtr(3)}, []string{"Potion", "Staff"}},
		{"min only", Constraints{MinRarity: intPtr(3)}, []string{"Staff", "Amulet"}},
		{"max only", Constraints{MaxRarity: intPtr(1)}, []string{"Sword"}},
		{"non-positive bound does not admit rarity 0", Constraints{MinRarity: intPtr(0)}, []string{"Sword", "Potion", "Staff", "Amulet"}},
		{"unknown include tag", Constraints{IncludeTags: []string{"nonexistent"}}, []string{}},
		{"tags are case sensitive", Constraints{IncludeTags: []string{"Weapon"}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testCatalog(), tt.c)
			assert.Equal(t, tt.want, names(got))
			for _, it := range got {
				assert.Positive(t, it.Rarity)
				assert.Positive(t, it.PointValue)
				if len(tt.c.IncludeTags) > 0 {
					assert.True(t, it.HasAnyTag(tt.c.IncludeTags))
				}
				if len(tt.c.ExcludeTags) > 0 {
					assert.False(t, it.HasAnyTag(tt.c.ExcludeTags))
				}
			}
		})
	}
}

func TestFilter_DoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog()
	before := testCatalog()
	_ = Filter(catalog, Constraints{IncludeTags: []string{"weapon"}})
	assert.Equal(t, before, catalog)
}

func TestFilter_Empty(t *testing.T) {
	assert.Empty(t, Filter(nil, Constraints{}))
}
