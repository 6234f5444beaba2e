package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yalort/lootgen/internal/loot"
)

func TestAllTags(t *testing.T) {
	items := []loot.Item{
		{Name: "A", Tags: []string{"weapon", "magic"}},
		{Name: "B", Tags: []string{"armor", "weapon"}},
		{Name: "C"},
	}
	assert.Equal(t, []string{"armor", "magic", "weapon"}, AllTags(items, nil))
	assert.Equal(t, []string{"z", "a"}, AllTags(items, []string{"z", "a"}))
	assert.Equal(t, []string{}, AllTags(items, []string{}))
	assert.Equal(t, []string{}, AllTags(nil, nil))
}

func TestParseTagList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"weapon", []string{"weapon"}},
		{"weapon, magic ,armor", []string{"weapon", "magic", "armor"}},
		{"weapon,weapon,magic", []string{"weapon", "magic"}},
		{"Weapon,weapon", []string{"Weapon", "weapon"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTagList(tt.in), "input %q", tt.in)
	}
}

func TestUnknownTags(t *testing.T) {
	known := []string{"weapon", "armor"}
	assert.Nil(t, UnknownTags([]string{"weapon"}, known))
	assert.Equal(t, []string{"weapn", "food"}, UnknownTags([]string{"weapn", "armor", "food"}, known))
}

func TestSuggestTag(t *testing.T) {
	known := []string{"weapon", "armor", "consumable", "gem"}
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"weapn", "weapon", true},
		{"ARMOR", "armor", true},
		{"consumabel", "consumable", true},
		{"gems", "gem", true},
		{"potion", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := SuggestTag(tt.in, known)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestWarnings(t *testing.T) {
	items := []loot.Item{
		{Name: "Sword of [Metal]", Rarity: 1, PointValue: 5},
		{Name: "[Fur/o] Cloak", Rarity: 1, PointValue: 5},
		{Name: "[fur] Hat", Rarity: 1, PointValue: 5},
		{Name: "Ghost", Rarity: 0, PointValue: 5},
	}
	mats := []loot.Material{
		{Name: "Iron", Modifier: 1, Type: "metal"},
		{Name: "Marble", Modifier: 1, Type: "Cut Stone"},
	}
	warns := Warnings(items, mats)
	assert.Len(t, warns, 3)
	assert.Contains(t, warns[0], `"Ghost"`)
	assert.Contains(t, warns[1], `"Cut Stone"`)
	assert.Contains(t, warns[2], `"Fur"`)

	assert.Empty(t, Warnings(items[:1], mats[:1]))
}
