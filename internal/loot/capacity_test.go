package loot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxReachable(t *testing.T) {
	pv := func(values ...int) []Item {
		items := make([]Item, len(values))
		for i, v := range values {
			items[i] = Item{Rarity: 1, PointValue: v}
		}
		return items
	}

	tests := []struct {
		name   string
		items  []Item
		budget int
		want   int
	}{
		{"exact multiple", pv(4, 6), 10, 10},
		{"gap below budget", pv(4, 6), 13, 12},
		{"nothing fits", pv(4, 6), 3, 0},
		{"zero budget", pv(1), 0, 0},
		{"ignores non-positive values", pv(0, -3, 7), 20, 14},
		{"no items", nil, 10, 0},
		{"coprime values fill", pv(3, 5), 7, 6},
		{"common divisor reduces table", pv(6, 10), 13, 12},
		{"past the schur bound", pv(3, 5), 1_000_001, 1_000_001},
		{"max budget with one huge value", pv(1 << 62), math.MaxInt, 1 << 62},
		{"max budget with coprime values", pv(3, 5), math.MaxInt, math.MaxInt},
		{"search too large", pv(1_000_003, 1_000_033), 1 << 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxReachable(tt.items, tt.budget))
		})
	}
}
