package generator

import (
	"errors"
	"fmt"

	"github.com/Yalort/lootgen/internal/loot"
)

var (
	// ErrBudgetTooLarge is returned when a budget exceeds the configured cap.
	ErrBudgetTooLarge = fmt.Errorf("%w: budget too large", loot.ErrInvalidArgument)
	// ErrTooManyTrials is returned when a simulation asks for more trials
	// than the configured cap.
	ErrTooManyTrials = fmt.Errorf("%w: too many trials", loot.ErrInvalidArgument)

	errNegativeRarity = errors.New("rarity bounds must not be negative")
)

// Request describes one generation.
type Request struct {
	Budget      int      `json:"budget" validate:"gt=0"`
	IncludeTags []string `json:"include_tags,omitempty" validate:"dive,required,notblank"`
	ExcludeTags []string `json:"exclude_tags,omitempty" validate:"dive,required,notblank"`
	// MinRarity and MaxRarity are inclusive. Zero means unbounded.
	MinRarity int `json:"min_rarity,omitempty" validate:"gte=0"`
	MaxRarity int `json:"max_rarity,omitempty" validate:"gte=0"`
	// UseMaterials enables placeholder resolution. Nil means true.
	UseMaterials *bool `json:"use_materials,omitempty"`
	// Seed makes the run reproducible. Nil uses the crypto source.
	Seed *uint64 `json:"seed,omitempty"`
}

// SimRequest describes a Monte Carlo simulation over the same inputs as a
// generation.
type SimRequest struct {
	Request
	Trials int `json:"trials" validate:"gt=0"`
}

// Result is the outcome of one generation.
type Result struct {
	ID          string      `json:"id"`
	Items       []loot.Item `json:"items"`
	TotalPoints int         `json:"total_points"`
	Budget      int         `json:"budget"`
	Seed        *uint64     `json:"seed,omitempty"`
	Warnings    []string    `json:"warnings,omitempty"`
}

// CatalogInfo summarizes the catalog being served.
type CatalogInfo struct {
	Items     int      `json:"items"`
	Materials int      `json:"materials"`
	Tags      []string `json:"tags"`
	Warnings  []string `json:"warnings,omitempty"`
}

func (r Request) constraints() (loot.Constraints, error) {
	if r.MinRarity < 0 || r.MaxRarity < 0 {
		return loot.Constraints{}, fmt.Errorf("%w: %w", loot.ErrInvalidArgument, errNegativeRarity)
	}
	c := loot.Constraints{IncludeTags: r.IncludeTags, ExcludeTags: r.ExcludeTags}
	if r.MinRarity > 0 {
		lo := r.MinRarity
		c.MinRarity = &lo
	}
	if r.MaxRarity > 0 {
		hi := r.MaxRarity
		c.MaxRarity = &hi
	}
	return c, nil
}

func (r Request) useMaterials() bool {
	return r.UseMaterials == nil || *r.UseMaterials
}

func (r Request) rng() loot.RandomSource {
	if r.Seed != nil {
		return loot.NewSeededRNG(*r.Seed)
	}
	return loot.DefaultRNG()
}
