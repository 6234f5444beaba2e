package loot

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// optionalSkipProb is the chance an optional placeholder is dropped outright.
const optionalSkipProb = 0.5

// Resolve substitutes a material into every placeholder of item's name and
// scales its point value by the product of the chosen modifiers.
//
// An optional placeholder is removed on a failed coin flip; a placeholder no
// material matches is removed as well. Neither contributes to the modifier.
// The resulting name is trimmed. Points are round(PointValue * modifier),
// rounding half away from zero, saturating at math.MaxInt. A positive input
// never drops below 1, so a product under 0.5 (a 0.1 modifier on a 3-point
// item) still yields 1.
func Resolve(item Item, materials []Material, rng RandomSource) Item {
	if rng == nil {
		rng = DefaultRNG()
	}
	return newMaterialIndex(materials).resolve(item, rng)
}

// materialIndex keeps case-folded material types next to the catalog so a
// sampling run folds them once.
type materialIndex struct {
	materials []Material
	folded    []string
	caser     cases.Caser
}

func newMaterialIndex(materials []Material) *materialIndex {
	idx := &materialIndex{
		materials: materials,
		folded:    make([]string, len(materials)),
		caser:     cases.Fold(),
	}
	for i, m := range materials {
		idx.folded[i] = idx.caser.String(m.Type)
	}
	return idx
}

// matching returns the materials whose type equals any key, in catalog order.
func (idx *materialIndex) matching(keys []string) []Material {
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[idx.caser.String(k)] = struct{}{}
	}
	var out []Material
	for i, f := range idx.folded {
		if _, ok := want[f]; ok {
			out = append(out, idx.materials[i])
		}
	}
	return out
}

func (idx *materialIndex) resolve(item Item, rng RandomSource) Item {
	var b strings.Builder
	modifier := 1.0
	for _, seg := range parseTemplate(item.Name) {
		if seg.token == nil {
			b.WriteString(seg.text)
			continue
		}
		if seg.token.Optional && rng.Float64() < optionalSkipProb {
			continue
		}
		options := idx.matching(seg.token.Keys)
		if len(options) == 0 {
			continue
		}
		choice := options[rng.IntN(len(options))]
		b.WriteString(choice.Name)
		modifier *= choice.Modifier
	}
	return item.WithResolved(strings.TrimSpace(b.String()), scalePoints(item.PointValue, modifier))
}

// scalePoints applies modifier with math.Round (half away from zero).
// A positive value stays positive so every pick adds to the running total.
func scalePoints(points int, modifier float64) int {
	p := math.Round(float64(points) * modifier)
	if p >= float64(math.MaxInt) {
		return math.MaxInt
	}
	v := int(p)
	if points > 0 && v < 1 {
		v = 1
	}
	return v
}
