// types.go
package catalog

import "github.com/Yalort/lootgen/internal/loot"

// ItemRecord is one item as written in a catalog file.
type ItemRecord struct {
	Name        string   `yaml:"name" validate:"required"`
	Rarity      int      `yaml:"rarity"`
	Description string   `yaml:"description"`
	PointValue  int      `yaml:"point_value"`
	Tags        []string `yaml:"tags" validate:"dive,required"`
}

// MaterialRecord is one material as written in a materials file.
type MaterialRecord struct {
	Name     string  `yaml:"name" validate:"required"`
	Modifier float64 `yaml:"modifier" validate:"gt=0"`
	Type     string  `yaml:"type" validate:"required"`
}

// itemsDoc is the wrapped items file shape: {"items": [...], "tags": [...]}.
// A bare list of items is accepted too.
type itemsDoc struct {
	Items []ItemRecord `yaml:"items"`
	Tags  []string     `yaml:"tags,omitempty"`
}

// materialsDoc is the wrapped materials file shape: {"materials": [...]}.
type materialsDoc struct {
	Materials []MaterialRecord `yaml:"materials"`
}

// Catalog is the validated input handed to the generator.
type Catalog struct {
	Items     []loot.Item
	Materials []loot.Material
	// Tags is the declared tag list, or the tags derived from Items when the
	// file declares none.
	Tags []string
	// Warnings lists data that loads but will be skipped or left unresolved.
	Warnings []string
}

func (r ItemRecord) toItem() loot.Item {
	return loot.Item{
		Name:        r.Name,
		Rarity:      r.Rarity,
		Description: r.Description,
		PointValue:  r.PointValue,
		Tags:        append([]string(nil), r.Tags...),
	}
}

func (r MaterialRecord) toMaterial() loot.Material {
	return loot.Material{Name: r.Name, Modifier: r.Modifier, Type: r.Type}
}
