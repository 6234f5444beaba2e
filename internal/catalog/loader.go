package catalog

import (
	"errors"
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"

	"github.com/Yalort/lootgen/internal/loot"
)

// DefaultCacheSize is the number of parsed catalogs a Loader keeps.
const DefaultCacheSize = 16

// Loader reads catalog files and caches the parsed result per file pair.
type Loader struct {
	cache *lru.Cache[string, *Catalog]
}

// NewLoader creates a loader holding at most size catalogs.
func NewLoader(size int) (*Loader, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[string, *Catalog](size)
	if err != nil {
		return nil, fmt.Errorf("create catalog cache: %w", err)
	}
	return &Loader{cache: c}, nil
}

// Load returns the catalog built from the two files, reading them only on a
// cache miss. The returned catalog is shared and must not be modified.
func (l *Loader) Load(itemsPath, materialsPath string) (*Catalog, error) {
	key := itemsPath + "\x00" + materialsPath
	if cat, ok := l.cache.Get(key); ok {
		return cat, nil
	}
	cat, err := Read(itemsPath, materialsPath)
	if err != nil {
		return nil, err
	}
	l.cache.Add(key, cat)
	return cat, nil
}

// Invalidate clears the cache. Call after a watched file changes.
func (l *Loader) Invalidate() {
	l.cache.Purge()
}

// Read loads and validates an items file and an optional materials file.
// An empty materialsPath, or one that does not exist, yields no materials.
func Read(itemsPath, materialsPath string) (*Catalog, error) {
	items, declared, err := LoadItems(itemsPath)
	if err != nil {
		return nil, err
	}
	materials := []loot.Material{}
	if materialsPath != "" {
		materials, err = LoadMaterials(materialsPath)
		if err != nil {
			return nil, err
		}
	}
	return &Catalog{
		Items:     items,
		Materials: materials,
		Tags:      AllTags(items, declared),
		Warnings:  Warnings(items, materials),
	}, nil
}

// LoadItems reads an items file. Both a bare list of items and an object with
// "items" and optional "tags" keys are accepted. The declared tags are nil
// when the file has none.
func LoadItems(path string) ([]loot.Item, []string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read items %s: %w", path, err)
	}
	items, tags, err := ParseItems(b)
	if err != nil {
		return nil, nil, fmt.Errorf("items %s: %w", path, err)
	}
	return items, tags, nil
}

// ParseItems decodes an items document in JSON or YAML.
func ParseItems(data []byte) ([]loot.Item, []string, error) {
	if err := validateDocument(data, itemsSchema); err != nil {
		return nil, nil, err
	}
	node, err := documentNode(data)
	if err != nil {
		return nil, nil, err
	}

	var doc itemsDoc
	if node.Kind == yaml.SequenceNode {
		err = node.Decode(&doc.Items)
	} else {
		err = node.Decode(&doc)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("decode items: %w", err)
	}
	if err := validateItemRecords(doc.Items); err != nil {
		return nil, nil, err
	}

	items := make([]loot.Item, 0, len(doc.Items))
	for _, r := range doc.Items {
		items = append(items, r.toItem())
	}
	return items, doc.Tags, nil
}

// LoadMaterials reads a materials file. A missing file yields an empty list.
func LoadMaterials(path string) ([]loot.Material, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []loot.Material{}, nil
		}
		return nil, fmt.Errorf("read materials %s: %w", path, err)
	}
	mats, err := ParseMaterials(b)
	if err != nil {
		return nil, fmt.Errorf("materials %s: %w", path, err)
	}
	return mats, nil
}

// ParseMaterials decodes a materials document in JSON or YAML, either a bare
// list or an object with a "materials" key.
func ParseMaterials(data []byte) ([]loot.Material, error) {
	if err := validateDocument(data, materialsSchema); err != nil {
		return nil, err
	}
	node, err := documentNode(data)
	if err != nil {
		return nil, err
	}

	var doc materialsDoc
	if node.Kind == yaml.SequenceNode {
		err = node.Decode(&doc.Materials)
	} else {
		err = node.Decode(&doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode materials: %w", err)
	}
	if err := validateMaterialRecords(doc.Materials); err != nil {
		return nil, err
	}

	mats := make([]loot.Material, 0, len(doc.Materials))
	for _, r := range doc.Materials {
		mats = append(mats, r.toMaterial())
	}
	return mats, nil
}

// documentNode returns the top-level node of a single-document stream.
func documentNode(data []byte) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New("empty document")
	}
	return root.Content[0], nil
}
