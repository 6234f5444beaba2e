package catalog

import (
	"sync"
)

// Store holds the current catalog and swaps it atomically on reload.
// Readers get an immutable snapshot.
type Store struct {
	loader        *Loader
	itemsPath     string
	materialsPath string

	mu  sync.RWMutex
	cat *Catalog
}

// NewStore loads the catalog once and returns a store serving it.
func NewStore(loader *Loader, itemsPath, materialsPath string) (*Store, error) {
	s := &Store{loader: loader, itemsPath: itemsPath, materialsPath: materialsPath}
	cat, err := loader.Load(itemsPath, materialsPath)
	if err != nil {
		return nil, err
	}
	s.cat = cat
	return s, nil
}

// Snapshot returns the catalog currently in use.
func (s *Store) Snapshot() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// Reload re-reads the files. On error the previous catalog stays in place.
func (s *Store) Reload() (*Catalog, error) {
	s.loader.Invalidate()
	cat, err := s.loader.Load(s.itemsPath, s.materialsPath)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.cat = cat
	s.mu.Unlock()
	return cat, nil
}

// Paths returns the files backing the store.
func (s *Store) Paths() []string {
	if s.materialsPath == "" {
		return []string{s.itemsPath}
	}
	return []string{s.itemsPath, s.materialsPath}
}
