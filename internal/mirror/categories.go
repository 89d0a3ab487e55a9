package mirror

import (
	"sync"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

// CategoryMirror tracks the known category names. It starts from the
// shipped defaults and grows as products referencing new categories
// load; manually added categories survive product reloads.
type CategoryMirror struct {
	names []string
	seen  map[string]bool
	mutex sync.RWMutex
}

func newCategoryMirror() *CategoryMirror {
	m := &CategoryMirror{seen: make(map[string]bool)}
	for _, name := range entity.DefaultCategories {
		m.seen[name] = true
		m.names = append(m.names, name)
	}
	return m
}

func (m *CategoryMirror) absorb(products []entity.Product) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, p := range products {
		if p.Category == "" || m.seen[p.Category] {
			continue
		}
		m.seen[p.Category] = true
		m.names = append(m.names, p.Category)
	}
}

// Add registers a category name, rejecting duplicates.
func (m *CategoryMirror) Add(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.seen[name] {
		return entity.ErrDuplicateCategory
	}
	m.seen[name] = true
	m.names = append(m.names, name)
	return nil
}

// All returns a copy of the category names in registration order.
func (m *CategoryMirror) All() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

func (m *CategoryMirror) Has(name string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.seen[name]
}
