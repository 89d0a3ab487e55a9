package mirror

import (
	"sync"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

type ProductMirror struct {
	list    []entity.Product
	idCache map[int]entity.Product
	mutex   sync.RWMutex
}

func newProductMirror() *ProductMirror {
	return &ProductMirror{idCache: make(map[int]entity.Product)}
}

func (m *ProductMirror) replace(products []entity.Product) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.list = products
	m.idCache = make(map[int]entity.Product, len(products))
	for _, p := range products {
		m.idCache[p.Id] = p
	}
}

// All returns a copy of the product list in load order.
func (m *ProductMirror) All() []entity.Product {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make([]entity.Product, len(m.list))
	copy(out, m.list)
	return out
}

func (m *ProductMirror) GetById(id int) (*entity.Product, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	p, found := m.idCache[id]
	return &p, found
}

func (m *ProductMirror) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.list)
}
