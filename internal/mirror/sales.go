package mirror

import (
	"sync"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

type SaleMirror struct {
	list    []entity.Sale
	idCache map[int]entity.Sale
	mutex   sync.RWMutex
}

func newSaleMirror() *SaleMirror {
	return &SaleMirror{idCache: make(map[int]entity.Sale)}
}

func (m *SaleMirror) replace(sales []entity.Sale) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.list = sales
	m.idCache = make(map[int]entity.Sale, len(sales))
	for _, s := range sales {
		m.idCache[s.Id] = s
	}
}

// All returns a copy of the sales list in load order.
func (m *SaleMirror) All() []entity.Sale {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make([]entity.Sale, len(m.list))
	copy(out, m.list)
	return out
}

func (m *SaleMirror) GetById(id int) (*entity.Sale, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	s, found := m.idCache[id]
	return &s, found
}
