package mirror

import (
	"sync"

	"github.com/oredafashion/oreda-manager/internal/entity"
)

type StockHistoryMirror struct {
	list  []entity.StockHistoryEntry
	mutex sync.RWMutex
}

func newStockHistoryMirror() *StockHistoryMirror {
	return &StockHistoryMirror{}
}

func (m *StockHistoryMirror) replace(entries []entity.StockHistoryEntry) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.list = entries
}

// All returns a copy of the movement log in load order.
func (m *StockHistoryMirror) All() []entity.StockHistoryEntry {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make([]entity.StockHistoryEntry, len(m.list))
	copy(out, m.list)
	return out
}

// ForProduct returns the movements of a single product, newest last.
func (m *StockHistoryMirror) ForProduct(productId int) []entity.StockHistoryEntry {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var out []entity.StockHistoryEntry
	for _, e := range m.list {
		if e.ProductId == productId {
			out = append(out, e)
		}
	}
	return out
}
