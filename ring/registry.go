package ring

import (
	"sync"
)

type tableKey struct {
	logN int
	q    uint64
}

// Registry maps (logN, q) pairs to shared, generated NTT tables.
// A table is generated on first request and the same pointer is returned afterwards.
// Failed generations are not recorded. A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	tables map[tableKey]*NTTTable
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tables: map[tableKey]*NTTTable{}}
}

// Get returns the table for (logN, q), generating it if needed.
// The returned table is shared and must not be modified.
func (r *Registry) Get(logN int, m Modulus) (*NTTTable, error) {

	key := tableKey{logN: logN, q: m.value}

	r.mu.RLock()
	table, ok := r.tables[key]
	r.mu.RUnlock()

	if ok {
		return table, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if table, ok = r.tables[key]; ok {
		return table, nil
	}

	table, err := NewNTTTable(logN, m)
	if err != nil {
		return nil, err
	}

	r.tables[key] = table

	return table, nil
}

// Len returns the number of tables held by the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}
