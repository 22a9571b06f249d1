package collection

import "sync"

// SyncMap is a generic RWMutex guarded map that remembers insertion order.
type SyncMap[K comparable, V any] struct {
	m     map[K]V
	order []K
	mux   sync.RWMutex
}

func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

func (m *SyncMap[K, V]) Put(k K, v V) {
	m.mux.Lock()
	defer m.mux.Unlock()
	if _, ok := m.m[k]; !ok {
		m.order = append(m.order, k)
	}
	m.m[k] = v
}

func (m *SyncMap[K, V]) Delete(k K) bool {
	m.mux.Lock()
	defer m.mux.Unlock()
	if _, ok := m.m[k]; !ok {
		return false
	}
	delete(m.m, k)
	for i, key := range m.order {
		if key == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Values returns values in insertion order
func (m *SyncMap[K, V]) Values() []V {
	m.mux.RLock()
	defer m.mux.RUnlock()
	ret := make([]V, 0, len(m.order))
	for _, k := range m.order {
		ret = append(ret, m.m[k])
	}
	return ret
}

func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{m: make(map[K]V)}
}
