package storage

import (
	"errors"
	"sync"
)

var ErrQuotaExceeded = errors.New("storage: quota exceeded")

// MemoryBackend keeps values in a map. Quota, when positive, caps the size
// of a single value so tests can exercise write failures.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
	Quota  int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryBackend) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Quota > 0 && len(value) > m.Quota {
		return ErrQuotaExceeded
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}
