package store

import (
	"context"
	"sync"
)

// MemoryBackend keeps records in process memory. Data does not survive a
// restart.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string]map[string]string
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{records: make(map[string]map[string]string)}
}

func (m *MemoryBackend) Get(ctx context.Context, namespace, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.records[namespace][key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MemoryBackend) Set(ctx context.Context, namespace, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ns, ok := m.records[namespace]
	if !ok {
		ns = make(map[string]string)
		m.records[namespace] = ns
	}
	ns[key] = value
	return nil
}

func (m *MemoryBackend) Delete(ctx context.Context, namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records[namespace], key)
	return nil
}

func (m *MemoryBackend) Ping(ctx context.Context) error {
	return nil
}
