package storage

import (
	"bytes"
	"sync"

	"github.com/kalambet/dias/internal/platform"
)

// memoryBackend keeps entries in a map. It exists for tests and for
// applications that want to run without persistence.
type memoryBackend struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory returns a Storage whose values live only as long as the process.
func NewMemory(opts ...Option) *Storage {
	return New(&memoryBackend{entries: make(map[string][]byte)}, opts...)
}

func (m *memoryBackend) Save(scope platform.Scope, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entryKey(scope, key)] = bytes.Clone(payload)
	return nil
}

func (m *memoryBackend) Load(scope platform.Scope, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.entries[entryKey(scope, key)]
	if !ok {
		return nil, notFound(key)
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (m *memoryBackend) Exists(scope platform.Scope, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[entryKey(scope, key)]
	return ok, nil
}

func (m *memoryBackend) Remove(scope platform.Scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, entryKey(scope, key))
	return nil
}
