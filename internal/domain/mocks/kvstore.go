package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/ersonp/dex-core/internal/domain/ports"
)

// KeyValueStore is a mock implementation of ports.KeyValueStore.
// It is safe for concurrent use.
type KeyValueStore struct {
	Data   map[string][]byte
	GetErr error
	SetErr error

	// BeforeSet, if set, runs at the start of every Set call.
	BeforeSet func(key string, value []byte)

	mu sync.Mutex

	// Call tracking
	SetCallCount int
}

// NewKeyValueStore creates a new empty mock store.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{
		Data: make(map[string][]byte),
	}
}

// Get returns the stored value or ErrNotFound.
func (m *KeyValueStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.Data[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, ports.ErrNotFound)
	}
	return v, nil
}

// Set stores a copy of the value.
func (m *KeyValueStore) Set(_ context.Context, key string, value []byte) error {
	if m.BeforeSet != nil {
		m.BeforeSet(key, value)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetCallCount++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = append([]byte(nil), value...)
	return nil
}
