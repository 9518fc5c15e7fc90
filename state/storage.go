package state

import (
	"context"
	"sync"
)

// Slice names a persisted subtree of the state. The name is also its
// storage key.
type Slice string

const (
	SliceUserInfo        Slice = "userInfo"
	SliceCartItems       Slice = "cartItems"
	SliceShippingAddress Slice = "shippingAddress"
	SlicePaymentMethod   Slice = "paymentMethod"
)

// AllSlices lists every persisted slice.
var AllSlices = []Slice{SliceUserInfo, SliceCartItems, SliceShippingAddress, SlicePaymentMethod}

// Storage is durable string key-value storage for state slices.
type Storage interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MemoryStorage is an in-process Storage.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStorage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Len returns the number of stored keys.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
