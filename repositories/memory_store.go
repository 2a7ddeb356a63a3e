package repositories

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"emoji-shop/models"
)

// MemoryStore is the in-process driver used for local runs and tests. It keeps
// raw JSON blobs so Get exercises the same strict-parse path as the remote
// drivers.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (*models.Product, error) {
	s.mu.RLock()
	data, ok := s.blobs[key]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return models.ParseProduct(data)
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.blobs))
	for key := range s.blobs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, product *models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.blobs[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() {}

// PutRaw stores an arbitrary blob, bypassing marshalling. Tests use it to plant
// malformed records.
func (s *MemoryStore) PutRaw(key string, data []byte) {
	s.mu.Lock()
	s.blobs[key] = data
	s.mu.Unlock()
}
