package store

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore is an in-process store for development and testing.
type MemoryStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{recs: make(map[string]Record)}
}

func (s *MemoryStore) Get(ctx context.Context, name string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.recs[name]
	if !ok {
		return nil, NotFound(name)
	}
	return &rec, nil
}

func (s *MemoryStore) Put(ctx context.Context, rec *Record) error {
	if err := ValidateName(rec.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec.UpdatedAt = time.Now()
	s.recs[rec.Name] = *rec
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.recs, name)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.recs))
	for name := range s.recs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
