package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/Simplici0/freight/internal/apperrors"
)

// DefaultCapacity is the number of records kept when no capacity is configured.
const DefaultCapacity = 50

// Store is an ordered record store with capacity eviction. Records are listed newest first.
type Store interface {
	Insert(ctx context.Context, rec Record) error
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

func normalizeCapacity(capacity int) int {
	if capacity <= 0 {
		return DefaultCapacity
	}
	return capacity
}

// prepend puts rec in front of records and drops whatever exceeds capacity.
func prepend(records []Record, rec Record, capacity int) []Record {
	out := make([]Record, 0, min(len(records)+1, capacity))
	out = append(out, rec)
	for _, r := range records {
		if len(out) == capacity {
			break
		}
		out = append(out, r)
	}
	return out
}

func find(records []Record, id string) (int, bool) {
	for i, r := range records {
		if r.ID == id {
			return i, true
		}
	}
	return -1, false
}

func notFound(id string) error {
	return fmt.Errorf("%w: history record %q", apperrors.ErrNotFound, id)
}

// MemoryStore keeps records in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	records  []Record
	capacity int
}

// NewMemoryStore returns an empty MemoryStore. A non-positive capacity means DefaultCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{capacity: normalizeCapacity(capacity)}
}

func (s *MemoryStore) Insert(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = prepend(s.records, rec, s.capacity)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := find(s.records, id)
	if !ok {
		return Record{}, notFound(id)
	}
	return s.records[i], nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := find(s.records, id)
	if !ok {
		return notFound(id)
	}
	s.records = append(s.records[:i:i], s.records[i+1:]...)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return nil
}
