package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory cache Store guarded by a single mutex, so
// racing writers cannot interleave a partial record.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*Record
}

// NewMemoryStore creates an empty in-memory cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

// Lookup returns the record for a fingerprint, incrementing its hit count.
func (s *MemoryStore) Lookup(_ context.Context, fingerprint string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[fingerprint]
	if !ok {
		return nil, nil
	}

	record.HitCount++
	record.AccessedAt = time.Now()

	copied := *record
	copied.ResultIDs = append([]uuid.UUID(nil), record.ResultIDs...)
	return &copied, nil
}

// Put upserts a record by fingerprint.
func (s *MemoryStore) Put(_ context.Context, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *record
	stored.ResultIDs = append([]uuid.UUID(nil), record.ResultIDs...)
	stored.HitCount = 0
	now := time.Now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.AccessedAt = now

	s.records[record.Fingerprint] = &stored
	return nil
}

// Len returns the number of cached records.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
