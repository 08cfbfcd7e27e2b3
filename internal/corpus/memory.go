package corpus

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/cv-composer/internal/types"
)

// MemoryStore is an in-memory Store. It backs tests and small local corpora.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []types.CorpusEntry
	byID    map[uuid.UUID]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[uuid.UUID]int)}
}

// ListEntries returns entries matching the set facets in insertion order.
func (s *MemoryStore) ListEntries(_ context.Context, filters types.FacetFilters, limit int) ([]types.CorpusEntry, error) {
	if limit <= 0 {
		limit = DefaultCandidateCap
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]types.CorpusEntry, 0)
	for _, entry := range s.entries {
		if filters.Profession != "" && entry.Profession != filters.Profession {
			continue
		}
		if filters.Section != "" && entry.Section != filters.Section {
			continue
		}
		results = append(results, entry)
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// GetByIDs resolves entries by ID, preserving input order and dropping
// IDs that no longer exist.
func (s *MemoryStore) GetByIDs(_ context.Context, ids []uuid.UUID) ([]types.CorpusEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]types.CorpusEntry, 0, len(ids))
	for _, id := range ids {
		if idx, ok := s.byID[id]; ok {
			results = append(results, s.entries[idx])
		}
	}
	return results, nil
}

// InsertEntries appends entries, assigning IDs to any that lack one.
func (s *MemoryStore) InsertEntries(_ context.Context, entries []types.CorpusEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range entries {
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}
		s.byID[entry.ID] = len(s.entries)
		s.entries = append(s.entries, entry)
	}
	return nil
}

// Delete removes an entry by ID. Returns true if the entry existed.
func (s *MemoryStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	for i := idx; i < len(s.entries); i++ {
		s.byID[s.entries[i].ID] = i
	}
	return true
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
