// Package corpus provides read/write access to the knowledge base of CV entries.
package corpus

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/cv-composer/internal/types"
)

// DefaultCandidateCap bounds how many entries a full-corpus scan returns.
// Brute-force similarity over more than this is not worth the latency.
const DefaultCandidateCap = 2000

// Store is the corpus collaborator consumed by the retrieval engine.
// Retrieval uses it read-only; only ingestion writes.
type Store interface {
	// ListEntries returns entries matching the set facets, in a stable
	// insertion order. limit <= 0 applies DefaultCandidateCap.
	ListEntries(ctx context.Context, filters types.FacetFilters, limit int) ([]types.CorpusEntry, error)

	// GetByIDs resolves entries by ID, preserving the order of ids.
	// IDs that no longer resolve are silently dropped.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]types.CorpusEntry, error)

	// InsertEntries stores new entries. Used by ingestion only.
	InsertEntries(ctx context.Context, entries []types.CorpusEntry) error
}
