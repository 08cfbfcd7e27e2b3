package cache

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cv-composer/internal/types"
)

// Record is one cached retrieval result. Results are stored by entry ID,
// not by value: a hit re-resolves IDs against the current corpus, so
// edits are reflected and deleted entries drop out. Records have no
// expiry; they live until the corpus entries behind them disappear.
type Record struct {
	Fingerprint string
	QueryText   string
	Profession  types.Profession
	Section     types.Section
	ResultIDs   []uuid.UUID
	HitCount    int
	CreatedAt   time.Time
	AccessedAt  time.Time
}

// Store holds cache records keyed by fingerprint. Writes are idempotent
// upserts: concurrent writers racing on one fingerprint may overwrite each
// other's counters, but a record is never partially written.
type Store interface {
	// Lookup returns the record for a fingerprint, incrementing its hit
	// count and touching its access time. Returns (nil, nil) on a miss.
	Lookup(ctx context.Context, fingerprint string) (*Record, error)

	// Put upserts a record by fingerprint, resetting its hit count.
	Put(ctx context.Context, record *Record) error
}
