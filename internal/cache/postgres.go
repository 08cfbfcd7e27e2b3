package cache

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cv-composer/internal/types"
)

// PostgresStore persists cache records in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing pool. The caller retains ownership.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Lookup returns the record for a fingerprint, incrementing its hit count
// and touching its access time in the same statement so the update is atomic.
func (s *PostgresStore) Lookup(ctx context.Context, fingerprint string) (*Record, error) {
	var record Record
	var profession, section string
	var ids []uuid.UUID

	err := s.pool.QueryRow(ctx,
		`UPDATE retrieval_cache
		 SET hit_count = hit_count + 1, accessed_at = NOW()
		 WHERE fingerprint = $1
		 RETURNING fingerprint, query_text, profession, cv_section, result_ids,
		           hit_count, created_at, accessed_at`,
		fingerprint,
	).Scan(&record.Fingerprint, &record.QueryText, &profession, &section, &ids,
		&record.HitCount, &record.CreatedAt, &record.AccessedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up cache record: %w", err)
	}

	record.Profession = types.Profession(profession)
	record.Section = types.Section(section)
	record.ResultIDs = ids
	return &record, nil
}

// Put upserts a record by fingerprint. Last writer wins; the single
// INSERT .. ON CONFLICT keeps racing writers from corrupting the row.
func (s *PostgresStore) Put(ctx context.Context, record *Record) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO retrieval_cache
		   (fingerprint, query_text, profession, cv_section, result_ids, hit_count)
		 VALUES ($1, $2, $3, $4, $5, 0)
		 ON CONFLICT (fingerprint) DO UPDATE
		 SET query_text = $2, profession = $3, cv_section = $4, result_ids = $5,
		     hit_count = 0, accessed_at = NOW()`,
		record.Fingerprint, record.QueryText,
		string(record.Profession), string(record.Section), record.ResultIDs,
	)
	if err != nil {
		return fmt.Errorf("failed to store cache record: %w", err)
	}
	return nil
}
