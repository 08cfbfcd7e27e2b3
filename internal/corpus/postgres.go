package corpus

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cv-composer/internal/embedding"
	"github.com/jonathan/cv-composer/internal/types"
)

// PostgresStore implements Store on a PostgreSQL connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// NewPostgresStore wraps an existing pool. The caller retains ownership.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const entryColumns = `id, title, content, profession, cv_section, category, industry,
	content_kind, confidence, word_count, embedding, source_document, created_at`

// ListEntries returns entries matching the set facets, ordered by insertion.
func (s *PostgresStore) ListEntries(ctx context.Context, filters types.FacetFilters, limit int) ([]types.CorpusEntry, error) {
	if limit <= 0 {
		limit = DefaultCandidateCap
	}

	query := `SELECT ` + entryColumns + ` FROM corpus_entries WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Profession != "" {
		query += fmt.Sprintf(" AND profession = $%d", argNum)
		args = append(args, string(filters.Profession))
		argNum++
	}
	if filters.Section != "" {
		query += fmt.Sprintf(" AND cv_section = $%d", argNum)
		args = append(args, string(filters.Section))
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at, id LIMIT $%d", argNum)
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus entries: %w", err)
	}
	defer rows.Close()

	var entries []types.CorpusEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan corpus entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// GetByIDs resolves entries by ID, preserving the order of ids and
// dropping any that no longer exist.
func (s *PostgresStore) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]types.CorpusEntry, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM corpus_entries WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get corpus entries: %w", err)
	}
	defer rows.Close()

	found := make(map[uuid.UUID]types.CorpusEntry, len(ids))
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan corpus entry: %w", err)
		}
		found[entry.ID] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries := make([]types.CorpusEntry, 0, len(ids))
	for _, id := range ids {
		if entry, ok := found[id]; ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// InsertEntries stores new entries, assigning IDs to any that lack one.
func (s *PostgresStore) InsertEntries(ctx context.Context, entries []types.CorpusEntry) error {
	for i := range entries {
		if entries[i].ID == uuid.Nil {
			entries[i].ID = uuid.New()
		}

		_, err := s.pool.Exec(ctx,
			`INSERT INTO corpus_entries
			   (id, title, content, profession, cv_section, category, industry,
			    content_kind, confidence, word_count, embedding, source_document)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			entries[i].ID, entries[i].Title, entries[i].Content,
			string(entries[i].Profession), string(entries[i].Section),
			entries[i].Category, entries[i].Industry,
			string(entries[i].ContentKind), entries[i].Confidence, entries[i].WordCount,
			embedding.EncodeVector(entries[i].Embedding), entries[i].SourceDocument,
		)
		if err != nil {
			return fmt.Errorf("failed to insert corpus entry %q: %w", entries[i].Title, err)
		}
	}
	return nil
}

// rowScanner matches both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntry reads one corpus entry row. The stored embedding text is parsed
// leniently: a malformed vector leaves Embedding nil so the similarity
// ranker skips the entry instead of the query failing.
func scanEntry(row rowScanner) (types.CorpusEntry, error) {
	var entry types.CorpusEntry
	var profession, section, kind, embeddingText string

	err := row.Scan(&entry.ID, &entry.Title, &entry.Content, &profession, &section,
		&entry.Category, &entry.Industry, &kind, &entry.Confidence, &entry.WordCount,
		&embeddingText, &entry.SourceDocument, &entry.CreatedAt)
	if err != nil {
		return types.CorpusEntry{}, err
	}

	entry.Profession = types.Profession(profession)
	entry.Section = types.Section(section)
	entry.ContentKind = types.ContentKind(kind)
	entry.Embedding = embedding.ParseVector(embeddingText)
	return entry, nil
}
