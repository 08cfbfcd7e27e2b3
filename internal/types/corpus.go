package types

import (
	"time"

	"github.com/google/uuid"
)

// CorpusEntry is a single retrievable unit of CV text.
// Entries are created by ingestion and are read-only from the retrieval
// engine's perspective; a retrieval call never mutates one.
type CorpusEntry struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`

	// Facets used for exact-match filtering.
	Profession Profession `json:"profession"`
	Section    Section    `json:"section"`
	Category   string     `json:"category,omitempty"`
	Industry   string     `json:"industry,omitempty"`

	// Re-ranker signals.
	ContentKind ContentKind `json:"content_kind"`
	Confidence  float64     `json:"confidence"`
	WordCount   int         `json:"word_count"`

	// Embedding computed from Content at ingestion time. A nil or
	// wrong-dimension vector excludes the entry from similarity ranking
	// but never fails a query.
	Embedding []float32 `json:"embedding,omitempty"`

	SourceDocument string    `json:"source_document,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// FacetFilters restricts a corpus query to entries matching the set facets.
// A zero-value facet leaves that dimension unconstrained.
type FacetFilters struct {
	Profession Profession
	Section    Section
}
