// Package retrieval composes embedding, corpus filtering, ranking, and
// caching into the engine that finds grounding examples for generation.
package retrieval

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/cv-composer/internal/cache"
	"github.com/jonathan/cv-composer/internal/corpus"
	"github.com/jonathan/cv-composer/internal/embedding"
	"github.com/jonathan/cv-composer/internal/ranking"
	"github.com/jonathan/cv-composer/internal/types"
)

// DefaultTopK is used when a request does not say how many entries it wants.
const DefaultTopK = 3

// Request describes one retrieval call.
type Request struct {
	Query      string           `validate:"required"`
	Profession types.Profession // empty = unconstrained
	Section    types.Section    // empty = unconstrained
	TopK       int              `validate:"gte=0"`
	UseCache   bool
	Hybrid     bool
}

var requestValidator = validator.New()

// Validate checks the request, mapping any violation to ErrInvalidInput.
func (r *Request) Validate() error {
	if err := requestValidator.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// Result is the detailed outcome of a retrieval call.
type Result struct {
	Entries []types.CorpusEntry
	// Scores holds the similarity score per entry, aligned with Entries.
	// Empty on a cache hit, where scores were not recomputed.
	Scores []float64
	// Stats counts scored vs. skipped candidates for diagnostics.
	Stats ranking.Stats
	// CacheHit reports whether the result came from the query cache.
	CacheHit bool
}

// Engine is the retrieval core. All collaborators are injected; the engine
// itself holds no global state and is safe for concurrent use.
type Engine struct {
	embedder     embedding.Embedder
	store        corpus.Store
	cache        cache.Store // nil disables caching entirely
	candidateCap int
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache attaches a query cache store.
func WithCache(store cache.Store) Option {
	return func(e *Engine) { e.cache = store }
}

// WithCandidateCap overrides the full-scan candidate cap.
func WithCandidateCap(cap int) Option {
	return func(e *Engine) { e.candidateCap = cap }
}

// NewEngine creates a retrieval engine over the given embedder and corpus.
func NewEngine(embedder embedding.Embedder, store corpus.Store, opts ...Option) *Engine {
	e := &Engine{
		embedder:     embedder,
		store:        store,
		candidateCap: corpus.DefaultCandidateCap,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Retrieve returns the most relevant corpus entries for the request.
// An empty slice is a valid outcome when nothing matches the facets.
func (e *Engine) Retrieve(ctx context.Context, req Request) ([]types.CorpusEntry, error) {
	result, err := e.RetrieveDetailed(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Entries, nil
}

// RetrieveDetailed is Retrieve plus diagnostics: similarity scores,
// scored/skipped counts, and whether the cache served the call.
func (e *Engine) RetrieveDetailed(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.TopK == 0 {
		req.TopK = DefaultTopK
	}

	filters := types.FacetFilters{Profession: req.Profession, Section: req.Section}
	fingerprint := cache.Fingerprint(req.Query, filters)

	if req.UseCache && e.cache != nil {
		cached, err := e.lookupCached(ctx, fingerprint)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return cached, nil
		}
	}

	result, err := e.search(ctx, req, filters)
	if err != nil {
		return nil, err
	}

	if req.UseCache && e.cache != nil && len(result.Entries) > 0 {
		ids := make([]uuid.UUID, len(result.Entries))
		for i, entry := range result.Entries {
			ids[i] = entry.ID
		}
		record := &cache.Record{
			Fingerprint: fingerprint,
			QueryText:   req.Query,
			Profession:  req.Profession,
			Section:     req.Section,
			ResultIDs:   ids,
		}
		// A failed cache write degrades future latency, not this result.
		_ = e.cache.Put(ctx, record)
	}

	return result, nil
}

// lookupCached resolves a cache record back into entries. Results are
// cached by ID, so the corpus is consulted on every hit: edited entries
// come back fresh and deleted ones silently drop out.
func (e *Engine) lookupCached(ctx context.Context, fingerprint string) (*Result, error) {
	record, err := e.cache.Lookup(ctx, fingerprint)
	if err != nil || record == nil {
		// A broken cache read falls through to a fresh search.
		return nil, e.timeoutOrNil(ctx)
	}

	entries, err := e.store.GetByIDs(ctx, record.ResultIDs)
	if err != nil {
		return nil, e.wrapStoreErr(ctx, err)
	}
	return &Result{Entries: entries, CacheHit: true}, nil
}

// search runs the uncached pipeline: embed, filter, rank, truncate,
// re-rank, and optionally merge keyword matches.
func (e *Engine) search(ctx context.Context, req Request, filters types.FacetFilters) (*Result, error) {
	queryVector, err := e.embedder.Embed(ctx, req.Query)
	if err != nil {
		if timeoutErr := e.timeoutOrNil(ctx); timeoutErr != nil {
			return nil, timeoutErr
		}
		if errors.Is(err, embedding.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrVectorization, err)
	}

	candidates, err := e.store.ListEntries(ctx, filters, e.candidateCap)
	if err != nil {
		return nil, e.wrapStoreErr(ctx, err)
	}
	if len(candidates) == 0 {
		return &Result{}, nil
	}

	scored, stats := ranking.RankBySimilarity(queryVector, candidates)
	if err := e.timeoutOrNil(ctx); err != nil {
		return nil, err
	}

	top := scored
	if req.TopK < len(top) {
		top = top[:req.TopK]
	}

	scoreByID := make(map[uuid.UUID]float64, len(top))
	for _, s := range top {
		scoreByID[s.Entry.ID] = s.Score
	}

	entries := ranking.Rerank(ranking.Entries(top), req.TopK)

	if req.Hybrid {
		keyword := ranking.KeywordMatch(req.Query, candidates)
		if len(keyword) > req.TopK {
			keyword = keyword[:req.TopK]
		}
		entries = ranking.Combine(entries, keyword, req.TopK)
	}

	// Keyword-only entries carry no similarity score; they report 0.
	finalScores := make([]float64, len(entries))
	for i, entry := range entries {
		finalScores[i] = scoreByID[entry.ID]
	}

	return &Result{Entries: entries, Scores: finalScores, Stats: stats}, nil
}

// timeoutOrNil converts context expiry into the engine's timeout error.
func (e *Engine) timeoutOrNil(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return nil
}

// wrapStoreErr maps a corpus read failure, preferring the timeout error
// when the context already expired.
func (e *Engine) wrapStoreErr(ctx context.Context, err error) error {
	if timeoutErr := e.timeoutOrNil(ctx); timeoutErr != nil {
		return timeoutErr
	}
	return fmt.Errorf("failed to read corpus: %w", err)
}
