// Package ranking scores corpus entries against a query embedding and
// orders them for retrieval.
package ranking

import (
	"sort"

	"github.com/jonathan/cv-composer/internal/embedding"
	"github.com/jonathan/cv-composer/internal/types"
)

// ScoredEntry pairs a corpus entry with its similarity score.
type ScoredEntry struct {
	Entry types.CorpusEntry
	Score float64
}

// Stats counts how many candidates were scored versus skipped during
// similarity ranking. Skips are never errors; the counts exist for diagnostics.
type Stats struct {
	Scored  int
	Skipped int
}

// RankBySimilarity scores candidates by cosine similarity to the query
// vector and returns them in descending score order. Candidates with a
// missing or dimension-mismatched embedding are skipped, not zero-scored.
// The sort is stable: equal scores keep corpus insertion order.
// Truncation to top-K is the caller's concern.
func RankBySimilarity(queryVector []float32, candidates []types.CorpusEntry) ([]ScoredEntry, Stats) {
	var stats Stats
	scored := make([]ScoredEntry, 0, len(candidates))

	for _, entry := range candidates {
		if len(entry.Embedding) == 0 {
			stats.Skipped++
			continue
		}
		score, err := embedding.Cosine(queryVector, entry.Embedding)
		if err != nil {
			stats.Skipped++
			continue
		}
		scored = append(scored, ScoredEntry{Entry: entry, Score: score})
		stats.Scored++
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored, stats
}

// Entries strips scores, returning entries in ranked order.
func Entries(scored []ScoredEntry) []types.CorpusEntry {
	entries := make([]types.CorpusEntry, len(scored))
	for i, s := range scored {
		entries[i] = s.Entry
	}
	return entries
}
