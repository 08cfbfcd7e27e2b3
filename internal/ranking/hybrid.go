package ranking

import (
	"github.com/google/uuid"

	"github.com/jonathan/cv-composer/internal/types"
)

// Combine merges semantic and keyword search results. Semantic entries keep
// priority and order; keyword-only matches are appended after them in their
// own order. Entries are deduplicated by ID and the result is capped at
// limit (limit <= 0 means no cap). Pure function of its inputs.
func Combine(semantic, keyword []types.CorpusEntry, limit int) []types.CorpusEntry {
	seen := make(map[uuid.UUID]bool, len(semantic)+len(keyword))
	combined := make([]types.CorpusEntry, 0, len(semantic)+len(keyword))

	for _, entry := range semantic {
		if seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true
		combined = append(combined, entry)
	}
	for _, entry := range keyword {
		if seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true
		combined = append(combined, entry)
	}

	if limit > 0 && len(combined) > limit {
		combined = combined[:limit]
	}
	return combined
}
