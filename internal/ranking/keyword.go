package ranking

import (
	"strings"

	"github.com/jonathan/cv-composer/internal/types"
)

// KeywordMatch returns entries where every whitespace-separated query token
// appears as a case-insensitive substring of the title or content. It is a
// boolean AND filter, not a scored ranking; matches keep their input order.
func KeywordMatch(query string, entries []types.CorpusEntry) []types.CorpusEntry {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}

	matches := make([]types.CorpusEntry, 0)
	for _, entry := range entries {
		haystack := strings.ToLower(entry.Title) + " " + strings.ToLower(entry.Content)
		all := true
		for _, token := range tokens {
			if !strings.Contains(haystack, token) {
				all = false
				break
			}
		}
		if all {
			matches = append(matches, entry)
		}
	}
	return matches
}
