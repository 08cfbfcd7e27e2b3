package ranking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-composer/internal/types"
)

func TestCombine_SemanticFirstThenKeywordOnly(t *testing.T) {
	shared := types.CorpusEntry{ID: uuid.New(), Title: "shared"}
	semOnly := types.CorpusEntry{ID: uuid.New(), Title: "semantic only"}
	kwOnly := types.CorpusEntry{ID: uuid.New(), Title: "keyword only"}

	combined := Combine(
		[]types.CorpusEntry{semOnly, shared},
		[]types.CorpusEntry{shared, kwOnly},
		0,
	)

	require.Len(t, combined, 3)
	assert.Equal(t, "semantic only", combined[0].Title)
	assert.Equal(t, "shared", combined[1].Title)
	assert.Equal(t, "keyword only", combined[2].Title)
}

func TestCombine_DeduplicatesByID(t *testing.T) {
	entry := types.CorpusEntry{ID: uuid.New(), Title: "dup"}

	combined := Combine(
		[]types.CorpusEntry{entry},
		[]types.CorpusEntry{entry, entry},
		0,
	)

	assert.Len(t, combined, 1)
}

func TestCombine_CapApplied(t *testing.T) {
	semantic := []types.CorpusEntry{
		{ID: uuid.New(), Title: "s1"},
		{ID: uuid.New(), Title: "s2"},
	}
	keyword := []types.CorpusEntry{
		{ID: uuid.New(), Title: "k1"},
	}

	combined := Combine(semantic, keyword, 2)

	require.Len(t, combined, 2)
	// Semantic priority means the keyword-only hit is the one dropped.
	assert.Equal(t, "s1", combined[0].Title)
	assert.Equal(t, "s2", combined[1].Title)
}

func TestCombine_EmptySemantic(t *testing.T) {
	kw := []types.CorpusEntry{{ID: uuid.New(), Title: "k1"}}
	combined := Combine(nil, kw, 0)
	require.Len(t, combined, 1)
	assert.Equal(t, "k1", combined[0].Title)
}

func TestCombine_BothEmpty(t *testing.T) {
	assert.Empty(t, Combine(nil, nil, 5))
}
