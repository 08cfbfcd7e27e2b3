package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-composer/internal/corpus"
	"github.com/jonathan/cv-composer/internal/types"
)

type fakeEmbedder struct {
	mu      sync.Mutex
	batches int
	failAll bool
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vectors, err := f.EmbedBatch(context.Background(), []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	f.batches++
	f.mu.Unlock()

	if f.failAll {
		return nil, errors.New("embedding backend unavailable")
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(len(texts[i])), 1, 0}
	}
	return vectors, nil
}

func writeCorpusFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportJSON_InsertsEmbeddedEntries(t *testing.T) {
	store := corpus.NewMemoryStore()
	imp := NewImporter(store, &fakeEmbedder{})

	path := writeCorpusFile(t, `[
		{
			"title": "Billing API",
			"content": "Implemented billing APIs handling peak traffic",
			"profession": "Backend Developer",
			"section": "achievement",
			"confidence": 0.95
		},
		{
			"title": "Untagged",
			"content": "Proficient in React and CSS for frontend UI work"
		}
	]`)

	report, err := imp.ImportJSON(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Zero(t, report.Skipped)
	assert.Zero(t, report.Failed)
	require.Equal(t, 2, store.Len())

	entries, err := store.ListEntries(context.Background(), types.FacetFilters{}, 0)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotEmpty(t, entry.Embedding)
		assert.NotZero(t, entry.ID)
		assert.Positive(t, entry.WordCount)
	}

	tagged := entries[0]
	assert.Equal(t, types.ProfessionBackendDev, tagged.Profession)
	assert.Equal(t, types.SectionAchievement, tagged.Section)
	assert.InDelta(t, 0.95, tagged.Confidence, 1e-9)

	// Missing facets are classified from the text, and missing confidence
	// falls back to the default.
	untagged := entries[1]
	assert.Equal(t, types.ProfessionFrontendDev, untagged.Profession)
	assert.Equal(t, types.SectionSkill, untagged.Section)
	assert.InDelta(t, defaultConfidence, untagged.Confidence, 1e-9)
}

func TestImportJSON_SchemaRejection(t *testing.T) {
	imp := NewImporter(corpus.NewMemoryStore(), &fakeEmbedder{})

	path := writeCorpusFile(t, `[{"title": "no content field"}]`)

	_, err := imp.ImportJSON(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestImportJSON_WhitespaceContentSkipped(t *testing.T) {
	store := corpus.NewMemoryStore()
	imp := NewImporter(store, &fakeEmbedder{})

	path := writeCorpusFile(t, `[
		{"title": "blank", "content": "   "},
		{"title": "real", "content": "Led the migration of legacy reports"}
	]`)

	report, err := imp.ImportJSON(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, store.Len())
}

func TestImportJSON_EmbeddingFailureDropsBatch(t *testing.T) {
	store := corpus.NewMemoryStore()
	imp := NewImporter(store, &fakeEmbedder{failAll: true})

	path := writeCorpusFile(t, `[{"title": "x", "content": "Managed quarterly audits"}]`)

	report, err := imp.ImportJSON(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, report.Imported)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "embedding batch failed")
	assert.Zero(t, store.Len())
}

func TestImportJSON_MalformedJSON(t *testing.T) {
	imp := NewImporter(corpus.NewMemoryStore(), &fakeEmbedder{})
	path := writeCorpusFile(t, `{not json`)

	_, err := imp.ImportJSON(context.Background(), path)
	assert.Error(t, err)
}

func TestImportPDFDir_MissingDirectory(t *testing.T) {
	imp := NewImporter(corpus.NewMemoryStore(), &fakeEmbedder{})

	_, err := imp.ImportPDFDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestImportPDFDir_IgnoresNonPDFFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	store := corpus.NewMemoryStore()
	imp := NewImporter(store, &fakeEmbedder{})

	report, err := imp.ImportPDFDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Zero(t, report.Imported)
	assert.Zero(t, report.Failed)
	assert.Zero(t, store.Len())
}

func TestEmbedAndInsert_BatchesLargeImports(t *testing.T) {
	store := corpus.NewMemoryStore()
	embedder := &fakeEmbedder{}
	imp := NewImporter(store, embedder)

	entries := make([]types.CorpusEntry, embedBatchSize+5)
	for i := range entries {
		entries[i] = types.CorpusEntry{Title: "t", Content: "some achievement text"}
	}

	report, err := imp.embedAndInsert(context.Background(), entries, &ImportReport{})
	require.NoError(t, err)
	assert.Equal(t, len(entries), report.Imported)
	assert.Equal(t, 2, embedder.batches)
	assert.Equal(t, len(entries), store.Len())
}

func TestEmbedAndInsert_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	imp := NewImporter(corpus.NewMemoryStore(), &fakeEmbedder{failAll: true})
	entries := []types.CorpusEntry{{Title: "t", Content: "text"}}

	_, err := imp.embedAndInsert(ctx, entries, &ImportReport{})
	assert.ErrorIs(t, err, context.Canceled)
}
