package corpus

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-composer/internal/types"
)

func seedStore(t *testing.T) (*MemoryStore, []types.CorpusEntry) {
	t.Helper()
	store := NewMemoryStore()
	entries := []types.CorpusEntry{
		{ID: uuid.New(), Title: "Backend summary", Profession: types.ProfessionBackendDev, Section: types.SectionSummary},
		{ID: uuid.New(), Title: "Backend achievement", Profession: types.ProfessionBackendDev, Section: types.SectionAchievement},
		{ID: uuid.New(), Title: "Manager summary", Profession: types.ProfessionManager, Section: types.SectionSummary},
	}
	require.NoError(t, store.InsertEntries(context.Background(), entries))
	return store, entries
}

func TestMemoryStoreListEntries_NoFilters(t *testing.T) {
	store, entries := seedStore(t)

	got, err := store.ListEntries(context.Background(), types.FacetFilters{}, 0)
	assert.NoError(t, err)
	assert.Len(t, got, len(entries))
	// Insertion order is preserved
	assert.Equal(t, "Backend summary", got[0].Title)
}

func TestMemoryStoreListEntries_ProfessionFilter(t *testing.T) {
	store, _ := seedStore(t)

	got, err := store.ListEntries(context.Background(), types.FacetFilters{Profession: types.ProfessionBackendDev}, 0)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, types.ProfessionBackendDev, e.Profession)
	}
}

func TestMemoryStoreListEntries_CombinedFilters(t *testing.T) {
	store, _ := seedStore(t)

	got, err := store.ListEntries(context.Background(), types.FacetFilters{
		Profession: types.ProfessionBackendDev,
		Section:    types.SectionAchievement,
	}, 0)
	assert.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Backend achievement", got[0].Title)
}

func TestMemoryStoreListEntries_LimitApplied(t *testing.T) {
	store, _ := seedStore(t)

	got, err := store.ListEntries(context.Background(), types.FacetFilters{}, 2)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMemoryStoreGetByIDs_PreservesOrderAndDropsDangling(t *testing.T) {
	store, entries := seedStore(t)

	missing := uuid.New()
	got, err := store.GetByIDs(context.Background(), []uuid.UUID{entries[2].ID, missing, entries[0].ID})
	assert.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entries[2].ID, got[0].ID)
	assert.Equal(t, entries[0].ID, got[1].ID)
}

func TestMemoryStoreDelete(t *testing.T) {
	store, entries := seedStore(t)

	assert.True(t, store.Delete(entries[1].ID))
	assert.False(t, store.Delete(entries[1].ID))
	assert.Equal(t, 2, store.Len())

	got, err := store.GetByIDs(context.Background(), []uuid.UUID{entries[0].ID, entries[1].ID, entries[2].ID})
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
