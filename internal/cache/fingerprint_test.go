package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-composer/internal/types"
)

func TestFingerprint_Deterministic(t *testing.T) {
	filters := types.FacetFilters{Profession: types.ProfessionBackendDev, Section: types.SectionSummary}
	a := Fingerprint("backend engineer", filters)
	b := Fingerprint("backend engineer", filters)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprint_QueryTextMatters(t *testing.T) {
	filters := types.FacetFilters{}
	assert.NotEqual(t, Fingerprint("backend", filters), Fingerprint("frontend", filters))
}

func TestFingerprint_FacetsMatter(t *testing.T) {
	q := "backend engineer"
	a := Fingerprint(q, types.FacetFilters{Profession: types.ProfessionBackendDev})
	b := Fingerprint(q, types.FacetFilters{Profession: types.ProfessionManager})
	c := Fingerprint(q, types.FacetFilters{})
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFingerprint_UnsetFacetCanonicalized(t *testing.T) {
	// An explicitly empty facet and an omitted one are the same slot.
	a := Fingerprint("query", types.FacetFilters{Profession: "", Section: ""})
	b := Fingerprint("query", types.FacetFilters{})
	assert.Equal(t, a, b)
}

func TestFingerprint_NoFieldBleed(t *testing.T) {
	// Separator keeps query text from bleeding into facet values.
	a := Fingerprint("queryBackend Developer", types.FacetFilters{})
	b := Fingerprint("query", types.FacetFilters{Profession: types.ProfessionBackendDev})
	assert.NotEqual(t, a, b)
}
