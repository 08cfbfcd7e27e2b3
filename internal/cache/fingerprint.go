// Package cache memoizes retrieval results keyed by a query fingerprint.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/jonathan/cv-composer/internal/types"
)

// unsetFacet stands in for an absent facet so that an explicitly empty
// filter and an omitted one canonicalize to the same fingerprint.
const unsetFacet = "-"

// Fingerprint derives the cache key for a query and its facet filters.
// It is a pure function: the same inputs always map to the same slot.
// Facets are canonicalized in a fixed order before hashing.
func Fingerprint(queryText string, filters types.FacetFilters) string {
	profession := string(filters.Profession)
	if profession == "" {
		profession = unsetFacet
	}
	section := string(filters.Section)
	if section == "" {
		section = unsetFacet
	}

	h := sha256.New()
	h.Write([]byte(queryText))
	h.Write([]byte{0})
	h.Write([]byte(profession))
	h.Write([]byte{0})
	h.Write([]byte(section))
	return hex.EncodeToString(h.Sum(nil))
}
