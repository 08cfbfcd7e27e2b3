package embedding

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrDimensionMismatch indicates two vectors of different lengths were compared.
var ErrDimensionMismatch = errors.New("embedding: vector dimension mismatch")

// Cosine returns the cosine similarity between two vectors, in [-1, 1].
// A zero-magnitude vector yields similarity 0 rather than NaN.
func Cosine(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrDimensionMismatch
	}
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// ParseVector decodes a stored embedding in either JSON array or
// comma-separated format. Returns nil (no error) for text that matches
// neither format: a malformed stored embedding excludes the entry from
// ranking but is never a query-level failure.
func ParseVector(s string) []float32 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// JSON array format
	var vals []float32
	if err := json.Unmarshal([]byte(s), &vals); err == nil && len(vals) > 0 {
		return vals
	}

	// Comma-separated fallback
	parts := strings.Split(s, ",")
	vals = make([]float32, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil
		}
		vals = append(vals, float32(f))
	}
	if len(vals) == 0 {
		return nil
	}
	return vals
}

// EncodeVector renders a vector as a JSON array string for storage.
func EncodeVector(v []float32) string {
	if len(v) == 0 {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
