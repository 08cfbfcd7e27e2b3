// Package embedding converts text into fixed-length numeric vectors for
// semantic similarity search.
package embedding

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrInvalidInput indicates the caller passed text that cannot be
	// embedded as a matter of precondition (empty after trimming).
	ErrInvalidInput = errors.New("embedding: invalid input text")

	// ErrVectorization indicates the embedding backend failed to process
	// otherwise well-formed text.
	ErrVectorization = errors.New("embedding: vectorization failed")
)

// Embedder is an abstraction over embedding model providers.
// Implementations must be deterministic for a fixed model configuration:
// the same text always yields the same vector.
type Embedder interface {
	// Embed converts a single text into a vector.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch converts multiple texts in one call. It is a throughput
	// optimization only: results must equal embedding each text individually,
	// in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// validateInput rejects empty or whitespace-only text before it reaches a backend.
func validateInput(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrInvalidInput
	}
	return trimmed, nil
}
