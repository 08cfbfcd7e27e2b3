package retrieval

import "errors"

var (
	// ErrInvalidInput indicates a malformed request (empty query, bad
	// top-K). Surfaced immediately; never worth retrying.
	ErrInvalidInput = errors.New("retrieval: invalid input")

	// ErrVectorization indicates the query itself could not be embedded,
	// which makes ranking impossible for the whole call. Per-entry
	// embedding problems are contained as skip counts instead.
	ErrVectorization = errors.New("retrieval: query vectorization failed")

	// ErrTimeout indicates the caller's deadline expired mid-retrieval.
	// Partial results are never returned in that case.
	ErrTimeout = errors.New("retrieval: deadline exceeded")
)
