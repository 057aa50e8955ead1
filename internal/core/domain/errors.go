package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidMode indicates a parse mode other than "html" or "text".
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidChunkSize indicates a quotient that is not a positive integer.
	ErrInvalidChunkSize = errors.New("invalid chunk size")

	// ErrFetchFailed indicates the resource could not be retrieved
	// after all retry attempts were exhausted.
	ErrFetchFailed = errors.New("fetch failed")
)
