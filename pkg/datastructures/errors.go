package datastructures

import (
	"errors"
	"fmt"
)

// Common error variables for datastructure operations.
var (
	// ErrIndexOutOfRange indicates an index outside the valid range of a sequence
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownMergeMethod indicates an unrecognized dictionary merge method
	ErrUnknownMergeMethod = errors.New("unknown merge method")

	// ErrEmptyKeychain indicates an empty key path was given for a nested operation
	ErrEmptyKeychain = errors.New("empty keychain")

	// ErrInvalidInterval indicates interval bounds that are not ordered
	ErrInvalidInterval = errors.New("invalid interval bounds")
)

// IndexError reports an index that falls outside the valid range of a
// sequence. The valid range for a sequence of length n is [-n, n-1];
// negative indices address elements from the end.
type IndexError struct {
	// Index is the offending index as supplied by the caller
	Index int

	// Length is the length of the sequence that was indexed
	Length int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [%d, %d] for sequence of length %d",
		e.Index, -e.Length, e.Length-1, e.Length)
}

// Unwrap returns the sentinel ErrIndexOutOfRange so callers can use errors.Is.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
