package seqlist

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a value-based search does not match any
	// stored element.
	ErrNotFound = errors.New("value not found")
)

// ErrIndexOutOfRange indicates a positional access beyond the current length.
type ErrIndexOutOfRange struct {
	Index int // Index as given by the caller, before normalization
	Len   int // Len is the list length at the time of the access
}

// Error returns the error message for an out-of-range access.
func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Len)
}

// ErrOrderViolation indicates a positional insert or replace that would
// break the global sort order. The list is left unchanged.
type ErrOrderViolation struct {
	Index int // Index is the position at which the violation was detected
}

// Error returns the error message for an order violation.
func (e *ErrOrderViolation) Error() string {
	return fmt.Sprintf("value at index %d would violate sort order", e.Index)
}
