package sortgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sortgo/seqlist"
)

var (
	// ErrNotFound is returned by Remove and Index when the value is not
	// present, or not present within the requested index window.
	ErrNotFound = errors.New("value not found")
)

// translateError unifies engine errors at the package surface. Positional
// errors (seqlist.ErrIndexOutOfRange, seqlist.ErrOrderViolation) pass
// through unchanged and can be inspected with errors.As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, seqlist.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
