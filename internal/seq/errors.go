package seq

import (
	"errors"
	"fmt"
)

// Domain errors for container operations.
var (
	// ErrIndexOutOfRange indicates an index outside the operation's valid range.
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrEmptyContainer indicates a removal or first/last access on an empty container.
	ErrEmptyContainer = errors.New("seq: empty container")

	// ErrInvalidConfiguration indicates a non-positive initial capacity.
	ErrInvalidConfiguration = errors.New("seq: invalid configuration")
)

// IndexError wraps ErrIndexOutOfRange with the offending call.
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("seq: %s: index %d out of range for length %d", e.Op, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func emptyErr(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmptyContainer)
}

func checkCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: initial capacity %d must be positive", ErrInvalidConfiguration, capacity)
	}
	return nil
}
