package typedmap

import (
	"errors"
	"fmt"
)

var (
	// ErrUninitializedMap is the panic value raised by writes through a map
	// handle that was never built by a constructor.
	ErrUninitializedMap = errors.New("typedmap: write through uninitialized map")

	// ErrDuplicateKey matches any DuplicateKeyError via errors.Is.
	ErrDuplicateKey = errors.New("typedmap: duplicate key")
)

// DuplicateKeyError reports the offending key of a strict-mode FromEntries
// rejection.
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("typedmap: duplicate key %v in entries", e.Key)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}
