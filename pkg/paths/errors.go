package paths

import (
	"errors"
	"fmt"
)

// ErrInvalidPathData indicates a candidate path string was rejected by a
// [Validator]. The default validator accepts every string, so this error is
// only reachable with a caller-supplied validator.
var ErrInvalidPathData = errors.New("invalid path data")

// InvalidPathError describes a rejected path string together with the
// validation failure that rejected it. It matches [ErrInvalidPathData] under
// [errors.Is].
type InvalidPathError struct {
	// Value is the offending, already-normalized path string.
	Value string
	// Err is the underlying validation failure.
	Err error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%v: %q: %v", ErrInvalidPathData, e.Value, e.Err)
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

func (e *InvalidPathError) Is(target error) bool {
	return target == ErrInvalidPathData
}
