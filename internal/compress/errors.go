package compress

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when a format name does not map to a
// known container format.
var ErrUnsupportedFormat = errors.New("unsupported compression format")

// InvalidInputError reports a user-correctable precondition failure:
// the source path does not name an existing file.
type InvalidInputError struct {
	Path string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("source file '%s' does not exist", e.Path)
}

// IOError wraps a filesystem or stream failure encountered while running
// a job. Op names the operation that failed.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("IO error: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
