package output

import (
	"errors"
	"fmt"
)

// ErrWrite is matched by every *WriteError via errors.Is.
var ErrWrite = errors.New("output write failed")

// Write stages reported in WriteError.Op.
const (
	OpMkdir  = "mkdir"
	OpEncode = "encode"
	OpWrite  = "write"
)

// WriteError is returned when the report cannot be persisted.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write output %s (%s): %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }
