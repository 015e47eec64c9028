package input

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	ErrNotFound       = errors.New("input file does not exist")
	ErrNotAFile       = errors.New("input path is not a file")
	ErrMalformedInput = errors.New("malformed input")
)

// NotFoundError is returned when the input path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file does not exist: %s", e.Path)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotAFileError is returned when the input path exists but is a directory
// or another non-regular file.
type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("input path is not a file: %s", e.Path)
}

func (e *NotAFileError) Is(target error) bool { return target == ErrNotAFile }

// MalformedInputError is returned when the input content is not valid JSON.
// Err is the underlying decoder failure.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("failed to parse JSON from %s: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }
