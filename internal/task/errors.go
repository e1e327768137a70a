package task

import (
	"errors"
	"fmt"
)

// Sentinel errors for store mutations.
var (
	// ErrInvalidIndex is returned when a caller passes index 0. Task
	// numbers are 1-based; 0 is never valid.
	ErrInvalidIndex = errors.New("task numbers start at 1")

	// ErrEmptyDescription is returned when an added description is empty
	// after trimming.
	ErrEmptyDescription = errors.New("task description cannot be empty")
)

// StatusError reports status text that matched none of the accepted words.
type StatusError struct {
	Text string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %q not recognized (use: todo, in-progress, done)", e.Text)
}

// IndexError reports a 1-based index beyond the current task count.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("no task exists at index %d", e.Index)
}

// FileError reports a failed read or write of the persisted task file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("access task file %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// ParseError reports persisted content that could not be decoded, or
// in-memory tasks that could not be encoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed task file %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
