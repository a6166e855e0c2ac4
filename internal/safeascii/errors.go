package safeascii

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidMode indicates an unknown mode name.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidExclude indicates an exclude list entry that is not a decimal byte value.
	ErrInvalidExclude = errors.New("invalid exclude value")

	// ErrInvalidTruncate indicates a truncate length below Unlimited.
	ErrInvalidTruncate = errors.New("invalid truncate length")
)

// ExcludeError describes a single bad entry in an exclude list.
type ExcludeError struct {
	Value  string // Entry as written by the user
	Reason string
}

func (e *ExcludeError) Error() string {
	return fmt.Sprintf("unparsable value %q in exclusion list: %s", e.Value, e.Reason)
}

func (e *ExcludeError) Unwrap() error {
	return ErrInvalidExclude
}

// ReadError wraps a failure reading the input stream. Output produced for
// earlier bytes has already been written when it is returned.
type ReadError struct {
	Offset int64 // Input bytes successfully read before the failure
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read failed after %d bytes: %v", e.Offset, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError wraps a failure writing sanitized output.
type WriteError struct {
	Written int64 // Output bytes accepted by the writer before the failure
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed after %d bytes: %v", e.Written, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
