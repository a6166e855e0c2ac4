package cmd

import (
	"errors"
	"fmt"
	"io"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitBrokenPipe is what a shell reports for a process killed by SIGPIPE.
	ExitBrokenPipe = 141
)

// ExitError carries the process exit code out of Execute. A nil Err means
// the failure was already reported.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// HandleError prints err to w unless it was already reported, and returns
// the exit code for it.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(w, "Error: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return ExitFailure
}
