package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "nil", err: nil, wantCode: ExitOK, wantMsg: ""},
		{name: "plain error", err: errors.New("boom"), wantCode: ExitFailure, wantMsg: "Error: boom\n"},
		{name: "already reported", err: &ExitError{Code: ExitFailure}, wantCode: ExitFailure, wantMsg: ""},
		{name: "broken pipe", err: &ExitError{Code: ExitBrokenPipe}, wantCode: ExitBrokenPipe, wantMsg: ""},
		{
			name:     "wrapped exit error",
			err:      fmt.Errorf("outer: %w", &ExitError{Code: 3, Err: errors.New("inner")}),
			wantCode: 3,
			wantMsg:  "Error: inner\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if got := HandleError(buf, tt.err); got != tt.wantCode {
				t.Errorf("code = %d, want %d", got, tt.wantCode)
			}
			if buf.String() != tt.wantMsg {
				t.Errorf("message = %q, want %q", buf.String(), tt.wantMsg)
			}
		})
	}
}

func TestExitError_Error(t *testing.T) {
	if got := (&ExitError{Code: 141}).Error(); got != "exit status 141" {
		t.Errorf("Error() = %q", got)
	}
	inner := errors.New("inner")
	e := &ExitError{Code: 1, Err: inner}
	if e.Error() != "inner" || !errors.Is(e, inner) {
		t.Errorf("ExitError does not expose wrapped error: %v", e)
	}
}
