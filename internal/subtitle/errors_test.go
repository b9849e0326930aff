package subtitle

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("wrap: %w", ErrInvalidArgument), "InvalidArgument"},
		{fmt.Errorf("%w: x", ErrInvalidTimestamp), "InvalidTimestamp"},
		{&FormatError{Reason: "invalid index"}, "MalformedRecord"},
		{&FormatError{Reason: "invalid subtitle format", Err: ErrInvalidTimestamp}, "MalformedRecord"},
		{&ShiftError{Err: ErrInvalidTimestamp}, "InvalidTimestamp"},
		{&IOError{Op: "open", Path: "x.srt", Err: os.ErrNotExist}, "IOError"},
		{errors.New("other"), "Error"},
	}

	for _, tt := range tests {
		if got := Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	fe := &FormatError{Line: 12, Reason: "invalid index \"x\""}
	if got := fe.Error(); got != `line 12: invalid index "x"` {
		t.Errorf("FormatError.Error() = %q", got)
	}

	ioErr := &IOError{Op: "open", Path: "in.srt", Err: os.ErrNotExist}
	if !errors.Is(ioErr, os.ErrNotExist) {
		t.Error("IOError should unwrap to its cause")
	}
	if got := ioErr.Error(); got != "open in.srt: file does not exist" {
		t.Errorf("IOError.Error() = %q", got)
	}
}
