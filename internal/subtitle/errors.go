package subtitle

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrMalformedRecord  = errors.New("malformed record")
	ErrIO               = errors.New("i/o error")
)

// FormatError reports a block that could not be turned into a Record.
type FormatError struct {
	Line   int // first line of the offending block, 1-based; 0 when unknown
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Reason
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedRecord}
	}
	return []error{ErrMalformedRecord, e.Err}
}

// ShiftError reports the record whose timestamps could not be moved.
type ShiftError struct {
	Position int // zero-based position in the sequence
	Index    int // index as written in the file
	Err      error
}

func (e *ShiftError) Error() string {
	return fmt.Sprintf("shift record %d (position %d): %v", e.Index, e.Position, e.Err)
}

func (e *ShiftError) Unwrap() error {
	return e.Err
}

// IOError wraps a failure of the underlying stream or file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// Kind names the category of err for one-line reports.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidArgument):
		return "InvalidArgument"
	case errors.Is(err, ErrMalformedRecord):
		return "MalformedRecord"
	case errors.Is(err, ErrInvalidTimestamp):
		return "InvalidTimestamp"
	case errors.Is(err, ErrIO):
		return "IOError"
	default:
		return "Error"
	}
}
