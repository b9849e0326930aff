package subtitle

import (
	"bufio"
	"io"
)

// Writer serializes Records as SubRip blocks.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one record followed by the blank separator line.
func (w *Writer) Write(r *Record) error {
	if _, err := w.w.WriteString(r.String()); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	if _, err := w.w.WriteString(CRLF); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// WriteAll writes records in order and flushes.
func (w *Writer) WriteAll(records []*Record) error {
	for _, r := range records {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return &IOError{Op: "flush", Err: err}
	}
	return nil
}
