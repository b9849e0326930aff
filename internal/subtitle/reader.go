package subtitle

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

const maxLineSize = 1024 * 1024

// BlockScanner splits a stream into blocks of non-blank lines. Blank or
// whitespace-only lines end a block; runs of them are absorbed.
type BlockScanner struct {
	scanner  *bufio.Scanner
	pending  []string
	start    int
	lineNum  int
	block    []string
	blockAt  int
	trailing []string
	done     bool
	err      error
}

func NewBlockScanner(r io.Reader) *BlockScanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)
	return &BlockScanner{scanner: scanner}
}

// Scan advances to the next blank-line terminated block.
func (s *BlockScanner) Scan() bool {
	if s.done {
		return false
	}
	s.block = nil

	for s.scanner.Scan() {
		s.lineNum++
		line := s.scanner.Text()

		if strings.TrimSpace(line) == "" {
			if len(s.pending) == 0 {
				continue
			}
			s.block, s.blockAt = s.pending, s.start
			s.pending = nil
			return true
		}

		if len(s.pending) == 0 {
			s.start = s.lineNum
		}
		s.pending = append(s.pending, line)
	}

	s.done = true
	if err := s.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			s.err = &FormatError{Line: s.lineNum + 1, Reason: "line longer than 1 MiB"}
		} else {
			s.err = &IOError{Op: "read", Err: err}
		}
		s.pending = nil
		return false
	}
	s.trailing, s.pending = s.pending, nil
	return false
}

// Block returns the lines of the current block.
func (s *BlockScanner) Block() []string { return s.block }

// Line returns the 1-based line number the current block starts on.
func (s *BlockScanner) Line() int { return s.blockAt }

func (s *BlockScanner) Err() error { return s.err }

// Trailing returns the lines after the last blank separator once Scan has
// returned false. They never formed a terminated block.
func (s *BlockScanner) Trailing() []string { return s.trailing }

// TrailingLine is the line number the trailing lines start on.
func (s *BlockScanner) TrailingLine() int {
	if len(s.trailing) == 0 {
		return 0
	}
	return s.start
}

// Reader turns a stream into Records.
type Reader struct {
	// FlushTrailing parses a final block that has no blank line after it.
	// By default such a block is dropped and reported by Dropped.
	FlushTrailing bool

	blocks  *BlockScanner
	dropped []string
}

func NewReader(r io.Reader) *Reader {
	return &Reader{blocks: NewBlockScanner(r)}
}

// ReadAll parses every block. The first malformed block aborts the read
// and no records are returned.
func (r *Reader) ReadAll() ([]*Record, error) {
	var records []*Record
	for r.blocks.Scan() {
		rec, err := parseBlock(r.blocks.Block(), r.blocks.Line())
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := r.blocks.Err(); err != nil {
		return nil, err
	}

	if trailing := r.blocks.Trailing(); len(trailing) > 0 {
		if !r.FlushTrailing {
			r.dropped = trailing
			return records, nil
		}
		rec, err := parseBlock(trailing, r.blocks.TrailingLine())
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Dropped returns the unterminated final block ReadAll skipped, if any.
func (r *Reader) Dropped() []string { return r.dropped }

func parseBlock(lines []string, at int) (*Record, error) {
	rec, err := ParseRecord(lines)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Line = at
		}
		return nil, err
	}
	return rec, nil
}

// scanLines is bufio.ScanLines that also accepts a lone CR as a terminator.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			// CR at the end of the buffer; wait to see if LF follows
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
