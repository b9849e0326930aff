package subtitle

import (
	"slices"
	"strconv"
	"strings"
)

// CRLF terminates every line this package writes.
const CRLF = "\r\n"

// separates the two timestamps on the timing line
const timingArrow = "-->"

// Record is a single subtitle entry. Start and End are the only fields
// meant to change after parsing.
type Record struct {
	Index int
	Start Timestamp
	End   Timestamp
	Lines []string
}

// ParseRecord builds a Record from one block: an index line, a timing line
// and zero or more body lines kept verbatim.
func ParseRecord(lines []string) (*Record, error) {
	if len(lines) < 2 {
		return nil, &FormatError{Reason: "invalid subtitle format: missing timing line"}
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, &FormatError{Reason: "invalid index " + strconv.Quote(lines[0])}
	}

	start, end, err := parseTiming(lines[1])
	if err != nil {
		return nil, err
	}

	return &Record{
		Index: index,
		Start: start,
		End:   end,
		Lines: slices.Clone(lines[2:]),
	}, nil
}

// splits on single spaces; the middle token is not checked
func parseTiming(line string) (Timestamp, Timestamp, error) {
	tokens := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' })
	if len(tokens) != 3 {
		return Timestamp{}, Timestamp{}, &FormatError{
			Reason: "invalid subtitle format: timing line " + strconv.Quote(line),
		}
	}

	start, err := ParseTimestamp(tokens[0])
	if err != nil {
		return Timestamp{}, Timestamp{}, &FormatError{Reason: "invalid subtitle format", Err: err}
	}
	end, err := ParseTimestamp(tokens[2])
	if err != nil {
		return Timestamp{}, Timestamp{}, &FormatError{Reason: "invalid subtitle format", Err: err}
	}
	return start, end, nil
}

// String reconstructs the block with CRLF after every line, including the
// last body line.
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(r.Index))
	sb.WriteString(CRLF)
	sb.WriteString(r.Start.String())
	sb.WriteString(" " + timingArrow + " ")
	sb.WriteString(r.End.String())
	sb.WriteString(CRLF)
	for _, line := range r.Lines {
		sb.WriteString(line)
		sb.WriteString(CRLF)
	}
	return sb.String()
}

func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Index == other.Index &&
		r.Start == other.Start &&
		r.End == other.End &&
		slices.Equal(r.Lines, other.Lines)
}

func (r *Record) Clone() *Record {
	c := *r
	c.Lines = slices.Clone(r.Lines)
	return &c
}

// Text joins the body lines with newlines.
func (r *Record) Text() string {
	return strings.Join(r.Lines, "\n")
}
