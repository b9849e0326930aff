package subtitle

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute

	// 99:59:59,999
	MaxMilliseconds = 99*msPerHour + 59*msPerMinute + 59*msPerSecond + 999
)

var timestampRegex = regexp.MustCompile(`^([0-9]{2}):([0-9]{2}):([0-9]{2}),([0-9]{3})$`)

// Timestamp is a point on the subtitle clock in whole milliseconds,
// bounded to 00:00:00,000..99:59:59,999. Values are immutable.
type Timestamp struct {
	ms int
}

// ParseTimestamp parses the canonical HH:MM:SS,mmm form. Fields are not
// range checked individually; only the resulting total is.
func ParseTimestamp(text string) (Timestamp, error) {
	m := timestampRegex.FindStringSubmatch(text)
	if m == nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, text)
	}

	// at most three digits each, cannot overflow
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	s, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])

	t, err := newTimestamp(h*msPerHour + mi*msPerMinute + s*msPerSecond + ms)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, text)
	}
	return t, nil
}

// MustParseTimestamp is like ParseTimestamp but panics on error.
func MustParseTimestamp(text string) Timestamp {
	t, err := ParseTimestamp(text)
	if err != nil {
		panic(err)
	}
	return t
}

// FromComponents builds a timestamp from its weighted parts. Parts may be
// negative or exceed their usual range as long as the total fits.
func FromComponents(hours, minutes, seconds, milliseconds int) (Timestamp, error) {
	total := milliseconds
	for _, part := range [...]struct{ n, unit int }{
		{seconds, msPerSecond},
		{minutes, msPerMinute},
		{hours, msPerHour},
	} {
		v, ok := mulChecked(part.n, part.unit)
		if !ok {
			return Timestamp{}, fmt.Errorf("%w: component overflow", ErrInvalidTimestamp)
		}
		if total, ok = addChecked(total, v); !ok {
			return Timestamp{}, fmt.Errorf("%w: component overflow", ErrInvalidTimestamp)
		}
	}
	return newTimestamp(total)
}

// FromMilliseconds wraps a raw millisecond count.
func FromMilliseconds(ms int) (Timestamp, error) {
	return newTimestamp(ms)
}

func newTimestamp(ms int) (Timestamp, error) {
	if ms < 0 || ms > MaxMilliseconds {
		return Timestamp{}, fmt.Errorf("%w: %d ms out of range", ErrInvalidTimestamp, ms)
	}
	return Timestamp{ms: ms}, nil
}

// Milliseconds returns the total millisecond count.
func (t Timestamp) Milliseconds() int {
	return t.ms
}

// Duration converts t to a time.Duration measured from 00:00:00,000.
func (t Timestamp) Duration() time.Duration {
	return time.Duration(t.ms) * time.Millisecond
}

// String renders HH:MM:SS,mmm.
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		t.ms/msPerHour,
		(t.ms/msPerMinute)%60,
		(t.ms/msPerSecond)%60,
		t.ms%msPerSecond,
	)
}

func (t Timestamp) Equal(other Timestamp) bool {
	return t.ms == other.ms
}

// Compare returns -1, 0 or +1.
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case t.ms < other.ms:
		return -1
	case t.ms > other.ms:
		return 1
	default:
		return 0
	}
}

func (t Timestamp) Before(other Timestamp) bool { return t.ms < other.ms }
func (t Timestamp) After(other Timestamp) bool  { return t.ms > other.ms }

func (t Timestamp) PlusHours(n int) (Timestamp, error)   { return t.plus(n, msPerHour) }
func (t Timestamp) PlusMinutes(n int) (Timestamp, error) { return t.plus(n, msPerMinute) }
func (t Timestamp) PlusSeconds(n int) (Timestamp, error) { return t.plus(n, msPerSecond) }

// PlusMilliseconds adds n > 0 milliseconds.
func (t Timestamp) PlusMilliseconds(n int) (Timestamp, error) { return t.plus(n, 1) }

func (t Timestamp) MinusHours(n int) (Timestamp, error)   { return t.minus(n, msPerHour) }
func (t Timestamp) MinusMinutes(n int) (Timestamp, error) { return t.minus(n, msPerMinute) }
func (t Timestamp) MinusSeconds(n int) (Timestamp, error) { return t.minus(n, msPerSecond) }

// MinusMilliseconds subtracts n > 0 milliseconds.
func (t Timestamp) MinusMilliseconds(n int) (Timestamp, error) { return t.minus(n, 1) }

func (t Timestamp) plus(n, unit int) (Timestamp, error) {
	if n <= 0 {
		return Timestamp{}, fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidArgument, n)
	}
	if n > (MaxMilliseconds-t.ms)/unit {
		return Timestamp{}, fmt.Errorf("%w: %s + %d x %d ms exceeds %s",
			ErrInvalidTimestamp, t, n, unit, Timestamp{ms: MaxMilliseconds})
	}
	return Timestamp{ms: t.ms + n*unit}, nil
}

func (t Timestamp) minus(n, unit int) (Timestamp, error) {
	if n <= 0 {
		return Timestamp{}, fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidArgument, n)
	}
	if n > t.ms/unit {
		return Timestamp{}, fmt.Errorf("%w: %s - %d x %d ms is before 00:00:00,000",
			ErrInvalidTimestamp, t, n, unit)
	}
	return Timestamp{ms: t.ms - n*unit}, nil
}

func mulChecked(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

func addChecked(a, b int) (int, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}
