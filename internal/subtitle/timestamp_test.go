package subtitle

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00:00,000", 0},
		{"00:00:55,848", 55_848},
		{"01:01:56,849", 3_716_849},
		{"99:59:59,999", MaxMilliseconds},
		{"23:99:99,999", 23*msPerHour + 99*msPerMinute + 99*msPerSecond + 999},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error: %v", tt.in, err)
			}
			if got.Milliseconds() != tt.want {
				t.Errorf("ParseTimestamp(%q) = %d ms, want %d", tt.in, got.Milliseconds(), tt.want)
			}
		})
	}
}

func TestParseTimestampRejectsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"0:00:00,000",
		"00:0:00,000",
		"00:00:00.000",
		"00:00:00,00",
		"00:00:00,0000",
		"100:00:00,000",
		" 00:00:00,000",
		"00:00:00,000 ",
		"aa:bb:cc,ddd",
		"99:99:99,999",
		"-0:00:00,000",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTimestamp(in)
			if !errors.Is(err, ErrInvalidTimestamp) {
				t.Errorf("ParseTimestamp(%q) error = %v, want ErrInvalidTimestamp", in, err)
			}
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	values := []int{0, 1, 999, 1000, 59_999, 60_000, 3_599_999, 3_600_000, 123_456_789, MaxMilliseconds}
	for _, ms := range values {
		ts, err := FromMilliseconds(ms)
		if err != nil {
			t.Fatalf("FromMilliseconds(%d): %v", ms, err)
		}
		parsed, err := ParseTimestamp(ts.String())
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", ts.String(), err)
		}
		if parsed != ts {
			t.Errorf("round trip of %d ms: got %d ms via %q", ms, parsed.Milliseconds(), ts.String())
		}
	}
}

func TestTimestampString(t *testing.T) {
	ts, err := FromComponents(1, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := ts.String(); got != "01:02:03,004" {
		t.Errorf("String() = %q, want 01:02:03,004", got)
	}
}

func TestFromComponents(t *testing.T) {
	if _, err := FromComponents(99, 59, 59, 999); err != nil {
		t.Errorf("FromComponents(99,59,59,999) error: %v", err)
	}
	if _, err := FromComponents(0, 0, 0, 0); err != nil {
		t.Errorf("FromComponents(0,0,0,0) error: %v", err)
	}

	// out-of-range fields are fine when the total fits
	ts, err := FromComponents(0, 0, 90, 0)
	if err != nil {
		t.Fatalf("FromComponents(0,0,90,0) error: %v", err)
	}
	if ts.String() != "00:01:30,000" {
		t.Errorf("got %s, want 00:01:30,000", ts)
	}

	failures := []struct {
		name       string
		h, m, s, u int
	}{
		{"past maximum", 100, 0, 0, 0},
		{"negative", 0, 0, 0, -1},
		{"multiply overflow", math.MaxInt / 1000, 0, 0, 0},
		{"huge milliseconds", 0, 0, 0, math.MaxInt},
		{"min int", math.MinInt, 0, 0, 0},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromComponents(tt.h, tt.m, tt.s, tt.u)
			if !errors.Is(err, ErrInvalidTimestamp) {
				t.Errorf("error = %v, want ErrInvalidTimestamp", err)
			}
		})
	}
}

func TestTimestampBounds(t *testing.T) {
	maxTS, _ := FromComponents(99, 59, 59, 999)
	if _, err := maxTS.PlusMilliseconds(1); !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("max + 1ms error = %v, want ErrInvalidTimestamp", err)
	}

	zero, _ := FromComponents(0, 0, 0, 0)
	if _, err := zero.MinusMilliseconds(1); !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("zero - 1ms error = %v, want ErrInvalidTimestamp", err)
	}

	if _, err := zero.PlusHours(math.MaxInt); !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("huge PlusHours error = %v, want ErrInvalidTimestamp", err)
	}
	if _, err := maxTS.MinusHours(math.MaxInt); !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("huge MinusHours error = %v, want ErrInvalidTimestamp", err)
	}
}

func TestTimestampRejectsNonPositiveAmounts(t *testing.T) {
	ts := MustParseTimestamp("00:10:00,000")
	ops := map[string]func(int) (Timestamp, error){
		"PlusHours":         ts.PlusHours,
		"PlusMinutes":       ts.PlusMinutes,
		"PlusSeconds":       ts.PlusSeconds,
		"PlusMilliseconds":  ts.PlusMilliseconds,
		"MinusHours":        ts.MinusHours,
		"MinusMinutes":      ts.MinusMinutes,
		"MinusSeconds":      ts.MinusSeconds,
		"MinusMilliseconds": ts.MinusMilliseconds,
	}
	for name, op := range ops {
		for _, n := range []int{0, -1} {
			if _, err := op(n); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("%s(%d) error = %v, want ErrInvalidArgument", name, n, err)
			}
		}
	}
}

func TestTimestampArithmetic(t *testing.T) {
	tests := []struct {
		name  string
		start string
		op    func(Timestamp) (Timestamp, error)
		want  string
	}{
		{"second carries into minute", "00:00:59,000", func(t Timestamp) (Timestamp, error) { return t.PlusSeconds(1) }, "00:01:00,000"},
		{"second carries into hour", "00:59:59,000", func(t Timestamp) (Timestamp, error) { return t.PlusSeconds(1) }, "01:00:00,000"},
		{"millisecond carry", "00:00:00,999", func(t Timestamp) (Timestamp, error) { return t.PlusMilliseconds(1) }, "00:00:01,000"},
		{"plus minutes", "00:00:00,000", func(t Timestamp) (Timestamp, error) { return t.PlusMinutes(61) }, "01:01:00,000"},
		{"plus hours to max hour", "00:59:59,999", func(t Timestamp) (Timestamp, error) { return t.PlusHours(99) }, "99:59:59,999"},
		{"minus borrows", "01:00:00,000", func(t Timestamp) (Timestamp, error) { return t.MinusMilliseconds(1) }, "00:59:59,999"},
		{"minus seconds to zero", "00:00:05,000", func(t Timestamp) (Timestamp, error) { return t.MinusSeconds(5) }, "00:00:00,000"},
		{"minus minutes", "02:00:00,000", func(t Timestamp) (Timestamp, error) { return t.MinusMinutes(90) }, "00:30:00,000"},
		{"minus hours", "10:00:00,500", func(t Timestamp) (Timestamp, error) { return t.MinusHours(10) }, "00:00:00,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := MustParseTimestamp(tt.start)
			got, err := tt.op(start)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
			if start.String() != tt.start {
				t.Errorf("receiver changed to %s", start)
			}
		})
	}
}

func TestTimestampCompare(t *testing.T) {
	a := MustParseTimestamp("00:00:01,000")
	b := MustParseTimestamp("00:00:02,000")

	if !a.Before(b) || a.After(b) || a.Compare(b) != -1 {
		t.Errorf("expected %s before %s", a, b)
	}
	if b.Compare(a) != 1 {
		t.Errorf("expected %s after %s", b, a)
	}
	c, _ := FromComponents(0, 0, 0, 1000)
	if !a.Equal(c) || a != c || a.Compare(c) != 0 {
		t.Errorf("expected %s equal to %s", a, c)
	}
}

func TestTimestampDuration(t *testing.T) {
	tests := []struct {
		text string
		want time.Duration
	}{
		{"00:00:00,000", 0},
		{"00:01:07,693", time.Minute + 7*time.Second + 693*time.Millisecond},
		{"99:59:59,999", 99*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := MustParseTimestamp(tt.text).Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}
