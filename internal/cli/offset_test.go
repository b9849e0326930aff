package cli

import "testing"

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"+0ms", 0},
		{"1h", 3_600_000},
		{"+1h", 3_600_000},
		{"-1h", -3_600_000},
		{"+1m", 60_000},
		{"+1s", 1000},
		{"+1h1m1s1ms", 3_661_001},
		{"+100ms", 100},
		{"-250ms", -250},
		{"90s", 90_000},
		{"2m30s", 150_000},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseOffset(tt.in)
			if err != nil {
				t.Fatalf("parseOffset(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseOffset(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOffsetInvalid(t *testing.T) {
	inputs := []string{
		"",
		"+",
		"+1",
		"1",
		"-",
		"-1",
		"1hsomethingtotallywrong",
		"1s1h",
		"1.5s",
		"+-1s",
		"99999999999h",
		"600000h",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := parseOffset(in); err == nil {
				t.Errorf("parseOffset(%q) succeeded, want error", in)
			}
		})
	}
}
