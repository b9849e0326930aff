package cli

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var offsetRegex = regexp.MustCompile(`^([+-]?)(?:([0-9]+)h)?(?:([0-9]+)m)?(?:([0-9]+)s)?(?:([0-9]+)ms)?$`)

// parseOffset converts an offset such as "+1h1m1s1ms" or "-250ms" into
// signed milliseconds. At least one component is required.
func parseOffset(text string) (int, error) {
	m := offsetRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("invalid offset %q: expected [+-][Nh][Nm][Ns][Nms]", text)
	}
	if m[2] == "" && m[3] == "" && m[4] == "" && m[5] == "" {
		return 0, fmt.Errorf("invalid offset %q: no hours, minutes, seconds or milliseconds given", text)
	}

	var total int64
	for i, unit := range []int64{3_600_000, 60_000, 1000, 1} {
		group := m[i+2]
		if group == "" {
			continue
		}
		n, err := strconv.ParseInt(group, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid offset %q: %w", text, err)
		}
		total += n * unit
		if total > math.MaxInt32 {
			return 0, fmt.Errorf("invalid offset %q: out of range", text)
		}
	}

	if m[1] == "-" {
		total = -total
	}
	return int(total), nil
}
