package sampling

import (
	"strconv"
	"strings"

	"github.com/npillmayer/spaceranger/core"
)

// ParseCount parses a user-entered step count. The count is clamped to
// [MinCount, MaxCount]; non-integer input is rejected with EINVALID.
func ParseCount(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "step count must be an integer, is %q", input)
	}
	return ClampCount(n), nil
}

// ClampCount clamps n to [MinCount, MaxCount].
func ClampCount(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// ParseLocations parses a whitespace separated list of coordinates, keeping
// the order given. Any non-numeric or non-finite entry rejects the whole
// input with EINVALID.
func ParseLocations(input string) ([]float64, error) {
	fields := strings.Fields(input)
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "axis location %q is not a number", f)
		}
		if !isFinite(v) {
			return nil, core.Error(core.EINVALID, "axis location %q is not finite", f)
		}
		values = append(values, v)
	}
	return values, nil
}

// FormatLocations is the inverse of ParseLocations.
func FormatLocations(values []float64) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(s, " ")
}
