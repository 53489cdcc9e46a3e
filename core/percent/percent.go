/*
Package percent implements a simple type for percentage values in [0, 100].

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package percent

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/spaceranger/core"
)

// Percent is a percentage value, clamped to [0, 100].
type Percent uint8

// FromFraction converts a fraction in [0, 1] to a percentage, rounding to
// the nearest integer. NaN counts as 0.
func FromFraction(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f):
		return Percent(0)
	case f >= 1:
		return Percent(100)
	}
	return Percent(math.Round(f * 100))
}

// Parse reads "45%" or "45".
func Parse(s string) (Percent, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return 0, core.Error(core.EINVALID, "not a percentage: %q", s)
	}
	return Percent(n), nil
}

// Fraction is p as a fraction in [0, 1].
func (p Percent) Fraction() float64 {
	return float64(p) / 100
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}
