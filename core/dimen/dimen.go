package dimen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/spaceranger/core"
)

// Online dimension conversion for print:
// http://www.unitconversion.org/unit_converter/typography-ex.html

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // "pixels" at 72 dpi
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// Pixels returns a dimension in pixels for a resolution of dpi.
func (d Dimen) Pixels(dpi float64) float64 {
	return float64(d) * dpi / float64(IN)
}

// FromPoints converts big points to a dimension.
func FromPoints(p float64) Dimen {
	return Dimen(math.Round(p * float64(BP)))
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]*\.?[0-9]+)([a-zA-Z]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS units,
// with a unit-less number counting as big points. Malformed input results
// in an EINVALID error.
func ParseDimen(s string) (Dimen, error) {
	d := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(d) < 2 {
		return 0, core.Error(core.EINVALID, "format error parsing dimension %q", s)
	}
	scale := BP
	switch strings.ToLower(d[2]) {
	case "pt":
		scale = PT
	case "mm":
		scale = MM
	case "bp", "px", "":
		scale = BP
	case "cm":
		scale = CM
	case "in":
		scale = IN
	case "sp":
		scale = SP
	default:
		return 0, core.Error(core.EINVALID, "unknown unit in dimension %q", s)
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "format error parsing dimension %q", s)
	}
	v := n * float64(scale)
	if math.Abs(v) > math.MaxInt32 {
		return 0, core.Error(core.EINVALID, "dimension %q out of range", s)
	}
	return Dimen(math.Round(v)), nil
}
