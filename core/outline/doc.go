/*
Package outline implements glyph outlines made of closed contours of line
and cubic curve segments.

Each segment ends in an on-curve point; a segment starts at the on-curve
point of its predecessor, with the last segment of a contour closing onto
the contour's start. Points are arithm.Pairs in font units, y pointing up.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package outline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spaceranger.outline'.
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.outline")
}
