/*
Package smoothness measures how far on-curve points of an interpolated glyph
deviate from being smooth.

A reference model, compiled with smooth-point guessing, tells which points
are meant to be smooth. For each of those points in a sample glyph of the
same structure, the angle between the incoming and the outgoing tangent is
measured and mapped to a score in [0, 1]: 0 for smooth within tolerance,
1 for a kink at or beyond the threshold.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package smoothness

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spaceranger.smoothness'.
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.smoothness")
}
