/*
Package masters is a reference interpolation engine over a set of sources.

Sources are glyph sets placed at design space locations. For every discrete
sub-space a variation model is built from the normalized source locations:
each source is assigned a support region, and glyph outlines, metrics and
kerning values at arbitrary locations are computed as weighted sums of
per-source deltas. The default source of a sub-space anchors the model and
has to be present for every glyph which should interpolate.

Package masters also contains a compatibility advisor, which reports glyphs
that cannot be interpolated and repairs contours with mismatched start
points, and a loader for sfnt font files (TrueType and OpenType).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package masters

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spaceranger.masters'.
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.masters")
}
