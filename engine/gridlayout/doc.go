/*
Package gridlayout computes the geometry of a grid of glyph cells.

Column widths are derived from the scaled widths of the glyphs in each
column, either fitting each column to its content or using one uniform
(monospace) width for all columns. Rows share a constant height. Cell
origins and the canvas size follow from widths, height, spacing and inset.

By default the coordinate system has its origin at the bottom left, so the
logical first row is placed topmost.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gridlayout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spaceranger.layout'.
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.layout")
}
