/*
Package pngsink renders space ranger frames into raster images.

A Renderer paints each cell of a frame: the cell frame with its source or
instance highlight, the compiled glyph, a label with the cell's location
and the unsmooth markers. Frames are expected on a y-up canvas, as
produced by a controller with origin gridlayout.BottomLeft.

	frame, _ := ctrl.Refresh()
	r := pngsink.NewRenderer(pngsink.Dark)
	err := r.WritePNG(w, frame)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pngsink

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spaceranger.pngsink'.
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.pngsink")
}
