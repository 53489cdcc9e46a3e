/*
Package ranger drives a space ranger grid: it holds the settings of a grid
view, reacts to invalidation signals and produces frames, ready to be
rendered.

A Controller works in stages. Resolving options checks the settings against
the design space. Building creates the grid cells from the axis samplers.
Preparing turns the text input into glyph names. Updating compiles a glyph
for every cell, lays out the grid and computes smoothness markers. Each
stage implies the stages after it. Clients signal changes with Invalidate
and call Refresh whenever they need an up to date frame.

	ctrl := ranger.New(operator, masters.NewAdvisor(operator), ranger.DefaultSettings())
	ctrl.Set("x-count", "7")
	frame, err := ctrl.Refresh()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ranger

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spaceranger.ranger'.
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.ranger")
}
