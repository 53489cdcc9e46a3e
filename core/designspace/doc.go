/*
Package designspace holds the vocabulary of a variable design space:
locations, continuous and discrete axes, sources and instances.

A Location binds axis names to design coordinates. Continuous axes
interpolate between sources; discrete axes (e.g. italic on/off) partition
the design space into independent continuous sub-spaces, each addressed by
a discrete location.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package designspace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spaceranger.designspace'.
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.designspace")
}
