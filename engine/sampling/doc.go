/*
Package sampling derives the sample locations of a design-space grid.

An axis sampler turns an axis specification (a step count, an explicit list
of coordinates, or "use the instances") into an ordered list of
coordinates. The grid builder combines an X and an optional Y sampling with
a discrete location and default values for the remaining axes into grid
cells, optionally inserting the coordinates of sources and instances.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sampling

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spaceranger.sampling'.
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.sampling")
}
