/*
Package rules evaluates designspace substitution rules.

A rule applies if any of its condition sets matches a location; a condition
set matches if all of its conditions hold, a condition bounding one axis
from below, from above, or both. Applying a rule replaces glyph names by
their substitutes. Rules are applied one after the other, each to the
output of its predecessor.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spaceranger.rules'.
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.rules")
}
