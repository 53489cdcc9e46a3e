/*
Package compile builds the composite outline of a glyph-name sequence at one
design-space location.

Glyphs are requested from an interpolation engine, laid out left to right by
their advance widths and, optionally, kerning, and merged into a single
outline. Missing or incompatible glyphs are skipped: sparse or exploratory
text input is the normal case, not an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spaceranger.compile'.
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.compile")
}
