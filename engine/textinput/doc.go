/*
Package textinput turns user text into sequences of glyph names.

Text is split into grapheme clusters, and each cluster is mapped to a glyph
name through a character map. Glyph names may be entered directly, prefixed
by a slash:

	Hamburg/a.alt /slash
	/?/?/?

A name ends at the next slash or at a single space, which is consumed. A
double slash is the slash character itself. "/?" is a placeholder for the
glyph currently being edited.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textinput

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'spaceranger.textinput'.
func tracer() tracing.Trace {
	return tracing.Select("spaceranger.textinput")
}
