package compile

import (
	"github.com/npillmayer/spaceranger/core/designspace"
	"github.com/npillmayer/spaceranger/core/outline"
)

// Pair is an ordered pair of glyph names, e.g. for kerning.
type Pair struct {
	Left, Right string
}

// FontInfo carries the font metrics at a location.
type FontInfo struct {
	UnitsPerEm float64
	Descender  float64
}

// Interpolator is the interpolation engine the compiler draws glyphs from.
// Implementations are expected to be fast, in-process, and free of side
// effects for a given state of the font data.
type Interpolator interface {
	// MakeOneGlyph returns the glyph at a location, or nil if the engine
	// cannot produce it.
	MakeOneGlyph(name string, loc designspace.Location) *outline.Glyph
	// MakeOneInfo returns the font metrics at a location.
	MakeOneInfo(loc designspace.Location) FontInfo
	// MakeOneKerning returns kerning values at a location for the given pairs.
	// Pairs without kerning may be missing from the result.
	MakeOneKerning(loc designspace.Location, pairs []Pair) map[Pair]float64
}

// NameSet is a read-only set of glyph names. gods' hashset.Set implements
// it, as does NoNames.
type NameSet interface {
	Contains(items ...interface{}) bool
}

type noNames struct{}

func (noNames) Contains(...interface{}) bool { return false }

// NoNames is the empty NameSet.
var NoNames NameSet = noNames{}

// Request collects the inputs of Compile.
type Request struct {
	GlyphNames   []string
	Location     designspace.Location
	Incompatible NameSet // may be nil
	KerningPairs []Pair  // explicit pairs to kern, may be empty
	Kerning      bool    // kern neighbours among the glyphs actually placed
	Smooth       bool    // guess smooth points, used for reference models
}

// Compile builds the composite glyph for req.GlyphNames at req.Location.
//
// Names in req.Incompatible and names the interpolator cannot produce are
// skipped. Each remaining glyph is placed at the running width plus the
// kerning between it and the previously placed glyph. The resulting width
// is the sum of advance widths and applied kerning values. Compile never
// fails; without any placeable glyph it returns an empty glyph of width 0.
// With req.Kerning set, kerning pairs are formed from the glyphs left after
// skipping, so neighbours of a skipped name are kerned against each other.
func Compile(ip Interpolator, req Request) *outline.Glyph {
	compiled := &outline.Glyph{}
	if ip == nil || len(req.GlyphNames) == 0 {
		return compiled
	}
	loc := req.Location
	if _, ok := loc[""]; ok {
		loc = loc.Without("")
	}
	incompatible := req.Incompatible
	if incompatible == nil {
		incompatible = NoNames
	}
	type placed struct {
		name  string
		glyph *outline.Glyph
	}
	glyphs := make([]placed, 0, len(req.GlyphNames))
	for _, name := range req.GlyphNames {
		if incompatible.Contains(name) {
			tracer().Debugf("skipping incompatible glyph %q", name)
			continue
		}
		glyph := ip.MakeOneGlyph(name, loc)
		if glyph == nil {
			// probably a character not covered by the fonts
			tracer().Debugf("no glyph %q at %v", name, loc)
			continue
		}
		if req.Smooth {
			glyph = glyph.GuessSmooth(outline.DefaultSmoothError)
		}
		glyphs = append(glyphs, placed{name, glyph})
	}
	pairs := req.KerningPairs
	if req.Kerning && len(glyphs) > 1 {
		names := make([]string, len(glyphs))
		for i, g := range glyphs {
			names[i] = g.name
		}
		pairs = mergePairs(pairs, AdjacentPairs(names, nil))
	}
	var kerning map[Pair]float64
	if len(pairs) > 0 {
		kerning = ip.MakeOneKerning(loc, pairs)
	}
	previous := ""
	for _, g := range glyphs {
		offset := compiled.Width
		if previous != "" && kerning != nil {
			offset += kerning[Pair{previous, g.name}]
		}
		compiled.AppendGlyph(g.glyph, offset, 0)
		compiled.Width = offset + g.glyph.Width
		previous = g.name
	}
	return compiled
}

func mergePairs(pairs, more []Pair) []Pair {
	if len(pairs) == 0 {
		return more
	}
	seen := make(map[Pair]bool, len(pairs))
	merged := append([]Pair{}, pairs...)
	for _, p := range pairs {
		seen[p] = true
	}
	for _, p := range more {
		if !seen[p] {
			seen[p] = true
			merged = append(merged, p)
		}
	}
	return merged
}

// AdjacentPairs returns the pairs of neighbouring names of a sequence,
// leaving out names contained in skip (which may be nil). Duplicates are
// removed, keeping first occurrence order.
func AdjacentPairs(names []string, skip NameSet) []Pair {
	if skip == nil {
		skip = NoNames
	}
	var pairs []Pair
	seen := make(map[Pair]bool)
	previous := ""
	for _, name := range names {
		if skip.Contains(name) {
			continue
		}
		if previous != "" {
			p := Pair{previous, name}
			if !seen[p] {
				seen[p] = true
				pairs = append(pairs, p)
			}
		}
		previous = name
	}
	return pairs
}
