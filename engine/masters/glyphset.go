package masters

import (
	"github.com/npillmayer/spaceranger/core/outline"
	"github.com/npillmayer/spaceranger/engine/compile"
)

// GlyphSet is the font data of one source: outlines with advance widths,
// kerning, vertical metrics and a character map.
type GlyphSet struct {
	Name         string
	Glyphs       map[string]*outline.Glyph
	GlyphOrder   []string
	Kerning      map[compile.Pair]float64
	UnitsPerEm   float64
	Descender    float64 // negative for descenders below the baseline
	CharacterMap map[rune]string
}

// NewGlyphSet creates an empty glyph set.
func NewGlyphSet(name string, unitsPerEm, descender float64) *GlyphSet {
	return &GlyphSet{
		Name:         name,
		Glyphs:       make(map[string]*outline.Glyph),
		Kerning:      make(map[compile.Pair]float64),
		UnitsPerEm:   unitsPerEm,
		Descender:    descender,
		CharacterMap: make(map[rune]string),
	}
}

// AddGlyph adds or replaces a glyph. Characters in runes are mapped to it.
func (gs *GlyphSet) AddGlyph(name string, g *outline.Glyph, runes ...rune) {
	if _, ok := gs.Glyphs[name]; !ok {
		gs.GlyphOrder = append(gs.GlyphOrder, name)
	}
	gs.Glyphs[name] = g
	for _, r := range runes {
		gs.CharacterMap[r] = name
	}
}

// Glyph returns the glyph for name, or nil.
func (gs *GlyphSet) Glyph(name string) *outline.Glyph {
	if gs == nil {
		return nil
	}
	return gs.Glyphs[name]
}

// Kern sets the kerning value for a pair of glyph names.
func (gs *GlyphSet) Kern(left, right string, value float64) {
	gs.Kerning[compile.Pair{Left: left, Right: right}] = value
}

// Scaled returns a copy of gs named name, with glyphs and kerning scaled
// horizontally by sx. It may be used to derive synthetic width sources.
func (gs *GlyphSet) Scaled(name string, sx float64) *GlyphSet {
	s := NewGlyphSet(name, gs.UnitsPerEm, gs.Descender)
	for _, gname := range gs.GlyphOrder {
		s.AddGlyph(gname, gs.Glyphs[gname].Scaled(sx, 1))
	}
	for r, gname := range gs.CharacterMap {
		s.CharacterMap[r] = gname
	}
	for p, v := range gs.Kerning {
		s.Kerning[p] = v * sx
	}
	return s
}

// Slanted returns a copy of gs named name, with every glyph sheared by k
// (see outline.Glyph.Slanted). It may be used to derive synthetic slant
// sources.
func (gs *GlyphSet) Slanted(name string, k float64) *GlyphSet {
	s := NewGlyphSet(name, gs.UnitsPerEm, gs.Descender)
	for _, gname := range gs.GlyphOrder {
		s.AddGlyph(gname, gs.Glyphs[gname].Slanted(k))
	}
	for r, gname := range gs.CharacterMap {
		s.CharacterMap[r] = gname
	}
	for p, v := range gs.Kerning {
		s.Kerning[p] = v
	}
	return s
}
