package masters

import (
	"fmt"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/outline"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ASCII is the set of printable ASCII characters.
func ASCII() []rune {
	runes := make([]rune, 0, 0x7f-0x20)
	for r := rune(0x20); r < 0x7f; r++ {
		runes = append(runes, r)
	}
	return runes
}

// LoadSFNT creates a glyph set from a TrueType or OpenType font.
//
// Every glyph of the font is loaded, in font units and with y pointing up.
// Quadratic curves are converted to cubic ones. Glyph names are taken from
// the font's post table, falling back to "uniXXXX" for mapped glyphs. Only
// the characters in runes are entered into the character map, and kerning
// is read for pairs of these characters.
func LoadSFNT(name string, data []byte, runes []rune) (*GlyphSet, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font %q", name)
	}
	var buf sfnt.Buffer
	upm := f.UnitsPerEm()
	ppem := fixed.I(int(upm)) // 1 pixel = 1 font unit
	m, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font %q has no metrics", name)
	}
	gs := NewGlyphSet(name, float64(upm), -fixedToFloat(m.Descent))
	if name == "" {
		if full, err := f.Name(&buf, sfnt.NameIDFull); err == nil {
			gs.Name = full
		}
	}
	mapped := make(map[sfnt.GlyphIndex][]rune)
	for _, r := range runes {
		x, err := f.GlyphIndex(&buf, r)
		if err != nil || x == 0 {
			continue
		}
		mapped[x] = append(mapped[x], r)
	}
	names := make([]string, f.NumGlyphs())
	for i := range names {
		x := sfnt.GlyphIndex(i)
		g, err := loadGlyph(f, &buf, x, ppem)
		if err != nil {
			tracer().Debugf("font %q: skipping glyph %d: %v", name, i, err)
			continue
		}
		gname := glyphName(f, &buf, x, mapped[x])
		if _, exists := gs.Glyphs[gname]; exists {
			gname = fmt.Sprintf("glyph%05d", i)
		}
		names[i] = gname
		gs.AddGlyph(gname, g, mapped[x]...)
	}
	for x0 := range mapped {
		for x1 := range mapped {
			if names[x0] == "" || names[x1] == "" {
				continue
			}
			k, err := f.Kern(&buf, x0, x1, ppem, font.HintingNone)
			if err != nil || k == 0 {
				continue
			}
			gs.Kern(names[x0], names[x1], fixedToFloat(k))
		}
	}
	tracer().Infof("loaded font %q: %d glyphs, %d kerning pairs", gs.Name, len(gs.Glyphs), len(gs.Kerning))
	return gs, nil
}

func loadGlyph(f *sfnt.Font, buf *sfnt.Buffer, x sfnt.GlyphIndex, ppem fixed.Int26_6) (*outline.Glyph, error) {
	advance, err := f.GlyphAdvance(buf, x, ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}
	segments, err := f.LoadGlyph(buf, x, ppem, nil)
	if err != nil {
		return nil, err
	}
	b := outline.NewBuilder(fixedToFloat(advance))
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.MoveTo(toPair(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.LineTo(toPair(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.QuadTo(toPair(seg.Args[0]), toPair(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.CubeTo(toPair(seg.Args[0]), toPair(seg.Args[1]), toPair(seg.Args[2]))
		}
	}
	return b.Glyph(), nil
}

func glyphName(f *sfnt.Font, buf *sfnt.Buffer, x sfnt.GlyphIndex, runes []rune) string {
	if name, err := f.GlyphName(buf, x); err == nil && name != "" {
		return name
	}
	if len(runes) > 0 {
		return fmt.Sprintf("uni%04X", runes[0])
	}
	return fmt.Sprintf("glyph%05d", int(x))
}

// sfnt has y pointing down.
func toPair(p fixed.Point26_6) arithm.Pair {
	return arithm.P(fixedToFloat(p.X), -fixedToFloat(p.Y))
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
