package outline

import (
	"github.com/npillmayer/arithm"
)

// Builder assembles a glyph contour by contour, in the manner of a pen.
// Contours are closed implicitly; if the last point of a contour does not
// coincide with its start, a closing line is inserted.
//
//	b := outline.NewBuilder(500)
//	b.MoveTo(arithm.P(0, 0)).LineTo(arithm.P(100, 0)).LineTo(arithm.P(100, 100)).Close()
//	g := b.Glyph()
type Builder struct {
	glyph   *Glyph
	start   arithm.Pair
	current arithm.Pair
	segs    []Segment
	open    bool
}

// NewBuilder starts a glyph with advance width w.
func NewBuilder(w float64) *Builder {
	return &Builder{glyph: &Glyph{Width: w}}
}

// MoveTo starts a new contour at p, closing any open contour.
func (b *Builder) MoveTo(p arithm.Pair) *Builder {
	b.Close()
	b.start, b.current = p, p
	b.open = true
	return b
}

// LineTo adds a line segment to p.
func (b *Builder) LineTo(p arithm.Pair) *Builder {
	b.segs = append(b.segs, LineTo(p))
	b.current = p
	return b
}

// QuadTo adds a quadratic curve with control point q, ending at p. It is
// stored as the equivalent cubic curve.
func (b *Builder) QuadTo(q, p arithm.Pair) *Builder {
	c1 := b.current + (q-b.current)*2/3
	c2 := p + (q-p)*2/3
	return b.CubeTo(c1, c2, p)
}

// CubeTo adds a cubic curve with control points c1 and c2, ending at p.
func (b *Builder) CubeTo(c1, c2, p arithm.Pair) *Builder {
	b.segs = append(b.segs, CurveTo(c1, c2, p))
	b.current = p
	return b
}

// Smooth tags the on-curve point of the most recent segment as smooth.
func (b *Builder) Smooth() *Builder {
	if n := len(b.segs); n > 0 {
		b.segs[n-1].Smooth = true
	}
	return b
}

// Close finishes the current contour. Contours without segments are dropped.
func (b *Builder) Close() *Builder {
	if !b.open {
		return b
	}
	b.open = false
	if len(b.segs) == 0 {
		return b
	}
	if b.current != b.start {
		b.segs = append(b.segs, LineTo(b.start))
	}
	b.glyph.Contours = append(b.glyph.Contours, Contour{Segments: b.segs})
	b.segs = nil
	return b
}

// Glyph closes any open contour and returns the glyph built so far.
func (b *Builder) Glyph() *Glyph {
	b.Close()
	return b.glyph
}
