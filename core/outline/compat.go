package outline

import (
	"github.com/npillmayer/arithm"
)

// Compatible is true if g and other have the same structure: the same
// number of contours and, per contour, the same sequence of segment types.
// Only compatible glyphs can be interpolated.
func (g *Glyph) Compatible(other *Glyph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.Contours) != len(other.Contours) {
		return false
	}
	for i := range g.Contours {
		if !contoursCompatible(g.Contours[i], other.Contours[i]) {
			return false
		}
	}
	return true
}

func contoursCompatible(a, b Contour) bool {
	if len(a.Segments) != len(b.Segments) {
		return false
	}
	for j := range a.Segments {
		if a.Segments[j].Type != b.Segments[j].Type {
			return false
		}
	}
	return true
}

// Coordinates flattens g into a vector of numbers: the advance width
// followed by x and y of every point, control points before on-curve
// points. Compatible glyphs produce vectors of equal length.
func (g *Glyph) Coordinates() []float64 {
	v := make([]float64, 0, 1+6*g.SegmentCount())
	v = append(v, g.Width)
	for _, c := range g.Contours {
		for _, s := range c.Segments {
			if s.Type == Curve {
				v = append(v, real(s.Off1), imag(s.Off1), real(s.Off2), imag(s.Off2))
			}
			v = append(v, real(s.On), imag(s.On))
		}
	}
	return v
}

// WithCoordinates returns a glyph with the structure of g and the advance
// width and point positions taken from v, which has to be laid out as by
// Coordinates. Smooth tags are carried over from g.
func (g *Glyph) WithCoordinates(v []float64) *Glyph {
	r := &Glyph{Contours: make([]Contour, len(g.Contours))}
	if len(v) == 0 {
		return r
	}
	r.Width = v[0]
	k := 1
	next := func() arithm.Pair {
		p := arithm.P(v[k], v[k+1])
		k += 2
		return p
	}
	for i, c := range g.Contours {
		segs := make([]Segment, len(c.Segments))
		for j, s := range c.Segments {
			segs[j] = Segment{Type: s.Type, Smooth: s.Smooth}
			if s.Type == Curve {
				segs[j].Off1 = next()
				segs[j].Off2 = next()
			}
			segs[j].On = next()
		}
		r.Contours[i] = Contour{Segments: segs}
	}
	return r
}

// MatchStartPoints tries to make g compatible to model by rotating the
// start segment of each of g's contours. It returns the repaired glyph and
// true on success, or nil and false if no rotation matches.
func (g *Glyph) MatchStartPoints(model *Glyph) (*Glyph, bool) {
	if g == nil || model == nil || len(g.Contours) != len(model.Contours) {
		return nil, false
	}
	r := &Glyph{Width: g.Width, Contours: make([]Contour, len(g.Contours))}
	for i, c := range g.Contours {
		m := model.Contours[i]
		if len(c.Segments) != len(m.Segments) {
			return nil, false
		}
		found := false
		for k := 0; k < len(c.Segments); k++ {
			rot := c.Rotated(k)
			if contoursCompatible(rot, m) {
				r.Contours[i] = rot
				found = true
				if k > 0 {
					tracer().Debugf("contour %d: rotated start by %d segments", i, k)
				}
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return r, true
}
