package outline

import (
	"fmt"

	"github.com/npillmayer/arithm"
)

// SegmentType is the kind of a contour segment.
type SegmentType int8

// Segment types
const (
	Line SegmentType = iota
	Curve
)

func (t SegmentType) String() string {
	if t == Curve {
		return "curve"
	}
	return "line"
}

// Segment is a line or a cubic curve, ending in on-curve point On.
// Off1 and Off2 are the control points of curves and unused for lines.
// Smooth tags On as a smooth point.
type Segment struct {
	Type   SegmentType
	Off1   arithm.Pair
	Off2   arithm.Pair
	On     arithm.Pair
	Smooth bool
}

// LineTo creates a line segment ending at on.
func LineTo(on arithm.Pair) Segment {
	return Segment{Type: Line, On: on}
}

// CurveTo creates a cubic curve segment with control points c1 and c2, ending at on.
func CurveTo(c1, c2, on arithm.Pair) Segment {
	return Segment{Type: Curve, Off1: c1, Off2: c2, On: on}
}

func (s Segment) shifted(d arithm.Pair) Segment {
	s.On += d
	if s.Type == Curve {
		s.Off1 += d
		s.Off2 += d
	}
	return s
}

func (s Segment) String() string {
	if s.Type == Curve {
		return fmt.Sprintf("curve(%v %v %v smooth=%v)", s.Off1, s.Off2, s.On, s.Smooth)
	}
	return fmt.Sprintf("line(%v smooth=%v)", s.On, s.Smooth)
}

// Contour is a closed sequence of segments.
type Contour struct {
	Segments []Segment
}

// Len is the number of segments of c.
func (c Contour) Len() int {
	return len(c.Segments)
}

// Previous returns the index of the segment preceding segment i, wrapping around.
func (c Contour) Previous(i int) int {
	if i == 0 {
		return len(c.Segments) - 1
	}
	return i - 1
}

// Next returns the index of the segment following segment i, wrapping around.
func (c Contour) Next(i int) int {
	if i+1 >= len(c.Segments) {
		return 0
	}
	return i + 1
}

// Clone returns a deep copy of c.
func (c Contour) Clone() Contour {
	segs := make([]Segment, len(c.Segments))
	copy(segs, c.Segments)
	return Contour{Segments: segs}
}

// Rotated returns a copy of c which starts with segment k.
func (c Contour) Rotated(k int) Contour {
	n := len(c.Segments)
	segs := make([]Segment, n)
	for i := 0; i < n; i++ {
		segs[i] = c.Segments[(i+k)%n]
	}
	return Contour{Segments: segs}
}

// Glyph is an outline with an advance width.
type Glyph struct {
	Width    float64
	Contours []Contour
}

// Clone returns a deep copy of g.
func (g *Glyph) Clone() *Glyph {
	if g == nil {
		return nil
	}
	c := &Glyph{Width: g.Width, Contours: make([]Contour, len(g.Contours))}
	for i, contour := range g.Contours {
		c.Contours[i] = contour.Clone()
	}
	return c
}

// Translated returns a copy of g with every point shifted by (dx, dy).
// The advance width is unchanged.
func (g *Glyph) Translated(dx, dy float64) *Glyph {
	d := arithm.P(dx, dy)
	t := &Glyph{Width: g.Width, Contours: make([]Contour, len(g.Contours))}
	for i, contour := range g.Contours {
		segs := make([]Segment, len(contour.Segments))
		for j, s := range contour.Segments {
			segs[j] = s.shifted(d)
		}
		t.Contours[i] = Contour{Segments: segs}
	}
	return t
}

// Scaled returns a copy of g with x coordinates and the advance width
// multiplied by sx and y coordinates multiplied by sy.
func (g *Glyph) Scaled(sx, sy float64) *Glyph {
	return g.mapped(g.Width*sx, func(p arithm.Pair) arithm.Pair {
		return arithm.P(real(p)*sx, imag(p)*sy)
	})
}

// Slanted returns a copy of g sheared horizontally: every point moves by
// k times its y coordinate. The advance width is unchanged.
func (g *Glyph) Slanted(k float64) *Glyph {
	return g.mapped(g.Width, func(p arithm.Pair) arithm.Pair {
		return arithm.P(real(p)+k*imag(p), imag(p))
	})
}

func (g *Glyph) mapped(width float64, f func(arithm.Pair) arithm.Pair) *Glyph {
	t := &Glyph{Width: width, Contours: make([]Contour, len(g.Contours))}
	for i, contour := range g.Contours {
		segs := make([]Segment, len(contour.Segments))
		for j, s := range contour.Segments {
			segs[j] = Segment{Type: s.Type, Smooth: s.Smooth, On: f(s.On)}
			if s.Type == Curve {
				segs[j].Off1, segs[j].Off2 = f(s.Off1), f(s.Off2)
			}
		}
		t.Contours[i] = Contour{Segments: segs}
	}
	return t
}

// AppendGlyph appends the contours of other, shifted by (dx, dy), to g.
// The width of g is not touched.
func (g *Glyph) AppendGlyph(other *Glyph, dx, dy float64) {
	if other == nil {
		return
	}
	shifted := other.Translated(dx, dy)
	g.Contours = append(g.Contours, shifted.Contours...)
}

// SegmentCount returns the total number of segments of all contours.
func (g *Glyph) SegmentCount() int {
	n := 0
	for _, c := range g.Contours {
		n += len(c.Segments)
	}
	return n
}

// IsEmpty is true for glyphs without contours.
func (g *Glyph) IsEmpty() bool {
	return g == nil || len(g.Contours) == 0
}

func (g *Glyph) String() string {
	if g == nil {
		return "glyph<nil>"
	}
	return fmt.Sprintf("glyph(w=%g, contours=%d, segments=%d)", g.Width, len(g.Contours), g.SegmentCount())
}
