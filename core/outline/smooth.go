package outline

import (
	"math"

	"github.com/npillmayer/arithm"
)

// DefaultSmoothError is the angular tolerance, in radians, below which an
// on-curve point is guessed to be smooth.
const DefaultSmoothError = 0.05

// GuessSmooth returns a copy of g in which on-curve points are tagged
// smooth if the direction into the point and the direction out of it differ
// by less than maxError radians. Only points next to at least one control
// point are considered; points already tagged smooth stay smooth. Geometry
// is not altered.
func (g *Glyph) GuessSmooth(maxError float64) *Glyph {
	r := g.Clone()
	for ci := range r.Contours {
		c := r.Contours[ci]
		for i := range c.Segments {
			seg := &c.Segments[i]
			if seg.Smooth {
				continue
			}
			next := c.Segments[c.Next(i)]
			if seg.Type == Line && next.Type == Line {
				continue
			}
			in, out := seg.inPoint(c.Segments[c.Previous(i)]), next.outPoint()
			if in == seg.On || out == seg.On {
				continue
			}
			a1 := angle(seg.On - in)
			a2 := angle(out - seg.On)
			if angleDifference(a1, a2) < maxError {
				seg.Smooth = true
			}
		}
	}
	return r
}

// inPoint is the point a segment arrives at its on-curve point from.
func (s Segment) inPoint(prev Segment) arithm.Pair {
	if s.Type == Curve {
		return s.Off2
	}
	return prev.On
}

// outPoint is the point a segment leaves its start point towards.
func (s Segment) outPoint() arithm.Pair {
	if s.Type == Curve {
		return s.Off1
	}
	return s.On
}

func angle(d arithm.Pair) float64 {
	return math.Atan2(imag(d), real(d))
}

// angleDifference is the absolute difference of two directions in radians,
// folded into [0, π]. Directions close to ±π are neighbours.
func angleDifference(a1, a2 float64) float64 {
	diff := math.Abs(a1 - a2)
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	return diff
}
