package smoothness

import (
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/spaceranger/core/outline"
)

// Defaults for deviation measurement, in degrees.
const (
	DefaultTolerance = 0.05
	DefaultThreshold = 2.0
)

// Point addresses the on-curve point of a segment.
type Point struct {
	Contour int
	Segment int
}

// Sample is the deviation score of a point.
type Sample struct {
	Point
	Deviation float64
}

// FindSmoothPoints lists the points of model whose segments are tagged smooth.
func FindSmoothPoints(model *outline.Glyph) []Point {
	var points []Point
	if model == nil {
		return points
	}
	for ci, c := range model.Contours {
		for si, s := range c.Segments {
			if s.Smooth {
				points = append(points, Point{Contour: ci, Segment: si})
			}
		}
	}
	return points
}

// Deviation measures the kink at the on-curve point of segment i of contour.
//
// The tangent into the point runs from the nearest preceding point (control
// point of a curve, or the previous on-curve point for a line) and the
// tangent out of it towards the nearest following point. If the angles of
// both tangents differ by no more than tolerance degrees, the deviation is 0.
// Otherwise the difference is capped at threshold+tolerance and normalized
// by it, resulting in a value in (0, 1]. A joint between two lines has no
// tangents to compare and yields 0.
func Deviation(contour outline.Contour, i int, tolerance, threshold float64) float64 {
	n := len(contour.Segments)
	if i < 0 || i >= n {
		return 0
	}
	prev := contour.Segments[contour.Previous(i)]
	seg := contour.Segments[i]
	next := contour.Segments[contour.Next(i)]
	var in, out arithm.Pair
	switch {
	case seg.Type == outline.Curve && next.Type == outline.Curve:
		in, out = seg.Off2, next.Off1
	case seg.Type == outline.Curve && next.Type == outline.Line:
		in, out = seg.Off2, next.On
	case seg.Type == outline.Line && next.Type == outline.Curve:
		in, out = prev.On, next.Off1
	default:
		return 0
	}
	diff := angleDifference(angle(in, seg.On), angle(seg.On, out))
	if diff <= tolerance {
		return 0
	}
	ceiling := threshold + tolerance
	if ceiling <= 0 || diff > ceiling {
		return 1
	}
	return diff / ceiling
}

// Compare scores every smooth point of the model in sample. If sample does
// not have the model's contour count, there is nothing to compare and the
// result is nil; points beyond a contour's segment count are skipped. Only
// points with a deviation > 0 are reported.
func Compare(points []Point, modelContours int, sample *outline.Glyph, tolerance, threshold float64) []Sample {
	if sample == nil || len(sample.Contours) != modelContours {
		tracer().Debugf("contour count differs from model, no smoothness data")
		return nil
	}
	var samples []Sample
	for _, p := range points {
		c := sample.Contours[p.Contour]
		if p.Segment >= len(c.Segments) {
			continue
		}
		if d := Deviation(c, p.Segment, tolerance, threshold); d > 0 {
			samples = append(samples, Sample{Point: p, Deviation: d})
		}
	}
	return samples
}

// angle returns the direction from p1 to p2 in degrees, rounded to 3
// decimal places.
func angle(p1, p2 arithm.Pair) float64 {
	d := p2 - p1
	a := math.Atan2(imag(d), real(d)) * 180 / math.Pi
	return math.Round(a*1000) / 1000
}

// angleDifference is the absolute difference of two directions, folded
// into [0, 180].
func angleDifference(a1, a2 float64) float64 {
	diff := math.Abs(a1 - a2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
