package smoothness

import (
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spaceranger/core/outline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lens builds a contour of a line followed by a curve, where the curve's
// first control point lies at (200+dx, dy) relative to the joint at (200, 0).
func lens(dx, dy float64) *outline.Glyph {
	return outline.NewBuilder(400).
		MoveTo(arithm.P(0, 0)).
		LineTo(arithm.P(200, 0)).
		CubeTo(arithm.P(200+dx, dy), arithm.P(400, 300), arithm.P(200, 300)).
		Glyph()
}

func TestPerfectTangency(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.smoothness")
	defer teardown()
	//
	c := outline.Contour{Segments: []outline.Segment{
		outline.CurveTo(arithm.P(0, 100), arithm.P(50, 0), arithm.P(100, 0)),
		outline.CurveTo(arithm.P(150, 0), arithm.P(200, 100), arithm.P(200, 200)),
		outline.LineTo(arithm.P(0, 200)),
	}}
	assert.Equal(t, 0.0, Deviation(c, 0, DefaultTolerance, DefaultThreshold))
}

func TestCeiling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.smoothness")
	defer teardown()
	//
	g := lens(0, 100) // 90° kink
	assert.Equal(t, 1.0, Deviation(g.Contours[0], 0, DefaultTolerance, DefaultThreshold))
}

func TestProportionalDeviation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.smoothness")
	defer teardown()
	//
	g := lens(100, 1.7455) // ≈ 1° kink
	d := Deviation(g.Contours[0], 0, DefaultTolerance, DefaultThreshold)
	assert.InDelta(t, 1.0/2.05, d, 0.001)
	g = lens(100, 0.05) // ≈ 0.029°, within tolerance
	assert.Equal(t, 0.0, Deviation(g.Contours[0], 0, DefaultTolerance, DefaultThreshold))
}

func TestLineJointIsUnmeasurable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.smoothness")
	defer teardown()
	//
	g := lens(0, 100)
	c := g.Contours[0] // segments: line, curve, closing line
	assert.Equal(t, outline.Line, c.Segments[2].Type)
	assert.Equal(t, 0.0, Deviation(c, 2, DefaultTolerance, DefaultThreshold))
	assert.Equal(t, 0.0, Deviation(c, 17, DefaultTolerance, DefaultThreshold))
}

func TestAngleSeam(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.smoothness")
	defer teardown()
	//
	// tangents pointing left, one slightly up, one slightly down
	assert.InDelta(t, 0.2, angleDifference(179.9, -179.9), 1e-9)
	assert.Equal(t, 45.0, angle(arithm.P(0, 0), arithm.P(1, 1)))
}

func TestCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.smoothness")
	defer teardown()
	//
	model := lens(100, 0).GuessSmooth(outline.DefaultSmoothError)
	points := FindSmoothPoints(model)
	require.Contains(t, points, Point{Contour: 0, Segment: 0})
	samples := Compare(points, len(model.Contours), lens(0, 100), DefaultTolerance, DefaultThreshold)
	require.Len(t, samples, 1)
	assert.Equal(t, Point{0, 0}, samples[0].Point)
	assert.Equal(t, 1.0, samples[0].Deviation)
	assert.Empty(t, Compare(points, len(model.Contours), lens(100, 0), DefaultTolerance, DefaultThreshold))
	twoContours := lens(0, 100)
	twoContours.AppendGlyph(lens(0, 100), 500, 0)
	assert.Nil(t, Compare(points, len(model.Contours), twoContours, DefaultTolerance, DefaultThreshold))
}
