package gridlayout

import (
	"github.com/npillmayer/arithm"
)

// WidthMode selects how column widths are derived.
type WidthMode int

// Column width modes
const (
	Fit       WidthMode = iota // every column fits its widest glyph
	Monospace                  // every column has the width of the widest glyph
)

func (m WidthMode) String() string {
	if m == Monospace {
		return "mono"
	}
	return "fit"
}

// Origin selects the placement of the coordinate origin.
type Origin int

// Coordinate origins
const (
	BottomLeft Origin = iota
	TopLeft
)

// Metrics are the presentation constants of a grid.
type Metrics struct {
	PointSize float64 // nominal glyph render size
	Padding   float64 // inside a cell, around the glyph
	Spacing   float64 // between cells
	Inset     float64 // around the grid
}

// DefaultMetrics are the metrics for a point size of 100.
func DefaultMetrics() Metrics {
	return MetricsFor(100)
}

// MetricsFor derives padding, spacing and inset from a point size, each a
// tenth of the point size.
func MetricsFor(pointSize float64) Metrics {
	return Metrics{
		PointSize: pointSize,
		Padding:   pointSize * 0.1,
		Spacing:   pointSize * 0.1,
		Inset:     pointSize * 0.1,
	}
}

// CornerRadius is the corner radius of cell frames for m.
func (m Metrics) CornerRadius() float64 {
	return m.PointSize * 0.07
}

// Geometry is the result of a layout pass.
type Geometry struct {
	ColumnWidths []float64
	RowHeight    float64
	Origins      [][]arithm.Pair // Origins[column][row]
	Width        float64         // canvas width
	Height       float64         // canvas height
}

// Origin returns the origin of the cell at column c and row r.
func (g Geometry) Origin(c, r int) arithm.Pair {
	return g.Origins[c][r]
}

// CellSize returns the size of cells in column c.
func (g Geometry) CellSize(c int) (w, h float64) {
	return g.ColumnWidths[c], g.RowHeight
}

// Layout computes the grid geometry. columns holds, per column, the scaled
// widths of the glyphs of this column. All columns have to be known before
// a layout can be done, as both width modes need a maximum over a set of
// cells. Empty columns count as having a glyph width of 0.
func Layout(columns [][]float64, mode WidthMode, m Metrics, rowCount int, origin Origin) Geometry {
	g := Geometry{
		ColumnWidths: ColumnWidths(columns, mode, m.Padding),
		RowHeight:    m.PointSize + 2*m.Padding,
	}
	g.Origins = make([][]arithm.Pair, len(g.ColumnWidths))
	x := m.Inset
	for c, w := range g.ColumnWidths {
		g.Origins[c] = make([]arithm.Pair, rowCount)
		for r := 0; r < rowCount; r++ {
			placeRow := r
			if origin == BottomLeft {
				placeRow = rowCount - r - 1
			}
			y := m.Inset + (g.RowHeight+m.Spacing)*float64(placeRow)
			g.Origins[c][r] = arithm.P(x, y)
		}
		x += w + m.Spacing
	}
	g.Width = 2*m.Inset + sum(g.ColumnWidths)
	if n := len(g.ColumnWidths); n > 1 {
		g.Width += m.Spacing * float64(n-1)
	}
	g.Height = 2*m.Inset + g.RowHeight*float64(rowCount)
	if rowCount > 1 {
		g.Height += m.Spacing * float64(rowCount-1)
	}
	tracer().Debugf("layout %s: %d columns, canvas %.1f × %.1f", mode, len(columns), g.Width, g.Height)
	return g
}

// ColumnWidths derives the final column widths from per-column glyph widths.
func ColumnWidths(columns [][]float64, mode WidthMode, padding float64) []float64 {
	widths := make([]float64, len(columns))
	if mode == Monospace {
		widest := 0.0
		for _, col := range columns {
			widest = max(widest, maximum(col))
		}
		for c := range widths {
			widths[c] = widest + 2*padding
		}
		return widths
	}
	for c, col := range columns {
		widths[c] = maximum(col) + 2*padding
	}
	return widths
}

// GlyphPosition places a glyph inside its cell: centered horizontally, and
// vertically such that the descender lies padding above the cell bottom.
// compiledWidth and descender are in font units, scale converts them to
// cell units.
func GlyphPosition(columnWidth, compiledWidth, descender, scale, padding float64) arithm.Pair {
	x := (columnWidth - compiledWidth*scale) / 2
	y := padding - descender*scale
	return arithm.P(x, y)
}

// Scale returns the factor mapping font units to a point size.
func Scale(pointSize, unitsPerEm float64) float64 {
	if unitsPerEm <= 0 {
		return 0
	}
	return pointSize / unitsPerEm
}

func maximum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		m = max(m, v)
	}
	return m
}

func sum(values []float64) float64 {
	s := 0.0
	for _, v := range values {
		s += v
	}
	return s
}
