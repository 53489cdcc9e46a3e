package ranger

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/spaceranger/core/designspace"
	"github.com/npillmayer/spaceranger/core/outline"
	"github.com/npillmayer/spaceranger/engine/compile"
	"github.com/npillmayer/spaceranger/engine/gridlayout"
)

// Border is the highlight of a cell's frame.
type Border int

// Cell borders. A source highlight wins over an instance highlight.
const (
	NoBorder Border = iota
	SourceBorder
	InstanceBorder
)

func (b Border) String() string {
	switch b {
	case SourceBorder:
		return "source"
	case InstanceBorder:
		return "instance"
	}
	return "none"
}

// Marker flags an on-curve point whose smoothness deviates from the model.
// Position and size are in glyph units.
type Marker struct {
	Position arithm.Pair
	Size     float64
	Alpha    float64 // deviation in [0, 1]
}

// CellFrame is everything needed to render a single cell.
type CellFrame struct {
	Column, Row   int
	Location      designspace.Location
	Label         string
	IsSource      bool
	IsInstance    bool
	Glyph         *outline.Glyph // compiled, in font units
	Info          compile.FontInfo
	Scale         float64     // font units to cell units
	Origin        arithm.Pair // of the cell, in canvas units
	Width, Height float64
	GlyphPosition arithm.Pair // of the glyph origin, relative to the cell origin
	Border        Border
	Markers       []Marker
}

// Frame is a complete, laid out grid.
type Frame struct {
	Version      int // of the settings the frame has been made from
	Geometry     gridlayout.Geometry
	Metrics      gridlayout.Metrics
	Cells        []CellFrame // column-major
	GlyphNames   []string
	Incompatible []string
}

// Width is the width of the canvas.
func (f *Frame) Width() float64 { return f.Geometry.Width }

// Height is the height of the canvas.
func (f *Frame) Height() float64 { return f.Geometry.Height }

// CellAt returns the cell containing canvas point p, or nil.
func (f *Frame) CellAt(p arithm.Pair) *CellFrame {
	for i := range f.Cells {
		c := &f.Cells[i]
		x, y := real(p)-real(c.Origin), imag(p)-imag(c.Origin)
		if x >= 0 && y >= 0 && x < c.Width && y < c.Height {
			return c
		}
	}
	return nil
}
