package pngsink

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/dimen"
	"github.com/npillmayer/spaceranger/core/outline"
	"github.com/npillmayer/spaceranger/engine/ranger"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Renderer paints frames.
type Renderer struct {
	Colors      Colors
	Resolution  float64 // pixels per canvas unit
	BorderWidth float64 // in canvas units
	Labels      bool    // draw location labels
}

// NewRenderer creates a renderer for theme t, at one pixel per canvas unit.
func NewRenderer(t Theme) *Renderer {
	return &Renderer{
		Colors:      Palette(t),
		Resolution:  1,
		BorderWidth: 1.5,
		Labels:      true,
	}
}

// SetDPI sets the resolution of r. Canvas units are big points.
func (r *Renderer) SetDPI(dpi float64) {
	r.Resolution = dimen.BP.Pixels(dpi)
}

// canvas is the state of a single rendering pass.
type canvas struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	res    float64
	height float64 // of the frame, in canvas units
}

// x maps a canvas coordinate to a pixel column.
func (cv *canvas) x(x float64) float64 {
	return x * cv.res
}

// y maps a y-up canvas coordinate to a pixel row.
func (cv *canvas) y(y float64) float64 {
	return (cv.height - y) * cv.res
}

// fill paints paths with color c. Rasterization is clipped to the bounding
// box of the paths.
func (cv *canvas) fill(c RGBA, paths ...path) {
	if c.A <= 0 || len(paths) == 0 {
		return
	}
	var box image.Rectangle
	for _, p := range paths {
		box = box.Union(p.bounds())
	}
	box = box.Intersect(cv.img.Bounds())
	if box.Empty() {
		return
	}
	cv.z.Reset(box.Dx(), box.Dy())
	for _, p := range paths {
		p.addTo(cv.z, box.Min)
	}
	cv.z.Draw(cv.img, box, image.NewUniform(c.Color()), image.Point{})
}

// Render paints frame into a new image. A nil or empty frame results in a
// canvas showing the background only.
func (r *Renderer) Render(frame *ranger.Frame) *image.RGBA {
	res := r.Resolution
	if res <= 0 {
		res = 1
	}
	var w, h float64
	if frame != nil {
		w, h = frame.Width(), frame.Height()
	}
	pw := max(1, int(math.Ceil(w*res)))
	ph := max(1, int(math.Ceil(h*res)))
	cv := &canvas{
		img:    image.NewRGBA(image.Rect(0, 0, pw, ph)),
		z:      vector.NewRasterizer(pw, ph),
		res:    res,
		height: h,
	}
	draw.Draw(cv.img, cv.img.Bounds(), image.NewUniform(r.Colors.Background.Color()), image.Point{}, draw.Src)
	if frame == nil {
		return cv.img
	}
	radius := frame.Metrics.CornerRadius()
	for i := range frame.Cells {
		cell := &frame.Cells[i]
		r.paintBorder(cv, cell, radius)
		r.paintGlyph(cv, cell)
		if r.Labels {
			r.paintLabel(cv, cell)
		}
		r.paintMarkers(cv, cell)
	}
	tracer().Debugf("rendered %d cells into %d × %d pixels", len(frame.Cells), pw, ph)
	return cv.img
}

// WritePNG renders frame and encodes the result as PNG to w.
func (r *Renderer) WritePNG(w io.Writer, frame *ranger.Frame) error {
	img := r.Render(frame)
	if err := png.Encode(w, img); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode frame as PNG")
	}
	return nil
}

func (r *Renderer) paintBorder(cv *canvas, cell *ranger.CellFrame, radius float64) {
	var c RGBA
	switch cell.Border {
	case ranger.SourceBorder:
		c = r.Colors.SourceBorder
	case ranger.InstanceBorder:
		c = r.Colors.InstanceBorder
	default:
		return
	}
	left, top := real(cell.Origin), imag(cell.Origin)+cell.Height
	right, bottom := left+cell.Width, imag(cell.Origin)
	outer := roundedRect(cv.x(left), cv.y(top), cv.x(right), cv.y(bottom), radius*cv.res)
	bw := r.BorderWidth
	if bw <= 0 || 2*bw >= min(cell.Width, cell.Height) {
		cv.fill(c, outer)
		return
	}
	inner := roundedRect(cv.x(left+bw), cv.y(top-bw), cv.x(right-bw), cv.y(bottom+bw),
		max(0, radius-bw)*cv.res)
	cv.fill(c, outer, inner.reversed())
}

// toCanvas maps a glyph point of cell to canvas coordinates.
func toCanvas(cell *ranger.CellFrame, p arithm.Pair) (float64, float64) {
	x := real(cell.Origin) + real(cell.GlyphPosition) + real(p)*cell.Scale
	y := imag(cell.Origin) + imag(cell.GlyphPosition) + imag(p)*cell.Scale
	return x, y
}

func (r *Renderer) paintGlyph(cv *canvas, cell *ranger.CellFrame) {
	if cell.Glyph == nil || cell.Glyph.IsEmpty() || cell.Scale <= 0 {
		return
	}
	at := func(p arithm.Pair) (float64, float64) {
		x, y := toCanvas(cell, p)
		return cv.x(x), cv.y(y)
	}
	paths := make([]path, 0, len(cell.Glyph.Contours))
	for _, contour := range cell.Glyph.Contours {
		n := contour.Len()
		if n == 0 {
			continue
		}
		var p path
		sx, sy := at(contour.Segments[n-1].On)
		p.start = pt(sx, sy)
		for _, s := range contour.Segments {
			x, y := at(s.On)
			if s.Type == outline.Curve {
				x1, y1 := at(s.Off1)
				x2, y2 := at(s.Off2)
				p.cubeTo(x1, y1, x2, y2, x, y)
			} else {
				p.lineTo(x, y)
			}
		}
		paths = append(paths, p)
	}
	cv.fill(r.Colors.Fill, paths...)
}

func (r *Renderer) paintMarkers(cv *canvas, cell *ranger.CellFrame) {
	for _, m := range cell.Markers {
		if m.Alpha <= 0 {
			continue
		}
		x, y := toCanvas(cell, m.Position)
		rad := m.Size * cell.Scale / 2 * cv.res
		cv.fill(r.Colors.Unsmooth.WithAlpha(m.Alpha), circle(cv.x(x), cv.y(y), rad))
	}
}

// paintLabel draws the location label into the top left corner of a cell.
// Labels are drawn at a fixed pixel size and are skipped for cells too
// small to hold them.
func (r *Renderer) paintLabel(cv *canvas, cell *ranger.CellFrame) {
	if cell.Label == "" {
		return
	}
	face := basicfont.Face7x13
	lines := strings.Split(cell.Label, "\n")
	const margin = 2
	lineHeight := face.Metrics().Height.Ceil()
	wmax := 0
	for _, l := range lines {
		wmax = max(wmax, font.MeasureString(face, l).Ceil())
	}
	x0 := int(cv.x(real(cell.Origin)))
	y0 := int(cv.y(imag(cell.Origin) + cell.Height))
	box := image.Rect(x0, y0, x0+wmax+2*margin, y0+len(lines)*lineHeight+2*margin)
	if box.Dx() > int(cell.Width*cv.res) || box.Dy() > int(cell.Height*cv.res) {
		tracer().Debugf("label of cell (%d,%d) does not fit", cell.Column, cell.Row)
		return
	}
	bg := image.NewUniform(r.Colors.LocationTextBackground.Color())
	draw.Draw(cv.img, box, bg, image.Point{}, draw.Over)
	d := font.Drawer{
		Dst:  cv.img,
		Src:  image.NewUniform(r.Colors.LocationTextFill.Color()),
		Face: face,
	}
	for i, l := range lines {
		baseline := y0 + margin + i*lineHeight + face.Metrics().Ascent.Ceil()
		d.Dot = fixed.P(x0+margin, baseline)
		d.DrawString(l)
	}
}
