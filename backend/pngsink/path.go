package pngsink

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// kappa places the control points of a cubic quarter circle.
const kappa = 0.5522847498

type point struct{ x, y float32 }

type segment struct {
	c1, c2, to point
	line       bool
}

// path is a closed sub-path in pixel space.
type path struct {
	start point
	segs  []segment
}

func (p *path) lineTo(x, y float64) {
	p.segs = append(p.segs, segment{to: pt(x, y), line: true})
}

func (p *path) cubeTo(x1, y1, x2, y2, x, y float64) {
	p.segs = append(p.segs, segment{c1: pt(x1, y1), c2: pt(x2, y2), to: pt(x, y)})
}

func pt(x, y float64) point {
	return point{float32(x), float32(y)}
}

// reversed returns p, traversed in opposite direction.
func (p path) reversed() path {
	n := len(p.segs)
	if n == 0 {
		return p
	}
	r := path{start: p.segs[n-1].to, segs: make([]segment, 0, n)}
	for i := n - 1; i >= 0; i-- {
		from := p.start
		if i > 0 {
			from = p.segs[i-1].to
		}
		s := p.segs[i]
		r.segs = append(r.segs, segment{c1: s.c2, c2: s.c1, to: from, line: s.line})
	}
	return r
}

// addTo adds p to z, with the origin of z at pixel o.
func (p path) addTo(z *vector.Rasterizer, o image.Point) {
	ox, oy := float32(o.X), float32(o.Y)
	z.MoveTo(p.start.x-ox, p.start.y-oy)
	for _, s := range p.segs {
		if s.line {
			z.LineTo(s.to.x-ox, s.to.y-oy)
		} else {
			z.CubeTo(s.c1.x-ox, s.c1.y-oy, s.c2.x-ox, s.c2.y-oy, s.to.x-ox, s.to.y-oy)
		}
	}
	z.ClosePath()
}

// bounds returns the pixel rectangle covering p, including its control
// points.
func (p path) bounds() image.Rectangle {
	x0, y0, x1, y1 := p.start.x, p.start.y, p.start.x, p.start.y
	extend := func(q point) {
		x0, y0 = min(x0, q.x), min(y0, q.y)
		x1, y1 = max(x1, q.x), max(y1, q.y)
	}
	for _, s := range p.segs {
		extend(s.to)
		if !s.line {
			extend(s.c1)
			extend(s.c2)
		}
	}
	return image.Rect(
		int(math.Floor(float64(x0))), int(math.Floor(float64(y0))),
		int(math.Ceil(float64(x1))), int(math.Ceil(float64(y1))),
	)
}

// roundedRect is a rectangle from (x0,y0) to (x1,y1) with corner radius rad.
func roundedRect(x0, y0, x1, y1, rad float64) path {
	rad = min(rad, (x1-x0)/2, (y1-y0)/2)
	if rad < 0 {
		rad = 0
	}
	k := rad * (1 - kappa)
	p := path{start: pt(x0+rad, y0)}
	p.lineTo(x1-rad, y0)
	p.cubeTo(x1-k, y0, x1, y0+k, x1, y0+rad)
	p.lineTo(x1, y1-rad)
	p.cubeTo(x1, y1-k, x1-k, y1, x1-rad, y1)
	p.lineTo(x0+rad, y1)
	p.cubeTo(x0+k, y1, x0, y1-k, x0, y1-rad)
	p.lineTo(x0, y0+rad)
	p.cubeTo(x0, y0+k, x0+k, y0, x0+rad, y0)
	return p
}

// circle centered at (cx,cy) with radius rad.
func circle(cx, cy, rad float64) path {
	k := rad * kappa
	p := path{start: pt(cx+rad, cy)}
	p.cubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	p.cubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	p.cubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	p.cubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	return p
}
