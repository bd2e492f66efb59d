// seehuhn.de/go/piechart - exploded pie charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster converts chart outlines into anti-aliased pixel coverage.
//
// Coverage is computed exactly for the flattened outline: every pixel gets
// the fraction of its area inside the shape.  Results are reported one
// scanline at a time through an emit callback, so that the caller decides
// how coverage is composited.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of pixels xMin, xMin+1, ... on row y.
// The coverage slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device space, oriented so that
// y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original segment pointed down, -1 otherwise
}

// Rasteriser turns paths into coverage values.  The buffers of a
// Rasteriser grow as needed and are kept between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip limits the output to this device rectangle.  The coordinates
	// must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.
	Flatness float64

	// Width is the stroke width in user space.
	Width float64

	// Cap and Join select the shape of line ends and corners.
	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MiterLimit bounds the ratio between the miter length and the stroke
	// width.  Longer miters are replaced by bevels.
	MiterLimit float64

	cover  []float32
	area   []float32
	edges  []edge
	active []int

	pts    []vec.Vec2 // flattened subpath, user space
	poly   []vec.Vec2 // stroke polygons, user space
	starts []int      // start index of every polygon in poly

	bbox struct {
		xMin, xMax, yMin, yMax float64
	}
}

// Default parameter values.
const (
	DefaultFlatness   = 0.25
	DefaultMiterLimit = 4.0
)

// NewRasteriser allocates a new Rasteriser for the given clip rectangle.
// The stroke parameters start with the values used by SVG renderers.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle.  The internal buffers are kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = DefaultMiterLimit
}

// FillNonZero fills p using the nonzero winding rule.  Open subpaths are
// closed implicitly.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.walk(p, func(pts []vec.Vec2, _ bool) {
		r.addPolygon(pts)
	})
	r.scan(emit)
}

// walk flattens the path and calls fn once for every subpath, with the
// subpath given as a polyline in user space.  The closed flag reports
// whether the subpath ended with a close command.  A subpath which drew
// something but did not leave its start point is reported as a single
// point.
func (r *Rasteriser) walk(p *path.Data, fn func(pts []vec.Vec2, closed bool)) {
	if p == nil {
		return
	}
	r.pts = r.pts[:0]
	open, drew := false, false
	flush := func(closed bool) {
		if open && (len(r.pts) > 1 || drew) {
			fn(r.pts, closed)
		}
		r.pts = r.pts[:0]
		open, drew = false, false
	}
	lineTo := func(q vec.Vec2) {
		if q != r.pts[len(r.pts)-1] {
			r.pts = append(r.pts, q)
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			r.pts = append(r.pts, p.Coords[k])
			open = true
			k++
		case path.CmdLineTo:
			if open {
				lineTo(p.Coords[k])
				drew = true
			}
			k++
		case path.CmdQuadTo:
			if open {
				r.flattenQuad(r.pts[len(r.pts)-1], p.Coords[k], p.Coords[k+1], lineTo)
				drew = true
			}
			k += 2
		case path.CmdCubeTo:
			if open {
				r.flattenCubic(r.pts[len(r.pts)-1], p.Coords[k], p.Coords[k+1], p.Coords[k+2], lineTo)
				drew = true
			}
			k += 3
		case path.CmdClose:
			if open {
				start := r.pts[0]
				drew = true
				flush(true)
				// a following segment starts at the same point
				r.pts = append(r.pts, start)
				open = true
			}
		}
	}
	flush(false)
}

// linear applies the linear part of the CTM to v.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuad approximates a quadratic Bézier curve by line segments.
// The number of segments is chosen so that the error in device space is
// at most Flatness.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2, lineTo func(vec.Vec2)) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length() / 4
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		lineTo(p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t)))
	}
	lineTo(p2)
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, lineTo func(vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		lineTo(p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t)))
	}
	lineTo(p3)
}

// addPolygon adds the edges of the closed polygon pts.
func (r *Rasteriser) addPolygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	prev := pts[len(pts)-1]
	for _, q := range pts {
		r.addEdge(prev, q)
		prev = q
	}
}

// addEdge transforms a segment to device space and records it.
// Horizontal segments do not contribute to the coverage and are dropped.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	if math.Abs(y1-y0) < minEdgeHeight {
		return
	}
	var dir float32 = 1
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dir = -1
	}

	if len(r.edges) == 0 {
		r.bbox.xMin, r.bbox.xMax = min(x0, x1), max(x0, x1)
		r.bbox.yMin, r.bbox.yMax = y0, y1
	} else {
		r.bbox.xMin = min(r.bbox.xMin, x0, x1)
		r.bbox.xMax = max(r.bbox.xMax, x0, x1)
		r.bbox.yMin = min(r.bbox.yMin, y0)
		r.bbox.yMax = max(r.bbox.yMax, y1)
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / (y1 - y0),
		dir:  dir,
	})
}

// scan computes the coverage for all recorded edges, one scanline at a
// time, keeping a list of the edges which cross the current scanline.
//
// For every pixel two numbers are accumulated: cover, the signed height of
// all edge pieces inside the pixel column, and area, the part of this
// height which lies right of the edge inside the pixel.  The coverage of a
// pixel is the sum of cover over all pixels to its left plus its own area.
func (r *Rasteriser) scan(emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbox.xMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.xMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.yMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := top + 1

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, top, bottom, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			if next == len(r.edges) && len(r.active) == 0 {
				break
			}
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offs := trim(r.cover); row != nil {
			emit(y, xMin+offs, row)
		}
	}
}

// accumulate adds the part of e between top and bottom to the cover and
// area buffers, which start at device column xMin.  Edge pieces left of
// the buffer are added to the first pixel; pieces right of the buffer
// are dropped.
func (r *Rasteriser) accumulate(e *edge, top, bottom float64, xMin, xMax int) bool {
	ya := max(top, e.y0)
	yb := min(bottom, e.y1)
	if yb <= ya {
		return false
	}

	add := func(pix int, dy, xMid float64) {
		c := e.dir * float32(dy)
		switch {
		case pix < xMin:
			r.cover[0] += c
			r.area[0] += c
		case pix < xMax:
			r.cover[pix-xMin] += c
			r.area[pix-xMin] += c * float32(1-(xMid-float64(pix)))
		}
	}

	xa := e.x0 + e.dxdy*(ya-e.y0)
	xb := e.x0 + e.dxdy*(yb-e.y0)
	pa := int(math.Floor(xa))
	pb := int(math.Floor(xb))
	if pa == pb {
		add(pa, yb-ya, (xa+xb)/2)
		return true
	}

	// The edge crosses several pixel columns.  Walk the columns from left
	// to right and add the piece inside each column.
	lo, hi := pa, pb
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi < xMin {
		add(lo, yb-ya, xa)
		return true
	}
	dydx := 1 / e.dxdy
	for pix := max(lo, xMin-1); pix <= min(hi, xMax-1); pix++ {
		left, right := float64(pix), float64(pix+1)
		if pix < xMin {
			// everything left of the buffer collapses into one column
			left = math.Inf(-1)
			right = float64(xMin)
		}
		y0 := e.y0 + dydx*(clampX(left, xa, xb)-e.x0)
		y1 := e.y0 + dydx*(clampX(right, xa, xb)-e.x0)
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		y0 = max(y0, ya)
		y1 = min(y1, yb)
		if y1 <= y0 {
			continue
		}
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		add(pix, y1-y0, xMid)
	}
	return true
}

// clampX restricts x to the interval spanned by a and b.
func clampX(x, a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	return min(max(x, a), b)
}

// integrateNonZero turns the accumulated cover and area values into
// coverage, using the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var sum float32
	for i := range cover {
		c := sum + area[i]
		sum += cover[i]
		if c < 0 {
			c = -c
		}
		cover[i] = min(c, 1)
	}
}

// trim strips zero coverage from both ends of a row.
func trim(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	// minEdgeHeight is the smallest vertical extent, in device pixels, for
	// which an edge is kept.
	minEdgeHeight = 1e-10

	// minSegmentLength is the smallest length, in user space, for which a
	// stroke segment is kept.
	minSegmentLength = 1e-10
)
