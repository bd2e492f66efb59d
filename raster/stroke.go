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

package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke fills the outline of p, stroked with the current Width, Cap,
// Join and MiterLimit.
//
// The outline is assembled from one quadrilateral per segment plus one
// polygon per join and cap.  All polygons are given the same orientation,
// so that overlapping pieces are merged by the nonzero rule.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.edges = r.edges[:0]
	if !(r.Width > 0) {
		return
	}

	r.poly = r.poly[:0]
	r.starts = r.starts[:0]
	r.walk(p, r.strokeSubpath)

	for i, start := range r.starts {
		end := len(r.poly)
		if i+1 < len(r.starts) {
			end = r.starts[i+1]
		}
		r.addPolygon(r.poly[start:end])
	}
	r.scan(emit)
}

// strokeSubpath adds the stroke polygons for one flattened subpath.
func (r *Rasteriser) strokeSubpath(pts []vec.Vec2, closed bool) {
	d := r.Width / 2

	// merge points closer than minSegmentLength
	k := 1
	for _, q := range pts[1:] {
		if q.Sub(pts[k-1]).Length() >= minSegmentLength {
			pts[k] = q
			k++
		}
	}
	pts = pts[:k]
	if closed && len(pts) > 2 && pts[len(pts)-1].Sub(pts[0]).Length() < minSegmentLength {
		pts = pts[:len(pts)-1]
	}

	if len(pts) == 1 {
		// a zero-length subpath only shows its caps
		switch r.Cap {
		case graphics.LineCapRound:
			r.addCircle(pts[0], d)
		case graphics.LineCapSquare:
			r.addCap(pts[0], vec.Vec2{X: 1, Y: 0}, d)
			r.addCap(pts[0], vec.Vec2{X: -1, Y: 0}, d)
		}
		return
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		nrm := normal(unit(b.Sub(a))).Mul(d)
		r.addShape(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	if closed {
		for i := range n {
			prev := pts[(i+n-1)%n]
			next := pts[(i+1)%n]
			r.addJoin(pts[i], unit(pts[i].Sub(prev)), unit(next.Sub(pts[i])), d)
		}
		return
	}
	for i := 1; i < n-1; i++ {
		r.addJoin(pts[i], unit(pts[i].Sub(pts[i-1])), unit(pts[i+1].Sub(pts[i])), d)
	}
	r.addCap(pts[0], unit(pts[0].Sub(pts[1])), d)
	r.addCap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])), d)
}

// addJoin adds the corner piece at p, where the incoming direction t1
// turns into the outgoing direction t2.  The segment quadrilaterals already
// cover the inner side of the corner, so only the outer side is added.
func (r *Rasteriser) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(cross) < collinearLimit && t1.Dot(t2) > 0 {
		return
	}
	if r.Join == graphics.LineJoinRound {
		r.addCircle(p, d)
		return
	}

	// The outer side is opposite to the turning direction.
	s := -1.0
	if cross < 0 {
		s = 1
	}
	n1, n2 := normal(t1), normal(t2)
	a := p.Add(n1.Mul(s * d))
	b := p.Add(n2.Mul(s * d))

	if r.Join == graphics.LineJoinMiter {
		m := n1.Add(n2)
		ml := m.Length()
		// 2/ml is the ratio of miter length to stroke width
		if ml > 1e-12 && 2/ml <= r.MiterLimit {
			tip := p.Add(m.Mul(s * 2 * d / (ml * ml)))
			r.addShape(p, a, tip, b)
			return
		}
	}
	r.addShape(p, a, b)
}

// addCap adds the line cap at the end point p of a subpath, where t points
// away from the line.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, d)
	case graphics.LineCapSquare:
		nrm := normal(t).Mul(d)
		ext := t.Mul(d)
		r.addShape(p.Add(nrm), p.Add(nrm).Add(ext), p.Sub(nrm).Add(ext), p.Sub(nrm))
	}
}

// addCircle adds a polygon approximating the circle of radius d around c.
// The number of vertices is chosen from the radius in device space.
func (r *Rasteriser) addCircle(c vec.Vec2, d float64) {
	scale := max(r.linear(vec.Vec2{X: 1}).Length(), r.linear(vec.Vec2{Y: 1}).Length())
	rDev := d * scale
	n := 8
	if rDev > r.Flatness {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-r.Flatness/rDev))))
	}

	start := len(r.poly)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, vec.Vec2{
			X: c.X + d*math.Cos(phi),
			Y: c.Y + d*math.Sin(phi),
		})
	}
	r.finishShape(start)
}

// addShape adds a closed polygon to the stroke outline.
func (r *Rasteriser) addShape(pts ...vec.Vec2) {
	start := len(r.poly)
	r.poly = append(r.poly, pts...)
	r.finishShape(start)
}

// finishShape normalizes the orientation of the polygon starting at
// r.poly[start] and records it.  Polygons without area are dropped.
func (r *Rasteriser) finishShape(start int) {
	shape := r.poly[start:]
	a := signedArea(shape)
	switch {
	case a == 0:
		r.poly = r.poly[:start]
		return
	case a < 0:
		slices.Reverse(shape)
	}
	r.starts = append(r.starts, start)
}

// signedArea returns twice the signed area of a closed polygon.
func signedArea(pts []vec.Vec2) float64 {
	var sum float64
	prev := pts[len(pts)-1]
	for _, q := range pts {
		sum += prev.X*q.Y - q.X*prev.Y
		prev = q
	}
	return sum
}

// unit returns v scaled to length 1.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// normal returns v rotated by 90 degrees.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

// collinearLimit is the largest cross product of two unit tangents for
// which a corner is treated as straight.
const collinearLimit = 1e-6
