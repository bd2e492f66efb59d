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

package layout

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// polar returns the point at the given distance and angle from c.
func polar(c vec.Vec2, radius, angle float64) vec.Vec2 {
	return vec.Vec2{
		X: c.X + radius*math.Cos(angle),
		Y: c.Y + radius*math.Sin(angle),
	}
}

// wedgePath builds the closed outline of a wedge.  The arc is approximated
// by cubic Bézier segments spanning at most a quarter circle each.
func wedgePath(c vec.Vec2, radius, start, end float64) *path.Data {
	p := (&path.Data{}).
		MoveTo(c).
		LineTo(polar(c, radius, start))

	n := max(1, int(math.Ceil((end-start)/(math.Pi/2)-1e-9)))
	step := (end - start) / float64(n)
	// control point distance for a circular arc of angle step
	k := 4.0 / 3.0 * math.Tan(step/4) * radius
	for i := range n {
		a0 := start + float64(i)*step
		a1 := a0 + step
		p0 := polar(c, radius, a0)
		p3 := polar(c, radius, a1)
		p1 := p0.Add(vec.Vec2{X: -math.Sin(a0), Y: math.Cos(a0)}.Mul(k))
		p2 := p3.Sub(vec.Vec2{X: -math.Sin(a1), Y: math.Cos(a1)}.Mul(k))
		p = p.CubeTo(p1, p2, p3)
	}
	return p.Close()
}

// SVGPath returns the wedge outline as SVG path data, using an elliptical
// arc command with the sweep flag set for the clockwise direction.
func (s *Slice) SVGPath(radius float64) string {
	var b strings.Builder
	c := s.Center
	start := polar(c, radius, s.StartAngle)
	end := polar(c, radius, s.EndAngle)
	r := fmtCoord(radius)

	b.WriteString("M " + fmtCoord(c.X) + " " + fmtCoord(c.Y))
	b.WriteString(" L " + fmtCoord(start.X) + " " + fmtCoord(start.Y))
	if s.EndAngle-s.StartAngle >= 2*math.Pi-1e-9 {
		// An arc with coincident end points is not drawn, so a full
		// circle is split into two halves.
		mid := polar(c, radius, s.StartAngle+math.Pi)
		b.WriteString(" A " + r + " " + r + " 0 0 1 " + fmtCoord(mid.X) + " " + fmtCoord(mid.Y))
		b.WriteString(" A " + r + " " + r + " 0 0 1 " + fmtCoord(end.X) + " " + fmtCoord(end.Y))
	} else {
		large := "0"
		if s.LargeArc {
			large = "1"
		}
		b.WriteString(" A " + r + " " + r + " 0 " + large + " 1 " + fmtCoord(end.X) + " " + fmtCoord(end.Y))
	}
	b.WriteString(" Z")
	return b.String()
}

// fmtCoord formats a coordinate with at most three decimals.
func fmtCoord(x float64) string {
	x = math.Round(x*1000) / 1000
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
