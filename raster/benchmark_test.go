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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// pieFractions is a typical set of slices, clockwise from 12 o'clock.
var pieFractions = []float64{0.58, 0.23, 0.09, 0.05, 0.05}

// BenchmarkRasteriserPie fills and strokes all wedges of a pie chart at
// device scale 2.
func BenchmarkRasteriserPie(b *testing.B) {
	for _, radius := range []float64{30, 118, 400} {
		b.Run(fmt.Sprintf("r%g", radius), func(b *testing.B) {
			size := int(math.Ceil(2 * (2*radius + 20)))
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			wedges := pieWedges(radius+10, radius+10, radius)

			emit := func(y, xMin int, coverage []float32) {
				row := dst.Pix[y*dst.Stride+xMin:]
				for i, c := range coverage {
					row[i] = uint8(c * 255)
				}
			}

			r := NewRasteriser(clip)
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
				r.Width = 5
				for _, w := range wedges {
					r.FillNonZero(w, emit)
					r.Stroke(w, emit)
				}
			}
		})
	}
}

// BenchmarkVectorPie fills the same wedges with golang.org/x/image/vector,
// for comparison.  The vector package has no stroker, so only the fill
// is measured.
func BenchmarkVectorPie(b *testing.B) {
	for _, radius := range []float64{30, 118, 400} {
		b.Run(fmt.Sprintf("r%g", radius), func(b *testing.B) {
			size := int(math.Ceil(2 * (2*radius + 20)))
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			wedges := pieWedges(radius+10, radius+10, radius)

			z := vector.NewRasterizer(size, size)
			b.ReportAllocs()
			for b.Loop() {
				for _, w := range wedges {
					z.Reset(size, size)
					addToVector(z, w, 2)
					z.Draw(dst, dst.Bounds(), src, image.Point{})
				}
			}
		})
	}
}

func pieWedges(cx, cy, radius float64) []*path.Data {
	var res []*path.Data
	angle := -math.Pi / 2
	for _, f := range pieFractions {
		end := angle + 2*math.Pi*f
		res = append(res, benchWedge(vec.Vec2{X: cx, Y: cy}, radius, angle, end))
		angle = end
	}
	return res
}

func benchWedge(c vec.Vec2, radius, start, end float64) *path.Data {
	at := func(phi float64) vec.Vec2 {
		return vec.Vec2{X: c.X + radius*math.Cos(phi), Y: c.Y + radius*math.Sin(phi)}
	}
	tangent := func(phi float64) vec.Vec2 {
		return vec.Vec2{X: -math.Sin(phi), Y: math.Cos(phi)}
	}

	p := (&path.Data{}).MoveTo(c).LineTo(at(start))
	n := int(math.Ceil((end - start) / (math.Pi / 2)))
	step := (end - start) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * radius
	for i := range n {
		a0 := start + float64(i)*step
		a1 := a0 + step
		p = p.CubeTo(at(a0).Add(tangent(a0).Mul(k)), at(a1).Sub(tangent(a1).Mul(k)), at(a1))
	}
	return p.Close()
}

// addToVector replays p, scaled by s, into a vector.Rasterizer.
func addToVector(z *vector.Rasterizer, p *path.Data, s float64) {
	pt := func(v vec.Vec2) (float32, float32) {
		return float32(v.X * s), float32(v.Y * s)
	}
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(pt(p.Coords[k]))
			k++
		case path.CmdLineTo:
			z.LineTo(pt(p.Coords[k]))
			k++
		case path.CmdQuadTo:
			x1, y1 := pt(p.Coords[k])
			x2, y2 := pt(p.Coords[k+1])
			z.QuadTo(x1, y1, x2, y2)
			k += 2
		case path.CmdCubeTo:
			x1, y1 := pt(p.Coords[k])
			x2, y2 := pt(p.Coords[k+1])
			x3, y3 := pt(p.Coords[k+2])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
			k += 3
		case path.CmdClose:
			z.ClosePath()
		}
	}
}
