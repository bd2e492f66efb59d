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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func TestStrokeHorizontalLine(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 10}).
		LineTo(vec.Vec2{X: 18, Y: 10})

	cases := []struct {
		cap        graphics.LineCapStyle
		xMin, xMax int
		lo, hi     float64
	}{
		{graphics.LineCapButt, 2, 18, 64, 64},
		{graphics.LineCapSquare, 0, 20, 80, 80},
		{graphics.LineCapRound, 0, 20, 64 + 2*math.Sqrt2*4, 64 + 4*math.Pi},
	}
	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			r := NewRasteriser(clip100)
			r.Width = 4
			r.Cap = tc.cap

			got := coverageMap{}
			r.Stroke(line, got.emit(t))

			total := got.total()
			if total < tc.lo-1e-3 || total > tc.hi+1e-3 {
				t.Errorf("total coverage %g, want in [%g, %g]", total, tc.lo, tc.hi)
			}
			for key, c := range got {
				outside := key[0] < tc.xMin || key[0] >= tc.xMax || key[1] < 8 || key[1] >= 12
				if outside && c > 1e-5 {
					t.Errorf("pixel %v outside the stroke", key)
				}
			}
			// the stroke is symmetric about the line
			for x := tc.xMin; x < tc.xMax; x++ {
				for dy := range 2 {
					above := got[[2]int{x, 9 - dy}]
					below := got[[2]int{x, 10 + dy}]
					if math.Abs(float64(above-below)) > 1e-5 {
						t.Errorf("x=%d: rows %d and %d differ: %g vs %g", x, 9-dy, 10+dy, above, below)
					}
				}
			}
			for x := 2; x < 18; x++ {
				if c := got[[2]int{x, 9}]; math.Abs(float64(c)-1) > 1e-6 {
					t.Errorf("pixel (%d, 9): coverage %g", x, c)
				}
			}
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	cases := []struct {
		join   graphics.LineJoinStyle
		lo, hi float64
	}{
		{graphics.LineJoinMiter, 160, 160},
		{graphics.LineJoinBevel, 158, 158},
		{graphics.LineJoinRound, 158, 160},
	}
	for _, tc := range cases {
		t.Run(tc.join.String(), func(t *testing.T) {
			r := NewRasteriser(clip100)
			r.Width = 2
			r.Join = tc.join

			got := coverageMap{}
			r.Stroke(box(10, 10, 30, 30), got.emit(t))

			total := got.total()
			if total < tc.lo-1e-3 || total > tc.hi+1e-3 {
				t.Errorf("total coverage %g, want in [%g, %g]", total, tc.lo, tc.hi)
			}
			if m := got.max(); math.Abs(float64(m)-1) > 1e-6 {
				t.Errorf("maximal coverage %g, want 1", m)
			}
			// the inside of the square stays empty
			if c := got[[2]int{20, 20}]; c > 1e-6 {
				t.Errorf("center pixel has coverage %g", c)
			}
		})
	}
}

func TestMiterLimit(t *testing.T) {
	// a sharp corner of about 7 degrees
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 45}).
		LineTo(vec.Vec2{X: 90, Y: 50}).
		LineTo(vec.Vec2{X: 10, Y: 55})

	render := func(limit float64) coverageMap {
		r := NewRasteriser(clip100)
		r.Width = 4
		r.MiterLimit = limit
		got := coverageMap{}
		r.Stroke(p, got.emit(t))
		return got
	}
	bevel := render(4)
	miter := render(20)

	if !(miter.total() > bevel.total()+1) {
		t.Errorf("miter %g not larger than bevel %g", miter.total(), bevel.total())
	}
	tipX := 0
	for key := range miter {
		tipX = max(tipX, key[0])
	}
	if tipX < 98 {
		t.Errorf("miter tip reaches x=%d only", tipX)
	}
	for key := range bevel {
		if key[0] > 92 {
			t.Errorf("bevelled corner reaches pixel %v", key)
		}
	}
}

func TestStrokeDot(t *testing.T) {
	dot := (&path.Data{}).
		MoveTo(vec.Vec2{X: 50, Y: 50}).
		LineTo(vec.Vec2{X: 50, Y: 50})

	r := NewRasteriser(clip100)
	r.Width = 10

	got := coverageMap{}
	r.Stroke(dot, got.emit(t))
	if len(got) != 0 {
		t.Errorf("butt cap: %d pixels covered", len(got))
	}

	r.Cap = graphics.LineCapRound
	got = coverageMap{}
	r.Stroke(dot, got.emit(t))
	if total := got.total(); total < 70 || total > 25*math.Pi {
		t.Errorf("round dot has area %g", total)
	}

	r.Cap = graphics.LineCapSquare
	got = coverageMap{}
	r.Stroke(dot, got.emit(t))
	if total := got.total(); math.Abs(total-100) > 1e-3 {
		t.Errorf("square dot has area %g, want 100", total)
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	r := NewRasteriser(clip100)
	r.Width = 0
	r.Stroke(box(10, 10, 20, 20), func(y, xMin int, coverage []float32) {
		t.Errorf("row %d emitted for a zero width stroke", y)
	})
}

func TestStrokeClosedWedge(t *testing.T) {
	// a closed wedge outline is stroked without caps and without gaps
	const radius = 30
	k := 4.0 / 3.0 * math.Tan(math.Pi/8) * radius
	c := vec.Vec2{X: 50, Y: 60}
	p := (&path.Data{}).
		MoveTo(c).
		LineTo(vec.Vec2{X: 50, Y: 30}).
		CubeTo(vec.Vec2{X: 50 + k, Y: 30}, vec.Vec2{X: 80, Y: 60 - k}, vec.Vec2{X: 80, Y: 60}).
		Close()

	r := NewRasteriser(clip100)
	r.Width = 2
	got := coverageMap{}
	r.Stroke(p, got.emit(t))

	// perimeter times width, plus the miter corners
	perimeter := 2*radius + math.Pi*radius/2
	total := got.total()
	if total < 2*perimeter*0.97 || total > 2*perimeter+6 {
		t.Errorf("total coverage %g for perimeter %g", total, perimeter)
	}
	if c := got[[2]int{60, 50}]; c > 1e-6 {
		t.Errorf("interior pixel has coverage %g", c)
	}
}
