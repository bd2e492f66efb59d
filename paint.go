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

package piechart

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/piechart/fonts"
	"seehuhn.de/go/piechart/layout"
	"seehuhn.de/go/piechart/raster"
)

// Line widths of the chart decorations, in scene units.
const (
	leaderWidth = 1.8
	swatchWidth = 1
	swatchR     = 2
)

// painter draws scene elements onto an RGBA image.
type painter struct {
	img   *image.RGBA
	mask  *image.Alpha
	r     *raster.Rasteriser
	fonts *fonts.Cache

	ctm        matrix.Matrix
	scaleY     float64
	dirty      image.Rectangle
	lastErr    error
	colorCache map[string]*image.Uniform
}

// paintScene draws s onto img.  The view box of s is stretched to cover
// the whole image.
func paintScene(img *image.RGBA, s *layout.Scene, ft *fonts.Cache) error {
	b := img.Bounds()
	vb := s.ViewBox
	sx := float64(b.Dx()) / (vb.URx - vb.LLx)
	sy := float64(b.Dy()) / (vb.URy - vb.LLy)
	if math.IsNaN(sx) || math.IsInf(sx, 0) || math.IsNaN(sy) || math.IsInf(sy, 0) {
		return fmt.Errorf("invalid view box %v", vb)
	}

	clip := rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}
	p := &painter{
		img:        img,
		mask:       image.NewAlpha(b),
		r:          raster.NewRasteriser(clip),
		fonts:      ft,
		ctm:        matrix.Matrix{sx, 0, 0, sy, -vb.LLx * sx, -vb.LLy * sy},
		scaleY:     sy,
		colorCache: make(map[string]*image.Uniform),
	}

	t := &s.Title
	titleColor := p.color(t.Color)
	for i, line := range t.Lines {
		y := t.Y + float64(i)*t.LineHeight
		p.text(line, vec.Vec2{X: t.X, Y: y}, t.Font, layout.AnchorMiddle, titleColor)
	}

	stroke := p.color(s.Style.StrokeColor)
	leader := p.color(layout.LeaderColor)
	label := p.color(layout.LabelColor)
	for i := range s.Slices {
		sl := &s.Slices[i]
		if sl.Source == nil || sl.Path == nil {
			continue
		}
		fill := p.color(sl.Source.Color)
		if p.lastErr != nil {
			return p.lastErr
		}

		p.fill(sl.Path, fill)
		if w := s.Style.StrokeWidth; w > 0 {
			p.stroke(sl.Path, stroke, w, graphics.LineJoinMiter)
		}

		lp := (&path.Data{}).
			MoveTo(sl.LabelStart).
			LineTo(sl.LabelJoint).
			LineTo(sl.LabelEnd)
		p.stroke(lp, leader, leaderWidth, graphics.LineJoinMiter)
		p.text(sl.Label.Text, sl.Label.Pos, sl.Label.Font, sl.Label.Anchor, label)
	}

	lg := &s.Legend
	edge := p.color(layout.SwatchEdge)
	text := p.color(layout.LegendColor)
	for _, row := range lg.Rows {
		sw := roundedRect(row.Swatch, swatchR)
		p.fill(sw, p.color(row.Color))
		p.stroke(sw, edge, swatchWidth, graphics.LineJoinMiter)
		p.text(row.Text, row.TextPos, lg.Font, layout.AnchorStart, text)
	}
	return p.lastErr
}

// color returns an image with the given uniform colour.  Parse errors are
// remembered and reported at the end of painting.
func (p *painter) color(s string) *image.Uniform {
	if u, ok := p.colorCache[s]; ok {
		return u
	}
	c, err := layout.ParseColor(s)
	if err != nil {
		if p.lastErr == nil {
			p.lastErr = err
		}
		c = color.NRGBA{A: 0xff}
	}
	u := image.NewUniform(c)
	p.colorCache[s] = u
	return u
}

func (p *painter) fill(d *path.Data, col *image.Uniform) {
	p.r.Reset(p.r.Clip)
	p.r.CTM = p.ctm
	p.r.FillNonZero(d, p.emit)
	p.composite(col)
}

func (p *painter) stroke(d *path.Data, col *image.Uniform, width float64, join graphics.LineJoinStyle) {
	p.r.Reset(p.r.Clip)
	p.r.CTM = p.ctm
	p.r.Width = width
	p.r.Join = join
	p.r.MiterLimit = raster.DefaultMiterLimit
	p.r.Stroke(d, p.emit)
	p.composite(col)
}

// emit copies one row of coverage into the mask.
func (p *painter) emit(y, xMin int, coverage []float32) {
	row := p.mask.Pix[p.mask.PixOffset(xMin, y):]
	for i, c := range coverage {
		row[i] = uint8(min(c, 1)*255 + 0.5)
	}
	p.dirty = p.dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
}

// composite draws col through the mask and clears the mask again.
func (p *painter) composite(col *image.Uniform) {
	r := p.dirty
	if r.Empty() {
		return
	}
	draw.DrawMask(p.img, r, col, image.Point{}, p.mask, r.Min, draw.Over)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.mask.Pix[p.mask.PixOffset(r.Min.X, y):p.mask.PixOffset(r.Max.X, y)]
		clear(row)
	}
	p.dirty = image.Rectangle{}
}

// text draws a single line of text with its baseline at pos.
func (p *painter) text(s string, pos vec.Vec2, f layout.Font, anchor layout.Anchor, col *image.Uniform) {
	if s == "" {
		return
	}
	df := layout.Font{Size: f.Size * p.scaleY, Weight: f.Weight}
	dev := p.device(pos)
	x := fixed.Int26_6(math.Round(dev.X * 64))
	switch anchor {
	case layout.AnchorMiddle:
		x -= p.fonts.Advance(s, df) / 2
	case layout.AnchorEnd:
		x -= p.fonts.Advance(s, df)
	}
	dot := fixed.Point26_6{X: x, Y: fixed.Int26_6(math.Round(dev.Y * 64))}
	p.fonts.DrawString(p.img, col, df, dot, s)
}

// device maps a scene point to image coordinates.
func (p *painter) device(v vec.Vec2) vec.Vec2 {
	m := p.ctm
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// roundedRect returns the outline of r with corners rounded to radius rad.
func roundedRect(r rect.Rect, rad float64) *path.Data {
	rad = min(rad, (r.URx-r.LLx)/2, (r.URy-r.LLy)/2)
	if !(rad > 0) {
		return (&path.Data{}).
			MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
			LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
			LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
			LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
			Close()
	}
	k := rad * arcMagic
	x0, y0, x1, y1 := r.LLx, r.LLy, r.URx, r.URy
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0 + rad, Y: y0}).
		LineTo(vec.Vec2{X: x1 - rad, Y: y0}).
		CubeTo(vec.Vec2{X: x1 - rad + k, Y: y0}, vec.Vec2{X: x1, Y: y0 + rad - k}, vec.Vec2{X: x1, Y: y0 + rad}).
		LineTo(vec.Vec2{X: x1, Y: y1 - rad}).
		CubeTo(vec.Vec2{X: x1, Y: y1 - rad + k}, vec.Vec2{X: x1 - rad + k, Y: y1}, vec.Vec2{X: x1 - rad, Y: y1}).
		LineTo(vec.Vec2{X: x0 + rad, Y: y1}).
		CubeTo(vec.Vec2{X: x0 + rad - k, Y: y1}, vec.Vec2{X: x0, Y: y1 - rad + k}, vec.Vec2{X: x0, Y: y1 - rad}).
		LineTo(vec.Vec2{X: x0, Y: y0 + rad}).
		CubeTo(vec.Vec2{X: x0, Y: y0 + rad - k}, vec.Vec2{X: x0 + rad - k, Y: y0}, vec.Vec2{X: x0 + rad, Y: y0}).
		Close()
}

// arcMagic is the control point distance for a quarter circle of radius 1.
const arcMagic = 0.5522847498307936
