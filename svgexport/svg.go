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

// Package svgexport writes a chart scene as an SVG document.
package svgexport

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/piechart/layout"
)

// ErrNoScene is returned by [Write] if the scene is nil.
var ErrNoScene = errors.New("svgexport: no scene")

// leaderWidth is the stroke width of the lines connecting wedges and
// percent labels.
const leaderWidth = 1.8

// Write writes the scene as a standalone SVG document.  Nothing is written
// if a colour in the scene cannot be parsed.
func Write(w io.Writer, s *layout.Scene) error {
	if s == nil {
		return ErrNoScene
	}
	colors, err := sliceColors(s)
	if err != nil {
		return err
	}
	stroke, err := layout.ParseColor(s.Style.StrokeColor)
	if err != nil {
		return fmt.Errorf("svgexport: stroke: %w", err)
	}

	out := &errWriter{w: w}
	canvas := svg.New(out)
	vb := s.ViewBox
	canvas.Startview(px(s.Width), px(s.Height),
		px(vb.LLx), px(vb.LLy), px(vb.URx-vb.LLx), px(vb.URy-vb.LLy))
	canvas.Title(strings.Join(s.Title.Lines, " "))

	canvas.Group(`class="title"`, textStyle(s.Title.Font, s.Title.Color, layout.AnchorMiddle))
	for i, line := range s.Title.Lines {
		y := s.Title.Y + float64(i)*s.Title.LineHeight
		canvas.Text(px(s.Title.X), px(y), line)
	}
	canvas.Gend()

	wedgeStyle := "stroke:" + layout.FormatColor(stroke) +
		";stroke-width:" + num(s.Style.StrokeWidth) + ";stroke-linejoin:miter"
	for i := range s.Slices {
		sl := &s.Slices[i]
		canvas.Group(`class="slice"`, fmt.Sprintf(`data-id="%d"`, sl.Source.ID))
		canvas.Path(sl.SVGPath(s.Radius), "fill:"+colors[i]+";"+wedgeStyle)
		canvas.Path(leaderPath(sl), "fill:none;stroke:"+layout.LeaderColor+
			";stroke-width:"+num(leaderWidth))
		canvas.Text(px(sl.Label.Pos.X), px(sl.Label.Pos.Y), sl.Label.Text,
			textStyle(sl.Label.Font, layout.LabelColor, sl.Label.Anchor))
		canvas.Gend()
	}

	lg := &s.Legend
	canvas.Group(`class="legend"`, textStyle(lg.Font, layout.LegendColor, layout.AnchorStart))
	for i, row := range lg.Rows {
		sw := row.Swatch
		canvas.Roundrect(px(sw.LLx), px(sw.LLy), px(sw.URx-sw.LLx), px(sw.URy-sw.LLy), 2, 2,
			"fill:"+colors[i]+";stroke:"+layout.SwatchEdge)
		canvas.Text(px(row.TextPos.X), px(row.TextPos.Y), row.Text)
	}
	canvas.Gend()

	canvas.End()
	return out.err
}

// sliceColors returns the normalized fill colour of every slice.
func sliceColors(s *layout.Scene) ([]string, error) {
	res := make([]string, len(s.Slices))
	for i := range s.Slices {
		c, err := layout.ParseColor(s.Slices[i].Source.Color)
		if err != nil {
			return nil, fmt.Errorf("svgexport: category %d: %w", s.Slices[i].Source.ID, err)
		}
		res[i] = layout.FormatColor(c)
	}
	return res, nil
}

func leaderPath(sl *layout.Slice) string {
	pts := []float64{
		sl.LabelStart.X, sl.LabelStart.Y,
		sl.LabelJoint.X, sl.LabelJoint.Y,
		sl.LabelEnd.X, sl.LabelEnd.Y,
	}
	var b strings.Builder
	for i := 0; i < len(pts); i += 2 {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(num(pts[i]) + " " + num(pts[i+1]))
	}
	return b.String()
}

func textStyle(f layout.Font, fill string, anchor layout.Anchor) string {
	return fmt.Sprintf("font-family:sans-serif;font-size:%spx;font-weight:%d;fill:%s;text-anchor:%s",
		num(f.Size), f.Weight, fill, anchor)
}

// px rounds a coordinate to the integer grid used by the svg package.
func px(x float64) int {
	return int(math.Round(x))
}

func num(x float64) string {
	return strconv.FormatFloat(math.Round(x*1000)/1000, 'f', -1, 64)
}

// errWriter remembers the first write error, since the svg package does
// not report errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
