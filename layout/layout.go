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

// Package layout computes the geometry of an exploded pie chart.
//
// The wedges start at 12 o'clock and proceed clockwise in input order.
// Every wedge is pushed away from the center along its bisector; a wedge
// covering more than 45% of the pie is pushed 45% further than the others.
// Percent labels are connected to their wedges by leader lines and are
// spread vertically, separately for the left and the right half of the
// pie, so that they do not overlap.
//
// [Compute] is a pure function: the same input always gives the same
// [Scene], and the input is never modified.
package layout

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrNoData is returned by [Compute] if no category has a positive value.
var ErrNoData = errors.New("layout: no category has a positive value")

// Geometry of the chart, in device units.
const (
	CanvasWidth     = 620
	MinCanvasHeight = 560

	pieCenterX = 300
	pieCenterY = 230
	pieRadius  = 118

	// A wedge with a larger fraction than this gets an extra offset of
	// dominantBoost times the base explosion distance.
	dominantFraction = 0.45
	dominantBoost    = 0.45

	titleBaseline   = 38
	titleMargin     = 40
	titleLineHeight = 34

	leaderInner   = 2  // leader line start, outside the arc
	leaderOuter   = 20 // leader line joint, outside the arc
	leaderTail    = 20 // horizontal part of the leader line
	labelPadding  = 8  // between leader line and text
	labelBaseline = 2  // text baseline below the leader line
	labelGap      = 22 // minimum vertical distance between labels
	labelTopPad   = 24 // between title and topmost label
	labelLowPad   = 24 // between lowest label and legend

	legendOffset     = 78
	legendRowHeight  = 27
	legendSwatchSize = 12
	legendSwatchGap  = 9
	legendTextY      = 11
	legendMinHeight  = 24
	bottomMargin     = 22
)

// Fonts used for the chart texts.
var (
	TitleFont  = Font{Size: 28, Weight: 800}
	LabelFont  = Font{Size: 17, Weight: 800}
	LegendFont = Font{Size: 16, Weight: 600}
)

// Text colours.
const (
	TitleColor  = "#202226"
	LabelColor  = "#151515"
	LeaderColor = "#2f2f2f"
	LegendColor = "#333333"
	SwatchEdge  = "#888888"
)

// Compute lays out an exploded pie chart for the given categories.
// If m is nil, text widths are estimated using [EstimateMeasurer].
// If no category has a positive value, ErrNoData is returned.
func Compute(categories []Category, style Style, m TextMeasurer) (*Scene, error) {
	kept, total := normalize(categories)
	if len(kept) == 0 {
		return nil, ErrNoData
	}
	shares := fractions(kept, total)
	style = normalizeStyle(style)
	if m == nil {
		m = EstimateMeasurer{}
	}

	scene := &Scene{
		Width:      CanvasWidth,
		Radius:     pieRadius,
		Style:      style,
		Categories: kept,
		Total:      total,
	}

	lines := WrapText(style.Title, TitleFont, CanvasWidth-2*titleMargin, m)
	scene.Title = Title{
		Lines:      lines,
		X:          CanvasWidth / 2,
		Y:          titleBaseline,
		LineHeight: titleLineHeight,
		Font:       TitleFont,
		Color:      TitleColor,
	}
	extra := float64(len(lines)-1) * titleLineHeight
	scene.Center = vec.Vec2{X: pieCenterX, Y: pieCenterY + extra}

	base := style.ExplosionDistance
	maxExplode := base * (1 + dominantBoost)

	scene.Slices = make([]Slice, len(kept))
	angle := -math.Pi / 2
	for i := range kept {
		scene.Slices[i] = layoutSlice(scene, i, angle, shares[i], base)
		angle = scene.Slices[i].EndAngle
	}
	// the last wedge closes the circle exactly
	scene.Slices[len(kept)-1].EndAngle = -math.Pi/2 + 2*math.Pi

	legendTop := scene.Center.Y + pieRadius + maxExplode + legendOffset
	scene.Legend = layoutLegend(scene.Slices, legendTop)

	top := scene.Title.Bottom() + labelTopPad
	bottom := legendTop - labelLowPad
	spreadLabels(scene.Slices, SideRight, top, bottom, labelGap)
	spreadLabels(scene.Slices, SideLeft, top, bottom, labelGap)

	legendHeight := max(legendMinHeight, float64(len(kept)-1)*legendRowHeight+legendMinHeight)
	scene.Height = max(MinCanvasHeight, math.Ceil(legendTop+legendHeight+bottomMargin))
	scene.ViewBox = rect.Rect{LLx: 0, LLy: 0, URx: scene.Width, URy: scene.Height}

	return scene, nil
}

// layoutSlice computes wedge and label geometry for category i, starting
// at the given angle.
func layoutSlice(scene *Scene, i int, start, fraction, base float64) Slice {
	span := fraction * 2 * math.Pi
	end := start + span
	mid := start + span/2

	explode := base
	if fraction > dominantFraction {
		explode += base * dominantBoost
	}
	shift := vec.Vec2{X: math.Cos(mid) * explode, Y: math.Sin(mid) * explode}
	c := scene.Center.Add(shift)

	s := Slice{
		Source:     &scene.Categories[i],
		Value:      scene.Categories[i].Value,
		Fraction:   fraction,
		StartAngle: start,
		EndAngle:   end,
		MidAngle:   mid,
		LargeArc:   span > math.Pi,
		Explode:    explode,
		Shift:      shift,
		Center:     c,
		Path:       wedgePath(c, pieRadius, start, end),
		LabelStart: polar(c, pieRadius+leaderInner, mid),
		LabelJoint: polar(c, pieRadius+leaderOuter, mid),
		index:      i,
	}

	dir := 1.0
	side, anchor := SideRight, AnchorStart
	if math.Cos(mid) < 0 {
		dir = -1
		side, anchor = SideLeft, AnchorEnd
	}
	s.LabelEnd = vec.Vec2{X: s.LabelJoint.X + dir*leaderTail, Y: s.LabelJoint.Y}
	y := s.LabelEnd.Y + labelBaseline
	s.Label = Label{
		Text:     FormatPercent(fraction * 100),
		Pos:      vec.Vec2{X: s.LabelEnd.X + dir*labelPadding, Y: y},
		Anchor:   anchor,
		Side:     side,
		NaturalY: y,
		Font:     LabelFont,
	}
	return s
}

// layoutLegend places one legend row per slice, stacked below the pie and
// centered horizontally.
func layoutLegend(sl []Slice, top float64) Legend {
	widest := 0.0
	for i := range sl {
		widest = max(widest, legendTextWidth(sl[i].Source.Label))
	}
	blockWidth := legendSwatchSize + legendSwatchGap + widest
	left := CanvasWidth/2 - blockWidth/2

	lg := Legend{
		Left:       left,
		Top:        top,
		RowHeight:  legendRowHeight,
		SwatchSize: legendSwatchSize,
		SwatchGap:  legendSwatchGap,
		Font:       LegendFont,
		Rows:       make([]LegendRow, len(sl)),
	}
	for i := range sl {
		origin := vec.Vec2{X: left, Y: top + float64(i)*legendRowHeight}
		lg.Rows[i] = LegendRow{
			Text:   sl[i].Source.Label,
			Color:  sl[i].Source.Color,
			Origin: origin,
			Swatch: rect.Rect{
				LLx: origin.X,
				LLy: origin.Y,
				URx: origin.X + legendSwatchSize,
				URy: origin.Y + legendSwatchSize,
			},
			TextPos: vec.Vec2{X: origin.X + legendSwatchSize + legendSwatchGap, Y: origin.Y + legendTextY},
		}
	}
	return lg
}
