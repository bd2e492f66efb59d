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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Scene is the complete geometric description of one chart.
// All coordinates are in device units with the origin in the top-left
// corner and y growing downwards.
type Scene struct {
	Width, Height float64

	// ViewBox is the coordinate range covered by the scene.
	// LLx/LLy hold the minimum corner, URx/URy the maximum corner.
	ViewBox rect.Rect

	Center vec.Vec2 // nominal pie center, before explosion offsets
	Radius float64

	Title  Title
	Slices []Slice
	Legend Legend

	// Style is the normalized style the scene was computed with.
	Style Style

	// Categories is the normalized snapshot of all positive-value
	// categories, in input order.  Slice.Source points into this slice.
	Categories []Category

	// Total is the sum of the category values before normalization.
	// It is +Inf if the sum overflows.
	Total float64
}

// Slice is the layout of one wedge together with its percent label.
type Slice struct {
	Source *Category

	Value    float64
	Fraction float64 // Value / total, in (0, 1]

	StartAngle, EndAngle, MidAngle float64 // radians, clockwise from +x
	LargeArc                       bool    // EndAngle-StartAngle > π

	Explode float64  // length of Shift
	Shift   vec.Vec2 // explosion offset along the bisector
	Center  vec.Vec2 // offset wedge center

	// Path is the closed outline of the wedge.
	Path *path.Data

	// The leader line runs LabelStart → LabelJoint → LabelEnd.
	LabelStart, LabelJoint, LabelEnd vec.Vec2

	Label Label

	index int // position of Source in Scene.Categories
}

// Side tells on which side of the pie a label is placed.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Anchor is the horizontal alignment of a text relative to its position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// String returns the SVG text-anchor keyword.
func (a Anchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// Label is a positioned percent label.
type Label struct {
	Text     string
	Pos      vec.Vec2 // baseline anchor point
	Anchor   Anchor
	Side     Side
	NaturalY float64 // baseline before collision avoidance
	Font     Font
}

// Title is the wrapped chart title, centered horizontally.
type Title struct {
	Lines      []string
	X, Y       float64 // baseline of the first line
	LineHeight float64
	Font       Font
	Color      string
}

// Bottom returns the baseline of the last title line.
func (t Title) Bottom() float64 {
	if len(t.Lines) == 0 {
		return t.Y
	}
	return t.Y + float64(len(t.Lines)-1)*t.LineHeight
}

// Legend is the block of colour swatches below the pie.
type Legend struct {
	Left, Top  float64
	RowHeight  float64
	SwatchSize float64
	SwatchGap  float64
	Font       Font
	Rows       []LegendRow
}

// LegendRow is one swatch with its label.
type LegendRow struct {
	Text    string
	Color   string
	Origin  vec.Vec2  // top-left corner of the row
	Swatch  rect.Rect // swatch square, absolute coordinates
	TextPos vec.Vec2  // baseline start of the label text
}

// Clone returns a deep copy of the scene.  Modifying the copy does not
// affect the original.
func (s *Scene) Clone() *Scene {
	if s == nil {
		return nil
	}
	c := *s
	c.Categories = slices.Clone(s.Categories)
	c.Title.Lines = slices.Clone(s.Title.Lines)
	c.Legend.Rows = slices.Clone(s.Legend.Rows)
	c.Slices = make([]Slice, len(s.Slices))
	for i, sl := range s.Slices {
		if sl.Path != nil {
			sl.Path = &path.Data{
				Cmds:   slices.Clone(sl.Path.Cmds),
				Coords: slices.Clone(sl.Path.Coords),
			}
		}
		if sl.index >= 0 && sl.index < len(c.Categories) {
			sl.Source = &c.Categories[sl.index]
		}
		c.Slices[i] = sl
	}
	return &c
}
