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
	"strings"
)

// Category is one user-supplied entry of the chart.
type Category struct {
	ID    int     // unique within one category list, used as a rendering key
	Label string  // legend text; trimmed, empty becomes "Untitled"
	Value float64 // relative size; NaN, infinite and negative values count as 0
	Color string  // fill colour, "#rrggbb" or "#rgb"; empty selects a palette colour
}

// Style holds the per-render presentation parameters.
type Style struct {
	Title             string  // empty or blank means "Untitled Chart"
	StrokeColor       string  // colour of the wedge outlines; empty means white
	StrokeWidth       float64 // outline width; 0 disables the outline
	ExplosionDistance float64 // base radial offset of every wedge
}

// DefaultStyle returns the style used when the caller does not override
// anything.
func DefaultStyle() Style {
	return Style{
		StrokeColor:       "#ffffff",
		StrokeWidth:       5,
		ExplosionDistance: 22,
	}
}

// Placeholder texts for missing labels and titles.
const (
	UntitledLabel = "Untitled"
	UntitledChart = "Untitled Chart"
)

// nonNegative maps NaN, infinities and negative numbers to 0.
func nonNegative(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}
	return x
}

// normalize returns copies of the categories with positive values, with
// labels trimmed, in input order.  Categories without a colour get the
// palette colour for their input position.  The input slice is not
// modified.
func normalize(categories []Category) (kept []Category, total float64) {
	for i, c := range categories {
		c.Value = nonNegative(c.Value)
		if c.Value == 0 {
			continue
		}
		c.Label = strings.TrimSpace(c.Label)
		if c.Label == "" {
			c.Label = UntitledLabel
		}
		c.Color = strings.TrimSpace(c.Color)
		if c.Color == "" {
			c.Color = PaletteColor(i)
		}
		kept = append(kept, c)
		total += c.Value
	}
	return kept, total
}

// fractions returns the share of each category in the sum of all values.
// If the sum overflows, the values are scaled down by the largest one
// before summing.
func fractions(kept []Category, total float64) []float64 {
	scale := 1.0
	if math.IsInf(total, 1) {
		scale = 0
		for _, c := range kept {
			scale = max(scale, c.Value)
		}
		total = 0
		for _, c := range kept {
			total += c.Value / scale
		}
	}
	res := make([]float64, len(kept))
	for i, c := range kept {
		res[i] = c.Value / scale / total
	}
	return res
}

// normalizeStyle clamps the numeric style parameters and fills in the
// default title and stroke colour.
func normalizeStyle(s Style) Style {
	s.StrokeWidth = nonNegative(s.StrokeWidth)
	s.ExplosionDistance = nonNegative(s.ExplosionDistance)
	s.StrokeColor = strings.TrimSpace(s.StrokeColor)
	if s.StrokeColor == "" {
		s.StrokeColor = DefaultStyle().StrokeColor
	}
	s.Title = strings.TrimSpace(s.Title)
	if s.Title == "" {
		s.Title = UntitledChart
	}
	return s
}
