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

// Package testcases holds sample charts for rendering tests and the
// gallery generator.
package testcases

import (
	"seehuhn.de/go/piechart/layout"
)

// Chart defines a single sample chart.
type Chart struct {
	Name       string // lowercase a-z and _ only
	Title      string
	Categories []layout.Category
	Style      *layout.Style // nil means layout.DefaultStyle()
}

// Scene lays out the chart.  If m is nil, text widths are estimated.
func (c Chart) Scene(m layout.TextMeasurer) (*layout.Scene, error) {
	style := layout.DefaultStyle()
	if c.Style != nil {
		style = *c.Style
	}
	style.Title = c.Title
	return layout.Compute(c.Categories, style, m)
}

// cat is a helper to create a category.
func cat(id int, label string, value float64, color string) layout.Category {
	return layout.Category{ID: id, Label: label, Value: value, Color: color}
}

// withStyle returns the default style, modified by fn.
func withStyle(fn func(s *layout.Style)) *layout.Style {
	s := layout.DefaultStyle()
	fn(&s)
	return &s
}
