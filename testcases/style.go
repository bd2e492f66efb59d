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

package testcases

import "seehuhn.de/go/piechart/layout"

var styleCharts = []Chart{
	{
		Name:       "no_outline",
		Title:      "Without Outline",
		Categories: manufacturing,
		Style:      withStyle(func(s *layout.Style) { s.StrokeWidth = 0 }),
	},
	{
		Name:       "thick_outline",
		Title:      "Thick Dark Outline",
		Categories: manufacturing,
		Style: withStyle(func(s *layout.Style) {
			s.StrokeWidth = 12
			s.StrokeColor = "#222"
		}),
	},
	{
		Name:       "not_exploded",
		Title:      "Closed Pie",
		Categories: manufacturing,
		Style:      withStyle(func(s *layout.Style) { s.ExplosionDistance = 0 }),
	},
	{
		Name:       "far_exploded",
		Title:      "Far Apart",
		Categories: manufacturing,
		Style:      withStyle(func(s *layout.Style) { s.ExplosionDistance = 40 }),
	},
	{
		Name:  "palette",
		Title: "Automatic Colours",
		Categories: []layout.Category{
			cat(1, "First", 5, ""),
			cat(2, "Second", 4, ""),
			cat(3, "Third", 3, ""),
			cat(4, "Fourth", 2, ""),
			cat(5, "Fifth", 1, ""),
			cat(6, "Sixth", 1, ""),
		},
	},
}
