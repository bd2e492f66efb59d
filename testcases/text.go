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

var textCharts = []Chart{
	{
		Name:       "long_title",
		Title:      "Quarterly Manufacturing Cost Breakdown for the Northern Production Site, Including Rework and Scrap",
		Categories: manufacturing,
	},
	{
		Name:       "untitled",
		Title:      "   ",
		Categories: manufacturing,
	},
	{
		Name:  "unbroken_title",
		Title: "Supercalifragilisticexpialidocious-Cost-Breakdown-Without-Spaces",
		Categories: []layout.Category{
			cat(1, "A", 1, ""),
			cat(2, "B", 2, ""),
		},
	},
	{
		Name:  "special_characters",
		Title: "Costs <2026> & \"Overheads\"",
		Categories: []layout.Category{
			cat(1, "Labor & Overhead", 40, "#8f8cc4"),
			cat(2, "R&D <new>", 35, "#a63a7a"),
			cat(3, "Café Überstunden", 25, "#efe8b7"),
		},
	},
	{
		Name:  "missing_labels",
		Title: "Missing Labels",
		Categories: []layout.Category{
			cat(1, "", 3, "#8f8cc4"),
			cat(2, "  ", 2, "#a63a7a"),
			cat(3, "Named", 1, "#efe8b7"),
		},
	},
}
