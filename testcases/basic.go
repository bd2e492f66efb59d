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

// manufacturing is the default data set of the chart editor.
var manufacturing = []layout.Category{
	cat(1, "Material", 58, "#8f8cc4"),
	cat(2, "Labor", 23, "#a63a7a"),
	cat(3, "Scrap", 9, "#efe8b7"),
	cat(4, "Rework Labor", 5, "#c9e6ec"),
	cat(5, "Equipment", 5, "#5f1f59"),
}

var basicCharts = []Chart{
	{
		Name:       "manufacturing",
		Title:      "Manufacturing Cost Breakdown",
		Categories: manufacturing,
	},
	{
		Name:  "halves",
		Title: "Two Halves",
		Categories: []layout.Category{
			cat(1, "Left", 1, "#8f8cc4"),
			cat(2, "Right", 1, "#a63a7a"),
		},
	},
	{
		Name:  "thirds",
		Title: "Three Equal Parts",
		Categories: []layout.Category{
			cat(1, "One", 10, "#8f8cc4"),
			cat(2, "Two", 10, "#a63a7a"),
			cat(3, "Three", 10, "#efe8b7"),
		},
	},
	{
		Name:  "single",
		Title: "Everything",
		Categories: []layout.Category{
			cat(1, "All", 42, "#c9e6ec"),
		},
	},
}
