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

import (
	"math"

	"seehuhn.de/go/piechart/layout"
)

var valueCharts = []Chart{
	// categories without a positive value are left out
	{
		Name:  "zero_filtered",
		Title: "Zero Values Removed",
		Categories: []layout.Category{
			cat(1, "Zero", 0, "#8f8cc4"),
			cat(2, "Kept A", 30, "#a63a7a"),
			cat(3, "Negative", -5, "#efe8b7"),
			cat(4, "Not a Number", math.NaN(), "#c9e6ec"),
			cat(5, "Kept B", 70, "#5f1f59"),
		},
	},

	// the largest wedge is pushed further out than the others
	{
		Name:  "dominant",
		Title: "One Dominant Slice",
		Categories: []layout.Category{
			cat(1, "Big", 46, "#8f8cc4"),
			cat(2, "Medium", 45, "#a63a7a"),
			cat(3, "Small", 9, "#efe8b7"),
		},
	},
	{
		Name:  "over_half",
		Title: "Large Arc",
		Categories: []layout.Category{
			cat(1, "Majority", 75, "#5f1f59"),
			cat(2, "Minority", 25, "#efe8b7"),
		},
	},
	{
		Name:  "tiny_slice",
		Title: "A Very Small Share",
		Categories: []layout.Category{
			cat(1, "Almost Everything", 999, "#8f8cc4"),
			cat(2, "Almost Nothing", 1, "#a63a7a"),
		},
	},
	{
		Name:  "fractional",
		Title: "Fractional Values",
		Categories: []layout.Category{
			cat(1, "A", 0.1, "#8f8cc4"),
			cat(2, "B", 0.2, "#a63a7a"),
			cat(3, "C", 0.3, "#efe8b7"),
		},
	},
}
