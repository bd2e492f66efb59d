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
	"fmt"

	"seehuhn.de/go/piechart/layout"
)

var crowdedCharts = []Chart{
	// many small slices force the labels to be spread out
	{
		Name:       "twelve",
		Title:      "Twelve Months",
		Categories: months(),
	},
	{
		Name:       "thirty",
		Title:      "Thirty Equal Slices",
		Categories: equal(30),
	},
	{
		Name:       "long_tail",
		Title:      "Long Tail",
		Categories: longTail(16),
	},
}

func months() []layout.Category {
	names := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	values := []float64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	res := make([]layout.Category, len(names))
	for i, name := range names {
		res[i] = cat(i+1, name, values[i], layout.PaletteColor(i))
	}
	return res
}

func equal(n int) []layout.Category {
	res := make([]layout.Category, n)
	for i := range res {
		res[i] = cat(i+1, fmt.Sprintf("Part %d", i+1), 1, layout.PaletteColor(i))
	}
	return res
}

// longTail returns one large category followed by ever smaller ones.
func longTail(n int) []layout.Category {
	res := make([]layout.Category, n)
	v := 512.0
	for i := range res {
		res[i] = cat(i+1, fmt.Sprintf("Item %c", 'A'+i), v, layout.PaletteColor(i))
		v /= 2
	}
	return res
}
