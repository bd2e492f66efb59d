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
	"cmp"
	"slices"
)

// spreadLabels moves the labels of one side of the pie vertically so that
// consecutive labels are at least gap apart and all labels stay within
// [top, bottom].  The horizontal positions are not changed.
func spreadLabels(sl []Slice, side Side, top, bottom, gap float64) {
	var idx []int
	for i := range sl {
		if sl[i].Label.Side == side {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return
	}

	// stable sort keeps slice order for labels at equal heights
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(sl[a].Label.NaturalY, sl[b].Label.NaturalY)
	})

	ys := make([]float64, len(idx))
	for k, i := range idx {
		ys[k] = sl[i].Label.NaturalY
	}
	resolveColumn(ys, top, bottom, gap)

	for k, i := range idx {
		dy := ys[k] - sl[i].Label.NaturalY
		sl[i].Label.Pos.Y += dy
		sl[i].LabelEnd.Y += dy
	}
}

// resolveColumn adjusts the sorted positions ys in place.  A forward pass
// pushes every position at least gap below its predecessor, starting at
// top; a backward pass pulls every position at least gap above its
// successor, starting at bottom.  If the column does not fit, gap is
// reduced so that it does.  The effective gap is returned.
func resolveColumn(ys []float64, top, bottom, gap float64) float64 {
	n := len(ys)
	if n == 0 {
		return gap
	}
	if bottom < top {
		bottom = top
	}
	if n > 1 && float64(n-1)*gap > bottom-top {
		gap = (bottom - top) / float64(n-1)
	}

	for range 2 {
		ys[0] = max(ys[0], top)
		for i := 1; i < n; i++ {
			ys[i] = max(ys[i], ys[i-1]+gap)
		}
		ys[n-1] = min(ys[n-1], bottom)
		for i := n - 2; i >= 0; i-- {
			ys[i] = min(ys[i], ys[i+1]-gap)
		}
	}
	return gap
}
