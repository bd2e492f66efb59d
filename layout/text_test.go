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
	"testing"
	"unicode/utf8"
)

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{58, "58%"},
		{10, "10%"},
		{9.96, "10%"},
		{12.5, "13%"},
		{9.94, "9.9%"},
		{5, "5%"},
		{0.04, "0%"},
		{0.25, "0.3%"},
		{100, "100%"},
	}
	for _, c := range cases {
		if got := FormatPercent(c.in); got != c.want {
			t.Errorf("FormatPercent(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

// monoMeasurer gives every rune a width of 10.
type monoMeasurer struct{}

func (monoMeasurer) MeasureText(text string, _ Font) float64 {
	return 10 * float64(utf8.RuneCountInString(text))
}

func TestWrapText(t *testing.T) {
	cases := []struct {
		text string
		max  float64
		want []string
	}{
		{"", 100, nil},
		{"   ", 100, nil},
		{"short", 100, []string{"short"}},
		{"one two three", 70, []string{"one two", "three"}},
		{"  spaced   out  ", 100, []string{"spaced out"}},
		{"abcdefghij", 40, []string{"abcd", "efgh", "ij"}},
		{"ab abcdefgh cd", 40, []string{"ab", "abcd", "efgh", "cd"}},
		{"äöüß", 20, []string{"äö", "üß"}},
		{"wide", 5, []string{"w", "i", "d", "e"}},
	}
	for _, c := range cases {
		got := WrapText(c.text, TitleFont, c.max, monoMeasurer{})
		if !slices.Equal(got, c.want) {
			t.Errorf("WrapText(%q, %g) = %q, want %q", c.text, c.max, got, c.want)
		}
	}
}
