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
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the colours given to categories which have none.
var Palette = []string{
	"#8f8cc4",
	"#a63a7a",
	"#efe8b7",
	"#c9e6ec",
	"#5f1f59",
}

// PaletteColor returns the automatic colour for the category at position
// i.  The palette is repeated as often as needed.
func PaletteColor(i int) string {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}

// ParseColor parses a colour of the form "#rgb" or "#rrggbb".
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// FormatColor returns the "#rrggbb" form of c.  The alpha channel is
// ignored.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
