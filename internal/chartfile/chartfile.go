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

// Package chartfile reads chart definitions in TOML format.
//
// A chart file looks like this:
//
//	title = "Manufacturing Cost Breakdown"
//	stroke_color = "#ffffff"
//	stroke_width = 5
//	explosion = 22
//
//	[[category]]
//	label = "Material"
//	value = 58
//	color = "#8f8cc4"
//
// All top-level keys are optional.  Categories without a colour get one
// from the automatic palette.
package chartfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/piechart/layout"
)

// Chart is a decoded chart definition.
type Chart struct {
	Categories []layout.Category
	Style      layout.Style
}

// file is the on-disk representation of a chart.
type file struct {
	Title       string     `toml:"title,omitempty"`
	StrokeColor string     `toml:"stroke_color,omitempty"`
	StrokeWidth *float64   `toml:"stroke_width,omitempty"`
	Explosion   *float64   `toml:"explosion,omitempty"`
	Categories  []category `toml:"category"`
}

type category struct {
	Label string  `toml:"label"`
	Value float64 `toml:"value"`
	Color string  `toml:"color,omitempty"`
}

// Load reads a chart definition from the named file.
func Load(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads a chart definition.  Category IDs are assigned as 1, 2, ...
// in file order.  Unknown keys and malformed colours are errors.
func Decode(r io.Reader) (*Chart, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	style := layout.DefaultStyle()
	style.Title = f.Title
	if f.StrokeColor != "" {
		if _, err := layout.ParseColor(f.StrokeColor); err != nil {
			return nil, fmt.Errorf("stroke_color: %w", err)
		}
		style.StrokeColor = f.StrokeColor
	}
	if f.StrokeWidth != nil {
		style.StrokeWidth = *f.StrokeWidth
	}
	if f.Explosion != nil {
		style.ExplosionDistance = *f.Explosion
	}

	res := &Chart{
		Categories: make([]layout.Category, len(f.Categories)),
		Style:      style,
	}
	for i, c := range f.Categories {
		color := strings.TrimSpace(c.Color)
		if color == "" {
			color = layout.PaletteColor(i)
		} else if _, err := layout.ParseColor(color); err != nil {
			return nil, fmt.Errorf("category %d: %w", i+1, err)
		}
		res.Categories[i] = layout.Category{
			ID:    i + 1,
			Label: c.Label,
			Value: c.Value,
			Color: color,
		}
	}
	return res, nil
}

// WriteTemplate writes the [Sample] chart in the format understood by
// [Decode], as a starting point for new chart files.
func WriteTemplate(w io.Writer) error {
	return encode(w, Sample())
}

func encode(w io.Writer, c *Chart) error {
	width := c.Style.StrokeWidth
	explosion := c.Style.ExplosionDistance
	f := file{
		Title:       c.Style.Title,
		StrokeColor: c.Style.StrokeColor,
		StrokeWidth: &width,
		Explosion:   &explosion,
		Categories:  make([]category, len(c.Categories)),
	}
	for i, cat := range c.Categories {
		f.Categories[i] = category{
			Label: cat.Label,
			Value: cat.Value,
			Color: cat.Color,
		}
	}
	return toml.NewEncoder(w).Encode(f)
}

// Sample returns the built-in example chart.
func Sample() *Chart {
	style := layout.DefaultStyle()
	style.Title = "Manufacturing Cost Breakdown"
	return &Chart{
		Categories: []layout.Category{
			{ID: 1, Label: "Material", Value: 58, Color: "#8f8cc4"},
			{ID: 2, Label: "Labor", Value: 23, Color: "#a63a7a"},
			{ID: 3, Label: "Scrap", Value: 9, Color: "#efe8b7"},
			{ID: 4, Label: "Rework Labor", Value: 5, Color: "#c9e6ec"},
			{ID: 5, Label: "Equipment", Value: 5, Color: "#5f1f59"},
		},
		Style: style,
	}
}
