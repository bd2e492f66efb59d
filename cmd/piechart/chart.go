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

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/piechart/internal/chartfile"
	"seehuhn.de/go/piechart/layout"
)

// errNoData is reported when no category has a positive value.
var errNoData = errors.New("add at least one positive percentage to render the chart")

// chartFlags are the options shared by all commands which draw a chart.
type chartFlags struct {
	title       string
	categories  []string
	strokeColor string
	strokeWidth float64
	explode     float64
}

func (cf *chartFlags) register(cmd *cobra.Command) {
	def := layout.DefaultStyle()
	f := cmd.Flags()
	f.StringVar(&cf.title, "title", "", "chart title")
	f.StringArrayVarP(&cf.categories, "category", "c", nil,
		"category as label=value or label=value:#color (repeatable)")
	f.StringVar(&cf.strokeColor, "stroke-color", def.StrokeColor, "colour of the wedge outlines")
	f.Float64Var(&cf.strokeWidth, "stroke-width", def.StrokeWidth, "width of the wedge outlines")
	f.Float64Var(&cf.explode, "explode", def.ExplosionDistance, "distance between the wedges and the center")
}

// chart assembles the chart definition from an optional chart file and
// the command line flags.  Flags take precedence over the file.
func (cf *chartFlags) chart(cmd *cobra.Command, args []string) (*chartfile.Chart, error) {
	var c *chartfile.Chart
	if len(args) > 0 {
		var err error
		c, err = chartfile.Load(args[0])
		if err != nil {
			return nil, err
		}
	} else {
		c = chartfile.Sample()
	}

	if len(cf.categories) > 0 {
		c.Categories = c.Categories[:0]
		for i, s := range cf.categories {
			cat, err := parseCategory(s)
			if err != nil {
				return nil, err
			}
			cat.ID = i + 1
			if cat.Color == "" {
				cat.Color = layout.PaletteColor(i)
			}
			c.Categories = append(c.Categories, cat)
		}
		if len(args) == 0 {
			c.Style.Title = ""
		}
	}

	f := cmd.Flags()
	if f.Changed("title") {
		c.Style.Title = cf.title
	}
	if f.Changed("stroke-color") {
		if _, err := layout.ParseColor(cf.strokeColor); err != nil {
			return nil, err
		}
		c.Style.StrokeColor = cf.strokeColor
	}
	if f.Changed("stroke-width") {
		c.Style.StrokeWidth = cf.strokeWidth
	}
	if f.Changed("explode") {
		c.Style.ExplosionDistance = cf.explode
	}
	return c, nil
}

// scene lays out the chart selected by the flags.
func (a *app) scene(cmd *cobra.Command, args []string, cf *chartFlags) (*layout.Scene, error) {
	c, err := cf.chart(cmd, args)
	if err != nil {
		return nil, err
	}
	scene, err := layout.Compute(c.Categories, c.Style, a.fonts)
	if errors.Is(err, layout.ErrNoData) {
		return nil, errNoData
	} else if err != nil {
		return nil, err
	}
	a.log.Debug("layout computed",
		"slices", len(scene.Slices),
		"width", scene.Width, "height", scene.Height,
		"title_lines", len(scene.Title.Lines))
	return scene, nil
}

// parseCategory parses "label=value" or "label=value:#color".
func parseCategory(s string) (layout.Category, error) {
	eq := strings.LastIndexByte(s, '=')
	if eq < 0 {
		return layout.Category{}, fmt.Errorf("category %q: missing '='", s)
	}
	label, rest := s[:eq], s[eq+1:]

	var color string
	if valuePart, c, found := strings.Cut(rest, ":"); found {
		rest, color = valuePart, strings.TrimSpace(c)
		if _, err := layout.ParseColor(color); err != nil {
			return layout.Category{}, fmt.Errorf("category %q: %w", s, err)
		}
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return layout.Category{}, fmt.Errorf("category %q: invalid value %q", s, rest)
	}
	return layout.Category{Label: label, Value: value, Color: color}, nil
}
