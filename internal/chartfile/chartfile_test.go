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

package chartfile

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"seehuhn.de/go/piechart/layout"
)

const sampleFile = `
title = "Manufacturing Cost Breakdown"
stroke_color = "#ffffff"
stroke_width = 5
explosion = 22

[[category]]
label = "Material"
value = 58
color = "#8f8cc4"

[[category]]
label = "Labor"
value = 23
color = "#a63a7a"

[[category]]
label = "Scrap"
value = 9
color = "#efe8b7"

[[category]]
label = "Rework Labor"
value = 5
color = "#c9e6ec"

[[category]]
label = "Equipment"
value = 5
color = "#5f1f59"
`

func TestDecodeSample(t *testing.T) {
	c, err := Decode(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c, Sample()) {
		t.Errorf("got %+v, want %+v", c, Sample())
	}
}

func TestDecodeDefaults(t *testing.T) {
	in := `
[[category]]
label = "A"
value = 1

[[category]]
label = "B"
value = 2.5
`
	c, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := layout.DefaultStyle()
	if c.Style != want {
		t.Errorf("style %+v, want %+v", c.Style, want)
	}
	if len(c.Categories) != 2 {
		t.Fatalf("%d categories", len(c.Categories))
	}
	for i, cat := range c.Categories {
		if cat.ID != i+1 {
			t.Errorf("category %d has ID %d", i, cat.ID)
		}
		if cat.Color != layout.PaletteColor(i) {
			t.Errorf("category %d has colour %q", i, cat.Color)
		}
	}
	if c.Categories[1].Value != 2.5 {
		t.Errorf("value %g", c.Categories[1].Value)
	}
}

func TestDecodeZeroOverrides(t *testing.T) {
	in := "stroke_width = 0\nexplosion = 0\n"
	c, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if c.Style.StrokeWidth != 0 || c.Style.ExplosionDistance != 0 {
		t.Errorf("style %+v", c.Style)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"unknown top-level key": "titel = \"x\"\n",
		"unknown category key":  "[[category]]\nlabel = \"A\"\nvalu = 3\n",
		"bad colour":            "[[category]]\nlabel = \"A\"\nvalue = 3\ncolor = \"red\"\n",
		"bad stroke colour":     "stroke_color = \"#12\"\n",
		"wrong type":            "[[category]]\nlabel = \"A\"\nvalue = \"three\"\n",
		"syntax":                "title = \n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(in)); err == nil {
				t.Error("missing error")
			}
		})
	}
}

func TestWriteTemplate(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteTemplate(buf); err != nil {
		t.Fatal(err)
	}
	c, err := Decode(buf)
	if err != nil {
		t.Fatalf("%v\n%s", err, buf)
	}
	if !reflect.DeepEqual(c, Sample()) {
		t.Errorf("got %+v", c)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(sampleFile), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Style.Title != "Manufacturing Cost Breakdown" {
		t.Errorf("title %q", c.Style.Title)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !os.IsNotExist(err) {
		t.Errorf("got %v, want a not-exist error", err)
	}
}
