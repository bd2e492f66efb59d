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

// Command export renders all sample charts into testdata/gallery, as SVG
// and PNG files, together with a JSON summary of their layout.
// Run from the module root directory.
package main

import (
	"context"
	"encoding/json"
	"io"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/piechart"
	"seehuhn.de/go/piechart/fonts"
	"seehuhn.de/go/piechart/layout"
	"seehuhn.de/go/piechart/svgexport"
	"seehuhn.de/go/piechart/testcases"
)

const galleryDir = "testdata/gallery"

func main() {
	if err := os.MkdirAll(galleryDir, 0755); err != nil {
		panic(err)
	}

	ft := fonts.NewCache()
	var out struct {
		Charts []jsonChart `json:"charts"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, c := range testcases.All[category] {
			name := testcases.FullName(category, c)
			scene, err := c.Scene(ft)
			if err != nil {
				panic(err)
			}
			if err := writeSVG(name, scene); err != nil {
				panic(err)
			}
			e := &piechart.Exporter{
				Downloader: prefixDownloader{prefix: name},
				Fonts:      ft,
			}
			_, err = e.Export(context.Background(), scene, piechart.ExportOptions{WhiteBackground: true})
			if err != nil {
				panic(err)
			}
			out.Charts = append(out.Charts, toJSON(name, scene))
		}
	}

	f, err := os.Create(filepath.Join(galleryDir, "charts.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func writeSVG(name string, scene *layout.Scene) error {
	f, err := os.Create(filepath.Join(galleryDir, name+".svg"))
	if err != nil {
		return err
	}
	if err := svgexport.Write(f, scene); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// prefixDownloader stores files in the gallery directory, with the chart
// name prepended to the file name.
type prefixDownloader struct {
	prefix string
}

func (p prefixDownloader) Download(ctx context.Context, name string, r io.Reader) error {
	d := piechart.DirDownloader{Dir: galleryDir}
	return d.Download(ctx, p.prefix+"-"+name, r)
}

type jsonChart struct {
	Name   string      `json:"name"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Title  []string    `json:"title"`
	Slices []jsonSlice `json:"slices"`
}

type jsonSlice struct {
	ID      int        `json:"id"`
	Label   string     `json:"label"`
	Percent string     `json:"percent"`
	Start   float64    `json:"start_deg"`
	End     float64    `json:"end_deg"`
	Explode float64    `json:"explode"`
	Side    string     `json:"side"`
	LabelAt [2]float64 `json:"label_at"`
}

func toJSON(name string, s *layout.Scene) jsonChart {
	jc := jsonChart{
		Name:   name,
		Width:  s.Width,
		Height: s.Height,
		Title:  s.Title.Lines,
	}
	for _, sl := range s.Slices {
		jc.Slices = append(jc.Slices, jsonSlice{
			ID:      sl.Source.ID,
			Label:   sl.Source.Label,
			Percent: sl.Label.Text,
			Start:   round(sl.StartAngle * 180 / math.Pi),
			End:     round(sl.EndAngle * 180 / math.Pi),
			Explode: round(sl.Explode),
			Side:    sl.Label.Side.String(),
			LabelAt: [2]float64{round(sl.Label.Pos.X), round(sl.Label.Pos.Y)},
		})
	}
	return jc
}

func round(x float64) float64 {
	return math.Round(x*100) / 100
}
