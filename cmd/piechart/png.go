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
	"path/filepath"

	"github.com/spf13/cobra"

	"seehuhn.de/go/piechart"
)

func (a *app) newPNGCmd() *cobra.Command {
	var cf chartFlags
	var out string
	var white bool

	cmd := &cobra.Command{
		Use:   "png [chart.toml]",
		Short: "Export a chart as a PNG image",
		Long: `Export a chart as a PNG image at twice the chart resolution.

The image is stored as chart-transparent.png, or as
chart-white-background.png if --white-background is given.
With "--out -" the image is written to standard output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := a.scene(cmd, args, &cf)
			if err != nil {
				return err
			}

			var d piechart.Downloader
			if out == "-" {
				if a.isTerminal() {
					return errors.New("refusing to write PNG data to a terminal")
				}
				d = piechart.WriterDownloader{W: a.stdout}
			} else {
				d = piechart.DirDownloader{Dir: out}
			}

			e := &piechart.Exporter{
				Downloader: d,
				Fonts:      a.fonts,
				Logger:     a.log,
			}
			opts := piechart.ExportOptions{WhiteBackground: white}
			name, err := e.Export(cmd.Context(), scene, opts)
			if err != nil {
				return err
			}

			if out != "-" {
				path := filepath.Join(out, name)
				a.log.Info("chart exported", "file", path)
				fmt.Fprintln(a.stdout, path)
			}
			return nil
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", a.cfg.OutputDir, `output directory, or "-" for standard output`)
	cmd.Flags().BoolVar(&white, "white-background", false, "fill the background with white instead of leaving it transparent")
	return cmd
}
