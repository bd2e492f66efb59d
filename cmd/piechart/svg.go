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
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/piechart/svgexport"
)

func (a *app) newSVGCmd() *cobra.Command {
	var cf chartFlags
	var out string

	cmd := &cobra.Command{
		Use:   "svg [chart.toml]",
		Short: "Write a chart as an SVG document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := a.scene(cmd, args, &cf)
			if err != nil {
				return err
			}
			if out == "-" {
				return svgexport.Write(a.stdout, scene)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := svgexport.Write(f, scene); err != nil {
				f.Close()
				os.Remove(out)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.log.Info("chart written", "file", out)
			return nil
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "-", `output file, or "-" for standard output`)
	return cmd
}
