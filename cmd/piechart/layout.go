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
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seehuhn.de/go/piechart/layout"
)

func (a *app) newLayoutCmd() *cobra.Command {
	var cf chartFlags

	cmd := &cobra.Command{
		Use:   "layout [chart.toml]",
		Short: "Print the computed layout of a chart",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := a.scene(cmd, args, &cf)
			if err != nil {
				return err
			}

			for _, line := range scene.Title.Lines {
				fmt.Fprintf(a.stdout, "# %s\n", line)
			}
			fmt.Fprintf(a.stdout, "canvas %gx%g\n", scene.Width, scene.Height)
			fmt.Fprintf(a.stdout, "input total %s\n\n", layout.FormatPercent(scene.Total))

			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLABEL\tFRACTION\tSTART\tEND\tEXPLODE\tPERCENT\tSIDE\tLABEL X\tLABEL Y")
			for _, sl := range scene.Slices {
				fmt.Fprintf(w, "%d\t%s\t%.4f\t%.1f\t%.1f\t%.1f\t%s\t%s\t%.1f\t%.1f\n",
					sl.Source.ID, sl.Source.Label, sl.Fraction,
					degrees(sl.StartAngle), degrees(sl.EndAngle), sl.Explode,
					sl.Label.Text, sl.Label.Side,
					sl.Label.Pos.X, sl.Label.Pos.Y)
			}
			return w.Flush()
		},
	}
	cf.register(cmd)
	return cmd
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
