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

// Command piechart draws exploded pie charts as PNG or SVG files.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/piechart/fonts"
	"seehuhn.de/go/piechart/internal/config"
)

// app holds the state shared by all subcommands.
type app struct {
	cfg *config.Config

	logLevel   string
	fontDirs   []string
	fontFamily string

	log   *slog.Logger
	fonts *fonts.Cache

	stdout, stderr io.Writer
	isTerminal     func() bool
}

func newApp(cfg *config.Config, stdout, stderr io.Writer) *app {
	return &app{
		cfg:    cfg,
		stdout: stdout,
		stderr: stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "piechart <command>",
		Short:         "Draw exploded pie charts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := config.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

			a.fonts = fonts.NewCache(a.fontDirs...)
			if err := a.fonts.SetFamily(a.fontFamily); err != nil {
				return err
			}
			a.log.Debug("fonts ready", "family", a.fonts.Family(), "dirs", a.fontDirs)
			return nil
		},
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn or error)")
	pf.StringSliceVar(&a.fontDirs, "font-dir", a.cfg.FontDirs, "directory to search for TrueType and OpenType fonts")
	pf.StringVar(&a.fontFamily, "font-family", a.cfg.FontFamily, "font family used for all chart texts")

	rootCmd.AddCommand(
		a.newPNGCmd(),
		a.newSVGCmd(),
		a.newLayoutCmd(),
		a.newInitCmd(),
	)
	return rootCmd
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newApp(cfg, os.Stdout, os.Stderr).rootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
