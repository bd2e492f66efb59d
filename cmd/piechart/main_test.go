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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/piechart/internal/chartfile"
	"seehuhn.de/go/piechart/internal/config"
	"seehuhn.de/go/piechart/layout"
)

// run executes the command line and returns standard output.
func run(t *testing.T, terminal bool, args ...string) (string, error) {
	t.Helper()
	cfg := &config.Config{
		OutputDir:  t.TempDir(),
		FontFamily: "go",
		LogLevel:   "warn",
	}
	stdout := &bytes.Buffer{}
	a := newApp(cfg, stdout, &bytes.Buffer{})
	a.isTerminal = func() bool { return terminal }
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want layout.Category
		ok   bool
	}{
		{"Material=58", layout.Category{Label: "Material", Value: 58}, true},
		{"Rework Labor=5.5:#c9e6ec", layout.Category{Label: "Rework Labor", Value: 5.5, Color: "#c9e6ec"}, true},
		{"a=b=3", layout.Category{Label: "a=b", Value: 3}, true},
		{"=1:#fff", layout.Category{Value: 1, Color: "#fff"}, true},
		{"Material", layout.Category{}, false},
		{"Material=lots", layout.Category{}, false},
		{"Material=3:red", layout.Category{}, false},
	}
	for _, c := range cases {
		got, err := parseCategory(c.in)
		if (err == nil) != c.ok {
			t.Errorf("%q: unexpected error state %v", c.in, err)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("%q: got %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestLayoutCommand(t *testing.T) {
	out, err := run(t, false, "layout")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Manufacturing Cost Breakdown", "input total 100%", "Material", "58%", "Equipment", "5%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestCategoryFlags(t *testing.T) {
	out, err := run(t, false, "layout", "--title", "Custom",
		"-c", "Left=1", "-c", "Right=1:#123456")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "# Custom") || !strings.Contains(out, "50%") ||
		!strings.Contains(out, "input total 2%") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Material") {
		t.Error("sample data was used")
	}
}

func TestNoData(t *testing.T) {
	_, err := run(t, false, "layout", "-c", "A=0", "-c", "B=-1")
	if !errors.Is(err, errNoData) {
		t.Errorf("got %v, want errNoData", err)
	}
}

func TestPNGCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, false, "png", "--out", dir, "--white-background")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "chart-white-background.png")
	if strings.TrimSpace(out) != path {
		t.Errorf("printed %q, want %q", out, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("not a PNG file")
	}
}

func TestPNGStdout(t *testing.T) {
	out, err := run(t, false, "png", "--out", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "\x89PNG\r\n\x1a\n") {
		t.Error("standard output is not a PNG file")
	}

	_, err = run(t, true, "png", "--out", "-")
	if err == nil {
		t.Error("PNG data was written to a terminal")
	}
}

func TestSVGCommand(t *testing.T) {
	out, err := run(t, false, "svg", "--stroke-width", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "stroke-width:2") {
		t.Errorf("unexpected output:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "chart.svg")
	if _, err := run(t, false, "svg", "-o", path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	if _, err := run(t, false, "init", path); err != nil {
		t.Fatal(err)
	}
	c, err := chartfile.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Categories) != 5 {
		t.Errorf("%d categories", len(c.Categories))
	}

	if _, err := run(t, false, "init", path); err == nil {
		t.Error("existing file was overwritten")
	}

	// the file can be used as input, with flags taking precedence
	out, err := run(t, false, "layout", path, "--title", "From File")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "# From File") || !strings.Contains(out, "Rework Labor") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestBadFlags(t *testing.T) {
	cases := [][]string{
		{"layout", "--log-level", "loud"},
		{"layout", "--font-family", "No Such Font"},
		{"layout", "--stroke-color", "white"},
		{"layout", "missing.toml"},
		{"layout", "a.toml", "b.toml"},
	}
	for _, args := range cases {
		if _, err := run(t, false, args...); err == nil {
			t.Errorf("%q: missing error", args)
		}
	}
}
