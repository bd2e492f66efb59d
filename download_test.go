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

package piechart

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirDownloader(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	d := DirDownloader{Dir: dir}
	err := d.Download(context.Background(), "a.png", strings.NewReader("hello"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(d.Path("a.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("got %q", data)
	}
	assertFiles(t, dir, "a.png")
}

func TestDirDownloaderReplaces(t *testing.T) {
	dir := t.TempDir()
	d := DirDownloader{Dir: dir}
	for _, content := range []string{"first", "second"} {
		if err := d.Download(context.Background(), "x.png", strings.NewReader(content)); err != nil {
			t.Fatal(err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "x.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("got %q", data)
	}
}

type failingReader struct{}

var errRead = errors.New("read failed")

func (failingReader) Read([]byte) (int, error) {
	return 0, errRead
}

func TestDirDownloaderCleanup(t *testing.T) {
	dir := t.TempDir()
	d := DirDownloader{Dir: dir}
	r := io.MultiReader(strings.NewReader("partial"), failingReader{})
	err := d.Download(context.Background(), "a.png", r)
	if !errors.Is(err, errRead) {
		t.Fatalf("got %v, want errRead", err)
	}
	assertFiles(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = d.Download(ctx, "b.png", strings.NewReader("data"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	assertFiles(t, dir)
}

func TestDirDownloaderBadName(t *testing.T) {
	dir := t.TempDir()
	d := DirDownloader{Dir: dir}
	for _, name := range []string{"", "../a.png", "sub/a.png"} {
		if err := d.Download(context.Background(), name, strings.NewReader("x")); err == nil {
			t.Errorf("%q: missing error", name)
		}
	}
	assertFiles(t, dir)
}

func TestWriterDownloader(t *testing.T) {
	buf := &bytes.Buffer{}
	d := WriterDownloader{W: buf}
	if err := d.Download(context.Background(), "ignored", strings.NewReader("abc")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "abc" {
		t.Errorf("got %q", buf.String())
	}
}

func TestExportToDirectory(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(DirDownloader{Dir: dir})
	name, err := e.Export(context.Background(), sampleScene(t), ExportOptions{WhiteBackground: true})
	if err != nil {
		t.Fatal(err)
	}
	assertFiles(t, dir, name)
}

// assertFiles checks that dir contains exactly the given files.
func assertFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if strings.Join(got, ",") != strings.Join(names, ",") {
		t.Errorf("directory contains %q, want %q", got, names)
	}
}
