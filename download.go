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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// A Downloader delivers an exported file to the user.
type Downloader interface {
	Download(ctx context.Context, name string, r io.Reader) error
}

// A Sizer can be implemented by a Downloader to supply the image size
// used when a scene carries no size information.
type Sizer interface {
	PreferredSize() (width, height int)
}

// DirDownloader stores files in a directory.  Files appear atomically:
// data is first written to a temporary file, which is renamed once
// complete and removed if anything fails.
type DirDownloader struct {
	Dir string
}

// Download implements the [Downloader] interface.
func (d DirDownloader) Download(ctx context.Context, name string, r io.Reader) (err error) {
	if name == "" || filepath.Base(name) != name {
		return fmt.Errorf("invalid file name %q", name)
	}
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = io.Copy(tmp, r); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, name))
}

// Path returns the location where a file with the given name is stored.
func (d DirDownloader) Path(name string) string {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}

// WriterDownloader copies every file to W, ignoring the name.
type WriterDownloader struct {
	W io.Writer
}

// Download implements the [Downloader] interface.
func (d WriterDownloader) Download(ctx context.Context, _ string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.Copy(d.W, r)
	return err
}
