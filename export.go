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
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/image/draw"

	"seehuhn.de/go/piechart/fonts"
	"seehuhn.de/go/piechart/layout"
)

// Errors returned by [Exporter.Export].
var (
	ErrNoScene = errors.New("piechart: chart not available")
	ErrSurface = errors.New("piechart: cannot create image")
	ErrRender  = errors.New("piechart: rendering failed")
	ErrEncode  = errors.New("piechart: PNG encoding failed")
	ErrBusy    = errors.New("piechart: export already in progress")
)

// Default export parameters.
const (
	DefaultScale            = 2
	DefaultWidth            = 560
	DefaultHeight           = 420
	DefaultMaxSurfacePixels = 1 << 26
)

// File names used for the exported images.
const (
	TransparentName = "chart-transparent.png"
	WhiteName       = "chart-white-background.png"
)

// ExportOptions select the variant of the exported image.
type ExportOptions struct {
	// WhiteBackground fills the image with opaque white before drawing.
	// Otherwise the background is transparent.
	WhiteBackground bool
}

// FileName returns the name under which an image exported with opts is
// delivered.
func FileName(opts ExportOptions) string {
	if opts.WhiteBackground {
		return WhiteName
	}
	return TransparentName
}

// Result is the outcome of an export started by [Exporter.Start].
type Result struct {
	Name string
	Err  error
}

// An Exporter rasterizes scenes and delivers them as PNG files.
// Only one export runs at a time; while it runs, further requests fail
// with ErrBusy.
type Exporter struct {
	// Downloader receives the encoded images.
	Downloader Downloader

	// Fonts is used for the chart texts.  If nil, a cache with the
	// built-in fonts is used.
	Fonts *fonts.Cache

	// Logger receives debug messages about the export steps.
	// If nil, nothing is logged.
	Logger *slog.Logger

	// Scale is the ratio between image pixels and scene units.
	// If zero, DefaultScale is used.
	Scale float64

	// MaxSurfacePixels limits the size of the image.
	// If zero, DefaultMaxSurfacePixels is used.
	MaxSurfacePixels int

	busy atomic.Bool
}

// NewExporter returns an Exporter which delivers images to d.
func NewExporter(d Downloader) *Exporter {
	return &Exporter{Downloader: d}
}

var defaultFonts = sync.OnceValue(func() *fonts.Cache {
	return fonts.NewCache()
})

// Export renders the scene to a PNG image and hands it to the Downloader.
// On success, the name of the delivered file is returned.
//
// The scene is copied before use and is never modified.  If ctx is
// cancelled while the export runs, the export stops at the next
// checkpoint and ctx.Err() is returned.
func (e *Exporter) Export(ctx context.Context, scene *layout.Scene, opts ExportOptions) (string, error) {
	if scene == nil {
		return "", ErrNoScene
	}
	if !e.busy.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer e.busy.Store(false)
	return e.export(ctx, scene, opts)
}

// Start runs the export in a new goroutine.  The returned channel
// delivers exactly one Result.  ErrNoScene and ErrBusy are reported
// without starting a goroutine.
func (e *Exporter) Start(ctx context.Context, scene *layout.Scene, opts ExportOptions) <-chan Result {
	res := make(chan Result, 1)
	if scene == nil {
		res <- Result{Err: ErrNoScene}
		return res
	}
	if !e.busy.CompareAndSwap(false, true) {
		res <- Result{Err: ErrBusy}
		return res
	}
	s := scene.Clone()
	go func() {
		name, err := e.export(ctx, s, opts)
		e.busy.Store(false)
		res <- Result{Name: name, Err: err}
	}()
	return res
}

// Busy reports whether an export is in progress.
func (e *Exporter) Busy() bool {
	return e.busy.Load()
}

func (e *Exporter) export(ctx context.Context, scene *layout.Scene, opts ExportOptions) (string, error) {
	log := e.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if e.Downloader == nil {
		return "", errors.New("piechart: no downloader")
	}

	s := scene.Clone()
	name := FileName(opts)
	w, h := e.dimensions(s)
	scale := e.Scale
	if !(scale > 0) {
		scale = DefaultScale
	}
	log.Debug("export started", "name", name, "width", w, "height", h, "scale", scale)

	img, err := e.newSurface(w*scale, h*scale)
	if err != nil {
		return "", err
	}
	if opts.WhiteBackground {
		draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	}

	ft := e.Fonts
	if ft == nil {
		ft = defaultFonts()
	}
	if err := paintScene(img, s, ft); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}
	log.Debug("image loaded", "bounds", img.Bounds().Size())
	if err := ctx.Err(); err != nil {
		return "", err
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if buf.Len() == 0 {
		return "", ErrEncode
	}
	log.Debug("encoding complete", "bytes", buf.Len())
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := e.Downloader.Download(ctx, name, bytes.NewReader(buf.Bytes())); err != nil {
		return "", fmt.Errorf("piechart: delivering %s: %w", name, err)
	}
	log.Debug("export finished", "name", name)
	return name, nil
}

// dimensions returns the size of the scene in scene units.  The view box
// is used if it is not empty; otherwise the scene size, the size preferred
// by the Downloader, and finally the default size are tried in turn.
func (e *Exporter) dimensions(s *layout.Scene) (float64, float64) {
	vb := s.ViewBox
	if w, h := vb.URx-vb.LLx, vb.URy-vb.LLy; w > 0 && h > 0 {
		return w, h
	}
	s.ViewBox.LLx, s.ViewBox.LLy = 0, 0
	var w, h float64
	switch {
	case s.Width > 0 && s.Height > 0:
		w, h = s.Width, s.Height
	default:
		w, h = DefaultWidth, DefaultHeight
		if sz, ok := e.Downloader.(Sizer); ok {
			if pw, ph := sz.PreferredSize(); pw > 0 && ph > 0 {
				w, h = float64(pw), float64(ph)
			}
		}
	}
	s.ViewBox.URx, s.ViewBox.URy = w, h
	return w, h
}

// newSurface allocates the image to draw on.  Dimensions are rounded to
// whole pixels, with a minimum of one pixel.
func (e *Exporter) newSurface(w, h float64) (*image.RGBA, error) {
	limit := e.MaxSurfacePixels
	if limit <= 0 {
		limit = DefaultMaxSurfacePixels
	}
	if math.IsNaN(w) || math.IsNaN(h) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("%w: %gx%g pixels", ErrSurface, w, h)
	}
	pw := max(1, math.Round(w))
	ph := max(1, math.Round(h))
	if pw*ph > float64(limit) {
		return nil, fmt.Errorf("%w: %gx%g pixels", ErrSurface, pw, ph)
	}
	return image.NewRGBA(image.Rect(0, 0, int(pw), int(ph))), nil
}
