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

// Package fonts provides font faces for drawing chart texts and a text
// measurer for the layout engine.
//
// The Go fonts are always available.  Additional TrueType and OpenType
// files are found by scanning the directories given to [NewCache].
package fonts

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/piechart/layout"
)

// DefaultFamily is the name under which the embedded Go fonts are
// registered.
const DefaultFamily = "go"

// variant is the typeface chosen for a CSS font weight.
type variant int

const (
	regular variant = iota
	medium
	bold
)

func weightVariant(weight int) variant {
	switch {
	case weight >= 700:
		return bold
	case weight >= 500:
		return medium
	default:
		return regular
	}
}

// suffixes lists the name suffixes tried when looking up a variant of a
// font family, in order of preference.
var suffixes = map[variant][]string{
	regular: {"", " regular", "-regular"},
	medium:  {" medium", "-medium", " semibold", "-semibold", ""},
	bold:    {" bold", "-bold", "bd", "b", ""},
}

type faceKey struct {
	family string
	size   float64
	v      variant
}

// Cache loads fonts and caches the faces made from them.
// A Cache is safe for concurrent use.
type Cache struct {
	mu       sync.RWMutex
	dirs     []string
	fonts    map[string]*opentype.Font // lower case name -> parsed font
	faces    map[faceKey]font.Face     // for drawing, hinted
	measures map[faceKey]font.Face     // for measuring, unhinted
	family   string
	scanned  bool

	// glyphMu guards all glyph access.  The faces of a Cache share the
	// parsed fonts, which keep scratch buffers.
	glyphMu sync.Mutex
}

// NewCache returns a font cache which, in addition to the Go fonts, uses
// the font files found in the given directories.  The directories are
// scanned the first time a font is needed.
func NewCache(dirs ...string) *Cache {
	return &Cache{
		dirs:     dirs,
		fonts:    make(map[string]*opentype.Font),
		faces:    make(map[faceKey]font.Face),
		measures: make(map[faceKey]font.Face),
		family:   DefaultFamily,
	}
}

// SetFamily selects the font family used for all texts.  An error is
// returned, and the family is left unchanged, if no font of this family
// is known.
func (c *Cache) SetFamily(name string) error {
	c.ensureScanned()
	lower := strings.ToLower(strings.TrimSpace(name))

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lookup(lower, regular) == nil {
		return fmt.Errorf("fonts: unknown font family %q", name)
	}
	c.family = lower
	return nil
}

// Family returns the name of the selected font family.
func (c *Cache) Family() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.family
}

// Metrics returns the metrics of the hinted face used for drawing text
// in the given font.
func (c *Cache) Metrics(f layout.Font) font.Metrics {
	face := c.face(f, c.faces, font.HintingFull)
	c.glyphMu.Lock()
	defer c.glyphMu.Unlock()
	return face.Metrics()
}

// Advance returns the advance width of text, as drawn by [Cache.DrawString].
func (c *Cache) Advance(text string, f layout.Font) fixed.Int26_6 {
	if text == "" {
		return 0
	}
	face := c.face(f, c.faces, font.HintingFull)
	c.glyphMu.Lock()
	defer c.glyphMu.Unlock()
	return font.MeasureString(face, text)
}

// DrawString draws text onto dst, using src as the colour source.
// The baseline of the text starts at dot.
func (c *Cache) DrawString(dst draw.Image, src image.Image, f layout.Font, dot fixed.Point26_6, text string) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: c.face(f, c.faces, font.HintingFull),
		Dot:  dot,
	}
	c.glyphMu.Lock()
	defer c.glyphMu.Unlock()
	d.DrawString(text)
}

// MeasureText returns the advance width of text in the given font.
// Unhinted glyph metrics are used, so that the result scales with the
// font size.
func (c *Cache) MeasureText(text string, f layout.Font) float64 {
	if text == "" {
		return 0
	}
	face := c.face(f, c.measures, font.HintingNone)
	c.glyphMu.Lock()
	defer c.glyphMu.Unlock()
	return float64(font.MeasureString(face, text)) / 64
}

var _ layout.TextMeasurer = (*Cache)(nil)

func (c *Cache) face(f layout.Font, cache map[faceKey]font.Face, hinting font.Hinting) font.Face {
	c.ensureScanned()

	c.mu.RLock()
	key := faceKey{family: c.family, size: f.Size, v: weightVariant(f.Weight)}
	face, ok := cache[key]
	c.mu.RUnlock()
	if ok {
		return face
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if face, ok := cache[key]; ok {
		return face
	}
	otf := c.lookup(key.family, key.v)
	if otf == nil {
		otf = c.lookup(DefaultFamily, key.v)
	}
	if otf == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: hinting,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	cache[key] = face
	return face
}

// lookup finds a variant of a font family.  The caller must hold c.mu.
func (c *Cache) lookup(family string, v variant) *opentype.Font {
	for _, suffix := range suffixes[v] {
		if f, ok := c.fonts[family+suffix]; ok {
			return f
		}
	}
	return nil
}

// LoadFont parses a font file and registers it under the given name.
func (c *Cache) LoadFont(name, path string) error {
	data, err := readFontFile(path)
	if err != nil {
		return err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("fonts: %s: %w", path, err)
	}

	c.ensureScanned()
	c.mu.Lock()
	c.fonts[strings.ToLower(name)] = f
	c.mu.Unlock()
	return nil
}

func (c *Cache) ensureScanned() {
	c.mu.RLock()
	scanned := c.scanned
	c.mu.RUnlock()
	if scanned {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scanned {
		return
	}
	c.scanned = true

	for name, data := range map[string][]byte{
		DefaultFamily:             goregular.TTF,
		DefaultFamily + " medium": gomedium.TTF,
		DefaultFamily + " bold":   gobold.TTF,
	} {
		if f, err := opentype.Parse(data); err == nil {
			c.fonts[name] = f
		}
	}
	for _, dir := range c.dirs {
		c.scanDir(dir, 0)
	}
}

const (
	maxScanDepth = 3
	maxFontSize  = 20 << 20
)

// scanDir registers all font files below dir.  Files which cannot be
// parsed are skipped.  The caller must hold c.mu.
func (c *Cache) scanDir(dir string, depth int) {
	if depth > maxScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			c.scanDir(filepath.Join(dir, name), depth+1)
			continue
		}
		lower := strings.ToLower(name)
		ext := filepath.Ext(lower)
		if ext != ".ttf" && ext != ".otf" {
			continue
		}
		data, err := readFontFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		c.register(strings.TrimSuffix(lower, ext), f)
	}
}

// register adds a scanned font under its file name and under the names
// from its name table.  Names which are already taken are not replaced.
func (c *Cache) register(base string, f *opentype.Font) {
	names := []string{base}
	if full, err := f.Name(nil, sfnt.NameIDFull); err == nil {
		names = append(names, strings.ToLower(full))
	}
	if family, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		sub, _ := f.Name(nil, sfnt.NameIDSubfamily)
		sub = strings.ToLower(sub)
		family = strings.ToLower(family)
		if sub == "" || sub == "regular" {
			names = append(names, family)
		} else {
			names = append(names, family+" "+sub)
		}
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, taken := c.fonts[name]; !taken {
			c.fonts[name] = f
		}
	}
}

func readFontFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxFontSize {
		return nil, fmt.Errorf("fonts: %s: file too large (%d bytes)", path, info.Size())
	}
	return os.ReadFile(path)
}
