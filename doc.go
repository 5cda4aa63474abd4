// Package fontatlas provides a glyph-atlas caching text renderer for Go.
//
// # Overview
//
// fontatlas packs variably-sized glyph bitmaps into a single fixed-size
// atlas surface, deduplicated by key, so a glyph at a given size and
// color is rasterized and uploaded exactly once. It is designed for the
// GoGPU ecosystem but has no backend requirements: the atlas surface
// and destination canvas are small interfaces with CPU (Pixmap) and
// SDL2 (integration/sdlcanvas) implementations included.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fontatlas"
//	    "github.com/gogpu/fontatlas/glyph"
//	    "github.com/gogpu/fontatlas/layout"
//	)
//
//	source := glyph.NewSource()
//	face, _ := source.AddFontFace(ttfData, 32)
//
//	l := layout.New()
//	l.Append(face, "Hello, World!", color.RGBA{R: 255, G: 255, A: 255})
//
//	dst := fontatlas.NewPixmap(800, 600)
//	renderer, _ := fontatlas.NewRenderer(fontatlas.PixmapCreator{})
//	renderer.Render(fontatlas.NewPixmapCanvas(dst), source, l.Glyphs(), 20, 40)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Allocator, Renderer, Rect, GlyphKey, TileRequest
//   - glyph: font parsing and coverage rasterization (x/image sfnt)
//   - layout: HarfBuzz shaping into positioned tile requests
//   - integration/sdlcanvas: SDL2 texture and renderer adapters
//
// # Capacity Model
//
// The atlas never grows and never evicts. Space is consumed
// monotonically for the life of a Renderer; when a tile no longer
// fits, it is drawn as a colored outline fallback and reported in
// RenderStats rather than failing the batch. Create a Renderer per
// font set and size it generously (the default is 1024x1024).
//
// # Concurrency
//
// Allocator and Renderer are single-owner, single-goroutine
// structures. Only SetLogger and Logger are safe for concurrent use.
package fontatlas

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
