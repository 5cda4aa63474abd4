package fontatlas

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// GlyphID is a glyph index within a font, as assigned by the font file.
type GlyphID uint16

// Hinting selects the grid-fitting mode used during rasterization.
// It is part of the cache key because it changes the produced pixels.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota

	// HintingVertical aligns glyphs to the pixel grid vertically only.
	HintingVertical

	// HintingFull aligns glyphs to the pixel grid in both axes.
	HintingFull
)

// RasterConfig identifies one rasterization of a glyph: the font, the
// glyph index, the pixel size and the hinting mode. A TileSource must
// rasterize equal configs to identical coverage bitmaps.
type RasterConfig struct {
	// FontID uniquely identifies the font within a TileSource.
	FontID uint64

	// GID is the glyph index within the font.
	GID GlyphID

	// PPEM is the pixels-per-em size in 26.6 fixed point.
	PPEM fixed.Int26_6

	// Hinting is the grid-fitting mode.
	Hinting Hinting
}

// GlyphKey identifies one cacheable atlas tile: a rasterization config
// combined with the color baked into the cached pixels. Two requests
// with equal keys resolve to the same atlas placement without
// re-rasterization; the same glyph in two colors occupies two tiles.
//
// Reusing equal keys across different fonts or tile sources silently
// corrupts rendering. FontID must be unique per font within the source
// a renderer is used with; this is a documented contract, not a
// runtime-checked error.
type GlyphKey struct {
	Config RasterConfig
	Color  color.RGBA
}

// Coverage is a rasterized glyph: Width*Height coverage bytes, one per
// pixel, row-major. A renderer consumes it exactly once when
// populating a freshly reserved atlas tile.
type Coverage struct {
	Width  int
	Height int
	Pix    []uint8
}
