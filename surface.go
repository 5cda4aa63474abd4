package fontatlas

import "image/color"

// Surface is a fixed-extent, streaming-writable RGBA pixel buffer used
// as the atlas backing store. The package provides Pixmap as the CPU
// implementation; integration/sdlcanvas provides an SDL2 texture
// implementation.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// WritePixels replaces the pixels of region r with RGBA data read
	// from pix using the given row stride in bytes.
	WritePixels(r Rect, pix []uint8, stride int) error
}

// SurfaceCreator creates the atlas surface for a Renderer. It is the
// renderer's only construction-time dependency; surface creation
// failure is the one fatal error in this package.
type SurfaceCreator interface {
	CreateSurface(width, height int) (Surface, error)
}

// Canvas is the destination drawing target a Renderer composites onto.
type Canvas interface {
	// Copy composites the srcRect region of src onto the canvas at
	// dstRect, blending by source alpha.
	Copy(src Surface, srcRect, dstRect Rect) error

	// DrawColor returns the ambient drawing color.
	DrawColor() color.RGBA

	// SetDrawColor sets the ambient drawing color used by StrokeRect.
	SetDrawColor(c color.RGBA)

	// StrokeRect draws an unfilled one-pixel outline of r in the
	// ambient drawing color.
	StrokeRect(r Rect) error
}

// TileSource produces coverage bitmaps for raster configs. It must be
// deterministic: equal configs yield identical bitmaps, which is what
// makes caching by GlyphKey sound. The glyph package provides the
// font-backed implementation.
type TileSource interface {
	Rasterize(cfg RasterConfig) (Coverage, error)
}
