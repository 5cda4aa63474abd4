package fontatlas

import (
	"fmt"
	"image/color"
)

// DefaultAtlasSize is the default extent, in pixels per side, of the
// atlas surface created by NewRenderer.
const DefaultAtlasSize = 1024

// TileRequest is one positioned glyph in a render batch. The layout
// package produces these from styled text; they can also be built by
// hand for custom layout.
type TileRequest struct {
	// Key identifies the cached tile.
	Key GlyphKey

	// X, Y position the tile's top-left corner on the canvas, relative
	// to the offset passed to Render.
	X, Y int

	// Width, Height are the tile extent in pixels. They must match the
	// extent the tile source rasterizes Key.Config to.
	Width, Height int
}

// RenderStats reports the per-tile outcomes of one Render call, so
// callers can inspect how many tiles were cached, uploaded or lost
// without treating any of those as batch failures.
type RenderStats struct {
	// Glyphs is the number of non-empty requests processed.
	Glyphs int

	// Cached is the number of requests served from existing atlas tiles.
	Cached int

	// Uploaded is the number of freshly rasterized and uploaded tiles.
	Uploaded int

	// OutOfSpace is the number of requests the atlas had no room for.
	// These are drawn as outline fallbacks in the request color.
	OutOfSpace int

	// Dropped is the number of tiles skipped because of rasterization,
	// upload or copy failures.
	Dropped int
}

// RendererOption configures a Renderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	atlasWidth  int
	atlasHeight int
}

// WithAtlasSize overrides the default atlas surface extent.
// Non-positive dimensions are ignored.
func WithAtlasSize(width, height int) RendererOption {
	return func(cfg *rendererConfig) {
		if width > 0 && height > 0 {
			cfg.atlasWidth = width
			cfg.atlasHeight = height
		}
	}
}

// Renderer draws batches of positioned glyph tiles onto a canvas,
// caching rasterized tiles in a fixed-size atlas surface so a tile is
// never rasterized or uploaded twice. The atlas never shrinks or
// grows: tiles that do not fit are drawn as outline fallbacks and
// reported in RenderStats.
//
// A Renderer owns its atlas surface and allocator exclusively. It is
// not safe for concurrent use; call it from one goroutine, typically
// once per frame.
type Renderer struct {
	atlas Surface
	alloc *Allocator[GlyphKey]
}

// NewRenderer creates a renderer with an atlas surface obtained from
// creator. The default atlas extent is DefaultAtlasSize squared;
// use WithAtlasSize to override it.
func NewRenderer(creator SurfaceCreator, opts ...RendererOption) (*Renderer, error) {
	if creator == nil {
		return nil, ErrNilSurfaceCreator
	}

	cfg := rendererConfig{
		atlasWidth:  DefaultAtlasSize,
		atlasHeight: DefaultAtlasSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	atlas, err := creator.CreateSurface(cfg.atlasWidth, cfg.atlasHeight)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: create atlas surface: %w", err)
	}

	return &Renderer{
		atlas: atlas,
		alloc: NewAllocator[GlyphKey](cfg.atlasWidth, cfg.atlasHeight),
	}, nil
}

// Atlas returns the atlas surface. Useful for debugging cache behavior
// by drawing the whole atlas, as the testbed example does.
func (r *Renderer) Atlas() Surface { return r.atlas }

// Allocator exposes the renderer's allocator for inspection of cache
// occupancy. Callers must not Reserve through it.
func (r *Renderer) Allocator() *Allocator[GlyphKey] { return r.alloc }

// Render processes requests in order: zero-area requests are skipped,
// cached tiles are reused, new tiles are rasterized via source and
// uploaded into the atlas, and tiles that no longer fit are recorded
// for fallback drawing. After the batch, every placed tile is copied
// onto the canvas at its destination (offset by offsetX, offsetY) and
// every unplaced tile is drawn as a one-pixel outline in its request
// color, with the canvas draw color restored afterwards.
//
// Per-tile failures (rasterization, upload, copy) are logged and
// counted in the returned stats but never abort the batch; tiles are
// independent. The only errors returned are nil-argument misuse.
func (r *Renderer) Render(canvas Canvas, source TileSource, requests []TileRequest, offsetX, offsetY int) (RenderStats, error) {
	var stats RenderStats
	if canvas == nil {
		return stats, ErrNilCanvas
	}
	if source == nil {
		return stats, ErrNilTileSource
	}

	type blit struct {
		src Rect
		dst Rect
	}
	type fallback struct {
		dst   Rect
		color color.RGBA
	}

	blits := make([]blit, 0, len(requests))
	var fallbacks []fallback

	for _, req := range requests {
		if req.Width <= 0 || req.Height <= 0 {
			continue
		}
		stats.Glyphs++
		dst := Rect{X: offsetX + req.X, Y: offsetY + req.Y, W: req.Width, H: req.Height}

		res := r.alloc.Reserve(req.Key, req.Width, req.Height)
		switch res.Outcome {
		case AlreadyPlaced:
			stats.Cached++
			blits = append(blits, blit{src: res.Rect, dst: dst})
		case NewlyPlaced:
			if !r.upload(source, req, res.Rect, &stats) {
				continue
			}
			blits = append(blits, blit{src: res.Rect, dst: dst})
		case OutOfSpace:
			Logger().Error("glyph atlas out of space",
				"gid", req.Key.Config.GID,
				"ppem", float64(req.Key.Config.PPEM)/64,
				"font", req.Key.Config.FontID)
			stats.OutOfSpace++
			fallbacks = append(fallbacks, fallback{dst: dst, color: req.Key.Color})
		}
	}

	// Blits do not overlap each other by construction (each has a
	// distinct destination from the caller's layout), so order between
	// them does not matter.
	for _, b := range blits {
		if err := canvas.Copy(r.atlas, b.src, b.dst); err != nil {
			Logger().Warn("atlas copy failed", "err", err)
			stats.Dropped++
		}
	}

	if len(fallbacks) > 0 {
		prev := canvas.DrawColor()
		for _, f := range fallbacks {
			canvas.SetDrawColor(f.color)
			if err := canvas.StrokeRect(f.dst); err != nil {
				Logger().Warn("fallback outline failed", "err", err)
			}
		}
		canvas.SetDrawColor(prev)
	}

	return stats, nil
}

// upload rasterizes a freshly reserved tile and writes it into the
// atlas. Reports whether the tile is drawable; a false return means
// the tile was dropped for this batch.
func (r *Renderer) upload(source TileSource, req TileRequest, dst Rect, stats *RenderStats) bool {
	cov, err := source.Rasterize(req.Key.Config)
	if err != nil {
		Logger().Warn("glyph rasterization failed",
			"err", err, "gid", req.Key.Config.GID)
		stats.Dropped++
		return false
	}
	if cov.Width != req.Width || cov.Height != req.Height {
		Logger().Warn("glyph extent mismatch",
			"gid", req.Key.Config.GID,
			"want", fmt.Sprintf("%dx%d", req.Width, req.Height),
			"got", fmt.Sprintf("%dx%d", cov.Width, cov.Height))
		stats.Dropped++
		return false
	}
	if err := r.atlas.WritePixels(dst, expandCoverage(cov, req.Key.Color), cov.Width*4); err != nil {
		Logger().Warn("atlas upload failed",
			"err", err, "gid", req.Key.Config.GID)
		stats.Dropped++
		return false
	}
	stats.Uploaded++
	return true
}

// expandCoverage converts a single-channel coverage bitmap to RGBA:
// color channels fixed to c, alpha taken from coverage.
func expandCoverage(cov Coverage, c color.RGBA) []uint8 {
	pix := make([]uint8, 0, len(cov.Pix)*4)
	for _, a := range cov.Pix {
		pix = append(pix, c.R, c.G, c.B, a)
	}
	return pix
}
