package glyph

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontatlas"
)

// GlyphExtent is the coverage bitmap extent and bearing of one glyph
// at a face's size. Width and Height match what Source.Rasterize
// produces for the same config, which keeps tile requests and uploaded
// bitmaps in sync. BearingX and BearingY offset the bitmap's top-left
// corner from the glyph origin on the baseline; BearingY is negative
// for glyphs that extend above the baseline (almost all of them).
type GlyphExtent struct {
	Width  int
	Height int

	BearingX int
	BearingY int
}

// Face binds a font to a pixel size. It is a lightweight view: all
// state lives in the Source, and any number of faces can share one
// font at different sizes.
type Face struct {
	src  *Source
	font *Font
	ppem fixed.Int26_6
}

// NewFace creates a face for f at the given pixel size. Hinting is not
// applied; coverage is rasterized from the unhinted outlines.
func (s *Source) NewFace(f *Font, size float64) *Face {
	return &Face{
		src:  s,
		font: f,
		ppem: fixed.Int26_6(size * 64),
	}
}

// Font returns the face's font.
func (f *Face) Font() *Font { return f.font }

// Source returns the source the face rasterizes through. Pass it as
// the tile source when rendering requests built from this face.
func (f *Face) Source() *Source { return f.src }

// PPEM returns the face's pixel size in 26.6 fixed point.
func (f *Face) PPEM() fixed.Int26_6 { return f.ppem }

// Size returns the face's pixel size.
func (f *Face) Size() float64 { return float64(f.ppem) / 64 }

// Config returns the raster config identifying gid at this face's
// font and size. Combined with a color it forms a complete
// fontatlas.GlyphKey.
func (f *Face) Config(gid fontatlas.GlyphID) fontatlas.RasterConfig {
	return fontatlas.RasterConfig{
		FontID:  f.font.id,
		GID:     gid,
		PPEM:    f.ppem,
		Hinting: fontatlas.HintingNone,
	}
}

// GlyphIndex returns the glyph index for r, or ErrMissingGlyph if the
// font does not cover it.
func (f *Face) GlyphIndex(r rune) (fontatlas.GlyphID, error) {
	idx, err := f.font.font.GlyphIndex(&f.src.buf, r)
	if err != nil {
		return 0, fmt.Errorf("glyph: glyph index for %q: %w", r, err)
	}
	if idx == 0 {
		return 0, fmt.Errorf("%w: %q", ErrMissingGlyph, r)
	}
	return fontatlas.GlyphID(idx), nil
}

// Extent returns the coverage extent and bearing for gid. Glyphs
// without an outline (spaces) report a zero extent and no error.
func (f *Face) Extent(gid fontatlas.GlyphID) (GlyphExtent, error) {
	segments, err := f.font.font.LoadGlyph(&f.src.buf, sfnt.GlyphIndex(gid), f.ppem, nil)
	if err != nil {
		return GlyphExtent{}, fmt.Errorf("glyph: load glyph %d: %w", gid, err)
	}

	size, offset := maskLayout(segments.Bounds())
	if size.X <= 0 || size.Y <= 0 {
		return GlyphExtent{}, nil
	}
	return GlyphExtent{
		Width:    size.X,
		Height:   size.Y,
		BearingX: int(-offset.X) >> 6,
		BearingY: int(-offset.Y) >> 6,
	}, nil
}

// Advance returns the horizontal advance for gid.
func (f *Face) Advance(gid fontatlas.GlyphID) (fixed.Int26_6, error) {
	adv, err := f.font.font.GlyphAdvance(&f.src.buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("glyph: advance for glyph %d: %w", gid, err)
	}
	return adv, nil
}

// Kern returns the kerning adjustment between two glyphs, or 0 when
// the font defines none.
func (f *Face) Kern(prev, curr fontatlas.GlyphID) fixed.Int26_6 {
	kern, err := f.font.font.Kern(&f.src.buf, sfnt.GlyphIndex(prev), sfnt.GlyphIndex(curr), f.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return kern
}

// Metrics returns the font's vertical metrics at the face's size.
// Ascent is the distance from the baseline to the top of a line, which
// callers typically use as the render offset for the first baseline.
func (f *Face) Metrics() (font.Metrics, error) {
	m, err := f.font.font.Metrics(&f.src.buf, f.ppem, font.HintingNone)
	if err != nil {
		return font.Metrics{}, fmt.Errorf("glyph: font metrics: %w", err)
	}
	return m, nil
}
