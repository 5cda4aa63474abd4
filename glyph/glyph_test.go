package glyph

import (
	"errors"
	"image"
	"testing"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontatlas"
)

func newTestFace(t *testing.T, size float64) (*Source, *Face) {
	t.Helper()
	src := NewSource()
	face, err := src.AddFontFace(lmroman10regular.TTF, size)
	if err != nil {
		t.Fatalf("AddFontFace failed: %v", err)
	}
	return src, face
}

func TestAddFont(t *testing.T) {
	src := NewSource()
	f, err := src.AddFont(lmroman10regular.TTF)
	if err != nil {
		t.Fatalf("AddFont failed: %v", err)
	}
	if f.Name() == "" {
		t.Error("font has no family name")
	}
	if f.ID() == 0 {
		t.Error("font ID is zero")
	}
	if len(f.Data()) != len(lmroman10regular.TTF) {
		t.Error("Data() does not return the original font data")
	}
	if got := src.Fonts(); len(got) != 1 || got[0] != f {
		t.Errorf("Fonts() = %v, want the one added font", got)
	}
}

func TestAddFontErrors(t *testing.T) {
	src := NewSource()
	if _, err := src.AddFont(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("AddFont(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := src.AddFont([]byte("not a font")); err == nil {
		t.Error("AddFont(garbage) did not fail")
	}
}

func TestFontIDsDistinct(t *testing.T) {
	// Adding indistinguishable fonts must still produce distinct IDs so
	// both stay addressable in raster configs.
	src := NewSource()
	a, err := src.AddFont(lmroman10regular.TTF)
	if err != nil {
		t.Fatalf("first AddFont failed: %v", err)
	}
	b, err := src.AddFont(lmroman10regular.TTF)
	if err != nil {
		t.Fatalf("second AddFont failed: %v", err)
	}
	if a.ID() == b.ID() {
		t.Errorf("duplicate fonts share ID %#x", a.ID())
	}
}

func TestFaceConfig(t *testing.T) {
	_, face := newTestFace(t, 16)
	cfg := face.Config(42)
	if cfg.FontID != face.Font().ID() {
		t.Errorf("Config FontID = %#x, want %#x", cfg.FontID, face.Font().ID())
	}
	if cfg.GID != 42 {
		t.Errorf("Config GID = %d, want 42", cfg.GID)
	}
	if cfg.PPEM != fixed.I(16) {
		t.Errorf("Config PPEM = %v, want %v", cfg.PPEM, fixed.I(16))
	}
	if cfg.Hinting != fontatlas.HintingNone {
		t.Errorf("Config Hinting = %v, want HintingNone", cfg.Hinting)
	}
	if got := face.Size(); got != 16 {
		t.Errorf("Size() = %v, want 16", got)
	}
}

func TestGlyphIndex(t *testing.T) {
	_, face := newTestFace(t, 16)
	gid, err := face.GlyphIndex('A')
	if err != nil {
		t.Fatalf("GlyphIndex('A') failed: %v", err)
	}
	if gid == 0 {
		t.Error("GlyphIndex('A') = 0")
	}

	// A Latin font has no Thai coverage.
	if _, err := face.GlyphIndex('ก'); !errors.Is(err, ErrMissingGlyph) {
		t.Errorf("GlyphIndex(Thai rune) error = %v, want ErrMissingGlyph", err)
	}
}

func TestExtent(t *testing.T) {
	_, face := newTestFace(t, 32)
	gid, err := face.GlyphIndex('A')
	if err != nil {
		t.Fatalf("GlyphIndex failed: %v", err)
	}
	ext, err := face.Extent(gid)
	if err != nil {
		t.Fatalf("Extent failed: %v", err)
	}
	if ext.Width <= 0 || ext.Height <= 0 {
		t.Fatalf("Extent of 'A' = %dx%d, want positive", ext.Width, ext.Height)
	}
	if ext.Width > 40 || ext.Height > 40 {
		t.Errorf("Extent of 'A' at 32px = %dx%d, implausibly large", ext.Width, ext.Height)
	}
	if ext.BearingY >= 0 {
		t.Errorf("BearingY = %d, want negative for a glyph above the baseline", ext.BearingY)
	}
}

func TestExtentSpaceIsEmpty(t *testing.T) {
	_, face := newTestFace(t, 16)
	gid, err := face.GlyphIndex(' ')
	if err != nil {
		t.Fatalf("GlyphIndex(' ') failed: %v", err)
	}
	ext, err := face.Extent(gid)
	if err != nil {
		t.Fatalf("Extent failed: %v", err)
	}
	if ext != (GlyphExtent{}) {
		t.Errorf("Extent of space = %+v, want zero", ext)
	}
}

func TestRasterizeMatchesExtent(t *testing.T) {
	src, face := newTestFace(t, 32)
	gid, err := face.GlyphIndex('g')
	if err != nil {
		t.Fatalf("GlyphIndex failed: %v", err)
	}
	ext, err := face.Extent(gid)
	if err != nil {
		t.Fatalf("Extent failed: %v", err)
	}

	cov, err := src.Rasterize(face.Config(gid))
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	if cov.Width != ext.Width || cov.Height != ext.Height {
		t.Errorf("coverage extent = %dx%d, Extent reports %dx%d",
			cov.Width, cov.Height, ext.Width, ext.Height)
	}
	if len(cov.Pix) != cov.Width*cov.Height {
		t.Errorf("coverage buffer = %d bytes, want %d", len(cov.Pix), cov.Width*cov.Height)
	}

	var maxAlpha uint8
	for _, a := range cov.Pix {
		if a > maxAlpha {
			maxAlpha = a
		}
	}
	if maxAlpha < 200 {
		t.Errorf("max coverage = %d, expected near-opaque pixels in 'g'", maxAlpha)
	}
}

func TestRasterizeSpace(t *testing.T) {
	src, face := newTestFace(t, 16)
	gid, err := face.GlyphIndex(' ')
	if err != nil {
		t.Fatalf("GlyphIndex failed: %v", err)
	}
	cov, err := src.Rasterize(face.Config(gid))
	if err != nil {
		t.Fatalf("Rasterize of space failed: %v", err)
	}
	if cov.Width != 0 || cov.Height != 0 {
		t.Errorf("coverage of space = %dx%d, want 0x0", cov.Width, cov.Height)
	}
}

func TestRasterizeUnknownFont(t *testing.T) {
	src := NewSource()
	cfg := fontatlas.RasterConfig{FontID: 0xdead, GID: 1, PPEM: fixed.I(16)}
	if _, err := src.Rasterize(cfg); err == nil {
		t.Error("Rasterize with unknown font ID did not fail")
	}
}

func TestAdvance(t *testing.T) {
	_, face := newTestFace(t, 16)
	gid, err := face.GlyphIndex('m')
	if err != nil {
		t.Fatalf("GlyphIndex failed: %v", err)
	}
	adv, err := face.Advance(gid)
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if adv <= 0 {
		t.Errorf("Advance('m') = %v, want positive", adv)
	}
}

func TestMetrics(t *testing.T) {
	_, face := newTestFace(t, 16)
	m, err := face.Metrics()
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want positive", m.Ascent)
	}
	if m.Descent < 0 {
		t.Errorf("Descent = %v, want non-negative", m.Descent)
	}
}

func TestMaskLayout(t *testing.T) {
	// Bounds of -1.015..2.03 px horizontally and -1.015..0.03 px
	// vertically: the min floors down to a whole pixel, the max rounds
	// up after shifting.
	bounds := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: -65, Y: -65},
		Max: fixed.Point26_6{X: 130, Y: 2},
	}
	size, offset := maskLayout(bounds)
	if want := (fixed.Point26_6{X: 128, Y: 128}); offset != want {
		t.Errorf("offset = %v, want %v", offset, want)
	}
	if want := (image.Point{X: 5, Y: 3}); size != want {
		t.Errorf("size = %v, want %v", size, want)
	}
}

func TestMaskLayoutEmpty(t *testing.T) {
	size, _ := maskLayout(fixed.Rectangle26_6{})
	if size.X > 0 && size.Y > 0 {
		t.Errorf("empty bounds produced positive size %v", size)
	}
}
