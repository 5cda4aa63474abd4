package glyph

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/fontatlas"
)

// Rasterize implements fontatlas.TileSource: it loads the glyph
// outline for cfg and fills it into a coverage bitmap whose extent
// matches what Face.Extent reports for the same glyph.
//
// Glyphs without an outline (spaces, some control glyphs) rasterize to
// a zero-extent Coverage with no error.
func (s *Source) Rasterize(cfg fontatlas.RasterConfig) (fontatlas.Coverage, error) {
	f, err := s.lookup(cfg.FontID)
	if err != nil {
		return fontatlas.Coverage{}, err
	}

	segments, err := f.font.LoadGlyph(&s.buf, sfnt.GlyphIndex(cfg.GID), cfg.PPEM, nil)
	if err != nil {
		return fontatlas.Coverage{}, fmt.Errorf("glyph: load glyph %d: %w", cfg.GID, err)
	}

	size, offset := maskLayout(segments.Bounds())
	if size.X <= 0 || size.Y <= 0 {
		return fontatlas.Coverage{}, nil
	}

	var rast vector.Rasterizer
	rast.Reset(size.X, size.Y)
	rast.DrawOp = draw.Src
	appendOutline(&rast, segments, offset)

	mask := image.NewAlpha(image.Rect(0, 0, size.X, size.Y))
	rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return fontatlas.Coverage{Width: size.X, Height: size.Y, Pix: mask.Pix}, nil
}

// appendOutline feeds glyph outline segments to the rasterizer,
// shifted by offset into the mask's positive quadrant.
func appendOutline(rast *vector.Rasterizer, segments sfnt.Segments, offset fixed.Point26_6) {
	tof := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X+offset.X) / 64, float32(p.Y+offset.Y) / 64
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := tof(seg.Args[0])
			rast.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := tof(seg.Args[0])
			rast.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := tof(seg.Args[0])
			x, y := tof(seg.Args[1])
			rast.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			cax, cay := tof(seg.Args[0])
			cbx, cby := tof(seg.Args[1])
			x, y := tof(seg.Args[2])
			rast.CubeTo(cax, cay, cbx, cby, x, y)
		}
	}
}

// maskLayout computes the integer mask extent for glyph outline bounds
// and the offset that moves outline coordinates into the mask's
// positive quadrant. Outline coordinates have y growing downward with
// the origin on the baseline, so bounds above the baseline are
// negative.
func maskLayout(bounds fixed.Rectangle26_6) (size image.Point, offset fixed.Point26_6) {
	floorMinX := bounds.Min.X &^ 63
	floorMinY := bounds.Min.Y &^ 63
	offset = fixed.Point26_6{X: -floorMinX, Y: -floorMinY}
	size = image.Point{
		X: (bounds.Max.X + offset.X).Ceil(),
		Y: (bounds.Max.Y + offset.Y).Ceil(),
	}
	return size, offset
}
