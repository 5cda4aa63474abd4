package layout

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/glyph"
)

// Layout accumulates positioned tile requests for styled text runs
// sharing a baseline. The zero value is not usable; call New.
//
// Layout is not safe for concurrent use.
type Layout struct {
	shaper shaping.HarfbuzzShaper

	// faces caches typesetting faces per font, so repeated Append
	// calls do not re-parse font data for shaping.
	faces map[*glyph.Font]*font.Face

	requests []fontatlas.TileRequest
	pen      fixed.Point26_6
}

// New creates an empty layout with the pen at the baseline origin.
func New() *Layout {
	return &Layout{faces: make(map[*glyph.Font]*font.Face)}
}

// Reset clears accumulated requests and returns the pen to the origin.
func (l *Layout) Reset() {
	l.requests = l.requests[:0]
	l.pen = fixed.Point26_6{}
}

// Append shapes text with face and adds one positioned request per
// visible glyph, advancing the pen. The color becomes part of each
// tile key, so the same glyph in two colors occupies two atlas tiles.
//
// Glyphs whose extent cannot be determined are logged and skipped;
// their advance is still applied so the rest of the run stays in
// place.
func (l *Layout) Append(face *glyph.Face, text string, col color.RGBA) error {
	if text == "" {
		return nil
	}

	gtFace, err := l.typesettingFace(face.Font())
	if err != nil {
		return err
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(text),
		Face:      gtFace,
		Size:      face.PPEM(),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	out := l.shaper.Shape(input)

	for _, g := range out.Glyphs {
		gid := fontatlas.GlyphID(uint16(g.GlyphID)) //nolint:gosec // fonts with >64K glyphs are not addressable here
		x := l.pen.X + g.XOffset
		y := l.pen.Y - g.YOffset

		ext, extErr := face.Extent(gid)
		if extErr != nil {
			fontatlas.Logger().Warn("glyph extent unavailable",
				"err", extErr, "gid", gid)
		} else if ext.Width > 0 && ext.Height > 0 {
			l.requests = append(l.requests, fontatlas.TileRequest{
				Key: fontatlas.GlyphKey{
					Config: face.Config(gid),
					Color:  col,
				},
				X:      x.Round() + ext.BearingX,
				Y:      y.Round() + ext.BearingY,
				Width:  ext.Width,
				Height: ext.Height,
			})
		}

		l.pen.X += g.XAdvance
		l.pen.Y -= g.YAdvance
	}
	return nil
}

// Glyphs returns the accumulated requests, in append order. The slice
// is owned by the layout and valid until the next Reset or Append.
func (l *Layout) Glyphs() []fontatlas.TileRequest { return l.requests }

// Advance returns the pen's horizontal distance from the origin, i.e.
// the shaped width of everything appended so far.
func (l *Layout) Advance() fixed.Int26_6 { return l.pen.X }

// typesettingFace returns the cached shaping face for f, parsing the
// font data on first use.
func (l *Layout) typesettingFace(f *glyph.Font) (*font.Face, error) {
	if face, ok := l.faces[f]; ok {
		return face, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(f.Data()))
	if err != nil {
		return nil, fmt.Errorf("layout: parse font for shaping: %w", err)
	}
	l.faces[f] = face
	return face, nil
}
