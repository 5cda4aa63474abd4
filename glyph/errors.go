package glyph

import "errors"

// Sentinel errors for the glyph package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("glyph: empty font data")

	// ErrMissingGlyph is returned when a font has no glyph for a rune.
	ErrMissingGlyph = errors.New("glyph: no glyph for rune")
)
