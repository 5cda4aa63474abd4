package glyph

import (
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/fontatlas"
)

// Font is one parsed font within a Source.
type Font struct {
	font *sfnt.Font
	data []byte
	id   uint64
	name string
}

// ID returns the font identifier used in raster configs. It is unique
// within the Source the font was added to.
func (f *Font) ID() uint64 { return f.id }

// Name returns the font family name, or "" if the font has none.
func (f *Font) Name() string { return f.name }

// Data returns the raw font file data. The layout package re-parses it
// for shaping; callers must not modify it.
func (f *Font) Data() []byte { return f.data }

// Source is an ordered collection of parsed fonts that rasterizes
// coverage bitmaps for atlas tile requests. It implements
// fontatlas.TileSource.
//
// Source is not safe for concurrent use: the sfnt parsing buffer is
// shared across calls.
type Source struct {
	fonts []*Font
	byID  map[uint64]*Font

	buf sfnt.Buffer
}

// NewSource creates an empty font source.
func NewSource() *Source {
	return &Source{byID: make(map[uint64]*Font)}
}

// AddFont parses TTF or OTF data and adds it to the source. The data
// slice is retained; it is also handed to the shaping layer unparsed.
func (s *Source) AddFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}

	name, _ := f.Name(&s.buf, sfnt.NameIDFamily)

	entry := &Font{font: f, data: data, name: name}
	entry.id = s.fontID(f, name)
	s.fonts = append(s.fonts, entry)
	s.byID[entry.id] = entry
	return entry, nil
}

// AddFontFace parses font data and returns a face at the given pixel
// size, combining AddFont and NewFace for the common one-font case.
func (s *Source) AddFontFace(data []byte, size float64) (*Face, error) {
	f, err := s.AddFont(data)
	if err != nil {
		return nil, err
	}
	return s.NewFace(f, size), nil
}

// Fonts returns the fonts added to the source, in insertion order.
func (s *Source) Fonts() []*Font { return s.fonts }

// fontID generates an identifier for a font from its name and shape
// properties using FNV-1a. If two indistinguishable fonts are added,
// the second gets a perturbed ID so both stay addressable.
func (s *Source) fontID(f *sfnt.Font, name string) uint64 {
	const (
		fnvOffset = 14695981039346656037
		fnvPrime  = 1099511628211
	)

	hash := uint64(fnvOffset)
	for i := 0; i < len(name); i++ {
		hash ^= uint64(name[i])
		hash *= fnvPrime
	}
	hash ^= uint64(f.NumGlyphs()) //nolint:gosec // NumGlyphs is non-negative
	hash *= fnvPrime
	hash ^= uint64(f.UnitsPerEm())
	hash *= fnvPrime

	for {
		if _, taken := s.byID[hash]; !taken {
			return hash
		}
		hash = hash*fnvPrime + 1
	}
}

// lookup resolves a raster config's font.
func (s *Source) lookup(id uint64) (*Font, error) {
	f, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("glyph: unknown font id %#x", id)
	}
	return f, nil
}

var _ fontatlas.TileSource = (*Source)(nil)
