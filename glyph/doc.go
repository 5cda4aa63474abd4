// Package glyph implements the font-backed tile source for fontatlas.
//
// A Source holds parsed TrueType/OpenType fonts and rasterizes glyph
// coverage bitmaps on demand via golang.org/x/image/font/sfnt and
// golang.org/x/image/vector. A Face binds one font to a pixel size and
// derives the raster configs, extents and metrics that the layout
// package and custom layout code need to build tile requests.
//
// Source and Face are single-owner structures like the rest of
// fontatlas; they share an sfnt parsing buffer and must be used from
// one goroutine.
package glyph
