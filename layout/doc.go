// Package layout turns styled text into positioned fontatlas tile
// requests.
//
// Shaping is done with go-text/typesetting's HarfBuzz implementation,
// so kerning, ligatures and right-to-left scripts come out correctly
// positioned. A Layout accumulates requests across multiple Append
// calls that may mix faces, sizes and colors along one baseline; the
// result feeds straight into fontatlas.Renderer.Render.
//
// Positions are relative to the baseline origin of the first appended
// run. Pass the baseline's canvas position as the render offset,
// typically (x, y+ascent) with the ascent from glyph.Face.Metrics.
package layout
