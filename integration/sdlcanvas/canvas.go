// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sdlcanvas

import (
	"fmt"
	"image/color"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/fontatlas"
)

// Texture is an SDL2 streaming texture implementing fontatlas.Surface.
type Texture struct {
	tex    *sdl.Texture
	width  int
	height int
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Raw returns the underlying SDL texture.
func (t *Texture) Raw() *sdl.Texture { return t.tex }

// Destroy releases the SDL texture.
func (t *Texture) Destroy() error { return t.tex.Destroy() }

// WritePixels implements fontatlas.Surface by streaming the region
// into the texture.
func (t *Texture) WritePixels(r fontatlas.Rect, pix []uint8, stride int) error {
	if r.Empty() {
		return nil
	}
	if len(pix) < (r.H-1)*stride+r.W*4 {
		return fmt.Errorf("sdlcanvas: pixel buffer of %d bytes too small for %dx%d region",
			len(pix), r.W, r.H)
	}
	rect := sdlRect(r)
	return t.tex.Update(&rect, unsafe.Pointer(&pix[0]), stride)
}

// TextureCreator creates streaming atlas textures from an SDL
// renderer. It implements fontatlas.SurfaceCreator.
type TextureCreator struct {
	ren *sdl.Renderer
}

// NewTextureCreator wraps an SDL renderer as a surface creator.
func NewTextureCreator(ren *sdl.Renderer) *TextureCreator {
	return &TextureCreator{ren: ren}
}

// CreateSurface implements fontatlas.SurfaceCreator. The texture uses
// the RGBA32 pixel format (bytes are r, g, b, a when read as uint8)
// with blending enabled.
func (c *TextureCreator) CreateSurface(width, height int) (fontatlas.Surface, error) {
	tex, err := c.ren.CreateTexture(
		uint32(sdl.PIXELFORMAT_RGBA32),
		sdl.TEXTUREACCESS_STREAMING,
		int32(width),
		int32(height),
	)
	if err != nil {
		return nil, fmt.Errorf("sdlcanvas: create texture: %w", err)
	}
	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		_ = tex.Destroy()
		return nil, fmt.Errorf("sdlcanvas: set blend mode: %w", err)
	}
	return &Texture{tex: tex, width: width, height: height}, nil
}

// Canvas adapts an SDL renderer to fontatlas.Canvas. The renderer
// should be the one the TextureCreator was built from.
type Canvas struct {
	ren *sdl.Renderer
}

// NewCanvas wraps an SDL renderer as a destination canvas.
func NewCanvas(ren *sdl.Renderer) *Canvas {
	return &Canvas{ren: ren}
}

// Copy implements fontatlas.Canvas. src must be a Texture from this
// package.
func (c *Canvas) Copy(src fontatlas.Surface, srcRect, dstRect fontatlas.Rect) error {
	tex, ok := src.(*Texture)
	if !ok {
		return fmt.Errorf("sdlcanvas: cannot copy from %T", src)
	}
	s := sdlRect(srcRect)
	d := sdlRect(dstRect)
	return c.ren.Copy(tex.tex, &s, &d)
}

// DrawColor implements fontatlas.Canvas.
func (c *Canvas) DrawColor() color.RGBA {
	r, g, b, a, err := c.ren.GetDrawColor()
	if err != nil {
		return color.RGBA{}
	}
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// SetDrawColor implements fontatlas.Canvas.
func (c *Canvas) SetDrawColor(col color.RGBA) {
	_ = c.ren.SetDrawColor(col.R, col.G, col.B, col.A)
}

// StrokeRect implements fontatlas.Canvas.
func (c *Canvas) StrokeRect(r fontatlas.Rect) error {
	rect := sdlRect(r)
	return c.ren.DrawRect(&rect)
}

func sdlRect(r fontatlas.Rect) sdl.Rect {
	return sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}
