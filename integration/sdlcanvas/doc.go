// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sdlcanvas adapts SDL2 rendering (github.com/veandco/go-sdl2)
// to the fontatlas Surface and Canvas interfaces.
//
// The atlas lives in a streaming RGBA texture with alpha blending
// enabled, so cached glyph tiles composite correctly when copied onto
// the window. Fallback outlines for tiles that no longer fit go
// through the SDL renderer's draw-color state, which Render saves and
// restores around the batch.
//
//	ren, _ := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
//	renderer, _ := fontatlas.NewRenderer(sdlcanvas.NewTextureCreator(ren))
//	renderer.Render(sdlcanvas.NewCanvas(ren), source, l.Glyphs(), 20, 40)
package sdlcanvas
