package fontatlas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a CPU-side RGBA pixel buffer. It implements Surface, so it
// can back a renderer's atlas, and image.Image for easy inspection and
// PNG export.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// WritePixels implements Surface. The region must lie fully inside the
// pixmap and pix must hold r.H rows of r.W RGBA pixels at the given
// stride. Replaces pixels without blending.
func (p *Pixmap) WritePixels(r Rect, pix []uint8, stride int) error {
	if r.Empty() {
		return nil
	}
	if r.X < 0 || r.Y < 0 || r.Right() > p.width || r.Bottom() > p.height {
		return fmt.Errorf("fontatlas: write region %dx%d+%d+%d outside %dx%d pixmap",
			r.W, r.H, r.X, r.Y, p.width, p.height)
	}
	if stride < r.W*4 {
		return fmt.Errorf("fontatlas: stride %d too small for width %d", stride, r.W)
	}
	if len(pix) < (r.H-1)*stride+r.W*4 {
		return fmt.Errorf("fontatlas: pixel buffer of %d bytes too small for %dx%d region",
			len(pix), r.W, r.H)
	}

	for row := 0; row < r.H; row++ {
		src := pix[row*stride : row*stride+r.W*4]
		off := ((r.Y+row)*p.width + r.X) * 4
		copy(p.data[off:off+r.W*4], src)
	}
	return nil
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.RGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	return png.Encode(f, img)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// PixmapCreator creates Pixmap atlas surfaces. It is the
// SurfaceCreator to use for pure CPU rendering.
type PixmapCreator struct{}

// CreateSurface implements SurfaceCreator.
func (PixmapCreator) CreateSurface(width, height int) (Surface, error) {
	return NewPixmap(width, height), nil
}

// PixmapCanvas adapts a destination Pixmap to the Canvas interface,
// compositing copies with source-over alpha blending the way an
// alpha-blended texture copy would.
type PixmapCanvas struct {
	dst       *Pixmap
	drawColor color.RGBA
}

// NewPixmapCanvas creates a canvas that draws onto dst.
func NewPixmapCanvas(dst *Pixmap) *PixmapCanvas {
	return &PixmapCanvas{dst: dst, drawColor: color.RGBA{A: 255}}
}

// Target returns the destination pixmap.
func (c *PixmapCanvas) Target() *Pixmap { return c.dst }

// Copy implements Canvas. src must be a *Pixmap and srcRect and
// dstRect must have equal extents; scaling blits are not supported.
// Destination pixels outside the canvas are clipped.
func (c *PixmapCanvas) Copy(src Surface, srcRect, dstRect Rect) error {
	sp, ok := src.(*Pixmap)
	if !ok {
		return fmt.Errorf("fontatlas: pixmap canvas cannot copy from %T", src)
	}
	if srcRect.W != dstRect.W || srcRect.H != dstRect.H {
		return fmt.Errorf("fontatlas: scaling copy %dx%d to %dx%d not supported",
			srcRect.W, srcRect.H, dstRect.W, dstRect.H)
	}
	if srcRect.X < 0 || srcRect.Y < 0 || srcRect.Right() > sp.width || srcRect.Bottom() > sp.height {
		return fmt.Errorf("fontatlas: source region %dx%d+%d+%d outside %dx%d pixmap",
			srcRect.W, srcRect.H, srcRect.X, srcRect.Y, sp.width, sp.height)
	}

	for row := 0; row < srcRect.H; row++ {
		dy := dstRect.Y + row
		if dy < 0 || dy >= c.dst.height {
			continue
		}
		for col := 0; col < srcRect.W; col++ {
			dx := dstRect.X + col
			if dx < 0 || dx >= c.dst.width {
				continue
			}
			si := ((srcRect.Y+row)*sp.width + srcRect.X + col) * 4
			di := (dy*c.dst.width + dx) * 4
			blendPixel(c.dst.data[di:di+4], sp.data[si:si+4])
		}
	}
	return nil
}

// DrawColor implements Canvas.
func (c *PixmapCanvas) DrawColor() color.RGBA { return c.drawColor }

// SetDrawColor implements Canvas.
func (c *PixmapCanvas) SetDrawColor(col color.RGBA) { c.drawColor = col }

// StrokeRect implements Canvas: a one-pixel outline in the ambient
// draw color, clipped to the canvas.
func (c *PixmapCanvas) StrokeRect(r Rect) error {
	if r.Empty() {
		return nil
	}
	for x := r.X; x < r.Right(); x++ {
		c.dst.SetPixel(x, r.Y, c.drawColor)
		c.dst.SetPixel(x, r.Bottom()-1, c.drawColor)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		c.dst.SetPixel(r.X, y, c.drawColor)
		c.dst.SetPixel(r.Right()-1, y, c.drawColor)
	}
	return nil
}

// blendPixel composites a straight-alpha RGBA src pixel over dst in
// place.
func blendPixel(dst, src []uint8) {
	sa := uint32(src[3])
	switch sa {
	case 0:
		return
	case 255:
		copy(dst, src)
		return
	}
	inv := 255 - sa
	dst[0] = uint8((uint32(src[0])*sa + uint32(dst[0])*inv + 127) / 255)
	dst[1] = uint8((uint32(src[1])*sa + uint32(dst[1])*inv + 127) / 255)
	dst[2] = uint8((uint32(src[2])*sa + uint32(dst[2])*inv + 127) / 255)
	dst[3] = uint8(sa + (uint32(dst[3])*inv+127)/255)
}
