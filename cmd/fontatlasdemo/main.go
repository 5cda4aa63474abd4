// Command fontatlasdemo renders sample text through the glyph atlas
// pipeline and saves the result, plus the atlas itself, as PNG files.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/go-fonts/latin-modern/lmroman10regular"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/glyph"
	"github.com/gogpu/fontatlas/layout"
)

func main() {
	var (
		width  = flag.Int("width", 640, "image width")
		height = flag.Int("height", 240, "image height")
		size   = flag.Float64("size", 48, "text size in pixels")
		text   = flag.String("text", "Sphinx of black quartz, judge my vow", "text to render")
		output = flag.String("output", "demo.png", "output file")
		atlas  = flag.String("atlas", "", "also save the atlas surface to this file")
		verbo  = flag.Bool("v", false, "log renderer diagnostics")
	)
	flag.Parse()

	if *verbo {
		fontatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	src := glyph.NewSource()
	face, err := src.AddFontFace(lmroman10regular.TTF, *size)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	renderer, err := fontatlas.NewRenderer(fontatlas.PixmapCreator{},
		fontatlas.WithAtlasSize(512, 512))
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	target := fontatlas.NewPixmap(*width, *height)
	target.Clear(color.RGBA{R: 24, G: 24, B: 32, A: 255})
	canvas := fontatlas.NewPixmapCanvas(target)

	l := layout.New()
	if err := l.Append(face, *text, color.RGBA{R: 230, G: 230, B: 240, A: 255}); err != nil {
		log.Fatalf("Failed to lay out text: %v", err)
	}

	metrics, err := face.Metrics()
	if err != nil {
		log.Fatalf("Failed to read font metrics: %v", err)
	}

	stats, err := renderer.Render(canvas, src, l.Glyphs(), 16, 16+metrics.Ascent.Ceil())
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := target.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Rendered %d glyphs (%d uploaded, %d cached) to %s",
		stats.Glyphs, stats.Uploaded, stats.Cached, *output)

	if *atlas != "" {
		pm, ok := renderer.Atlas().(*fontatlas.Pixmap)
		if !ok {
			log.Fatalf("Atlas surface is %T, not a pixmap", renderer.Atlas())
		}
		if err := pm.SavePNG(*atlas); err != nil {
			log.Fatalf("Failed to save atlas: %v", err)
		}
		log.Printf("Atlas (%.0f%% used) saved to %s",
			renderer.Allocator().Used()*100, *atlas)
	}
}
