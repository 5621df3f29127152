// Command toastdemo renders rounded-rectangle samples to a PNG file.
//
// It draws the anti-aliased toast background next to the hard-edged
// midpoint-circle fill and outline so the two rendering paths can be
// compared side by side. The result is optionally upscaled with
// nearest-neighbor sampling, which makes the anti-aliasing bands easy
// to inspect pixel by pixel.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/roundrect"
)

func main() {
	var (
		width   = flag.Int("width", 240, "shape width")
		height  = flag.Int("height", 64, "shape height")
		radius  = flag.Int("radius", 12, "corner radius")
		scale   = flag.Int("scale", 1, "integer upscale factor")
		output  = flag.String("output", "toast.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		roundrect.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	const pad = 8
	w, h := *width, *height

	// Three panels stacked vertically: SDF background, midpoint fill,
	// midpoint outline.
	canvas := roundrect.NewCanvas(w+2*pad, 3*h+4*pad)
	canvas.Clear(roundrect.ARGB{A: 255, R: 40, G: 44, B: 52})

	toast := roundrect.RenderBackground(w, h, *radius, roundrect.DefaultStyle())
	blit(canvas, toast, pad, pad)

	fill := roundrect.ARGB{A: 255, R: 80, G: 120, B: 200}
	roundrect.FillRoundedRect(canvas, pad, h+2*pad, w, h, *radius, fill)

	outline := roundrect.ARGB{A: 255, R: 220, G: 180, B: 80}
	roundrect.OutlineRoundedRect(canvas, pad, 2*h+3*pad, w, h, *radius, outline)

	img := canvas.ToImage()
	if *scale > 1 {
		img = upscale(img, *scale)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer func() {
		_ = f.Close()
	}()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	b := img.Bounds()
	log.Printf("Demo saved to %s (%dx%d)\n", *output, b.Dx(), b.Dy())
}

// blit composites src over dst at (x, y) with source-over blending.
// The destination panels are opaque, so the result stays opaque.
func blit(dst, src *roundrect.Canvas, x, y int) {
	for py := 0; py < src.Height(); py++ {
		for px := 0; px < src.Width(); px++ {
			s := roundrect.Unpack(src.Pixel(px, py))
			if s.A == 0 {
				continue
			}
			d := roundrect.Unpack(dst.Pixel(x+px, y+py))
			a := int(s.A)
			out := roundrect.ARGB{
				A: 255,
				R: uint8((int(s.R)*a + int(d.R)*(255-a)) / 255),
				G: uint8((int(s.G)*a + int(d.G)*(255-a)) / 255),
				B: uint8((int(s.B)*a + int(d.B)*(255-a)) / 255),
			}
			dst.SetPixel(x+px, y+py, out.Pack())
		}
	}
}

// upscale enlarges the image by an integer factor using nearest-neighbor
// sampling, keeping hard pixel edges visible.
func upscale(img *image.NRGBA, factor int) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(out, out.Bounds(), img, b, draw.Src, nil)
	return out
}
