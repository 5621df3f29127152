package roundrect

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Canvas represents a rectangular buffer of packed ARGB8888 pixels.
//
// The pixel at (x, y) is stored at index y*width + x. A Canvas performs
// bounds checking on every write: drawing operations placed partly or
// wholly outside the canvas are clipped, never an error.
type Canvas struct {
	width  int
	height int
	pix    []uint32
}

// NewCanvas creates a zero-initialized (fully transparent) canvas with
// the given dimensions. Non-positive dimensions yield an empty canvas.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		return &Canvas{}
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// WrapCanvas creates a canvas over a caller-owned pixel buffer.
// The buffer length must be exactly width*height; a mismatch is
// reported before any pixel is written.
func WrapCanvas(width, height int, pix []uint32) (*Canvas, error) {
	want := 0
	if width > 0 && height > 0 {
		want = width * height
	}
	if len(pix) != want {
		return nil, fmt.Errorf("roundrect: pixel buffer length %d does not match %dx%d canvas (want %d)",
			len(pix), width, height, want)
	}
	if want == 0 {
		return &Canvas{}, nil
	}
	return &Canvas{width: width, height: height, pix: pix}, nil
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.height }

// Pix returns the underlying packed ARGB8888 pixel words.
func (c *Canvas) Pix() []uint32 { return c.pix }

// SetPixel sets one pixel to a packed ARGB8888 word. Out-of-range
// coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, p uint32) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = p
}

// Pixel returns the packed ARGB8888 word at (x, y), or 0 for
// out-of-range coordinates.
func (c *Canvas) Pixel(x, y int) uint32 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.pix[y*c.width+x]
}

// Clear fills the entire canvas with one color.
func (c *Canvas) Clear(col ARGB) {
	p := col.Pack()
	for i := range c.pix {
		c.pix[i] = p
	}
}

// FillRect fills an axis-aligned rectangle, clipped to the canvas.
// Non-positive sizes draw nothing.
func (c *Canvas) FillRect(x, y, w, h int, col ARGB) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.width), min(y+h, c.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	p := col.Pack()
	for py := y0; py < y1; py++ {
		row := c.pix[py*c.width+x0 : py*c.width+x1]
		for i := range row {
			row[i] = p
		}
	}
}

// hspan fills the inclusive horizontal run [x0, x1] on row y, clipped.
func (c *Canvas) hspan(x0, x1, y int, p uint32) {
	if y < 0 || y >= c.height || x1 < x0 {
		return
	}
	x0, x1 = max(x0, 0), min(x1, c.width-1)
	if x0 > x1 {
		return
	}
	row := c.pix[y*c.width+x0 : y*c.width+x1+1]
	for i := range row {
		row[i] = p
	}
}

// vspan fills the inclusive vertical run [y0, y1] in column x, clipped.
func (c *Canvas) vspan(x, y0, y1 int, p uint32) {
	if x < 0 || x >= c.width || y1 < y0 {
		return
	}
	y0, y1 = max(y0, 0), min(y1, c.height-1)
	for y := y0; y <= y1; y++ {
		c.pix[y*c.width+x] = p
	}
}

// Bytes returns the pixel data as width*height*4 bytes in native byte
// order, suitable for direct upload into a texture or surface API that
// expects packed ARGB8888.
func (c *Canvas) Bytes() []byte {
	out := make([]byte, len(c.pix)*4)
	for i, p := range c.pix {
		binary.NativeEndian.PutUint32(out[i*4:], p)
	}
	return out
}

// ToImage converts the canvas to a non-premultiplied image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for i, p := range c.pix {
		img.Pix[i*4+0] = uint8(p >> 16)
		img.Pix[i*4+1] = uint8(p >> 8)
		img.Pix[i*4+2] = uint8(p)
		img.Pix[i*4+3] = uint8(p >> 24)
	}
	return img
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, c.ToImage())
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return Unpack(c.Pixel(x, y)).NRGBA()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
