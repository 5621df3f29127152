package roundrect

// Style describes the appearance of an SDF-rendered rounded-rectangle
// background: a translucent fill, a border ring of BorderWidth pixels,
// and anti-aliased transitions AAWidth pixels wide. Both widths are
// fractional pixel measures.
type Style struct {
	Fill        ARGB
	Border      ARGB
	BorderWidth float64
	AAWidth     float64
}

// DefaultStyle returns the toast notification palette: a
// semi-transparent dark fill with a lighter border.
func DefaultStyle() Style {
	return Style{
		Fill:        ARGB{A: 180, R: 20, G: 20, B: 28},
		Border:      ARGB{A: 210, R: 100, G: 110, B: 140},
		BorderWidth: 1.5,
		AAWidth:     1.2,
	}
}

// clampRadius reduces a corner radius request to what the rectangle can
// accommodate: negative radii become 0, and a radius exceeding half the
// smaller dimension is silently reduced, never rejected.
func clampRadius(radius, w, h int) int {
	if radius < 0 {
		radius = 0
	}
	if radius > w/2 {
		radius = w / 2
	}
	if radius > h/2 {
		radius = h / 2
	}
	return radius
}

// ToastBackground renders a toast notification background with the
// default style and returns it as width*height*4 bytes of packed
// ARGB8888 in native byte order, ready for direct upload into a
// streaming texture. Non-positive dimensions return an empty slice.
func ToastBackground(width, height, radius int) []byte {
	return RenderBackground(width, height, radius, DefaultStyle()).Bytes()
}

// RenderBackground renders an anti-aliased rounded-rectangle background
// filling the whole canvas, one SDF evaluation per pixel. Non-positive
// dimensions yield an empty canvas. The radius is clamped to
// [0, min(width,height)/2].
func RenderBackground(width, height, radius int, style Style) *Canvas {
	c := NewCanvas(width, height)
	RenderBackgroundInto(c, radius, style)
	return c
}

// RenderBackgroundInto renders the background into an existing canvas,
// typically one wrapping a caller-owned buffer (see WrapCanvas).
// Every pixel of the canvas is overwritten.
func RenderBackgroundInto(c *Canvas, radius int, style Style) {
	if c.width <= 0 || c.height <= 0 {
		return
	}
	radius = clampRadius(radius, c.width, c.height)
	for py := 0; py < c.height; py++ {
		shadeRow(c, py, radius, style)
	}
}

// shadeRow rasterizes one row of the full-canvas rounded rectangle.
// Rows are independent, which makes this the unit of parallel dispatch.
func shadeRow(c *Canvas, py int, radius int, style Style) {
	hw := float64(c.width) / 2
	hh := float64(c.height) / 2
	cy := float64(py) + 0.5
	row := c.pix[py*c.width : (py+1)*c.width]
	for px := range row {
		dist := SignedDistanceRRect(float64(px)+0.5, cy, hw, hh, hw, hh, float64(radius))
		row[px] = style.shade(dist)
	}
}
