package roundrect

import "image/color"

// ARGB represents a non-premultiplied color with 8-bit alpha, red,
// green and blue components.
type ARGB struct {
	A, R, G, B uint8
}

// Pack returns the color as a packed ARGB8888 word: alpha in the most
// significant byte, then red, green, blue.
func (c ARGB) Pack() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack converts a packed ARGB8888 word back into its components.
func Unpack(p uint32) ARGB {
	return ARGB{
		A: uint8(p >> 24),
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
	}
}

// NRGBA converts the color to the standard library's non-premultiplied
// color type.
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromNRGBA converts a standard non-premultiplied color to ARGB.
func FromNRGBA(c color.NRGBA) ARGB {
	return ARGB{A: c.A, R: c.R, G: c.G, B: c.B}
}

// lerp8 interpolates one 8-bit channel between b (at t=1) and f (at t=0)
// with round-half-up rounding.
func lerp8(b, f uint8, t float64) uint8 {
	return uint8(float64(b)*t + float64(f)*(1-t) + 0.5)
}
