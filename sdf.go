package roundrect

import "math"

// fringeAlphaFloor suppresses stray faint dots at shape corners: a
// computed outer-fringe alpha below this value is forced fully
// transparent. This is a visual tweak, not a mathematical necessity;
// removing it changes rendered output at extreme downscaling.
const fringeAlphaFloor = 8

// SignedDistanceRRect computes the exact signed distance from a point
// to the boundary of an axis-aligned rounded rectangle. Negative values
// are inside, positive values are outside, zero is exactly on the
// boundary.
//
// Parameters:
//   - px, py: query point (typically a pixel center)
//   - cx, cy: rectangle center
//   - halfW, halfH: half-width and half-height of the rectangle
//   - radius: corner radius
func SignedDistanceRRect(px, py, cx, cy, halfW, halfH, radius float64) float64 {
	// Translate to center and use symmetry (work in first quadrant),
	// then shift to corner-relative coordinates.
	qx := math.Abs(px-cx) - (halfW - radius)
	qy := math.Abs(py-cy) - (halfH - radius)

	// Outside the corner circle: Euclidean distance to it.
	// Inside the shape: max(qx, qy) gives the (negative) edge distance.
	outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inside := math.Min(math.Max(qx, qy), 0)

	return outside + inside - radius
}

// shade converts a signed distance into one packed ARGB8888 pixel
// using a five-band piecewise rule:
//
//	dist >= aw/2                         fully transparent
//	aw/2 > dist >= -aw/2                 outer fringe: border color, alpha fading in
//	-aw/2 > dist >= -(bw - aw/2)         solid border
//	-(bw - aw/2) > dist >= -(bw + aw/2)  inner fringe: border blending into fill
//	dist < -(bw + aw/2)                  solid fill
//
// where bw is the border width and aw the anti-alias band width.
// Colors are non-premultiplied; channel rounding is round-half-up.
func (s Style) shade(dist float64) uint32 {
	bw, aw := s.BorderWidth, s.AAWidth

	switch {
	case dist >= aw/2:
		return 0

	case dist >= -aw/2:
		// Outer fringe: RGB stays at the border color, alpha fades
		// from 0 at the outer edge to full at the inner edge.
		t := 0.5 - dist/aw
		a := uint8(float64(s.Border.A)*t + 0.5)
		if a < fringeAlphaFloor {
			return 0
		}
		return ARGB{A: a, R: s.Border.R, G: s.Border.G, B: s.Border.B}.Pack()

	case dist >= -(bw - aw/2):
		return s.Border.Pack()

	case dist >= -(bw + aw/2):
		// Inner fringe: blend border into fill across all channels.
		t := (dist + bw + aw/2) / aw
		return ARGB{
			A: lerp8(s.Border.A, s.Fill.A, t),
			R: lerp8(s.Border.R, s.Fill.R, t),
			G: lerp8(s.Border.G, s.Fill.G, t),
			B: lerp8(s.Border.B, s.Fill.B, t),
		}.Pack()

	default:
		return s.Fill.Pack()
	}
}
