package roundrect

import (
	"math"
	"testing"
)

func TestSignedDistanceRRectTopology(t *testing.T) {
	// 20x20 shape centered at (10,10) with radius 8.
	const cx, cy, hw, hh, r = 10, 10, 10, 10, 8

	// The top-left corner circle has its center at (8, 8), so the
	// diagonal point (8-8/sqrt2, 8-8/sqrt2) lies exactly on the arc.
	d := 8 - 8/math.Sqrt2

	tests := []struct {
		name   string
		px, py float64
		want   float64
	}{
		{"center", 10, 10, -10},
		{"top edge midpoint", 10, 0, 0},
		{"left edge midpoint", 0, 10, 0},
		{"one inside top edge", 10, 1, -1},
		{"one outside top edge", 10, -1, 1},
		{"corner arc boundary", d, d, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignedDistanceRRect(tt.px, tt.py, cx, cy, hw, hh, r)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SignedDistanceRRect(%f, %f) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestSignedDistanceRRectOutsideCorner(t *testing.T) {
	// The far corner of a 20x20 canvas is well outside a radius-8 shape.
	got := SignedDistanceRRect(0.5, 0.5, 10, 10, 10, 10, 8)
	want := math.Hypot(7.5, 7.5) - 8
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("corner distance = %v, want %v", got, want)
	}
	if got <= 0 {
		t.Errorf("corner distance = %v, want > 0 (outside)", got)
	}
}

func TestSignedDistanceRRectZeroRadius(t *testing.T) {
	// With radius 0 the shape degenerates to a plain rectangle and the
	// distance on each edge is zero.
	for _, p := range []struct{ px, py float64 }{{0, 5}, {10, 5}, {5, 0}, {5, 10}} {
		got := SignedDistanceRRect(p.px, p.py, 5, 5, 5, 5, 0)
		if math.Abs(got) > 1e-12 {
			t.Errorf("edge point (%f, %f): dist = %v, want 0", p.px, p.py, got)
		}
	}
}

func TestShadeBands(t *testing.T) {
	s := DefaultStyle() // border 1.5, aa 1.2

	tests := []struct {
		name string
		dist float64
		want uint32
	}{
		{"far outside", 5.0, 0},
		{"at outer aa edge", 0.6, 0},
		{"boundary", 0.0, ARGB{A: 105, R: 100, G: 110, B: 140}.Pack()},
		{"solid border", -0.7, s.Border.Pack()},
		{"border band inner limit", -0.89, s.Border.Pack()},
		{"inner fringe midpoint", -1.5, ARGB{A: 195, R: 60, G: 65, B: 84}.Pack()},
		{"at fill edge", -2.1, s.Fill.Pack()},
		{"deep interior", -100, s.Fill.Pack()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.shade(tt.dist)
			if got != tt.want {
				t.Errorf("shade(%f) = %#08x, want %#08x", tt.dist, got, tt.want)
			}
		})
	}
}

func TestShadeFringeFloor(t *testing.T) {
	s := DefaultStyle()

	// Just inside the outer fringe the computed alpha rounds to 4,
	// below the floor of 8, so the pixel must be forced transparent.
	if got := s.shade(0.58); got != 0 {
		t.Errorf("shade(0.58) = %#08x, want 0 (fringe floor)", got)
	}

	// Deeper into the fringe the alpha clears the floor and survives.
	if got := s.shade(0.3); got == 0 {
		t.Error("shade(0.3) = 0, want visible fringe pixel")
	}
}

func TestShadeFringeMonotonicAlpha(t *testing.T) {
	s := DefaultStyle()
	// Across the outer fringe, alpha must not decrease as dist decreases.
	prev := uint8(0)
	for dist := 0.59; dist >= -0.6; dist -= 0.01 {
		a := Unpack(s.shade(dist)).A
		if a < prev {
			t.Fatalf("fringe alpha decreased at dist=%f: %d < %d", dist, a, prev)
		}
		prev = a
	}
}

func BenchmarkSignedDistanceRRect(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = SignedDistanceRRect(3.5, 4.5, 120, 32, 120, 32, 12)
	}
}
