package parallel

import "testing"

func TestBands(t *testing.T) {
	tests := []struct {
		name       string
		n, workers int
		want       [][2]int
	}{
		{"even split", 8, 4, [][2]int{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"uneven split", 7, 3, [][2]int{{0, 3}, {3, 5}, {5, 7}}},
		{"more workers than rows", 3, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"single worker", 5, 1, [][2]int{{0, 5}}},
		{"zero workers uses rows", 2, 0, [][2]int{{0, 1}, {1, 2}}},
		{"no rows", 0, 4, nil},
		{"negative rows", -3, 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bands(tt.n, tt.workers)
			if len(got) != len(tt.want) {
				t.Fatalf("Bands(%d, %d) = %v, want %v", tt.n, tt.workers, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("band %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBandsCoverAllRows(t *testing.T) {
	// Bands must tile [0, n) exactly: contiguous, in order, no overlap.
	for _, n := range []int{1, 7, 64, 1000} {
		for _, workers := range []int{1, 3, 8, 2000} {
			bands := Bands(n, workers)
			next := 0
			for _, b := range bands {
				if b[0] != next {
					t.Fatalf("n=%d workers=%d: band starts at %d, want %d", n, workers, b[0], next)
				}
				if b[1] <= b[0] {
					t.Fatalf("n=%d workers=%d: empty band %v", n, workers, b)
				}
				next = b[1]
			}
			if next != n {
				t.Fatalf("n=%d workers=%d: bands end at %d, want %d", n, workers, next, n)
			}
		}
	}
}

func TestRowsVisitsEachRowOnce(t *testing.T) {
	const height = 97
	for _, workers := range []int{0, 1, 3, 16} {
		visits := make([]int32, height)
		Rows(height, workers, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				visits[y]++ // safe: bands are disjoint
			}
		})
		for y, v := range visits {
			if v != 1 {
				t.Fatalf("workers=%d: row %d visited %d times, want 1", workers, y, v)
			}
		}
	}
}

func TestRowsZeroHeight(t *testing.T) {
	called := false
	Rows(0, 4, func(y0, y1 int) { called = true })
	if called {
		t.Error("fn called for zero height")
	}
}
