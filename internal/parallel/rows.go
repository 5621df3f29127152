package parallel

// Bands splits n rows into contiguous [start, end) bands, one per
// worker, as evenly as possible. The first n%workers bands are one row
// taller. Returns nil for n <= 0.
func Bands(n, workers int) [][2]int {
	if n <= 0 {
		return nil
	}
	if workers <= 0 || workers > n {
		workers = n
	}

	bands := make([][2]int, 0, workers)
	base := n / workers
	extra := n % workers

	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		bands = append(bands, [2]int{start, start + size})
		start += size
	}
	return bands
}

// Rows runs fn over [0, height) split into per-worker row bands and
// waits for all bands to complete. fn receives a half-open row range
// [y0, y1) and must not touch rows outside it. The output is
// deterministic for any worker count as long as fn writes only to its
// own rows.
func Rows(height, workers int, fn func(y0, y1 int)) {
	bands := Bands(height, workers)
	switch len(bands) {
	case 0:
		return
	case 1:
		fn(0, height)
		return
	}

	pool := NewWorkerPool(len(bands))
	defer pool.Close()

	work := make([]func(), len(bands))
	for i, b := range bands {
		y0, y1 := b[0], b[1]
		work[i] = func() { fn(y0, y1) }
	}
	pool.ExecuteAll(work)
}
