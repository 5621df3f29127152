package roundrect

import (
	"github.com/gogpu/roundrect/internal/parallel"
)

// RenderBackgroundParallel renders the same output as RenderBackground,
// dispatching contiguous row bands across a worker pool. If workers is
// 0 or negative, GOMAXPROCS is used.
//
// Rows are independent, so the result is byte-identical to the
// sequential path for any worker count. Worth it for large canvases;
// for typical toast sizes the sequential path is already fast enough.
func RenderBackgroundParallel(width, height, radius int, style Style, workers int) *Canvas {
	c := NewCanvas(width, height)
	if width <= 0 || height <= 0 {
		return c
	}
	radius = clampRadius(radius, width, height)

	Logger().Debug("parallel background render",
		"width", width, "height", height, "radius", radius, "workers", workers)

	parallel.Rows(height, workers, func(y0, y1 int) {
		for py := y0; py < y1; py++ {
			shadeRow(c, py, radius, style)
		}
	})
	return c
}
