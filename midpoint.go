package roundrect

// FillRoundedRect draws a hard-edged (non-antialiased) filled rounded
// rectangle onto the canvas. The body is covered by three
// non-overlapping solid rectangles; each corner is filled with
// horizontal spans traced by the integer midpoint circle algorithm.
//
// The shape may be placed partly or wholly outside the canvas; writes
// are clipped. The radius is clamped to [0, min(w,h)/2]. Non-positive
// sizes draw nothing.
func FillRoundedRect(c *Canvas, x, y, w, h, radius int, col ARGB) {
	if w <= 0 || h <= 0 {
		return
	}
	r := clampRadius(radius, w, h)
	if r <= 0 {
		c.FillRect(x, y, w, h, col)
		return
	}

	// Body: a full-height center strip plus two side strips inset by
	// the radius vertically. At r == min(w,h)/2 some of these collapse
	// to zero size, which FillRect ignores.
	c.FillRect(x+r, y, w-2*r, h, col)
	c.FillRect(x, y+r, r, h-2*r, col)
	c.FillRect(x+w-r, y+r, r, h-2*r, col)

	p := col.Pack()

	// Corner spans: for an arc offset (adx, ady) connect the arc point
	// to the body edge on the matching row of each corner block.
	span := func(adx, ady int) {
		if ady >= r {
			return
		}
		// Rows measured from the outer edge; columns run from the arc
		// point inward to the edge shared with the body strips.
		c.hspan(x+r-adx, x+r-1, y+r-1-ady, p)     // top-left
		c.hspan(x+w-r, x+w-r-1+adx, y+r-1-ady, p) // top-right
		c.hspan(x+r-adx, x+r-1, y+h-r+ady, p)     // bottom-left
		c.hspan(x+w-r, x+w-r-1+adx, y+h-r+ady, p) // bottom-right
	}

	forEachArcStep(r, func(dx, dy int) {
		span(dx, dy)
		span(dy, dx)
	})
}

// OutlineRoundedRect draws a hard-edged one-pixel outline of a rounded
// rectangle onto the canvas: four straight edges inset by the radius,
// joined by midpoint-circle arcs plotted point by point.
//
// Clipping and radius clamping behave as in FillRoundedRect.
func OutlineRoundedRect(c *Canvas, x, y, w, h, radius int, col ARGB) {
	if w <= 0 || h <= 0 {
		return
	}
	r := clampRadius(radius, w, h)
	p := col.Pack()

	if r <= 0 {
		c.hspan(x, x+w-1, y, p)
		c.hspan(x, x+w-1, y+h-1, p)
		c.vspan(x, y+1, y+h-2, p)
		c.vspan(x+w-1, y+1, y+h-2, p)
		return
	}

	// Straight edges between the corner arcs.
	c.hspan(x+r, x+w-1-r, y, p)
	c.hspan(x+r, x+w-1-r, y+h-1, p)
	c.vspan(x, y+r, y+h-1-r, p)
	c.vspan(x+w-1, y+r, y+h-1-r, p)

	// Arc centers, one per corner.
	cx1, cx2 := x+r, x+w-1-r
	cy1, cy2 := y+r, y+h-1-r

	plot := func(adx, ady int) {
		c.SetPixel(cx1-adx, cy1-ady, p) // top-left
		c.SetPixel(cx2+adx, cy1-ady, p) // top-right
		c.SetPixel(cx1-adx, cy2+ady, p) // bottom-left
		c.SetPixel(cx2+adx, cy2+ady, p) // bottom-right
	}

	forEachArcStep(r, func(dx, dy int) {
		plot(dx, dy)
		plot(dy, dx)
	})
}

// forEachArcStep traces one octant of a circle of the given radius with
// the integer midpoint algorithm, invoking fn for each (dx, dy) arc
// offset with dx descending from radius and dy ascending until they
// cross. Mirroring the offsets yields the remaining octants.
func forEachArcStep(radius int, fn func(dx, dy int)) {
	dx := radius
	dy := 0
	err := 1 - radius

	for dy <= dx {
		fn(dx, dy)
		dy++
		if err < 0 {
			err += 2*dy + 1
		} else {
			dx--
			err += 2*(dy-dx) + 1
		}
	}
}
