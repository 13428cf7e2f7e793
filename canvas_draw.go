package sketch

// Shape helpers. Each one builds a Source and passes it to AddPath.

// Line draws a segment from (x0, y0) to (x1, y1).
func (c *Canvas) Line(x0, y0, x1, y1 float64) *Canvas {
	return c.AddPath(NewLine(x0, y0, x1, y1))
}

// Rect draws an axis-aligned rectangle with its top-left corner at (x, y).
func (c *Canvas) Rect(x, y, w, h float64) *Canvas {
	return c.AddPath(Rectangle{X: x, Y: y, W: w, H: h})
}

// RoundedRect draws a rectangle with corners rounded by radius r.
func (c *Canvas) RoundedRect(x, y, w, h, r float64) *Canvas {
	return c.AddPath(RoundedRectangle{X: x, Y: y, W: w, H: h, R: r})
}

// Circle draws a circle centered on (x, y).
func (c *Canvas) Circle(x, y, r float64) *Canvas {
	return c.AddPath(NewCircle(x, y, r))
}

// Ellipse draws an ellipse centered on (x, y), rotated by rot radians.
func (c *Canvas) Ellipse(x, y, rx, ry, rot float64) *Canvas {
	return c.AddPath(Ellipse{Center: Pt(x, y), Rx: rx, Ry: ry, Rotation: rot})
}

// Arc draws a circular arc from angle start spanning sweep radians.
func (c *Canvas) Arc(x, y, r, start, sweep float64) *Canvas {
	return c.AddPath(NewArc(x, y, r, start, sweep))
}

// Polyline draws an open or closed polyline through points.
func (c *Canvas) Polyline(points []Point, closed bool) *Canvas {
	return c.AddPath(Polyline{Points: points, Closed: closed})
}

// QuadBezier draws a quadratic Bezier curve.
func (c *Canvas) QuadBezier(x0, y0, cx, cy, x1, y1 float64) *Canvas {
	return c.AddPath(QuadBez{P0: Pt(x0, y0), P1: Pt(cx, cy), P2: Pt(x1, y1)})
}

// CubicBezier draws a cubic Bezier curve.
func (c *Canvas) CubicBezier(x0, y0, c1x, c1y, c2x, c2y, x1, y1 float64) *Canvas {
	return c.AddPath(CubicBez{P0: Pt(x0, y0), P1: Pt(c1x, c1y), P2: Pt(c2x, c2y), P3: Pt(x1, y1)})
}
