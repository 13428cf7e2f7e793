package sketch

// Curve types for 2D geometry operations.

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Flatten implements Source.
func (q QuadBez) Flatten(tolerance float64) []Polyline {
	points := flattenQuad([]Point{q.P0}, q.P0, q.P1, q.P2, normalizeTolerance(tolerance))
	return []Polyline{{Points: points}}
}

// CubicBez represents a cubic Bezier curve.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	t2 := t * t
	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt2*mt*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t2*t*c.P3.X,
		Y: mt2*mt*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t2*t*c.P3.Y,
	}
}

// Flatten implements Source.
func (c CubicBez) Flatten(tolerance float64) []Polyline {
	points := flattenCubic([]Point{c.P0}, c.P0, c.P1, c.P2, c.P3, normalizeTolerance(tolerance))
	return []Polyline{{Points: points}}
}
