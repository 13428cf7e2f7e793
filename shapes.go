package sketch

import "math"

// Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// NewLine creates a new line segment.
func NewLine(x0, y0, x1, y1 float64) Line {
	return Line{P0: Pt(x0, y0), P1: Pt(x1, y1)}
}

// Flatten implements Source.
func (l Line) Flatten(float64) []Polyline {
	return []Polyline{{Points: []Point{l.P0, l.P1}}}
}

// Rectangle is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rectangle struct {
	X, Y, W, H float64
}

// Flatten implements Source. The vertices are emitted clockwise in screen
// coordinates starting at the top-left corner.
func (r Rectangle) Flatten(float64) []Polyline {
	return []Polyline{Polygon(
		Pt(r.X, r.Y),
		Pt(r.X+r.W, r.Y),
		Pt(r.X+r.W, r.Y+r.H),
		Pt(r.X, r.Y+r.H),
	)}
}

// RoundedRectangle is a rectangle whose corners are quarter circles of
// radius R. R is clamped to half of the smaller side.
type RoundedRectangle struct {
	X, Y, W, H, R float64
}

// Flatten implements Source.
func (r RoundedRectangle) Flatten(tolerance float64) []Polyline {
	radius := math.Min(r.R, math.Min(math.Abs(r.W), math.Abs(r.H))/2)
	if !(radius > 0) {
		return Rectangle{X: r.X, Y: r.Y, W: r.W, H: r.H}.Flatten(tolerance)
	}
	tolerance = normalizeTolerance(tolerance)

	corners := [...]struct {
		c     Point
		start float64
	}{
		{Pt(r.X+r.W-radius, r.Y+radius), -math.Pi / 2},
		{Pt(r.X+r.W-radius, r.Y+r.H-radius), 0},
		{Pt(r.X+radius, r.Y+r.H-radius), math.Pi / 2},
		{Pt(r.X+radius, r.Y+radius), math.Pi},
	}
	var points []Point
	for _, corner := range corners {
		points = append(points, ellipsePoints(corner.c, radius, radius, 0, corner.start, math.Pi/2, tolerance)...)
	}
	return []Polyline{Polygon(points...)}
}

// Circle is a full circle.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle creates a circle centered on (cx, cy).
func NewCircle(cx, cy, r float64) Circle {
	return Circle{Center: Pt(cx, cy), Radius: r}
}

// Flatten implements Source. A zero radius yields a single point.
func (c Circle) Flatten(tolerance float64) []Polyline {
	return Ellipse{Center: c.Center, Rx: c.Radius, Ry: c.Radius}.Flatten(tolerance)
}

// Ellipse is a full ellipse with radii Rx and Ry, rotated by Rotation
// radians around its center.
type Ellipse struct {
	Center   Point
	Rx, Ry   float64
	Rotation float64
}

// Flatten implements Source.
func (e Ellipse) Flatten(tolerance float64) []Polyline {
	if e.Rx == 0 && e.Ry == 0 {
		return []Polyline{{Points: []Point{e.Center}}}
	}
	points := ellipsePoints(e.Center, e.Rx, e.Ry, e.Rotation, 0, 2*math.Pi, normalizeTolerance(tolerance))
	// the last sample duplicates the first one
	return []Polyline{Polygon(points[:len(points)-1]...)}
}

// Arc is an open elliptical arc starting at angle Start and spanning Sweep
// radians (negative sweeps run backwards).
type Arc struct {
	Center       Point
	Rx, Ry       float64
	Rotation     float64
	Start, Sweep float64
}

// NewArc creates a circular arc.
func NewArc(cx, cy, r, start, sweep float64) Arc {
	return Arc{Center: Pt(cx, cy), Rx: r, Ry: r, Start: start, Sweep: sweep}
}

// Flatten implements Source.
func (a Arc) Flatten(tolerance float64) []Polyline {
	points := ellipsePoints(a.Center, a.Rx, a.Ry, a.Rotation, a.Start, a.Sweep, normalizeTolerance(tolerance))
	return []Polyline{{Points: points}}
}

// RegularPolygon is a regular polygon inscribed in a circle, with its first
// vertex at the top.
type RegularPolygon struct {
	Center Point
	Radius float64
	Sides  int
}

// Flatten implements Source. Fewer than 3 sides yield no polyline.
func (r RegularPolygon) Flatten(float64) []Polyline {
	if r.Sides < 3 {
		return nil
	}
	return []Polyline{Polygon(starPoints(r.Center, r.Radius, r.Radius, r.Sides, 1)...)}
}

// Star is a star with Points tips on the outer radius and the notches
// between them on the inner radius. The first tip is at the top.
type Star struct {
	Center       Point
	Outer, Inner float64
	Points       int
}

// Flatten implements Source. Fewer than 3 tips yield no polyline.
func (s Star) Flatten(float64) []Polyline {
	if s.Points < 3 {
		return nil
	}
	return []Polyline{Polygon(starPoints(s.Center, s.Outer, s.Inner, s.Points, 2)...)}
}

// starPoints returns n*perTip vertices alternating between the outer and
// inner radius, starting at the top.
func starPoints(c Point, outer, inner float64, n, perTip int) []Point {
	count := n * perTip
	step := 2 * math.Pi / float64(count)
	points := make([]Point, count)
	for i := range points {
		r := outer
		if i%2 == 1 && perTip == 2 {
			r = inner
		}
		sin, cos := math.Sincos(-math.Pi/2 + float64(i)*step)
		points[i] = Pt(c.X+r*cos, c.Y+r*sin)
	}
	return points
}
