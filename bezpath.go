package sketch

// PathElement represents a single element in a BezPath.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// BezPath is a sequence of Bezier path elements, possibly made of several
// subpaths. It is the general-purpose Source for free-form geometry.
type BezPath struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewBezPath creates a new empty path.
func NewBezPath() *BezPath {
	return &BezPath{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *BezPath) MoveTo(x, y float64) *BezPath {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	return p
}

// LineTo draws a line to (x, y).
// Without a current point it behaves like MoveTo.
func (p *BezPath) LineTo(x, y float64) *BezPath {
	if len(p.elements) == 0 {
		return p.MoveTo(x, y)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	return p
}

// QuadTo draws a quadratic Bezier curve.
func (p *BezPath) QuadTo(cx, cy, x, y float64) *BezPath {
	if len(p.elements) == 0 {
		p.MoveTo(cx, cy)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
	return p
}

// CubicTo draws a cubic Bezier curve.
func (p *BezPath) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *BezPath {
	if len(p.elements) == 0 {
		p.MoveTo(c1x, c1y)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
	return p
}

// Close closes the current subpath.
func (p *BezPath) Close() *BezPath {
	p.elements = append(p.elements, Close{})
	p.current = p.start
	return p
}

// Elements returns the path elements.
func (p *BezPath) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *BezPath) CurrentPoint() Point {
	return p.current
}

// Flatten implements Source. Each subpath becomes one polyline; a Close
// marks it closed and drops a final vertex equal to the subpath start.
// Subpaths without a drawing element are dropped.
func (p *BezPath) Flatten(tolerance float64) []Polyline {
	tolerance = normalizeTolerance(tolerance)

	var (
		result  []Polyline
		points  []Point
		current Point
	)
	flush := func(closed bool) {
		if len(points) < 2 {
			// a lone MoveTo draws nothing
			points = nil
			return
		}
		if closed && len(points) > 1 && points[len(points)-1] == points[0] {
			points = points[:len(points)-1]
		}
		result = append(result, Polyline{Points: points, Closed: closed})
		points = nil
	}

	for _, elem := range p.elements {
		switch elem.(type) {
		case MoveTo, Close:
		default:
			if len(points) == 0 {
				// drawing after Close continues from the subpath start
				points = append(points, current)
			}
		}
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			current = e.Point
			points = append(points, current)
		case LineTo:
			current = e.Point
			points = append(points, current)
		case QuadTo:
			points = flattenQuad(points, current, e.Control, e.Point, tolerance)
			current = e.Point
		case CubicTo:
			points = flattenCubic(points, current, e.Control1, e.Control2, e.Point, tolerance)
			current = e.Point
		case Close:
			if len(points) > 0 {
				current = points[0]
			}
			flush(true)
		}
	}
	flush(false)

	return result
}
