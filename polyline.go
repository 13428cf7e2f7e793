package sketch

// Polyline is an ordered list of vertices. A closed polyline has an implicit
// edge from its last vertex back to the first one; the first vertex is not
// repeated.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten implements Source. Polylines pass through unchanged.
func (pl Polyline) Flatten(float64) []Polyline {
	return []Polyline{pl.Clone()}
}

// Clone returns a deep copy of the polyline.
func (pl Polyline) Clone() Polyline {
	points := make([]Point, len(pl.Points))
	copy(points, pl.Points)
	return Polyline{Points: points, Closed: pl.Closed}
}

// Transform applies m to every vertex in place.
func (pl Polyline) Transform(m Matrix) {
	for i, p := range pl.Points {
		pl.Points[i] = m.TransformPoint(p)
	}
}

// Bounds returns the bounding box of the finite vertices.
func (pl Polyline) Bounds() (Rect, bool) {
	var b boundsBuilder
	for _, p := range pl.Points {
		b.add(p)
	}
	return b.rect, b.ok
}

// Length returns the length of the polyline, including the closing edge of
// a closed polyline.
func (pl Polyline) Length() float64 {
	var length float64
	for i := 1; i < len(pl.Points); i++ {
		length += pl.Points[i-1].Distance(pl.Points[i])
	}
	if pl.Closed && len(pl.Points) > 2 {
		length += pl.Points[len(pl.Points)-1].Distance(pl.Points[0])
	}
	return length
}

// Area returns the signed area of a closed polyline (shoelace formula).
// It is positive for clockwise vertices in y-down coordinates and zero for
// open polylines.
func (pl Polyline) Area() float64 {
	if !pl.Closed || len(pl.Points) < 3 {
		return 0
	}
	var area float64
	prev := pl.Points[len(pl.Points)-1]
	for _, p := range pl.Points {
		area += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return area / 2
}

// Polygon returns a closed polyline through the given points.
func Polygon(points ...Point) Polyline {
	return Polyline{Points: points, Closed: true}
}
