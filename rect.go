package sketch

import "math"

// Rect represents an axis-aligned bounding box.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// boundsBuilder accumulates a bounding box over a stream of points.
type boundsBuilder struct {
	rect Rect
	ok   bool
}

func (b *boundsBuilder) add(p Point) {
	if !p.IsFinite() {
		return
	}
	if !b.ok {
		b.rect = Rect{Min: p, Max: p}
		b.ok = true
		return
	}
	b.rect = b.rect.Extend(p)
}

func (b *boundsBuilder) addRect(r Rect, ok bool) {
	if !ok {
		return
	}
	b.add(r.Min)
	b.add(r.Max)
}
