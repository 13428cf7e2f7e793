package sketch

import "math"

// DefaultTolerance is the flattening tolerance used when none is configured.
const DefaultTolerance = 0.01

// maxSubdivisionDepth bounds recursive curve subdivision. A curve reaching
// it is emitted as-is, which keeps absurd input (huge coordinates with a tiny
// tolerance) from blowing up.
const maxSubdivisionDepth = 16

// maxArcSegments bounds the polygon used for one turn of a circle or arc.
const maxArcSegments = 1 << 16

// maxArcTotalSegments bounds arcs sweeping many turns. Each turn gets its
// own budget up to this total.
const maxArcTotalSegments = 1 << 22

// Source is any geometry that can be flattened into polylines.
//
// Flatten must return polylines whose vertices lie within tolerance of the
// true geometry. Sources that are already polylines return them unchanged.
// Degenerate input (zero length, NaN, infinities) must not panic; it yields
// empty or single-point polylines.
type Source interface {
	Flatten(tolerance float64) []Polyline
}

// normalizeTolerance replaces non-positive or NaN tolerances with
// DefaultTolerance.
func normalizeTolerance(tolerance float64) float64 {
	if !(tolerance > 0) || math.IsInf(tolerance, 0) {
		return DefaultTolerance
	}
	return tolerance
}

// flattenQuad appends the flattened quadratic curve (excluding p0) to dst.
func flattenQuad(dst []Point, p0, p1, p2 Point, tolerance float64) []Point {
	if !p0.IsFinite() || !p1.IsFinite() || !p2.IsFinite() {
		return append(dst, p2)
	}
	return flattenQuadRec(dst, p0, p1, p2, tolerance, 0)
}

func flattenQuadRec(dst []Point, p0, p1, p2 Point, tolerance float64, depth int) []Point {
	// The curve lies in the convex hull of its control points, so the
	// control point distance to the chord bounds the deviation.
	if depth >= maxSubdivisionDepth || distanceToSegment(p1, p0, p2) <= tolerance {
		return append(dst, p2)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)

	dst = flattenQuadRec(dst, p0, q0, mid, tolerance, depth+1)
	return flattenQuadRec(dst, mid, q1, p2, tolerance, depth+1)
}

// flattenCubic appends the flattened cubic curve (excluding p0) to dst.
func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	if !p0.IsFinite() || !p1.IsFinite() || !p2.IsFinite() || !p3.IsFinite() {
		return append(dst, p3)
	}
	return flattenCubicRec(dst, p0, p1, p2, p3, tolerance, 0)
}

func flattenCubicRec(dst []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	d := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxSubdivisionDepth || d <= tolerance {
		return append(dst, p3)
	}

	// de Casteljau split at t=0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	dst = flattenCubicRec(dst, p0, q0, r0, s, tolerance, depth+1)
	return flattenCubicRec(dst, s, r1, q2, p3, tolerance, depth+1)
}

// circleSegments returns the number of chords needed for a full turn of a
// circle of the given radius to stay within tolerance:
//
//	radius * (1 - cos(pi/n)) <= tolerance
func circleSegments(radius, tolerance float64) int {
	const minSegments = 4
	if !(radius > 0) || math.IsInf(radius, 0) {
		return minSegments
	}
	ratio := tolerance / radius
	if ratio >= 1 {
		return minSegments
	}
	n := math.Ceil(math.Pi / math.Acos(1-ratio))
	switch {
	case n < minSegments:
		return minSegments
	case n > maxArcSegments:
		return maxArcSegments
	}
	return int(n)
}

// ellipsePoints samples an elliptical arc with uniformly spaced parameter
// values. The chord error is bounded by the largest radius, so the segment
// count per turn is derived from it. The end angle is included.
func ellipsePoints(c Point, rx, ry, rotation, start, sweep, tolerance float64) []Point {
	rx, ry = math.Abs(rx), math.Abs(ry)
	full := circleSegments(math.Max(rx, ry), tolerance)
	n := 1
	if turns := math.Abs(sweep) / (2 * math.Pi); turns > 0 && !math.IsInf(turns, 0) {
		n = int(math.Min(math.Ceil(turns*float64(full)), maxArcTotalSegments))
	}

	m := Translate(c.X, c.Y).Multiply(Rotate(rotation))
	points := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(start + sweep*float64(i)/float64(n))
		points = append(points, m.TransformPoint(Pt(rx*cos, ry*sin)))
	}
	return points
}
