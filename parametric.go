package sketch

import "math"

// minParametricDepth forces a few uniform subdivisions before the flatness
// test is trusted, so that features narrower than the initial chord are not
// skipped.
const minParametricDepth = 4

// Parametric is a curve defined by a function of t over [T0, T1].
// Flattening bisects the parameter range until the curve midpoint of every
// interval lies within tolerance of its chord.
type Parametric struct {
	F      func(t float64) Point
	T0, T1 float64
	Closed bool
}

// NewParametric creates a parametric curve over [t0, t1].
func NewParametric(f func(t float64) Point, t0, t1 float64) Parametric {
	return Parametric{F: f, T0: t0, T1: t1}
}

// Flatten implements Source. A nil function yields no polyline.
func (c Parametric) Flatten(tolerance float64) []Polyline {
	if c.F == nil {
		return nil
	}
	tolerance = normalizeTolerance(tolerance)

	p0 := c.F(c.T0)
	points := []Point{p0}
	if c.T0 != c.T1 && !math.IsNaN(c.T0) && !math.IsNaN(c.T1) {
		points = c.flattenRec(points, c.T0, c.T1, p0, c.F(c.T1), tolerance, 0)
	}
	if c.Closed && len(points) > 1 && points[len(points)-1] == points[0] {
		points = points[:len(points)-1]
	}
	return []Polyline{{Points: points, Closed: c.Closed}}
}

func (c Parametric) flattenRec(dst []Point, t0, t1 float64, p0, p1 Point, tolerance float64, depth int) []Point {
	if depth >= maxSubdivisionDepth || !p0.IsFinite() || !p1.IsFinite() {
		return append(dst, p1)
	}

	tm := (t0 + t1) / 2
	pm := c.F(tm)
	if depth >= minParametricDepth && distanceToSegment(pm, p0, p1) <= tolerance {
		return append(dst, p1)
	}

	dst = c.flattenRec(dst, t0, tm, p0, pm, tolerance, depth+1)
	return c.flattenRec(dst, tm, t1, pm, p1, tolerance, depth+1)
}
