package sketch

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Matrix is a value type; every operation returns a new matrix.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(dx, dy float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: dx,
		D: 0, E: 1, F: dy,
	}
}

// Scale creates a uniform scaling matrix.
func Scale(s float64) Matrix {
	return ScaleNonUniform(s, s)
}

// ScaleNonUniform creates a scaling matrix with independent x and y factors.
func ScaleNonUniform(sx, sy float64) Matrix {
	return Matrix{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Skew creates a skew matrix from two angles in radians:
//
//	| 1        tan(ky)  0 |
//	| tan(kx)  1        0 |
//
// so that (1, 0) maps to (1, tan(kx)) and (0, 1) maps to (tan(ky), 1).
func Skew(kx, ky float64) Matrix {
	return Matrix{
		A: 1, B: math.Tan(ky), C: 0,
		D: math.Tan(kx), E: 1, F: 0,
	}
}

// around conjugates m with a translation so that (cx, cy) is a fixed point.
func around(m Matrix, cx, cy float64) Matrix {
	return Translate(cx, cy).Multiply(m).Multiply(Translate(-cx, -cy))
}

// ScaleAround creates a scaling matrix centered on (cx, cy).
func ScaleAround(sx, sy, cx, cy float64) Matrix {
	return around(ScaleNonUniform(sx, sy), cx, cy)
}

// RotateAround creates a rotation matrix (radians) centered on (cx, cy).
func RotateAround(theta, cx, cy float64) Matrix {
	return around(Rotate(theta), cx, cy)
}

// SkewAround creates a skew matrix (radians) centered on (cx, cy).
func SkewAround(kx, ky, cx, cy float64) Matrix {
	return around(Skew(kx, ky), cx, cy)
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Apply applies the transformation to the coordinates (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	p := m.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
