package sketch

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsEqual(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestSkewFormula(t *testing.T) {
	tests := []struct {
		name   string
		kx, ky float64
	}{
		{"zero", 0, 0},
		{"x only", 0.3, 0},
		{"y only", 0, -0.4},
		{"both", math.Pi / 6, math.Pi / 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Skew(tt.kx, tt.ky)
			if got, want := m.TransformPoint(Pt(1, 0)), Pt(1, math.Tan(tt.kx)); !pointsEqual(got, want, epsilon) {
				t.Errorf("Skew(%v, %v) * (1, 0) = %v, want %v", tt.kx, tt.ky, got, want)
			}
			if got, want := m.TransformPoint(Pt(0, 1)), Pt(math.Tan(tt.ky), 1); !pointsEqual(got, want, epsilon) {
				t.Errorf("Skew(%v, %v) * (0, 1) = %v, want %v", tt.kx, tt.ky, got, want)
			}
			if m.C != 0 || m.F != 0 {
				t.Errorf("Skew(%v, %v) has translation (%v, %v)", tt.kx, tt.ky, m.C, m.F)
			}
		})
	}
}

func TestAroundInvariance(t *testing.T) {
	center := Pt(37.5, -12.25)
	for _, theta := range []float64{0, 0.1, math.Pi / 3, math.Pi, -2.5, 7} {
		for name, m := range map[string]Matrix{
			"rotate": RotateAround(theta, center.X, center.Y),
			"scale":  ScaleAround(theta, theta+1, center.X, center.Y),
			"skew":   SkewAround(theta/10, -theta/10, center.X, center.Y),
		} {
			if got := m.TransformPoint(center); !pointsEqual(got, center, 1e-9) {
				t.Errorf("%s around %v (theta=%v) moved center to %v", name, center, theta, got)
			}
		}
	}
}

func TestMultiplyOrder(t *testing.T) {
	p := Pt(1, 0)

	// Translate * Scale: scale first, then translate.
	got := Translate(10, 0).Multiply(Scale(2)).TransformPoint(p)
	if want := Pt(12, 0); !pointsEqual(got, want, epsilon) {
		t.Errorf("Translate*Scale = %v, want %v", got, want)
	}

	// Scale * Translate: translate first, then scale.
	got = Scale(2).Multiply(Translate(10, 0)).TransformPoint(p)
	if want := Pt(22, 0); !pointsEqual(got, want, epsilon) {
		t.Errorf("Scale*Translate = %v, want %v", got, want)
	}
}

func TestMultiplyIdentity(t *testing.T) {
	m := Translate(3, 4).Multiply(Rotate(0.7)).Multiply(ScaleNonUniform(2, -1))
	if got := m.Multiply(Identity()); got != m {
		t.Errorf("m * I = %+v, want %+v", got, m)
	}
	if got := Identity().Multiply(m); got != m {
		t.Errorf("I * m = %+v, want %+v", got, m)
	}
}

func TestMultiplyAssociative(t *testing.T) {
	a := Translate(5, -3)
	b := Rotate(0.3)
	c := Skew(0.1, 0.2)
	left := a.Multiply(b).Multiply(c)
	right := a.Multiply(b.Multiply(c))
	p := Pt(7, 11)
	if !pointsEqual(left.TransformPoint(p), right.TransformPoint(p), 1e-9) {
		t.Errorf("(ab)c != a(bc): %v vs %v", left.TransformPoint(p), right.TransformPoint(p))
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(math.Pi / 2).TransformPoint(Pt(1, 0))
	if want := Pt(0, 1); !pointsEqual(got, want, epsilon) {
		t.Errorf("Rotate(pi/2) * (1, 0) = %v, want %v", got, want)
	}
}

func TestInvert(t *testing.T) {
	m := Translate(10, 20).Multiply(Rotate(0.5)).Multiply(ScaleNonUniform(2, 3))
	p := Pt(-4, 9)
	if got := m.Invert().TransformPoint(m.TransformPoint(p)); !pointsEqual(got, p, 1e-9) {
		t.Errorf("Invert round trip = %v, want %v", got, p)
	}
	if got := Scale(0).Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert() = %+v, want identity", got)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > epsilon {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
}
