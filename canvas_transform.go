package sketch

// Transformer is implemented by everything an affine transform can be
// applied to: a Canvas (which composes it onto its current frame) and the
// geometry containers Path, Layer and Document (which transform vertices).
type Transformer interface {
	Transform(m Matrix)
}

var (
	_ Transformer = (*Canvas)(nil)
	_ Transformer = (*Path)(nil)
	_ Transformer = (*Layer)(nil)
	_ Transformer = (*Document)(nil)
)

// Transform composes m onto the current frame: it acts in the local
// coordinate system established by earlier transforms.
func (c *Canvas) Transform(m Matrix) {
	if err := c.stack.Apply(m); err != nil {
		Logger().Warn("sketch: transform skipped", "err", err)
	}
}

// Matrix returns the current transform.
func (c *Canvas) Matrix() Matrix {
	m, _ := c.stack.Current()
	return m
}

// MatrixDepth returns the number of frames on the matrix stack.
func (c *Canvas) MatrixDepth() int {
	return c.stack.Len()
}

// PushMatrix pushes a copy of the current matrix. Use it before temporary
// transforms that PopMatrix will revert.
func (c *Canvas) PushMatrix() *Canvas {
	c.stack.PushCopy()
	return c
}

// PushMatrixReset pushes the identity matrix, temporarily discarding the
// accumulated transform until the matching PopMatrix.
func (c *Canvas) PushMatrixReset() *Canvas {
	c.stack.PushIdentity()
	return c
}

// PopMatrix restores the previously pushed matrix. Popping the base frame
// logs a warning and leaves the stack unchanged.
func (c *Canvas) PopMatrix() *Canvas {
	if err := c.stack.Pop(); err != nil {
		Logger().Warn("sketch: PopMatrix ignored", "err", err)
	}
	return c
}

// PushMatrixAnd pushes the current matrix, calls f and pops the matrix,
// even if f panics. Unbalanced pushes made by f are not undone.
func (c *Canvas) PushMatrixAnd(f func(*Canvas)) *Canvas {
	c.PushMatrix()
	defer c.PopMatrix()
	f(c)
	return c
}

// Translate moves the origin of the current frame by (dx, dy).
func (c *Canvas) Translate(dx, dy float64) *Canvas {
	c.Transform(Translate(dx, dy))
	return c
}

// Scale scales the current frame uniformly around its origin.
func (c *Canvas) Scale(s float64) *Canvas {
	c.Transform(Scale(s))
	return c
}

// ScaleNonUniform scales the current frame by sx and sy around its origin.
func (c *Canvas) ScaleNonUniform(sx, sy float64) *Canvas {
	c.Transform(ScaleNonUniform(sx, sy))
	return c
}

// ScaleAround scales the current frame by sx and sy around (cx, cy).
func (c *Canvas) ScaleAround(sx, sy, cx, cy float64) *Canvas {
	c.Transform(ScaleAround(sx, sy, cx, cy))
	return c
}

// Rotate rotates the current frame by theta radians around its origin.
func (c *Canvas) Rotate(theta float64) *Canvas {
	c.Transform(Rotate(theta))
	return c
}

// RotateDeg rotates the current frame by theta degrees around its origin.
func (c *Canvas) RotateDeg(theta float64) *Canvas {
	return c.Rotate(Radians(theta))
}

// RotateAround rotates the current frame by theta radians around (cx, cy).
func (c *Canvas) RotateAround(theta, cx, cy float64) *Canvas {
	c.Transform(RotateAround(theta, cx, cy))
	return c
}

// RotateAroundDeg rotates the current frame by theta degrees around (cx, cy).
func (c *Canvas) RotateAroundDeg(theta, cx, cy float64) *Canvas {
	return c.RotateAround(Radians(theta), cx, cy)
}

// Skew skews the current frame by kx and ky radians around its origin.
func (c *Canvas) Skew(kx, ky float64) *Canvas {
	c.Transform(Skew(kx, ky))
	return c
}

// SkewAround skews the current frame by kx and ky radians around (cx, cy).
func (c *Canvas) SkewAround(kx, ky, cx, cy float64) *Canvas {
	c.Transform(SkewAround(kx, ky, cx, cy))
	return c
}
