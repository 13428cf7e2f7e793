package sketch

// DefaultStrokeWidth is the stroke width of paths drawn without an explicit
// one, in document units.
const DefaultStrokeWidth = 1.0

// PathMetadata holds the rendering attributes captured with a path.
type PathMetadata struct {
	Color       Color
	StrokeWidth float64
}

// DefaultPathMetadata returns black strokes of DefaultStrokeWidth.
func DefaultPathMetadata() PathMetadata {
	return PathMetadata{Color: Black, StrokeWidth: DefaultStrokeWidth}
}

// Path is a flattened piece of geometry tagged with a snapshot of the
// metadata in effect when it was drawn.
type Path struct {
	Polylines []Polyline
	Metadata  PathMetadata
}

// NewPath flattens src within tolerance and tags it with meta.
func NewPath(src Source, tolerance float64, meta PathMetadata) *Path {
	var polylines []Polyline
	if src != nil {
		polylines = src.Flatten(normalizeTolerance(tolerance))
	}
	return &Path{Polylines: polylines, Metadata: meta}
}

// Transform applies m to every vertex of the path.
func (p *Path) Transform(m Matrix) {
	for _, pl := range p.Polylines {
		pl.Transform(m)
	}
}

// Translate moves the path by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	p.Transform(Translate(dx, dy))
	return p
}

// Scale scales the path by s around the origin.
func (p *Path) Scale(s float64) *Path {
	p.Transform(Scale(s))
	return p
}

// Rotate rotates the path by theta radians around the origin.
func (p *Path) Rotate(theta float64) *Path {
	p.Transform(Rotate(theta))
	return p
}

// Bounds returns the bounding box of the path's finite vertices.
// ok is false for a path without any finite vertex.
func (p *Path) Bounds() (r Rect, ok bool) {
	var b boundsBuilder
	for _, pl := range p.Polylines {
		b.addRect(pl.Bounds())
	}
	return b.rect, b.ok
}

// VertexCount returns the total number of vertices.
func (p *Path) VertexCount() int {
	n := 0
	for _, pl := range p.Polylines {
		n += len(pl.Points)
	}
	return n
}

// Length returns the total length of the path's polylines, which is the
// distance a pen travels while drawing it.
func (p *Path) Length() float64 {
	var length float64
	for _, pl := range p.Polylines {
		length += pl.Length()
	}
	return length
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	polylines := make([]Polyline, len(p.Polylines))
	for i, pl := range p.Polylines {
		polylines[i] = pl.Clone()
	}
	return &Path{Polylines: polylines, Metadata: p.Metadata}
}
