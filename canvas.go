package sketch

// Canvas is the drawing surface of a sketch. It combines a transform stack,
// the current path metadata and a target layer, and routes every drawn shape
// into its Document.
//
// Every shape enters the document through AddPath: it is flattened at the
// canvas tolerance, tagged with a copy of the current metadata, transformed
// by the top of the matrix stack and appended to the target layer.
//
// Canvas is NOT safe for concurrent use. Concurrent drawing would need a
// single lock around AddPath to keep flatten, transform and insert atomic.
type Canvas struct {
	document    *Document
	stack       *TransformStack
	targetLayer LayerID
	tolerance   float64
	metadata    PathMetadata
}

// NewCanvas creates a canvas drawing into a new document, or into the one
// given with WithDocument. Layer 0 always exists and is the initial target.
func NewCanvas(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	doc := o.document
	if doc == nil {
		doc = NewDocument()
	}
	if o.pageSize != nil {
		doc.SetPageSize(*o.pageSize)
	}
	doc.EnsureExists(0)

	return &Canvas{
		document:  doc,
		stack:     NewTransformStack(),
		tolerance: o.tolerance,
		metadata:  o.metadata,
	}
}

// SetLayer switches the target layer, creating it if needed.
func (c *Canvas) SetLayer(id LayerID) *Canvas {
	if c.released("SetLayer") {
		return c
	}
	c.document.EnsureExists(id)
	c.targetLayer = id
	return c
}

// Layer returns the current target layer ID.
func (c *Canvas) Layer() LayerID {
	return c.targetLayer
}

// Color sets the stroke color of subsequently drawn paths.
func (c *Canvas) Color(col Color) *Canvas {
	c.metadata.Color = col
	return c
}

// StrokeWidth sets the stroke width of subsequently drawn paths.
func (c *Canvas) StrokeWidth(w float64) *Canvas {
	c.metadata.StrokeWidth = w
	return c
}

// PathMetadata returns the metadata that the next path will capture.
func (c *Canvas) PathMetadata() PathMetadata {
	return c.metadata
}

// SetTolerance sets the default flattening tolerance.
// Non-positive values select DefaultTolerance.
func (c *Canvas) SetTolerance(tolerance float64) *Canvas {
	c.tolerance = normalizeTolerance(tolerance)
	return c
}

// Tolerance returns the default flattening tolerance.
func (c *Canvas) Tolerance() float64 {
	return c.tolerance
}

// SetPageSize sets the page size of the document.
func (c *Canvas) SetPageSize(ps PageSize) *Canvas {
	if c.released("SetPageSize") {
		return c
	}
	c.document.SetPageSize(ps)
	return c
}

// Width returns the page width, or DefaultPageSize().W when unset.
func (c *Canvas) Width() float64 {
	return c.pageSize().W
}

// Height returns the page height, or DefaultPageSize().H when unset.
func (c *Canvas) Height() float64 {
	return c.pageSize().H
}

func (c *Canvas) pageSize() PageSize {
	if c.document == nil {
		return DefaultPageSize()
	}
	return c.document.PageSizeOrDefault()
}

// AddPath flattens src at the canvas tolerance and adds it to the target
// layer.
func (c *Canvas) AddPath(src Source) *Canvas {
	return c.AddPathTolerance(src, c.tolerance)
}

// AddPathTolerance is like AddPath with an explicit flattening tolerance.
func (c *Canvas) AddPathTolerance(src Source, tolerance float64) *Canvas {
	if c.released("AddPath") {
		return c
	}
	m, err := c.stack.Current()
	if err != nil {
		Logger().Warn("sketch: AddPath skipped", "err", err)
		return c
	}

	p := NewPath(src, tolerance, c.metadata)
	p.Transform(m)
	c.document.PushPath(c.targetLayer, p)
	return c
}

// Center translates the whole document content to the page center.
func (c *Canvas) Center() *Canvas {
	if c.released("Center") {
		return c
	}
	c.document.CenterContent()
	return c
}

// Document returns the document being drawn. It may be changed directly,
// for example to name layers, until Finish; it returns nil afterwards.
func (c *Canvas) Document() *Document {
	return c.document
}

// Finish hands the document over to the caller. The canvas no longer
// references it; later drawing calls are logged no-ops.
func (c *Canvas) Finish() *Document {
	d := c.document
	c.document = nil
	return d
}

// released reports (and logs) drawing after Finish.
func (c *Canvas) released(op string) bool {
	if c.document != nil {
		return false
	}
	Logger().Warn("sketch: "+op+" ignored", "err", ErrDocumentReleased)
	return true
}
