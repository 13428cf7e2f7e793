package sketch

// Option configures a Canvas during creation.
//
// Example:
//
//	c := sketch.NewCanvas(
//	    sketch.WithPageSize(sketch.A5H),
//	    sketch.WithTolerance(0.05),
//	)
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	document  *Document
	pageSize  *PageSize
	tolerance float64
	metadata  PathMetadata
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		tolerance: DefaultTolerance,
		metadata:  DefaultPathMetadata(),
	}
}

// WithDocument draws into an existing document instead of a new one.
func WithDocument(d *Document) Option {
	return func(o *options) {
		o.document = d
	}
}

// WithPageSize sets the page size of the canvas document.
func WithPageSize(ps PageSize) Option {
	return func(o *options) {
		o.pageSize = &ps
	}
}

// WithTolerance sets the default flattening tolerance.
// Non-positive values select DefaultTolerance.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		o.tolerance = normalizeTolerance(tolerance)
	}
}

// WithPathMetadata sets the initial color and stroke width.
func WithPathMetadata(meta PathMetadata) Option {
	return func(o *options) {
		o.metadata = meta
	}
}
