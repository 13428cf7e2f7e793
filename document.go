package sketch

import (
	"fmt"
	"sort"
)

// LayerID identifies a layer within a document.
type LayerID int

// Layer is an ordered group of paths. Paths are kept in insertion order,
// which is the painting order.
type Layer struct {
	ID    LayerID
	Name  string
	Paths []*Path
}

// DisplayName returns the layer name, or "Layer <id>" when it has none.
func (l *Layer) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("Layer %d", l.ID)
}

// SetName sets the layer name used by exporters.
func (l *Layer) SetName(name string) *Layer {
	l.Name = name
	return l
}

// Transform applies m to every path of the layer.
func (l *Layer) Transform(m Matrix) {
	for _, p := range l.Paths {
		p.Transform(m)
	}
}

// Bounds returns the bounding box of the layer's content.
func (l *Layer) Bounds() (Rect, bool) {
	var b boundsBuilder
	for _, p := range l.Paths {
		b.addRect(p.Bounds())
	}
	return b.rect, b.ok
}

// DocumentMetadata holds document-level attributes.
type DocumentMetadata struct {
	// PageSize is nil when no page size was configured.
	PageSize *PageSize
	Title    string
}

// Document is a set of layers keyed by LayerID plus document metadata.
// The Document owns all of its layers and paths.
//
// Document is NOT safe for concurrent use.
type Document struct {
	layers   map[LayerID]*Layer
	metadata DocumentMetadata
}

// NewDocument creates an empty document without layers.
func NewDocument() *Document {
	return &Document{layers: make(map[LayerID]*Layer)}
}

// Metadata returns a pointer to the document metadata for reading and
// updating.
func (d *Document) Metadata() *DocumentMetadata {
	return &d.metadata
}

// SetPageSize sets the document page size.
func (d *Document) SetPageSize(ps PageSize) {
	d.metadata.PageSize = &ps
}

// PageSize returns the document page size. ok is false when none was set.
func (d *Document) PageSize() (ps PageSize, ok bool) {
	if d.metadata.PageSize == nil {
		return PageSize{}, false
	}
	return *d.metadata.PageSize, true
}

// PageSizeOrDefault returns the page size, or DefaultPageSize() when unset.
func (d *Document) PageSizeOrDefault() PageSize {
	if ps, ok := d.PageSize(); ok {
		return ps
	}
	return DefaultPageSize()
}

// EnsureExists creates the layer id if it does not exist yet.
// Existing layers and their paths are left untouched.
func (d *Document) EnsureExists(id LayerID) *Layer {
	if d.layers == nil {
		d.layers = make(map[LayerID]*Layer)
	}
	if l, ok := d.layers[id]; ok {
		return l
	}
	l := &Layer{ID: id}
	d.layers[id] = l
	Logger().Debug("sketch: layer created", "layer", int(id))
	return l
}

// Layer returns the layer id, or nil if it does not exist.
func (d *Document) Layer(id LayerID) *Layer {
	return d.layers[id]
}

// Layers returns the layers in ascending ID order.
func (d *Document) Layers() []*Layer {
	layers := make([]*Layer, 0, len(d.layers))
	for _, l := range d.layers {
		layers = append(layers, l)
	}
	sort.Slice(layers, func(i, j int) bool { return layers[i].ID < layers[j].ID })
	return layers
}

// LayerCount returns the number of layers.
func (d *Document) LayerCount() int {
	return len(d.layers)
}

// PushPath appends p to layer id. The layer must exist (see EnsureExists);
// pushing to a missing layer creates it.
func (d *Document) PushPath(id LayerID, p *Path) {
	l := d.Layer(id)
	if l == nil {
		l = d.EnsureExists(id)
	}
	l.Paths = append(l.Paths, p)
}

// Transform applies m to every path of every layer.
func (d *Document) Transform(m Matrix) {
	for _, l := range d.layers {
		l.Transform(m)
	}
}

// Bounds returns the bounding box of all content across all layers.
// ok is false for a document without finite vertices.
func (d *Document) Bounds() (Rect, bool) {
	var b boundsBuilder
	for _, l := range d.layers {
		b.addRect(l.Bounds())
	}
	return b.rect, b.ok
}

// CenterContent translates all paths so the combined content is centered on
// the page (DefaultPageSize() when no page size is set). Empty documents are
// left unchanged.
func (d *Document) CenterContent() {
	bounds, ok := d.Bounds()
	if !ok {
		return
	}
	ps := d.PageSizeOrDefault()
	c := bounds.Center()
	d.Transform(Translate(ps.W/2-c.X, ps.H/2-c.Y))
}

// PathCount returns the number of paths across all layers.
func (d *Document) PathCount() int {
	n := 0
	for _, l := range d.layers {
		n += len(l.Paths)
	}
	return n
}

// PenDistance returns the total drawn length across all layers.
func (d *Document) PenDistance() float64 {
	var length float64
	for _, l := range d.layers {
		for _, p := range l.Paths {
			length += p.Length()
		}
	}
	return length
}

// VertexCount returns the number of vertices across all layers.
func (d *Document) VertexCount() int {
	n := 0
	for _, l := range d.layers {
		for _, p := range l.Paths {
			n += p.VertexCount()
		}
	}
	return n
}
