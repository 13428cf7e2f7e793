package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/sketch"
)

const (
	svgNamespace      = "http://www.w3.org/2000/svg"
	inkscapeNamespace = "http://www.inkscape.org/namespaces/inkscape"

	// svgPrecision is the number of decimals written for coordinates.
	svgPrecision = 4
)

func init() {
	Register("svg", func() Writer { return SVGWriter{} })
}

// SVGWriter writes documents as SVG. Every layer becomes an Inkscape layer
// group and every polyline a stroked <polyline> or <polygon> element.
type SVGWriter struct {
	// Compact disables indentation.
	Compact bool
}

// Write implements Writer.
func (s SVGWriter) Write(w io.Writer, doc *sketch.Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	if !s.Compact {
		enc.Indent("", "  ")
	}

	ps := doc.PageSizeOrDefault()
	root := xml.StartElement{Name: xml.Name{Local: "svg"}}
	addAttr(&root.Attr, "xmlns", svgNamespace)
	addAttr(&root.Attr, "xmlns:inkscape", inkscapeNamespace)
	addAttr(&root.Attr, "width", formatFloat(ps.W))
	addAttr(&root.Attr, "height", formatFloat(ps.H))
	addAttr(&root.Attr, "viewBox", "0 0 "+formatFloat(ps.W)+" "+formatFloat(ps.H))
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	if title := doc.Metadata().Title; title != "" {
		if err := enc.EncodeElement(title, xml.StartElement{Name: xml.Name{Local: "title"}}); err != nil {
			return err
		}
	}

	for _, l := range doc.Layers() {
		if err := writeSVGLayer(enc, l); err != nil {
			return fmt.Errorf("layer %d: %w", l.ID, err)
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func writeSVGLayer(enc *xml.Encoder, l *sketch.Layer) error {
	g := xml.StartElement{Name: xml.Name{Local: "g"}}
	addAttr(&g.Attr, "id", fmt.Sprintf("layer%d", l.ID))
	addAttr(&g.Attr, "inkscape:groupmode", "layer")
	addAttr(&g.Attr, "inkscape:label", l.DisplayName())
	addAttr(&g.Attr, "fill", "none")
	addAttr(&g.Attr, "stroke-linecap", "round")
	addAttr(&g.Attr, "stroke-linejoin", "round")
	if err := enc.EncodeToken(g); err != nil {
		return err
	}

	for _, p := range l.Paths {
		for _, pl := range p.Polylines {
			el, ok := svgPolyline(pl, p.Metadata)
			if !ok {
				continue
			}
			if err := enc.EncodeToken(el); err != nil {
				return err
			}
			if err := enc.EncodeToken(el.End()); err != nil {
				return err
			}
		}
	}
	return enc.EncodeToken(g.End())
}

// svgPolyline builds the element for one polyline. Non-finite vertices are
// dropped; ok is false when nothing is left to draw.
func svgPolyline(pl sketch.Polyline, meta sketch.PathMetadata) (el xml.StartElement, ok bool) {
	var sb strings.Builder
	n := 0
	for _, p := range pl.Points {
		if !p.IsFinite() {
			continue
		}
		if n > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatFloat(p.X))
		sb.WriteByte(',')
		sb.WriteString(formatFloat(p.Y))
		n++
	}
	if n == 0 {
		return el, false
	}

	el.Name.Local = "polyline"
	if pl.Closed && n > 2 {
		el.Name.Local = "polygon"
	}
	addAttr(&el.Attr, "points", sb.String())
	addAttr(&el.Attr, "stroke", meta.Color.Hex())
	if meta.Color.A != 255 {
		addAttr(&el.Attr, "stroke-opacity", formatFloat(meta.Color.Opacity()))
	}
	addAttr(&el.Attr, "stroke-width", formatFloat(meta.StrokeWidth))
	return el, true
}

func addAttr(attr *[]xml.Attr, name, val string) {
	*attr = append(*attr, xml.Attr{Name: xml.Name{Local: name}, Value: val})
}

// formatFloat formats v with svgPrecision decimals, without trailing zeros.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', svgPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
