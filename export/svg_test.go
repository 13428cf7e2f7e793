package export

import (
	"bytes"
	"encoding/xml"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/sketch"
)

type svgFile struct {
	Width   string     `xml:"width,attr"`
	Height  string     `xml:"height,attr"`
	ViewBox string     `xml:"viewBox,attr"`
	Title   string     `xml:"title"`
	Layers  []svgLayer `xml:"g"`
}

type svgLayer struct {
	ID        string       `xml:"id,attr"`
	Label     string       `xml:"label,attr"`
	Polylines []svgElement `xml:"polyline"`
	Polygons  []svgElement `xml:"polygon"`
}

type svgElement struct {
	Points        string `xml:"points,attr"`
	Stroke        string `xml:"stroke,attr"`
	StrokeWidth   string `xml:"stroke-width,attr"`
	StrokeOpacity string `xml:"stroke-opacity,attr"`
}

func decodeSVG(t *testing.T, doc *sketch.Document) svgFile {
	t.Helper()
	var buf bytes.Buffer
	if err := (SVGWriter{}).Write(&buf, doc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var f svgFile
	if err := xml.Unmarshal(buf.Bytes(), &f); err != nil {
		t.Fatalf("output is not valid XML: %v\n%s", err, buf.String())
	}
	return f
}

func TestSVGLayers(t *testing.T) {
	f := decodeSVG(t, testDocument())

	if len(f.Layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(f.Layers))
	}
	if f.Layers[0].ID != "layer0" || f.Layers[0].Label != "Layer 0" {
		t.Errorf("layer 0 = %+v", f.Layers[0])
	}
	if f.Layers[1].ID != "layer2" || f.Layers[1].Label != "circles" {
		t.Errorf("layer 2 = %+v", f.Layers[1])
	}

	rect := f.Layers[0].Polygons
	if len(rect) != 1 || rect[0].Points != "10,10 60,10 60,40 10,40" {
		t.Errorf("rect polygon = %+v", rect)
	}
	if rect[0].Stroke != "#ff0000" || rect[0].StrokeWidth != "1" || rect[0].StrokeOpacity != "" {
		t.Errorf("rect style = %+v", rect[0])
	}

	l2 := f.Layers[1]
	if len(l2.Polygons) != 1 || len(l2.Polylines) != 1 {
		t.Fatalf("layer 2 has %d polygons and %d polylines, want 1 and 1", len(l2.Polygons), len(l2.Polylines))
	}
	if got := l2.Polylines[0].Points; got != "100,100 140,100" {
		t.Errorf("line points = %q", got)
	}
	if got := l2.Polylines[0].StrokeOpacity; got != "0.502" {
		t.Errorf("stroke-opacity = %q, want 0.502", got)
	}
}

func TestSVGPageSize(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		f := decodeSVG(t, sketch.NewDocument())
		if f.Width != "400" || f.Height != "400" || f.ViewBox != "0 0 400 400" {
			t.Errorf("size = %s x %s (%s), want 400 x 400", f.Width, f.Height, f.ViewBox)
		}
	})

	t.Run("a6", func(t *testing.T) {
		f := decodeSVG(t, testDocument())
		if f.Width != formatFloat(sketch.A6.W) || f.Height != formatFloat(sketch.A6.H) {
			t.Errorf("size = %s x %s, want %v", f.Width, f.Height, sketch.A6)
		}
	})
}

func TestSVGTitleEscaped(t *testing.T) {
	doc := sketch.NewDocument()
	doc.Metadata().Title = `Tom & "Jerry" <1>`
	if f := decodeSVG(t, doc); f.Title != doc.Metadata().Title {
		t.Errorf("title = %q, want %q", f.Title, doc.Metadata().Title)
	}
}

func TestSVGSkipsNonFinite(t *testing.T) {
	doc := sketch.NewDocument()
	meta := sketch.DefaultPathMetadata()
	nan := math.NaN()
	doc.PushPath(0, &sketch.Path{Metadata: meta, Polylines: []sketch.Polyline{
		{Points: []sketch.Point{{X: 1, Y: 1}, {X: nan, Y: 0}, {X: 2, Y: 2}}},
		{Points: []sketch.Point{{X: nan, Y: nan}}},
		{},
	}})

	var buf bytes.Buffer
	if err := (SVGWriter{Compact: true}).Write(&buf, doc); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "NaN") {
		t.Errorf("output contains NaN: %s", out)
	}
	if n := strings.Count(out, "<polyline"); n != 1 {
		t.Errorf("got %d polylines, want 1", n)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		0:         "0",
		1:         "1",
		-2.5:      "-2.5",
		1.23456:   "1.2346",
		-0.00001:  "0",
		100.10000: "100.1",
	}
	for in, want := range tests {
		if got := formatFloat(in); got != want {
			t.Errorf("formatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}
