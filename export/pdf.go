package export

import (
	"fmt"
	"io"

	"github.com/gogpu/sketch"
	"github.com/jung-kurt/gofpdf"
)

// pointsPerPixel converts CSS pixels (96 dpi) to PDF points (72 dpi).
const pointsPerPixel = 72.0 / 96.0

func init() {
	Register("pdf", func() Writer { return PDFWriter{} })
}

// PDFWriter writes documents as single-page PDF files. Each document layer
// becomes an optional content group that viewers can toggle.
type PDFWriter struct{}

// Write implements Writer.
func (PDFWriter) Write(w io.Writer, doc *sketch.Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	ps := doc.PageSizeOrDefault()

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: ps.W * pointsPerPixel, Ht: ps.H * pointsPerPixel},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	if title := doc.Metadata().Title; title != "" {
		pdf.SetTitle(title, true)
	}
	pdf.SetCreator("sketch "+sketch.Version, true)

	layers := doc.Layers()
	ids := make([]int, len(layers))
	for i, l := range layers {
		ids[i] = pdf.AddLayer(l.DisplayName(), true)
	}

	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	for i, l := range layers {
		pdf.BeginLayer(ids[i])
		for _, p := range l.Paths {
			drawPDFPath(pdf, p)
		}
		pdf.EndLayer()
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

func drawPDFPath(pdf *gofpdf.Fpdf, p *sketch.Path) {
	c := p.Metadata.Color
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	pdf.SetAlpha(c.Opacity(), "Normal")
	pdf.SetLineWidth(p.Metadata.StrokeWidth * pointsPerPixel)

	for _, pl := range p.Polylines {
		started := false
		for _, pt := range pl.Points {
			if !pt.IsFinite() {
				continue
			}
			x, y := pt.X*pointsPerPixel, pt.Y*pointsPerPixel
			if !started {
				pdf.MoveTo(x, y)
				started = true
			} else {
				pdf.LineTo(x, y)
			}
		}
		if !started {
			continue
		}
		if pl.Closed {
			pdf.ClosePath()
		}
		pdf.DrawPath("D")
	}
}
