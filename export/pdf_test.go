package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/sketch"
)

func TestPDFWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (PDFWriter{}).Write(&buf, testDocument()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Errorf("output does not start with a PDF header: %q", out[:min(len(out), 16)])
	}
	if !strings.Contains(out, "/OCG") {
		t.Error("output has no optional content groups")
	}
}

func TestPDFWriterEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := (PDFWriter{}).Write(&buf, sketch.NewDocument()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty output")
	}
}
