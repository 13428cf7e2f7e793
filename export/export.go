package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/sketch"
)

// ErrNilDocument is returned when exporting a nil document, typically the
// result of calling Canvas.Finish twice.
var ErrNilDocument = errors.New("export: nil document")

// Writer encodes a document into one output format.
//
// Writers read the document and never modify it. A document without a page
// size is written with sketch.DefaultPageSize().
type Writer interface {
	Write(w io.Writer, doc *sketch.Document) error
}

// Encode writes doc to w in the named format.
func Encode(w io.Writer, format string, doc *sketch.Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	wr, err := NewWriter(format)
	if err != nil {
		return err
	}
	return wr.Write(w, doc)
}

// FormatOf returns the format name for a file path: its lower-cased
// extension without the dot.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Save writes doc to the file at path, choosing the format from the file
// extension. An existing file is truncated. On a write error the partial
// file is removed.
func Save(doc *sketch.Document, path string) (err error) {
	if doc == nil {
		return ErrNilDocument
	}
	format := FormatOf(path)
	wr, err := NewWriter(format)
	if err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := wr.Write(bw, doc); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}

	sketch.Logger().Debug("export: saved",
		"path", path,
		"format", format,
		"layers", doc.LayerCount(),
		"paths", doc.PathCount(),
	)
	return nil
}
