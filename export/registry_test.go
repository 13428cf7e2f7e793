package export

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/gogpu/sketch"
)

type countingWriter struct{ calls *int }

func (c countingWriter) Write(io.Writer, *sketch.Document) error {
	*c.calls++
	return nil
}

func TestBuiltinFormats(t *testing.T) {
	for _, name := range []string{"svg", "pdf"} {
		if !IsRegistered(name) {
			t.Errorf("%q is not registered", name)
		}
		if !slices.Contains(Formats(), name) {
			t.Errorf("Formats() = %v, missing %q", Formats(), name)
		}
	}
	if !slices.IsSorted(Formats()) {
		t.Errorf("Formats() = %v, not sorted", Formats())
	}
}

func TestRegisterAndNewWriter(t *testing.T) {
	calls := 0
	Register("test-count", func() Writer { return countingWriter{&calls} })
	t.Cleanup(func() { Unregister("test-count") })

	w, err := NewWriter("test-count")
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	if err := w.Write(io.Discard, sketch.NewDocument()); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name    string
		factory WriterFactory
	}{
		{"svg", func() Writer { return SVGWriter{} }},
		{"nil-factory", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			Register(tt.name, tt.factory)
		})
	}
}

func TestNewWriterUnknown(t *testing.T) {
	_, err := NewWriter("hpgl")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("NewWriter(hpgl) error = %v, want ErrUnknownFormat", err)
	}
}
