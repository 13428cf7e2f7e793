package text

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParseFont(t *testing.T) {
	f, err := ParseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFont(goregular) error = %v", err)
	}
	if f.Name() == "" {
		t.Error("Name() is empty")
	}
}

func TestParseFontInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"garbage", []byte("definitely not a font")},
		{"truncated", goregular.TTF[:64]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFont(tt.data)
			if !errors.Is(err, ErrFontParse) {
				t.Errorf("ParseFont() error = %v, want ErrFontParse", err)
			}
		})
	}
}

func TestLoadFont(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFont(path); err != nil {
		t.Errorf("LoadFont() error = %v", err)
	}

	if _, err := LoadFont(filepath.Join(dir, "missing.ttf")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFont(missing) error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.ttf")
	if err := os.WriteFile(bad, []byte("nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFont(bad); !errors.Is(err, ErrFontParse) {
		t.Errorf("LoadFont(bad) error = %v, want ErrFontParse", err)
	}
}

func TestDefaultFontShared(t *testing.T) {
	if DefaultFont() != DefaultFont() {
		t.Error("DefaultFont() parsed the font twice")
	}
}

func TestMeasure(t *testing.T) {
	if got := Measure("", 12, nil); got != 0 {
		t.Errorf("Measure(\"\") = %v, want 0", got)
	}
	one := Measure("m", 20, nil)
	three := Measure("mmm", 20, nil)
	if one <= 0 {
		t.Fatalf("Measure(\"m\") = %v, want > 0", one)
	}
	if diff := three - 3*one; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Measure(\"mmm\") = %v, want %v", three, 3*one)
	}
	if got := Measure("m", 40, nil); got <= one {
		t.Errorf("Measure at 40px = %v, not wider than %v at 20px", got, one)
	}
}

func TestFontConcurrentShaping(t *testing.T) {
	f := DefaultFont()
	want := Measure("Hello, world", 16, f)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Measure("Hello, world", 16, f); got != want {
				t.Errorf("concurrent Measure() = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}
