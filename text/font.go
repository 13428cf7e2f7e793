package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed font file.
//
// The same data is held by two parsers: sfnt provides glyph outlines and
// go-text provides shaping. Both views index glyphs identically.
//
// Font is safe for concurrent use.
type Font struct {
	name     string
	outlines *sfnt.Font
	shaping  *font.Font
	glyphs   *glyphCache

	// shaperPool pools HarfbuzzShaper instances, which are not safe for
	// concurrent use.
	shaperPool sync.Pool
}

// ParseFont parses TrueType or OpenType font data.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrFontParse)
	}
	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontParse, err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontParse, err)
	}

	f := &Font{
		outlines: outlines,
		shaping:  face.Font,
		glyphs:   newGlyphCache(defaultGlyphCacheEntries),
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	if name, err := outlines.Name(nil, sfnt.NameIDFamily); err == nil {
		f.name = name
	}
	return f, nil
}

// LoadFont reads and parses a font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	f, err := ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

var defaultFont = sync.OnceValues(func() (*Font, error) {
	return ParseFont(goregular.TTF)
})

// DefaultFontData returns the raw data of the default font.
func DefaultFontData() []byte {
	return goregular.TTF
}

// DefaultFont returns the Go Regular font, parsed on first use.
func DefaultFont() *Font {
	f, err := defaultFont()
	if err != nil {
		// goregular.TTF is embedded and always valid
		panic(err)
	}
	return f
}

// Name returns the font family name, or "" if the font has none.
func (f *Font) Name() string {
	return f.name
}
