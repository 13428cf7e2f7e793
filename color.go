package sketch

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied 8-bit RGBA color.
// It implements color.Color so it can be handed to image/color consumers.
type Color struct {
	R, G, B, A uint8
}

// Named colors.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Cyan        = Color{0, 255, 255, 255}
	Magenta     = Color{255, 0, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Gray        = Color{128, 128, 128, 255}
	DarkGray    = Color{64, 64, 64, 255}
	Transparent = Color{0, 0, 0, 0}
)

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA8 creates a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses a color from a hex string.
// Supported formats: "#RGB", "#RRGGBB" and "#RRGGBBAA"; the '#' is optional.
func Hex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !isHexColor(s) {
		return Color{}, fmt.Errorf("sketch: invalid hex color %q: want 3, 6 or 8 hex digits", s)
	}

	alpha := uint8(255)
	if len(s) == 8 {
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("sketch: invalid alpha in hex color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:6]
	}

	c, err := colorful.Hex("#" + s)
	if err != nil {
		return Color{}, fmt.Errorf("sketch: invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

func isHexColor(s string) bool {
	switch len(s) {
	case 3, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// MustHex is like Hex but panics on malformed input.
// It is intended for color literals in sketch code.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HSV creates an opaque color from hue (degrees, [0, 360)), saturation and
// value (both [0, 1]).
func HSV(h, s, v float64) Color {
	return fromColorful(colorful.Hsv(h, s, v))
}

// HSL creates an opaque color from hue (degrees, [0, 360)), saturation and
// lightness (both [0, 1]).
func HSL(h, s, l float64) Color {
	return fromColorful(colorful.Hsl(h, s, l))
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 255}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Opacity returns the alpha component in [0, 1].
func (c Color) Opacity() float64 {
	return float64(c.A) / 255
}

// Hex returns the "#rrggbb" form of the color, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer using "#rrggbb" or "#rrggbbaa" when the
// color is not opaque.
func (c Color) String() string {
	if c.A == 255 {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Hex(), c.A)
}
