package text

import "errors"

// ErrFontParse is returned when font data cannot be parsed.
var ErrFontParse = errors.New("text: failed to parse font")
