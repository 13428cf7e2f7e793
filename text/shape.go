package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shape runs the HarfBuzz shaper over a single line. Advances and offsets
// are in pixels at the given size.
func (f *Font) shape(line string, size float64) shaping.Output {
	runes := []rune(line)
	script := detectScript(runes)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: scriptDirection(script),
		// font.Face is not safe for concurrent use, font.Font is.
		Face:     font.NewFace(f.shaping),
		Size:     floatToFixed(size),
		Script:   script,
		Language: language.NewLanguage("en"),
	}

	s := f.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer f.shaperPool.Put(s)
	return s.Shape(input)
}

// detectScript returns the script of the first non-space rune.
// Mixed-script lines are shaped with that single script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func scriptDirection(s language.Script) di.Direction {
	switch s {
	case language.Arabic, language.Hebrew:
		return di.DirectionRTL
	default:
		return di.DirectionLTR
	}
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
