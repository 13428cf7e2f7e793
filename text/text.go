package text

import (
	"math"
	"strings"

	"github.com/gogpu/sketch"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// DefaultLineSpacing is the distance between baselines, relative to the
// font size.
const DefaultLineSpacing = 1.2

// Align is the horizontal alignment of a line relative to Text.Origin.
type Align int

const (
	// AlignLeft starts lines at Origin.X.
	AlignLeft Align = iota
	// AlignCenter centers lines on Origin.X.
	AlignCenter
	// AlignRight ends lines at Origin.X.
	AlignRight
)

func (a Align) offset(width float64) float64 {
	switch a {
	case AlignCenter:
		return width / 2
	case AlignRight:
		return width
	default:
		return 0
	}
}

// Text is a piece of text to be drawn as glyph outlines.
//
// Origin is the start of the first baseline. Coordinates follow the sketch
// convention: y grows downwards, so glyphs extend to smaller y values above
// the baseline and further lines are placed below.
type Text struct {
	Content string
	Origin  sketch.Point
	// Size is the font size in pixels (the em height).
	Size float64
	// Font defaults to DefaultFont when nil.
	Font  *Font
	Align Align
	// LineSpacing defaults to DefaultLineSpacing when not positive.
	LineSpacing float64
}

var _ sketch.Source = Text{}

// Flatten implements sketch.Source. Every glyph contour becomes one closed
// polyline.
func (t Text) Flatten(tolerance float64) []sketch.Polyline {
	if t.Content == "" || !(t.Size > 0) || math.IsInf(t.Size, 0) {
		return nil
	}
	f := t.Font
	if f == nil {
		f = DefaultFont()
	}

	spacing := t.LineSpacing
	if !(spacing > 0) {
		spacing = DefaultLineSpacing
	}

	var (
		buf  sfnt.Buffer
		path = sketch.NewBezPath()
		ppem = floatToFixed(t.Size)
	)
	for i, line := range strings.Split(t.Content, "\n") {
		if line == "" {
			continue
		}
		out := f.shape(line, t.Size)
		x := t.Origin.X - t.Align.offset(fixedToFloat(out.Advance))
		y := t.Origin.Y + float64(i)*t.Size*spacing

		for _, g := range out.Glyphs {
			gid := sfnt.GlyphIndex(g.GlyphID)
			// go-text offsets are y-up
			f.appendGlyph(path, &buf, gid, ppem, sketch.Pt(
				x+fixedToFloat(g.XOffset),
				y-fixedToFloat(g.YOffset),
			))
			x += fixedToFloat(g.XAdvance)
		}
	}
	return path.Flatten(tolerance)
}

// appendGlyph adds the outline of glyph gid, positioned with its origin at
// pos, to path. Each contour is closed.
func (f *Font) appendGlyph(path *sketch.BezPath, buf *sfnt.Buffer, gid sfnt.GlyphIndex, ppem fixed.Int26_6, pos sketch.Point) {
	segments, err := f.glyphs.getOrLoad(glyphKey{gid: gid, ppem: ppem}, func() (sfnt.Segments, error) {
		segments, err := f.outlines.LoadGlyph(buf, gid, ppem, nil)
		if err != nil {
			return nil, err
		}
		// LoadGlyph returns a slice of buf
		return append(sfnt.Segments(nil), segments...), nil
	})
	if err != nil {
		sketch.Logger().Debug("text: glyph skipped", "glyph", int(gid), "err", err)
		return
	}

	// sfnt outlines are already y-down
	pt := func(p fixed.Point26_6) (float64, float64) {
		return pos.X + fixedToFloat(p.X), pos.Y + fixedToFloat(p.Y)
	}
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				path.Close()
			}
			path.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			path.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			path.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			path.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		path.Close()
	}
}

// Measure returns the advance width of a single line of text at the given
// size. A nil font selects DefaultFont.
func Measure(s string, size float64, f *Font) float64 {
	if s == "" || !(size > 0) {
		return 0
	}
	if f == nil {
		f = DefaultFont()
	}
	return fixedToFloat(f.shape(s, size).Advance)
}
