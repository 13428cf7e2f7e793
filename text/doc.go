// Package text turns strings into sketch geometry.
//
// Text is a sketch.Source: every line is shaped with the HarfBuzz shaper
// from go-text/typesetting (kerning, ligatures), then each glyph outline is
// loaded with golang.org/x/image/font/sfnt and flattened like any other
// Bezier path.
//
// # Example usage
//
//	c := sketch.NewCanvas()
//	c.AddPath(text.Text{
//	    Content: "Hello, plotter!",
//	    Origin:  sketch.Pt(20, 100),
//	    Size:    32,
//	})
//
// Fonts default to Go Regular. Load another one with LoadFont or ParseFont
// and share it between Text values: a Font is safe for concurrent use.
package text
