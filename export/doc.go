// Package export writes sketch documents to vector file formats.
//
// Formats are provided by writers registered by name, following the
// database/sql driver pattern. The "svg" and "pdf" writers are built in:
//
//	doc := canvas.Finish()
//	if err := export.Save(doc, "out.svg"); err != nil {
//	    log.Fatal(err)
//	}
//
// Additional formats register a factory from an init function:
//
//	func init() {
//	    export.Register("hpgl", func() export.Writer { return hpglWriter{} })
//	}
//
// Layers are preserved: SVG output groups each layer in an Inkscape layer,
// PDF output places each layer in an optional content group. Layers are
// written in ascending ID order and paths in insertion order.
package export
