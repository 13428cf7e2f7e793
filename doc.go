// Package sketch provides a programmatic vector drawing canvas for Go.
//
// # Overview
//
// sketch is aimed at generative art and plotter work: drawing code describes
// lines, Bezier curves and parametric curves under a stack of affine
// transforms, and the canvas accumulates them into a layered Document that
// can be exported as vector output (see the export sub-package).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sketch"
//	    "github.com/gogpu/sketch/export"
//	)
//
//	c := sketch.NewCanvas(sketch.WithPageSize(sketch.A5H))
//	c.Translate(c.Width()/2, c.Height()/2)
//	for i := 0; i < 12; i++ {
//	    c.PushMatrixAnd(func(c *sketch.Canvas) {
//	        c.RotateDeg(float64(i) * 30).Rect(50, -5, 100, 10)
//	    })
//	}
//	export.Save(c.Finish(), "out.svg")
//
// # Architecture
//
// The library is organized into:
//   - Geometry: Point, Matrix, Rect and the Source shapes (Line, Rectangle,
//     Circle, Ellipse, Arc, QuadBez, CubicBez, BezPath, Parametric, Polyline)
//   - Flattening: every Source turns into polylines within a tolerance
//   - Document model: Document, Layer, Path, PathMetadata, PageSize
//   - Canvas: TransformStack plus metadata and layer routing
//
// # Coordinate System
//
// Uses SVG coordinates in CSS pixels (96 dpi):
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, positive angles turn clockwise on screen
//
// # Transform Order
//
// Canvas transforms compose in the current local frame: after
// Translate(100, 0) followed by Rotate(a), shapes rotate around (100, 0).
// Transforms applied directly to a Path or Document act on its vertices in
// call order.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
