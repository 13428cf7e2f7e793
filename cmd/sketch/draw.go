package main

import (
	"math"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/text"
)

// Layers of the demonstration sketch.
const (
	layerFrame sketch.LayerID = iota
	layerSquares
	layerCurves
	layerCaption
)

// draw fills c with the demonstration sketch.
func draw(c *sketch.Canvas, caption TextConfig, font *text.Font) {
	w, h := c.Width(), c.Height()
	doc := c.Document()

	doc.EnsureExists(layerFrame).SetName("frame")
	c.RoundedRect(10, 10, w-20, h-20, 8)

	// rotated squares, each in its own frame
	c.SetLayer(layerSquares)
	doc.Layer(layerSquares).SetName("squares")
	c.PushMatrixAnd(func(c *sketch.Canvas) {
		c.Translate(w/4, h/2)
		for i := range 12 {
			c.PushMatrixAnd(func(c *sketch.Canvas) {
				c.RotateDeg(float64(i) * 7.5).Scale(1 - float64(i)*0.06)
				c.Color(sketch.HSL(float64(i)*30, 0.8, 0.45))
				c.Rect(-60, -60, 120, 120)
			})
		}
	})

	// Beziers and a Lissajous figure
	c.SetLayer(layerCurves)
	doc.Layer(layerCurves).SetName("curves")
	c.PushMatrixAnd(func(c *sketch.Canvas) {
		c.Translate(w*3/4, h/2).Color(sketch.MustHex("#1f4e79"))
		c.AddPath(sketch.NewParametric(func(t float64) sketch.Point {
			return sketch.Pt(80*math.Sin(3*t+math.Pi/2), 80*math.Sin(2*t))
		}, 0, 2*math.Pi))

		c.Color(sketch.MustHex("#c0392b")).StrokeWidth(2)
		for i := range 5 {
			y := -100 + float64(i)*50
			c.CubicBezier(-100, y, -40, y-40, 40, y+40, 100, y)
		}
		c.SkewAround(0.3, 0, 0, 0).Arc(0, 0, 110, 0, math.Pi)
	})

	if caption.Content == "" {
		return
	}
	c.SetLayer(layerCaption)
	doc.Layer(layerCaption).SetName("caption")
	c.Color(sketch.Black).StrokeWidth(1)
	c.AddPath(text.Text{
		Content: caption.Content,
		Origin:  sketch.Pt(w/2, h-30),
		Size:    caption.Size,
		Font:    font,
		Align:   text.AlignCenter,
	})
}
