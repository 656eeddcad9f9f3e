// Package ggplot adapts a toolkit-agnostic plotting engine to an
// immediate-mode host surface.
//
// # Overview
//
// A plotting engine speaks in abstract drawing commands (pixels, lines,
// rectangles, paths, circles, polygons and anchored text) on an integer
// logical grid. A host surface paints concrete screen-space primitives. The
// Backend in this package sits between the two: every command is passed
// through a pan/zoom View, its color is converted to 8-bit NRGBA, and the
// result is handed to a paint.Painter.
//
// # Quick Start
//
//	dc := gg.NewContext(800, 600)
//	book, _ := fonts.NewBook()
//	host := canvas.New(dc, canvas.WithFonts(book))
//
//	b := ggplot.New(paint.RectFromMinMax(gg.Pt(0, 0), gg.Pt(800, 600)), host).
//	    Offset(10, 0).
//	    Scale(1.5)
//	_ = b.DrawLine(image.Pt(0, 0), image.Pt(100, 100), ggplot.Style{
//	    Color:       ggplot.RGB(200, 30, 30),
//	    StrokeWidth: 2,
//	})
//	_ = dc.SavePNG("chart.png")
//
// # View Transform
//
// Scaling happens about the center of the bounds, the integer offset is
// added after scaling (so panning speed does not depend on zoom), and the
// bounds' min corner is added last. Circle radii are not scaled.
//
// # Errors
//
// Drawing never fails. Every DrawingBackend method returns nil; BackendError
// only exists so callers can name the backend's error kind.
//
// # Concurrency
//
// A Backend is used by one goroutine for one paint pass. Configure the view
// first, then issue drawing commands.
package ggplot
