// Package shape records host painter calls as typed shapes.
//
// A Recorder implements paint.Painter. Instead of rasterizing it appends one
// Shape per call, which makes the output of the ggplot adapter inspectable
// in tests and replayable onto any other painter, similar to an
// immediate-mode GUI's per-frame shape list.
//
// # Example
//
//	rec := shape.NewRecorder(shape.WithMeasurer(book))
//	b := ggplot.New(bounds, rec)
//	_ = b.DrawLine(image.Pt(0, 0), image.Pt(10, 10), style)
//	r := rec.Finish()
//
//	// Replay onto a raster canvas
//	r.Playback(canvas.New(dc))
//
// Shapes are plain comparable-by-value structs (except for slices and
// galleys), so recordings can be diffed with go-cmp.
package shape
