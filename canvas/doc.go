// Package canvas implements paint.Painter on top of a gg drawing context.
//
// The data flow is:
//
//	ggplot.Backend (logical) -> paint.Painter calls (screen) -> gg.Context -> Pixmap
//
// # Usage
//
//	dc := gg.NewContext(800, 600)
//	book, _ := fonts.NewBook()
//	images := texture.NewRegistry()
//
//	host := canvas.New(dc, canvas.WithFonts(book), canvas.WithImages(images))
//	b := ggplot.New(bounds, host, ggplot.WithImageLookup(images))
//
// # Text
//
// Text is drawn with the gg text pipeline. Rotated text is drawn by rotating
// the context about the galley's origin, so any angle works, not only
// quarter turns.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use, just like the gg.Context it wraps.
package canvas
