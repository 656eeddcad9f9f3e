// Package paint defines the host side of the ggplot adapter: the concrete
// screen-space primitives a host surface knows how to paint.
//
// A Painter receives already transformed geometry and 8-bit colors. It never
// reports errors; a host that cannot draw something simply draws nothing.
//
// Two painters ship with the module:
//   - shape.Recorder captures every call as a typed shape (tests, replay)
//   - canvas.Canvas rasterizes onto a *gg.Context
package paint
