package ggplot

import "image"

// DrawingBackend is the contract a plotting engine draws through.
//
// Coordinates are logical integer points. Every method is declared to
// succeed; implementations in this module always return nil.
type DrawingBackend interface {
	// Size returns the drawing area in pixels.
	Size() (width, height int)

	// EnsurePrepared is called before a series of drawing commands.
	EnsurePrepared() error
	// Present is called after a series of drawing commands.
	Present() error

	DrawPixel(p image.Point, c Color) error
	DrawLine(from, to image.Point, style Style) error
	DrawRect(upperLeft, bottomRight image.Point, style Style, fill bool) error
	DrawPath(path []image.Point, style Style) error
	DrawCircle(center image.Point, radius int, style Style, fill bool) error
	FillPolygon(vertices []image.Point, style Style) error
	DrawText(text string, style TextStyle, pos image.Point) error
}

// Style is the stroke width and color of a shape. Whether a shape is filled
// is decided per call.
type Style struct {
	Color       Color
	StrokeWidth float64
}

// NewStyle creates a style with the given color and stroke width.
func NewStyle(c Color, width float64) Style {
	return Style{Color: c, StrokeWidth: width}
}

// BackendError is the error kind of Backend.
//
// The host painter has no error channel, so no Backend method ever returns
// a BackendError. The type exists so engines that switch on backend error
// kinds have something to name.
type BackendError struct{}

// Error implements error.
func (BackendError) Error() string { return "ggplot: backend error" }

// Compile-time check that Backend satisfies the engine contract.
var _ DrawingBackend = (*Backend)(nil)
