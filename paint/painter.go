package paint

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Transparent is the fully transparent color. Used as the fill of
// stroke-only primitives.
var Transparent = color.NRGBA{}

// White is the opaque white tint used for untinted images.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Stroke describes an outline: width in pixels and color.
type Stroke struct {
	Width float64
	Color color.NRGBA
}

// NoStroke draws no outline.
var NoStroke = Stroke{}

// NewStroke creates a stroke with the given width and color.
func NewStroke(width float64, col color.NRGBA) Stroke {
	return Stroke{Width: width, Color: col}
}

// IsEmpty reports whether the stroke would paint nothing.
func (s Stroke) IsEmpty() bool {
	return s.Width <= 0 || s.Color.A == 0
}

// ImageID is an opaque handle to an image owned by the host.
// The zero value refers to no image.
type ImageID uint64

// NoImage is the invalid image handle.
const NoImage ImageID = 0

// PathShape is a polyline or polygon in screen space.
type PathShape struct {
	Points []gg.Point
	// Closed connects the last point back to the first.
	Closed bool
	// Fill is painted only for closed paths. Closed filled paths are
	// assumed convex.
	Fill   color.NRGBA
	Stroke Stroke
}

// Line creates an open polyline through points.
func Line(points []gg.Point, stroke Stroke) PathShape {
	return PathShape{Points: points, Fill: Transparent, Stroke: stroke}
}

// ConvexPolygon creates a closed, filled polygon.
func ConvexPolygon(points []gg.Point, fill color.NRGBA, stroke Stroke) PathShape {
	return PathShape{Points: points, Closed: true, Fill: fill, Stroke: stroke}
}

// TextShape is a laid out block of text placed at Pos (the top-left corner
// of the unrotated galley) and rotated by Angle radians clockwise about Pos.
type TextShape struct {
	Pos    gg.Point
	Galley *Galley
	Angle  float64
}

// Painter paints screen-space primitives onto a host surface.
//
// All methods are fire-and-forget. Rect strokes are drawn inside the
// rectangle. A zero Stroke draws no outline; a Transparent fill draws no
// interior.
type Painter interface {
	// SetClipRect restricts all following painting to r.
	SetClipRect(r Rect)
	// LineSegment draws a straight segment from a to b.
	LineSegment(a, b gg.Point, stroke Stroke)
	// Rect draws a rectangle without rounded corners.
	Rect(r Rect, fill color.NRGBA, stroke Stroke)
	// Circle draws a circle.
	Circle(center gg.Point, radius float64, fill color.NRGBA, stroke Stroke)
	// Path draws a polyline or convex polygon.
	Path(shape PathShape)
	// Text draws a laid out galley.
	Text(shape TextShape)
	// LayoutNoWrap lays out a single line of text without wrapping.
	LayoutNoWrap(text string, font FontID, col color.NRGBA) *Galley
	// Image draws the uv sub-rectangle of an image stretched over r.
	Image(id ImageID, r, uv Rect, tint color.NRGBA)
}

// PixelPainter is implemented by hosts with a true single-pixel primitive.
type PixelPainter interface {
	Pixel(p gg.Point, col color.NRGBA)
}
