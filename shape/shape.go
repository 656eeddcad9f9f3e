package shape

import (
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/paint"
)

// Kind identifies the type of a recorded shape.
type Kind uint8

const (
	KindClip        Kind = iota // Clip rectangle change
	KindLineSegment             // Straight segment
	KindRect                    // Filled and/or stroked rectangle
	KindCircle                  // Filled and/or stroked circle
	KindPath                    // Polyline or convex polygon
	KindText                    // Positioned, rotated galley
	KindImage                   // Textured rectangle
	KindPixel                   // Single pixel
)

// kindNames maps Kind values to their string representation.
var kindNames = [...]string{
	KindClip:        "Clip",
	KindLineSegment: "LineSegment",
	KindRect:        "Rect",
	KindCircle:      "Circle",
	KindPath:        "Path",
	KindText:        "Text",
	KindImage:       "Image",
	KindPixel:       "Pixel",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Shape is implemented by all recorded shapes.
type Shape interface {
	// Kind returns the Kind of this shape.
	Kind() Kind
}

// Clip sets the clip rectangle for following shapes.
type Clip struct {
	Rect paint.Rect
}

// Kind implements Shape.
func (Clip) Kind() Kind { return KindClip }

// LineSegment is a straight stroked segment.
type LineSegment struct {
	A, B   gg.Point
	Stroke paint.Stroke
}

// Kind implements Shape.
func (LineSegment) Kind() Kind { return KindLineSegment }

// Rect is an axis-aligned rectangle with an inside stroke.
type Rect struct {
	Rect   paint.Rect
	Fill   color.NRGBA
	Stroke paint.Stroke
}

// Kind implements Shape.
func (Rect) Kind() Kind { return KindRect }

// Circle is a filled and/or stroked circle.
type Circle struct {
	Center gg.Point
	Radius float64
	Fill   color.NRGBA
	Stroke paint.Stroke
}

// Kind implements Shape.
func (Circle) Kind() Kind { return KindCircle }

// Path is a polyline or convex polygon.
type Path struct {
	paint.PathShape
}

// Kind implements Shape.
func (Path) Kind() Kind { return KindPath }

// Text is a positioned galley.
type Text struct {
	paint.TextShape
}

// Kind implements Shape.
func (Text) Kind() Kind { return KindText }

// Image is the uv part of an image stretched over Rect.
type Image struct {
	ID   paint.ImageID
	Rect paint.Rect
	UV   paint.Rect
	Tint color.NRGBA
}

// Kind implements Shape.
func (Image) Kind() Kind { return KindImage }

// Pixel is a single pixel.
type Pixel struct {
	At    gg.Point
	Color color.NRGBA
}

// Kind implements Shape.
func (Pixel) Kind() Kind { return KindPixel }
