package ggplot

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/paint"
)

// Backend draws plotting-engine commands onto a paint.Painter.
//
// A Backend is bound to fixed bounds for its whole life. When the drawing
// area changes, create a new Backend.
//
// Backend is not safe for concurrent use.
type Backend struct {
	painter paint.Painter
	bounds  paint.Rect
	view    View
	lookup  ImageLookup

	// pixels is nil when pixels are approximated by line segments.
	pixels paint.PixelPainter
}

// New creates a Backend that draws into bounds on painter.
// The painter is clipped to bounds unless WithoutClip is given.
func New(bounds paint.Rect, painter paint.Painter, opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Backend{
		painter: painter,
		bounds:  bounds,
		view:    o.view,
		lookup:  o.lookup,
	}
	if pp, ok := painter.(paint.PixelPainter); ok && !o.pixelFallback {
		b.pixels = pp
	}
	if !o.noClip {
		painter.SetClipRect(bounds)
	}
	return b
}

// Bounds returns the rectangle the backend draws into.
func (b *Backend) Bounds() paint.Rect { return b.bounds }

// View returns the current pan/zoom state.
func (b *Backend) View() View { return b.view }

// SetOffset sets the pan offset in screen pixels.
func (b *Backend) SetOffset(x, y int) {
	b.view.X, b.view.Y = x, y
}

// Offset sets the pan offset and returns b for chaining.
func (b *Backend) Offset(x, y int) *Backend {
	b.SetOffset(x, y)
	return b
}

// SetScale sets the zoom factor. Any value is accepted.
func (b *Backend) SetScale(s float64) {
	b.view.Scale = s
}

// Scale sets the zoom factor and returns b for chaining.
func (b *Backend) Scale(s float64) *Backend {
	b.SetScale(s)
	return b
}

// transform maps a logical coordinate to screen space.
func (b *Backend) transform(p image.Point) gg.Point {
	return b.view.TransformCoord(p, b.bounds)
}

// transformAll maps a sequence of logical coordinates to screen space.
func (b *Backend) transformAll(points []image.Point) []gg.Point {
	out := make([]gg.Point, len(points))
	for i, p := range points {
		out[i] = b.transform(p)
	}
	return out
}

// Size returns the bounds' size truncated to whole pixels.
func (b *Backend) Size() (width, height int) {
	return int(b.bounds.Width()), int(b.bounds.Height())
}

// EnsurePrepared does nothing; the host surface is always ready.
func (b *Backend) EnsurePrepared() error { return nil }

// Present does nothing; the host presents the frame itself.
func (b *Backend) Present() error { return nil }

// DrawPixel draws a single pixel. Hosts without a pixel primitive get a
// one pixel long diagonal segment from p to p+(1,1).
func (b *Backend) DrawPixel(p image.Point, c Color) error {
	p0 := b.transform(p)
	col := c.NRGBA()

	if b.pixels != nil {
		b.pixels.Pixel(p0, col)
		return nil
	}

	p1 := p0.Add(gg.Pt(1, 1))
	b.painter.LineSegment(p0, p1, paint.NewStroke(1, col))
	return nil
}

// DrawLine draws a straight segment.
func (b *Backend) DrawLine(from, to image.Point, style Style) error {
	p0 := b.transform(from)
	p1 := b.transform(to)

	b.painter.LineSegment(p0, p1, paint.NewStroke(style.StrokeWidth, style.Color.NRGBA()))
	return nil
}

// DrawRect draws an axis-aligned rectangle. A filled rectangle has no
// border; an unfilled one has a transparent interior and an inside stroke.
func (b *Backend) DrawRect(upperLeft, bottomRight image.Point, style Style, fill bool) error {
	r := paint.RectFromMinMax(b.transform(upperLeft), b.transform(bottomRight))
	col := style.Color.NRGBA()

	if fill {
		b.painter.Rect(r, col, paint.NoStroke)
	} else {
		b.painter.Rect(r, paint.Transparent, paint.NewStroke(style.StrokeWidth, col))
	}
	return nil
}

// DrawPath draws an open polyline through path.
func (b *Backend) DrawPath(path []image.Point, style Style) error {
	stroke := paint.NewStroke(style.StrokeWidth, style.Color.NRGBA())
	b.painter.Path(paint.Line(b.transformAll(path), stroke))
	return nil
}

// DrawCircle draws a circle. The center is transformed but the radius is
// passed through unscaled.
func (b *Backend) DrawCircle(center image.Point, radius int, style Style, fill bool) error {
	c := b.transform(center)
	col := style.Color.NRGBA()
	r := float64(radius)

	if fill {
		b.painter.Circle(c, r, col, paint.NoStroke)
	} else {
		b.painter.Circle(c, r, paint.Transparent, paint.NewStroke(style.StrokeWidth, col))
	}
	return nil
}

// FillPolygon fills a convex polygon. Polygons never get an outline.
func (b *Backend) FillPolygon(vertices []image.Point, style Style) error {
	b.painter.Path(paint.ConvexPolygon(b.transformAll(vertices), style.Color.NRGBA(), paint.NoStroke))
	return nil
}
