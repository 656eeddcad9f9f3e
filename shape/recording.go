package shape

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/paint"
)

var onePixel = gg.Pt(1, 1)

// Recording is an immutable list of recorded shapes.
type Recording struct {
	shapes []Shape
}

// Shapes returns the recorded shapes.
func (r *Recording) Shapes() []Shape { return r.shapes }

// Len returns the number of shapes.
func (r *Recording) Len() int { return len(r.shapes) }

// Playback replays the recording onto p in order.
// Pixels are replayed as pixels when p supports them and as unit line
// segments otherwise.
func (r *Recording) Playback(p paint.Painter) {
	pixels, _ := p.(paint.PixelPainter)

	for _, s := range r.shapes {
		switch s := s.(type) {
		case Clip:
			p.SetClipRect(s.Rect)
		case LineSegment:
			p.LineSegment(s.A, s.B, s.Stroke)
		case Rect:
			p.Rect(s.Rect, s.Fill, s.Stroke)
		case Circle:
			p.Circle(s.Center, s.Radius, s.Fill, s.Stroke)
		case Path:
			p.Path(s.PathShape)
		case Text:
			p.Text(s.TextShape)
		case Image:
			p.Image(s.ID, s.Rect, s.UV, s.Tint)
		case Pixel:
			if pixels != nil {
				pixels.Pixel(s.At, s.Color)
				continue
			}
			p.LineSegment(s.At, s.At.Add(onePixel), paint.NewStroke(1, s.Color))
		}
	}
}
