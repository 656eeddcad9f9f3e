package shape

import (
	"image/color"
	"unicode/utf8"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/paint"
)

// Measurer measures a single line of text for a font.
// fonts.Book implements Measurer with real font metrics.
type Measurer interface {
	Measure(text string, font paint.FontID) (width, height, ascent float64)
}

// FixedMeasurer measures text as if every rune had the same advance.
// Widths and heights are multiples of the font size.
type FixedMeasurer struct {
	Advance    float64 // advance per rune, in font sizes
	LineHeight float64 // line height, in font sizes
	Ascent     float64 // baseline offset, in font sizes
}

// DefaultMeasurer is used when a Recorder has no Measurer.
var DefaultMeasurer = FixedMeasurer{Advance: 0.5, LineHeight: 1.25, Ascent: 1}

// Measure implements Measurer. Empty text measures (0, 0).
func (m FixedMeasurer) Measure(text string, font paint.FontID) (width, height, ascent float64) {
	if text == "" {
		return 0, 0, 0
	}
	n := float64(utf8.RuneCountInString(text))
	return n * m.Advance * font.Size, m.LineHeight * font.Size, m.Ascent * font.Size
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithMeasurer sets the text measurer used by LayoutNoWrap.
func WithMeasurer(m Measurer) RecorderOption {
	return func(r *Recorder) {
		r.measurer = m
	}
}

// Recorder is a paint.Painter that records shapes instead of painting.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	shapes   []Shape
	measurer Measurer
}

var _ paint.Painter = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		shapes:   make([]Shape, 0, 64),
		measurer: DefaultMeasurer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Shapes returns the shapes recorded so far.
func (r *Recorder) Shapes() []Shape { return r.shapes }

// Len returns the number of recorded shapes.
func (r *Recorder) Len() int { return len(r.shapes) }

// Count returns how many shapes of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, s := range r.shapes {
		if s.Kind() == k {
			n++
		}
	}
	return n
}

// Reset discards all recorded shapes.
func (r *Recorder) Reset() { r.shapes = r.shapes[:0] }

// Finish returns an immutable Recording of the shapes recorded so far.
// The Recorder starts over empty.
func (r *Recorder) Finish() *Recording {
	rec := &Recording{shapes: r.shapes}
	r.shapes = make([]Shape, 0, 64)
	return rec
}

func (r *Recorder) add(s Shape) { r.shapes = append(r.shapes, s) }

// SetClipRect implements paint.Painter.
func (r *Recorder) SetClipRect(rect paint.Rect) { r.add(Clip{Rect: rect}) }

// LineSegment implements paint.Painter.
func (r *Recorder) LineSegment(a, b gg.Point, stroke paint.Stroke) {
	r.add(LineSegment{A: a, B: b, Stroke: stroke})
}

// Rect implements paint.Painter.
func (r *Recorder) Rect(rect paint.Rect, fill color.NRGBA, stroke paint.Stroke) {
	r.add(Rect{Rect: rect, Fill: fill, Stroke: stroke})
}

// Circle implements paint.Painter.
func (r *Recorder) Circle(center gg.Point, radius float64, fill color.NRGBA, stroke paint.Stroke) {
	r.add(Circle{Center: center, Radius: radius, Fill: fill, Stroke: stroke})
}

// Path implements paint.Painter. The point slice is copied.
func (r *Recorder) Path(p paint.PathShape) {
	p.Points = append([]gg.Point(nil), p.Points...)
	r.add(Path{PathShape: p})
}

// Text implements paint.Painter.
func (r *Recorder) Text(t paint.TextShape) { r.add(Text{TextShape: t}) }

// Image implements paint.Painter.
func (r *Recorder) Image(id paint.ImageID, rect, uv paint.Rect, tint color.NRGBA) {
	r.add(Image{ID: id, Rect: rect, UV: uv, Tint: tint})
}

// LayoutNoWrap implements paint.Painter using the Recorder's Measurer.
func (r *Recorder) LayoutNoWrap(text string, font paint.FontID, col color.NRGBA) *paint.Galley {
	w, h, ascent := r.measurer.Measure(text, font)
	return &paint.Galley{
		Text:   text,
		Font:   font,
		Color:  col,
		Size:   gg.Pt(w, h),
		Ascent: ascent,
	}
}

// PixelRecorder is a Recorder for a host with a true pixel primitive.
type PixelRecorder struct {
	*Recorder
}

var _ paint.PixelPainter = (*PixelRecorder)(nil)

// NewPixelRecorder creates an empty PixelRecorder.
func NewPixelRecorder(opts ...RecorderOption) *PixelRecorder {
	return &PixelRecorder{Recorder: NewRecorder(opts...)}
}

// Pixel implements paint.PixelPainter.
func (r *PixelRecorder) Pixel(p gg.Point, col color.NRGBA) {
	r.add(Pixel{At: p, Color: col})
}
