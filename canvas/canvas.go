package canvas

import (
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/fonts"
	"github.com/gogpu/ggplot/paint"
)

// ImageSource provides image buffers by handle. texture.Registry implements it.
type ImageSource interface {
	Image(id paint.ImageID) (*gg.ImageBuf, bool)
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithFonts sets the font book used for text. Without a book, text measures
// empty and is not drawn.
func WithFonts(b *fonts.Book) Option {
	return func(c *Canvas) {
		c.fonts = b
	}
}

// WithImages sets where images are looked up.
func WithImages(src ImageSource) Option {
	return func(c *Canvas) {
		c.images = src
	}
}

// Canvas paints onto a gg.Context.
type Canvas struct {
	dc     *gg.Context
	fonts  *fonts.Book
	images ImageSource
}

var _ paint.Painter = (*Canvas)(nil)

// New creates a Canvas drawing on dc.
func New(dc *gg.Context, opts ...Option) *Canvas {
	c := &Canvas{dc: dc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Bounds returns the full context area.
func (c *Canvas) Bounds() paint.Rect {
	return paint.RectFromMinSize(gg.Pt(0, 0), gg.Pt(float64(c.dc.Width()), float64(c.dc.Height())))
}

// report logs a failed gg operation. Painting has no error channel.
func report(op string, err error) {
	if err != nil {
		ggplot.Logger().Warn("canvas: paint failed", "op", op, "err", err)
	}
}

func visible(col color.NRGBA) bool { return col.A > 0 }

// SetClipRect implements paint.Painter.
func (c *Canvas) SetClipRect(r paint.Rect) {
	r = r.Canon()
	c.dc.ResetClip()
	c.dc.ClipRect(r.Min.X, r.Min.Y, r.Width(), r.Height())
}

// stroke strokes the current path.
func (c *Canvas) stroke(op string, s paint.Stroke) {
	c.dc.SetColor(s.Color)
	c.dc.SetLineWidth(s.Width)
	report(op, c.dc.Stroke())
}

// fill fills the current path.
func (c *Canvas) fill(op string, col color.NRGBA) {
	c.dc.SetColor(col)
	report(op, c.dc.Fill())
}

// LineSegment implements paint.Painter.
func (c *Canvas) LineSegment(a, b gg.Point, s paint.Stroke) {
	if s.IsEmpty() {
		return
	}
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.stroke("line", s)
}

// Rect implements paint.Painter. The stroke is drawn inside r.
func (c *Canvas) Rect(r paint.Rect, fill color.NRGBA, s paint.Stroke) {
	r = r.Canon()
	if visible(fill) {
		c.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
		c.fill("rect", fill)
	}
	if s.IsEmpty() {
		return
	}
	// Inset by half the width so the outline stays within r.
	half := s.Width / 2
	w, h := r.Width()-s.Width, r.Height()-s.Width
	if w < 0 || h < 0 {
		// Thicker than the rectangle: the outline covers it completely.
		c.dc.DrawRectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
		c.fill("rect", s.Color)
		return
	}
	c.dc.DrawRectangle(r.Min.X+half, r.Min.Y+half, w, h)
	c.stroke("rect", s)
}

// Circle implements paint.Painter.
func (c *Canvas) Circle(center gg.Point, radius float64, fill color.NRGBA, s paint.Stroke) {
	if radius <= 0 {
		return
	}
	if visible(fill) {
		c.dc.DrawCircle(center.X, center.Y, radius)
		c.fill("circle", fill)
	}
	if !s.IsEmpty() {
		c.dc.DrawCircle(center.X, center.Y, radius)
		c.stroke("circle", s)
	}
}

// tracePath builds the current gg path from p.
func (c *Canvas) tracePath(p paint.PathShape) {
	c.dc.ClearPath()
	c.dc.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		c.dc.LineTo(pt.X, pt.Y)
	}
	if p.Closed {
		c.dc.ClosePath()
	}
}

// Path implements paint.Painter.
func (c *Canvas) Path(p paint.PathShape) {
	if len(p.Points) < 2 {
		return
	}
	if p.Closed && visible(p.Fill) && len(p.Points) >= 3 {
		c.tracePath(p)
		c.fill("path", p.Fill)
	}
	if !p.Stroke.IsEmpty() {
		c.tracePath(p)
		c.stroke("path", p.Stroke)
	}
}

// LayoutNoWrap implements paint.Painter.
func (c *Canvas) LayoutNoWrap(s string, font paint.FontID, col color.NRGBA) *paint.Galley {
	g := &paint.Galley{Text: s, Font: font, Color: col}
	if c.fonts == nil {
		return g
	}
	w, h, ascent := c.fonts.Measure(s, font)
	g.Size = gg.Pt(w, h)
	g.Ascent = ascent
	return g
}

// Text implements paint.Painter. The galley is rotated clockwise by
// t.Angle about t.Pos.
func (c *Canvas) Text(t paint.TextShape) {
	g := t.Galley
	if g.IsEmpty() || c.fonts == nil {
		return
	}
	face := c.fonts.Face(g.Font)
	if face == nil {
		return
	}

	c.dc.Push()
	defer c.dc.Pop()

	if t.Angle != 0 {
		c.dc.RotateAbout(t.Angle, t.Pos.X, t.Pos.Y)
	}
	c.dc.SetFont(face)
	c.dc.SetColor(g.Color)
	c.dc.DrawString(g.Text, t.Pos.X, t.Pos.Y+g.Ascent)
}

// Image implements paint.Painter. Only the tint's alpha is applied; the
// image colors are not modulated.
func (c *Canvas) Image(id paint.ImageID, r, uv paint.Rect, tint color.NRGBA) {
	if c.images == nil {
		ggplot.Logger().Debug("canvas: no image source", "image", id)
		return
	}
	buf, ok := c.images.Image(id)
	if !ok {
		ggplot.Logger().Debug("canvas: unknown image", "image", id)
		return
	}
	r = r.Canon()
	if r.IsEmpty() || tint.A == 0 {
		return
	}

	w, h := buf.Bounds()
	src := uvRect(uv, w, h)
	c.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:             r.Min.X,
		Y:             r.Min.Y,
		DstWidth:      r.Width(),
		DstHeight:     r.Height(),
		SrcRect:       &src,
		Interpolation: gg.InterpBilinear,
		Opacity:       float64(tint.A) / 255,
		BlendMode:     gg.BlendNormal,
	})
}
