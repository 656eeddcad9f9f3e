package ggplot

import (
	"image"
	"math"

	"github.com/gogpu/ggplot/paint"
)

// FontFamily names a font family. The generic families below map onto the
// host's defaults; any other value names a host family registered under
// exactly that name.
type FontFamily string

// Generic font families.
const (
	FamilySerif     FontFamily = "serif"
	FamilySansSerif FontFamily = "sans-serif"
	FamilyMonospace FontFamily = "monospace"
)

// paintFamily maps f to a host family. Serif, sans-serif and the empty
// family all map to the proportional default.
func (f FontFamily) paintFamily() paint.FontFamily {
	switch f {
	case FamilySerif, FamilySansSerif, "":
		return paint.Proportional
	case FamilyMonospace:
		return paint.Monospace
	default:
		return paint.Named(string(f))
	}
}

// FontTransform rotates text by whole quarter turns, clockwise.
type FontTransform int

// Quarter-turn rotations.
const (
	Rotate0 FontTransform = iota
	Rotate90
	Rotate180
	Rotate270
)

// Turns returns the number of clockwise quarter turns in [0, 3].
func (t FontTransform) Turns() int {
	return int(t) & 3
}

// Angle returns the rotation in radians.
func (t FontTransform) Angle() float64 {
	return float64(t.Turns()) * math.Pi / 2
}

// HPos is the horizontal part of a text anchor.
type HPos uint8

// Horizontal anchor positions.
const (
	HLeft HPos = iota
	HCenter
	HRight
)

// VPos is the vertical part of a text anchor.
type VPos uint8

// Vertical anchor positions.
const (
	VTop VPos = iota
	VCenter
	VBottom
)

// Pos is a text anchor: which point of the text's bounding box is placed at
// the draw position.
type Pos struct {
	H HPos
	V VPos
}

// DefaultPos anchors text by its top-left corner.
var DefaultPos = Pos{H: HLeft, V: VTop}

// align2 returns the host alignment for p.
func (p Pos) align2() paint.Align2 {
	var a paint.Align2
	switch p.H {
	case HCenter:
		a[0] = paint.AlignCenter
	case HRight:
		a[0] = paint.AlignMax
	default:
		a[0] = paint.AlignMin
	}
	switch p.V {
	case VCenter:
		a[1] = paint.AlignCenter
	case VBottom:
		a[1] = paint.AlignMax
	default:
		a[1] = paint.AlignMin
	}
	return a
}

// TextStyle describes how a piece of text is drawn.
type TextStyle struct {
	// Size is the font size in points.
	Size      float64
	Family    FontFamily
	Color     Color
	Anchor    Pos
	Transform FontTransform
}

// anchorRotation advances an anchor one quarter turn clockwise around the
// rectangle's perimeter. CenterCenter is a fixed point.
var anchorRotation = map[paint.Align2]paint.Align2{
	paint.LeftTop:      paint.RightTop,
	paint.RightTop:     paint.RightBottom,
	paint.RightBottom:  paint.LeftBottom,
	paint.LeftBottom:   paint.LeftTop,
	paint.LeftCenter:   paint.CenterTop,
	paint.CenterTop:    paint.RightCenter,
	paint.RightCenter:  paint.CenterBottom,
	paint.CenterBottom: paint.LeftCenter,
	paint.CenterCenter: paint.CenterCenter,
}

// rotateAnchor applies the quarter-turn table turns times.
func rotateAnchor(a paint.Align2, turns int) paint.Align2 {
	for range turns {
		a = anchorRotation[a]
	}
	return a
}

// DrawText draws text anchored at pos.
//
// The galley is measured with the resolved font, placed so that the
// rotated anchor lands on the transformed position, and painted rotated by
// the style's quarter turns. Text that measures empty is not painted.
func (b *Backend) DrawText(text string, style TextStyle, pos image.Point) error {
	p := b.transform(pos)

	font := paint.FontID{
		Size:   style.Size,
		Family: style.Family.paintFamily(),
	}
	col := style.Color.NRGBA()
	turns := style.Transform.Turns()

	anchor := rotateAnchor(style.Anchor.align2(), turns)

	galley := b.painter.LayoutNoWrap(text, font, col)
	if galley.IsEmpty() {
		Logger().Debug("ggplot: skipping empty text", "text", text, "font", font.Family.String())
		return nil
	}

	r := anchor.AnchorRect(galley.Rect(p))
	b.painter.Text(paint.TextShape{
		Pos:    r.Min,
		Galley: galley,
		Angle:  style.Transform.Angle(),
	})
	return nil
}
