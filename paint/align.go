package paint

import "github.com/gogpu/gg"

// Align is an alignment along one axis.
type Align uint8

const (
	// AlignMin aligns to the left or top edge.
	AlignMin Align = iota
	// AlignCenter aligns to the middle.
	AlignCenter
	// AlignMax aligns to the right or bottom edge.
	AlignMax
)

// String returns the name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignMin:
		return "Min"
	case AlignCenter:
		return "Center"
	case AlignMax:
		return "Max"
	default:
		return "Unknown"
	}
}

// factor returns how much of a size lies before the anchor on this axis.
func (a Align) factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignMax:
		return 1
	default:
		return 0
	}
}

// Align2 is a two-dimensional alignment: [horizontal, vertical].
type Align2 [2]Align

// The nine anchor points of a rectangle.
var (
	LeftTop      = Align2{AlignMin, AlignMin}
	CenterTop    = Align2{AlignCenter, AlignMin}
	RightTop     = Align2{AlignMax, AlignMin}
	LeftCenter   = Align2{AlignMin, AlignCenter}
	CenterCenter = Align2{AlignCenter, AlignCenter}
	RightCenter  = Align2{AlignMax, AlignCenter}
	LeftBottom   = Align2{AlignMin, AlignMax}
	CenterBottom = Align2{AlignCenter, AlignMax}
	RightBottom  = Align2{AlignMax, AlignMax}
)

// X returns the horizontal alignment.
func (a Align2) X() Align { return a[0] }

// Y returns the vertical alignment.
func (a Align2) Y() Align { return a[1] }

// String returns e.g. "LeftTop" or "CenterBottom".
func (a Align2) String() string {
	h := [...]string{"Left", "Center", "Right"}
	v := [...]string{"Top", "Center", "Bottom"}
	if int(a[0]) >= len(h) || int(a[1]) >= len(v) {
		return "Unknown"
	}
	return h[a[0]] + v[a[1]]
}

// AnchorRect moves r so that the point this alignment names lands on r.Min.
// With LeftTop r is unchanged; with RightBottom r ends at its old Min.
func (a Align2) AnchorRect(r Rect) Rect {
	size := r.Size()
	d := gg.Pt(-size.X*a[0].factor(), -size.Y*a[1].factor())
	return r.Translate(d)
}

// AnchorSize places a rectangle of the given size so that its anchor point
// is at pos.
func (a Align2) AnchorSize(pos, size gg.Point) Rect {
	return a.AnchorRect(RectFromMinSize(pos, size))
}
