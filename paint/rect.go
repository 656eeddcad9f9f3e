package paint

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle given by its min and max corners.
// A Rect whose Min lies right of or below its Max is allowed; it arises when
// the view scale is negative and is painted mirrored.
type Rect struct {
	Min, Max gg.Point
}

// RectFromMinMax creates a rectangle from two corners.
func RectFromMinMax(minPt, maxPt gg.Point) Rect {
	return Rect{Min: minPt, Max: maxPt}
}

// RectFromMinSize creates a rectangle from its min corner and size.
func RectFromMinSize(minPt, size gg.Point) Rect {
	return Rect{Min: minPt, Max: minPt.Add(size)}
}

// RectFromCenterSize creates a rectangle of the given size centered at center.
func RectFromCenterSize(center, size gg.Point) Rect {
	half := size.Mul(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the width and height as a vector.
func (r Rect) Size() gg.Point { return gg.Pt(r.Width(), r.Height()) }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() gg.Point {
	return gg.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Canon returns the rectangle with Min <= Max on both axes.
func (r Rect) Canon() Rect {
	return Rect{
		Min: gg.Pt(math.Min(r.Min.X, r.Max.X), math.Min(r.Min.Y, r.Max.Y)),
		Max: gg.Pt(math.Max(r.Min.X, r.Max.X), math.Max(r.Min.Y, r.Max.Y)),
	}
}

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p gg.Point) bool {
	c := r.Canon()
	return p.X >= c.Min.X && p.X <= c.Max.X && p.Y >= c.Min.Y && p.Y <= c.Max.Y
}

// ContainsRect reports whether o lies entirely inside r.
// eps widens r to absorb floating-point error.
func (r Rect) ContainsRect(o Rect, eps float64) bool {
	c, oc := r.Canon(), o.Canon()
	return oc.Min.X >= c.Min.X-eps && oc.Min.Y >= c.Min.Y-eps &&
		oc.Max.X <= c.Max.X+eps && oc.Max.Y <= c.Max.Y+eps
}

// Translate returns r moved by d.
func (r Rect) Translate(d gg.Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// UnitRect is the full texture coordinate range (0,0)-(1,1).
var UnitRect = Rect{Min: gg.Pt(0, 0), Max: gg.Pt(1, 1)}
