package ggplot

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/paint"
)

// View is the pan/zoom state applied to every logical coordinate.
//
// The zero View collapses all geometry onto the bounds' center; use
// DefaultView for the identity. A non-positive Scale is accepted and yields
// degenerate or mirrored geometry.
type View struct {
	// X and Y are the pan offset in screen pixels. The offset is not scaled.
	X, Y int
	// Scale is the zoom factor about the center of the bounds.
	Scale float64
}

// DefaultView is the identity view: no offset, scale 1.
var DefaultView = View{Scale: 1}

// Transform maps a logical point into screen space relative to bounds.
//
// The point is scaled about the center of bounds (expressed relative to
// bounds.Min), then the offset is added, then bounds.Min is added to
// re-anchor into absolute screen space.
func (v View) Transform(p gg.Point, bounds paint.Rect) gg.Point {
	center := bounds.Center().Sub(bounds.Min)
	p = p.Sub(center)
	p = p.Mul(v.Scale)
	p = p.Add(center)

	p = p.Add(gg.Pt(float64(v.X), float64(v.Y)))
	return p.Add(bounds.Min)
}

// TransformCoord widens an integer logical coordinate and transforms it.
func (v View) TransformCoord(p image.Point, bounds paint.Rect) gg.Point {
	return v.Transform(gg.Pt(float64(p.X), float64(p.Y)), bounds)
}
