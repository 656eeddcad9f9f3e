package ggplot

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggplot/paint"
)

// Region is a drawing area carved out of a larger available rectangle.
// Width and height default to the available size and may be overridden;
// the min corner never moves.
type Region struct {
	available paint.Rect
	width     *float64
	height    *float64
}

// NewRegion creates a region covering all of available.
func NewRegion(available paint.Rect) *Region {
	return &Region{available: available}
}

// SetWidth overrides the region's width.
func (r *Region) SetWidth(w float64) { r.width = &w }

// SetHeight overrides the region's height.
func (r *Region) SetHeight(h float64) { r.height = &h }

// Width overrides the width and returns r for chaining.
func (r *Region) Width(w float64) *Region {
	r.SetWidth(w)
	return r
}

// Height overrides the height and returns r for chaining.
func (r *Region) Height(h float64) *Region {
	r.SetHeight(h)
	return r
}

// Bounds returns the region's rectangle.
func (r *Region) Bounds() paint.Rect {
	size := r.available.Size()
	if r.width != nil {
		size.X = *r.width
	}
	if r.height != nil {
		size.Y = *r.height
	}
	return paint.RectFromMinSize(r.available.Min, gg.Pt(size.X, size.Y))
}

// Backend creates a Backend bound to the region.
func (r *Region) Backend(painter paint.Painter, opts ...Option) *Backend {
	return New(r.Bounds(), painter, opts...)
}
