package paint

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
)

// FamilyKind selects how a FontFamily is resolved by the host.
type FamilyKind uint8

const (
	// KindProportional is the host's default variable-width family.
	KindProportional FamilyKind = iota
	// KindMonospace is the host's default fixed-width family.
	KindMonospace
	// KindNamed refers to a family registered under a name.
	KindNamed
)

// FontFamily is a host font family.
type FontFamily struct {
	Kind FamilyKind
	// Name is set only for KindNamed.
	Name string
}

// Host default families.
var (
	Proportional = FontFamily{Kind: KindProportional}
	Monospace    = FontFamily{Kind: KindMonospace}
)

// Named returns the family registered under name.
func Named(name string) FontFamily {
	return FontFamily{Kind: KindNamed, Name: name}
}

// String returns a human readable family name.
func (f FontFamily) String() string {
	switch f.Kind {
	case KindProportional:
		return "Proportional"
	case KindMonospace:
		return "Monospace"
	default:
		return fmt.Sprintf("Name(%q)", f.Name)
	}
}

// FontID identifies a font at a specific size in points.
type FontID struct {
	Size   float64
	Family FontFamily
}

// Galley is a single line of laid out text.
type Galley struct {
	Text  string
	Font  FontID
	Color color.NRGBA
	// Size is the measured extent: advance width and line height.
	Size gg.Point
	// Ascent is the distance from the top of the galley to the baseline.
	Ascent float64
}

// IsEmpty reports whether the galley has nothing to paint.
func (g *Galley) IsEmpty() bool {
	return g == nil || g.Text == "" || g.Size.X <= 0 || g.Size.Y <= 0
}

// Rect returns the galley's extent placed at pos.
func (g *Galley) Rect(pos gg.Point) Rect {
	return RectFromMinSize(pos, g.Size)
}
