package ggplot

import (
	"fmt"
	"image/color"
)

// Color is a plotting-engine color: 8-bit RGB with a normalized alpha in [0, 1].
type Color struct {
	R, G, B uint8
	Alpha   float64
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Alpha: 1}
}

// RGBA creates a color with the given alpha in [0, 1].
func RGBA(r, g, b uint8, alpha float64) Color {
	return Color{R: r, G: g, B: b, Alpha: alpha}
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = RGBA(0, 0, 0, 0)
)

// NRGBA converts c to the host's unpremultiplied 8-bit color.
//
// The alpha byte is alpha*255 truncated toward zero, so 0.999 maps to 254.
// Alpha is expected to be pre-normalized and is not clamped.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(c.Alpha * 255.0)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(alpha float64) Color {
	c.Alpha = alpha
	return c
}

// String returns the color as "rgba(r, g, b, a)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.Alpha)
}
