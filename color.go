package minirt

import "image/color"

// Color is a linear RGB color. Components are nominally in [0, 1] but may
// exceed that range while light is being accumulated.
type Color struct {
	R, G, B float64
}

// RGB creates a color from its components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Gray creates a color with all components set to v.
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v}
}

// Add returns the component-wise sum.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Mul returns the component-wise product (filtering one color by another).
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Scale returns the color multiplied by s.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Clamp restricts every component to [0, 1].
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// IsBlack reports whether every component is zero or negative.
func (c Color) IsBlack() bool {
	return c.R <= 0 && c.G <= 0 && c.B <= 0
}

// NRGBA converts the color to an opaque 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: 0xff,
	}
}

// FromColor converts a standard color.Color to Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	}
}

// to8 maps [0, 1] to [0, 255] with rounding.
func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black = Gray(0)
	White = Gray(1)
)
