package wireframe

import (
	"fmt"
	"math"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
// All of the pipeline's color math happens on these floating-point values; conversion to 8-bit channels
// only happens when a pixel is written out.
type Color struct {
	R, G, B, A float64
}

// DefaultColor is the color given to every vertex of a Model that has vertices but no colors.
var DefaultColor = NewColorRGB(1, 1, 1)

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// NewColorRGB returns a new opaque Color.
func NewColorRGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// NewColorFromBytes returns a new opaque Color from 8-bit channel values.
func NewColorFromBytes(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Lerp linearly interpolates between the calling Color (at t = 0) and the other Color (at t = 1).
func (color Color) Lerp(other Color, t float64) Color {
	return Color{
		R: (1-t)*color.R + t*other.R,
		G: (1-t)*color.G + t*other.G,
		B: (1-t)*color.B + t*other.B,
		A: (1-t)*color.A + t*other.A,
	}
}

// Clamped returns a copy of the Color with every channel clamped to [0, 1]. NaN channels become 0.
func (color Color) Clamped() Color {
	c := func(v float64) float64 {
		if math.IsNaN(v) {
			return 0
		}
		return clamp(v, 0, 1)
	}
	return Color{c(color.R), c(color.G), c(color.B), c(color.A)}
}

// Gamma returns a copy of the Color with the R, G, and B channels raised to the exponent given
// (alpha is left alone). Gamma-correcting for a display gamma of 2.2 is color.Gamma(1 / 2.2).
func (color Color) Gamma(exponent float64) Color {
	color = color.Clamped()
	color.R = math.Pow(color.R, exponent)
	color.G = math.Pow(color.G, exponent)
	color.B = math.Pow(color.B, exponent)
	return color
}

// IsFinite returns false if any channel is NaN or infinite.
func (color Color) IsFinite() bool {
	return isFinite(color.R) && isFinite(color.G) && isFinite(color.B) && isFinite(color.A)
}

// RGBA8 returns the Color's channels clamped and converted to 8-bit values.
func (color Color) RGBA8() (r, g, b, a uint8) {
	c := color.Clamped()
	return uint8(math.Round(c.R * 255)), uint8(math.Round(c.G * 255)), uint8(math.Round(c.B * 255)), uint8(math.Round(c.A * 255))
}

// RGBA implements the image/color.Color interface, returning alpha-premultiplied 16-bit channels.
func (color Color) RGBA() (r, g, b, a uint32) {
	c := color.Clamped()
	a = uint32(math.Round(c.A * 0xffff))
	r = uint32(math.Round(c.R * c.A * 0xffff))
	g = uint32(math.Round(c.G * c.A * 0xffff))
	b = uint32(math.Round(c.B * c.A * 0xffff))
	return
}

// String returns a string representation of the Color.
func (color Color) String() string {
	return fmt.Sprintf("Color(r=%.4f, g=%.4f, b=%.4f, a=%.4f)", color.R, color.G, color.B, color.A)
}
