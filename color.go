package transformblend

import (
	"image/color"

	"github.com/solarlune/transformblend/math32"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// Multiply returns a copy of the Color with its R, G, and B components multiplied by the value given; this is
// handy for dimming a color.
func (c Color) Multiply(value float32) Color {
	c.R *= value
	c.G *= value
	c.B *= value
	return c
}

// ToNRGBA64 converts the Color to a non-alpha-premultiplied color.NRGBA64, clamping each component to the 0-1 range.
func (c Color) ToNRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(math32.Clamp(c.R, 0, 1) * 65535),
		G: uint16(math32.Clamp(c.G, 0, 1) * 65535),
		B: uint16(math32.Clamp(c.B, 0, 1) * 65535),
		A: uint16(math32.Clamp(c.A, 0, 1) * 65535),
	}
}

// RGBA implements color.Color, so a Color can be handed to anything that draws with the standard image/color types.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToNRGBA64().RGBA()
}
