package pulse

import (
	"github.com/cogentcore/webgpu/wgpu"
)

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)

// Color is an a straight rgba color value with alpha in linear rgb color space.
// The zero value is opaque white, the color a frame is cleared to by default.
type Color struct {
	r1, g1, b1, a1 float32
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// Components returns the color components.
func (c Color) Components() (r, g, b, a float32) {
	return c.r1 + 1, c.g1 + 1, c.b1 + 1, c.a1 + 1
}

// ToWGPU returns the color as the clear value of a render pass.
func (c Color) ToWGPU() wgpu.Color {
	r, g, b, a := c.Components()
	return wgpu.Color{R: float64(r), G: float64(g), B: float64(b), A: float64(a)}
}
