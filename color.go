package fill

import (
	"image/color"
	"strconv"

	"github.com/gogpu/fill/pixel"
)

// Color is a straight-alpha color with components in [0, 1].
//
// Color implements color.Color, so it can be handed to any image/draw API.
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color from straight-alpha components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard library color.
func FromColor(c color.Color) Color {
	return FromVector4(pixel.VectorFromColor(c))
}

// FromVector4 converts a pixel vector to a Color.
func FromVector4(v pixel.Vector4) Color {
	return Color{R: v.X, G: v.Y, B: v.Z, A: v.W}
}

// Vector4 returns the color as a pixel vector.
func (c Color) Vector4() pixel.Vector4 {
	return pixel.Vector4{X: c.R, Y: c.G, Z: c.B, W: c.A}
}

// RGBA implements color.Color. The result is alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Vector4().NRGBA64().RGBA()
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Lerp interpolates component-wise between c and other.
func (c Color) Lerp(other Color, t float32) Color {
	return FromVector4(c.Vector4().Lerp(other.Vector4(), t))
}

// Hex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA" with an optional '#'
// prefix. Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Black
	}

	var r, g, b, a uint64
	switch len(hex) {
	case 3:
		r, g, b, a = v>>8&0xf*17, v>>4&0xf*17, v&0xf*17, 255
	case 4:
		r, g, b, a = v>>12&0xf*17, v>>8&0xf*17, v>>4&0xf*17, v&0xf*17
	case 6:
		r, g, b, a = v>>16&0xff, v>>8&0xff, v&0xff, 255
	case 8:
		r, g, b, a = v>>24&0xff, v>>16&0xff, v>>8&0xff, v&0xff
	default:
		return Black
	}

	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = Hex("#008000")
	Lime        = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	HotPink     = Hex("#FF69B4")
	LimeGreen   = Hex("#32CD32")
	Transparent = RGBA(0, 0, 0, 0)
)
