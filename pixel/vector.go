// Package pixel defines the pixel formats the fill engine writes to and the
// row-addressable frame that holds them.
//
// Every format converts to and from a straight-alpha Vector4 whose components
// are in the range [0, 1]. The engine does all of its color math on Vector4
// rows and only touches the concrete format at the row boundary.
package pixel

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Vector4 is a straight (non-premultiplied) RGBA color with float32 components.
// X, Y, Z and W hold red, green, blue and alpha.
type Vector4 struct {
	X, Y, Z, W float32
}

// Add returns v + o.
func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o.
func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Mul returns the component-wise product of v and o.
func (v Vector4) Mul(o Vector4) Vector4 {
	return Vector4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Scale returns v * s.
func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Lerp interpolates component-wise between v and o.
// t = 0 yields v, t = 1 yields o.
func (v Vector4) Lerp(o Vector4, t float32) Vector4 {
	return Vector4{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
		W: v.W + (o.W-v.W)*t,
	}
}

// DistanceSquared returns the squared euclidean distance between v and o.
func (v Vector4) DistanceSquared(o Vector4) float32 {
	d := v.Sub(o)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z + d.W*d.W
}

// Clamp01 clamps every component to [0, 1]. NaN components become 0.
func (v Vector4) Clamp01() Vector4 {
	return Vector4{clamp01(v.X), clamp01(v.Y), clamp01(v.Z), clamp01(v.W)}
}

// Min returns the component-wise minimum of v and o.
func (v Vector4) Min(o Vector4) Vector4 {
	return Vector4{math32.Min(v.X, o.X), math32.Min(v.Y, o.Y), math32.Min(v.Z, o.Z), math32.Min(v.W, o.W)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector4) Max(o Vector4) Vector4 {
	return Vector4{math32.Max(v.X, o.X), math32.Max(v.Y, o.Y), math32.Max(v.Z, o.Z), math32.Max(v.W, o.W)}
}

// NRGBA64 converts v to a standard library color.
func (v Vector4) NRGBA64() color.NRGBA64 {
	c := v.Clamp01()
	return color.NRGBA64{
		R: uint16(c.X*0xffff + 0.5),
		G: uint16(c.Y*0xffff + 0.5),
		B: uint16(c.Z*0xffff + 0.5),
		A: uint16(c.W*0xffff + 0.5),
	}
}

// VectorFromColor converts any standard library color to a straight-alpha Vector4.
func VectorFromColor(c color.Color) Vector4 {
	n, ok := c.(color.NRGBA64)
	if !ok {
		n = color.NRGBA64Model.Convert(c).(color.NRGBA64)
	}
	return Vector4{
		X: float32(n.R) / 0xffff,
		Y: float32(n.G) / 0xffff,
		Z: float32(n.B) / 0xffff,
		W: float32(n.A) / 0xffff,
	}
}

func clamp01(f float32) float32 {
	if !(f > 0) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
