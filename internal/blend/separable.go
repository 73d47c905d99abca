package blend

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/fill/pixel"
)

// mixFunc computes the separable blend B(backdrop, source) per channel.
// The W component of the result is ignored by the compose step.
type mixFunc func(backdrop, source pixel.Vector4) pixel.Vector4

func getMixFunc(mode ColorMode) mixFunc {
	switch mode {
	case Normal:
		return mixNormal
	case Multiply:
		return mixMultiply
	case Add:
		return mixAdd
	case Subtract:
		return mixSubtract
	case Screen:
		return mixScreen
	case Darken:
		return mixDarken
	case Lighten:
		return mixLighten
	case Overlay:
		return mixOverlay
	case HardLight:
		return mixHardLight
	default:
		return mixNormal
	}
}

func mixNormal(_, s pixel.Vector4) pixel.Vector4 {
	return s
}

func mixMultiply(b, s pixel.Vector4) pixel.Vector4 {
	return b.Mul(s)
}

func mixAdd(b, s pixel.Vector4) pixel.Vector4 {
	return perChannel(b, s, func(b, s float32) float32 {
		return math32.Min(1, b+s)
	})
}

func mixSubtract(b, s pixel.Vector4) pixel.Vector4 {
	return perChannel(b, s, func(b, s float32) float32 {
		return math32.Max(0, b-s)
	})
}

func mixScreen(b, s pixel.Vector4) pixel.Vector4 {
	return perChannel(b, s, func(b, s float32) float32 {
		return 1 - (1-b)*(1-s)
	})
}

func mixDarken(b, s pixel.Vector4) pixel.Vector4 {
	return b.Min(s)
}

func mixLighten(b, s pixel.Vector4) pixel.Vector4 {
	return b.Max(s)
}

func mixOverlay(b, s pixel.Vector4) pixel.Vector4 {
	return perChannel(b, s, overlayChannel)
}

func mixHardLight(b, s pixel.Vector4) pixel.Vector4 {
	return perChannel(s, b, overlayChannel)
}

func overlayChannel(b, s float32) float32 {
	if b <= 0.5 {
		return 2 * b * s
	}
	return 1 - 2*(1-s)*(1-b)
}

func perChannel(b, s pixel.Vector4, f func(b, s float32) float32) pixel.Vector4 {
	return pixel.Vector4{
		X: f(b.X, s.X),
		Y: f(b.Y, s.Y),
		Z: f(b.Z, s.Z),
		W: s.W,
	}
}
