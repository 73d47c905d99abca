package blend

import "github.com/gogpu/fill/pixel"

// epsilon bounds the divisor when unpremultiplying a composed color.
const epsilon = 0.001

// composeFunc combines backdrop and source using mix for the overlapping
// region. Source alpha already carries the blend amount.
type composeFunc func(backdrop, source pixel.Vector4, mix mixFunc) pixel.Vector4

func getComposeFunc(mode AlphaMode) composeFunc {
	switch mode {
	case SrcOver:
		return composeSrcOver
	case Src:
		return composeSrc
	case SrcAtop:
		return composeSrcAtop
	case SrcIn:
		return composeSrcIn
	case SrcOut:
		return composeSrcOut
	case Dest:
		return composeDest
	case DestAtop:
		return composeDestAtop
	case DestOver:
		return composeDestOver
	case DestIn:
		return composeDestIn
	case DestOut:
		return composeDestOut
	case Clear:
		return composeClear
	case Xor:
		return composeXor
	default:
		return composeSrcOver
	}
}

func composeSrcOver(b, s pixel.Vector4, mix mixFunc) pixel.Vector4 {
	if s.W == 0 {
		return b
	}
	return over(b, s, mix(b, s))
}

func composeSrc(_, s pixel.Vector4, _ mixFunc) pixel.Vector4 {
	return s
}

func composeSrcAtop(b, s pixel.Vector4, mix mixFunc) pixel.Vector4 {
	return atop(b, s, mix(b, s))
}

func composeSrcIn(b, s pixel.Vector4, _ mixFunc) pixel.Vector4 {
	return in(b, s)
}

func composeSrcOut(b, s pixel.Vector4, _ mixFunc) pixel.Vector4 {
	return out(b, s)
}

func composeDest(b, _ pixel.Vector4, _ mixFunc) pixel.Vector4 {
	return b
}

// Dest* operators run the Src* formula with the layers swapped.

func composeDestAtop(b, s pixel.Vector4, mix mixFunc) pixel.Vector4 {
	return atop(s, b, mix(s, b))
}

func composeDestOver(b, s pixel.Vector4, mix mixFunc) pixel.Vector4 {
	return over(s, b, mix(s, b))
}

func composeDestIn(b, s pixel.Vector4, _ mixFunc) pixel.Vector4 {
	return in(s, b)
}

func composeDestOut(b, s pixel.Vector4, _ mixFunc) pixel.Vector4 {
	return out(s, b)
}

func composeClear(_, _ pixel.Vector4, _ mixFunc) pixel.Vector4 {
	return pixel.Vector4{}
}

func composeXor(b, s pixel.Vector4, _ mixFunc) pixel.Vector4 {
	srcW := 1 - b.W
	dstW := 1 - s.W

	alpha := s.W*srcW + b.W*dstW
	c := s.Scale(s.W * srcW).Add(b.Scale(b.W * dstW))
	return unpremultiply(c, alpha)
}

// over: S*Sa*(1-Ba) + B*Ba*(1-Sa) + mix*Sa*Ba
func over(dst, src, mixed pixel.Vector4) pixel.Vector4 {
	blendW := dst.W * src.W
	dstW := dst.W - blendW
	srcW := src.W - blendW

	alpha := dstW + src.W
	c := dst.Scale(dstW).Add(src.Scale(srcW)).Add(mixed.Scale(blendW))
	return unpremultiply(c, alpha)
}

// atop: B*Ba*(1-Sa) + mix*Sa*Ba, alpha Ba
func atop(dst, src, mixed pixel.Vector4) pixel.Vector4 {
	blendW := dst.W * src.W
	dstW := dst.W - blendW

	alpha := dst.W
	c := dst.Scale(dstW).Add(mixed.Scale(blendW))
	return unpremultiply(c, alpha)
}

// in: S, alpha Sa*Ba
func in(dst, src pixel.Vector4) pixel.Vector4 {
	alpha := dst.W * src.W
	return unpremultiply(src.Scale(alpha), alpha)
}

// out: S, alpha Sa*(1-Ba)
func out(dst, src pixel.Vector4) pixel.Vector4 {
	alpha := (1 - dst.W) * src.W
	return unpremultiply(src.Scale(alpha), alpha)
}

func unpremultiply(c pixel.Vector4, alpha float32) pixel.Vector4 {
	d := alpha
	if d < epsilon {
		d = epsilon
	}
	c = c.Scale(1 / d)
	c.W = alpha
	return c
}
