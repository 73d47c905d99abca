package pixel

// Pixel is implemented by every storable pixel format.
//
// FromVector4 is called on the zero value of P and must not depend on the
// receiver; it clamps out-of-range components the way the format requires.
type Pixel[P any] interface {
	comparable

	// ToVector4 expands the pixel into a straight-alpha color.
	ToVector4() Vector4

	// FromVector4 packs a straight-alpha color into the format.
	FromVector4(v Vector4) P
}

// RGBA32 is 8-bit per channel RGBA with straight alpha.
type RGBA32 struct {
	R, G, B, A uint8
}

// ToVector4 implements Pixel.
func (p RGBA32) ToVector4() Vector4 {
	return Vector4{
		X: float32(p.R) / 255,
		Y: float32(p.G) / 255,
		Z: float32(p.B) / 255,
		W: float32(p.A) / 255,
	}
}

// FromVector4 implements Pixel.
func (RGBA32) FromVector4(v Vector4) RGBA32 {
	v = v.Clamp01()
	return RGBA32{R: toByte(v.X), G: toByte(v.Y), B: toByte(v.Z), A: toByte(v.W)}
}

// BGRA32 is 8-bit per channel BGRA with straight alpha.
type BGRA32 struct {
	B, G, R, A uint8
}

// ToVector4 implements Pixel.
func (p BGRA32) ToVector4() Vector4 {
	return Vector4{
		X: float32(p.R) / 255,
		Y: float32(p.G) / 255,
		Z: float32(p.B) / 255,
		W: float32(p.A) / 255,
	}
}

// FromVector4 implements Pixel.
func (BGRA32) FromVector4(v Vector4) BGRA32 {
	v = v.Clamp01()
	return BGRA32{B: toByte(v.Z), G: toByte(v.Y), R: toByte(v.X), A: toByte(v.W)}
}

// RGB24 is 8-bit per channel RGB without alpha. Alpha is dropped on store
// and reads back as fully opaque.
type RGB24 struct {
	R, G, B uint8
}

// ToVector4 implements Pixel.
func (p RGB24) ToVector4() Vector4 {
	return Vector4{
		X: float32(p.R) / 255,
		Y: float32(p.G) / 255,
		Z: float32(p.B) / 255,
		W: 1,
	}
}

// FromVector4 implements Pixel.
func (RGB24) FromVector4(v Vector4) RGB24 {
	v = v.Clamp01()
	return RGB24{R: toByte(v.X), G: toByte(v.Y), B: toByte(v.Z)}
}

// RGBAVector stores the color as float32 components clamped to [0, 1].
type RGBAVector struct {
	R, G, B, A float32
}

// ToVector4 implements Pixel.
func (p RGBAVector) ToVector4() Vector4 {
	return Vector4{X: p.R, Y: p.G, Z: p.B, W: p.A}
}

// FromVector4 implements Pixel.
func (RGBAVector) FromVector4(v Vector4) RGBAVector {
	v = v.Clamp01()
	return RGBAVector{R: v.X, G: v.Y, B: v.Z, A: v.W}
}

// toByte rounds a value in [0, 1] to the nearest 8-bit level.
func toByte(f float32) uint8 {
	return uint8(f*255 + 0.5)
}

// ToVector4s expands a row of pixels into dst. dst must be at least as long as src.
func ToVector4s[P Pixel[P]](src []P, dst []Vector4) {
	dst = dst[:len(src)]
	for i := range src {
		dst[i] = src[i].ToVector4()
	}
}

// FromVector4s packs a row of colors into dst. dst must be at least as long as src.
func FromVector4s[P Pixel[P]](src []Vector4, dst []P) {
	var zero P
	dst = dst[:len(src)]
	for i := range src {
		dst[i] = zero.FromVector4(src[i])
	}
}

// Convert packs a single color into the pixel format P.
func Convert[P Pixel[P]](v Vector4) P {
	var zero P
	return zero.FromVector4(v)
}
