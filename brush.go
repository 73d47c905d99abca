package fill

// Brush describes what to paint a region with.
// This is a sealed interface: only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single color
//   - *LinearGradientBrush, *RadialGradientBrush, *EllipticGradientBrush:
//     color stops along a position function
//   - *ImageBrush: a tiled source image
//   - RecolorBrush: replaces colors close to a source color
//   - *PatternBrush: a tiled boolean pattern of two colors
//   - CustomBrush: a user color function
//
// A brush is an immutable description. Fill turns it into an Applicator for
// one frame and pixel format.
type Brush interface {
	// brushMarker seals the interface.
	brushMarker()
}

// SolidBrush paints a single color.
type SolidBrush struct {
	Color Color
}

func (SolidBrush) brushMarker() {}

// Solid returns a SolidBrush.
//
// Example:
//
//	brush := fill.Solid(fill.HotPink)
func Solid(c Color) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidHex returns a SolidBrush from a hex color string.
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// WithAlpha returns a copy of the brush with the alpha replaced.
func (b SolidBrush) WithAlpha(alpha float32) SolidBrush {
	return SolidBrush{Color: b.Color.WithAlpha(alpha)}
}
