// Package blend composites overlay colors onto destination pixels.
//
// A blend is the pairing of a ColorMode, which mixes backdrop and source
// channels, with an AlphaMode, which is a Porter-Duff composition deciding
// how much of each survives. Colors are unpremultiplied Vector4 values in
// the range [0, 1].
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"errors"
	"fmt"

	"github.com/gogpu/fill/pixel"
)

// ErrUnknownMode is returned for a ColorMode or AlphaMode outside the
// defined range.
var ErrUnknownMode = errors.New("blend: unknown mode")

// ColorMode selects how source channels mix with backdrop channels.
type ColorMode uint8

const (
	Normal    ColorMode = iota // Result: S
	Multiply                   // Result: S * B
	Add                        // Result: min(S + B, 1)
	Subtract                   // Result: max(B - S, 0)
	Screen                     // Result: 1 - (1-S)*(1-B)
	Darken                     // Result: min(S, B)
	Lighten                    // Result: max(S, B)
	Overlay                    // Multiply or Screen depending on backdrop
	HardLight                  // Overlay with swapped layers

	colorModeCount
)

var colorModeNames = [colorModeCount]string{
	"Normal", "Multiply", "Add", "Subtract", "Screen",
	"Darken", "Lighten", "Overlay", "HardLight",
}

func (m ColorMode) String() string {
	if m < colorModeCount {
		return colorModeNames[m]
	}
	return fmt.Sprintf("ColorMode(%d)", uint8(m))
}

// AlphaMode is a Porter-Duff composition operator.
type AlphaMode uint8

const (
	SrcOver  AlphaMode = iota // Source over backdrop [default]
	Src                       // Source only
	SrcAtop                   // Source where backdrop exists, backdrop alpha kept
	SrcIn                     // Source where backdrop exists
	SrcOut                    // Source where backdrop is absent
	Dest                      // Backdrop only
	DestAtop                  // Backdrop where source exists, source alpha kept
	DestOver                  // Backdrop over source
	DestIn                    // Backdrop where source exists
	DestOut                   // Backdrop where source is absent
	Clear                     // Nothing
	Xor                       // Source and backdrop where they don't overlap

	alphaModeCount
)

var alphaModeNames = [alphaModeCount]string{
	"SrcOver", "Src", "SrcAtop", "SrcIn", "SrcOut",
	"Dest", "DestAtop", "DestOver", "DestIn", "DestOut",
	"Clear", "Xor",
}

func (m AlphaMode) String() string {
	if m < alphaModeCount {
		return alphaModeNames[m]
	}
	return fmt.Sprintf("AlphaMode(%d)", uint8(m))
}

// Func composites source onto backdrop. amount in [0, 1] scales the source
// alpha before composition.
type Func func(backdrop, source pixel.Vector4, amount float32) pixel.Vector4

// GetFunc returns the composite function for the mode pair.
func GetFunc(c ColorMode, a AlphaMode) (Func, error) {
	if c >= colorModeCount {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, c)
	}
	if a >= alphaModeCount {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, a)
	}

	mix := getMixFunc(c)
	compose := getComposeFunc(a)
	normal := c == Normal

	return func(backdrop, source pixel.Vector4, amount float32) pixel.Vector4 {
		amount = clampAmount(amount)
		source.W *= amount

		// Opaque normal source replaces the backdrop exactly, so a blended
		// row matches a direct fill bit for bit.
		if normal && source.W >= 1 && (a == SrcOver || a == Src) {
			return source
		}
		return compose(backdrop, source, mix)
	}, nil
}

func clampAmount(f float32) float32 {
	switch {
	case f > 1:
		return 1
	case f > 0:
		return f
	default:
		return 0
	}
}
