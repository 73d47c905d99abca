package fill

import "github.com/gogpu/fill/pixel"

// ColorFunc returns the color for the pixel at (x, y).
// It is called concurrently for different rows and must not mutate shared
// state.
type ColorFunc func(x, y int) Color

// CustomBrush paints with a user-defined color function.
//
// Example:
//
//	// Fade from red to blue over 100 pixels.
//	fade := fill.NewCustomBrush(func(x, _ int) fill.Color {
//	    return fill.Red.Lerp(fill.Blue, float32(x)/100)
//	})
type CustomBrush struct {
	// Func determines the color at each pixel. A nil Func paints
	// transparent pixels.
	Func ColorFunc

	// Name is an optional identifier for debugging and logging.
	Name string
}

func (CustomBrush) brushMarker() {}

// NewCustomBrush returns a CustomBrush for fn.
func NewCustomBrush(fn ColorFunc) CustomBrush {
	return CustomBrush{Func: fn}
}

// WithName returns a copy of the brush with the given name.
func (b CustomBrush) WithName(name string) CustomBrush {
	b.Name = name
	return b
}

// Checkerboard returns a checkerboard of size x size squares.
func Checkerboard(c0, c1 Color, size int) CustomBrush {
	size = max(size, 1)
	return CustomBrush{
		Func: func(x, y int) Color {
			if (floorDiv(x, size)+floorDiv(y, size))%2 == 0 {
				return c0
			}
			return c1
		},
		Name: "checkerboard",
	}
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && a < 0 {
		q--
	}
	return q
}

type customApplicator[P pixel.Pixel[P]] struct {
	baseApplicator[P]
	fn ColorFunc
}

func newCustomApplicator[P pixel.Pixel[P]](base baseApplicator[P], b CustomBrush) (Applicator[P], error) {
	fn := b.Func
	if fn == nil {
		fn = func(int, int) Color { return Transparent }
	}
	return &customApplicator[P]{baseApplicator: base, fn: fn}, nil
}

func (a *customApplicator[P]) At(x, y int) P {
	return pixel.Convert[P](a.fn(x, y).Vector4())
}

func (a *customApplicator[P]) Apply(coverage []float32, x, y int) error {
	return a.applyRow(coverage, x, y, overlayFromAt(a.At))
}

func (a *customApplicator[P]) Close() error {
	return nil
}
