package pixel

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

// Frame is a row-addressable pixel buffer of a single format.
//
// Frame implements draw.Image, so any standard library or x/image drawing
// routine can read from and write to it.
//
// Thread safety: distinct rows may be written concurrently. Anything else
// requires external synchronization.
type Frame[P Pixel[P]] struct {
	width  int
	height int
	pix    []P
}

// NewFrame allocates a zeroed frame.
func NewFrame[P Pixel[P]](width, height int) (*Frame[P], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Frame[P]{
		width:  width,
		height: height,
		pix:    make([]P, width*height),
	}, nil
}

// FromImage copies img into a new frame of format P. The copy is anchored at
// the origin regardless of img.Bounds().Min.
func FromImage[P Pixel[P]](img image.Image) (*Frame[P], error) {
	b := img.Bounds()
	f, err := NewFrame[P](b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Copy(f, image.Point{}, img, b, draw.Src, nil)
	return f, nil
}

// Width returns the frame width in pixels.
func (f *Frame[P]) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame[P]) Height() int { return f.height }

// Bounds implements image.Image.
func (f *Frame[P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// Row returns the pixels of row y. The slice aliases the frame storage.
func (f *Frame[P]) Row(y int) []P {
	i := y * f.width
	return f.pix[i : i+f.width : i+f.width]
}

// PixelAt returns the pixel at (x, y). Out-of-range coordinates panic.
func (f *Frame[P]) PixelAt(x, y int) P {
	return f.pix[y*f.width+x]
}

// SetPixel stores p at (x, y). Out-of-range coordinates panic.
func (f *Frame[P]) SetPixel(x, y int, p P) {
	f.pix[y*f.width+x] = p
}

// Fill sets every pixel of the frame to p.
func (f *Frame[P]) Fill(p P) {
	for i := range f.pix {
		f.pix[i] = p
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame[P]) Clone() *Frame[P] {
	pix := make([]P, len(f.pix))
	copy(pix, f.pix)
	return &Frame[P]{width: f.width, height: f.height, pix: pix}
}

// At implements image.Image. Pixels outside the frame are transparent.
func (f *Frame[P]) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(f.Bounds()) {
		return color.NRGBA64{}
	}
	return f.PixelAt(x, y).ToVector4().NRGBA64()
}

// Set implements draw.Image. Pixels outside the frame are ignored.
func (f *Frame[P]) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(f.Bounds()) {
		return
	}
	f.SetPixel(x, y, Convert[P](VectorFromColor(c)))
}

// ColorModel implements image.Image. Colors are rounded through P.
func (f *Frame[P]) ColorModel() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return Convert[P](VectorFromColor(c)).ToVector4().NRGBA64()
	})
}
