package fill

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/fill/pixel"
)

// ImageBrush tiles an image over the filled shape. The tiling is anchored
// at the top-left corner of the shape's bounds, not at the image origin.
//
// When Image is a *pixel.Frame in the destination format it is read in
// place. Any other image is converted once per fill, and the converted copy
// is dropped when the fill finishes.
type ImageBrush struct {
	Image image.Image
}

// NewImageBrush returns a brush tiling img.
func NewImageBrush(img image.Image) *ImageBrush {
	return &ImageBrush{Image: img}
}

func (*ImageBrush) brushMarker() {}

// imageApplicator samples a source frame it does not own.
type imageApplicator[P pixel.Pixel[P]] struct {
	baseApplicator[P]
	src              *pixel.Frame[P]
	offsetX, offsetY int
}

// ownedImageApplicator samples a converted copy that lives only as long as
// the applicator.
type ownedImageApplicator[P pixel.Pixel[P]] struct {
	*imageApplicator[P]
	once sync.Once
}

func newImageApplicator[P pixel.Pixel[P]](base baseApplicator[P], b *ImageBrush, region image.Rectangle) (Applicator[P], error) {
	if b == nil || b.Image == nil {
		return nil, ErrNilBrush
	}
	if b.Image.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	a := &imageApplicator[P]{
		baseApplicator: base,
		offsetX:        max(region.Min.X, 0),
		offsetY:        max(region.Min.Y, 0),
	}

	if f, ok := b.Image.(*pixel.Frame[P]); ok {
		a.src = f
		return a, nil
	}

	f, err := pixel.FromImage[P](b.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptyImage, err)
	}
	a.src = f
	return &ownedImageApplicator[P]{imageApplicator: a}, nil
}

func (a *imageApplicator[P]) At(x, y int) P {
	sx := mod(x-a.offsetX, a.src.Width())
	sy := mod(y-a.offsetY, a.src.Height())
	return a.src.PixelAt(sx, sy)
}

func (a *imageApplicator[P]) Apply(coverage []float32, x, y int) error {
	return a.applyRow(coverage, x, y, func(dst []pixel.Vector4, x, y int) {
		w := a.src.Width()
		row := a.src.Row(mod(y-a.offsetY, a.src.Height()))
		sx := mod(x-a.offsetX, w)
		for i := range dst {
			dst[i] = row[sx].ToVector4()
			if sx++; sx == w {
				sx = 0
			}
		}
	})
}

// Close is a no-op: the source belongs to the caller.
func (a *imageApplicator[P]) Close() error {
	return nil
}

// Close drops the converted copy. Later calls do nothing.
func (a *ownedImageApplicator[P]) Close() error {
	a.once.Do(func() {
		a.src = nil
	})
	return nil
}

// mod returns a mod n in [0, n).
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
