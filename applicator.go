package fill

import (
	"fmt"
	"image"

	"github.com/gogpu/fill/internal/blend"
	"github.com/gogpu/fill/memory"
	"github.com/gogpu/fill/pixel"
)

// Applicator paints one brush onto one frame for the duration of a fill.
//
// At and Apply are safe for concurrent use on distinct rows. Close releases
// any resource the applicator owns; calling it again is a no-op.
type Applicator[P pixel.Pixel[P]] interface {
	// At returns the brush color at (x, y) in the frame's pixel format.
	At(x, y int) P

	// Apply blends the brush into row y starting at column x, weighting
	// column x+i by coverage[i].
	Apply(coverage []float32, x, y int) error

	Close() error
}

// NewApplicator builds the applicator for brush on frame. region is the
// unclipped bounds of the shape being filled; brushes that anchor to the
// shape (image tiling) use its top-left corner.
//
// All brush validation happens here, so a successful applicator never fails
// for configuration reasons inside the row loop.
func NewApplicator[P pixel.Pixel[P]](brush Brush, frame *pixel.Frame[P], opts GraphicsOptions, region image.Rectangle, alloc memory.Allocator) (Applicator[P], error) {
	if brush == nil {
		return nil, ErrNilBrush
	}
	if frame == nil {
		return nil, ErrNilFrame
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if alloc == nil {
		alloc = memory.Default()
	}

	blender, err := blend.NewBlender[P](opts.ColorBlendingMode, opts.AlphaCompositionMode, alloc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	base := baseApplicator[P]{
		frame:   frame,
		opts:    opts,
		blender: blender,
		alloc:   alloc,
	}

	switch b := brush.(type) {
	case SolidBrush:
		return newSolidApplicator(base, b), nil
	case *SolidBrush:
		if b == nil {
			return nil, ErrNilBrush
		}
		return newSolidApplicator(base, *b), nil
	case *LinearGradientBrush:
		if b == nil {
			return nil, ErrNilBrush
		}
		return newGradientApplicator(base, b)
	case *RadialGradientBrush:
		if b == nil {
			return nil, ErrNilBrush
		}
		return newGradientApplicator(base, b)
	case *EllipticGradientBrush:
		if b == nil {
			return nil, ErrNilBrush
		}
		return newGradientApplicator(base, b)
	case *ImageBrush:
		return newImageApplicator(base, b, region)
	case RecolorBrush:
		return newRecolorApplicator(base, b)
	case *RecolorBrush:
		if b == nil {
			return nil, ErrNilBrush
		}
		return newRecolorApplicator(base, *b)
	case *PatternBrush:
		return newPatternApplicator(base, b)
	case CustomBrush:
		return newCustomApplicator(base, b)
	case *CustomBrush:
		if b == nil {
			return nil, ErrNilBrush
		}
		return newCustomApplicator(base, *b)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownBrush, brush)
	}
}

// baseApplicator holds what every applicator shares: the target frame and
// the row blend step.
type baseApplicator[P pixel.Pixel[P]] struct {
	frame   *pixel.Frame[P]
	opts    GraphicsOptions
	blender *blend.Blender[P]
	alloc   memory.Allocator
}

// overlayFunc writes the brush colors for columns x .. x+len(dst)-1 of row y.
type overlayFunc func(dst []pixel.Vector4, x, y int)

// applyRow computes per-column amounts from coverage, asks overlay for the
// brush colors and hands both to the blender in one call.
func (a *baseApplicator[P]) applyRow(coverage []float32, x, y int, overlay overlayFunc) error {
	if y < 0 || y >= a.frame.Height() {
		return nil
	}
	if x < 0 {
		if -x >= len(coverage) {
			return nil
		}
		coverage = coverage[-x:]
		x = 0
	}
	if n := a.frame.Width() - x; len(coverage) > n {
		if n <= 0 {
			return nil
		}
		coverage = coverage[:n]
	}
	n := len(coverage)
	if n == 0 {
		return nil
	}

	amountBuf, err := a.alloc.AllocateFloat32(n)
	if err != nil {
		return err
	}
	defer amountBuf.Release()

	overlayBuf, err := a.alloc.AllocateVector4(n)
	if err != nil {
		return err
	}
	defer overlayBuf.Release()

	amount := amountBuf.Slice()
	for i, c := range coverage {
		amount[i] = c * a.opts.BlendPercentage
	}
	overlay(overlayBuf.Slice(), x, y)

	row := a.frame.Row(y)[x : x+n]
	return a.blender.BlendRow(row, row, overlayBuf.Slice(), amount)
}

// overlayFromAt fills dst with at(x+i, y) expanded to vectors.
func overlayFromAt[P pixel.Pixel[P]](at func(x, y int) P) overlayFunc {
	return func(dst []pixel.Vector4, x, y int) {
		for i := range dst {
			dst[i] = at(x+i, y).ToVector4()
		}
	}
}

// solidApplicator paints one color.
type solidApplicator[P pixel.Pixel[P]] struct {
	baseApplicator[P]
	color   P
	overlay pixel.Vector4
}

func newSolidApplicator[P pixel.Pixel[P]](base baseApplicator[P], b SolidBrush) *solidApplicator[P] {
	c := pixel.Convert[P](b.Color.Vector4())
	return &solidApplicator[P]{
		baseApplicator: base,
		color:          c,
		overlay:        c.ToVector4(),
	}
}

func (a *solidApplicator[P]) At(_, _ int) P {
	return a.color
}

func (a *solidApplicator[P]) Apply(coverage []float32, x, y int) error {
	return a.applyRow(coverage, x, y, func(dst []pixel.Vector4, _, _ int) {
		for i := range dst {
			dst[i] = a.overlay
		}
	})
}

func (a *solidApplicator[P]) Close() error {
	return nil
}
