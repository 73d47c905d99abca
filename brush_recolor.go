package fill

import (
	"fmt"

	"github.com/gogpu/fill/pixel"
)

// RecolorBrush replaces colors near Source with Target. Threshold in
// [0, 1] is the fraction of the largest possible color distance that still
// counts as a match; closer matches are pulled harder towards Target.
//
// The brush reads the destination, so it never takes the opaque fast path.
type RecolorBrush struct {
	Source    Color
	Target    Color
	Threshold float32
}

// NewRecolorBrush returns a RecolorBrush.
func NewRecolorBrush(source, target Color, threshold float32) RecolorBrush {
	return RecolorBrush{Source: source, Target: target, Threshold: threshold}
}

func (RecolorBrush) brushMarker() {}

type recolorApplicator[P pixel.Pixel[P]] struct {
	baseApplicator[P]
	source    pixel.Vector4
	target    pixel.Vector4
	threshold float32
}

func newRecolorApplicator[P pixel.Pixel[P]](base baseApplicator[P], b RecolorBrush) (Applicator[P], error) {
	if !(b.Threshold >= 0 && b.Threshold <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, b.Threshold)
	}

	return &recolorApplicator[P]{
		baseApplicator: base,
		source:         pixel.Convert[P](b.Source.Vector4()).ToVector4(),
		target:         pixel.Convert[P](b.Target.Vector4()).ToVector4(),
		threshold:      maxDistanceSquared[P]() * b.Threshold,
	}, nil
}

// maxDistanceSquared is the squared distance between the extreme colors P
// can represent.
func maxDistanceSquared[P pixel.Pixel[P]]() float32 {
	hi := pixel.Convert[P](pixel.Vector4{X: 1, Y: 1, Z: 1, W: 1}).ToVector4()
	lo := pixel.Convert[P](pixel.Vector4{}).ToVector4()
	return hi.DistanceSquared(lo)
}

// lerpAmount returns how strongly a pixel at squared distance d from the
// source is pulled towards the target, or false if it is not a match.
func (a *recolorApplicator[P]) lerpAmount(d float32) (float32, bool) {
	if d > a.threshold {
		return 0, false
	}
	if a.threshold == 0 {
		return 1, true
	}
	return (a.threshold - d) / a.threshold, true
}

// At returns the destination pixel at (x, y), recolored if it matches.
func (a *recolorApplicator[P]) At(x, y int) P {
	current := a.frame.PixelAt(x, y)
	amount, ok := a.lerpAmount(current.ToVector4().DistanceSquared(a.source))
	if !ok {
		return current
	}
	return a.blender.Blend(current, a.target, amount)
}

func (a *recolorApplicator[P]) Apply(coverage []float32, x, y int) error {
	return a.applyRow(coverage, x, y, overlayFromAt(a.At))
}

func (a *recolorApplicator[P]) Close() error {
	return nil
}
