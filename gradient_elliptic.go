package fill

import (
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// EllipticGradientBrush varies color over concentric ellipses around
// Center. One axis runs from Center to ReferenceAxisEnd; the other is
// AxisRatio times as long.
//
// The position is the squared elliptic distance x²/a² + y²/b², so points
// on the ellipse through ReferenceAxisEnd are at 1 and stops crowd towards
// the center compared to a radial gradient.
type EllipticGradientBrush struct {
	Center           f32.Vec2
	ReferenceAxisEnd f32.Vec2
	AxisRatio        float32
	Stops            []ColorStop
	Repetition       RepetitionMode
}

// NewEllipticGradientBrush returns an elliptic gradient.
//
// Example:
//
//	g := fill.NewEllipticGradientBrush(
//	    f32.Vec2{5, 5}, f32.Vec2{10, 5}, 1, fill.RepetitionNone,
//	    fill.ColorStop{Ratio: 0, Color: fill.Red},
//	    fill.ColorStop{Ratio: 1, Color: fill.Red})
func NewEllipticGradientBrush(center, referenceAxisEnd f32.Vec2, axisRatio float32, mode RepetitionMode, stops ...ColorStop) *EllipticGradientBrush {
	return &EllipticGradientBrush{
		Center:           center,
		ReferenceAxisEnd: referenceAxisEnd,
		AxisRatio:        axisRatio,
		Stops:            stops,
		Repetition:       mode,
	}
}

// AddColorStop appends a stop and returns g for chaining.
func (g *EllipticGradientBrush) AddColorStop(ratio float32, c Color) *EllipticGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Ratio: ratio, Color: c})
	return g
}

func (*EllipticGradientBrush) brushMarker() {}

func (g *EllipticGradientBrush) colorStops() ([]ColorStop, RepetitionMode) {
	return g.Stops, g.Repetition
}

// position rotates the point back by the axis angle, into the ellipse's own
// frame, and returns its squared normalized distance.
func (g *EllipticGradientBrush) position() (func(x, y float32) float32, error) {
	cx, cy := g.Center[0], g.Center[1]
	ax := g.ReferenceAxisEnd[0] - cx
	ay := g.ReferenceAxisEnd[1] - cy

	refRadius := math32.Hypot(ax, ay)
	secondRadius := refRadius * g.AxisRatio
	refSq := refRadius * refRadius
	secondSq := secondRadius * secondRadius
	if !(refSq > 0 && secondSq > 0) {
		return nil, fmt.Errorf("%w: elliptic gradient radii %v and %v", ErrDegenerateGradient, refRadius, secondRadius)
	}

	rotation := math32.Atan2(ay, ax)
	sin, cos := math32.Sincos(rotation)

	return func(x, y float32) float32 {
		x0 := x - cx
		y0 := y - cy
		rx := x0*cos + y0*sin
		ry := y0*cos - x0*sin
		return rx*rx/refSq + ry*ry/secondSq
	}, nil
}
