package fill

import (
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// RadialGradientBrush varies color with the distance from Center. Position
// 1 is reached at Radius.
type RadialGradientBrush struct {
	Center     f32.Vec2
	Radius     float32
	Stops      []ColorStop
	Repetition RepetitionMode
}

// NewRadialGradientBrush returns a circular gradient.
func NewRadialGradientBrush(center f32.Vec2, radius float32, mode RepetitionMode, stops ...ColorStop) *RadialGradientBrush {
	return &RadialGradientBrush{Center: center, Radius: radius, Stops: stops, Repetition: mode}
}

// AddColorStop appends a stop and returns g for chaining.
func (g *RadialGradientBrush) AddColorStop(ratio float32, c Color) *RadialGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Ratio: ratio, Color: c})
	return g
}

func (*RadialGradientBrush) brushMarker() {}

func (g *RadialGradientBrush) colorStops() ([]ColorStop, RepetitionMode) {
	return g.Stops, g.Repetition
}

func (g *RadialGradientBrush) position() (func(x, y float32) float32, error) {
	if !(g.Radius > 0) {
		return nil, fmt.Errorf("%w: radial gradient radius %v", ErrDegenerateGradient, g.Radius)
	}

	cx, cy, r := g.Center[0], g.Center[1], g.Radius
	return func(x, y float32) float32 {
		return math32.Hypot(x-cx, y-cy) / r
	}, nil
}
