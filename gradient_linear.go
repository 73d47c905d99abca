package fill

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// LinearGradientBrush varies color along the line from Start to End.
// Position 0 lies on the perpendicular through Start and 1 on the
// perpendicular through End.
//
// Example:
//
//	g := fill.NewLinearGradientBrush(f32.Vec2{0, 0}, f32.Vec2{100, 0}, fill.RepetitionNone).
//	    AddColorStop(0, fill.Red).
//	    AddColorStop(0.5, fill.Yellow).
//	    AddColorStop(1, fill.Blue)
type LinearGradientBrush struct {
	Start, End f32.Vec2
	Stops      []ColorStop
	Repetition RepetitionMode
}

// NewLinearGradientBrush returns a linear gradient from start to end.
func NewLinearGradientBrush(start, end f32.Vec2, mode RepetitionMode, stops ...ColorStop) *LinearGradientBrush {
	return &LinearGradientBrush{Start: start, End: end, Stops: stops, Repetition: mode}
}

// AddColorStop appends a stop and returns g for chaining.
func (g *LinearGradientBrush) AddColorStop(ratio float32, c Color) *LinearGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Ratio: ratio, Color: c})
	return g
}

func (*LinearGradientBrush) brushMarker() {}

func (g *LinearGradientBrush) colorStops() ([]ColorStop, RepetitionMode) {
	return g.Stops, g.Repetition
}

// position projects the point onto the gradient axis.
func (g *LinearGradientBrush) position() (func(x, y float32) float32, error) {
	sx, sy := g.Start[0], g.Start[1]
	dx := g.End[0] - sx
	dy := g.End[1] - sy
	lengthSq := dx*dx + dy*dy
	if !(lengthSq > 0) {
		return nil, fmt.Errorf("%w: linear gradient start equals end", ErrDegenerateGradient)
	}

	return func(x, y float32) float32 {
		return ((x-sx)*dx + (y-sy)*dy) / lengthSq
	}, nil
}
