package fill

import (
	"fmt"
	"slices"

	"github.com/chewxy/math32"

	"github.com/gogpu/fill/pixel"
)

// ColorStop is a color at a position along a gradient. Ratio 0 is the
// start of the gradient and 1 its end.
type ColorStop struct {
	Ratio float32
	Color Color
}

// RepetitionMode defines how positions outside [0, 1] are treated.
type RepetitionMode uint8

const (
	// RepetitionNone extends the first and last stop colors outwards.
	RepetitionNone RepetitionMode = iota
	// RepetitionRepeat starts the gradient over after every unit.
	RepetitionRepeat
	// RepetitionReflect runs the gradient back and forth.
	RepetitionReflect
	// RepetitionDontFill leaves pixels outside [0, 1] transparent.
	RepetitionDontFill
)

func (m RepetitionMode) String() string {
	switch m {
	case RepetitionNone:
		return "None"
	case RepetitionRepeat:
		return "Repeat"
	case RepetitionReflect:
		return "Reflect"
	case RepetitionDontFill:
		return "DontFill"
	default:
		return fmt.Sprintf("RepetitionMode(%d)", uint8(m))
	}
}

// gradientBrush is implemented by the gradient brush types. position
// validates the geometry and returns the position function, which maps a
// pixel center to an unbounded gradient position.
type gradientBrush interface {
	Brush
	colorStops() ([]ColorStop, RepetitionMode)
	position() (func(x, y float32) float32, error)
}

// colorRamp resolves gradient positions to colors.
type colorRamp struct {
	stops []ColorStop
	mode  RepetitionMode
}

// newColorRamp copies stops and sorts the copy by ratio. Stops sharing a
// ratio keep their given order, so a hard color edge can be written as two
// stops at the same ratio.
func newColorRamp(stops []ColorStop, mode RepetitionMode) (*colorRamp, error) {
	if len(stops) == 0 {
		return nil, ErrNoColorStops
	}
	if mode > RepetitionDontFill {
		return nil, fmt.Errorf("%w: %v", ErrUnknownRepetitionMode, mode)
	}

	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b ColorStop) int {
		switch {
		case a.Ratio < b.Ratio:
			return -1
		case a.Ratio > b.Ratio:
			return 1
		}
		return 0
	})
	return &colorRamp{stops: sorted, mode: mode}, nil
}

// fold maps a raw position into the ramp. ok is false when the position
// must not be painted.
func (r *colorRamp) fold(p float32) (float32, bool) {
	switch r.mode {
	case RepetitionRepeat:
		p -= math32.Floor(p)
	case RepetitionReflect:
		p -= 2 * math32.Floor(p/2)
		if p > 1 {
			p = 2 - p
		}
	case RepetitionDontFill:
		if p < 0 || p > 1 {
			return p, false
		}
	}
	return p, true
}

// segment returns the stops around p: from is the last stop at or below p
// (or the first stop), to the first stop above p (or the last stop).
func (r *colorRamp) segment(p float32) (from, to ColorStop) {
	from = r.stops[0]
	for _, s := range r.stops {
		to = s
		if s.Ratio > p {
			break
		}
		from = s
	}
	return from, to
}

// at returns the color at raw gradient position p.
func (r *colorRamp) at(p float32) Color {
	p, ok := r.fold(p)
	if !ok {
		return Transparent
	}

	from, to := r.segment(p)
	if from.Color == to.Color {
		return from.Color
	}
	t := (p - from.Ratio) / (to.Ratio - from.Ratio)
	return from.Color.Lerp(to.Color, t)
}

// gradientApplicator samples a gradient at pixel centers.
type gradientApplicator[P pixel.Pixel[P]] struct {
	baseApplicator[P]
	ramp     *colorRamp
	position func(x, y float32) float32
}

func newGradientApplicator[P pixel.Pixel[P]](base baseApplicator[P], g gradientBrush) (Applicator[P], error) {
	stops, mode := g.colorStops()
	ramp, err := newColorRamp(stops, mode)
	if err != nil {
		return nil, err
	}
	position, err := g.position()
	if err != nil {
		return nil, err
	}
	return &gradientApplicator[P]{
		baseApplicator: base,
		ramp:           ramp,
		position:       position,
	}, nil
}

func (a *gradientApplicator[P]) At(x, y int) P {
	c := a.ramp.at(a.position(float32(x)+0.5, float32(y)+0.5))
	return pixel.Convert[P](c.Vector4())
}

func (a *gradientApplicator[P]) Apply(coverage []float32, x, y int) error {
	return a.applyRow(coverage, x, y, overlayFromAt(a.At))
}

func (a *gradientApplicator[P]) Close() error {
	return nil
}
