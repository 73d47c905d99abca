package fill

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/f32"
)

const gradientEpsilon = 1e-5

func TestRepetitionFold(t *testing.T) {
	tests := []struct {
		name   string
		mode   RepetitionMode
		p      float32
		want   float32
		wantOK bool
	}{
		{"none passes through", RepetitionNone, 1.5, 1.5, true},
		{"none negative", RepetitionNone, -0.5, -0.5, true},

		{"repeat zero", RepetitionRepeat, 0, 0, true},
		{"repeat middle", RepetitionRepeat, 0.5, 0.5, true},
		{"repeat one", RepetitionRepeat, 1, 0, true},
		{"repeat 1.25", RepetitionRepeat, 1.25, 0.25, true},
		{"repeat negative", RepetitionRepeat, -0.25, 0.75, true},

		{"reflect middle", RepetitionReflect, 0.5, 0.5, true},
		{"reflect one", RepetitionReflect, 1, 1, true},
		{"reflect 1.25", RepetitionReflect, 1.25, 0.75, true},
		{"reflect two", RepetitionReflect, 2, 0, true},
		{"reflect 2.25", RepetitionReflect, 2.25, 0.25, true},
		{"reflect negative", RepetitionReflect, -0.25, 0.25, true},

		{"dont fill inside", RepetitionDontFill, 0.5, 0.5, true},
		{"dont fill edge", RepetitionDontFill, 1, 1, true},
		{"dont fill above", RepetitionDontFill, 1.01, 0, false},
		{"dont fill below", RepetitionDontFill, -0.01, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &colorRamp{stops: []ColorStop{{0, Red}}, mode: tt.mode}
			got, ok := r.fold(tt.p)
			if ok != tt.wantOK {
				t.Fatalf("fold(%v) ok = %v, want %v", tt.p, ok, tt.wantOK)
			}
			if ok && !approx(got, tt.want) {
				t.Errorf("fold(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRepetitionFoldIdempotent(t *testing.T) {
	for _, mode := range []RepetitionMode{RepetitionRepeat, RepetitionReflect} {
		r := &colorRamp{mode: mode}
		for p := float32(-3); p <= 3; p += 0.125 {
			once, _ := r.fold(p)
			twice, _ := r.fold(once)
			if !approx(once, twice) {
				t.Errorf("%v: fold(fold(%v)) = %v, want %v", mode, p, twice, once)
			}
			if once < 0 || once > 1 {
				t.Errorf("%v: fold(%v) = %v outside [0, 1]", mode, p, once)
			}
		}
	}
}

func TestColorRamp(t *testing.T) {
	// Deliberately unsorted, with a hard edge at 0.5.
	stops := []ColorStop{
		{1, Blue},
		{0.5, Lime},
		{0, Red},
		{0.5, Yellow},
	}
	r, err := newColorRamp(stops, RepetitionNone)
	if err != nil {
		t.Fatal(err)
	}

	if stops[0].Ratio != 1 {
		t.Error("newColorRamp sorted the caller's slice")
	}

	tests := []struct {
		p    float32
		want Color
	}{
		{-1, Red},
		{0, Red},
		{0.25, Color{R: 0.5, G: 0.5, A: 1}},
		// Equal ratios keep their order: Lime then Yellow.
		{0.5, Yellow},
		{0.75, Color{R: 0.5, G: 0.5, B: 0.5, A: 1}},
		{1, Blue},
		{2, Blue},
	}
	for _, tt := range tests {
		got := r.at(tt.p)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, gradientEpsilon)); diff != "" {
			t.Errorf("at(%v) mismatch (-want +got):\n%s", tt.p, diff)
		}
	}
}

func TestColorRampSingleStop(t *testing.T) {
	r, err := newColorRamp([]ColorStop{{0.3, HotPink}}, RepetitionRepeat)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []float32{-5, 0, 0.3, 0.9, 7.5} {
		if got := r.at(p); got != HotPink {
			t.Errorf("at(%v) = %v, want HotPink", p, got)
		}
	}
}

func TestColorRampDontFill(t *testing.T) {
	r, err := newColorRamp([]ColorStop{{0, Red}, {1, Blue}}, RepetitionDontFill)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.at(1.5); got != Transparent {
		t.Errorf("at(1.5) = %v, want transparent", got)
	}
}

func TestColorRampErrors(t *testing.T) {
	if _, err := newColorRamp(nil, RepetitionNone); !errors.Is(err, ErrNoColorStops) {
		t.Errorf("no stops: error = %v, want ErrNoColorStops", err)
	}
	if _, err := newColorRamp([]ColorStop{{0, Red}}, 9); !errors.Is(err, ErrUnknownRepetitionMode) {
		t.Errorf("bad mode: error = %v, want ErrUnknownRepetitionMode", err)
	}
	if got := RepetitionMode(9).String(); got != "RepetitionMode(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestGradientPositions(t *testing.T) {
	tests := []struct {
		name  string
		brush gradientBrush
		x, y  float32
		want  float32
	}{
		{"linear start", NewLinearGradientBrush(f32.Vec2{0, 0}, f32.Vec2{10, 0}, RepetitionNone), 0, 3, 0},
		{"linear middle", NewLinearGradientBrush(f32.Vec2{0, 0}, f32.Vec2{10, 0}, RepetitionNone), 5, -7, 0.5},
		{"linear beyond", NewLinearGradientBrush(f32.Vec2{0, 0}, f32.Vec2{10, 0}, RepetitionNone), 15, 0, 1.5},
		{"linear diagonal", NewLinearGradientBrush(f32.Vec2{0, 0}, f32.Vec2{10, 10}, RepetitionNone), 10, 0, 0.5},

		{"radial center", NewRadialGradientBrush(f32.Vec2{5, 5}, 10, RepetitionNone), 5, 5, 0},
		{"radial edge", NewRadialGradientBrush(f32.Vec2{5, 5}, 10, RepetitionNone), 11, 13, 1},
		{"radial half", NewRadialGradientBrush(f32.Vec2{5, 5}, 10, RepetitionNone), 5, 0, 0.5},

		{"elliptic reference end", NewEllipticGradientBrush(f32.Vec2{0, 0}, f32.Vec2{10, 0}, 0.5, RepetitionNone), 10, 0, 1},
		{"elliptic second axis", NewEllipticGradientBrush(f32.Vec2{0, 0}, f32.Vec2{10, 0}, 0.5, RepetitionNone), 0, 5, 1},
		{"elliptic squared", NewEllipticGradientBrush(f32.Vec2{0, 0}, f32.Vec2{10, 0}, 1, RepetitionNone), 5, 0, 0.25},
		{"elliptic rotated", NewEllipticGradientBrush(f32.Vec2{0, 0}, f32.Vec2{0, 10}, 0.5, RepetitionNone), 0, 10, 1},
		{"elliptic rotated minor", NewEllipticGradientBrush(f32.Vec2{0, 0}, f32.Vec2{0, 10}, 0.5, RepetitionNone), 5, 0, 1},
		{"elliptic oblique axis", NewEllipticGradientBrush(f32.Vec2{0, 0}, f32.Vec2{6, 8}, 0.5, RepetitionNone), 6, 8, 1},
		{"elliptic oblique minor", NewEllipticGradientBrush(f32.Vec2{0, 0}, f32.Vec2{6, 8}, 0.5, RepetitionNone), -4, 3, 1},
		{"elliptic oblique inside", NewEllipticGradientBrush(f32.Vec2{1, 1}, f32.Vec2{7, 9}, 0.5, RepetitionNone), 4, 5, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := tt.brush.position()
			if err != nil {
				t.Fatal(err)
			}
			if got := pos(tt.x, tt.y); !approx(got, tt.want) {
				t.Errorf("position(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDegenerateGradients(t *testing.T) {
	for _, b := range []gradientBrush{
		NewLinearGradientBrush(f32.Vec2{3, 3}, f32.Vec2{3, 3}, RepetitionNone),
		NewRadialGradientBrush(f32.Vec2{}, 0, RepetitionNone),
		NewRadialGradientBrush(f32.Vec2{}, -2, RepetitionNone),
		NewEllipticGradientBrush(f32.Vec2{1, 1}, f32.Vec2{1, 1}, 1, RepetitionNone),
		NewEllipticGradientBrush(f32.Vec2{}, f32.Vec2{5, 0}, 0, RepetitionNone),
	} {
		if _, err := b.position(); !errors.Is(err, ErrDegenerateGradient) {
			t.Errorf("%T position() error = %v, want ErrDegenerateGradient", b, err)
		}
	}
}

func TestAddColorStopChains(t *testing.T) {
	g := NewLinearGradientBrush(f32.Vec2{}, f32.Vec2{1, 0}, RepetitionReflect).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)
	stops, mode := g.colorStops()
	if len(stops) != 2 || mode != RepetitionReflect {
		t.Errorf("colorStops() = %v, %v", stops, mode)
	}
	r := NewRadialGradientBrush(f32.Vec2{}, 1, RepetitionNone).AddColorStop(0.5, Red)
	e := NewEllipticGradientBrush(f32.Vec2{}, f32.Vec2{1, 0}, 1, RepetitionNone).AddColorStop(0.5, Red)
	if len(r.Stops) != 1 || len(e.Stops) != 1 {
		t.Error("AddColorStop did not append")
	}
}

func approx(a, b float32) bool {
	d := a - b
	return d < gradientEpsilon && d > -gradientEpsilon
}
