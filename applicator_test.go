package fill

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/fill/memory"
	"github.com/gogpu/fill/pixel"
)

type unknownBrush struct{}

func (unknownBrush) brushMarker() {}

var (
	red32   = pixel.RGBA32{R: 255, A: 255}
	green32 = pixel.RGBA32{G: 255, A: 255}
	blue32  = pixel.RGBA32{B: 255, A: 255}
	white32 = pixel.RGBA32{R: 255, G: 255, B: 255, A: 255}
)

func newTestFrame(t *testing.T, w, h int, bg pixel.RGBA32) *pixel.Frame[pixel.RGBA32] {
	t.Helper()
	f, err := pixel.NewFrame[pixel.RGBA32](w, h)
	if err != nil {
		t.Fatal(err)
	}
	f.Fill(bg)
	return f
}

func newTestApplicator(t *testing.T, b Brush, f *pixel.Frame[pixel.RGBA32], region image.Rectangle) Applicator[pixel.RGBA32] {
	t.Helper()
	app, err := NewApplicator(b, f, DefaultGraphicsOptions(), region, nil)
	if err != nil {
		t.Fatalf("NewApplicator(%T) error = %v", b, err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func TestNewApplicatorErrors(t *testing.T) {
	frame := newTestFrame(t, 4, 4, white32)
	badOpts := DefaultGraphicsOptions()
	badOpts.BlendPercentage = 2

	tests := []struct {
		name  string
		brush Brush
		frame *pixel.Frame[pixel.RGBA32]
		opts  GraphicsOptions
		want  error
	}{
		{"nil brush", nil, frame, DefaultGraphicsOptions(), ErrNilBrush},
		{"nil frame", Solid(Red), nil, DefaultGraphicsOptions(), ErrNilFrame},
		{"bad options", Solid(Red), frame, badOpts, ErrInvalidOptions},
		{"unknown brush", unknownBrush{}, frame, DefaultGraphicsOptions(), ErrUnknownBrush},
		{"nil solid pointer", (*SolidBrush)(nil), frame, DefaultGraphicsOptions(), ErrNilBrush},
		{"nil linear", (*LinearGradientBrush)(nil), frame, DefaultGraphicsOptions(), ErrNilBrush},
		{"nil radial", (*RadialGradientBrush)(nil), frame, DefaultGraphicsOptions(), ErrNilBrush},
		{"nil elliptic", (*EllipticGradientBrush)(nil), frame, DefaultGraphicsOptions(), ErrNilBrush},
		{"nil image brush", (*ImageBrush)(nil), frame, DefaultGraphicsOptions(), ErrNilBrush},
		{"nil image", NewImageBrush(nil), frame, DefaultGraphicsOptions(), ErrNilBrush},
		{"empty image", NewImageBrush(image.NewRGBA(image.Rect(0, 0, 0, 3))), frame, DefaultGraphicsOptions(), ErrEmptyImage},
		{"nil pattern", (*PatternBrush)(nil), frame, DefaultGraphicsOptions(), ErrNilBrush},
		{"empty pattern", NewPatternBrush(Red, Blue, nil), frame, DefaultGraphicsOptions(), ErrEmptyPattern},
		{"ragged pattern", NewPatternBrush(Red, Blue, bits("10", "1")), frame, DefaultGraphicsOptions(), ErrEmptyPattern},
		{"threshold high", NewRecolorBrush(Red, Blue, 1.5), frame, DefaultGraphicsOptions(), ErrInvalidThreshold},
		{"threshold negative", NewRecolorBrush(Red, Blue, -0.5), frame, DefaultGraphicsOptions(), ErrInvalidThreshold},
		{"nil recolor pointer", (*RecolorBrush)(nil), frame, DefaultGraphicsOptions(), ErrNilBrush},
		{"nil custom pointer", (*CustomBrush)(nil), frame, DefaultGraphicsOptions(), ErrNilBrush},
		{"no stops", NewLinearGradientBrush(f32.Vec2{}, f32.Vec2{1, 0}, RepetitionNone), frame, DefaultGraphicsOptions(), ErrNoColorStops},
		{"degenerate", NewRadialGradientBrush(f32.Vec2{}, 0, RepetitionNone, ColorStop{0, Red}), frame, DefaultGraphicsOptions(), ErrDegenerateGradient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApplicator(tt.brush, tt.frame, tt.opts, image.Rect(0, 0, 4, 4), nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewApplicator() error = %v, want %v", err, tt.want)
			}
			if app != nil {
				t.Errorf("NewApplicator() returned %T with an error", app)
			}
		})
	}
}

func TestSolidApplicatorApply(t *testing.T) {
	frame := newTestFrame(t, 4, 2, blue32)
	app := newTestApplicator(t, Solid(Red), frame, frame.Bounds())

	if got := app.At(100, -3); got != red32 {
		t.Errorf("At() = %v, want red", got)
	}

	if err := app.Apply([]float32{1, 0, 0.5, 1}, 0, 0); err != nil {
		t.Fatal(err)
	}
	want := []pixel.RGBA32{red32, blue32, {R: 128, B: 128, A: 255}, red32}
	if diff := cmp.Diff(want, frame.Row(0)); diff != "" {
		t.Errorf("row 0 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]pixel.RGBA32{blue32, blue32, blue32, blue32}, frame.Row(1)); diff != "" {
		t.Errorf("row 1 changed (-want +got):\n%s", diff)
	}
}

func TestApplyClipsToFrame(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want []pixel.RGBA32
	}{
		{"left overhang", -2, 0, []pixel.RGBA32{red32, red32, blue32, blue32}},
		{"right overhang", 2, 0, []pixel.RGBA32{blue32, blue32, red32, red32}},
		{"fully left", -4, 0, []pixel.RGBA32{blue32, blue32, blue32, blue32}},
		{"fully right", 4, 0, []pixel.RGBA32{blue32, blue32, blue32, blue32}},
		{"row above", 0, -1, []pixel.RGBA32{blue32, blue32, blue32, blue32}},
		{"row below", 0, 1, []pixel.RGBA32{blue32, blue32, blue32, blue32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := newTestFrame(t, 4, 1, blue32)
			app := newTestApplicator(t, Solid(Red), frame, frame.Bounds())
			if err := app.Apply([]float32{1, 1, 1, 1}, tt.x, tt.y); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, frame.Row(0)); diff != "" {
				t.Errorf("row mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyAllocatorError(t *testing.T) {
	frame := newTestFrame(t, 8, 1, blue32)
	pool := memory.NewPool(4, memory.WithMaxLength(2))
	app, err := NewApplicator(Solid(Red), frame, DefaultGraphicsOptions(), frame.Bounds(), pool)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	err = app.Apply(make([]float32, 8), 0, 0)
	if !errors.Is(err, memory.ErrCapacityExceeded) {
		t.Errorf("Apply() error = %v, want ErrCapacityExceeded", err)
	}
}

func TestBlendPercentageScalesCoverage(t *testing.T) {
	frame := newTestFrame(t, 1, 1, blue32)
	opts := DefaultGraphicsOptions()
	opts.BlendPercentage = 0.5

	app, err := NewApplicator(Solid(Red), frame, opts, frame.Bounds(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	if err := app.Apply([]float32{1}, 0, 0); err != nil {
		t.Fatal(err)
	}
	if got, want := frame.PixelAt(0, 0), (pixel.RGBA32{R: 128, B: 128, A: 255}); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestSolidBrushQuantizesToFormat(t *testing.T) {
	frame := newTestFrame(t, 1, 1, white32)
	c := RGB(0.3, 0.6, 0.9)
	app := newTestApplicator(t, Solid(c), frame, frame.Bounds())
	if err := app.Apply([]float32{1}, 0, 0); err != nil {
		t.Fatal(err)
	}
	if got, want := frame.PixelAt(0, 0), pixel.Convert[pixel.RGBA32](c.Vector4()); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
	if got := app.At(0, 0); got != frame.PixelAt(0, 0) {
		t.Errorf("At() = %v disagrees with applied pixel %v", got, frame.PixelAt(0, 0))
	}
}

func TestGradientApplicatorSamplesPixelCenters(t *testing.T) {
	frame := newTestFrame(t, 4, 1, white32)
	g := NewLinearGradientBrush(f32.Vec2{0, 0}, f32.Vec2{4, 0}, RepetitionNone).
		AddColorStop(0, Black).
		AddColorStop(1, White)
	app := newTestApplicator(t, g, frame, frame.Bounds())

	// Centers at 0.5, 1.5, 2.5, 3.5 of 4.
	want := []uint8{32, 96, 159, 223}
	for x, w := range want {
		if got := app.At(x, 0).R; got != w {
			t.Errorf("At(%d, 0).R = %d, want %d", x, got, w)
		}
	}
}
