// Command filldemo renders a sheet of fills showing every brush kind.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/fill"
	"github.com/gogpu/fill/pixel"
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "filldemo.png", "output file")
		tile     = flag.String("tile", "", "image to tile in the image brush panel (default: generated)")
		tileSize = flag.Int("tile-size", 32, "edge length the tile image is resized to")
		aliased  = flag.Bool("aliased", false, "disable antialiasing")
		workers  = flag.Int("workers", 0, "maximum rows processed at once (0 = GOMAXPROCS)")
		verbose  = flag.Bool("v", false, "log fill diagnostics")
	)
	flag.Parse()

	if *verbose {
		fill.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	frame, err := pixel.NewFrame[pixel.RGBA32](*width, *height)
	if err != nil {
		log.Fatalf("Failed to create frame: %v", err)
	}

	tileImg, err := loadTile(*tile, *tileSize)
	if err != nil {
		log.Fatalf("Failed to load tile: %v", err)
	}

	opts := fill.DefaultGraphicsOptions()
	opts.Antialias = !*aliased

	d := &demo{
		frame: frame,
		opts:  opts,
		fillOpts: []fill.FillOption{
			fill.WithMaxDegreeOfParallelism(*workers),
		},
		cellW: float32(*width) / 4,
		cellH: float32(*height) / 3,
	}

	d.background()
	d.triangle(0, 0)
	d.linear(1, 0)
	d.radial(2, 0)
	d.elliptic(3, 0)
	d.tiled(0, 1, tileImg)
	d.pattern(1, 1)
	d.custom(2, 1)
	d.recolor(3, 1)
	d.rules(0, 2)
	d.blending(2, 2)

	if d.err != nil {
		log.Fatalf("Failed to render: %v", d.err)
	}
	if err := imaging.Save(frame, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// loadTile opens path, or generates a small gradient swatch when path is
// empty, and scales the result to size x size.
func loadTile(path string, size int) (image.Image, error) {
	var img image.Image
	if path == "" {
		img = swatch()
	} else {
		var err error
		img, err = imaging.Open(path)
		if err != nil {
			return nil, err
		}
	}
	return imaging.Resize(img, size, size, imaging.Lanczos), nil
}

func swatch() image.Image {
	f, _ := pixel.NewFrame[pixel.RGBA32](8, 8)
	g := fill.NewRadialGradientBrush(f32.Vec2{4, 4}, 4, fill.RepetitionNone).
		AddColorStop(0, fill.Yellow).
		AddColorStop(1, fill.HotPink)
	_ = fill.FillAll(f, g, fill.DefaultGraphicsOptions())
	return f
}

// demo lays fills out on a 4x3 grid of cells and keeps the first error.
type demo struct {
	frame    *pixel.Frame[pixel.RGBA32]
	opts     fill.GraphicsOptions
	fillOpts []fill.FillOption

	cellW, cellH float32
	err          error
}

func (d *demo) paint(r fill.Region, b fill.Brush, shape fill.ShapeOptions) {
	d.paintWith(r, b, d.opts, shape)
}

func (d *demo) paintWith(r fill.Region, b fill.Brush, opts fill.GraphicsOptions, shape fill.ShapeOptions) {
	if d.err != nil {
		return
	}
	d.err = fill.Fill(d.frame, r, b, opts, shape, d.fillOpts...)
}

// cell returns the inset rectangle of grid cell (col, row).
func (d *demo) cell(col, row int) (x, y, w, h float32) {
	const inset = 10
	return float32(col)*d.cellW + inset, float32(row)*d.cellH + inset, d.cellW - 2*inset, d.cellH - 2*inset
}

func (d *demo) center(col, row int) f32.Vec2 {
	x, y, w, h := d.cell(col, row)
	return f32.Vec2{x + w/2, y + h/2}
}

func (d *demo) background() {
	if d.err != nil {
		return
	}
	g := fill.NewLinearGradientBrush(f32.Vec2{0, 0}, f32.Vec2{0, float32(d.frame.Height())}, fill.RepetitionNone).
		AddColorStop(0, fill.RGB(0.1, 0.2, 0.4)).
		AddColorStop(1, fill.RGB(0.5, 0.5, 0.6))
	d.err = fill.FillAll(d.frame, g, d.opts, d.fillOpts...)
}

func (d *demo) triangle(col, row int) {
	x, y, w, h := d.cell(col, row)
	tri := fill.NewPolygon(
		f32.Vec2{x, y},
		f32.Vec2{x + w, y + h/2},
		f32.Vec2{x + w/4, y + h},
	)
	d.paint(tri, fill.Solid(fill.HotPink), fill.ShapeOptions{})
}

func (d *demo) linear(col, row int) {
	x, y, w, h := d.cell(col, row)
	g := fill.NewLinearGradientBrush(f32.Vec2{x, y}, f32.Vec2{x + w/3, y + h/3}, fill.RepetitionReflect).
		AddColorStop(0, fill.Red).
		AddColorStop(0.5, fill.Yellow).
		AddColorStop(1, fill.Blue)
	d.paint(fill.NewRectangle(x, y, w, h), g, fill.ShapeOptions{})
}

func (d *demo) radial(col, row int) {
	x, y, w, h := d.cell(col, row)
	c := d.center(col, row)
	r := min(w, h) / 2
	g := fill.NewRadialGradientBrush(c, r/3, fill.RepetitionRepeat).
		AddColorStop(0, fill.White).
		AddColorStop(1, fill.LimeGreen)
	d.paint(fill.NewRectangle(x, y, w, h), g, fill.ShapeOptions{})

	// A DontFill ring leaves the rectangle showing outside the radius.
	ring := fill.NewRadialGradientBrush(c, r, fill.RepetitionDontFill).
		AddColorStop(0.8, fill.Transparent).
		AddColorStop(0.8, fill.Black.WithAlpha(0.6)).
		AddColorStop(1, fill.Black.WithAlpha(0.6))
	d.paint(fill.NewRectangle(x, y, w, h), ring, fill.ShapeOptions{})
}

func (d *demo) elliptic(col, row int) {
	_, _, w, h := d.cell(col, row)
	c := d.center(col, row)
	angle := math.Pi / 6
	axisEnd := f32.Vec2{
		c[0] + w/2*float32(math.Cos(angle)),
		c[1] + w/2*float32(math.Sin(angle)),
	}
	g := fill.NewEllipticGradientBrush(c, axisEnd, 0.5, fill.RepetitionNone).
		AddColorStop(0, fill.Yellow).
		AddColorStop(0.6, fill.Red).
		AddColorStop(1, fill.Blue.WithAlpha(0))
	d.paint(fill.NewEllipse(c, w/2, h/2), g, fill.ShapeOptions{})
}

func (d *demo) tiled(col, row int, tile image.Image) {
	_, _, w, h := d.cell(col, row)
	d.paint(fill.NewCircle(d.center(col, row), min(w, h)/2), fill.NewImageBrush(tile), fill.ShapeOptions{})
}

func (d *demo) pattern(col, row int) {
	x, y, w, h := d.cell(col, row)
	presets := []*fill.PatternBrush{
		fill.Percent10(fill.White),
		fill.Percent20(fill.White),
		fill.Horizontal(fill.Yellow),
		fill.Min(fill.Yellow),
		fill.Vertical(fill.Lime),
		fill.ForwardDiagonal(fill.Red).WithBackground(fill.White),
		fill.BackwardDiagonal(fill.Blue).WithBackground(fill.White),
	}
	stripe := w / float32(len(presets))
	for i, p := range presets {
		d.paint(fill.NewRectangle(x+float32(i)*stripe, y, stripe, h), p, fill.ShapeOptions{})
	}
}

func (d *demo) custom(col, row int) {
	x, y, w, h := d.cell(col, row)
	half := h / 2
	d.paint(fill.NewRectangle(x, y, w, half), fill.Checkerboard(fill.Black, fill.White, 8), fill.ShapeOptions{})

	left := x
	wave := fill.NewCustomBrush(func(px, py int) fill.Color {
		t := (float32(px) - left) / w
		s := 0.5 + 0.5*float32(math.Sin(float64(py)/4))
		return fill.Red.Lerp(fill.Blue, t).WithAlpha(s)
	}).WithName("wave")
	d.paint(fill.NewRectangle(x, y+half, w, half), wave, fill.ShapeOptions{})
}

func (d *demo) recolor(col, row int) {
	x, y, w, h := d.cell(col, row)
	d.paint(fill.NewRectangle(x, y, w, h), fill.Checkerboard(fill.Red, fill.Yellow, 12), fill.ShapeOptions{})
	d.paint(fill.NewCircle(d.center(col, row), min(w, h)/2), fill.NewRecolorBrush(fill.Red, fill.Green, 0.2), fill.ShapeOptions{})
}

// rules draws the same self-overlapping star with both intersection rules.
func (d *demo) rules(col, row int) {
	for i, rule := range []fill.IntersectionRule{fill.OddEven, fill.NonZero} {
		_, _, w, h := d.cell(col+i, row)
		c := d.center(col+i, row)
		star := pentagram(c, min(w, h)/2)
		d.paint(star, fill.Solid(fill.Yellow), fill.ShapeOptions{IntersectionRule: rule})
	}
}

func pentagram(c f32.Vec2, r float32) *fill.Polygon {
	pts := make([]f32.Vec2, 5)
	for i := range pts {
		// Every second vertex of a regular pentagon.
		a := -math.Pi/2 + float64(i)*4*math.Pi/5
		pts[i] = f32.Vec2{c[0] + r*float32(math.Cos(a)), c[1] + r*float32(math.Sin(a))}
	}
	return fill.NewPolygon(pts...)
}

// blending overlaps three translucent circles under each blend mode.
func (d *demo) blending(col, row int) {
	x, y, w, h := d.cell(col, row)
	modes := []fill.ColorBlendingMode{fill.BlendMultiply, fill.BlendScreen, fill.BlendOverlay}
	colors := []fill.Color{fill.Red, fill.Lime, fill.Blue}

	span := (w + d.cellW) / float32(len(modes))
	r := min(span, h) / 4
	for i, mode := range modes {
		opts := d.opts
		opts.ColorBlendingMode = mode
		opts.BlendPercentage = 0.8
		cx := x + span*(float32(i)+0.5)
		cy := y + h/2
		for j, c := range colors {
			a := float64(j) * 2 * math.Pi / 3
			center := f32.Vec2{cx + r/2*float32(math.Cos(a)), cy + r/2*float32(math.Sin(a))}
			d.paintWith(fill.NewCircle(center, r), fill.Solid(c), opts, fill.ShapeOptions{})
		}
	}
}
