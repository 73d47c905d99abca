package fill

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/fill/internal/parallel"
	"github.com/gogpu/fill/internal/raster"
	"github.com/gogpu/fill/memory"
	"github.com/gogpu/fill/pixel"
)

// Fill paints region onto frame with brush.
//
// Each destination row is sampled at several sub-rows; the spans found
// there accumulate into per-column coverage, and the brush is blended into
// the row weighted by that coverage. With opts.Antialias unset, coverage is
// snapped to 0 or 1 and sampling is shifted by half a pixel so that edges
// lying on integer coordinates hit pixel centers.
//
// A region that does not overlap the frame draws nothing and returns nil.
// Configuration errors are returned before any pixel is written. An
// allocation failure aborts the fill; rows already painted stay painted.
//
// Example:
//
//	frame, _ := pixel.NewFrame[pixel.RGBA32](320, 320)
//	tri := fill.NewPolygon(f32.Vec2{10, 10}, f32.Vec2{200, 150}, f32.Vec2{50, 300})
//	err := fill.Fill(frame, tri, fill.Solid(fill.HotPink),
//	    fill.DefaultGraphicsOptions(), fill.ShapeOptions{})
func Fill[P pixel.Pixel[P]](frame *pixel.Frame[P], region Region, brush Brush, opts GraphicsOptions, shape ShapeOptions, options ...FillOption) (err error) {
	if frame == nil {
		return ErrNilFrame
	}
	if region == nil {
		return ErrNilRegion
	}
	if brush == nil {
		return ErrNilBrush
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := shape.Validate(); err != nil {
		return err
	}

	cfg := defaultFillConfig()
	for _, o := range options {
		o(&cfg)
	}

	log := Logger()
	bounds := region.Bounds()
	clip := bounds.Intersect(frame.Bounds())
	if clip.Empty() {
		log.Debug("fill: region outside frame", "region", bounds, "frame", frame.Bounds())
		return nil
	}

	app, err := NewApplicator(brush, frame, opts, bounds, cfg.allocator)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, app.Close())
	}()

	r := &rasterizer[P]{
		frame:     frame,
		region:    region,
		app:       app,
		alloc:     cfg.allocator,
		clip:      clip,
		rule:      shape.IntersectionRule,
		antialias: opts.Antialias,
		subpixels: opts.subpixelCount(),
	}
	if !opts.Antialias {
		r.offset = 0.5
	}
	r.solid, r.fast = fastPathColor[P](brush, opts)

	log.Debug("fill",
		"bounds", clip,
		"antialias", opts.Antialias,
		"subpixels", r.subpixels,
		"rule", shape.IntersectionRule,
		"workers", cfg.parallelism,
		"fastPath", r.fast)

	return parallel.ForEachRow(cfg.parallelism, clip.Min.Y, clip.Max.Y, r.band)
}

// FillAll paints the whole frame with brush.
func FillAll[P pixel.Pixel[P]](frame *pixel.Frame[P], brush Brush, opts GraphicsOptions, options ...FillOption) error {
	if frame == nil {
		return ErrNilFrame
	}
	region := NewRectangle(0, 0, float32(frame.Width()), float32(frame.Height()))
	return Fill(frame, region, brush, opts, ShapeOptions{}, options...)
}

// fastPathColor reports whether brush paints an opaque color that simply
// replaces pixels, and that color in format P.
func fastPathColor[P pixel.Pixel[P]](brush Brush, opts GraphicsOptions) (P, bool) {
	var zero P
	var c Color
	switch b := brush.(type) {
	case SolidBrush:
		c = b.Color
	case *SolidBrush:
		c = b.Color
	default:
		return zero, false
	}
	if !opts.IsOpaqueColorWithoutBlending(c) {
		return zero, false
	}
	return pixel.Convert[P](c.Vector4()), true
}

// rasterizer holds the per-fill state shared by all row workers. Everything
// mutable lives in the buffers each band allocates for itself.
type rasterizer[P pixel.Pixel[P]] struct {
	frame  *pixel.Frame[P]
	region Region
	app    Applicator[P]
	alloc  memory.Allocator
	clip   image.Rectangle
	rule   IntersectionRule

	antialias bool
	subpixels int
	offset    float32

	solid P
	fast  bool
}

// band rasterizes rows [b.Top, b.Bottom) with its own scratch buffers.
func (r *rasterizer[P]) band(b parallel.Band) error {
	width := r.clip.Dx()
	minX := r.clip.Min.X

	interBuf, err := r.alloc.AllocateFloat32(r.region.MaxIntersections())
	if err != nil {
		return fmt.Errorf("fill: intersection buffer: %w", err)
	}
	defer interBuf.Release()

	covBuf, err := r.alloc.AllocateFloat32(width)
	if err != nil {
		return fmt.Errorf("fill: coverage buffer: %w", err)
	}
	defer covBuf.Release()

	intersections := interBuf.Slice()
	line := raster.NewScanline(covBuf.Slice(), r.subpixels)
	step := 1 / float32(r.subpixels)
	originX := float32(minX)

	for y := b.Top; y < b.Bottom; y++ {
		line.Reset()

		for s := range r.subpixels {
			sy := float32(y) + float32(s)*step + r.offset
			n := min(r.region.Scan(sy, intersections, r.rule), len(intersections))
			// An odd trailing point has no partner and is dropped.
			for i := 0; i+1 < n; i += 2 {
				line.AddSpan(intersections[i]-originX, intersections[i+1]-originX, r.offset)
			}
		}

		if !line.Dirty() {
			continue
		}

		if r.antialias {
			line.Clamp()
		} else {
			ones, zeros := line.Threshold()
			if !ones {
				continue
			}
			if r.fast && !zeros {
				fillRow(r.frame.Row(y)[minX:minX+width], r.solid)
				continue
			}
		}

		if err := r.app.Apply(line.Coverage(), minX, y); err != nil {
			return fmt.Errorf("fill: row %d: %w", y, err)
		}
	}
	return nil
}

func fillRow[P any](row []P, p P) {
	for i := range row {
		row[i] = p
	}
}
