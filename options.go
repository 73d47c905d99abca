package fill

import (
	"fmt"
	"runtime"

	"github.com/gogpu/fill/internal/blend"
	"github.com/gogpu/fill/memory"
)

// ColorBlendingMode selects how brush colors mix with destination colors.
type ColorBlendingMode = blend.ColorMode

// Color blending modes.
const (
	BlendNormal    = blend.Normal
	BlendMultiply  = blend.Multiply
	BlendAdd       = blend.Add
	BlendSubtract  = blend.Subtract
	BlendScreen    = blend.Screen
	BlendDarken    = blend.Darken
	BlendLighten   = blend.Lighten
	BlendOverlay   = blend.Overlay
	BlendHardLight = blend.HardLight
)

// AlphaCompositionMode is the Porter-Duff operator applied after blending.
type AlphaCompositionMode = blend.AlphaMode

// Alpha composition modes.
const (
	CompositeSrcOver  = blend.SrcOver
	CompositeSrc      = blend.Src
	CompositeSrcAtop  = blend.SrcAtop
	CompositeSrcIn    = blend.SrcIn
	CompositeSrcOut   = blend.SrcOut
	CompositeDest     = blend.Dest
	CompositeDestAtop = blend.DestAtop
	CompositeDestOver = blend.DestOver
	CompositeDestIn   = blend.DestIn
	CompositeDestOut  = blend.DestOut
	CompositeClear    = blend.Clear
	CompositeXor      = blend.Xor
)

// GraphicsOptions control how brush colors are combined with the frame.
type GraphicsOptions struct {
	// Antialias enables fractional edge coverage. When false, coverage is
	// thresholded to fully on or off.
	Antialias bool

	// AntialiasSubpixelDepth is the number of sub-rows sampled per pixel
	// row when antialiasing. Values below 4 are raised to 4.
	AntialiasSubpixelDepth int

	// BlendPercentage scales every brush contribution, in [0, 1].
	BlendPercentage float32

	ColorBlendingMode    ColorBlendingMode
	AlphaCompositionMode AlphaCompositionMode
}

// DefaultGraphicsOptions returns antialiased, fully opaque, normal
// source-over options.
func DefaultGraphicsOptions() GraphicsOptions {
	return GraphicsOptions{
		Antialias:              true,
		AntialiasSubpixelDepth: 16,
		BlendPercentage:        1,
		ColorBlendingMode:      BlendNormal,
		AlphaCompositionMode:   CompositeSrcOver,
	}
}

// Validate reports option values outside their defined ranges.
func (o GraphicsOptions) Validate() error {
	if !(o.BlendPercentage >= 0 && o.BlendPercentage <= 1) {
		return fmt.Errorf("%w: blend percentage %v", ErrInvalidOptions, o.BlendPercentage)
	}
	if _, err := blend.GetFunc(o.ColorBlendingMode, o.AlphaCompositionMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

// IsOpaqueColorWithoutBlending reports whether painting c under these
// options simply replaces destination pixels.
func (o GraphicsOptions) IsOpaqueColorWithoutBlending(c Color) bool {
	if o.ColorBlendingMode != BlendNormal {
		return false
	}
	if o.AlphaCompositionMode != CompositeSrcOver && o.AlphaCompositionMode != CompositeSrc {
		return false
	}
	return o.BlendPercentage == 1 && c.A == 1
}

// subpixelCount returns the number of sub-rows sampled per row.
func (o GraphicsOptions) subpixelCount() int {
	if !o.Antialias {
		return 4
	}
	return max(o.AntialiasSubpixelDepth, 4)
}

// IntersectionRule resolves overlapping sub-paths into filled spans.
type IntersectionRule uint8

const (
	// OddEven fills where a ray crosses the outline an odd number of times.
	OddEven IntersectionRule = iota
	// NonZero fills where the winding number is non-zero.
	NonZero
)

func (r IntersectionRule) String() string {
	switch r {
	case OddEven:
		return "OddEven"
	case NonZero:
		return "NonZero"
	default:
		return fmt.Sprintf("IntersectionRule(%d)", uint8(r))
	}
}

// ShapeOptions control how a region is resolved into spans. The zero value
// uses the OddEven rule.
type ShapeOptions struct {
	IntersectionRule IntersectionRule
}

// Validate reports an unknown intersection rule.
func (o ShapeOptions) Validate() error {
	if o.IntersectionRule > NonZero {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, o.IntersectionRule)
	}
	return nil
}

// FillOption configures a single Fill call.
//
// Example:
//
//	// Deterministic single-threaded fill with a bounded pool.
//	pool := memory.NewPool(16, memory.WithMaxLength(1<<20))
//	err := fill.Fill(frame, region, brush, opts, shape,
//	    fill.WithMaxDegreeOfParallelism(1),
//	    fill.WithAllocator(pool))
type FillOption func(*fillConfig)

type fillConfig struct {
	parallelism int
	allocator   memory.Allocator
}

func defaultFillConfig() fillConfig {
	return fillConfig{
		parallelism: runtime.GOMAXPROCS(0),
		allocator:   memory.Default(),
	}
}

// WithMaxDegreeOfParallelism bounds the number of rows processed at once.
// n <= 0 means GOMAXPROCS. n == 1 processes rows in order on the calling
// goroutine.
func WithMaxDegreeOfParallelism(n int) FillOption {
	return func(c *fillConfig) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		c.parallelism = n
	}
}

// WithAllocator sets the allocator for transient row buffers.
// A nil allocator keeps the shared default pool.
func WithAllocator(a memory.Allocator) FillOption {
	return func(c *fillConfig) {
		if a != nil {
			c.allocator = a
		}
	}
}
