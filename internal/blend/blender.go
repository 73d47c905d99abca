package blend

import (
	"fmt"

	"github.com/gogpu/fill/memory"
	"github.com/gogpu/fill/pixel"
)

// Blender composites Vector4 overlays onto rows of pixel format P.
// It holds no per-call state and is safe for concurrent use.
type Blender[P pixel.Pixel[P]] struct {
	fn    Func
	alloc memory.Allocator
}

// NewBlender returns a Blender for the mode pair. A nil allocator uses
// memory.Default.
func NewBlender[P pixel.Pixel[P]](c ColorMode, a AlphaMode, alloc memory.Allocator) (*Blender[P], error) {
	fn, err := GetFunc(c, a)
	if err != nil {
		return nil, err
	}
	if alloc == nil {
		alloc = memory.Default()
	}
	return &Blender[P]{fn: fn, alloc: alloc}, nil
}

// BlendRow writes background[i] composited with overlay[i] at amount[i]
// into dst[i]. dst and background may be the same slice. All four slices
// are truncated to the shortest length.
func (b *Blender[P]) BlendRow(dst, background []P, overlay []pixel.Vector4, amount []float32) error {
	n := min(len(dst), len(background), len(overlay), len(amount))
	if n == 0 {
		return nil
	}

	buf, err := b.alloc.AllocateVector4(n)
	if err != nil {
		return fmt.Errorf("blend: row scratch: %w", err)
	}
	defer buf.Release()

	back := buf.Slice()
	pixel.ToVector4s(background[:n], back)
	for i := range back {
		back[i] = b.fn(back[i], overlay[i], amount[i])
	}
	pixel.FromVector4s(back, dst[:n])
	return nil
}

// Blend composites a single source color onto background.
func (b *Blender[P]) Blend(background P, source pixel.Vector4, amount float32) P {
	var zero P
	return zero.FromVector4(b.fn(background.ToVector4(), source, amount))
}
