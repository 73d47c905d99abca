// Package fill paints filled shapes into in-memory frames.
//
// # Overview
//
// fill is a scanline fill engine. A Region is intersected with horizontal
// sub-rows of every destination row; the spans found accumulate into
// per-column coverage, and a Brush is blended into the row weighted by that
// coverage. Frames are generic over the pixel format (see package pixel).
//
// # Quick Start
//
//	import "github.com/gogpu/fill"
//
//	frame, _ := pixel.NewFrame[pixel.RGBA32](320, 320)
//	tri := fill.NewPolygon(f32.Vec2{10, 10}, f32.Vec2{200, 150}, f32.Vec2{50, 300})
//	err := fill.Fill(frame, tri, fill.Solid(fill.HotPink),
//	    fill.DefaultGraphicsOptions(), fill.ShapeOptions{})
//
// # Brushes
//
// The brush set is closed: solid colors, linear, radial and elliptic
// gradients with four repetition modes, tiled images, recoloring, boolean
// patterns and user color functions.
//
// # Blending
//
// GraphicsOptions selects one of nine color blending modes and one of
// twelve Porter-Duff alpha composition operators, plus a global blend
// percentage. An opaque solid brush under normal source-over blending
// replaces pixels directly.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at the top-left corner of the frame
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) covers [x, x+1) x [y, y+1)
//
// # Concurrency
//
// Rows are processed on a bounded worker pool. Regions, brushes and
// ColorFuncs must be safe for concurrent reads.
package fill

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
