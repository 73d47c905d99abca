package fill

import (
	"image"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/fill/internal/raster"
)

// Region is a shape that can be queried one horizontal line at a time.
//
// Scan must be safe for concurrent use: Fill scans several rows at once.
type Region interface {
	// Bounds returns the integer rectangle enclosing the shape.
	Bounds() image.Rectangle

	// MaxIntersections bounds the number of values Scan can return.
	MaxIntersections() int

	// Scan writes the x coordinates where the line at y enters and leaves
	// the shape into buf, sorted and paired as (start, end), resolved with
	// rule. It returns the number of values written, at most len(buf).
	Scan(y float32, buf []float32, rule IntersectionRule) int
}

// Polygon is a region bounded by one or more closed rings of straight
// edges. Rings may overlap or self-intersect; the intersection rule decides
// which parts are inside. The zero value is an empty polygon.
type Polygon struct {
	edges  *raster.EdgeList
	bounds image.Rectangle
}

// NewPolygon returns a single-ring polygon through points. The ring is
// closed implicitly.
//
// Example:
//
//	tri := fill.NewPolygon(
//	    f32.Vec2{10, 10}, f32.Vec2{200, 150}, f32.Vec2{50, 300})
func NewPolygon(points ...f32.Vec2) *Polygon {
	return NewPolygonRings(points)
}

// NewPolygonRings returns a polygon made of several rings, such as an
// outline with holes.
func NewPolygonRings(rings ...[]f32.Vec2) *Polygon {
	edges := raster.NewEdgeList(rings...)
	p := &Polygon{edges: edges}
	if edges.Len() > 0 {
		minX, minY, maxX, maxY := edges.Extent()
		p.bounds = boundsOf(minX, minY, maxX, maxY)
	}
	return p
}

// Bounds implements Region.
func (p *Polygon) Bounds() image.Rectangle {
	return p.bounds
}

// MaxIntersections implements Region.
func (p *Polygon) MaxIntersections() int {
	if p.edges == nil {
		return 0
	}
	return p.edges.Len()
}

// Scan implements Region.
func (p *Polygon) Scan(y float32, buf []float32, rule IntersectionRule) int {
	if p.edges == nil {
		return 0
	}
	return p.edges.Intersections(y, buf, fillRule(rule))
}

// NewRectangle returns the axis-aligned rectangle [x, x+w) x [y, y+h).
func NewRectangle(x, y, w, h float32) *Polygon {
	return NewPolygon(
		f32.Vec2{x, y},
		f32.Vec2{x + w, y},
		f32.Vec2{x + w, y + h},
		f32.Vec2{x, y + h},
	)
}

// Ellipse is an axis-aligned ellipse region intersected analytically.
type Ellipse struct {
	center f32.Vec2
	rx, ry float32
}

// NewEllipse returns an ellipse with the given center and radii.
// Non-positive radii produce an empty region.
func NewEllipse(center f32.Vec2, rx, ry float32) *Ellipse {
	return &Ellipse{center: center, rx: rx, ry: ry}
}

// NewCircle returns a circle region.
func NewCircle(center f32.Vec2, r float32) *Ellipse {
	return NewEllipse(center, r, r)
}

// Bounds implements Region.
func (e *Ellipse) Bounds() image.Rectangle {
	if e.empty() {
		return image.Rectangle{}
	}
	return boundsOf(
		e.center[0]-e.rx, e.center[1]-e.ry,
		e.center[0]+e.rx, e.center[1]+e.ry,
	)
}

// MaxIntersections implements Region.
func (e *Ellipse) MaxIntersections() int {
	return 2
}

// Scan implements Region. An ellipse never overlaps itself, so both rules
// give the same span.
func (e *Ellipse) Scan(y float32, buf []float32, _ IntersectionRule) int {
	if e.empty() || len(buf) < 2 {
		return 0
	}

	dy := (y - e.center[1]) / e.ry
	k := 1 - dy*dy
	if k <= 0 {
		return 0
	}

	half := e.rx * math32.Sqrt(k)
	buf[0] = e.center[0] - half
	buf[1] = e.center[0] + half
	return 2
}

func (e *Ellipse) empty() bool {
	return !(e.rx > 0 && e.ry > 0)
}

// boundsOf returns the smallest integer rectangle containing the extent.
func boundsOf(minX, minY, maxX, maxY float32) image.Rectangle {
	return image.Rect(
		int(math32.Floor(minX)), int(math32.Floor(minY)),
		int(math32.Ceil(maxX)), int(math32.Ceil(maxY)),
	)
}

func fillRule(r IntersectionRule) raster.FillRule {
	if r == NonZero {
		return raster.FillRuleNonZero
	}
	return raster.FillRuleEvenOdd
}
