package fill

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/fill/pixel"
)

func scan(r Region, y float32, rule IntersectionRule) []float32 {
	buf := make([]float32, r.MaxIntersections())
	n := r.Scan(y, buf, rule)
	return buf[:n]
}

func TestPolygonBounds(t *testing.T) {
	tests := []struct {
		name string
		poly *Polygon
		want image.Rectangle
	}{
		{"rectangle", NewRectangle(10, 20, 30, 40), image.Rect(10, 20, 40, 60)},
		{"fractional", NewPolygon(f32.Vec2{0.5, 0.5}, f32.Vec2{9.2, 1}, f32.Vec2{3, 7.7}), image.Rect(0, 0, 10, 8)},
		{"negative", NewRectangle(-5.5, -2, 3, 3), image.Rect(-6, -2, -2, 1)},
		{"empty", NewPolygon(), image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.poly.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonScan(t *testing.T) {
	// Two overlapping squares wound the same way.
	overlap := NewPolygonRings(
		[]f32.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		[]f32.Vec2{{5, 0}, {15, 0}, {15, 10}, {5, 10}},
	)
	tri := NewPolygon(f32.Vec2{0, 0}, f32.Vec2{10, 10}, f32.Vec2{0, 10})

	tests := []struct {
		name string
		r    Region
		y    float32
		rule IntersectionRule
		want []float32
	}{
		{"odd even overlap", overlap, 5, OddEven, []float32{0, 5, 10, 15}},
		{"non zero overlap", overlap, 5, NonZero, []float32{0, 15}},
		{"above", overlap, -1, OddEven, []float32{}},
		{"bottom edge exclusive", overlap, 10, OddEven, []float32{}},
		{"top edge inclusive", overlap, 0, NonZero, []float32{0, 15}},
		{"triangle", tri, 5, OddEven, []float32{0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scan(tt.r, tt.y, tt.rule)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Scan(%v) mismatch (-want +got):\n%s", tt.y, diff)
			}
		})
	}
}

func TestPolygonScanSmallBuffer(t *testing.T) {
	p := NewRectangle(0, 0, 10, 10)
	buf := make([]float32, 1)
	if n := p.Scan(5, buf, OddEven); n > len(buf) {
		t.Errorf("Scan() = %d, exceeds buffer of %d", n, len(buf))
	}
}

func TestEllipse(t *testing.T) {
	e := NewEllipse(f32.Vec2{10, 10}, 4, 2)

	if got, want := e.Bounds(), image.Rect(6, 8, 14, 12); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if got := e.MaxIntersections(); got != 2 {
		t.Errorf("MaxIntersections() = %d, want 2", got)
	}

	tests := []struct {
		name string
		y    float32
		want []float32
	}{
		{"center row", 10, []float32{6, 14}},
		{"outside", 12.5, []float32{}},
		{"tangent", 8, []float32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, rule := range []IntersectionRule{OddEven, NonZero} {
				got := scan(e, tt.y, rule)
				if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty(), cmpopts.EquateApprox(0, 1e-5)); diff != "" {
					t.Errorf("Scan(%v, %v) mismatch (-want +got):\n%s", tt.y, rule, diff)
				}
			}
		})
	}

	// Halfway up, x = rx * sqrt(1 - 0.25).
	got := scan(e, 9, OddEven)
	want := []float32{10 - 4*0.8660254, 10 + 4*0.8660254}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		t.Errorf("Scan(9) mismatch (-want +got):\n%s", diff)
	}
}

func TestEllipseEmpty(t *testing.T) {
	for _, e := range []*Ellipse{
		NewEllipse(f32.Vec2{}, 0, 5),
		NewEllipse(f32.Vec2{}, 5, -1),
	} {
		if !e.Bounds().Empty() {
			t.Errorf("Bounds() = %v, want empty", e.Bounds())
		}
		if got := scan(e, 0, OddEven); len(got) != 0 {
			t.Errorf("Scan() = %v, want none", got)
		}
	}
	if got := NewCircle(f32.Vec2{5, 5}, 5).Bounds(); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("circle Bounds() = %v", got)
	}
}

func TestPolygonZeroValue(t *testing.T) {
	var p Polygon
	if got := p.MaxIntersections(); got != 0 {
		t.Errorf("MaxIntersections() = %d, want 0", got)
	}
	if got := p.Scan(0, make([]float32, 4), NonZero); got != 0 {
		t.Errorf("Scan() = %d, want 0", got)
	}
	if !p.Bounds().Empty() {
		t.Errorf("Bounds() = %v, want empty", p.Bounds())
	}

	frame, err := pixel.NewFrame[pixel.RGBA32](4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := Fill(frame, &p, Solid(Red), DefaultGraphicsOptions(), ShapeOptions{}); err != nil {
		t.Errorf("Fill(zero polygon) = %v", err)
	}
}
