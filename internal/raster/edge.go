// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"slices"

	"golang.org/x/image/math/f32"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd FillRule = iota
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero
)

// Edge represents a line segment for scanline intersection.
type Edge struct {
	x0, y0 float32 // Start point
	x1, y1 float32 // End point
	dx     float32 // dx/dy slope
	dir    int     // Direction: +1 or -1
}

// NewEdge creates a new edge from two points.
func NewEdge(p0, p1 f32.Vec2) Edge {
	// Determine direction BEFORE swap (for non-zero winding rule)
	dir := 1
	if p0[1] > p1[1] {
		dir = -1
		p0, p1 = p1, p0 // Swap to ensure y0 < y1
	}

	dy := p1[1] - p0[1]
	var dx float32
	if dy != 0 {
		dx = (p1[0] - p0[0]) / dy
	}

	return Edge{
		x0:  p0[0],
		y0:  p0[1],
		x1:  p1[0],
		y1:  p1[1],
		dx:  dx,
		dir: dir,
	}
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e *Edge) XAtY(y float32) float32 {
	if e.y1 == e.y0 {
		return e.x0
	}
	return e.x0 + (y-e.y0)*e.dx
}

// Crosses reports whether the horizontal line at y intersects the edge.
// The lower endpoint is inclusive, the upper exclusive, so shared vertices
// are counted once.
func (e *Edge) Crosses(y float32) bool {
	return e.y0 <= y && y < e.y1
}

// EdgeList is an immutable set of polygon edges. Intersections may be called
// concurrently.
type EdgeList struct {
	edges      []Edge
	minX, minY float32
	maxX, maxY float32
}

// NewEdgeList builds the edges of the closed polygons given as rings of
// points. Horizontal edges are dropped as they never cross a scanline.
func NewEdgeList(rings ...[]f32.Vec2) *EdgeList {
	l := &EdgeList{}
	first := true
	for _, ring := range rings {
		for i, p0 := range ring {
			p1 := ring[(i+1)%len(ring)]
			if first {
				l.minX, l.maxX, l.minY, l.maxY = p0[0], p0[0], p0[1], p0[1]
				first = false
			}
			l.minX = min(l.minX, p0[0])
			l.maxX = max(l.maxX, p0[0])
			l.minY = min(l.minY, p0[1])
			l.maxY = max(l.maxY, p0[1])
			if p0[1] == p1[1] {
				continue
			}
			l.edges = append(l.edges, NewEdge(p0, p1))
		}
	}
	return l
}

// Len returns the number of non-horizontal edges, which bounds the number of
// crossings on any scanline.
func (l *EdgeList) Len() int {
	return len(l.edges)
}

// Extent returns the bounding box of all points.
func (l *EdgeList) Extent() (minX, minY, maxX, maxY float32) {
	return l.minX, l.minY, l.maxX, l.maxY
}

// crossing is one edge intersection with a scanline.
type crossing struct {
	x   float32
	dir int
}

// Intersections writes the span boundaries of the scanline at y into buf,
// resolved with the given fill rule, and returns how many were written.
// Boundaries come in (start, end) pairs sorted by x.
func (l *EdgeList) Intersections(y float32, buf []float32, rule FillRule) int {
	var local [32]crossing
	active := local[:0]
	for i := range l.edges {
		e := &l.edges[i]
		if e.Crosses(y) {
			active = append(active, crossing{x: e.XAtY(y), dir: e.dir})
		}
	}
	if len(active) == 0 {
		return 0
	}

	slices.SortFunc(active, func(a, b crossing) int {
		switch {
		case a.x < b.x:
			return -1
		case a.x > b.x:
			return 1
		}
		return 0
	})

	if rule == FillRuleNonZero {
		return fillNonZero(active, buf)
	}
	return fillEvenOdd(active, buf)
}

// fillNonZero emits spans where the winding number is non-zero.
func fillNonZero(active []crossing, buf []float32) int {
	n := 0
	winding := 0
	for _, c := range active {
		if winding == 0 && n < len(buf) {
			buf[n] = c.x
			n++
		}

		winding += c.dir

		if winding == 0 && n < len(buf) {
			buf[n] = c.x
			n++
		}
	}
	return n
}

// fillEvenOdd emits every crossing; consecutive pairs bound the spans.
func fillEvenOdd(active []crossing, buf []float32) int {
	n := min(len(active), len(buf))
	for i := range n {
		buf[i] = active[i].x
	}
	return n
}
