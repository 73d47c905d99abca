// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/chewxy/math32"

// Scanline accumulates fractional pixel coverage for one destination row.
//
// Every sub-row sample contributes at most 1/subpixels to a column, so a
// column covered by all samples reaches exactly 1. Partial columns are
// quantized to 1/subpixels² steps along x.
//
// A Scanline is owned by a single row worker and is not safe for concurrent use.
type Scanline struct {
	cov           []float32
	dirty         bool
	subpixels     float32
	fraction      float32 // coverage of one full sub-row sample
	fractionPoint float32 // coverage of one sub-row x step
}

// NewScanline wraps cov as a coverage row sampled with the given number of sub-rows.
// cov is treated as dirty until the first Reset.
func NewScanline(cov []float32, subpixels int) *Scanline {
	n := float32(subpixels)
	return &Scanline{
		cov:           cov,
		dirty:         true,
		subpixels:     n,
		fraction:      1 / n,
		fractionPoint: 1 / (n * n),
	}
}

// Coverage returns the accumulated coverage values.
func (s *Scanline) Coverage() []float32 {
	return s.cov
}

// Dirty reports whether any column received coverage since the last Reset.
func (s *Scanline) Dirty() bool {
	return s.dirty
}

// Reset zeroes the row, skipping the work when nothing was written.
func (s *Scanline) Reset() {
	if !s.dirty {
		return
	}
	clear(s.cov)
	s.dirty = false
}

// AddSpan adds one sub-row sample of the span [start, end), given in
// row-local x coordinates. offset shifts the pixel grid when picking the
// boundary columns; the partial amounts they receive are measured from the
// unshifted span. No column gains more than one sample's worth per call.
func (s *Scanline) AddSpan(start, end, offset float32) {
	if !(end > start) {
		return
	}

	w := len(s.cov)
	startX := s.column(start + offset)
	endX := s.column(end + offset)

	if startX == endX {
		s.addPartial(startX, end-start)
		return
	}

	s.addPartial(startX, float32(startX+1)-start)
	s.addPartial(endX, end-float32(endX))

	lo := max(startX+1, 0)
	hi := min(endX, w)
	for x := lo; x < hi; x++ {
		s.cov[x] += s.fraction
	}
	if lo < hi {
		s.dirty = true
	}
}

// column floors x to a column index, limited to [-1, width+1] so that far
// off-row coordinates stay representable.
func (s *Scanline) column(x float32) int {
	x = math32.Max(x, -1)
	x = math32.Min(x, float32(len(s.cov)+1))
	return int(math32.Floor(x))
}

// addPartial credits column x with length pixels of coverage, rounded up to
// whole x steps and capped at one sample.
func (s *Scanline) addPartial(x int, length float32) {
	if x < 0 || x >= len(s.cov) {
		return
	}
	steps := math32.Ceil(math32.Min(length, 1) * s.subpixels)
	if steps <= 0 {
		return
	}
	s.cov[x] += steps * s.fractionPoint
	s.dirty = true
}

// Clamp caps every column at 1 to absorb floating point drift.
func (s *Scanline) Clamp() {
	for i, c := range s.cov {
		if c > 1 {
			s.cov[i] = 1
		}
	}
}

// Threshold snaps coverage to 0 or 1 around 0.5 for hard-edged fills.
// It reports whether the row now holds any ones and any zeros.
func (s *Scanline) Threshold() (hasOnes, hasZeros bool) {
	for i, c := range s.cov {
		if c >= 0.5 {
			s.cov[i] = 1
			hasOnes = true
		} else {
			s.cov[i] = 0
			hasZeros = true
		}
	}
	return hasOnes, hasZeros
}
