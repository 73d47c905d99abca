package fill

import (
	"fmt"

	"github.com/gogpu/fill/pixel"
)

// PatternBrush tiles a boolean pattern over the frame: cells set to true
// take Foreground, the rest Background. Cell (row, col) of the pattern
// covers every pixel with y mod rows == row and x mod cols == col.
type PatternBrush struct {
	Foreground Color
	Background Color
	Pattern    [][]bool
}

// NewPatternBrush returns a pattern brush. All rows of pattern must have
// the same non-zero length.
func NewPatternBrush(fore, back Color, pattern [][]bool) *PatternBrush {
	return &PatternBrush{Foreground: fore, Background: back, Pattern: pattern}
}

// WithBackground returns a copy of the brush with a different background.
func (b *PatternBrush) WithBackground(c Color) *PatternBrush {
	cp := *b
	cp.Background = c
	return &cp
}

func (*PatternBrush) brushMarker() {}

// bits builds a pattern from rows written as strings of '0' and '1'.
func bits(rows ...string) [][]bool {
	p := make([][]bool, len(rows))
	for y, r := range rows {
		p[y] = make([]bool, len(r))
		for x := range r {
			p[y][x] = r[x] == '1'
		}
	}
	return p
}

// Percent10 returns a sparse dot pattern on a transparent background.
func Percent10(fore Color) *PatternBrush {
	return NewPatternBrush(fore, Transparent, bits(
		"1000",
		"0000",
		"0010",
		"0000",
	))
}

// Percent20 returns a denser dot pattern.
func Percent20(fore Color) *PatternBrush {
	return NewPatternBrush(fore, Transparent, bits(
		"1000",
		"0010",
		"1000",
		"0010",
	))
}

// Horizontal returns thin horizontal lines.
func Horizontal(fore Color) *PatternBrush {
	return NewPatternBrush(fore, Transparent, bits("0", "1", "0", "0"))
}

// Min returns a horizontal line at the bottom of every 4-pixel band.
func Min(fore Color) *PatternBrush {
	return NewPatternBrush(fore, Transparent, bits("0", "0", "0", "1"))
}

// Vertical returns thin vertical lines.
func Vertical(fore Color) *PatternBrush {
	return NewPatternBrush(fore, Transparent, bits("0100"))
}

// ForwardDiagonal returns lines running from bottom-left to top-right.
func ForwardDiagonal(fore Color) *PatternBrush {
	return NewPatternBrush(fore, Transparent, bits(
		"0001",
		"0010",
		"0100",
		"1000",
	))
}

// BackwardDiagonal returns lines running from top-left to bottom-right.
func BackwardDiagonal(fore Color) *PatternBrush {
	return NewPatternBrush(fore, Transparent, bits(
		"1000",
		"0100",
		"0010",
		"0001",
	))
}

type patternApplicator[P pixel.Pixel[P]] struct {
	baseApplicator[P]
	cells      [][]P
	rows, cols int
}

func newPatternApplicator[P pixel.Pixel[P]](base baseApplicator[P], b *PatternBrush) (Applicator[P], error) {
	if b == nil {
		return nil, ErrNilBrush
	}
	rows := len(b.Pattern)
	if rows == 0 || len(b.Pattern[0]) == 0 {
		return nil, ErrEmptyPattern
	}
	cols := len(b.Pattern[0])

	fore := pixel.Convert[P](b.Foreground.Vector4())
	back := pixel.Convert[P](b.Background.Vector4())

	cells := make([][]P, rows)
	for y, r := range b.Pattern {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrEmptyPattern, y, len(r), cols)
		}
		cells[y] = make([]P, cols)
		for x, on := range r {
			if on {
				cells[y][x] = fore
			} else {
				cells[y][x] = back
			}
		}
	}

	return &patternApplicator[P]{
		baseApplicator: base,
		cells:          cells,
		rows:           rows,
		cols:           cols,
	}, nil
}

func (a *patternApplicator[P]) At(x, y int) P {
	return a.cells[mod(y, a.rows)][mod(x, a.cols)]
}

func (a *patternApplicator[P]) Apply(coverage []float32, x, y int) error {
	return a.applyRow(coverage, x, y, overlayFromAt(a.At))
}

func (a *patternApplicator[P]) Close() error {
	return nil
}
