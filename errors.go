package fill

import "errors"

// Configuration errors. They are returned before any pixel is written.
var (
	// ErrNoColorStops is returned for a gradient without color stops.
	ErrNoColorStops = errors.New("fill: gradient has no color stops")

	// ErrUnknownRepetitionMode is returned for a RepetitionMode outside the
	// defined set.
	ErrUnknownRepetitionMode = errors.New("fill: unknown gradient repetition mode")

	// ErrDegenerateGradient is returned when gradient geometry has zero
	// extent, such as equal start and end points or a zero radius.
	ErrDegenerateGradient = errors.New("fill: degenerate gradient geometry")

	// ErrInvalidThreshold is returned for a recolor threshold outside [0, 1].
	ErrInvalidThreshold = errors.New("fill: recolor threshold out of range")

	// ErrEmptyImage is returned for an image brush without pixels.
	ErrEmptyImage = errors.New("fill: image brush has no pixels")

	// ErrEmptyPattern is returned for a pattern brush with no cells.
	ErrEmptyPattern = errors.New("fill: pattern brush is empty")

	// ErrNilBrush is returned when Fill is called without a brush.
	ErrNilBrush = errors.New("fill: nil brush")

	// ErrNilRegion is returned when Fill is called without a region.
	ErrNilRegion = errors.New("fill: nil region")

	// ErrNilFrame is returned when Fill is called without a destination.
	ErrNilFrame = errors.New("fill: nil frame")

	// ErrUnknownBrush is returned for a Brush value this package cannot
	// build an applicator for.
	ErrUnknownBrush = errors.New("fill: unknown brush type")

	// ErrInvalidOptions is returned when GraphicsOptions or ShapeOptions
	// hold values outside their defined ranges.
	ErrInvalidOptions = errors.New("fill: invalid options")
)
