package sparkline

import "errors"

var (
	// ErrEmptySeries is returned when a series has no elements; minimum and
	// maximum are undefined so nothing can be rendered.
	ErrEmptySeries = errors.New("empty series")

	// ErrPalette is returned for palettes with fewer than two glyphs.
	ErrPalette = errors.New("palette needs at least two glyphs")

	// ErrHeight is returned for a negative chart height. Zero is valid and
	// selects the default.
	ErrHeight = errors.New("height must not be negative")

	// ErrBarWidth is returned for a negative chart bar width. Zero is valid
	// and selects the default.
	ErrBarWidth = errors.New("bar width must not be negative")
)
