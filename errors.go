package sevenseg

import "errors"

// Common errors returned by sevenseg operations.
var (
	// ErrUnsupportedChar is returned by SegmentsFromChar for characters that
	// have no glyph mapping and are outside the private-use band.
	ErrUnsupportedChar = errors.New("sevenseg: unsupported character")

	// ErrInvalidStyle is returned by Builder.Build for styles with negative
	// dimensions.
	ErrInvalidStyle = errors.New("sevenseg: invalid style")
)
