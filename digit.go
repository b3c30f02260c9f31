package sevenseg

// Digit is a drawable for a single seven-segment digit at a fixed position.
//
// It is a thin wrapper around [Style.DrawDigit] for callers that want to
// place individual digits instead of rendering strings.
type Digit struct {
	segments Segments
	position Point
}

// NewDigit creates a new digit.
func NewDigit(segments Segments, position Point) Digit {
	return Digit{segments: segments, position: position}
}

// Segments returns the digit's segment pattern.
func (d Digit) Segments() Segments {
	return d.segments
}

// Position returns the digit's anchor position.
func (d Digit) Position() Point {
	return d.position
}

// DrawStyled renders the digit with the given style and returns the anchor
// position for the next digit.
func DrawStyled[C any](d Digit, style Style[C], target Surface[C]) (Point, error) {
	return style.DrawDigit(d.segments, d.position, target)
}
