package sevenseg

import "strings"

// Text is a drawable for a styled, possibly multi-line string.
//
// Lines are separated by '\n' and advance vertically by the style's
// [Style.LineHeight]; each line starts at the same X coordinate. For
// single-line rendering with explicit cursor control, use
// [Style.DrawString] directly.
type Text[C any] struct {
	// Value is the string to render.
	Value string

	// Position is the anchor of the first line, interpreted per Baseline.
	Position Point

	// Style is the character style.
	Style Style[C]

	// Baseline selects the vertical anchor convention. The zero value is
	// BaselineTop; NewText defaults to BaselineAlphabetic.
	Baseline Baseline
}

// NewText creates a text drawable with the alphabetic baseline.
func NewText[C any](value string, position Point, style Style[C]) Text[C] {
	return Text[C]{
		Value:    value,
		Position: position,
		Style:    style,
		Baseline: BaselineAlphabetic,
	}
}

// Draw renders the text and returns the insertion point after the last
// line, for chaining further draws in the same or another style.
func (t Text[C]) Draw(target Surface[C]) (Point, error) {
	position := t.Position
	next := position

	for i, line := range strings.Split(t.Value, "\n") {
		if i > 0 {
			position.Y += t.Style.LineHeight()
		}

		var err error
		next, err = t.Style.DrawString(line, position, t.Baseline, target)
		if err != nil {
			return Point{}, err
		}
	}

	return next, nil
}
