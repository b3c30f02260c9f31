package sevenseg

import "fmt"

// Builder builds [Style] values.
//
// A zero builder is not valid; create builders with [NewBuilder] or
// [BuilderFrom]. All setters return the builder for chaining:
//
//	style, err := sevenseg.NewBuilder[color.RGBA]().
//	    DigitSize(sevenseg.Sz(24, 48)).
//	    DigitSpacing(8).
//	    SegmentWidth(6).
//	    SegmentColor(color.RGBA{G: 255, A: 255}).
//	    Build()
type Builder[C any] struct {
	style Style[C]
}

// NewBuilder creates a builder with default values: digit size 12x24,
// digit spacing 5, segment width 3, and both colors unset.
func NewBuilder[C any]() *Builder[C] {
	return &Builder[C]{
		style: Style[C]{
			DigitSize:    Sz(12, 24),
			DigitSpacing: 5,
			SegmentWidth: 3,
		},
	}
}

// BuilderFrom creates a builder seeded with an existing style, for deriving
// variants.
func BuilderFrom[C any](style Style[C]) *Builder[C] {
	return &Builder[C]{style: style}
}

// DigitSize sets the digit size.
func (b *Builder[C]) DigitSize(size Size) *Builder[C] {
	b.style.DigitSize = size
	return b
}

// DigitSpacing sets the spacing between adjacent digits.
func (b *Builder[C]) DigitSpacing(spacing int) *Builder[C] {
	b.style.DigitSpacing = spacing
	return b
}

// SegmentWidth sets the stroke width of the segments.
func (b *Builder[C]) SegmentWidth(width int) *Builder[C] {
	b.style.SegmentWidth = width
	return b
}

// SegmentColor sets the color of active segments.
func (b *Builder[C]) SegmentColor(color C) *Builder[C] {
	b.style.SegmentColor = &color
	return b
}

// ResetSegmentColor resets the active segment color to transparent.
func (b *Builder[C]) ResetSegmentColor() *Builder[C] {
	b.style.SegmentColor = nil
	return b
}

// InactiveSegmentColor sets the color of inactive segments.
func (b *Builder[C]) InactiveSegmentColor(color C) *Builder[C] {
	b.style.InactiveSegmentColor = &color
	return b
}

// ResetInactiveSegmentColor resets the inactive segment color to transparent.
func (b *Builder[C]) ResetInactiveSegmentColor() *Builder[C] {
	b.style.InactiveSegmentColor = nil
	return b
}

// Build validates the configuration and returns the style.
// Negative sizes are rejected with an error wrapping [ErrInvalidStyle].
func (b *Builder[C]) Build() (Style[C], error) {
	s := b.style

	if s.DigitSize.W < 0 || s.DigitSize.H < 0 {
		return Style[C]{}, fmt.Errorf("%w: negative digit size %dx%d", ErrInvalidStyle, s.DigitSize.W, s.DigitSize.H)
	}
	if s.DigitSpacing < 0 {
		return Style[C]{}, fmt.Errorf("%w: negative digit spacing %d", ErrInvalidStyle, s.DigitSpacing)
	}
	if s.SegmentWidth < 0 {
		return Style[C]{}, fmt.Errorf("%w: negative segment width %d", ErrInvalidStyle, s.SegmentWidth)
	}

	return s, nil
}

// MustBuild is like Build but panics on invalid configuration. It is
// intended for styles built from constants.
func (b *Builder[C]) MustBuild() Style[C] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
