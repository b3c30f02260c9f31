package sevenseg

// Baseline is the vertical reference a text position is measured from.
type Baseline int

// Baseline positions.
const (
	// BaselineTop aligns the position with the top edge of the digits.
	BaselineTop Baseline = iota
	// BaselineBottom aligns the position with the bottom edge of the digits.
	BaselineBottom
	// BaselineMiddle aligns the position with the vertical center of the digits.
	BaselineMiddle
	// BaselineAlphabetic aligns like BaselineBottom; seven-segment digits
	// have no descenders.
	BaselineAlphabetic
)

// TextMetrics holds the layout of a measured string.
type TextMetrics struct {
	// BoundingBox is the area the string would cover.
	BoundingBox Rect

	// NextPosition is the insertion point following the string.
	NextPosition Point
}

// Style describes how seven-segment text is rendered.
//
// Use [Builder] to build styles. A Style is a plain value: it is copied into
// each draw call and never mutated, so one style can be shared freely.
//
// The color type C is opaque to the renderer. Either color may be nil,
// meaning segments in that state are not drawn at all.
type Style[C any] struct {
	// DigitSize is the size of each digit cell.
	DigitSize Size

	// DigitSpacing is the horizontal spacing between adjacent digit cells.
	DigitSpacing int

	// SegmentWidth is the stroke width of the segments.
	SegmentWidth int

	// SegmentColor is the color of active segments, or nil for transparent.
	SegmentColor *C

	// InactiveSegmentColor is the color of inactive segments, or nil for
	// transparent.
	InactiveSegmentColor *C
}

// stateColor returns the fill color for the given segment state.
func (s Style[C]) stateColor(active bool) *C {
	if active {
		return s.SegmentColor
	}
	return s.InactiveSegmentColor
}

// baselineOffset returns the vertical offset between the line position and
// the top edge of the bounding box.
func (s Style[C]) baselineOffset(baseline Baseline) int {
	bottom := s.DigitSize.H - 1
	if bottom < 0 {
		bottom = 0
	}

	switch baseline {
	case BaselineBottom, BaselineAlphabetic:
		return bottom
	case BaselineMiddle:
		return bottom / 2
	default:
		return 0
	}
}

// DrawDigit draws the digit cell for one segment pattern anchored at
// position and returns the anchor for the next digit.
//
// The advance is always DigitSize.W + DigitSpacing, independent of which
// segments are lit (monospaced layout). Segments whose state color is nil
// are skipped. A surface error aborts the call immediately; segments drawn
// before the failure remain drawn.
func (s Style[C]) DrawDigit(segments Segments, position Point, target Surface[C]) (Point, error) {
	cell := NewRect(position, s.DigitSize)

	// A, D and G span the full cell width; B/F and C/E split the height
	// between them. The bottom half rounds up so that together they cover
	// DigitSize.H + SegmentWidth, overlapping by exactly SegmentWidth where
	// G sits.
	barSize := Sz(s.DigitSize.W, s.SegmentWidth)
	sideSizeTop := Sz(s.SegmentWidth, (s.DigitSize.H+s.SegmentWidth)/2)
	sideSizeBottom := Sz(s.SegmentWidth, (s.DigitSize.H+s.SegmentWidth+1)/2)

	for _, part := range [...]struct {
		segment Segments
		size    Size
		anchor  Anchor
	}{
		{SegmentA, barSize, AnchorTopLeft},
		{SegmentB, sideSizeTop, AnchorTopRight},
		{SegmentC, sideSizeBottom, AnchorBottomRight},
		{SegmentD, barSize, AnchorBottomLeft},
		{SegmentE, sideSizeBottom, AnchorBottomLeft},
		{SegmentF, sideSizeTop, AnchorTopLeft},
		{SegmentG, barSize, AnchorCenterLeft},
	} {
		color := s.stateColor(segments.Contains(part.segment))
		if color == nil {
			continue
		}

		err := SegmentWithReducedSize(cell.Resized(part.size, part.anchor), *color).Draw(target)
		if err != nil {
			return Point{}, err
		}
	}

	return position.Add(Pt(s.DigitSize.W+s.DigitSpacing, 0)), nil
}

// DrawString renders text starting at position and returns the next
// insertion point, so that consecutive calls (possibly with different
// styles) produce contiguous output.
//
// Characters with a glyph (see [SegmentsFromChar]) are drawn as digit
// cells. ':' and '.' are drawn as SegmentWidth-square dots in the active
// segment color only, advancing by SegmentWidth + DigitSpacing; they advance
// even when no active color is set. Characters without a glyph are skipped
// without advancing and reported at debug level through the package logger.
func (s Style[C]) DrawString(text string, position Point, baseline Baseline, target Surface[C]) (Point, error) {
	offset := s.baselineOffset(baseline)
	position.Y -= offset

	for _, c := range text {
		switch {
		case c == ':':
			if s.SegmentColor != nil {
				dy := s.DigitSize.H / 3

				dot := NewRect(
					position.Add(Pt(0, dy-s.SegmentWidth/2)),
					Sz(s.SegmentWidth, s.SegmentWidth),
				)
				if err := target.FillSolid(dot, *s.SegmentColor); err != nil {
					return Point{}, err
				}

				dot.Min.Y += dy
				if err := target.FillSolid(dot, *s.SegmentColor); err != nil {
					return Point{}, err
				}
			}

			position.X += s.SegmentWidth + s.DigitSpacing

		case c == '.':
			if s.SegmentColor != nil {
				dot := NewRect(
					position.Add(Pt(0, s.DigitSize.H-s.SegmentWidth)),
					Sz(s.SegmentWidth, s.SegmentWidth),
				)
				if err := target.FillSolid(dot, *s.SegmentColor); err != nil {
					return Point{}, err
				}
			}

			position.X += s.SegmentWidth + s.DigitSpacing

		default:
			segments, err := SegmentsFromChar(c)
			if err != nil {
				Logger().Debug("sevenseg: skipping character without glyph", "char", string(c))
				continue
			}

			position, err = s.DrawDigit(segments, position, target)
			if err != nil {
				return Point{}, err
			}
		}
	}

	position.Y += offset

	return position, nil
}

// MeasureString measures text without drawing it.
//
// Every character except '.' and ':' is counted as one full digit cell,
// including characters DrawString would skip; '.' and ':' count as
// SegmentWidth. MeasureString has no side effects and never fails.
func (s Style[C]) MeasureString(text string, position Point, baseline Baseline) TextMetrics {
	width := 0
	for _, c := range text {
		if c == '.' || c == ':' {
			width += s.SegmentWidth
		} else {
			width += s.DigitSize.W
		}
		width += s.DigitSpacing
	}
	if width > 0 {
		width -= s.DigitSpacing
	}

	return TextMetrics{
		BoundingBox: NewRect(
			position.Sub(Pt(0, s.baselineOffset(baseline))),
			Sz(width, s.DigitSize.H),
		),
		NextPosition: position.Add(Pt(width, 0)),
	}
}

// LineHeight returns the vertical advance between lines of text.
func (s Style[C]) LineHeight() int {
	return s.DigitSize.H + s.DigitSpacing
}
