package sevenseg

// Segment is a drawable for a single seven-segment stroke.
//
// A segment is described by its bounding rectangle: the longer axis selects
// the orientation, and the stroke tapers towards both ends along that axis,
// producing a chamfered bar instead of a plain rectangle.
type Segment[C any] struct {
	rect  Rect
	color C
}

// NewSegment creates a segment drawable filling the whole rectangle.
func NewSegment[C any](rect Rect, color C) Segment[C] {
	return Segment[C]{rect: rect, color: color}
}

// SegmentWithReducedSize creates a segment drawable with reduced size.
//
// The rectangle is inset along its short axis so that a vertical and a
// horizontal segment sharing the same corner don't overlap. Rectangles too
// small to be inset collapse to a zero size and draw nothing.
func SegmentWithReducedSize[C any](rect Rect, color C) Segment[C] {
	if rect.Size.W > rect.Size.H {
		sizeOffset := rect.Size.H/2 + 1
		rect.Min.X += sizeOffset
		rect.Size.W -= 2 * sizeOffset
		if rect.Size.W < 0 {
			rect.Size.W = 0
		}
	} else {
		sizeOffset := rect.Size.W/2 + 1
		rect.Min.Y += sizeOffset
		rect.Size.H -= 2 * sizeOffset
		if rect.Size.H < 0 {
			rect.Size.H = 0
		}
	}

	return NewSegment(rect, color)
}

// Draw rasterizes the segment onto the target surface.
//
// The stroke is built from one-pixel scanlines perpendicular to the long
// axis, each inset from the rectangle edge by its distance to the center
// line. Scanlines are issued in increasing coordinate order. A zero-sized
// rectangle draws nothing and succeeds.
func (s Segment[C]) Draw(target Surface[C]) error {
	if s.rect.Empty() {
		return nil
	}

	// Doubled center coordinates, so odd and even extents share one formula.
	center2X := 2*s.rect.Min.X + s.rect.Size.W - 1
	center2Y := 2*s.rect.Min.Y + s.rect.Size.H - 1

	if s.rect.Size.W > s.rect.Size.H {
		// Horizontal segment: one row per scanline, inset by the row's
		// distance to the vertical center.
		for y := s.rect.Min.Y; y < s.rect.Min.Y+s.rect.Size.H; y++ {
			offset := abs(2*y-center2Y) / 2

			scanline := Rect{
				Min:  Point{X: s.rect.Min.X + offset, Y: y},
				Size: Size{W: s.rect.Size.W - 2*offset, H: 1},
			}

			if err := target.FillSolid(scanline, s.color); err != nil {
				return err
			}
		}
	} else {
		// Vertical segment: one column per scanline.
		for x := s.rect.Min.X; x < s.rect.Min.X+s.rect.Size.W; x++ {
			offset := abs(2*x-center2X) / 2

			scanline := Rect{
				Min:  Point{X: x, Y: s.rect.Min.Y + offset},
				Size: Size{W: 1, H: s.rect.Size.H - 2*offset},
			}

			if err := target.FillSolid(scanline, s.color); err != nil {
				return err
			}
		}
	}

	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
