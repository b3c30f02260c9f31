package sevenseg

// Point represents a 2D pixel position.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size represents a 2D pixel extent.
type Size struct {
	W, H int
}

// Sz is a convenience function to create a Size.
func Sz(w, h int) Size {
	return Size{W: w, H: h}
}

// Rect is an axis-aligned rectangle described by its top-left corner and size.
type Rect struct {
	Min  Point
	Size Size
}

// NewRect creates a rectangle from a top-left corner and a size.
func NewRect(min Point, size Size) Rect {
	return Rect{Min: min, Size: size}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Size.W <= 0 || r.Size.H <= 0
}

// Max returns the exclusive bottom-right corner of the rectangle.
func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.Size.W, Y: r.Min.Y + r.Size.H}
}

// Anchor names a fixed point of a rectangle that is preserved by Resized.
type Anchor int

// Anchor positions.
const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorCenterLeft
)

// Resized returns a rectangle of the given size sharing the anchored edge or
// corner with r. AnchorCenterLeft keeps the left edge and centers the new
// height on the old one, rounding the offset down.
func (r Rect) Resized(size Size, anchor Anchor) Rect {
	min := r.Min

	switch anchor {
	case AnchorTopRight:
		min.X += r.Size.W - size.W
	case AnchorBottomLeft:
		min.Y += r.Size.H - size.H
	case AnchorBottomRight:
		min.X += r.Size.W - size.W
		min.Y += r.Size.H - size.H
	case AnchorCenterLeft:
		min.Y += (r.Size.H - size.H) / 2
	}

	return Rect{Min: min, Size: size}
}
