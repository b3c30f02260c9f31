package sevenseg

// Surface is the rendering target abstraction.
//
// A Surface accepts solid rectangle fills in an opaque color type C. The
// renderer guarantees that fills are issued in increasing coordinate order
// along the axis it iterates, but it does not clip: bounds policy is entirely
// the surface's responsibility. A surface may silently clip out-of-bounds
// fills (see [ImageSurface]) or report them as errors.
//
// Any error returned from FillSolid aborts the current draw call and is
// propagated to the caller unchanged.
type Surface[C any] interface {
	// FillSolid fills an axis-aligned rectangle with a solid color.
	FillSolid(r Rect, c C) error
}
