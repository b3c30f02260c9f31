package sevenseg

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// ImageSurface is a [Surface] backed by a standard *image.RGBA.
//
// Fills outside the image bounds are silently clipped; FillSolid never
// fails. This is the default host surface used by the examples and the demo
// command.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface creates a surface with the given dimensions.
// Dimensions smaller than 1 are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewImageSurfaceFor creates a surface drawing into an existing image.
// The image is shared, not copied.
func NewImageSurfaceFor(img *image.RGBA) *ImageSurface {
	return &ImageSurface{img: img}
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int {
	return s.img.Bounds().Dy()
}

// FillSolid fills a rectangle with a solid color, clipping it to the image
// bounds. It always returns nil.
func (s *ImageSurface) FillSolid(r Rect, c color.RGBA) error {
	dst := image.Rect(r.Min.X, r.Min.Y, r.Max().X, r.Max().Y).Intersect(s.img.Bounds())
	if dst.Empty() {
		return nil
	}

	draw.Draw(s.img, dst, image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// Clear fills the entire surface with a color.
func (s *ImageSurface) Clear(c color.RGBA) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Image returns the underlying image. Modifications affect the surface.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	dst := image.NewRGBA(s.img.Bounds())
	copy(dst.Pix, s.img.Pix)
	return dst
}

// SavePNG saves the surface contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.img)
}

var _ Surface[color.RGBA] = (*ImageSurface)(nil)
