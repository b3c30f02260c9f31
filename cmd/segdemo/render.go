package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	fgg "github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sevenseg"
)

// buildStyle converts the display config into a character style.
func buildStyle(cfg Config) (sevenseg.Style[color.RGBA], error) {
	b := sevenseg.NewBuilder[color.RGBA]().
		DigitSize(sevenseg.Sz(cfg.DigitWidth, cfg.DigitHeight)).
		DigitSpacing(cfg.DigitSpacing).
		SegmentWidth(cfg.SegmentWidth)

	if c, ok := ParseColor(cfg.SegmentColor); ok {
		b.SegmentColor(c)
	}
	if c, ok := ParseColor(cfg.InactiveSegmentColor); ok {
		b.InactiveSegmentColor(c)
	}

	return b.Build()
}

// renderText rasterizes the text at native resolution, upscales it, and
// optionally frames it with a bezel. The result is written as PNG.
func renderText(cfg Config, text, outPath string) error {
	style, err := buildStyle(cfg)
	if err != nil {
		return err
	}

	metrics := style.MeasureString(text, sevenseg.Pt(cfg.Margin, cfg.Margin), sevenseg.BaselineTop)
	panelW := metrics.BoundingBox.Size.W + 2*cfg.Margin
	panelH := style.DigitSize.H + 2*cfg.Margin

	surface := sevenseg.NewImageSurface(panelW, panelH)
	if bg, ok := ParseColor(cfg.BackgroundColor); ok {
		surface.Clear(bg)
	}
	if _, err := style.DrawString(text, sevenseg.Pt(cfg.Margin, cfg.Margin), sevenseg.BaselineTop, surface); err != nil {
		return err
	}

	panel := upscale(surface.Image(), cfg.Scale)

	if !cfg.BezelEnabled {
		return savePNG(panel, outPath)
	}
	return saveWithBezel(cfg, panel, outPath)
}

// upscale scales the panel by an integer factor with hard pixel edges.
func upscale(src *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return src
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// saveWithBezel composites the panel onto a rounded bezel plate.
func saveWithBezel(cfg Config, panel *image.RGBA, outPath string) error {
	bw := cfg.BezelWidth
	w := panel.Bounds().Dx() + 2*bw
	h := panel.Bounds().Dy() + 2*bw

	dc := fgg.NewContext(w, h)
	if c, ok := ParseColor(cfg.BezelColor); ok {
		dc.SetColor(c)
	}
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(cfg.BezelRadius))
	dc.Fill()

	// Recessed edge around the panel cutout.
	dc.SetRGBA(0, 0, 0, 0.35)
	dc.DrawRectangle(float64(bw-2), float64(bw-2), float64(panel.Bounds().Dx()+4), float64(panel.Bounds().Dy()+4))
	dc.Fill()

	dc.DrawImage(panel, bw, bw)

	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("save %s: %w", outPath, err)
	}
	return nil
}

func savePNG(img *image.RGBA, outPath string) error {
	if err := sevenseg.NewImageSurfaceFor(img).SavePNG(outPath); err != nil {
		return fmt.Errorf("save %s: %w", outPath, err)
	}
	return nil
}
