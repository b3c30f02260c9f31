// Package sevenseg renders seven-segment display digits onto pixel surfaces.
//
// # Overview
//
// sevenseg draws the classic seven-segment numerals (plus a small set of
// letters and punctuation) as thick, chamfered strokes. It is designed as a
// character-rendering backend: the host application owns the pixel canvas and
// the color type, and sevenseg owns the per-glyph geometry and the segment
// rasterization. Any type implementing the one-method [Surface] interface can
// be drawn to.
//
// # Quick Start
//
//	import (
//	    "image/color"
//
//	    "github.com/gogpu/sevenseg"
//	)
//
//	dst := sevenseg.NewImageSurface(256, 64)
//
//	style := sevenseg.NewBuilder[color.RGBA]().
//	    DigitSize(sevenseg.Sz(24, 48)).
//	    SegmentColor(color.RGBA{R: 255, A: 255}).
//	    MustBuild()
//
//	_, err := style.DrawString("12:42", sevenseg.Pt(8, 8), sevenseg.BaselineTop, dst)
//	if err != nil {
//	    return err
//	}
//	dst.SavePNG("clock.png")
//
// # Glyphs
//
// Each glyph is a [Segments] bit set naming which of the seven strokes A-G
// are lit. [SegmentsFromChar] maps digits 0-9, many letters, and the
// punctuation marks space, underscore, dash, equals, degree sign, quotes,
// parentheses, brackets, and question mark to their segment patterns. Colon
// and decimal point are handled directly by [Style.DrawString] as small
// square dots.
//
// Arbitrary segment combinations can be embedded in ordinary strings:
// [Segments.Char] encodes a pattern as a private-use code point
// (U+E000..U+E07F) that DrawString decodes back to the same pattern. This is
// how custom or animated digits are mixed with regular text.
//
// # Color Model
//
// Styles and surfaces are generic over an opaque color type C. sevenseg
// never inspects color values; it only passes them through to the surface.
// Active and inactive segment colors are optional: an unset color means the
// corresponding segment state is not drawn at all, which is how "ghost"
// segments are either shown dimly or omitted.
//
// # Layout
//
// Rendering is monospaced: every glyph advances the cursor by the digit
// width plus spacing regardless of which segments are lit ('.' and ':'
// advance by the segment width instead). Draw calls take a start position
// and return the next one, so output from different styles can be chained
// without shared state. [Text] adds multi-line convenience on top of
// [Style.DrawString].
//
// # Logging
//
// The package produces no log output by default. Call [SetLogger] with a
// log/slog logger to enable debug diagnostics (for example, characters
// skipped because they have no glyph).
package sevenseg

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
