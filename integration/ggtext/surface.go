// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggtext

import (
	"errors"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/sevenseg"
)

// ErrNilContext is returned when a nil gg.Context is passed to New.
var ErrNilContext = errors.New("ggtext: nil gg.Context")

// fillTarget is the subset of gg.Context used by the surface.
// A local interface keeps the rendering path testable.
type fillTarget interface {
	SetColor(c color.Color)
	DrawRectangle(x, y, w, h float64)
	Fill() error
}

// Surface adapts a gg.Context to [sevenseg.Surface].
type Surface struct {
	ctx    *gg.Context
	target fillTarget
}

// New creates a surface drawing into the given context.
func New(ctx *gg.Context) (*Surface, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return &Surface{ctx: ctx, target: ctx}, nil
}

// Context returns the wrapped drawing context.
func (s *Surface) Context() *gg.Context {
	return s.ctx
}

// FillSolid fills a segment rectangle with a solid color using the
// context's current transform and clip. Rendering errors from the context
// are returned to the caller, aborting the draw operation in progress.
func (s *Surface) FillSolid(r sevenseg.Rect, c color.RGBA) error {
	if r.Empty() {
		return nil
	}

	s.target.SetColor(c)
	s.target.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Size.W), float64(r.Size.H))
	return s.target.Fill()
}

var _ sevenseg.Surface[color.RGBA] = (*Surface)(nil)
var _ fillTarget = (*gg.Context)(nil)
