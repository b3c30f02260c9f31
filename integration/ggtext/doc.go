// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggtext renders seven-segment text onto gg drawing contexts.
//
// It adapts a gg.Context to the sevenseg.Surface interface, so styled
// digits can be composed with everything else drawn through the gg API:
//
//	dc := gg.NewContext(256, 128)
//	dc.SetRGB(0.1, 0.1, 0.1)
//	dc.Clear()
//
//	surface, _ := ggtext.New(dc)
//	style := sevenseg.NewBuilder[color.RGBA]().
//		SegmentColor(color.RGBA{R: 255, A: 255}).
//		MustBuild()
//	style.DrawString("12:34", sevenseg.Pt(16, 96), sevenseg.BaselineAlphabetic, surface)
//
// Segment fills go through the context's current transformation matrix and
// clip region, so scaled or rotated displays come for free.
//
// Surface is as safe for concurrent use as the gg.Context it wraps, which
// is to say not at all. Wrap one context per goroutine.
package ggtext
