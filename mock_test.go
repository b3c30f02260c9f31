package sevenseg

import (
	"fmt"
	"strings"
	"testing"
)

// binColor is a two-state display color for pattern tests. The byte value is
// the character used to render the pixel in expected patterns.
type binColor byte

const (
	colorOn  binColor = '#'
	colorOff binColor = '.'
)

// mockDisplaySize matches the fixed canvas the pattern fixtures were
// written against.
const mockDisplaySize = 64

// mockSurface is a strict in-memory display for golden pattern tests.
//
// Fills outside the canvas and fills that touch an already painted pixel
// are reported as errors, so tests catch stray and overlapping draws, not
// just wrong shapes.
type mockSurface struct {
	pixels [mockDisplaySize][mockDisplaySize]byte
}

func newMockSurface() *mockSurface {
	m := &mockSurface{}
	for y := range m.pixels {
		for x := range m.pixels[y] {
			m.pixels[y][x] = ' '
		}
	}
	return m
}

func (m *mockSurface) FillSolid(r Rect, c binColor) error {
	if r.Empty() {
		return nil
	}
	if r.Min.X < 0 || r.Min.Y < 0 || r.Max().X > mockDisplaySize || r.Max().Y > mockDisplaySize {
		return fmt.Errorf("fill out of bounds: %+v", r)
	}

	for y := r.Min.Y; y < r.Max().Y; y++ {
		for x := r.Min.X; x < r.Max().X; x++ {
			if m.pixels[y][x] != ' ' {
				return fmt.Errorf("pixel (%d, %d) painted twice", x, y)
			}
			m.pixels[y][x] = byte(c)
		}
	}
	return nil
}

// String renders the painted area for failure diagnostics.
func (m *mockSurface) String() string {
	maxX, maxY := 0, 0
	for y := range m.pixels {
		for x := range m.pixels[y] {
			if m.pixels[y][x] != ' ' {
				if x >= maxX {
					maxX = x + 1
				}
				if y >= maxY {
					maxY = y + 1
				}
			}
		}
	}

	var sb strings.Builder
	for y := 0; y < maxY; y++ {
		sb.Write(m.pixels[y][:maxX])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// assertPattern compares the display contents against an expected pattern.
// Rows and columns beyond the pattern must be unpainted.
func (m *mockSurface) assertPattern(t *testing.T, expected []string) {
	t.Helper()

	for y := 0; y < mockDisplaySize; y++ {
		for x := 0; x < mockDisplaySize; x++ {
			want := byte(' ')
			if y < len(expected) && x < len(expected[y]) {
				want = expected[y][x]
			}
			if got := m.pixels[y][x]; got != want {
				t.Fatalf("pixel (%d, %d) = %q, want %q\nrendered:\n%s", x, y, got, want, m)
			}
		}
	}
}

// failSurface returns errFill from the n-th fill onward.
type failSurface struct {
	fills   int
	failAt  int
	errFill error
}

func (f *failSurface) FillSolid(Rect, binColor) error {
	f.fills++
	if f.fills > f.failAt {
		return f.errFill
	}
	return nil
}

// recordSurface records every fill rectangle in order.
type recordSurface struct {
	fills []Rect
}

func (r *recordSurface) FillSolid(rect Rect, _ binColor) error {
	r.fills = append(r.fills, rect)
	return nil
}
