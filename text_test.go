package sevenseg

import (
	"errors"
	"testing"
)

func TestTextMultipleLines(t *testing.T) {
	style := patternStyle(t, 5, 9, 2, 1)

	text := Text[binColor]{
		Value:    "12\n3",
		Position: Pt(0, 0),
		Style:    style,
		Baseline: BaselineTop,
	}

	display := newMockSurface()
	if _, err := text.Draw(display); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	display.assertPattern(t, []string{
		"        ### ",
		"    #      #",
		"    #      #",
		"    #      #",
		"        ### ",
		"    #  #    ",
		"    #  #    ",
		"    #  #    ",
		"        ### ",
		"            ",
		"            ",
		" ###        ",
		"    #       ",
		"    #       ",
		"    #       ",
		" ###        ",
		"    #       ",
		"    #       ",
		"    #       ",
		" ###        ",
	})
}

func TestTextDefaultsToAlphabeticBaseline(t *testing.T) {
	style := patternStyle(t, 5, 9, 2, 1)

	text := NewText("8", Pt(0, 8), style)
	if text.Baseline != BaselineAlphabetic {
		t.Fatalf("Baseline = %d, want BaselineAlphabetic", text.Baseline)
	}

	display := newMockSurface()
	if _, err := text.Draw(display); err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	display.assertPattern(t, []string{
		" ### ",
		"#   #",
		"#   #",
		"#   #",
		" ### ",
		"#   #",
		"#   #",
		"#   #",
		" ### ",
	})
}

func TestTextNextPositionChains(t *testing.T) {
	style := patternStyle(t, 5, 9, 1, 1)

	display := newMockSurface()
	next, err := NewText("12", Pt(0, 10), style).Draw(display)
	if err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if want := Pt(12, 10); next != want {
		t.Errorf("next position = %+v, want %+v", next, want)
	}
}

func TestTextMultiLineNextPosition(t *testing.T) {
	style := patternStyle(t, 5, 9, 2, 1)

	display := newMockSurface()
	next, err := Text[binColor]{
		Value:    "12\n3",
		Position: Pt(0, 0),
		Style:    style,
		Baseline: BaselineTop,
	}.Draw(display)
	if err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	// The insertion point continues the last line, one line height down.
	if want := Pt(7, style.LineHeight()); next != want {
		t.Errorf("next position = %+v, want %+v", next, want)
	}
}

func TestTextSurfaceErrorPropagates(t *testing.T) {
	style := patternStyle(t, 5, 9, 1, 1)
	errBroken := errors.New("fill rejected")

	display := &failSurface{failAt: 2, errFill: errBroken}
	if _, err := NewText("88", Pt(0, 10), style).Draw(display); !errors.Is(err, errBroken) {
		t.Errorf("Draw() = %v, want %v", err, errBroken)
	}
}
