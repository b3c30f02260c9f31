package sevenseg

import (
	"errors"
	"testing"
)

func TestSegmentsFromChar(t *testing.T) {
	tests := []struct {
		char rune
		want Segments
	}{
		{' ', 0},
		{'0', SegmentA | SegmentB | SegmentC | SegmentD | SegmentE | SegmentF},
		{'1', SegmentB | SegmentC},
		{'2', SegmentA | SegmentB | SegmentD | SegmentE | SegmentG},
		{'3', SegmentA | SegmentB | SegmentC | SegmentD | SegmentG},
		{'4', SegmentB | SegmentC | SegmentF | SegmentG},
		{'5', SegmentA | SegmentC | SegmentD | SegmentF | SegmentG},
		{'6', SegmentA | SegmentC | SegmentD | SegmentE | SegmentF | SegmentG},
		{'7', SegmentA | SegmentB | SegmentC},
		{'8', SegmentA | SegmentB | SegmentC | SegmentD | SegmentE | SegmentF | SegmentG},
		{'9', SegmentA | SegmentB | SegmentC | SegmentD | SegmentF | SegmentG},
		{'c', SegmentD | SegmentE | SegmentG},
		{'C', SegmentA | SegmentD | SegmentE | SegmentF},
		{'o', SegmentC | SegmentD | SegmentE | SegmentG},
		{'O', SegmentA | SegmentB | SegmentC | SegmentD | SegmentE | SegmentF},
		{'r', SegmentE | SegmentG},
		{'_', SegmentD},
		{'-', SegmentG},
		{'=', SegmentD | SegmentG},
		{'°', SegmentA | SegmentB | SegmentF | SegmentG},
		{'"', SegmentB | SegmentF},
		{'\'', SegmentF},
		{'(', SegmentA | SegmentD | SegmentE | SegmentF},
		{'[', SegmentA | SegmentD | SegmentE | SegmentF},
		{')', SegmentA | SegmentB | SegmentC | SegmentD},
		{']', SegmentA | SegmentB | SegmentC | SegmentD},
		{'?', SegmentA | SegmentB | SegmentE | SegmentG},
	}

	for _, tt := range tests {
		got, err := SegmentsFromChar(tt.char)
		if err != nil {
			t.Errorf("SegmentsFromChar(%q) = %v", tt.char, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SegmentsFromChar(%q) = %07b, want %07b", tt.char, got, tt.want)
		}
	}
}

// TestSegmentsTableTotality verifies that every character of the curated
// domain has a glyph.
func TestSegmentsTableTotality(t *testing.T) {
	const domain = `0123456789` +
		`abcdefghijlnopqrstuy` +
		`ABCDEFGHIJLNOPQRSTUY` +
		` _-=°"'()[]?`

	for _, c := range domain {
		if _, err := SegmentsFromChar(c); err != nil {
			t.Errorf("SegmentsFromChar(%q) = %v, want glyph", c, err)
		}
	}
}

func TestSegmentsCaseInsensitivePairs(t *testing.T) {
	// Most letters share one glyph across cases; c/C, h/H, o/O and u/U have
	// distinct glyphs by design and are covered in TestSegmentsFromChar.
	for _, pair := range []string{"aA", "bB", "dD", "eE", "fF", "gG", "iI", "jJ", "lL", "nN", "pP", "qQ", "rR", "sS", "tT", "yY"} {
		lower, err := SegmentsFromChar(rune(pair[0]))
		if err != nil {
			t.Fatalf("SegmentsFromChar(%q) = %v", pair[0], err)
		}
		upper, err := SegmentsFromChar(rune(pair[1]))
		if err != nil {
			t.Fatalf("SegmentsFromChar(%q) = %v", pair[1], err)
		}
		if lower != upper {
			t.Errorf("glyphs for %q differ: %07b vs %07b", pair, lower, upper)
		}
	}
}

func TestSegmentsUnsupportedChar(t *testing.T) {
	for _, c := range []rune{'k', 'z', 'K', 'Z', '!', '€', '\n', 'က', '', ''} {
		_, err := SegmentsFromChar(c)
		if !errors.Is(err, ErrUnsupportedChar) {
			t.Errorf("SegmentsFromChar(%q) = %v, want ErrUnsupportedChar", c, err)
		}
	}
}

// TestSegmentsCharRoundTrip verifies decode(encode(s)) == s for every
// possible segment combination, and encode(decode(c)) == c for every code
// point in the private-use band.
func TestSegmentsCharRoundTrip(t *testing.T) {
	for bits := 0; bits <= 0x7F; bits++ {
		s := Segments(bits)

		c := s.Char()
		if c < privateUseBase || c > privateUseLast {
			t.Fatalf("Segments(%07b).Char() = %U, outside private-use band", bits, c)
		}

		got, err := SegmentsFromChar(c)
		if err != nil {
			t.Fatalf("SegmentsFromChar(%U) = %v", c, err)
		}
		if got != s {
			t.Fatalf("round trip of %07b via %U = %07b", bits, c, got)
		}
		if got.Char() != c {
			t.Fatalf("encode(decode(%U)) = %U", c, got.Char())
		}
	}
}

func TestSegmentsSetAlgebra(t *testing.T) {
	one := SegmentB | SegmentC

	if got := SegmentB.Union(SegmentC); got != one {
		t.Errorf("SegmentB.Union(SegmentC) = %07b, want %07b", got, one)
	}
	if !one.Contains(SegmentB) || !one.Contains(SegmentC) {
		t.Error("union lost a member")
	}
	if one.Contains(SegmentA) {
		t.Error("Contains reported an inactive segment")
	}
	if !one.Contains(one) {
		t.Error("Contains must hold for the set itself")
	}
	if one.IsEmpty() {
		t.Error("IsEmpty on a non-empty set")
	}
	if !Segments(0).IsEmpty() {
		t.Error("IsEmpty on the empty set")
	}

	space, err := SegmentsFromChar(' ')
	if err != nil {
		t.Fatalf("SegmentsFromChar(' ') = %v", err)
	}
	if !space.IsEmpty() {
		t.Errorf("space glyph = %07b, want empty", space)
	}
}

func TestSegmentsFromCharMatchesConstants(t *testing.T) {
	got, err := SegmentsFromChar('1')
	if err != nil {
		t.Fatalf("SegmentsFromChar('1') = %v", err)
	}
	if want := SegmentB.Union(SegmentC); got != want {
		t.Errorf("SegmentsFromChar('1') = %07b, want %07b", got, want)
	}
}
