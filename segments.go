package sevenseg

import "fmt"

// Segments is a bit set naming the active segments of a seven-segment digit.
//
// Segment layout:
//
//	 AAAAA
//	F     B
//	F     B
//	F     B
//	 GGGGG
//	E     C
//	E     C
//	E     C
//	 DDDDD
//
// A Segments value is constructed from a character with [SegmentsFromChar]
// or by combining the SegmentA..SegmentG constants. Only the low seven bits
// are meaningful.
type Segments uint8

// Individual segments.
const (
	SegmentA Segments = 0b01000000
	SegmentB Segments = 0b00100000
	SegmentC Segments = 0b00010000
	SegmentD Segments = 0b00001000
	SegmentE Segments = 0b00000100
	SegmentF Segments = 0b00000010
	SegmentG Segments = 0b00000001
)

// The private-use code point band reserved for embedding raw Segments values
// in strings. Char and SegmentsFromChar round-trip through this band.
const (
	privateUseBase rune = 0xE000
	privateUseLast rune = 0xE07F
)

// Union returns the set of segments active in s or in other.
func (s Segments) Union(other Segments) Segments {
	return s | other
}

// Contains reports whether all segments in other are active in s.
func (s Segments) Contains(other Segments) bool {
	return s&other == other
}

// IsEmpty reports whether no segment is active.
func (s Segments) IsEmpty() bool {
	return s == 0
}

// Char encodes the segment set as a single character in the private-use
// band U+E000..U+E07F. The returned character is guaranteed to decode back
// to the same Segments value with [SegmentsFromChar], but its concrete value
// is otherwise unspecified and applications should not depend on it.
func (s Segments) Char() rune {
	return privateUseBase + rune(s&0x7F)
}

// SegmentsFromChar returns the segment pattern for a character.
//
// Digits, a subset of letters, and the punctuation marks space, '_', '-',
// '=', '°', '"', '\'', '(', ')', '[', ']' and '?' map to fixed patterns.
// Characters in the private-use band U+E000..U+E07F decode to their raw bit
// pattern (the inverse of [Segments.Char]). Any other character returns an
// error wrapping [ErrUnsupportedChar].
func SegmentsFromChar(c rune) (Segments, error) {
	switch c {
	case ' ':
		return 0, nil
	case '0':
		return SegmentA | SegmentB | SegmentC | SegmentD | SegmentE | SegmentF, nil
	case '1':
		return SegmentB | SegmentC, nil
	case '2':
		return SegmentA | SegmentB | SegmentD | SegmentE | SegmentG, nil
	case '3':
		return SegmentA | SegmentB | SegmentC | SegmentD | SegmentG, nil
	case '4':
		return SegmentB | SegmentC | SegmentF | SegmentG, nil
	case '5':
		return SegmentA | SegmentC | SegmentD | SegmentF | SegmentG, nil
	case '6':
		return SegmentA | SegmentC | SegmentD | SegmentE | SegmentF | SegmentG, nil
	case '7':
		return SegmentA | SegmentB | SegmentC, nil
	case '8':
		return SegmentA | SegmentB | SegmentC | SegmentD | SegmentE | SegmentF | SegmentG, nil
	case '9':
		return SegmentA | SegmentB | SegmentC | SegmentD | SegmentF | SegmentG, nil
	case 'a', 'A':
		return SegmentA | SegmentB | SegmentC | SegmentE | SegmentF | SegmentG, nil
	case 'b', 'B':
		return SegmentC | SegmentD | SegmentE | SegmentF | SegmentG, nil
	case 'c':
		return SegmentD | SegmentE | SegmentG, nil
	case 'C':
		return SegmentA | SegmentD | SegmentE | SegmentF, nil
	case 'd', 'D':
		return SegmentB | SegmentC | SegmentD | SegmentE | SegmentG, nil
	case 'e', 'E':
		return SegmentA | SegmentD | SegmentE | SegmentF | SegmentG, nil
	case 'f', 'F':
		return SegmentA | SegmentE | SegmentF | SegmentG, nil
	case 'g', 'G':
		return SegmentA | SegmentC | SegmentD | SegmentE | SegmentF, nil
	case 'h':
		return SegmentC | SegmentE | SegmentF | SegmentG, nil
	case 'H':
		return SegmentB | SegmentC | SegmentE | SegmentF | SegmentG, nil
	case 'i', 'I':
		return SegmentE | SegmentF, nil
	case 'j', 'J':
		return SegmentB | SegmentC | SegmentD | SegmentE, nil
	case 'l', 'L':
		return SegmentD | SegmentE | SegmentF, nil
	case 'n', 'N':
		return SegmentC | SegmentE | SegmentG, nil
	case 'o':
		return SegmentC | SegmentD | SegmentE | SegmentG, nil
	case 'O':
		return SegmentA | SegmentB | SegmentC | SegmentD | SegmentE | SegmentF, nil
	case 'p', 'P':
		return SegmentA | SegmentB | SegmentE | SegmentF | SegmentG, nil
	case 'q', 'Q':
		return SegmentA | SegmentB | SegmentC | SegmentF | SegmentG, nil
	case 'r', 'R':
		return SegmentE | SegmentG, nil
	case 's', 'S':
		return SegmentA | SegmentC | SegmentD | SegmentF | SegmentG, nil
	case 't', 'T':
		return SegmentD | SegmentE | SegmentF | SegmentG, nil
	case 'u':
		return SegmentC | SegmentD | SegmentE, nil
	case 'U':
		return SegmentB | SegmentC | SegmentD | SegmentE | SegmentF, nil
	case 'y', 'Y':
		return SegmentB | SegmentC | SegmentD | SegmentF | SegmentG, nil
	case '_':
		return SegmentD, nil
	case '-':
		return SegmentG, nil
	case '=':
		return SegmentD | SegmentG, nil
	case '°':
		return SegmentA | SegmentB | SegmentF | SegmentG, nil
	case '"':
		return SegmentB | SegmentF, nil
	case '\'':
		return SegmentF, nil
	case '(', '[':
		return SegmentA | SegmentD | SegmentE | SegmentF, nil
	case ')', ']':
		return SegmentA | SegmentB | SegmentC | SegmentD, nil
	case '?':
		return SegmentA | SegmentB | SegmentE | SegmentG, nil
	}

	if c >= privateUseBase && c <= privateUseLast {
		return Segments(c - privateUseBase), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedChar, c)
}
