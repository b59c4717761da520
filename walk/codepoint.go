package walk

import "unicode/utf8"

// Codepoint is one decoded rune with its position in the source string.
type Codepoint struct {
	R      rune
	Offset int
	Len    int
}

// ForEachCodepoint calls fn for each codepoint of s in order, stopping at
// the first NUL byte. fn returning false stops the walk. It reports
// whether the walk ran to completion.
func ForEachCodepoint(s string, fn func(Codepoint) bool) bool {
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == 0 {
			break
		}
		if !fn(Codepoint{R: r, Offset: i, Len: n}) {
			return false
		}
		i += n
	}
	return true
}

// CodepointCount returns the number of codepoints before the first NUL.
func CodepointCount(s string) int {
	n := 0
	ForEachCodepoint(s, func(Codepoint) bool {
		n++
		return true
	})
	return n
}

// CodepointPrefixLen returns the number of bytes occupied by the first n
// codepoints of s. Shorter strings yield their full byte length.
func CodepointPrefixLen(s string, n int) int {
	end := 0
	ForEachCodepoint(s, func(cp Codepoint) bool {
		if n <= 0 {
			return false
		}
		n--
		end = cp.Offset + cp.Len
		return true
	})
	return end
}

// FirstCodepoint returns the first codepoint of s with its length. The
// zero Codepoint is returned when s is empty or starts with NUL.
func FirstCodepoint(s string) Codepoint {
	if len(s) == 0 || s[0] == 0 {
		return Codepoint{}
	}
	r, n := utf8.DecodeRuneInString(s)
	return Codepoint{R: r, Len: n}
}

// CodepointLen returns the encoded length in bytes of the first codepoint
// of s, or 0 when s is empty or starts with NUL.
func CodepointLen(s string) int {
	if len(s) == 0 || s[0] == 0 {
		return 0
	}
	_, n := utf8.DecodeRuneInString(s)
	return n
}

// NextCodepoint returns off advanced past one codepoint. At or past the
// end of s it returns len(s).
func NextCodepoint(s string, off int) int {
	if off >= len(s) {
		return len(s)
	}
	_, n := utf8.DecodeRuneInString(s[off:])
	return off + n
}

// PrevCodepoint returns off moved back one codepoint, or 0 at the start.
func PrevCodepoint(s string, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(s) {
		off = len(s)
	}
	_, n := utf8.DecodeLastRuneInString(s[:off])
	return off - n
}
