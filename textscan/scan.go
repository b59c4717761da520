package textscan

import (
	"strings"
	"unicode/utf8"

	pennmush "github.com/Ilgrim/pennmush"
)

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// SkipSpace returns s with leading whitespace removed.
func SkipSpace(s string) string {
	i := 0
	for i < len(s) && isSpaceByte(s[i]) {
		i++
	}
	return s[i:]
}

// TrimSpaceSep trims leading and trailing spaces when sep is a space;
// any other separator returns s unchanged. Only ' ' is trimmed, not
// other whitespace.
func TrimSpaceSep(s string, sep byte) string {
	if sep != ' ' {
		return s
	}
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	j := len(s)
	for j > i && s[j-1] == ' ' {
		j--
	}
	return s[i:j]
}

// TrimTrailingSpace returns s with trailing whitespace removed.
func TrimTrailingSpace(s string) string {
	j := len(s)
	for j > 0 && isSpaceByte(s[j-1]) {
		j--
	}
	return s[:j]
}

// SeekByte returns the offset of the first occurrence of c in s, or
// len(s) when absent.
func SeekByte(s string, c byte) int {
	if i := strings.IndexByte(s, c); i >= 0 {
		return i
	}
	return len(s)
}

// SeekRune returns the byte offset of the first occurrence of the
// codepoint c, stopping at the first NUL. Absent codepoints yield the
// stopping offset.
func SeekRune(s string, c rune) int {
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == 0 || r == c {
			return i
		}
		i += n
	}
	return len(s)
}

// CutAt returns the prefix of s before the first occurrence of c, or all
// of s when c is absent.
func CutAt(s string, c byte) string {
	return s[:SeekByte(s, c)]
}

// IndexUnescaped returns the offset of the first c in s that is not
// preceded by a backslash escape, or -1. A backslash protects exactly
// the byte after it.
func IndexUnescaped(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
	}
	return -1
}

// VisibleLen returns the number of bytes of s outside control spans.
func VisibleLen(s string) int {
	return pennmush.VisibleLen(s)
}
