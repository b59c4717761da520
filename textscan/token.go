package textscan

import (
	"unicode/utf8"

	pennmush "github.com/Ilgrim/pennmush"
)

// nextPos returns the scan position following offset i, consuming an
// entire control span when one starts there.
func nextPos(s string, i int) int {
	if pennmush.StartsSpan(s, i) {
		return pennmush.SpanEnd(s, i)
	}
	return i + 1
}

// NextToken returns the remainder of s after the first sep, skipping any
// separators inside control spans. When sep is a space, the run of spaces
// after the boundary is collapsed. ok is false when no separator remains
// before the end of s or a NUL byte.
func NextToken(s string, sep byte) (rest string, ok bool) {
	i := 0
	for i < len(s) {
		if s[i] == 0 {
			return "", false
		}
		if s[i] == sep {
			i++
			if sep == ' ' {
				for i < len(s) && s[i] == ' ' {
					i++
				}
			}
			return s[i:], true
		}
		i = nextPos(s, i)
	}
	return "", false
}

// NextTokenRune is NextToken with a rune separator. Separator comparison
// decodes codepoints; span handling is unchanged.
func NextTokenRune(s string, sep rune) (rest string, ok bool) {
	i := 0
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == 0 {
			return "", false
		}
		if r == sep {
			i += n
			if sep == ' ' {
				for i < len(s) && s[i] == ' ' {
					i++
				}
			}
			return s[i:], true
		}
		if pennmush.StartsSpan(s, i) {
			i = pennmush.SpanEnd(s, i)
		} else {
			i += n
		}
	}
	return "", false
}

// SplitToken splits s at the first sep outside any control span. token is
// everything before the separator, rest everything after it, with a run
// of spaces collapsed when sep is a space. more is false when no
// separator was found; then token is all of s and rest is empty.
func SplitToken(s string, sep byte) (token, rest string, more bool) {
	i := 0
	for i < len(s) {
		if s[i] == 0 {
			return s[:i], "", false
		}
		if s[i] == sep {
			token = s[:i]
			i++
			if sep == ' ' {
				for i < len(s) && s[i] == ' ' {
					i++
				}
			}
			return token, s[i:], true
		}
		i = nextPos(s, i)
	}
	return s, "", false
}

// SplitTokenRune is SplitToken with a rune separator.
func SplitTokenRune(s string, sep rune) (token, rest string, more bool) {
	i := 0
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == 0 {
			return s[:i], "", false
		}
		if r == sep {
			token = s[:i]
			i += n
			if sep == ' ' {
				for i < len(s) && s[i] == ' ' {
					i++
				}
			}
			return token, s[i:], true
		}
		if pennmush.StartsSpan(s, i) {
			i = pennmush.SpanEnd(s, i)
		} else {
			i += n
		}
	}
	return s, "", false
}

// CountTokens returns the number of sep-delimited tokens in s, honoring
// the same span and space-collapsing rules as NextToken. The empty string
// has zero tokens; any other string has one more token than separators.
func CountTokens(s string, sep byte) int {
	if len(s) == 0 || s[0] == 0 {
		return 0
	}
	n := 1
	rest, ok := NextToken(s, sep)
	for ok {
		n++
		rest, ok = NextToken(rest, sep)
	}
	return n
}

// CountTokensRune is CountTokens with a rune separator.
func CountTokensRune(s string, sep rune) int {
	if len(s) == 0 || s[0] == 0 {
		return 0
	}
	n := 1
	rest, ok := NextTokenRune(s, sep)
	for ok {
		n++
		rest, ok = NextTokenRune(rest, sep)
	}
	return n
}
