package casemap

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// mapInPlace rewrites each codepoint of b through f without moving any
// bytes. Codepoints whose mapped form has a different encoded length are
// left unchanged; the walk stops at the first NUL.
func mapInPlace(b []byte, f func(rune) rune) {
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == 0 {
			break
		}
		if m := f(r); m != r && utf8.RuneLen(m) == n {
			utf8.EncodeRune(b[i:i+n], m)
		}
		i += n
	}
}

// UpperInPlace uppercases UTF-8 text in b, skipping codepoints whose
// uppercase form would change the byte length ('ß' stays 'ß').
func UpperInPlace(b []byte) { mapInPlace(b, unicode.ToUpper) }

// LowerInPlace lowercases UTF-8 text in b under the same length
// constraint as UpperInPlace.
func LowerInPlace(b []byte) { mapInPlace(b, unicode.ToLower) }

// Upper returns s in full Unicode uppercase, including one-to-many
// mappings.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower returns s in full Unicode lowercase.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Title returns s in full Unicode title case.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// Initial returns s with its first codepoint title-cased and the rest
// lowercased.
func Initial(s string) string {
	if s == "" {
		return ""
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + Lower(s[n:])
}

// CompareCaseless orders a and b after full Unicode case folding.
func CompareCaseless(a, b string) int {
	fold := cases.Fold()
	fa, fb := fold.String(a), fold.String(b)
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	}
	return 0
}

// EqualCaseless reports whether a and b match after full Unicode case
// folding.
func EqualCaseless(a, b string) bool {
	return CompareCaseless(a, b) == 0
}
