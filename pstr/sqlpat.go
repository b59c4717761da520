package pstr

import "unicode/utf8"

// GlobToLike rewrites a glob pattern as a SQL LIKE pattern using esc as
// the LIKE escape character: '*' becomes '%', '?' becomes '_', literal
// '%', '_' and esc are escaped, and a backslash protects the following
// codepoint. A trailing backslash is dropped.
func GlobToLike(pat string, esc rune) string {
	b := Get()
	defer Put(b)
	for i := 0; i < len(pat); {
		r, n := utf8.DecodeRuneInString(pat[i:])
		if r == 0 {
			break
		}
		i += n
		switch {
		case r == '%' || r == '_' || r == esc:
			b.AppendRune(esc)
			b.AppendRune(r)
		case r == '\\':
			if i < len(pat) {
				r2, n2 := utf8.DecodeRuneInString(pat[i:])
				if r2 == 0 {
					break
				}
				i += n2
				b.AppendRune(esc)
				b.AppendRune(r2)
			}
		case r == '*':
			b.AppendByte('%')
		case r == '?':
			b.AppendByte('_')
		default:
			b.AppendRune(r)
		}
	}
	return b.String()
}

// EscapeLike escapes a literal string for use inside a SQL LIKE
// pattern, protecting '%', '_' and esc with esc.
func EscapeLike(lit string, esc rune) string {
	b := Get()
	defer Put(b)
	for _, r := range lit {
		if r == 0 {
			break
		}
		if r == '%' || r == '_' || r == esc {
			b.AppendRune(esc)
		}
		b.AppendRune(r)
	}
	return b.String()
}
