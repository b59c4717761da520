package textscan

import (
	"strings"

	"github.com/Ilgrim/pennmush/buffer"
)

// RemoveWord returns list with the first exact occurrence of word
// removed, along with the separator that joined it. The result is
// bounded at the long buffer size.
func RemoveWord(list, word string, sep byte) string {
	out := buffer.NewLong()
	tok, rest, more := SplitToken(list, sep)
	if tok == word {
		if more {
			tok, rest, more = SplitToken(rest, sep)
			out.AppendString(tok)
		}
	} else {
		out.AppendString(tok)
		for more {
			tok, rest, more = SplitToken(rest, sep)
			if tok == word {
				break
			}
			out.AppendByte(sep)
			out.AppendString(tok)
		}
	}
	for more {
		tok, rest, more = SplitToken(rest, sep)
		out.AppendByte(sep)
		out.AppendString(tok)
	}
	return out.String()
}

// NextInList pops the first name from a space-separated list. A name
// beginning with a double quote extends to the closing quote and may
// contain spaces; the quotes are not part of the name. rest starts at
// the byte after the name or its closing quote.
func NextInList(s string) (name, rest string) {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	quoted := false
	if i < len(s) && s[i] == '"' {
		quoted = true
		i++
	}
	start := i
	for i < len(s) && s[i] != '"' && (quoted || s[i] != ' ') {
		i++
	}
	name = s[start:i]
	if quoted && i < len(s) {
		i++
	}
	return name, s[i:]
}

// StandardTokens are the two placeholder pairs replaced together in
// switch and listen patterns.
var StandardTokens = [2]string{"##", "#@"}

// ReplaceAll returns s with every occurrence of old replaced by new.
// The result is bounded at the long buffer size; an empty old returns s
// unchanged.
func ReplaceAll(s, old, new string) string {
	if old == "" {
		return s
	}
	out := buffer.NewLong()
	for len(s) > 0 {
		j := strings.Index(s, old)
		if j < 0 {
			out.AppendString(s)
			break
		}
		out.AppendString(s[:j])
		out.AppendString(new)
		s = s[j+len(old):]
	}
	return out.String()
}

// ReplaceAll2 replaces two patterns in one pass, so neither replacement
// text is rescanned for the other pattern. Where both patterns match at
// the same offset the first wins. Empty patterns return s unchanged.
func ReplaceAll2(s string, old, new [2]string) string {
	if old[0] == "" || old[1] == "" {
		return s
	}
	out := buffer.NewLong()
	for len(s) > 0 {
		skip := 0
		for skip < len(s) && s[skip] != old[0][0] && s[skip] != old[1][0] {
			skip++
		}
		if skip > 0 {
			out.AppendString(s[:skip])
			s = s[skip:]
			continue
		}
		switch {
		case strings.HasPrefix(s, old[0]):
			out.AppendString(new[0])
			s = s[len(old[0]):]
		case strings.HasPrefix(s, old[1]):
			out.AppendString(new[1])
			s = s[len(old[1]):]
		default:
			out.AppendByte(s[0])
			s = s[1:]
		}
	}
	return out.String()
}
