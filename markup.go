package pennmush

// In-band sentinel bytes embedded in rendered server text. Scanning treats
// the delimited spans as opaque, uninterruptible units; nothing in this
// module interprets their contents.
const (
	// TagStart and TagEnd delimit an internal markup tag span.
	TagStart = 0x02
	TagEnd   = 0x03

	// Esc begins an ANSI escape span, which runs through the SGR
	// terminator EscEnd ('m').
	Esc    = 0x1B
	EscEnd = 'm'
)

// StartsSpan reports whether the byte at offset i opens a control span.
func StartsSpan(s string, i int) bool {
	return s[i] == TagStart || s[i] == Esc
}

// SpanEnd returns the offset just past the control span beginning at i.
// A span missing its terminator runs to the end of the string. The byte at
// i must be TagStart or Esc.
func SpanEnd(s string, i int) int {
	var term byte
	switch s[i] {
	case TagStart:
		term = TagEnd
	case Esc:
		term = EscEnd
	default:
		return i + 1
	}
	for i++; i < len(s); i++ {
		if s[i] == term {
			return i + 1
		}
	}
	return len(s)
}

// VisibleLen returns the number of bytes of s that lie outside control
// spans, stopping at the first NUL byte. For single-byte text this is the
// number of characters a reader actually sees.
func VisibleLen(s string) int {
	n := 0
	for i := 0; i < len(s); {
		if s[i] == 0 {
			break
		}
		if StartsSpan(s, i) {
			i = SpanEnd(s, i)
			continue
		}
		n++
		i++
	}
	return n
}
