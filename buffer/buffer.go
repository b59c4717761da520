package buffer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	pennmush "github.com/Ilgrim/pennmush"
)

// Standard buffer capacities.
const (
	// LongLen is the capacity of the main command and output buffer.
	LongLen = 8192

	// ShortLen is the capacity of the small buffer used for names and
	// other short fragments.
	ShortLen = 128
)

// Buffer is a fixed-capacity byte accumulator. The zero value is not
// usable; create one with New, NewLong or NewShort.
type Buffer struct {
	data []byte
	pos  int
}

// New returns a buffer with the given capacity. One byte of the capacity
// is reserved, so at most capacity-1 bytes of content fit. Capacities
// below 2 are rounded up to 2.
func New(capacity int) *Buffer {
	if capacity < 2 {
		capacity = 2
	}
	return &Buffer{data: make([]byte, capacity)}
}

// NewLong returns a buffer with capacity LongLen.
func NewLong() *Buffer { return New(LongLen) }

// NewShort returns a buffer with capacity ShortLen.
func NewShort() *Buffer { return New(ShortLen) }

// limit is the index one past the last writable byte.
func (b *Buffer) limit() int { return len(b.data) - 1 }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return b.pos }

// Cap returns the total capacity, including the reserved byte.
func (b *Buffer) Cap() int { return len(b.data) }

// Room returns the number of content bytes that still fit.
func (b *Buffer) Room() int {
	r := b.limit() - b.pos
	if r < 0 {
		return 0
	}
	return r
}

// Reset discards the contents. The backing array is retained.
func (b *Buffer) Reset() { b.pos = 0 }

// Truncate shortens the contents to n bytes. It is a no-op when n is
// negative or not smaller than the current length.
func (b *Buffer) Truncate(n int) {
	if n >= 0 && n < b.pos {
		b.pos = n
	}
}

// String returns a copy of the contents.
func (b *Buffer) String() string { return string(b.data[:b.pos]) }

// Bytes returns the contents. The slice aliases the buffer and is only
// valid until the next append or Reset.
func (b *Buffer) Bytes() []byte { return b.data[:b.pos] }

// AppendByte appends a single byte. It returns 0 on success and 1,
// without writing anything, when the buffer is full.
func (b *Buffer) AppendByte(c byte) int {
	if b.pos >= b.limit() {
		return 1
	}
	b.data[b.pos] = c
	b.pos++
	return 0
}

// AppendRune appends the UTF-8 encoding of r atomically: either all of
// its bytes are written and 0 is returned, or none are and 1 is returned.
func (b *Buffer) AppendRune(r rune) int {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	if b.Room() < n {
		return 1
	}
	copy(b.data[b.pos:], enc[:n])
	b.pos += n
	return 0
}

// Append appends p, writing as much as fits. The residual is the number
// of bytes of p that were not written.
func (b *Buffer) Append(p []byte) int {
	switch len(p) {
	case 0:
		return 0
	case 1:
		return b.AppendByte(p[0])
	}
	if b.pos > b.limit() {
		return len(p)
	}
	n := copy(b.data[b.pos:b.limit()], p)
	b.pos += n
	return len(p) - n
}

// AppendString appends s, writing as much as fits. The residual is the
// number of bytes of s that were not written.
func (b *Buffer) AppendString(s string) int {
	switch len(s) {
	case 0:
		return 0
	case 1:
		return b.AppendByte(s[0])
	}
	if b.pos > b.limit() {
		return len(s)
	}
	n := copy(b.data[b.pos:b.limit()], s)
	b.pos += n
	return len(s) - n
}

// AppendStringN appends at most n bytes of s, writing as much as fits.
func (b *Buffer) AppendStringN(s string, n int) int {
	if n > len(s) {
		n = len(s)
	}
	if n <= 0 {
		return 0
	}
	return b.AppendString(s[:n])
}

// AppendFill appends n copies of c, writing as many as fit. The residual
// is the number of copies that were not written.
func (b *Buffer) AppendFill(c byte, n int) int {
	if n < 1 {
		return 0
	}
	if n == 1 {
		return b.AppendByte(c)
	}
	w := n
	if room := b.Room(); w > room {
		w = room
	}
	for i := 0; i < w; i++ {
		b.data[b.pos+i] = c
	}
	b.pos += w
	return n - w
}

// FillToVisible pads with c until the visible length of the contents,
// measured outside markup and ANSI spans, reaches n. Contents already at
// or past n bytes of visible text are left alone.
func (b *Buffer) FillToVisible(c byte, n int) int {
	if n >= len(b.data) {
		n = b.limit()
	}
	curr := pennmush.VisibleLen(string(b.data[:b.pos]))
	if curr >= n {
		return 0
	}
	return b.AppendFill(c, n-curr)
}

// AppendQuoted appends s, wrapping it in double quotes when it contains a
// space. The quoted form is all-or-nothing: on overflow the buffer is
// restored and 1 is returned.
func (b *Buffer) AppendQuoted(s string) int {
	if strings.IndexByte(s, ' ') < 0 {
		return b.AppendString(s)
	}
	saved := b.pos
	if b.AppendByte('"') != 0 || b.AppendString(s) != 0 || b.AppendByte('"') != 0 {
		b.pos = saved
		return 1
	}
	return 0
}

// AppendBool appends '1' for true and '0' for false.
func (b *Buffer) AppendBool(v bool) int {
	if v {
		return b.AppendByte('1')
	}
	return b.AppendByte('0')
}

const hexDigits = "0123456789abcdef"

// AppendHexByte appends the two lowercase hex digits of c.
func (b *Buffer) AppendHexByte(c byte) int {
	if b.AppendByte(hexDigits[c>>4]) != 0 {
		return 1
	}
	return b.AppendByte(hexDigits[c&0x0F])
}

// AppendHex appends the lowercase hex encoding of p.
func (b *Buffer) AppendHex(p []byte) int {
	for _, c := range p {
		if b.AppendHexByte(c) != 0 {
			return 1
		}
	}
	return 0
}

// AppendObjectID appends an object reference, '#' followed by the decimal
// id. On overflow the buffer is restored and 1 is returned.
func (b *Buffer) AppendObjectID(id int64) int {
	saved := b.pos
	if b.AppendByte('#') != 0 || b.AppendInt(id, 10) != 0 {
		b.pos = saved
		return 1
	}
	return 0
}

// AppendItem appends the separator that belongs before item number cur of
// a list being rendered in prose. The first item gets nothing, middle items
// get delim plus space, and the final item (done true) gets conjoin, for
// output like "a, b, and c".
func (b *Buffer) AppendItem(cur int, done bool, delim, conjoin, space string) {
	if cur == 1 {
		return
	}
	if done {
		if cur >= 3 {
			b.AppendString(delim)
		}
		b.AppendString(space)
		b.AppendString(conjoin)
	} else {
		b.AppendString(delim)
	}
	b.AppendString(space)
}

// Appendf formats per fmt.Sprintf and appends the result.
func (b *Buffer) Appendf(format string, args ...any) int {
	return b.AppendString(fmt.Sprintf(format, args...))
}
