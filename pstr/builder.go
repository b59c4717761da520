package pstr

import (
	"fmt"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/Ilgrim/pennmush/buffer"
	"github.com/Ilgrim/pennmush/errors"
	"github.com/Ilgrim/pennmush/walk"
)

var (
	limit     = buffer.LongLen
	limitOnce sync.Once
)

// SetLimit sets the process-wide ceiling on builder length. Only the
// first call with a positive value takes effect; the default is
// buffer.LongLen.
func SetLimit(n int) {
	if n <= 0 {
		return
	}
	limitOnce.Do(func() {
		limit = n
	})
}

// Limit returns the current builder ceiling.
func Limit() int { return limit }

// Builder accumulates a string up to the process-wide limit. The zero
// value is ready to use. Builders are not safe for concurrent use.
type Builder struct {
	buf []byte
	err error
}

// New returns an empty builder.
func New() *Builder { return &Builder{} }

// NewString returns a builder seeded with s.
func NewString(s string) *Builder {
	b := &Builder{}
	b.AppendString(s)
	return b
}

// append is the single growth point. An append that would pass the
// limit is dropped whole and latches the error.
func (b *Builder) append(p []byte) {
	if b.err != nil {
		return
	}
	if len(b.buf)+len(p) > limit {
		b.err = errors.TooBig(errors.PhaseBuild, limit)
		return
	}
	b.buf = append(b.buf, p...)
}

// AppendString appends s.
func (b *Builder) AppendString(s string) {
	if b.err != nil {
		return
	}
	if len(b.buf)+len(s) > limit {
		b.err = errors.TooBig(errors.PhaseBuild, limit)
		return
	}
	b.buf = append(b.buf, s...)
}

// AppendByte appends one byte.
func (b *Builder) AppendByte(c byte) {
	b.append([]byte{c})
}

// AppendRune appends the UTF-8 encoding of r.
func (b *Builder) AppendRune(r rune) {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	b.append(enc[:n])
}

// AppendFill appends n copies of c.
func (b *Builder) AppendFill(c byte, n int) {
	if b.err != nil || n < 1 {
		return
	}
	if len(b.buf)+n > limit {
		b.err = errors.TooBig(errors.PhaseBuild, limit)
		return
	}
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, c)
	}
}

// AppendInt appends v in decimal.
func (b *Builder) AppendInt(v int64) {
	var tmp [20]byte
	b.append(strconv.AppendInt(tmp[:0], v, 10))
}

// AppendUint appends v in decimal.
func (b *Builder) AppendUint(v uint64) {
	var tmp [20]byte
	b.append(strconv.AppendUint(tmp[:0], v, 10))
}

// AppendObjectID appends an object reference, '#' followed by the
// decimal id.
func (b *Builder) AppendObjectID(id int64) {
	var tmp [21]byte
	b.append(strconv.AppendInt(append(tmp[:0], '#'), id, 10))
}

// AppendQuoted appends s, wrapped in double quotes when it contains a
// space.
func (b *Builder) AppendQuoted(s string) {
	quote := false
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			quote = true
			break
		}
	}
	if quote {
		b.AppendByte('"')
	}
	b.AppendString(s)
	if quote {
		b.AppendByte('"')
	}
}

// Appendf formats per fmt.Sprintf and appends the result.
func (b *Builder) Appendf(format string, args ...any) {
	if b.err != nil {
		return
	}
	b.AppendString(fmt.Sprintf(format, args...))
}

// AppendCodepoints appends the first n codepoints of s.
func (b *Builder) AppendCodepoints(s string, n int) {
	b.AppendString(s[:walk.CodepointPrefixLen(s, n)])
}

// AppendGraphemes appends the first n grapheme clusters of s.
func (b *Builder) AppendGraphemes(s string, n int) {
	b.AppendString(s[:walk.GraphemePrefixLen(s, n)])
}

// AppendItem appends the separator that belongs before item number cur
// of a list rendered in prose, mirroring buffer.Buffer.AppendItem.
func (b *Builder) AppendItem(cur int, done bool, delim, conjoin, space string) {
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

// AppendTo copies the accumulated bytes into dst and returns the
// residual from the buffer append.
func (b *Builder) AppendTo(dst *buffer.Buffer) int {
	return dst.Append(b.buf)
}

// Len returns the accumulated length in bytes.
func (b *Builder) Len() int { return len(b.buf) }

// Err returns the latched error, nil while everything has fit.
func (b *Builder) Err() error { return b.err }

// String returns a copy of the accumulated bytes, even after an error.
func (b *Builder) String() string { return string(b.buf) }

// Finish returns the accumulated string and the latched error.
func (b *Builder) Finish() (string, error) {
	return string(b.buf), b.err
}

// Reset empties the builder and clears any latched error. Capacity is
// retained.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
	b.err = nil
}
