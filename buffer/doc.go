// Package buffer implements fixed-capacity append buffers with explicit
// truncation reporting.
//
// A Buffer never grows. The final byte of its backing array is reserved, so
// a buffer of capacity N accepts at most N-1 bytes of content. Every append
// returns a residual count: zero when the whole input was written, otherwise
// the number of input units that did not fit. Appends past the limit leave
// the buffer untouched.
//
// # Sizes
//
// Two conventional capacities cover almost all callers. NewLong creates the
// standard 8 KiB command and output buffer; NewShort creates the 128-byte
// buffer used for names and other small fragments. New accepts any capacity
// for the rare odd-sized case.
//
// # Atomicity
//
// Single-unit appends (AppendByte, AppendRune) and the structured appends
// AppendQuoted and AppendObjectID are all-or-nothing. Sequence appends
// (Append, AppendString, AppendFill) write as much as fits and report the
// shortfall.
package buffer
