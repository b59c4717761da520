// Package pstr provides a growable string builder with a process-wide
// length ceiling and sticky error reporting.
//
// Unlike the fixed buffers in package buffer, a Builder grows on demand
// but refuses to pass the configured limit. An append that would exceed
// the limit is dropped whole and latches an error; every later append
// is then ignored, so a chain of appends needs only one error check at
// the end:
//
//	b := pstr.Get()
//	defer pstr.Put(b)
//	b.AppendString(name)
//	b.AppendByte(' ')
//	b.AppendInt(score)
//	out, err := b.Finish()
//
// The limit applies to all builders and is fixed by the first SetLimit
// call; later calls have no effect.
package pstr
