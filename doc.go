// Package pennmush provides the bounded text-accumulation and Unicode
// processing core of a text-oriented multiuser server.
//
// Every piece of server output is assembled through this module: command
// results, markup-rendered text, and separated lists all flow through
// fixed-capacity buffers with deterministic truncation reporting, and all
// of it must stay correct across UTF-8, user-perceived characters, and the
// Latin-1 wire encoding of the network protocol.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	pennmush/            Root package with the shared markup and escape sentinels
//	├── buffer/          Fixed-capacity buffers with residual-reporting appends
//	├── walk/            Codepoint and grapheme-cluster iteration over UTF-8
//	├── textscan/        Tokenizing that treats markup and ANSI spans as atomic
//	├── casemap/         Latin-1, in-place UTF-8, and full Unicode case mapping
//	├── charset/         Latin-1 <-> UTF-8 conversion with telnet pass-through
//	├── pstr/            Growable string builder with a process-wide length cap
//	├── errors/          Structured error types for the few genuinely fatal paths
//	└── cmd/textinfo/    Inspector CLI for poking at strings interactively
//
// # Quick Start
//
// Build a bounded string:
//
//	b := buffer.NewLong()
//	b.AppendString("score: ")
//	if left := b.AppendInt(total, 10); left != 0 {
//	    // truncated; left digits did not fit
//	}
//	out := b.String()
//
// Split a separated list the way the command parser does, skipping over
// color codes:
//
//	rest := input
//	for {
//	    tok, r, more := textscan.SplitToken(rest, ' ')
//	    handle(tok)
//	    if !more {
//	        break
//	    }
//	    rest = r
//	}
//
// # Truncation Model
//
// Append operations report a residual count instead of returning errors:
// zero means everything fit, any other value is exactly the number of input
// units that were dropped. Truncation is never fatal; callers that care log
// the residual and move on. Conversion functions never fail at all, mapping
// unrepresentable input to a deterministic placeholder.
//
// # Control Spans
//
// Scanning functions never interpret markup. A TagStart byte opens an
// opaque span that ends at TagEnd, an Esc byte opens one that ends at a
// literal 'm', and a separator inside either is not a token boundary. The
// rendering rules for those spans live elsewhere in the server.
//
// # Thread Safety
//
// Everything here is synchronous and CPU-bound. Buffers and builders are
// NOT thread-safe and belong to a single goroutine; the handful of
// process-wide pieces (the pstr length limit, casemap's collator, the
// charset logger) are initialized once and read-only afterwards.
package pennmush
