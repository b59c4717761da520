// Package charset converts between Latin-1 and UTF-8 at the connection
// boundary.
//
// The telnet-aware converter understands just enough of the telnet
// protocol to keep negotiation sequences intact while the surrounding
// text is recoded: IAC IAC collapses to one converted 0xFF, option
// negotiation triples and subnegotiation blocks pass through untouched.
// Malformed sequences are logged and skipped rather than corrupting the
// stream.
//
// Conversion to Latin-1 is lossy. Any codepoint above U+00FF becomes
// '?', so output length in characters is preserved and a client on a
// legacy charset still sees something sensible.
package charset
