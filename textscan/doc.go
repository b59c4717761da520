// Package textscan tokenizes delimited server text without disturbing
// in-band markup.
//
// Scanning never splits a control span: a markup tag (0x02...0x03) or an
// ANSI escape (0x1B...'m') is skipped as one unit, so a separator byte
// inside a span never ends a token. A span missing its terminator simply
// runs to the end of the string.
//
// When the separator is a space, runs of spaces collapse into a single
// boundary; any other separator keeps empty fields. Tokens are returned
// as subslices of the input; nothing is copied or modified.
package textscan
