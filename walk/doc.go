// Package walk provides lazy iteration over UTF-8 text at two
// granularities: codepoints and grapheme clusters.
//
// All functions treat a NUL byte as end of input, matching the wire
// format the server speaks, and assume well-formed UTF-8. Grapheme
// segmentation follows UAX #29 extended grapheme clusters via
// github.com/rivo/uniseg.
//
// For any string the three lengths nest: grapheme count <= codepoint
// count <= byte count, with all three equal for plain ASCII.
package walk
