// Package casemap implements case conversion at the three fidelity levels
// the server needs.
//
// The Latin-1 functions use 256-entry lookup tables and only apply a
// mapping when the result also fits in Latin-1, so 'ß', 'ÿ' and 'µ' are
// left alone rather than escaping the charset.
//
// The in-place UTF-8 functions convert a byte slice without reallocating
// and therefore skip any codepoint whose converted form has a different
// encoded length.
//
// The allocating functions perform full Unicode case conversion through
// golang.org/x/text/cases, including one-to-many mappings such as
// 'ß' to "SS".
//
// Collation-based ordering lives in Collator; the package-level Compare
// uses a shared root-locale instance.
package casemap
