package walk

import "github.com/rivo/uniseg"

// Grapheme is one extended grapheme cluster with its position in the
// source string. Cluster aliases the source; no copy is made.
type Grapheme struct {
	Cluster string
	Offset  int
	Len     int
}

// ForEachGrapheme calls fn for each grapheme cluster of s in order,
// stopping at the first NUL byte. fn returning false stops the walk. It
// reports whether the walk ran to completion.
func ForEachGrapheme(s string, fn func(Grapheme) bool) bool {
	state := -1
	var cl string
	for off := 0; len(s) > 0; {
		cl, s, _, state = uniseg.StepString(s, state)
		if cl[0] == 0 {
			break
		}
		if !fn(Grapheme{Cluster: cl, Offset: off, Len: len(cl)}) {
			return false
		}
		off += len(cl)
	}
	return true
}

// GraphemeCount returns the number of grapheme clusters before the first
// NUL.
func GraphemeCount(s string) int {
	n := 0
	ForEachGrapheme(s, func(Grapheme) bool {
		n++
		return true
	})
	return n
}

// GraphemePrefixLen returns the number of bytes occupied by the first n
// grapheme clusters of s. Shorter strings yield their full byte length.
func GraphemePrefixLen(s string, n int) int {
	end := 0
	ForEachGrapheme(s, func(g Grapheme) bool {
		if n <= 0 {
			return false
		}
		n--
		end = g.Offset + g.Len
		return true
	})
	return end
}

// GraphemeLen returns the length in bytes of the first grapheme cluster
// of s, or 0 when s is empty or starts with NUL.
func GraphemeLen(s string) int {
	if len(s) == 0 || s[0] == 0 {
		return 0
	}
	cl, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return len(cl)
}

// GraphemeBreaks returns the byte offset of the start of each grapheme
// cluster before the first NUL. The slice length equals GraphemeCount(s).
func GraphemeBreaks(s string) []int {
	var breaks []int
	ForEachGrapheme(s, func(g Grapheme) bool {
		breaks = append(breaks, g.Offset)
		return true
	})
	return breaks
}
