package casemap

// Byte-fold comparison helpers for Latin-1 command matching. Folding is
// the lowercase table, so accented letters compare caselessly too.

// EqualFold reports whether a and b match byte for byte after Latin-1
// folding.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerTable[a[i]] != lowerTable[b[i]] {
			return false
		}
	}
	return true
}

// CompareFold orders a and b by their Latin-1 folded bytes.
func CompareFold(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		d := int(lowerTable[a[i]]) - int(lowerTable[b[i]])
		if d != 0 {
			return d
		}
	}
	return len(a) - len(b)
}

// HasPrefixFold reports whether s begins with prefix under Latin-1
// folding. The empty prefix matches everything.
func HasPrefixFold(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lowerTable[s[i]] != lowerTable[prefix[i]] {
			return false
		}
	}
	return true
}

// HasPrefixFoldStrict is HasPrefixFold except that the empty prefix
// matches nothing.
func HasPrefixFoldStrict(s, prefix string) bool {
	return prefix != "" && HasPrefixFold(s, prefix)
}

func isAlnumByte(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// IndexWordPrefix returns the offset of the first word in src beginning
// with sub under Latin-1 folding, or -1. Word starts follow runs of
// non-alphanumeric bytes.
func IndexWordPrefix(src, sub string) int {
	if sub == "" {
		return -1
	}
	i := 0
	for i < len(src) {
		if HasPrefixFold(src[i:], sub) {
			return i
		}
		for i < len(src) && isAlnumByte(src[i]) {
			i++
		}
		for i < len(src) && !isAlnumByte(src[i]) {
			i++
		}
	}
	return -1
}
