package casemap

import "unicode"

// Byte-at-a-time case tables for Latin-1 text. A mapping is kept only
// when the mapped codepoint itself fits in a byte: ToUpper('ÿ') is 'Ÿ'
// (U+0178), so 'ÿ' maps to itself here.
var (
	upperTable [256]byte
	lowerTable [256]byte
)

func init() {
	for i := 0; i < 256; i++ {
		upperTable[i] = byte(i)
		lowerTable[i] = byte(i)
		r := rune(i)
		if u := unicode.ToUpper(r); u <= 0xFF {
			upperTable[i] = byte(u)
		}
		if l := unicode.ToLower(r); l <= 0xFF {
			lowerTable[i] = byte(l)
		}
	}
}

// UpperByte returns the Latin-1 uppercase form of c.
func UpperByte(c byte) byte { return upperTable[c] }

// LowerByte returns the Latin-1 lowercase form of c.
func LowerByte(c byte) byte { return lowerTable[c] }

// UpperLatin1InPlace uppercases b byte by byte.
func UpperLatin1InPlace(b []byte) {
	for i := range b {
		b[i] = upperTable[b[i]]
	}
}

// LowerLatin1InPlace lowercases b byte by byte.
func LowerLatin1InPlace(b []byte) {
	for i := range b {
		b[i] = lowerTable[b[i]]
	}
}

// UpperLatin1 returns s uppercased byte by byte.
func UpperLatin1(s string) string {
	b := []byte(s)
	UpperLatin1InPlace(b)
	return string(b)
}

// LowerLatin1 returns s lowercased byte by byte.
func LowerLatin1(s string) string {
	b := []byte(s)
	LowerLatin1InPlace(b)
	return string(b)
}

// UpperLatin1Into writes the uppercase form of s into dst, silently
// truncating when dst is too small. It returns the number of bytes
// written.
func UpperLatin1Into(dst []byte, s string) int {
	n := len(s)
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = upperTable[s[i]]
	}
	return n
}

// LowerLatin1Into writes the lowercase form of s into dst, silently
// truncating when dst is too small. It returns the number of bytes
// written.
func LowerLatin1Into(dst []byte, s string) int {
	n := len(s)
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = lowerTable[s[i]]
	}
	return n
}

// InitialLatin1 returns s with its first byte uppercased and the rest
// lowercased.
func InitialLatin1(s string) string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	b[0] = upperTable[b[0]]
	for i := 1; i < len(b); i++ {
		b[i] = lowerTable[b[i]]
	}
	return string(b)
}
