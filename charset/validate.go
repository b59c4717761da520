package charset

// ValidUTF8 reports whether s is well-formed UTF-8 up to the first NUL
// byte. It checks structure only: lead bytes followed by the right
// number of continuation bytes. Overlong encodings and surrogate values
// are not rejected.
func ValidUTF8(s string) bool {
	conts := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 0:
			return conts == 0
		case c < 0x80:
			if conts != 0 {
				return false
			}
		case c&0xC0 == 0x80:
			if conts == 0 {
				return false
			}
			conts--
		case c&0xE0 == 0xC0:
			if conts != 0 {
				return false
			}
			conts = 1
		case c&0xF0 == 0xE0:
			if conts != 0 {
				return false
			}
			conts = 2
		case c&0xF8 == 0xF0:
			if conts != 0 {
				return false
			}
			conts = 3
		default:
			return false
		}
	}
	return conts == 0
}

// ValidUTF8Bytes is ValidUTF8 for byte slices.
func ValidUTF8Bytes(b []byte) bool {
	return ValidUTF8(string(b))
}
