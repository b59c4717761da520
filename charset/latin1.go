package charset

import "go.uber.org/zap"

// Telnet protocol bytes recognized during conversion.
const (
	SE   = 240
	NOP  = 241
	SB   = 250
	WILL = 251
	WONT = 252
	DO   = 253
	DONT = 254
	IAC  = 255
)

// Latin1ToUTF8 converts Latin-1 bytes to UTF-8. Every input byte maps to
// one or two output bytes.
func Latin1ToUTF8(src []byte) []byte {
	return latin1ToUTF8(src, false)
}

// Latin1ToUTF8Telnet converts Latin-1 bytes to UTF-8 while passing
// telnet negotiation sequences through unconverted. An escaped IAC IAC
// pair becomes the two-byte UTF-8 encoding of 0xFF. Malformed sequences
// are logged and dropped.
func Latin1ToUTF8Telnet(src []byte) []byte {
	return latin1ToUTF8(src, true)
}

func latin1ToUTF8(src []byte, telnet bool) []byte {
	// Upper bound: two output bytes per high-bit input byte.
	n := 0
	for _, c := range src {
		if c < 0x80 {
			n++
		} else {
			n += 2
		}
	}
	out := make([]byte, 0, n)
	for i := 0; i < len(src); i++ {
		c := src[i]
		if telnet && c == IAC {
			i++
			if i >= len(src) {
				Logger().Warn("truncated telnet sequence at end of input")
				break
			}
			switch src[i] {
			case IAC:
				out = append(out, 0xC0|IAC>>6, 0x80|IAC&0x3F)
			case SB:
				// subnegotiation passes through raw up to SE
				out = append(out, IAC)
				for i < len(src) && src[i] != SE {
					out = append(out, src[i])
					i++
				}
				out = append(out, SE)
			case WILL, WONT, DO, DONT:
				out = append(out, IAC, src[i])
				if i+1 < len(src) {
					i++
					out = append(out, src[i])
				}
			case NOP:
				out = append(out, IAC, NOP)
			default:
				Logger().Warn("invalid telnet sequence",
					zap.Uint8("byte", src[i]))
			}
			continue
		}
		if c < 0x80 {
			out = append(out, c)
		} else {
			out = append(out, 0xC0|c>>6, 0x80|c&0x3F)
		}
	}
	return out
}

// UTF8ToLatin1 converts UTF-8 bytes to Latin-1. Codepoints beyond
// U+00FF become '?', one per codepoint. Input is assumed well formed;
// stray continuation bytes are dropped.
func UTF8ToLatin1(src []byte) []byte {
	n := 0
	for _, c := range src {
		if c&0xC0 != 0x80 {
			n++
		}
	}
	out := make([]byte, 0, n)
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c < 0x80:
			out = append(out, c)
			i++
		case c&0xE0 == 0xC0:
			if c&0x1F <= 0x03 && i+1 < len(src) {
				out = append(out, (c&0x03)<<6|src[i+1]&0x3F)
			} else {
				out = append(out, '?')
			}
			i += 2
		case c&0xF0 == 0xE0:
			out = append(out, '?')
			i += 3
		case c&0xF8 == 0xF0:
			out = append(out, '?')
			i += 4
		default:
			i++
		}
	}
	return out
}

// UTF8ToLatin1String is UTF8ToLatin1 for strings.
func UTF8ToLatin1String(s string) string {
	return string(UTF8ToLatin1([]byte(s)))
}

// Latin1ToUTF8String is Latin1ToUTF8 for strings.
func Latin1ToUTF8String(s string) string {
	return string(Latin1ToUTF8([]byte(s)))
}
