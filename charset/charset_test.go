package charset

import (
	"bytes"
	"testing"
)

func TestLatin1ToUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"ascii passes through", []byte("hello"), []byte("hello")},
		{"high bytes expand", []byte{'c', 'a', 'f', 0xE9}, []byte("café")},
		{"all high", []byte{0xFF, 0x80}, []byte{0xC3, 0xBF, 0xC2, 0x80}},
		{"empty", nil, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Latin1ToUTF8(tt.in); !bytes.Equal(got, tt.want) {
				t.Errorf("Latin1ToUTF8(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLatin1ToUTF8Telnet(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{
			"escaped IAC becomes converted 0xFF",
			[]byte{'a', IAC, IAC, 'b'},
			[]byte{'a', 0xC3, 0xBF, 'b'},
		},
		{
			"negotiation triple raw",
			[]byte{IAC, WILL, 42, 0xE9},
			[]byte{IAC, WILL, 42, 0xC3, 0xA9},
		},
		{
			"subnegotiation raw to SE",
			[]byte{IAC, SB, 1, 0xF0 - 1, 2, SE, 0xE9},
			[]byte{IAC, SB, 1, 0xF0 - 1, 2, SE, 0xC3, 0xA9},
		},
		{
			"nop raw",
			[]byte{IAC, NOP, 'x'},
			[]byte{IAC, NOP, 'x'},
		},
		{
			"invalid sequence dropped",
			[]byte{'a', IAC, 77, 'b'},
			[]byte{'a', 'b'},
		},
		{
			"trailing IAC dropped",
			[]byte{'a', IAC},
			[]byte{'a'},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Latin1ToUTF8Telnet(tt.in); !bytes.Equal(got, tt.want) {
				t.Errorf("Latin1ToUTF8Telnet(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUTF8ToLatin1(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "hello", "hello"},
		{"latin1 range decodes", "café", "caf\xe9"},
		{"two byte above latin1", "aĉb", "a?b"},
		{"three byte", "a€b", "a?b"},
		{"four byte", "a\U0001F600b", "a?b"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UTF8ToLatin1String(tt.in); got != tt.want {
				t.Errorf("UTF8ToLatin1String(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Latin-1 -> UTF-8 -> Latin-1 is the identity.
	in := make([]byte, 0, 255)
	for c := 1; c < 256; c++ {
		in = append(in, byte(c))
	}
	got := UTF8ToLatin1(Latin1ToUTF8(in))
	if !bytes.Equal(got, in) {
		t.Errorf("round trip lost bytes: got %d bytes, want %d", len(got), len(in))
	}
}

func TestValidUTF8(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"plain ascii", true},
		{"café", true},
		{"a€b", true},
		{"a\U0001F600b", true},
		{"\xC3", false},
		{"\xC3\xC3", false},
		{"\x80abc", false},
		{"ab\xE2\x82", false},
		{"\xFE", false},
		{"ok\x00\xC3", true},
		{"\xC3\x00", false},
	}
	for _, tt := range tests {
		if got := ValidUTF8(tt.in); got != tt.want {
			t.Errorf("ValidUTF8(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func BenchmarkLatin1ToUTF8(b *testing.B) {
	in := bytes.Repeat([]byte{'a', 0xE9, 'b', 0xFC}, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Latin1ToUTF8(in)
	}
}
