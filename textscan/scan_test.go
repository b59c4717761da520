package textscan

import "testing"

func TestSkipSpace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"   abc", "abc"},
		{"\t\n abc", "abc"},
		{"abc", "abc"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SkipSpace(tt.input); got != tt.want {
			t.Errorf("SkipSpace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTrimSpaceSep(t *testing.T) {
	tests := []struct {
		input string
		sep   byte
		want  string
	}{
		{"  a b  ", ' ', "a b"},
		{"  a b  ", '|', "  a b  "},
		{"\ta\t", ' ', "\ta\t"},
		{"    ", ' ', ""},
	}
	for _, tt := range tests {
		if got := TrimSpaceSep(tt.input, tt.sep); got != tt.want {
			t.Errorf("TrimSpaceSep(%q, %q) = %q, want %q", tt.input, tt.sep, got, tt.want)
		}
	}
}

func TestTrimTrailingSpace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abc   ", "abc"},
		{"abc\t\n", "abc"},
		{"  abc", "  abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TrimTrailingSpace(tt.input); got != tt.want {
			t.Errorf("TrimTrailingSpace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSeek(t *testing.T) {
	if got := SeekByte("hello", 'l'); got != 2 {
		t.Errorf("SeekByte = %d, want 2", got)
	}
	if got := SeekByte("hello", 'z'); got != 5 {
		t.Errorf("SeekByte absent = %d, want 5", got)
	}
	if got := SeekRune("AAáq", 'á'); got != 2 {
		t.Errorf("SeekRune = %d, want 2", got)
	}
	if got := SeekRune("AAáq", 'z'); got != 5 {
		t.Errorf("SeekRune absent = %d, want 5", got)
	}
	if got := SeekRune("ab\x00á", 'á'); got != 2 {
		t.Errorf("SeekRune stops at NUL, got %d, want 2", got)
	}
}

func TestCutAt(t *testing.T) {
	if got := CutAt("key=value", '='); got != "key" {
		t.Errorf("CutAt = %q, want %q", got, "key")
	}
	if got := CutAt("plain", '='); got != "plain" {
		t.Errorf("CutAt absent = %q, want %q", got, "plain")
	}
}

func TestIndexUnescaped(t *testing.T) {
	tests := []struct {
		input string
		c     byte
		want  int
	}{
		{`$foo\:bar:there`, ':', 9},
		{`$foo\\:noescape`, ':', 6},
		{`plain:x`, ':', 5},
		{`none`, ':', -1},
		{`trailing\`, ':', -1},
	}
	for _, tt := range tests {
		if got := IndexUnescaped(tt.input, tt.c); got != tt.want {
			t.Errorf("IndexUnescaped(%q, %q) = %d, want %d", tt.input, tt.c, got, tt.want)
		}
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"abc", 3},
		{"\x1b[31mabc\x1b[0m", 3},
		{"\x02tag\x03ab", 2},
		{"\x1b[31m", 0},
		{"\x1b[31", 0},
		{"", 0},
		{"ab\x00cd", 2},
	}
	for _, tt := range tests {
		if got := VisibleLen(tt.input); got != tt.want {
			t.Errorf("VisibleLen(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
