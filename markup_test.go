package pennmush

import "testing"

func TestSpanEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start int
		want  int
	}{
		{"ansi span", "\x1b[31mx", 0, 5},
		{"markup span", "\x02tag\x03x", 0, 5},
		{"unterminated ansi", "\x1b[31", 0, 4},
		{"unterminated markup", "\x02tag", 0, 4},
		{"mid-string", "ab\x1b[0mz", 2, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpanEnd(tt.input, tt.start); got != tt.want {
				t.Errorf("SpanEnd(%q, %d) = %d, want %d", tt.input, tt.start, got, tt.want)
			}
		})
	}
}

func TestStartsSpan(t *testing.T) {
	s := "a\x02b\x1bc"
	wants := []bool{false, true, false, true, false}
	for i, want := range wants {
		if got := StartsSpan(s, i); got != want {
			t.Errorf("StartsSpan(%q, %d) = %v, want %v", s, i, got, want)
		}
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"plain", 5},
		{"\x1b[1mbold\x1b[0m", 4},
		{"\x02t\x03x\x02t\x03", 1},
		{"cut\x00off", 3},
	}
	for _, tt := range tests {
		if got := VisibleLen(tt.input); got != tt.want {
			t.Errorf("VisibleLen(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
