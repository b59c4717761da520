package walk

import (
	"reflect"
	"testing"
)

// "aa" followed by a + combining acute accent: 5 bytes, 4 codepoints,
// 3 grapheme clusters.
const accented = "aaá"

func TestCodepointCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{accented, 4},
		{"ab\x00cd", 2},
		{"\x00abc", 0},
	}
	for _, tt := range tests {
		if got := CodepointCount(tt.input); got != tt.want {
			t.Errorf("CodepointCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestGraphemeCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{accented, 3},
		{"áb̈", 2},
		{"ab\x00cd", 2},
	}
	for _, tt := range tests {
		if got := GraphemeCount(tt.input); got != tt.want {
			t.Errorf("GraphemeCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestLengthsNest(t *testing.T) {
	inputs := []string{"", "plain ascii", "héllo wörld", accented, "á̈z"}
	for _, s := range inputs {
		gc, cp := GraphemeCount(s), CodepointCount(s)
		if gc > cp || cp > len(s) {
			t.Errorf("%q: grapheme %d, codepoint %d, bytes %d must be non-decreasing", s, gc, cp, len(s))
		}
	}
	// all equal for ASCII
	if gc, cp := GraphemeCount("ascii"), CodepointCount("ascii"); gc != 5 || cp != 5 {
		t.Errorf("ASCII counts = %d, %d, want 5, 5", gc, cp)
	}
}

func TestForEachCodepointOffsets(t *testing.T) {
	var got []Codepoint
	ForEachCodepoint("aé́", func(cp Codepoint) bool {
		got = append(got, cp)
		return true
	})
	want := []Codepoint{
		{'a', 0, 1},
		{'é', 1, 2},
		{'́', 3, 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("codepoints = %+v, want %+v", got, want)
	}
}

func TestForEachCodepointEarlyStop(t *testing.T) {
	n := 0
	done := ForEachCodepoint("abcdef", func(cp Codepoint) bool {
		n++
		return cp.R != 'c'
	})
	if done {
		t.Error("walk reported completion after early stop")
	}
	if n != 3 {
		t.Errorf("visited %d codepoints, want 3", n)
	}
	if !ForEachCodepoint("abc", func(Codepoint) bool { return true }) {
		t.Error("full walk did not report completion")
	}
}

func TestForEachGraphemeClusters(t *testing.T) {
	var clusters []string
	var offsets []int
	ForEachGrapheme(accented, func(g Grapheme) bool {
		clusters = append(clusters, g.Cluster)
		offsets = append(offsets, g.Offset)
		return true
	})
	wantClusters := []string{"a", "a", "á"}
	wantOffsets := []int{0, 1, 2}
	if !reflect.DeepEqual(clusters, wantClusters) {
		t.Errorf("clusters = %q, want %q", clusters, wantClusters)
	}
	if !reflect.DeepEqual(offsets, wantOffsets) {
		t.Errorf("offsets = %v, want %v", offsets, wantOffsets)
	}
}

func TestGraphemeBreaks(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"aaa", []int{0, 1, 2}},
		{accented, []int{0, 1, 2}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := GraphemeBreaks(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("GraphemeBreaks(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPrefixLen(t *testing.T) {
	if got := CodepointPrefixLen("héllo", 2); got != 3 {
		t.Errorf("CodepointPrefixLen = %d, want 3", got)
	}
	if got := CodepointPrefixLen("ab", 10); got != 2 {
		t.Errorf("CodepointPrefixLen past end = %d, want 2", got)
	}
	if got := GraphemePrefixLen(accented, 3); got != len(accented) {
		t.Errorf("GraphemePrefixLen = %d, want %d", got, len(accented))
	}
	if got := GraphemePrefixLen(accented, 2); got != 2 {
		t.Errorf("GraphemePrefixLen = %d, want 2", got)
	}
}

func TestFirstCodepoint(t *testing.T) {
	if got := FirstCodepoint("éx"); got.R != 'é' || got.Len != 2 {
		t.Errorf("FirstCodepoint = %+v, want é len 2", got)
	}
	if got := FirstCodepoint(""); got != (Codepoint{}) {
		t.Errorf("FirstCodepoint empty = %+v, want zero", got)
	}
}

func TestFirstLengths(t *testing.T) {
	if got := CodepointLen("é"); got != 2 {
		t.Errorf("CodepointLen = %d, want 2", got)
	}
	if got := CodepointLen(""); got != 0 {
		t.Errorf("CodepointLen empty = %d, want 0", got)
	}
	if got := GraphemeLen("áz"); got != 3 {
		t.Errorf("GraphemeLen = %d, want 3", got)
	}
	if got := GraphemeLen("\x00x"); got != 0 {
		t.Errorf("GraphemeLen at NUL = %d, want 0", got)
	}
}

func TestCursorMoves(t *testing.T) {
	s := "aé́"
	if got := NextCodepoint(s, 0); got != 1 {
		t.Errorf("NextCodepoint(0) = %d, want 1", got)
	}
	if got := NextCodepoint(s, 1); got != 3 {
		t.Errorf("NextCodepoint(1) = %d, want 3", got)
	}
	if got := NextCodepoint(s, len(s)); got != len(s) {
		t.Errorf("NextCodepoint at end = %d, want %d", got, len(s))
	}
	if got := PrevCodepoint(s, 3); got != 1 {
		t.Errorf("PrevCodepoint(3) = %d, want 1", got)
	}
	if got := PrevCodepoint(s, 0); got != 0 {
		t.Errorf("PrevCodepoint(0) = %d, want 0", got)
	}
}

func BenchmarkGraphemeCount(b *testing.B) {
	s := ""
	for i := 0; i < 64; i++ {
		s += accented
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GraphemeCount(s)
	}
}
