package selector

import (
	"math"
	"strings"
	"testing"
)

func TestTilingPeriod(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"abab", 2},
		{"ababa", 2},
		{"abcabc", 3},
		{"abcabcab", 3},
		{"xyzxyzxyzx", 3},
		{"aaaa", 2}, // unit 1 is not considered
		{"abcd", 0},
		{"abcab", 0}, // unit 3 would need m >= 6
		{"abcdabcx", 0},
		{"a", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := tilingPeriod([]byte(tt.pattern)); got != tt.want {
			t.Errorf("tilingPeriod(%q) = %d, want %d", tt.pattern, got, tt.want)
		}
	}
}

func TestMaxFrequencyRatio(t *testing.T) {
	tests := []struct {
		pattern string
		sample  int
		want    float64
	}{
		{"aaaa", 256, 1},
		{"aaab", 256, 0.75},
		{"abcd", 256, 0.25},
		{"abcdaaaa", 4, 0.25}, // only the sample counts
		{"x", 256, 1},
	}

	for _, tt := range tests {
		got := maxFrequencyRatio([]byte(tt.pattern), tt.sample)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("maxFrequencyRatio(%q, %d) = %v, want %v", tt.pattern, tt.sample, got, tt.want)
		}
	}
}

func TestAlphabetSize(t *testing.T) {
	all := make([]byte, 512)
	for i := range all {
		all[i] = byte(i)
	}

	tests := []struct {
		name    string
		text    string
		pattern string
		sample  int
		want    int
	}{
		{"dna", "ACGTACGTTTGA", "GATTACA", 4096, 4},
		{"pattern_adds_bytes", "aaaa", "xyz", 4096, 4},
		{"sample_bounds_text", "ab" + strings.Repeat("c", 10) + "def", "a", 4, 3},
		{"empty", "", "", 4096, 0},
		{"every_byte", string(all), "a", 4096, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := alphabetSize([]byte(tt.text), []byte(tt.pattern), tt.sample); got != tt.want {
				t.Errorf("alphabetSize = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	p := Analyze([]byte("ABABABABAB"), []byte("ABABAB"), DefaultConfig())

	if p.N != 10 || p.M != 6 {
		t.Errorf("lengths = (%d, %d), want (10, 6)", p.N, p.M)
	}
	if !p.RepetitionChecked || !p.AlphabetChecked {
		t.Fatalf("Analyze left statistics unchecked: %+v", p)
	}
	if p.Period != 2 {
		t.Errorf("Period = %d, want 2", p.Period)
	}
	if !p.Repetitive {
		t.Error("Repetitive = false, want true")
	}
	if p.Alphabet != 2 {
		t.Errorf("Alphabet = %d, want 2", p.Alphabet)
	}
}

func TestAnalyzeEmptyPattern(t *testing.T) {
	p := Analyze([]byte("abc"), []byte{}, DefaultConfig())
	if p.Repetitive || p.MaxFrequencyRatio != 0 {
		t.Errorf("empty pattern profile = %+v", p)
	}
	if p.Alphabet != 3 {
		t.Errorf("Alphabet = %d, want 3", p.Alphabet)
	}
}
