package engine

import (
	"slices"
	"testing"
)

func TestBadCharTable(t *testing.T) {
	table := badCharTable([]byte("abcab"))

	want := map[byte]int{'a': 3, 'b': 4, 'c': 2, 'z': -1, 0: -1}
	for c, idx := range want {
		if table[c] != idx {
			t.Errorf("badChar[%q] = %d, want %d", c, table[c], idx)
		}
	}
}

func TestBadCharShift(t *testing.T) {
	table := badCharTable([]byte("abcab"))

	tests := []struct {
		name string
		c    byte
		j    int
		want int
	}{
		{"absent_skips_past", 'z', 4, 5},
		{"absent_at_start", 'z', 0, 1},
		{"left_of_mismatch", 'c', 4, 2},
		{"right_of_mismatch_clamped", 'b', 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := badCharShift(table, tt.c, tt.j); got != tt.want {
				t.Errorf("badCharShift(%q, %d) = %d, want %d", tt.c, tt.j, got, tt.want)
			}
		})
	}
}

func TestGoodSuffixTable(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"a", []int{1, 1}},
		{"aa", []int{1, 1, 2}},
		{"ab", []int{2, 2, 1}},
		{"abab", []int{2, 2, 2, 4, 1}},
		{"abcab", []int{3, 3, 3, 3, 5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := goodSuffixTable([]byte(tt.pattern))
			if !slices.Equal(got, tt.want) {
				t.Errorf("goodSuffixTable(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

// TestGoodSuffixFullMatchShiftIsPeriod checks that the shift after a full
// match never jumps over an overlapping occurrence.
func TestGoodSuffixFullMatchShiftIsPeriod(t *testing.T) {
	tests := []struct {
		pattern string
		period  int
	}{
		{"aaaa", 1},
		{"ABA", 2},
		{"abcabc", 3},
		{"abcd", 4},
		{"aabaa", 3},
	}

	for _, tt := range tests {
		got := goodSuffixTable([]byte(tt.pattern))[0]
		if got != tt.period {
			t.Errorf("goodSuffix(%q)[0] = %d, want period %d", tt.pattern, got, tt.period)
		}
	}
}
