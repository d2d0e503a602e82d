package engine

import (
	"slices"
	"testing"
)

func TestSkipTable(t *testing.T) {
	skip := skipTable([]byte("abcab"))

	// The last byte is excluded from the table.
	want := map[byte]int{'a': 1, 'b': 3, 'c': 2, 'z': 5}
	for c, s := range want {
		if skip[c] != s {
			t.Errorf("skip[%q] = %d, want %d", c, skip[c], s)
		}
	}
}

func TestSkipTableRepeatedLastByte(t *testing.T) {
	skip := skipTable([]byte("aa"))
	if skip['a'] != 1 {
		t.Errorf("skip['a'] = %d, want 1", skip['a'])
	}
}

func TestFindByte(t *testing.T) {
	tests := []struct {
		name string
		text string
		b    byte
		want []int
	}{
		{"empty", "", 'a', nil},
		{"absent", "hello", 'x', nil},
		{"short", "hello", 'l', []int{2, 3}},
		{"all", "aaaaaaaaaaaa", 'a', []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{"word_boundaries", "x.......x.......x", 'x', []int{0, 8, 16}},
		{"last_byte", "................z", 'z', []int{16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findByte([]byte(tt.text), tt.b)
			if !slices.Equal(got, tt.want) {
				t.Errorf("findByte(%q, %q) = %v, want %v", tt.text, tt.b, got, tt.want)
			}
		})
	}
}
