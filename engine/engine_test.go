package engine

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

// indexAll is the reference implementation: repeated bytes.Index, restarting
// one byte after each match so overlapping matches are found.
func indexAll(text, pattern []byte) []int {
	var pos []int
	for at := 0; at <= len(text); {
		idx := bytes.Index(text[at:], pattern)
		if idx < 0 {
			break
		}
		pos = append(pos, at+idx)
		at += idx + 1
	}
	return pos
}

// TestFindAllBasic runs every matcher over the same table.
func TestFindAllBasic(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    []int
	}{
		// Degenerate inputs
		{"both_empty", "", "", []int{0}},
		{"empty_pattern", "abc", "", []int{0, 1, 2, 3}},
		{"empty_text", "", "a", nil},
		{"pattern_too_long", "ab", "abc", nil},

		// Single byte
		{"single_found", "hello", "l", []int{2, 3}},
		{"single_not_found", "hello", "x", nil},
		{"single_whole_text", "a", "a", []int{0}},

		// Positions
		{"at_start", "hello world", "hello", []int{0}},
		{"at_end", "hello world", "world", []int{6}},
		{"in_middle", "hello world", "lo wo", []int{3}},
		{"not_found", "hello world", "xyz", nil},
		{"self_match", "hello", "hello", []int{0}},

		// Overlapping matches
		{"overlap_aa", "aaaa", "aa", []int{0, 1, 2}},
		{"overlap_aba", "ABABABA", "ABA", []int{0, 2, 4}},
		{"overlap_aaa", "aaaaaa", "aaa", []int{0, 1, 2, 3}},
		{"overlap_abcab", "abcabcabcab", "abcab", []int{0, 3, 6}},

		// Near misses
		{"near_miss_prefix", "aaaaaab", "aab", []int{4}},
		{"near_miss_suffix", "abababac", "ababac", []int{2}},
		{"period_break", "abcabcabd", "abcabd", []int{3}},

		// Special bytes
		{"null_bytes", "\x00\x01\x00\x01\x00", "\x00\x01\x00", []int{0, 2}},
		{"high_bytes", "\xff\xfe\xff\xfe", "\xfe\xff", []int{1}},

		// Real-world examples
		{"http_method", "GET /index.html HTTP/1.1", "HTTP", []int{16}},
		{"json_key", `{"name":"John","age":30}`, `"age"`, []int{15}},
		{"dna", "ACGTACGTTACGTACG", "ACGTACG", []int{0, 9}},
		{"words", "the cat and the hat and the bat", "the", []int{0, 12, 24}},
	}

	for _, tt := range tests {
		for _, a := range Algorithms() {
			t.Run(tt.name+"/"+a.String(), func(t *testing.T) {
				got, err := Search(a, []byte(tt.text), []byte(tt.pattern))
				if err != nil {
					t.Fatalf("Search(%s, %q, %q) error: %v", a, tt.text, tt.pattern, err)
				}
				if !slices.Equal(got, tt.want) {
					t.Errorf("Search(%s, %q, %q) = %v, want %v", a, tt.text, tt.pattern, got, tt.want)
				}

				ref := indexAll([]byte(tt.text), []byte(tt.pattern))
				if !slices.Equal(got, ref) {
					t.Errorf("Search(%s) != reference: got %v, reference %v", a, got, ref)
				}
			})
		}
	}
}

// TestEmptyPatternMatchesEverywhere checks the n+1 positions convention.
func TestEmptyPatternMatchesEverywhere(t *testing.T) {
	for _, n := range []int{0, 1, 7, 64, 1000} {
		text := []byte(strings.Repeat("x", n))
		for _, a := range Algorithms() {
			got, err := Search(a, text, []byte{})
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", a, err)
			}
			if len(got) != n+1 {
				t.Fatalf("%s: n=%d: got %d positions, want %d", a, n, len(got), n+1)
			}
			for i, p := range got {
				if p != i {
					t.Fatalf("%s: n=%d: position %d = %d", a, n, i, p)
				}
			}
		}
	}
}

// TestSelfMatch checks that every non-empty string matches itself exactly once.
func TestSelfMatch(t *testing.T) {
	inputs := []string{"a", "ab", "aaaa", "abcab", "ABABABA", "hello, world", strings.Repeat("xy", 40)}
	for _, s := range inputs {
		for _, a := range Algorithms() {
			got, err := Search(a, []byte(s), []byte(s))
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", a, err)
			}
			if !slices.Equal(got, []int{0}) {
				t.Errorf("%s: Search(%q, %q) = %v, want [0]", a, s, s, got)
			}
		}
	}
}

func TestSearchErrors(t *testing.T) {
	t.Run("nil_text", func(t *testing.T) {
		for _, a := range Algorithms() {
			pos, err := Search(a, nil, []byte("a"))
			if !errors.Is(err, ErrInvalidReference) {
				t.Errorf("%s: err = %v, want ErrInvalidReference", a, err)
			}
			if pos != nil {
				t.Errorf("%s: partial result %v on error", a, pos)
			}
		}
	})

	t.Run("nil_pattern", func(t *testing.T) {
		_, err := Search(KMP, []byte("abc"), nil)
		if !errors.Is(err, ErrInvalidReference) {
			t.Errorf("err = %v, want ErrInvalidReference", err)
		}
	})

	t.Run("empty_is_not_nil", func(t *testing.T) {
		pos, err := Search(Naive, []byte{}, []byte{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(pos, []int{0}) {
			t.Errorf("pos = %v, want [0]", pos)
		}
	})

	t.Run("unknown_algorithm", func(t *testing.T) {
		_, err := Search(Algorithm(42), []byte("abc"), []byte("a"))
		if !errors.Is(err, ErrUnknownAlgorithm) {
			t.Fatalf("err = %v, want ErrUnknownAlgorithm", err)
		}
		var ae *AlgorithmError
		if !errors.As(err, &ae) {
			t.Fatalf("err = %T, want *AlgorithmError", err)
		}
		if ae.Name != "Algorithm(42)" {
			t.Errorf("Name = %q, want %q", ae.Name, "Algorithm(42)")
		}
	})

	t.Run("negative_algorithm", func(t *testing.T) {
		if _, err := New(Algorithm(-1)); !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
		}
	})
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		want    Algorithm
		wantErr bool
	}{
		{"Naive", Naive, false},
		{"KMP", KMP, false},
		{"RabinKarp", RabinKarp, false},
		{"BoyerMoore", BoyerMoore, false},
		{"Horspool", Horspool, false},
		{"GoCrazy", Horspool, false},
		{"kmp", 0, true},
		{"", 0, true},
		{"AhoCorasick", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAlgorithm(%q) = %v, want error", tt.name, got)
				}
				if !errors.Is(err, ErrUnknownAlgorithm) {
					t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlgorithm(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

// TestAlgorithmNames checks that names round-trip and match the matchers.
func TestAlgorithmNames(t *testing.T) {
	all := Algorithms()
	if len(all) != 5 {
		t.Fatalf("Algorithms() returned %d entries, want 5", len(all))
	}
	for _, a := range all {
		m, err := New(a)
		if err != nil {
			t.Fatalf("New(%v) error: %v", a, err)
		}
		if m.String() != a.String() {
			t.Errorf("matcher name %q != algorithm name %q", m.String(), a.String())
		}
		back, err := ParseAlgorithm(a.String())
		if err != nil || back != a {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", a.String(), back, err)
		}
	}
	if got := Algorithm(99).String(); got != "Unknown" {
		t.Errorf("Algorithm(99).String() = %q, want Unknown", got)
	}
}

func TestFirst(t *testing.T) {
	tests := []struct {
		text, pattern string
		want          int
	}{
		{"hello hello", "hello", 0},
		{"say hello", "hello", 4},
		{"hello", "xyz", -1},
		{"abc", "", 0},
		{"", "a", -1},
	}

	for _, tt := range tests {
		for _, a := range Algorithms() {
			m, _ := New(a)
			if got := First(m, []byte(tt.text), []byte(tt.pattern)); got != tt.want {
				t.Errorf("First(%s, %q, %q) = %d, want %d", a, tt.text, tt.pattern, got, tt.want)
			}
		}
	}
}

// TestFindAllNilIsEmpty checks that the unvalidated kernels treat nil as empty.
func TestFindAllNilIsEmpty(t *testing.T) {
	for _, a := range Algorithms() {
		m, _ := New(a)
		if got := m.FindAll(nil, nil); !slices.Equal(got, []int{0}) {
			t.Errorf("%s: FindAll(nil, nil) = %v, want [0]", a, got)
		}
		if got := m.FindAll(nil, []byte("a")); got != nil {
			t.Errorf("%s: FindAll(nil, \"a\") = %v, want nil", a, got)
		}
	}
}
