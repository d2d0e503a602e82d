package engine

import "github.com/coregx/strsearch/simd"

// HorspoolMatcher implements Boyer-Moore-Horspool search.
//
// Only one table is built: skip[c] is the distance from the rightmost
// occurrence of c in pattern[:m-1] to the end of the pattern, or m when c
// does not occur there. Every window moves by skip[last byte of window],
// whether it matched or not, so overlapping matches are never skipped.
//
// A window is rejected on its last byte before any other comparison.
// Single-byte patterns jump between candidates with simd.Memchr.
//
// This matcher is also known as "GoCrazy".
type HorspoolMatcher struct{}

// String returns "Horspool".
func (HorspoolMatcher) String() string {
	return "Horspool"
}

// FindAll implements Matcher.
func (HorspoolMatcher) FindAll(text, pattern []byte) []int {
	n, m := len(text), len(pattern)
	if pos, done := degenerate(n, m); done {
		return pos
	}
	if m == 1 {
		return findByte(text, pattern[0])
	}

	skip := skipTable(pattern)
	last := pattern[m-1]

	var pos []int
	for i := 0; i <= n-m; {
		c := text[i+m-1]
		if c == last {
			j := m - 2
			for j >= 0 && text[i+j] == pattern[j] {
				j--
			}
			if j < 0 {
				pos = append(pos, i)
			}
		}
		i += skip[c]
	}
	return pos
}

// skipTable builds the Horspool shift table from every pattern byte except
// the last. pattern must not be empty.
func skipTable(pattern []byte) [256]int {
	m := len(pattern)
	var skip [256]int
	for i := range skip {
		skip[i] = m
	}
	for i := 0; i < m-1; i++ {
		skip[pattern[i]] = m - 1 - i
	}
	return skip
}

// findByte returns every offset of b in text.
func findByte(text []byte, b byte) []int {
	var pos []int
	for at := 0; at < len(text); {
		idx := simd.Memchr(text[at:], b)
		if idx < 0 {
			break
		}
		at += idx
		pos = append(pos, at)
		at++
	}
	return pos
}
