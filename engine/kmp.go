package engine

// KMPMatcher implements Knuth-Morris-Pratt search.
//
// The failure table lets the scan resume after a mismatch without moving the
// text cursor backwards, so every text byte is examined a bounded number of
// times. Patterns with a lot of self-overlap ("AAAA", "ABABAB") gain the most.
type KMPMatcher struct{}

// String returns "KMP".
func (KMPMatcher) String() string {
	return "KMP"
}

// FindAll implements Matcher.
func (KMPMatcher) FindAll(text, pattern []byte) []int {
	n, m := len(text), len(pattern)
	if pos, done := degenerate(n, m); done {
		return pos
	}

	lps := failureTable(pattern)

	var pos []int
	i, j := 0, 0 // text cursor, pattern cursor
	for i < n {
		if text[i] == pattern[j] {
			i++
			j++
			if j == m {
				pos = append(pos, i-j)
				j = lps[j-1]
			}
			continue
		}
		if j > 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
	return pos
}

// failureTable returns the prefix function of pattern: lps[k] is the length
// of the longest proper prefix of pattern[:k+1] that is also its suffix.
// pattern must not be empty.
func failureTable(pattern []byte) []int {
	m := len(pattern)
	lps := make([]int, m)

	length := 0
	for i := 1; i < m; {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length != 0:
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}
	return lps
}
