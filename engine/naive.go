package engine

// NaiveMatcher compares the pattern against every window of the text.
//
// It has no preprocessing cost, which makes it the fastest choice for tiny
// inputs and single-byte patterns on short texts.
type NaiveMatcher struct{}

// String returns "Naive".
func (NaiveMatcher) String() string {
	return "Naive"
}

// FindAll implements Matcher.
func (NaiveMatcher) FindAll(text, pattern []byte) []int {
	n, m := len(text), len(pattern)
	if pos, done := degenerate(n, m); done {
		return pos
	}

	var pos []int
	for i := 0; i <= n-m; i++ {
		j := 0
		for j < m && text[i+j] == pattern[j] {
			j++
		}
		if j == m {
			pos = append(pos, i)
		}
	}
	return pos
}
