package engine

// BoyerMooreMatcher implements Boyer-Moore search with both shift rules.
//
// Each window is compared right to left. On a mismatch the window moves by
// the larger of:
//   - the bad-character shift, which aligns the mismatching text byte with its
//     rightmost occurrence in the pattern
//   - the good-suffix shift, which aligns the already matched suffix with its
//     next occurrence in the pattern (or with a matching prefix)
//
// After a full match the window moves by the pattern's period, so overlapping
// matches are still found.
type BoyerMooreMatcher struct{}

// String returns "BoyerMoore".
func (BoyerMooreMatcher) String() string {
	return "BoyerMoore"
}

// FindAll implements Matcher.
func (BoyerMooreMatcher) FindAll(text, pattern []byte) []int {
	n, m := len(text), len(pattern)
	if pos, done := degenerate(n, m); done {
		return pos
	}

	badChar := badCharTable(pattern)
	goodSuffix := goodSuffixTable(pattern)

	var pos []int
	for s := 0; s <= n-m; {
		j := m - 1
		for j >= 0 && pattern[j] == text[s+j] {
			j--
		}

		if j < 0 {
			pos = append(pos, s)
			s += goodSuffix[0]
			continue
		}

		s += max(badCharShift(badChar, text[s+j], j), goodSuffix[j+1])
	}
	return pos
}

// badCharTable returns, for every byte value, the rightmost index at which it
// occurs in pattern, or -1.
func badCharTable(pattern []byte) [256]int {
	var table [256]int
	for i := range table {
		table[i] = -1
	}
	for i, c := range pattern {
		table[c] = i
	}
	return table
}

// badCharShift returns the bad-character shift for a mismatch of text byte c
// against pattern index j.
func badCharShift(table [256]int, c byte, j int) int {
	last := table[c]
	if last < 0 {
		return j + 1
	}
	return max(1, j-last)
}

// goodSuffixTable returns the strong good-suffix shifts for pattern.
//
// shift[j+1] is the shift to apply after a mismatch at pattern index j, and
// shift[0] is the shift after a full match (the period of the pattern).
// Every entry is at least 1.
func goodSuffixTable(pattern []byte) []int {
	m := len(pattern)
	shift := make([]int, m+1)
	border := make([]int, m+1) // border[i]: start of the widest border of pattern[i:]
	for i := range shift {
		shift[i] = m
	}

	// Case 1: the matched suffix occurs again further left, preceded by a
	// different byte.
	i, j := m, m+1
	border[i] = j
	for i > 0 {
		for j <= m && pattern[i-1] != pattern[j-1] {
			if shift[j] == m {
				shift[j] = j - i
			}
			j = border[j]
		}
		i--
		j--
		border[i] = j
	}

	// Case 2: only a prefix of the pattern matches part of the suffix.
	j = border[0]
	for i := 0; i <= m; i++ {
		if shift[i] == m {
			shift[i] = j
		}
		if i == j {
			j = border[j]
		}
	}

	for i := range shift {
		if shift[i] < 1 {
			shift[i] = 1
		}
	}
	return shift
}
