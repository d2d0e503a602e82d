// Package engine implements exact substring search.
//
// The package provides five interchangeable matchers that all report every
// (possibly overlapping) occurrence of a pattern in a text:
//   - Naive: brute-force window comparison, no preprocessing
//   - KMP: Knuth-Morris-Pratt automaton driven by a failure table
//   - RabinKarp: polynomial rolling hash with byte-by-byte verification
//   - BoyerMoore: bad-character and good-suffix shift rules
//   - Horspool: single skip table over the last byte of each window
//
// Every matcher returns the same positions for the same input, so the choice
// between them only affects speed. Matchers are stateless values; all tables
// are built per call, which makes them safe for concurrent use.
//
// Example:
//
//	pos, err := engine.Search(engine.KMP, []byte("ABABABA"), []byte("ABA"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pos) // [0 2 4]
package engine

import "strconv"

// Matcher finds all occurrences of a pattern in a text.
//
// FindAll returns the starting offsets of every match in ascending order,
// including overlapping matches, or nil when there are none. An empty
// pattern matches at every offset 0..len(text).
//
// FindAll does not validate its arguments: nil slices are treated as empty.
// Use Search for validated dispatch.
type Matcher interface {
	FindAll(text, pattern []byte) []int
	String() string
}

// Algorithm identifies one of the built-in matchers.
type Algorithm int

const (
	// Naive compares the pattern at every text offset.
	// O(n*m) worst case, no preprocessing.
	Naive Algorithm = iota

	// KMP scans the text once using the pattern's failure table.
	// O(n+m) time, O(m) space.
	KMP

	// RabinKarp compares rolling hashes and verifies every hash hit.
	// O(n+m) expected, O(n*m) under adversarial collisions.
	RabinKarp

	// BoyerMoore scans each window right to left and shifts by the larger of
	// the bad-character and good-suffix rules.
	// Sub-linear expected, O(n*m) worst case.
	BoyerMoore

	// Horspool is the simplified Boyer-Moore that only uses a skip table
	// keyed by the last byte of the window. Cheapest preprocessing of the
	// skipping matchers.
	Horspool

	numAlgorithms
)

// matchers is the dispatch table, indexed by Algorithm.
var matchers = [numAlgorithms]Matcher{
	Naive:      NaiveMatcher{},
	KMP:        KMPMatcher{},
	RabinKarp:  RabinKarpMatcher{},
	BoyerMoore: BoyerMooreMatcher{},
	Horspool:   HorspoolMatcher{},
}

var algorithmNames = [numAlgorithms]string{
	Naive:      "Naive",
	KMP:        "KMP",
	RabinKarp:  "RabinKarp",
	BoyerMoore: "BoyerMoore",
	Horspool:   "Horspool",
}

// String returns the canonical name of the algorithm.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "Unknown"
	}
	return algorithmNames[a]
}

// Valid reports whether a names a built-in matcher.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < numAlgorithms
}

// Algorithms returns every built-in algorithm in declaration order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, numAlgorithms)
	for i := range all {
		all[i] = Algorithm(i)
	}
	return all
}

// ParseAlgorithm returns the algorithm with the given canonical name.
// "GoCrazy" is accepted as an alias for Horspool.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	if name == "GoCrazy" {
		return Horspool, nil
	}
	return -1, &AlgorithmError{Name: name}
}

// New returns the matcher for a.
func New(a Algorithm) (Matcher, error) {
	if !a.Valid() {
		return nil, &AlgorithmError{Name: "Algorithm(" + strconv.Itoa(int(a)) + ")"}
	}
	return matchers[a], nil
}

// Search runs algorithm a over text and pattern.
//
// Nil text or pattern is rejected with ErrInvalidReference and an unknown
// algorithm with an *AlgorithmError, both before any table is built. Empty
// slices are valid input.
func Search(a Algorithm, text, pattern []byte) ([]int, error) {
	if text == nil || pattern == nil {
		return nil, ErrInvalidReference
	}
	m, err := New(a)
	if err != nil {
		return nil, err
	}
	return m.FindAll(text, pattern), nil
}

// First returns the offset of the first match of pattern in text, or -1.
func First(m Matcher, text, pattern []byte) int {
	pos := m.FindAll(text, pattern)
	if len(pos) == 0 {
		return -1
	}
	return pos[0]
}

// degenerate handles the inputs every matcher treats identically.
// It returns done == true when the result is already known: an empty pattern
// matches at 0..n and a pattern longer than the text never matches.
func degenerate(n, m int) (pos []int, done bool) {
	if m == 0 {
		pos = make([]int, n+1)
		for i := range pos {
			pos[i] = i
		}
		return pos, true
	}
	if m > n {
		return nil, true
	}
	return nil, false
}
