// Package strsearch finds every occurrence of a pattern in a text.
//
// strsearch provides five exact substring-search algorithms with identical
// results and a heuristic that picks the one expected to run fastest:
//   - Naive, KMP, RabinKarp, BoyerMoore, Horspool (see package engine)
//   - Heuristic algorithm selection (see package selector)
//
// Results are the ascending starting offsets of all matches, overlapping
// matches included. An empty pattern matches at every offset 0..len(text).
//
// Basic usage:
//
//	pos, err := strsearch.SearchString("ABABABA", "ABA", strsearch.KMP)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(strsearch.FormatPositions(pos)) // "0,2,4"
//
// Letting the selector decide:
//
//	pos, algo, err := strsearch.SearchAuto(text, pattern)
//	fmt.Printf("%s found %d matches\n", algo, len(pos))
//
// All functions are safe for concurrent use.
package strsearch

import (
	"github.com/coregx/strsearch/engine"
	"github.com/coregx/strsearch/selector"
)

// Algorithm identifies a search algorithm.
type Algorithm = engine.Algorithm

// Built-in algorithms.
const (
	Naive      = engine.Naive
	KMP        = engine.KMP
	RabinKarp  = engine.RabinKarp
	BoyerMoore = engine.BoyerMoore
	Horspool   = engine.Horspool
)

// DefaultAlgorithm is used by SearchAuto when the selector has no
// preference.
const DefaultAlgorithm = Horspool

// Common errors, re-exported from package engine.
var (
	ErrInvalidReference = engine.ErrInvalidReference
	ErrUnknownAlgorithm = engine.ErrUnknownAlgorithm
)

// Search returns the offsets of every occurrence of pattern in text, found
// with algorithm a.
//
// It returns ErrInvalidReference for a nil text or pattern and an error
// wrapping ErrUnknownAlgorithm for an invalid a. The result is nil when
// there are no matches.
//
// Example:
//
//	pos, _ := strsearch.Search([]byte("aaaa"), []byte("aa"), strsearch.BoyerMoore)
//	// pos == []int{0, 1, 2}
func Search(text, pattern []byte, a Algorithm) ([]int, error) {
	return engine.Search(a, text, pattern)
}

// SearchString is like Search but takes strings.
func SearchString(text, pattern string, a Algorithm) ([]int, error) {
	return engine.Search(a, []byte(text), []byte(pattern))
}

// SearchByName is like Search but resolves the algorithm by name.
// Names are "Naive", "KMP", "RabinKarp", "BoyerMoore", "Horspool" and the
// alias "GoCrazy". An unknown name is rejected before any search work.
func SearchByName(text, pattern []byte, name string) ([]int, error) {
	a, err := engine.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return engine.Search(a, text, pattern)
}

// Choose returns the default selector's decision for text and pattern.
func Choose(text, pattern []byte) selector.Decision {
	return selector.Choose(text, pattern)
}

// SearchAuto picks an algorithm with the default selector and runs it.
// It returns the positions and the algorithm that produced them.
func SearchAuto(text, pattern []byte) ([]int, Algorithm, error) {
	return SearchWith(selector.Default(), text, pattern)
}

// SearchWith picks an algorithm with s and runs it. DefaultAlgorithm is used
// when s has no preference.
func SearchWith(s selector.Selector, text, pattern []byte) ([]int, Algorithm, error) {
	if text == nil || pattern == nil {
		return nil, DefaultAlgorithm, ErrInvalidReference
	}
	a := DefaultAlgorithm
	if d := s.Choose(text, pattern); d.HasPreference() {
		a = d.Algorithm
	}
	pos, err := engine.Search(a, text, pattern)
	if err != nil {
		return nil, a, err
	}
	return pos, a, nil
}

// Algorithms returns every built-in algorithm.
func Algorithms() []Algorithm {
	return engine.Algorithms()
}

// ParseAlgorithm returns the algorithm with the given name.
func ParseAlgorithm(name string) (Algorithm, error) {
	return engine.ParseAlgorithm(name)
}
