package bench

import (
	"errors"
	"fmt"
	"slices"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/strsearch/engine"
)

// ErrMismatch is returned when an algorithm disagrees with the oracle.
var ErrMismatch = errors.New("bench: positions differ from oracle")

// MismatchError describes the first disagreement found by verification.
type MismatchError struct {
	Pattern   []byte
	Algorithm engine.Algorithm
	Got       []int
	Want      []int
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("bench: %s found %d matches of %q, oracle found %d",
		e.Algorithm, len(e.Got), e.Pattern, len(e.Want))
}

// Unwrap returns ErrMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Oracle returns every occurrence of pattern in text using an Aho-Corasick
// automaton, which shares no code with the engine matchers.
func Oracle(text, pattern []byte) ([]int, error) {
	if len(pattern) == 0 {
		pos := make([]int, len(text)+1)
		for i := range pos {
			pos[i] = i
		}
		return pos, nil
	}
	if len(pattern) > len(text) {
		return nil, nil
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern(pattern)
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("bench: build oracle for %q: %w", pattern, err)
	}

	var pos []int
	for at := 0; at < len(text); {
		m := auto.Find(text, at)
		if m == nil {
			break
		}
		pos = append(pos, m.Start)
		at = m.Start + 1
	}
	return pos, nil
}

func verify(pattern []byte, want []int, algos []engine.Algorithm, results map[engine.Algorithm][]int) error {
	for _, a := range algos {
		if got := results[a]; !slices.Equal(got, want) {
			return &MismatchError{Pattern: pattern, Algorithm: a, Got: got, Want: want}
		}
	}
	return nil
}
