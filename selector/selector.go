// Package selector predicts which search algorithm will be fastest for a
// (text, pattern) pair without running any of them.
//
// The prediction is a fixed decision procedure over three kinds of signal:
//   - Length thresholds on the pattern (very short .. very long) and the text
//     (tiny, small, medium), since preprocessing only pays off when the scan
//     is long enough to amortize it
//   - Repetition: a dominant byte or a repeating unit in the pattern favors
//     KMP, whose failure table exploits self-overlap
//   - Alphabet size, estimated from a bounded text sample, which decides how
//     far the skip rules can jump
//
// A Decision carries no correctness obligation: every algorithm returns the
// same positions, so the selector only affects speed. It never runs a search
// and never mutates its input.
//
// Example:
//
//	d := selector.Choose(text, pattern)
//	if d.HasPreference() {
//	    pos, err := engine.Search(d.Algorithm, text, pattern)
//	    ...
//	}
package selector

import (
	"fmt"

	"github.com/coregx/strsearch/engine"
)

// Selector chooses a search algorithm for a (text, pattern) pair.
type Selector interface {
	Choose(text, pattern []byte) Decision
}

// Rule identifies the rule of the decision procedure that produced a
// Decision.
type Rule int

const (
	// RuleNoPreference means the selector made no informed choice; the
	// caller may use a default or run every algorithm.
	RuleNoPreference Rule = iota

	// RuleDegenerate covers an empty pattern or one longer than the text.
	RuleDegenerate

	// RuleVeryShort covers patterns up to Config.VeryShortPattern bytes.
	RuleVeryShort

	// RuleRepetitive covers patterns with a dominant byte or repeating unit.
	RuleRepetitive

	// RuleShort covers patterns up to Config.ShortPattern bytes.
	RuleShort

	// RuleMedium covers patterns up to Config.MediumPattern bytes.
	RuleMedium

	// RuleLong covers patterns up to Config.LongPattern bytes.
	RuleLong

	// RuleVeryLong covers everything longer.
	RuleVeryLong
)

// String returns a human-readable representation of the Rule.
func (r Rule) String() string {
	switch r {
	case RuleNoPreference:
		return "NoPreference"
	case RuleDegenerate:
		return "Degenerate"
	case RuleVeryShort:
		return "VeryShort"
	case RuleRepetitive:
		return "Repetitive"
	case RuleShort:
		return "Short"
	case RuleMedium:
		return "Medium"
	case RuleLong:
		return "Long"
	case RuleVeryLong:
		return "VeryLong"
	default:
		return "Unknown"
	}
}

// Decision is the result of a Selector.
type Decision struct {
	// Algorithm is the predicted fastest algorithm. It is only meaningful
	// when HasPreference reports true.
	Algorithm engine.Algorithm

	// Rule is the rule that fired.
	Rule Rule

	// Profile holds the statistics the rule was evaluated on.
	Profile Profile
}

// NoPreference is the Decision of a selector that makes no choice.
var NoPreference = Decision{Algorithm: -1, Rule: RuleNoPreference}

// HasPreference reports whether the Decision names an algorithm.
func (d Decision) HasPreference() bool {
	return d.Rule != RuleNoPreference && d.Algorithm.Valid()
}

// String returns the algorithm name, or "none" without a preference.
func (d Decision) String() string {
	if !d.HasPreference() {
		return "none"
	}
	return d.Algorithm.String()
}

// Reason returns a human-readable explanation of the Decision.
func (d Decision) Reason() string {
	p := d.Profile
	switch d.Rule {
	case RuleNoPreference:
		return "no preference: run every algorithm or use the caller's default"
	case RuleDegenerate:
		return fmt.Sprintf("degenerate input (m=%d, n=%d): nothing to preprocess", p.M, p.N)
	case RuleVeryShort:
		return fmt.Sprintf("very short pattern (m=%d, n=%d): %s", p.M, p.N, d.Algorithm)
	case RuleRepetitive:
		if p.Period > 0 {
			return fmt.Sprintf("repetitive pattern (unit of %d bytes): failure table exploits self-overlap", p.Period)
		}
		return fmt.Sprintf("repetitive pattern (dominant byte %.0f%%): failure table exploits self-overlap",
			p.MaxFrequencyRatio*100)
	case RuleShort:
		return fmt.Sprintf("short pattern (m=%d, n=%d): %s", p.M, p.N, d.Algorithm)
	case RuleMedium:
		if p.AlphabetChecked {
			return fmt.Sprintf("medium pattern (m=%d, n=%d, alphabet=%d): %s", p.M, p.N, p.Alphabet, d.Algorithm)
		}
		return fmt.Sprintf("medium pattern (m=%d, n=%d): %s", p.M, p.N, d.Algorithm)
	case RuleLong:
		return fmt.Sprintf("long pattern (m=%d, n=%d): %s", p.M, p.N, d.Algorithm)
	case RuleVeryLong:
		return fmt.Sprintf("very long pattern (m=%d): rolling hash cost is independent of m", p.M)
	default:
		return "unknown rule"
	}
}

// Heuristic is the default Selector. It is safe for concurrent use.
type Heuristic struct {
	config Config
}

// New returns a Heuristic with the given thresholds.
func New(config Config) (*Heuristic, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Heuristic{config: config}, nil
}

var defaultHeuristic = &Heuristic{config: DefaultConfig()}

// Default returns a Heuristic with DefaultConfig thresholds.
func Default() *Heuristic {
	return defaultHeuristic
}

// Config returns the thresholds of h.
func (h *Heuristic) Config() Config {
	return h.config
}

// Choose implements Selector. It always returns a preference.
//
// Rules are evaluated in order and the first one that applies wins:
//  1. Empty pattern or pattern longer than text: Naive
//  2. Very short pattern: Naive for single bytes or tiny texts, else Horspool
//  3. Repetitive pattern: KMP
//  4. Short pattern: Naive for tiny texts, else Horspool
//  5. Medium pattern: BoyerMoore for small+ texts or small alphabets, else Horspool
//  6. Long pattern: RabinKarp for medium+ texts, BoyerMoore for small+ texts,
//     else Horspool
//  7. Very long pattern: RabinKarp
func (h *Heuristic) Choose(text, pattern []byte) Decision {
	c := h.config
	n, m := len(text), len(pattern)
	d := Decision{Profile: Profile{N: n, M: m}}

	decide := func(a engine.Algorithm, r Rule) Decision {
		d.Algorithm, d.Rule = a, r
		return d
	}

	if m == 0 || m > n {
		return decide(engine.Naive, RuleDegenerate)
	}

	if m <= c.VeryShortPattern {
		if m == 1 || n <= c.TinyText {
			return decide(engine.Naive, RuleVeryShort)
		}
		return decide(engine.Horspool, RuleVeryShort)
	}

	if m >= c.MinRepetitionCheck {
		d.Profile.checkRepetition(pattern, c)
		if d.Profile.Repetitive {
			return decide(engine.KMP, RuleRepetitive)
		}
	}

	if m <= c.ShortPattern {
		if n < c.TinyText {
			return decide(engine.Naive, RuleShort)
		}
		return decide(engine.Horspool, RuleShort)
	}

	if m <= c.MediumPattern {
		if n >= c.SmallText {
			return decide(engine.BoyerMoore, RuleMedium)
		}
		d.Profile.checkAlphabet(text, pattern, c)
		if d.Profile.Alphabet <= c.SmallAlphabet {
			return decide(engine.BoyerMoore, RuleMedium)
		}
		return decide(engine.Horspool, RuleMedium)
	}

	if m <= c.LongPattern {
		switch {
		case n >= c.MediumText:
			return decide(engine.RabinKarp, RuleLong)
		case n >= c.SmallText:
			return decide(engine.BoyerMoore, RuleLong)
		default:
			return decide(engine.Horspool, RuleLong)
		}
	}

	return decide(engine.RabinKarp, RuleVeryLong)
}

// RunAll is a Selector that never states a preference, telling the caller
// to run every algorithm (or fall back to its default).
type RunAll struct{}

// Choose implements Selector.
func (RunAll) Choose(text, pattern []byte) Decision {
	d := NoPreference
	d.Profile = Profile{N: len(text), M: len(pattern)}
	return d
}

// Choose returns the Default Heuristic's decision for text and pattern.
func Choose(text, pattern []byte) Decision {
	return defaultHeuristic.Choose(text, pattern)
}
