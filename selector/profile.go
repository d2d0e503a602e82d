package selector

import "github.com/coregx/strsearch/internal/sparse"

// Profile holds the input statistics a Decision was based on.
//
// Length fields are always set. The content statistics are expensive
// relative to the decision itself, so Heuristic only computes the ones its
// rules reach; RepetitionChecked and AlphabetChecked report which ones are
// valid. Analyze computes all of them.
type Profile struct {
	// N is the text length and M the pattern length.
	N, M int

	// RepetitionChecked reports whether MaxFrequencyRatio, Period and
	// Repetitive were computed.
	RepetitionChecked bool

	// MaxFrequencyRatio is the count of the most frequent byte divided by
	// the sampled pattern length.
	MaxFrequencyRatio float64

	// Period is the length of the shortest unit (2..M/2) that tiles the
	// pattern, or 0 when there is none or the pattern was too short to check.
	Period int

	// Repetitive reports whether the pattern has a dominant byte or a
	// repeating unit.
	Repetitive bool

	// AlphabetChecked reports whether Alphabet was computed.
	AlphabetChecked bool

	// Alphabet is the number of distinct bytes in the text sample plus the
	// whole pattern.
	Alphabet int
}

// Analyze computes every statistic of the (text, pattern) pair.
func Analyze(text, pattern []byte, config Config) Profile {
	p := Profile{N: len(text), M: len(pattern)}
	p.checkRepetition(pattern, config)
	p.checkAlphabet(text, pattern, config)
	return p
}

func (p *Profile) checkRepetition(pattern []byte, config Config) {
	if p.RepetitionChecked {
		return
	}
	p.RepetitionChecked = true
	if len(pattern) == 0 {
		return
	}

	p.MaxFrequencyRatio = maxFrequencyRatio(pattern, config.PatternSample)
	if len(pattern) >= config.MinTilingCheck {
		p.Period = tilingPeriod(pattern)
	}
	p.Repetitive = p.MaxFrequencyRatio >= config.RepetitionRatio || p.Period > 0
}

func (p *Profile) checkAlphabet(text, pattern []byte, config Config) {
	if p.AlphabetChecked {
		return
	}
	p.AlphabetChecked = true
	p.Alphabet = alphabetSize(text, pattern, config.TextSample)
}

// maxFrequencyRatio returns the share of the first sample bytes of pattern
// taken by its most frequent byte. pattern must not be empty.
func maxFrequencyRatio(pattern []byte, sample int) float64 {
	if len(pattern) > sample {
		pattern = pattern[:sample]
	}

	var freq [256]int
	maxFreq := 0
	for _, c := range pattern {
		freq[c]++
		maxFreq = max(maxFreq, freq[c])
	}
	return float64(maxFreq) / float64(len(pattern))
}

// tilingPeriod returns the smallest unit length p in [2, len(pattern)/2]
// such that pattern is pattern[:p] repeated, the last copy possibly cut
// short. It returns 0 when no such unit exists.
//
// Each candidate is checked in O(m) by comparing every byte with the byte
// one unit earlier, for O(m^2) in the worst case.
func tilingPeriod(pattern []byte) int {
	m := len(pattern)
	for unit := 2; unit <= m/2; unit++ {
		if tiles(pattern, unit) {
			return unit
		}
	}
	return 0
}

func tiles(pattern []byte, unit int) bool {
	for i := unit; i < len(pattern); i++ {
		if pattern[i] != pattern[i-unit] {
			return false
		}
	}
	return true
}

// alphabetSize counts the distinct bytes in the first sample bytes of text
// and in all of pattern.
func alphabetSize(text, pattern []byte, sample int) int {
	if len(text) > sample {
		text = text[:sample]
	}

	var seen sparse.ByteSet
	for _, c := range text {
		seen.Insert(c)
		if seen.Full() {
			return seen.Len()
		}
	}
	seen.InsertAll(pattern)
	return seen.Len()
}
