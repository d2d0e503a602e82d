package selector

import (
	"fmt"
	"strings"
)

// Describe returns a description of the Default Heuristic's strategy.
func Describe() string {
	return defaultHeuristic.Describe()
}

// Describe returns a multi-line description of the decision procedure with
// the thresholds of h filled in.
func (h *Heuristic) Describe() string {
	c := h.config
	var b strings.Builder

	fmt.Fprintln(&b, "Algorithm selection by pattern length, text length and pattern content:")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "  1. m == 0 or m > n                       -> Naive (nothing to preprocess)\n")
	fmt.Fprintf(&b, "  2. m <= %-3d                              -> Naive if m == 1 or n <= %d, else Horspool\n",
		c.VeryShortPattern, c.TinyText)
	fmt.Fprintf(&b, "  3. m >= %-3d and repetitive               -> KMP (byte share >= %.0f%% or repeating unit, m >= %d)\n",
		c.MinRepetitionCheck, c.RepetitionRatio*100, c.MinTilingCheck)
	fmt.Fprintf(&b, "  4. m <= %-3d                              -> Naive if n < %d, else Horspool\n",
		c.ShortPattern, c.TinyText)
	fmt.Fprintf(&b, "  5. m <= %-3d                              -> BoyerMoore if n >= %d or alphabet <= %d, else Horspool\n",
		c.MediumPattern, c.SmallText, c.SmallAlphabet)
	fmt.Fprintf(&b, "  6. m <= %-3d                              -> RabinKarp if n >= %d, BoyerMoore if n >= %d, else Horspool\n",
		c.LongPattern, c.MediumText, c.SmallText)
	fmt.Fprintf(&b, "  7. otherwise                             -> RabinKarp\n")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "  Naive       no preprocessing, O(n*m); tiny inputs")
	fmt.Fprintln(&b, "  KMP         failure table, O(n+m); self-overlapping patterns")
	fmt.Fprintln(&b, "  RabinKarp   rolling hash, O(n+m) expected; long patterns on large texts")
	fmt.Fprintln(&b, "  BoyerMoore  bad-character + good-suffix, sub-linear expected; medium patterns")
	fmt.Fprintln(&b, "  Horspool    last-byte skip table, cheapest skipping matcher; short patterns")
	fmt.Fprintf(&b, "\nAlphabet is estimated from the first %d text bytes plus the pattern.\n", c.TextSample)

	return b.String()
}
