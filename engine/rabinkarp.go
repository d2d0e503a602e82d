package engine

// Rolling hash parameters. The hash is the pattern read as a base-256 number
// reduced modulo a small prime, so collisions are frequent and every hash hit
// is verified byte by byte.
const (
	hashBase  = 256
	hashPrime = 101
)

// RabinKarpMatcher compares a rolling hash of each text window with the hash
// of the pattern and only compares bytes when the hashes agree.
//
// Expected time is O(n+m). Inputs engineered to collide on every window
// degrade it to O(n*m), but never produce a false match.
type RabinKarpMatcher struct{}

// String returns "RabinKarp".
func (RabinKarpMatcher) String() string {
	return "RabinKarp"
}

// FindAll implements Matcher.
func (RabinKarpMatcher) FindAll(text, pattern []byte) []int {
	n, m := len(text), len(pattern)
	if pos, done := degenerate(n, m); done {
		return pos
	}

	// int64 holds hashBase*hashPrime*hashBase comfortably before reduction.
	h := highOrderFactor(m)
	patternHash := windowHash(pattern)
	textHash := windowHash(text[:m])

	var pos []int
	for i := 0; i <= n-m; i++ {
		if patternHash == textHash && equalAt(text, pattern, i) {
			pos = append(pos, i)
		}
		if i < n-m {
			textHash = rollHash(textHash, text[i], text[i+m], h)
		}
	}
	return pos
}

// highOrderFactor returns hashBase^(m-1) mod hashPrime, the weight of the
// byte leaving the window.
func highOrderFactor(m int) int64 {
	h := int64(1)
	for i := 0; i < m-1; i++ {
		h = (h * hashBase) % hashPrime
	}
	return h
}

// windowHash returns the polynomial hash of b.
func windowHash(b []byte) int64 {
	var hash int64
	for _, c := range b {
		hash = (hashBase*hash + int64(c)) % hashPrime
	}
	return hash
}

// rollHash removes out from the front of the window and appends in.
func rollHash(hash int64, out, in byte, h int64) int64 {
	hash = (hashBase*(hash-int64(out)*h) + int64(in)) % hashPrime
	if hash < 0 {
		hash += hashPrime
	}
	return hash
}

// equalAt reports whether pattern occurs in text at offset i.
func equalAt(text, pattern []byte, i int) bool {
	for j := range pattern {
		if text[i+j] != pattern[j] {
			return false
		}
	}
	return true
}
