package engine

import (
	"math/rand"
	"strings"
	"testing"
)

func benchmarkMatchers(b *testing.B, text, pattern []byte) {
	for _, a := range Algorithms() {
		m, _ := New(a)
		b.Run(a.String(), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = m.FindAll(text, pattern)
			}
		})
	}
}

func BenchmarkEnglish(b *testing.B) {
	text := []byte(strings.Repeat("It was the best of times, it was the worst of times. ", 2000))
	b.Run("short", func(b *testing.B) { benchmarkMatchers(b, text, []byte("worst")) })
	b.Run("medium", func(b *testing.B) { benchmarkMatchers(b, text, []byte("the worst of times")) })
	b.Run("absent", func(b *testing.B) { benchmarkMatchers(b, text, []byte("age of wisdom, it was")) })
}

func BenchmarkDNA(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	text := randomBytes(rng, 1<<20, "ACGT")
	b.Run("pattern_8", func(b *testing.B) { benchmarkMatchers(b, text, []byte("ACGTTGCA")) })
	b.Run("pattern_32", func(b *testing.B) { benchmarkMatchers(b, text, text[5000:5032]) })
}

func BenchmarkRepetitive(b *testing.B) {
	text := []byte(strings.Repeat("a", 1<<16))
	benchmarkMatchers(b, text, []byte(strings.Repeat("a", 15)+"b"))
}
