// Package simd provides word-at-a-time byte scanning for the search engines.
//
// Memchr processes eight bytes per step using SWAR (SIMD Within A Register)
// arithmetic on uint64 words, so it runs on every platform without assembly.
// Features reports the vector extensions of the host CPU for benchmark
// reports.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Memchr is equivalent to bytes.IndexByte.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Detect a zero byte with (v - lo8) & ^v & hi8
//  4. Locate it with a trailing zero count
//
// Example:
//
//	haystack := []byte("hello world")
//	pos := simd.Memchr(haystack, 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)

	// Short inputs: byte loop has no setup cost
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		v := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if zero := (v - lo8) & ^v & hi8; zero != 0 {
			return i + bits.TrailingZeros64(zero)/8
		}
	}

	// Tail (0-7 bytes)
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
