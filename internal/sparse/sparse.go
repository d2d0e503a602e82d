// Package sparse provides a sparse set of byte values.
//
// A sparse set supports O(1) insertion, membership testing and clearing while
// keeping a dense list of its members in insertion order. The selector uses
// it to count the distinct bytes of a text sample without scanning a
// 256-entry histogram afterwards.
package sparse

// ByteSet is a set of byte values.
//
// The zero value is an empty set ready to use. A ByteSet is not safe for
// concurrent mutation.
type ByteSet struct {
	sparse [256]uint16 // value -> index in dense
	dense  [256]byte   // members in insertion order
	size   uint16
}

// Insert adds b to the set and reports whether it was not already present.
func (s *ByteSet) Insert(b byte) bool {
	if s.Contains(b) {
		return false
	}
	s.dense[s.size] = b
	s.sparse[b] = s.size
	s.size++
	return true
}

// InsertAll adds every byte of p and returns the number of new members.
func (s *ByteSet) InsertAll(p []byte) int {
	added := 0
	for _, b := range p {
		if s.Insert(b) {
			added++
		}
	}
	return added
}

// Contains reports whether b is in the set.
func (s *ByteSet) Contains(b byte) bool {
	idx := s.sparse[b]
	return idx < s.size && s.dense[idx] == b
}

// Clear removes all members in O(1) time.
func (s *ByteSet) Clear() {
	s.size = 0
}

// Len returns the number of members.
func (s *ByteSet) Len() int {
	return int(s.size)
}

// IsEmpty reports whether the set has no members.
func (s *ByteSet) IsEmpty() bool {
	return s.size == 0
}

// Full reports whether all 256 byte values are members.
func (s *ByteSet) Full() bool {
	return s.size == 256
}

// Values returns the members in insertion order.
// The returned slice is valid until the next mutation.
func (s *ByteSet) Values() []byte {
	return s.dense[:s.size]
}
