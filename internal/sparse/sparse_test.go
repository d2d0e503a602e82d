package sparse

import (
	"bytes"
	"testing"
)

func TestByteSet_Basic(t *testing.T) {
	var s ByteSet

	if !s.IsEmpty() {
		t.Error("zero set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}
	if s.Len() != 1 {
		t.Errorf("len should be 1, got %d", s.Len())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestByteSet_InsertionOrder(t *testing.T) {
	var s ByteSet
	s.Insert('e')
	s.Insert('b')
	s.Insert('h')
	s.Insert('a')

	if got := s.Values(); !bytes.Equal(got, []byte("ebha")) {
		t.Errorf("Values() = %q, want %q", got, "ebha")
	}
}

// TestByteSet_StaleSparseEntry checks that entries left behind by Clear are
// not mistaken for members.
func TestByteSet_StaleSparseEntry(t *testing.T) {
	var s ByteSet
	s.Insert('x')
	s.Insert('y')
	s.Clear()

	s.Insert('y') // dense[0] = 'y'; sparse['x'] still 0
	if s.Contains('x') {
		t.Error("stale sparse entry reported as member")
	}
	if !s.Contains('y') {
		t.Error("set should contain 'y'")
	}
}

func TestByteSet_InsertAll(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"single", "a", 1},
		{"repeated", "aaaa", 1},
		{"dna", "ACGTACGTTTGA", 4},
		{"pangram", "the quick brown fox jumps over the lazy dog", 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s ByteSet
			if got := s.InsertAll([]byte(tt.input)); got != tt.want {
				t.Errorf("InsertAll(%q) = %d, want %d", tt.input, got, tt.want)
			}
			if s.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.want)
			}
		})
	}
}

func TestByteSet_Full(t *testing.T) {
	var s ByteSet
	for i := 0; i < 256; i++ {
		if s.Full() {
			t.Fatalf("set reported full after %d inserts", i)
		}
		s.Insert(byte(i))
	}
	if !s.Full() {
		t.Error("set should be full after inserting every byte value")
	}
	if s.Len() != 256 {
		t.Errorf("Len() = %d, want 256", s.Len())
	}
}
