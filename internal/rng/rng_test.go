package rng

import (
	"testing"

	"github.com/mrz1836/schiavinato-sss/internal/field"
)

// sequenceSource replays a fixed sequence of 32-bit words; useful to
// exercise the rejection-sampling loop deterministically.
type sequenceSource struct {
	words []uint32
	pos   int
}

func (s *sequenceSource) Fill(words []uint32) error {
	for i := range words {
		if s.pos >= len(s.words) {
			s.pos = 0
		}
		words[i] = s.words[s.pos]
		s.pos++
	}
	return nil
}

func TestUniformIntInclusiveRange(t *testing.T) {
	src := NewCryptoSource()
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v, err := UniformIntInclusive(src, field.Prime-1)
		if err != nil {
			t.Fatalf("UniformIntInclusive: %v", err)
		}
		if v < 0 || v > field.Prime-1 {
			t.Fatalf("value %d out of range [0, %d]", v, field.Prime-1)
		}
		seen[v] = true
	}
	if len(seen) < 1000 {
		t.Errorf("expected broad coverage of the range, only saw %d distinct values", len(seen))
	}
}

func TestUniformIntInclusiveRejectsAboveLimit(t *testing.T) {
	// max = 2052 means span = 2053, which does not divide 2^32 evenly;
	// the rejection loop must skip the biased tail and use the next word.
	src := &sequenceSource{words: []uint32{0xFFFFFFFF, 7}}
	v, err := UniformIntInclusive(src, field.Prime-1)
	if err != nil {
		t.Fatalf("UniformIntInclusive: %v", err)
	}
	if v != 7 {
		t.Fatalf("expected rejection of the biased first word, got %d", v)
	}
}

func TestFieldElementMatchesPrimeRange(t *testing.T) {
	src := NewCryptoSource()
	v, err := FieldElement(src)
	if err != nil {
		t.Fatalf("FieldElement: %v", err)
	}
	if v < 0 || v >= field.Prime {
		t.Fatalf("FieldElement() = %d out of range", v)
	}
}
