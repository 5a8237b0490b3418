// Package rng provides the secure randomness the Schiavinato scheme
// needs: uniform field elements drawn via rejection sampling over
// 32-bit words, from an injected entropy capability rather than a
// package-level global.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"

	"github.com/mrz1836/schiavinato-sss/internal/field"
)

// ErrNoEntropy is returned when the entropy source fails to produce
// random bytes.
var ErrNoEntropy = errors.New("rng: entropy source unavailable")

// Source is the single capability the core consumes from its host: the
// ability to fill a buffer of 32-bit words with cryptographically
// secure bytes. Production callers should use CryptoSource (the
// default); tests may substitute a deterministic Source to make split
// and recover reproducible.
type Source interface {
	Fill(words []uint32) error
}

// CryptoSource is the production Source, backed by crypto/rand.
type CryptoSource struct {
	// Reader defaults to crypto/rand.Reader; tests may override it.
	Reader io.Reader
}

// NewCryptoSource returns a Source backed by crypto/rand.Reader.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{Reader: rand.Reader}
}

// Fill draws len(words)*4 cryptographically secure bytes and decodes
// them as big-endian uint32s.
func (c *CryptoSource) Fill(words []uint32) error {
	r := c.Reader
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, len(words)*4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return ErrNoEntropy
	}
	for i := range words {
		words[i] = binary.BigEndian.Uint32(buf[i*4 : i*4+4])
	}
	return nil
}

// UniformIntInclusive draws a single uniform value in [0, max] using
// rejection sampling over 32-bit words: limit = 2^32 - (2^32 mod
// (max+1)); redraw until word < limit; return word mod (max+1). This
// keeps the result free of modulo bias regardless of how max+1
// divides 2^32.
func UniformIntInclusive(src Source, max int) (int, error) {
	if max < 0 {
		return 0, errors.New("rng: max must be non-negative")
	}
	span := uint64(max) + 1
	limit := uint64(1)<<32 - (uint64(1)<<32)%span

	word := make([]uint32, 1)
	for {
		if err := src.Fill(word); err != nil {
			return 0, err
		}
		v := uint64(word[0])
		if v < limit {
			return int(v % span), nil
		}
	}
}

// FieldElement draws a uniform element of GF(2053), i.e.
// UniformIntInclusive(src, field.Prime-1).
func FieldElement(src Source) (int, error) {
	return UniformIntInclusive(src, field.Prime-1)
}
