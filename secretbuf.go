package schiavinato

import (
	"encoding/binary"

	"github.com/mrz1836/schiavinato-sss/internal/zeroize"
)

// secretInts is a fixed-length slice of field elements (BIP39 word IDs
// or interpolated coordinates) backed by an mlocked zeroize.Buffer
// instead of a plain Go slice, for the two buffers that hold a
// recovered or about-to-be-split secret mnemonic's word IDs directly.
// Every field element fits in 2 bytes: the field modulus is 2053.
type secretInts struct {
	buf *zeroize.Buffer
	n   int
}

// newSecretInts allocates a locked buffer for n field elements.
func newSecretInts(n int) *secretInts {
	return &secretInts{buf: zeroize.NewBuffer(n * 2), n: n}
}

func (s *secretInts) set(i, v int) {
	binary.LittleEndian.PutUint16(s.buf.Bytes()[i*2:], uint16(v))
}

func (s *secretInts) get(i int) int {
	return int(binary.LittleEndian.Uint16(s.buf.Bytes()[i*2:]))
}

// slice copies the buffer out into a plain []int for callers (e.g.
// checksum.RowChecks) that need a contiguous slice. The copy is the
// caller's responsibility to zero; destroy() only covers the locked
// backing buffer.
func (s *secretInts) slice() []int {
	out := make([]int, s.n)
	for i := range out {
		out[i] = s.get(i)
	}
	return out
}

// destroy zeroes and unlocks the backing buffer. Safe to call once.
func (s *secretInts) destroy() {
	s.buf.Destroy()
}
