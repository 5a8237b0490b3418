// Package zeroize provides byte buffers with best-effort memory locking
// that are zeroed on Destroy, scoped to this scheme's
// lifecycle: the word-ID buffers that must never be swapped to disk
// and must be zero by the time Split/Recover return.
package zeroize

// Buffer wraps a byte slice that Split/Recover use to stage secret
// material (e.g. a little-endian view of field-element coefficients)
// for the lifetime of a single call. Lock is best-effort: a platform
// without mlock support simply returns false and the buffer is used
// unlocked.
type Buffer struct {
	data   []byte
	locked bool
}

// NewBuffer allocates a Buffer of the given size and attempts to lock
// it in memory.
func NewBuffer(size int) *Buffer {
	b := &Buffer{data: make([]byte, size)}
	b.locked = mlock(b.data)
	return b
}

// Bytes returns the underlying slice.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Locked reports whether the underlying memory is mlocked.
func (b *Buffer) Locked() bool {
	return b.locked
}

// Destroy zeroes the buffer and releases the memory lock. Safe to call
// more than once.
func (b *Buffer) Destroy() {
	if b.data == nil {
		return
	}
	for i := range b.data {
		b.data[i] = 0
	}
	if b.locked {
		munlock(b.data)
		b.locked = false
	}
	b.data = nil
}
