// Package ctutil provides the constant-time comparison and memory
// zeroisation primitives the Schiavinato scheme requires for every
// checksum comparison during recovery: no branch taken on the way to
// the result may depend on secret content.
package ctutil

import (
	"crypto/subtle"
	"runtime"
)

// EqualField reports whether two field elements are equal, in constant
// time. Field elements are small non-negative ints; we compare them as
// int32 values via crypto/subtle.ConstantTimeEq rather than Go's
// built-in == so the comparison never short-circuits on value.
func EqualField(a, b int) bool {
	return subtle.ConstantTimeEq(int32(a), int32(b)) == 1
}

// EqualBytes reports whether two byte sequences are equal, in constant
// time, including when their lengths differ. crypto/subtle.ConstantTimeCompare
// requires equal-length inputs, so for the equal-length case we defer
// to it directly; for the unequal-length case we still walk every byte
// of the longer input (never short-circuiting on content) before
// folding the known length mismatch into the result, matching the
// "diff := len(a) XOR len(b); diff |= a[i] XOR b[i] ..." construction
// this scheme specifies for BIP39 checksum comparison.
func EqualBytes(a, b []byte) bool {
	if len(a) == len(b) {
		return subtle.ConstantTimeCompare(a, b) == 1
	}

	diff := len(a) ^ len(b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	for i := 0; i < maxLen; i++ {
		var ai, bi byte
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		diff |= int(ai ^ bi)
	}
	return diff == 0
}

// ZeroInts overwrites every element of s with 0. The runtime.KeepAlive
// call defeats dead-store elimination, so the zeroing survives even
// when the compiler can prove s is never read again.
func ZeroInts(s []int) {
	for i := range s {
		s[i] = 0
	}
	runtime.KeepAlive(s)
}

// ZeroBytes overwrites every element of s with 0, with the same
// optimizer-defeating guarantee as ZeroInts.
func ZeroBytes(s []byte) {
	for i := range s {
		s[i] = 0
	}
	runtime.KeepAlive(s)
}
