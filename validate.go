package schiavinato

import (
	"fmt"

	"github.com/mrz1836/schiavinato-sss/internal/bip39"
)

// validateShareSet performs the structural preconditions recover
// requires before any interpolation is attempted: enough shares,
// distinct and in-range share numbers, and every field consistent in
// length and range across the whole set. Returns a non-empty message
// describing the first violation found, or "" if the set is well
// formed.
func validateShareSet(shares []Share, wordCount int) string {
	if wordCount != 12 && wordCount != 24 {
		return fmt.Sprintf("unsupported word count %d: must be 12 or 24", wordCount)
	}
	if len(shares) < 2 {
		return fmt.Sprintf("at least 2 shares are required, got %d", len(shares))
	}

	rowCount := wordCount / 3
	seen := make(map[int]bool, len(shares))

	for idx, s := range shares {
		if s.ShareNumber < 1 || s.ShareNumber > 2052 {
			return fmt.Sprintf("share %d: shareNumber %d out of range [1, 2052]", idx, s.ShareNumber)
		}
		if seen[s.ShareNumber] {
			return fmt.Sprintf("duplicate share numbers: %d appears more than once", s.ShareNumber)
		}
		seen[s.ShareNumber] = true

		if len(s.WordShares) != wordCount {
			return fmt.Sprintf("share %d: wordShares length %d, want %d", idx, len(s.WordShares), wordCount)
		}
		if len(s.ChecksumShares) != rowCount {
			return fmt.Sprintf("share %d: checksumShares length %d, want %d", idx, len(s.ChecksumShares), rowCount)
		}

		for _, v := range s.WordShares {
			if !bip39.IsValidShareID(v) {
				return fmt.Sprintf("share %d: wordShares value %d out of range [0, 2052]", idx, v)
			}
		}
		for _, v := range s.ChecksumShares {
			if !bip39.IsValidShareID(v) {
				return fmt.Sprintf("share %d: checksumShares value %d out of range [0, 2052]", idx, v)
			}
		}
		if !bip39.IsValidShareID(s.GlobalIntegrityCheckShare) {
			return fmt.Sprintf("share %d: globalIntegrityCheckShare %d out of range [0, 2052]", idx, s.GlobalIntegrityCheckShare)
		}
	}

	return ""
}

// validateShareCount checks the (k, n) parameters split accepts.
func validateShareCount(k, n int) string {
	if k < 2 {
		return fmt.Sprintf("k must be at least 2, got %d", k)
	}
	if k > n {
		return fmt.Sprintf("k (%d) must not exceed n (%d)", k, n)
	}
	if n >= 2053 {
		return fmt.Sprintf("n must be less than 2053, got %d", n)
	}
	return ""
}
