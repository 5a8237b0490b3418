package schiavinato

// This file holds the root-level API: the entry points a caller
// reaches for without needing to know any internal package by name.

import (
	"github.com/mrz1836/schiavinato-sss/internal/bip39"
	"github.com/mrz1836/schiavinato-sss/internal/lagrange"
	"github.com/mrz1836/schiavinato-sss/internal/rng"
)

// ValidateBip39Mnemonic reports whether m is a structurally valid
// BIP39 mnemonic: 12, 15, 18, 21, or 24 space-separated words from the
// embedded wordlist, with a correct SHA-256-derived checksum.
func ValidateBip39Mnemonic(m string) bool {
	return bip39.ValidateMnemonic(m) == nil
}

// GenerateValidMnemonic draws fresh entropy from src and returns a
// valid BIP39 mnemonic of the requested length. Only 12 and 24 are
// supported, matching Split/Recover's scope.
func GenerateValidMnemonic(src rng.Source, wordCount int) (string, error) {
	return bip39.GenerateMnemonic(src, wordCount)
}

// ComputeLagrangeMultipliers returns the vector γ_j = Π_{m≠j}
// (−x_m)/(x_j−x_m) for a chosen set of share numbers, with no
// dependence on the shares' y-values. Exposed so a manual, pencil-
// and-paper recovery can precompute γ once for a chosen share subset
// and then reconstruct each secret with k multiplications and
// additions.
func ComputeLagrangeMultipliers(shareNumbers []int) ([]int, error) {
	return lagrange.Multipliers(shareNumbers)
}
