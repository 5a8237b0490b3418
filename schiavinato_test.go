package schiavinato

import (
	"strings"
	"testing"

	"github.com/mrz1836/schiavinato-sss/internal/rng"
)

func TestValidateBip39Mnemonic(t *testing.T) {
	if !ValidateBip39Mnemonic(testMnemonic12) {
		t.Fatal("ValidateBip39Mnemonic rejected a known-good mnemonic")
	}
	words := strings.Fields(testMnemonic12)
	words[0] = "zoo"
	if ValidateBip39Mnemonic(strings.Join(words, " ")) {
		t.Fatal("ValidateBip39Mnemonic accepted a tampered mnemonic")
	}
}

func TestGenerateValidMnemonic(t *testing.T) {
	src := rng.NewCryptoSource()
	m, err := GenerateValidMnemonic(src, 24)
	if err != nil {
		t.Fatalf("GenerateValidMnemonic: %v", err)
	}
	if len(strings.Fields(m)) != 24 {
		t.Fatalf("word count = %d, want 24", len(strings.Fields(m)))
	}
	if !ValidateBip39Mnemonic(m) {
		t.Fatal("generated mnemonic failed its own validation")
	}
}

func TestComputeLagrangeMultipliers(t *testing.T) {
	gammas, err := ComputeLagrangeMultipliers([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("ComputeLagrangeMultipliers: %v", err)
	}
	if len(gammas) != 3 {
		t.Fatalf("len(gammas) = %d, want 3", len(gammas))
	}
}

func TestComputeLagrangeMultipliersErrors(t *testing.T) {
	if _, err := ComputeLagrangeMultipliers([]int{1}); err == nil {
		t.Fatal("expected error for fewer than 2 share numbers")
	}
	if _, err := ComputeLagrangeMultipliers([]int{0, 1}); err == nil {
		t.Fatal("expected error for a zero share number")
	}
	if _, err := ComputeLagrangeMultipliers([]int{1, 1}); err == nil {
		t.Fatal("expected error for duplicate share numbers")
	}
}
