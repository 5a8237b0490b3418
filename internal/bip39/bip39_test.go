package bip39

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	tyler "github.com/tyler-smith/go-bip39"

	"github.com/mrz1836/schiavinato-sss/internal/rng"
)

func TestWordlistChecksumMatchesEmbeddedText(t *testing.T) {
	sum := sha256.Sum256([]byte(wordlistText))
	if got := hex.EncodeToString(sum[:]); got != wordlistChecksum {
		t.Fatalf("sha256(wordlistText) = %s, want %s", got, wordlistChecksum)
	}
}

func TestWordlistRoundTrip(t *testing.T) {
	for id := 1; id <= 2048; id++ {
		w := IDToWord(id)
		got, err := WordToID(w)
		if err != nil {
			t.Fatalf("WordToID(%q): %v", w, err)
		}
		if got != id {
			t.Fatalf("WordToID(IDToWord(%d)) = %d, want %d", id, got, id)
		}
	}
}

func TestWordToIDUnknown(t *testing.T) {
	if _, err := WordToID("notaword"); err != ErrUnknownWord {
		t.Fatalf("WordToID(bad word) error = %v, want ErrUnknownWord", err)
	}
}

func TestIsValidShareID(t *testing.T) {
	cases := []struct {
		v    int
		want bool
	}{
		{-1, false}, {0, true}, {1, true}, {2048, true},
		{2049, true}, {2052, true}, {2053, false}, {9999, false},
	}
	for _, c := range cases {
		if got := IsValidShareID(c.v); got != c.want {
			t.Errorf("IsValidShareID(%d) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestIDToDisplay(t *testing.T) {
	w, err := IDToDisplay(1)
	if err != nil || w != "abandon" {
		t.Fatalf("IDToDisplay(1) = %q, %v, want abandon, nil", w, err)
	}
	s, err := IDToDisplay(0)
	if err != nil || s != "0000" {
		t.Fatalf("IDToDisplay(0) = %q, %v, want 0000, nil", s, err)
	}
	s, err = IDToDisplay(2052)
	if err != nil || s != "2052" {
		t.Fatalf("IDToDisplay(2052) = %q, %v, want 2052, nil", s, err)
	}
	if _, err := IDToDisplay(2053); err == nil {
		t.Fatal("IDToDisplay(2053) should error")
	}
}

func TestNormalizeStripsListMarkersAndCommas(t *testing.T) {
	in := "1. abandon\n2) ability,  able\n- about"
	got := Normalize(in)
	want := "abandon ability able about"
	if got != want {
		t.Fatalf("Normalize = %q, want %q", got, want)
	}
}

// TestValidateMnemonicAgainstReferenceVectors cross-validates this
// package's from-scratch checksum logic against the widely used
// tyler-smith/go-bip39 implementation: every mnemonic the reference
// library generates must validate here, and vice versa.
func TestValidateMnemonicAgainstReferenceVectors(t *testing.T) {
	for _, bits := range []int{128, 256} {
		entropy, err := tyler.NewEntropy(bits)
		if err != nil {
			t.Fatalf("NewEntropy: %v", err)
		}
		m, err := tyler.NewMnemonic(entropy)
		if err != nil {
			t.Fatalf("NewMnemonic: %v", err)
		}
		if err := ValidateMnemonic(m); err != nil {
			t.Fatalf("ValidateMnemonic rejected reference mnemonic %q: %v", m, err)
		}
		if !tyler.IsMnemonicValid(m) {
			t.Fatalf("reference library rejected its own mnemonic %q", m)
		}
	}
}

func TestValidateMnemonicBadChecksum(t *testing.T) {
	// Flip the last word of a valid mnemonic to something that still
	// parses as BIP39 words but almost certainly breaks the checksum.
	entropy, _ := tyler.NewEntropy(128)
	m, _ := tyler.NewMnemonic(entropy)
	words := strings.Fields(m)
	last := words[len(words)-1]
	replacement := "zoo"
	if last == replacement {
		replacement = "abandon"
	}
	words[len(words)-1] = replacement
	tampered := strings.Join(words, " ")

	err := ValidateMnemonic(tampered)
	if err == nil {
		t.Fatal("ValidateMnemonic accepted a tampered mnemonic")
	}
}

func TestValidateMnemonicBadWordCount(t *testing.T) {
	err := ValidateMnemonic("abandon abandon abandon")
	if err != ErrInvalidWordCount {
		t.Fatalf("error = %v, want ErrInvalidWordCount", err)
	}
}

func TestValidateMnemonicUnknownWord(t *testing.T) {
	words := make([]string, 12)
	for i := range words {
		words[i] = "abandon"
	}
	words[5] = "notarealword"
	err := ValidateMnemonic(strings.Join(words, " "))
	if err != ErrUnknownWord {
		t.Fatalf("error = %v, want ErrUnknownWord", err)
	}
}

// fixedSource is a deterministic rng.Source for reproducible tests.
type fixedSource struct{ seed uint32 }

func (f *fixedSource) Fill(words []uint32) error {
	for i := range words {
		f.seed = f.seed*1664525 + 1013904223
		words[i] = f.seed
	}
	return nil
}

func TestGenerateMnemonicValidatesAndRoundTrips(t *testing.T) {
	for _, n := range []int{12, 24} {
		src := &fixedSource{seed: uint32(n) + 1}
		m, err := GenerateMnemonic(src, n)
		if err != nil {
			t.Fatalf("GenerateMnemonic(%d): %v", n, err)
		}
		if len(strings.Fields(m)) != n {
			t.Fatalf("GenerateMnemonic(%d) word count = %d", n, len(strings.Fields(m)))
		}
		if err := ValidateMnemonic(m); err != nil {
			t.Fatalf("GenerateMnemonic(%d) produced invalid mnemonic: %v", n, err)
		}
		if !tyler.IsMnemonicValid(m) {
			t.Fatalf("GenerateMnemonic(%d) produced a mnemonic the reference library rejects", n)
		}
	}
}

func TestGenerateMnemonicRejectsUnsupportedCount(t *testing.T) {
	src := rng.NewCryptoSource()
	if _, err := GenerateMnemonic(src, 15); err != ErrUnsupportedGenerateCount {
		t.Fatalf("error = %v, want ErrUnsupportedGenerateCount", err)
	}
}

func TestSuggestWordFindsCloseMatch(t *testing.T) {
	if got := SuggestWord("abandn"); got != "abandon" {
		t.Fatalf("SuggestWord(abandn) = %q, want abandon", got)
	}
}

func TestSuggestWordNoMatch(t *testing.T) {
	if got := SuggestWord("zzzzzzzzzzzzzzzzzzzz"); got != "" {
		t.Fatalf("SuggestWord(garbage) = %q, want empty", got)
	}
}

func TestDetectTyposReportsOnlyUnknownWords(t *testing.T) {
	words := make([]string, 12)
	for i := range words {
		words[i] = "abandon"
	}
	words[3] = "abandn"
	typos := DetectTypos(strings.Join(words, " "))
	if len(typos) != 1 {
		t.Fatalf("len(typos) = %d, want 1", len(typos))
	}
	if typos[0].Index != 3 || typos[0].Suggestion != "abandon" {
		t.Fatalf("typos[0] = %+v, want Index=3 Suggestion=abandon", typos[0])
	}
}
