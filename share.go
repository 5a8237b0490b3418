// Package schiavinato implements the Schiavinato secret-sharing
// scheme: splitting a BIP39 mnemonic into n shares over any k of which
// reconstruct it, using polynomial secret sharing over GF(2053). See
// internal/field, internal/poly, internal/lagrange, internal/bip39,
// and internal/checksum for the arithmetic and BIP39 building blocks
// this package composes.
package schiavinato

import (
	"encoding/json"

	"github.com/mrz1836/schiavinato-sss/internal/bip39"
	"gopkg.in/yaml.v3"
)

// Share is one recipient's point on every secret polynomial plus its
// per-row and global checksum coordinates, tagged with a share number.
// It is pure data: safe to copy, marshal, and compare by value.
type Share struct {
	ShareNumber               int   `json:"shareNumber" yaml:"shareNumber"`
	WordShares                []int `json:"wordShares" yaml:"wordShares"`
	ChecksumShares            []int `json:"checksumShares" yaml:"checksumShares"`
	GlobalIntegrityCheckShare int   `json:"globalIntegrityCheckShare" yaml:"globalIntegrityCheckShare"`
}

// WordCount returns the mnemonic length this share was split from.
func (s Share) WordCount() int {
	return len(s.WordShares)
}

// DisplayWordShares renders each word-share coordinate the way a human
// copying shares onto paper would see it: BIP39 words where the value
// falls in the wordlist range, zero-padded decimal sentinels otherwise.
func (s Share) DisplayWordShares() ([]string, error) {
	out := make([]string, len(s.WordShares))
	for i, v := range s.WordShares {
		d, err := bip39.IDToDisplay(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// MarshalShareJSON renders a share as indented JSON, for a single
// share written to its own file or line of output.
func MarshalShareJSON(s Share) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// UnmarshalShareJSON parses a share back out of JSON produced by
// MarshalShareJSON (or any compatible encoder).
func UnmarshalShareJSON(data []byte) (Share, error) {
	var s Share
	err := json.Unmarshal(data, &s)
	return s, err
}

// MarshalShareYAML renders a share as YAML, for recipients who prefer
// a human-editable share file over JSON.
func MarshalShareYAML(s Share) ([]byte, error) {
	return yaml.Marshal(s)
}

// UnmarshalShareYAML parses a share back out of YAML produced by
// MarshalShareYAML.
func UnmarshalShareYAML(data []byte) (Share, error) {
	var s Share
	err := yaml.Unmarshal(data, &s)
	return s, err
}
