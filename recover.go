package schiavinato

import (
	"log/slog"
	"strings"

	"github.com/mrz1836/schiavinato-sss/internal/bip39"
	"github.com/mrz1836/schiavinato-sss/internal/checksum"
	"github.com/mrz1836/schiavinato-sss/internal/ctutil"
	"github.com/mrz1836/schiavinato-sss/internal/engcfg"
	"github.com/mrz1836/schiavinato-sss/internal/lagrange"
)

// RecoveryErrors is the detailed diagnostic taxonomy Recover fills in
// on any failure. Every slice is indexed by row or word position so a
// caller — typically a human cross-checking shares on paper — can see
// exactly where the disagreement is, without Recover ever printing a
// recovered secret value.
type RecoveryErrors struct {
	// Row lists row indices where the recomputed Path A checksum
	// disagreed with the interpolated Path B value.
	Row []int
	// Global is true if the global integrity check disagreed.
	Global bool
	// Bip39 is true if the recovered mnemonic failed its own BIP39
	// checksum.
	Bip39 bool
	// Generic holds a human-readable message for structural failures
	// (too few shares, duplicate share numbers, out-of-range values)
	// detected before interpolation is attempted, for interpolation
	// errors, and for a recovered word ID outside the BIP39 range.
	Generic string
	// RowPathMismatch duplicates Row for API parity with the
	// checksum package's Path A/Path B naming.
	RowPathMismatch []int
	// GlobalPathMismatch duplicates Global for the same reason.
	GlobalPathMismatch bool
}

// RecoveryResult is Recover's return value. Recover never returns an
// error: every failure mode surfaces as a field here. Recover stops at
// the first failing stage (structural validation, interpolation, path
// checks, BIP39 range, BIP39 checksum); within the path checks every
// mismatching row is listed, while structural validation reports only
// the first violation found.
type RecoveryResult struct {
	Mnemonic string
	Success  bool
	Errors   RecoveryErrors
}

// Recover reconstructs the original mnemonic from shares via Lagrange
// interpolation at x=0, cross-checking the interpolated checksum
// coordinates (Path B) against a Path A recomputation over the
// recovered word IDs. wordCount must be 12 or 24 and must match every
// share's word-share length.
func Recover(shares []Share, wordCount int, cfg *engcfg.Config) RecoveryResult {
	if cfg == nil {
		cfg = engcfg.Defaults()
	}
	logger := cfg.Log()
	global.recoveriesAttempted.Add(1)

	if msg := validateShareSet(shares, wordCount); msg != "" {
		logger.ErrorAttrs("structural validation failed", slog.String("reason", msg))
		return RecoveryResult{Errors: RecoveryErrors{Generic: msg}}
	}

	points := func(get func(Share) int) []lagrange.Point {
		pts := make([]lagrange.Point, len(shares))
		for i, s := range shares {
			pts[i] = lagrange.Point{X: s.ShareNumber, Y: get(s)}
		}
		return pts
	}

	idBuf := newSecretInts(wordCount)
	defer idBuf.destroy()
	for i := 0; i < wordCount; i++ {
		idx := i
		v, err := lagrange.InterpolateAtZero(points(func(s Share) int { return s.WordShares[idx] }))
		if err != nil {
			logger.ErrorAttrs("interpolating word share failed", slog.Int("word", i), slog.String("error", err.Error()))
			return RecoveryResult{Errors: RecoveryErrors{Generic: "interpolating word " + itoa(i) + ": " + err.Error()}}
		}
		idBuf.set(i, v)
	}
	recoveredIDs := idBuf.slice()
	defer zeroInts(recoveredIDs)

	rowCount := wordCount / 3
	recoveredRow := make([]int, rowCount)
	defer zeroInts(recoveredRow)
	for r := 0; r < rowCount; r++ {
		idx := r
		v, err := lagrange.InterpolateAtZero(points(func(s Share) int { return s.ChecksumShares[idx] }))
		if err != nil {
			logger.ErrorAttrs("interpolating row checksum failed", slog.Int("row", r), slog.String("error", err.Error()))
			return RecoveryResult{Errors: RecoveryErrors{Generic: "interpolating row " + itoa(r) + ": " + err.Error()}}
		}
		recoveredRow[r] = v
	}

	globalHolder := make([]int, 1)
	defer zeroInts(globalHolder)
	v, err := lagrange.InterpolateAtZero(points(func(s Share) int { return s.GlobalIntegrityCheckShare }))
	if err != nil {
		logger.ErrorAttrs("interpolating global check failed", slog.String("error", err.Error()))
		return RecoveryResult{Errors: RecoveryErrors{Generic: "interpolating global integrity check: " + err.Error()}}
	}
	globalHolder[0] = v
	recoveredGlobal := globalHolder[0]

	pathARow, err := checksum.RowChecks(recoveredIDs)
	if err != nil {
		return RecoveryResult{Errors: RecoveryErrors{Generic: err.Error()}}
	}
	pathAGlobal := checksum.GlobalIntegrityCheck(recoveredIDs)

	var errs RecoveryErrors
	for r := range recoveredRow {
		if !ctutil.EqualField(recoveredRow[r], pathARow[r]) {
			errs.Row = append(errs.Row, r)
			errs.RowPathMismatch = append(errs.RowPathMismatch, r)
		}
	}
	if !ctutil.EqualField(recoveredGlobal, pathAGlobal) {
		errs.Global = true
		errs.GlobalPathMismatch = true
	}

	if len(errs.Row) > 0 || errs.Global {
		global.pathMismatches.Add(1)
		logger.ErrorAttrs("recover: path mismatch", slog.Int("rowMismatches", len(errs.Row)), slog.Bool("globalMismatch", errs.Global))
		return RecoveryResult{Errors: errs}
	}

	for i, id := range recoveredIDs {
		if !bip39.IsBip39ID(id) {
			errs.Generic = "recovered word " + itoa(i) + " is outside the BIP39 range"
			return RecoveryResult{Errors: errs}
		}
	}

	words := make([]string, wordCount)
	for i, id := range recoveredIDs {
		words[i] = bip39.IDToWord(id)
	}
	mnemonic := strings.Join(words, " ")

	if cfg.StrictValidation {
		if err := bip39.ValidateMnemonic(mnemonic); err != nil {
			errs.Bip39 = true
			return RecoveryResult{Mnemonic: mnemonic, Errors: errs}
		}
	}

	result := RecoveryResult{Mnemonic: mnemonic, Success: true, Errors: errs}
	global.recoveriesSucceeded.Add(1)
	logger.DebugAttrs("recover complete", slog.Int("wordCount", wordCount))
	return result
}
