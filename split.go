package schiavinato

import (
	"log/slog"
	"strings"

	"github.com/mrz1836/schiavinato-sss/internal/bip39"
	"github.com/mrz1836/schiavinato-sss/internal/checksum"
	"github.com/mrz1836/schiavinato-sss/internal/engcfg"
	"github.com/mrz1836/schiavinato-sss/internal/poly"
	"github.com/mrz1836/schiavinato-sss/internal/rng"
	schiaerr "github.com/mrz1836/schiavinato-sss/pkg/errors"
)

// Split validates mnemonic and (k, n), builds one random polynomial
// per word, evaluates all n shares, and cross-checks every checksum
// share against an independent polynomial-based computation (Path A
// vs. Path B) before returning. Any disagreement between the two
// paths aborts the call: it proves the arithmetic itself is
// miscomputing, not that the input was bad.
//
// Every polynomial and the ID buffer built along the way are zeroised
// before Split returns, on every exit path including error returns.
func Split(mnemonic string, k, n int, src rng.Source, cfg *engcfg.Config) ([]Share, error) {
	if cfg == nil {
		cfg = engcfg.Defaults()
	}
	logger := cfg.Log()

	if msg := validateShareCount(k, n); msg != "" {
		return nil, schiaerr.WithDetails(schiaerr.ErrInvalidShareCount, map[string]string{"reason": msg})
	}

	normalized := bip39.Normalize(mnemonic)
	words := strings.Fields(normalized)
	if len(words) != 12 && len(words) != 24 {
		return nil, schiaerr.WithDetails(schiaerr.ErrInvalidMnemonic,
			map[string]string{"reason": "word count must be 12 or 24"})
	}
	if err := bip39.ValidateMnemonic(normalized); err != nil {
		return nil, schiaerr.Wrap(schiaerr.ErrInvalidMnemonic, "%v", err)
	}

	idBuf := newSecretInts(len(words))
	defer idBuf.destroy()
	for i, w := range words {
		id, err := bip39.WordToID(w)
		if err != nil {
			return nil, schiaerr.Wrap(schiaerr.ErrInvalidMnemonic, "%v", err)
		}
		idBuf.set(i, id)
	}
	ids := idBuf.slice()
	defer zeroInts(ids)

	wordPolys := make([]poly.Polynomial, len(ids))
	defer zeroPolys(wordPolys)
	for i, id := range ids {
		p, err := poly.Random(src, id, k-1)
		if err != nil {
			return nil, schiaerr.Wrap(schiaerr.ErrEntropySourceUnavailable, "%v", err)
		}
		wordPolys[i] = p
	}

	rowPolys, err := checksum.RowCheckPolynomials(wordPolys)
	if err != nil {
		return nil, schiaerr.Wrap(schiaerr.ErrGeneral, "building row-check polynomials: %v", err)
	}
	defer zeroPolys(rowPolys)

	globalPoly, err := checksum.GlobalIntegrityCheckPolynomial(wordPolys)
	if err != nil {
		return nil, schiaerr.Wrap(schiaerr.ErrGeneral, "building global-check polynomial: %v", err)
	}
	defer globalPoly.Zero()

	shares := make([]Share, n)
	for x := 1; x <= n; x++ {
		wordShares := make([]int, len(wordPolys))
		for i, p := range wordPolys {
			wordShares[i] = p.Evaluate(x)
		}

		pathARows, err := checksum.RowChecks(wordShares)
		if err != nil {
			return nil, schiaerr.Wrap(schiaerr.ErrGeneral, "computing row checks: %v", err)
		}
		checksumShares := make([]int, len(rowPolys))
		for r, rp := range rowPolys {
			pathB := rp.Evaluate(x)
			if pathB != pathARows[r] {
				logger.ErrorAttrs("row path mismatch",
					slog.Int("shareNumber", x), slog.Int("row", r),
					slog.Int("pathA", pathARows[r]), slog.Int("pathB", pathB))
				global.pathMismatches.Add(1)
				return nil, schiaerr.WithDetails(schiaerr.ErrRowPathMismatch, map[string]string{
					"shareNumber": itoa(x), "row": itoa(r),
				})
			}
			checksumShares[r] = pathB
		}

		pathAGlobal := checksum.GlobalIntegrityCheck(wordShares)
		pathBGlobal := globalPoly.Evaluate(x)
		if pathAGlobal != pathBGlobal {
			logger.ErrorAttrs("global path mismatch",
				slog.Int("shareNumber", x), slog.Int("pathA", pathAGlobal), slog.Int("pathB", pathBGlobal))
			global.pathMismatches.Add(1)
			return nil, schiaerr.WithDetails(schiaerr.ErrGlobalPathMismatch, map[string]string{
				"shareNumber": itoa(x),
			})
		}

		shares[x-1] = Share{
			ShareNumber:               x,
			WordShares:                wordShares,
			ChecksumShares:            checksumShares,
			GlobalIntegrityCheckShare: pathAGlobal,
		}
	}

	logger.DebugAttrs("split complete", slog.Int("k", k), slog.Int("n", n), slog.Int("wordCount", len(words)))
	global.splitsPerformed.Add(1)
	return shares, nil
}

func zeroInts(s []int) {
	for i := range s {
		s[i] = 0
	}
}

func zeroPolys(ps []poly.Polynomial) {
	for i := range ps {
		ps[i].Zero()
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
