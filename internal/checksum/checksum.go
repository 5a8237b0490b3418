// Package checksum computes the Schiavinato scheme's dual-path row and
// global integrity checks: Path A sums field elements directly (each
// share's word-share values on split, recovered IDs on recover); Path B sums
// polynomials and evaluates the result. The two must agree bit-exactly
// at every share number; disagreement signals corruption, never a
// legitimate state.
package checksum

import (
	"errors"

	"github.com/mrz1836/schiavinato-sss/internal/field"
	"github.com/mrz1836/schiavinato-sss/internal/poly"
)

// ErrRowSize is returned when the number of IDs isn't a multiple of 3
// (rows are fixed-size groups of three words).
var ErrRowSize = errors.New("checksum: id count must be a multiple of 3")

// RowChecks computes Path A's per-row checksum: for each contiguous
// group of three IDs, their sum mod field.Prime.
func RowChecks(ids []int) ([]int, error) {
	if len(ids)%3 != 0 {
		return nil, ErrRowSize
	}
	rows := len(ids) / 3
	out := make([]int, rows)
	for r := 0; r < rows; r++ {
		sum := 0
		for j := 0; j < 3; j++ {
			sum = field.Add(sum, ids[3*r+j])
		}
		out[r] = sum
	}
	return out, nil
}

// GlobalIntegrityCheck computes Path A's global checksum: the sum of
// all IDs mod field.Prime.
func GlobalIntegrityCheck(ids []int) int {
	sum := 0
	for _, id := range ids {
		sum = field.Add(sum, id)
	}
	return sum
}

// RowCheckPolynomials computes Path B's per-row checksum polynomials:
// for each contiguous group of three word polynomials, their
// coefficient-wise sum.
func RowCheckPolynomials(wordPolys []poly.Polynomial) ([]poly.Polynomial, error) {
	if len(wordPolys)%3 != 0 {
		return nil, ErrRowSize
	}
	rows := len(wordPolys) / 3
	out := make([]poly.Polynomial, rows)
	for r := 0; r < rows; r++ {
		sum, err := poly.Sum(wordPolys[3*r], wordPolys[3*r+1], wordPolys[3*r+2])
		if err != nil {
			return nil, err
		}
		out[r] = sum
	}
	return out, nil
}

// GlobalIntegrityCheckPolynomial computes Path B's global checksum
// polynomial: the coefficient-wise sum of every word polynomial.
func GlobalIntegrityCheckPolynomial(wordPolys []poly.Polynomial) (poly.Polynomial, error) {
	return poly.Sum(wordPolys...)
}
