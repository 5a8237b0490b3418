// Package lagrange implements Lagrange interpolation at x=0 over
// GF(2053), the reconstruction step for both word coordinates and
// checksum coordinates during recovery.
package lagrange

import (
	"errors"

	"github.com/mrz1836/schiavinato-sss/internal/field"
)

// Errors returned by Multipliers and InterpolateAtZero.
var (
	ErrTooFewShares         = errors.New("lagrange: need at least 2 share numbers")
	ErrZeroShareNumber      = errors.New("lagrange: share number must be non-zero")
	ErrDuplicateShareNumber = errors.New("lagrange: duplicate share number")
)

// Point is one (x, y) sample of a polynomial.
type Point struct {
	X int
	Y int
}

// Multipliers returns the Lagrange weight vector γ_j = Π_{m≠j}
// (-x_m)/(x_j-x_m) for the given share-number set, with no dependence
// on y. Precomputing these lets a human reconstruct a secret with k
// multiplications and additions once the share-number set is fixed.
func Multipliers(shareNumbers []int) ([]int, error) {
	if len(shareNumbers) < 2 {
		return nil, ErrTooFewShares
	}

	seen := make(map[int]bool, len(shareNumbers))
	for _, x := range shareNumbers {
		if x == 0 {
			return nil, ErrZeroShareNumber
		}
		if seen[x] {
			return nil, ErrDuplicateShareNumber
		}
		seen[x] = true
	}

	gammas := make([]int, len(shareNumbers))
	for j, xj := range shareNumbers {
		gamma := 1
		for m, xm := range shareNumbers {
			if m == j {
				continue
			}
			denom := field.Sub(xj, xm)
			inv, err := field.Inv(denom)
			if err != nil {
				// Unreachable: denom is zero only for duplicate
				// share numbers, already rejected above.
				return nil, err
			}
			numer := field.Sub(0, xm)
			gamma = field.Mul(gamma, field.Mul(numer, inv))
		}
		gammas[j] = gamma
	}
	return gammas, nil
}

// InterpolateAtZero returns Σ_j y_j·γ_j, the value at x=0 of the unique
// minimal-degree polynomial passing through the given distinct,
// non-zero-x points.
func InterpolateAtZero(points []Point) (int, error) {
	shareNumbers := make([]int, len(points))
	for i, p := range points {
		shareNumbers[i] = p.X
	}

	gammas, err := Multipliers(shareNumbers)
	if err != nil {
		return 0, err
	}

	acc := 0
	for i, p := range points {
		acc = field.Add(acc, field.Mul(p.Y, gammas[i]))
	}
	return acc, nil
}
