// Package poly implements polynomial construction, Horner evaluation,
// and coefficient-wise summation over GF(2053) (internal/field),
// the building block both word shares and the dual-path checksum
// shares are derived from.
package poly

import (
	"errors"
	"runtime"

	"github.com/mrz1836/schiavinato-sss/internal/field"
	"github.com/mrz1836/schiavinato-sss/internal/rng"
)

// ErrDegreeMismatch is returned by Sum when the supplied polynomials
// do not all share the same length (degree+1).
var ErrDegreeMismatch = errors.New("poly: degree mismatch")

// Polynomial is an ordered sequence of coefficients [a0, a1, ..., a_d]
// representing a0 + a1*x + ... + a_d*x^d over GF(2053). a0 is always
// the constant term (the secret, for word polynomials).
type Polynomial []int

// Random returns a polynomial of the given degree whose constant term
// is secret mod field.Prime and whose remaining coefficients are drawn
// uniformly from src. degree == 0 yields a constant polynomial.
func Random(src rng.Source, secret, degree int) (Polynomial, error) {
	if degree < 0 {
		return nil, errors.New("poly: degree must be non-negative")
	}
	p := make(Polynomial, degree+1)
	p[0] = field.Mod(secret)
	for i := 1; i <= degree; i++ {
		v, err := rng.FieldElement(src)
		if err != nil {
			return nil, err
		}
		p[i] = v
	}
	return p, nil
}

// Evaluate computes the polynomial's value at x using Horner's method,
// accumulating from the highest-degree coefficient down. x is reduced
// via field.Mod on entry.
func (p Polynomial) Evaluate(x int) int {
	x = field.Mod(x)
	acc := 0
	for i := len(p) - 1; i >= 0; i-- {
		acc = field.Add(field.Mul(acc, x), p[i])
	}
	return acc
}

// Sum returns the coefficient-wise sum of the given polynomials. All
// polynomials must have the same length; otherwise ErrDegreeMismatch
// is returned. Sum of zero polynomials returns nil.
func Sum(polys ...Polynomial) (Polynomial, error) {
	if len(polys) == 0 {
		return nil, nil
	}
	degLen := len(polys[0])
	for _, p := range polys[1:] {
		if len(p) != degLen {
			return nil, ErrDegreeMismatch
		}
	}
	out := make(Polynomial, degLen)
	for _, p := range polys {
		for i, c := range p {
			out[i] = field.Add(out[i], c)
		}
	}
	return out, nil
}

// Zero overwrites every coefficient with 0 and prevents the compiler
// from eliding the write, per the scheme's lifecycle requirement that
// word polynomials never outlive Split/Recover.
func (p Polynomial) Zero() {
	for i := range p {
		p[i] = 0
	}
	runtime.KeepAlive(p)
}
