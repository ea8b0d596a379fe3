package shamir

import (
	"fmt"
	"math/big"
)

// ValueAt evaluates the unique degree-(k-1) polynomial through points at x
// with the Lagrange formula, all operations on the given arithmetic. The
// running total is carried as a single fraction and divided once at the
// end: under a prime backend that division is a modular inverse, under the
// exact backend a remainder there means the points do not lie on an
// integer polynomial and surfaces as ErrInexactDivision.
//
// The result depends only on the set of points, not their order.
func ValueAt(ar Arithmetic, points []Share, x *big.Int) (*big.Int, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no interpolation points", ErrInsufficientShares)
	}

	if err := checkDistinctX(ar, points); err != nil {
		return nil, err
	}

	return valueAt(ar, points, x)
}

// SecretAt0 recovers the constant term, the secret, from exactly the
// points given.
func SecretAt0(ar Arithmetic, points []Share) (*big.Int, error) {
	return ValueAt(ar, points, new(big.Int))
}

// valueAt is ValueAt without the duplicate-abscissa check, for callers
// that have already vetted the share set once.
func valueAt(ar Arithmetic, points []Share, x *big.Int) (*big.Int, error) {
	num := big.NewInt(0)
	den := big.NewInt(1)

	for i, pi := range points {
		tn := ar.Canon(pi.Y)
		td := big.NewInt(1)

		for j, pj := range points {
			if j == i {
				continue
			}

			tn = ar.Mul(tn, ar.Sub(x, pj.X))
			td = ar.Mul(td, ar.Sub(pi.X, pj.X))
		}

		// num/den += tn/td
		num = ar.Add(ar.Mul(num, td), ar.Mul(tn, den))
		den = ar.Mul(den, td)
	}

	return ar.DivExact(num, den)
}
