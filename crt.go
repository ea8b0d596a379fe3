package shamir

import "math/big"

// crtCombiner lifts per-prime residues back to a single value modulo the
// product of the primes, by the Chinese remainder theorem. The moduli must
// be pairwise coprime; NewMultiPrimeSolver enforces distinct primes before
// building one.
type crtCombiner struct {
	mi []*big.Int
	m  *big.Int // product of all moduli
}

func newCRTCombiner(primes []uint64) crtCombiner {
	m := big.NewInt(1)

	c := crtCombiner{
		mi: make([]*big.Int, len(primes)),
		m:  m,
	}

	for i, q := range primes {
		c.mi[i] = new(big.Int).SetUint64(q)
		m.Mul(m, c.mi[i])
	}

	return c
}

// Combine computes the unique value in [0, M) congruent to residues[i]
// modulo mi[i] for every i, where M is the product of the moduli.
func (c crtCombiner) Combine(residues []*big.Int) *big.Int {
	if len(residues) != len(c.mi) {
		panic("length of residues must match length of moduli")
	}

	lifted := big.NewInt(0)
	tmp := new(big.Int)
	cofactor := new(big.Int)
	inv := new(big.Int)

	for i := range residues {
		// cofactor = M / mi, inv = cofactor^{-1} mod mi
		cofactor.Div(c.m, c.mi[i])
		inv.ModInverse(cofactor, c.mi[i])

		// lifted += residues[i] * cofactor * inv
		tmp.Mul(residues[i], cofactor)
		tmp.Mul(tmp, inv)
		lifted.Add(lifted, tmp)
	}

	return lifted.Mod(lifted, c.m)
}
