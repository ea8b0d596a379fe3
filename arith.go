package shamir

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrZeroDenominator = errors.New("zero denominator")
	ErrInexactDivision = errors.New("integer division left a remainder")
	ErrNotPrime        = errors.New("modulus is not prime")
)

// Arithmetic is the numeric backend interpolation runs on. One backend is
// chosen per run; prime and exact values are not interchangeable
// mid-computation. Both implementations are stateless past their modulus
// and safe for concurrent use.
type Arithmetic interface {
	Add(a, b *big.Int) *big.Int
	Sub(a, b *big.Int) *big.Int
	Mul(a, b *big.Int) *big.Int

	// DivExact returns a/b. The prime backend multiplies by the modular
	// inverse and only fails on a zero denominator; the exact backend
	// fails with ErrInexactDivision unless b divides a.
	DivExact(a, b *big.Int) (*big.Int, error)

	Neg(a *big.Int) *big.Int

	// Canon brings a value into canonical form: [0, P) under a prime
	// modulus, the value itself in exact mode.
	Canon(a *big.Int) *big.Int

	// Modulus reports the field prime, or nil in exact mode.
	Modulus() *big.Int
}

// PrimeArithmetic computes in GF(P) for a fixed prime P. Division is
// multiplication by the Fermat inverse a^(P-2) mod P.
type PrimeArithmetic struct {
	p      *big.Int
	invExp *big.Int // P-2, the Fermat inverse exponent
}

func NewPrimeArithmetic(q uint64) (*PrimeArithmetic, error) {
	p := new(big.Int).SetUint64(q)
	if !p.ProbablyPrime(32) {
		return nil, fmt.Errorf("%w: %d", ErrNotPrime, q)
	}

	return &PrimeArithmetic{
		p:      p,
		invExp: new(big.Int).Sub(p, big.NewInt(2)),
	}, nil
}

func (f *PrimeArithmetic) Add(a, b *big.Int) *big.Int {
	return f.Canon(new(big.Int).Add(a, b))
}

func (f *PrimeArithmetic) Sub(a, b *big.Int) *big.Int {
	return f.Canon(new(big.Int).Sub(a, b))
}

func (f *PrimeArithmetic) Mul(a, b *big.Int) *big.Int {
	return f.Canon(new(big.Int).Mul(a, b))
}

func (f *PrimeArithmetic) DivExact(a, b *big.Int) (*big.Int, error) {
	bc := f.Canon(b)
	if bc.Sign() == 0 {
		return nil, ErrZeroDenominator
	}

	inv := new(big.Int).Exp(bc, f.invExp, f.p)

	return f.Mul(a, inv), nil
}

func (f *PrimeArithmetic) Neg(a *big.Int) *big.Int {
	return f.Canon(new(big.Int).Neg(a))
}

// Canon relies on big.Int.Mod being Euclidean, so negatives land in [0, P).
func (f *PrimeArithmetic) Canon(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, f.p)
}

func (f *PrimeArithmetic) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// ExactArithmetic computes with unbounded integers and no reduction.
type ExactArithmetic struct{}

func (ExactArithmetic) Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

func (ExactArithmetic) Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

func (ExactArithmetic) Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

func (ExactArithmetic) DivExact(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrZeroDenominator
	}

	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		return nil, fmt.Errorf("%w: %s / %s", ErrInexactDivision, a, b)
	}

	return q, nil
}

func (ExactArithmetic) Neg(a *big.Int) *big.Int {
	return new(big.Int).Neg(a)
}

func (ExactArithmetic) Canon(a *big.Int) *big.Int {
	return new(big.Int).Set(a)
}

func (ExactArithmetic) Modulus() *big.Int {
	return nil
}
