package shamir

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"
)

var ErrRepeatedPrime = errors.New("multi-prime moduli must be distinct")

// MultiPrimeSolver runs the consistency search modulo several small primes
// at once and recombines the per-prime secrets by the Chinese remainder
// theorem. Every intermediate value stays below the largest prime, yet the
// recombined secret ranges up to the product of all of them, so the
// magnitude loss of single-prime field arithmetic is avoided without
// giving up its bounded intermediates.
//
// A candidate subset is accepted only when its polynomial stays within the
// mismatch budget under every prime; a corrupted share that happens to
// collide with the true value modulo one prime is still caught by the
// others.
type MultiPrimeSolver struct {
	fields []*PrimeArithmetic
	crt    crtCombiner

	// MaxMismatches follows the same convention as Solver.MaxMismatches.
	MaxMismatches int
}

func NewMultiPrimeSolver(primes []uint64) (*MultiPrimeSolver, error) {
	if len(primes) == 0 {
		return nil, errors.New("no primes given")
	}

	seen := make(map[uint64]struct{}, len(primes))
	fields := make([]*PrimeArithmetic, len(primes))

	for i, q := range primes {
		if _, ok := seen[q]; ok {
			return nil, fmt.Errorf("%w: %d", ErrRepeatedPrime, q)
		}
		seen[q] = struct{}{}

		f, err := NewPrimeArithmetic(q)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}

	return &MultiPrimeSolver{
		fields:        fields,
		crt:           newCRTCombiner(primes),
		MaxMismatches: -1,
	}, nil
}

// Reconstruct decodes the records once per prime and searches k-subsets in
// lexicographic order, accepting the first one consistent under every
// prime. Decoding is strict: a record that fails to decode under one prime
// fails under all of them, so there is no per-prime drop policy to pick.
func (m *MultiPrimeSolver) Reconstruct(records []Record, k int) (*Result, error) {
	n := len(records)
	if k < 1 || n < k {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientShares, n, k)
	}

	tables := make([][]Share, len(m.fields))

	for i, f := range m.fields {
		shares, err := DecodeRecords(records, f, true)
		if err != nil {
			return nil, err
		}

		if err := checkDistinctX(f, shares); err != nil {
			return nil, err
		}

		tables[i] = shares
	}

	budget := m.MaxMismatches
	if budget < 0 {
		budget = (n - k) / 2
	}

	zero := new(big.Int)
	var found *Result

	forEachCombination(n, k, func(idx []int) bool {
		subsets := make([][]Share, len(m.fields))
		for fi := range m.fields {
			subset := make([]Share, k)
			for i, j := range idx {
				subset[i] = tables[fi][j]
			}
			subsets[fi] = subset
		}

		mismatches := 0
		for si := 0; si < n; si++ {
			for fi, f := range m.fields {
				y, err := valueAt(f, subsets[fi], tables[fi][si].X)
				if err != nil || y.Cmp(tables[fi][si].Y) != 0 {
					mismatches++
					break
				}
			}

			if mismatches > budget {
				return false
			}
		}

		residues := make([]*big.Int, len(m.fields))
		for fi, f := range m.fields {
			secret, err := valueAt(f, subsets[fi], zero)
			if err != nil {
				return false
			}
			residues[fi] = secret
		}

		slog.Debug("accepted candidate subset across all primes",
			slog.Any("indices", idx),
			slog.Int("mismatches", mismatches),
		)

		found = &Result{
			Secret: m.crt.Combine(residues),
			Subset: append([]int(nil), idx...),
		}

		return true
	})

	if found == nil {
		return nil, fmt.Errorf("%w: exhausted every %d-subset of %d shares",
			ErrNoConsistentSubset, k, n)
	}

	return found, nil
}
