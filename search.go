package shamir

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"
)

var (
	ErrInsufficientShares = errors.New("fewer shares than the threshold")
	ErrNoConsistentSubset = errors.New("no share subset agrees with the rest")
)

// Result is a successful reconstruction: the recovered secret and the
// positions, within the share slice handed to the solver, of the subset
// that produced it.
type Result struct {
	Secret *big.Int
	Subset []int
}

// Solver searches for a k-subset of shares whose interpolated polynomial
// agrees with the rest of the share set, then reports that polynomial's
// constant term.
//
// MaxMismatches is the number of shares of the full set a candidate
// polynomial may fail to reproduce and still be accepted. Negative selects
// the default floor((n-k)/2), the bound under which an accepted secret is
// guaranteed unique; 0 demands that every share agree; anything up to n-k
// loosens the search at the cost of ambiguity when shares are corrupted.
//
// Workers above 1 evaluates candidates on that many goroutines. The
// sequential search accepts the lexicographically first valid subset; the
// parallel one accepts whichever valid subset finishes first.
type Solver struct {
	Arith         Arithmetic
	MaxMismatches int
	Workers       int
}

func NewSolver(ar Arithmetic) *Solver {
	return &Solver{Arith: ar, MaxMismatches: -1}
}

// Reconstruct runs the consistency search over all k-subsets of shares,
// in lexicographic index order, stopping at the first accepted candidate.
func (s *Solver) Reconstruct(shares []Share, k int) (*Result, error) {
	if k < 1 || len(shares) < k {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientShares, len(shares), k)
	}

	if err := checkDistinctX(s.Arith, shares); err != nil {
		return nil, err
	}

	budget := s.MaxMismatches
	if budget < 0 {
		budget = (len(shares) - k) / 2
	}

	if s.Workers > 1 {
		return s.reconstructParallel(shares, k, budget)
	}

	var found *Result

	forEachCombination(len(shares), k, func(idx []int) bool {
		res, ok := s.evaluate(shares, idx, budget)
		if !ok {
			return false
		}

		found = res

		return true
	})

	if found == nil {
		return nil, fmt.Errorf("%w: exhausted every %d-subset of %d shares",
			ErrNoConsistentSubset, k, len(shares))
	}

	return found, nil
}

// evaluate interpolates one candidate subset and validates its polynomial
// against the full share set, giving up as soon as the mismatch budget is
// exceeded.
func (s *Solver) evaluate(shares []Share, idx []int, budget int) (*Result, bool) {
	subset := make([]Share, len(idx))
	for i, j := range idx {
		subset[i] = shares[j]
	}

	secret, err := valueAt(s.Arith, subset, new(big.Int))
	if err != nil {
		// the subset does not define an integer polynomial.
		return nil, false
	}

	mismatches := 0

	for _, sh := range shares {
		y, err := valueAt(s.Arith, subset, sh.X)
		if err != nil || y.Cmp(s.Arith.Canon(sh.Y)) != 0 {
			mismatches++
			if mismatches > budget {
				return nil, false
			}
		}
	}

	slog.Debug("accepted candidate subset",
		slog.Any("indices", idx),
		slog.Int("mismatches", mismatches),
	)

	return &Result{
		Secret: secret,
		Subset: append([]int(nil), idx...),
	}, true
}

// forEachCombination enumerates the k-element index combinations of
// [0, n) in lexicographic order, one at a time, holding only the current
// partial selection. A visit returning true stops the enumeration.
func forEachCombination(n, k int, visit func([]int) bool) {
	idx := make([]int, 0, k)

	var descend func(start int) bool
	descend = func(start int) bool {
		if len(idx) == k {
			return visit(idx)
		}

		for i := start; i <= n-(k-len(idx)); i++ {
			idx = append(idx, i)
			if descend(i + 1) {
				return true
			}
			idx = idx[:len(idx)-1]
		}

		return false
	}

	descend(0)
}
