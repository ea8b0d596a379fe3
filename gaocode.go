package shamir

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/jonathanmweiss/go-gao"
	"github.com/jonathanmweiss/go-gao/field"
)

var ErrEvaluationGrid = errors.New("shares do not sit on the decoder's evaluation grid")

// GaoReconstructor recovers the hidden polynomial through a Gao
// Reed-Solomon decode instead of subset enumeration: one decode replaces
// the C(n,k) search, correcting up to floor((n-k)/2) corrupted shares. It
// serves the same contract as Solver for finite-field runs whose shares
// sit on the code's own evaluation grid, which it checks before decoding.
type GaoReconstructor struct {
	fld  field.Field
	code *gao.Code
	n, k int
}

func NewGaoReconstructor(q uint64, n, k int) (*GaoReconstructor, error) {
	if k < 1 || n < k {
		return nil, fmt.Errorf("%w: code over %d shares with threshold %d", ErrInsufficientShares, n, k)
	}

	f, err := field.NewPrimeField(q)
	if err != nil {
		return nil, err
	}

	code, err := gao.NewCode(f, n, k, gao.Pointwise())
	if err != nil {
		return nil, err
	}

	return &GaoReconstructor{
		fld:  f,
		code: code,
		n:    n,
		k:    k,
	}, nil
}

// GridPoints reports the x-coordinates the decoder expects the n shares
// to be evaluated at, in order.
func (r *GaoReconstructor) GridPoints() []uint64 {
	xs := r.code.EvaluationPoints()

	points := make([]uint64, len(xs))
	for i := range xs {
		points[i] = uint64(xs[i])
	}

	return points
}

// Reconstruct decodes exactly n shares whose x-coordinates cover the
// decoder's grid, in any order. The returned subset holds the indices of
// every share the recovered polynomial reproduces; decode failure (too
// many corrupted shares) surfaces as ErrNoConsistentSubset.
func (r *GaoReconstructor) Reconstruct(shares []Share) (*Result, error) {
	if len(shares) != r.n {
		return nil, fmt.Errorf("%w: code is sized for %d shares, got %d", ErrEvaluationGrid, r.n, len(shares))
	}

	p := new(big.Int).SetUint64(r.fld.Modulus())
	grid := r.GridPoints()

	onGrid := make(map[uint64]bool, r.n)
	for _, x := range grid {
		onGrid[x] = false
	}

	xs := make([]uint64, len(shares))
	indexToValue := make(map[uint64]uint64, r.n)

	for i, sh := range shares {
		x := new(big.Int).Mod(sh.X, p).Uint64()

		taken, ok := onGrid[x]
		if !ok {
			return nil, fmt.Errorf("%w: share at x=%s", ErrEvaluationGrid, sh.X)
		}
		if taken {
			return nil, fmt.Errorf("%w: x=%s", ErrDuplicateAbscissa, sh.X)
		}
		onGrid[x] = true

		xs[i] = x
		indexToValue[x] = new(big.Int).Mod(sh.Y, p).Uint64()
	}

	coeffs, err := r.code.Decode(indexToValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConsistentSubset, err)
	}

	pr := field.NewDensePolyRing(r.fld)
	poly := pr.NewPolynomial(coeffs, false)

	subset := make([]int, 0, r.n)
	for i, sh := range shares {
		y := new(big.Int).Mod(sh.Y, p).Uint64()
		if pr.Evaluate(poly, xs[i]) == y {
			subset = append(subset, i)
		}
	}

	return &Result{
		Secret: new(big.Int).SetUint64(coeffs[0]),
		Subset: subset,
	}, nil
}
