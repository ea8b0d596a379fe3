package shamir

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"
)

var ErrDuplicateAbscissa = errors.New("two shares carry the same x-coordinate")

// Record is one share as it appears in the input document, before its
// value string has been decoded.
type Record struct {
	X     int64
	Base  int
	Value string
}

// Share is a decoded point (x, y) on the hidden polynomial. Shares are
// never mutated after decoding.
type Share struct {
	X *big.Int
	Y *big.Int
}

// Decode converts the record's digit string under the given arithmetic.
// Under a prime backend the value is reduced into the field while it is
// accumulated.
func (r Record) Decode(ar Arithmetic) (Share, error) {
	y, err := DecodeDigits(r.Value, r.Base, ar.Modulus())
	if err != nil {
		return Share{}, fmt.Errorf("share x=%d: %w", r.X, err)
	}

	return Share{X: big.NewInt(r.X), Y: y}, nil
}

// DecodeRecords decodes every record. In strict mode the first decode
// failure aborts the run; otherwise the bad share is dropped with a
// warning and the run continues with fewer shares.
func DecodeRecords(records []Record, ar Arithmetic, strict bool) ([]Share, error) {
	shares := make([]Share, 0, len(records))

	for _, r := range records {
		s, err := r.Decode(ar)
		if err != nil {
			if strict {
				return nil, err
			}

			slog.Warn("dropping undecodable share",
				slog.Int64("x", r.X),
				slog.String("reason", err.Error()),
			)

			continue
		}

		shares = append(shares, s)
	}

	return shares, nil
}

// checkDistinctX rejects share sets holding two shares on the same
// abscissa, which would put a zero into every Lagrange denominator they
// both appear in. Comparison is in canonical form, so two x values that
// collide mod P are duplicates under a prime backend.
func checkDistinctX(ar Arithmetic, shares []Share) error {
	seen := make(map[string]struct{}, len(shares))

	for _, s := range shares {
		key := ar.Canon(s.X).String()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: x=%s", ErrDuplicateAbscissa, s.X)
		}

		seen[key] = struct{}{}
	}

	return nil
}
