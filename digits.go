package shamir

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrInvalidDigit    = errors.New("value string contains a non-alphanumeric character")
	ErrDigitOutOfRange = errors.New("digit value is not below its base")
	ErrBadBase         = errors.New("base must be between 2 and 36")
)

// DecodeDigits converts a positional digit string into an integer, most
// significant digit first. Letters are case-insensitive and map to 10
// through 35. A non-nil mod reduces the accumulator after every digit, so
// intermediate values never grow past mod; a nil mod keeps full precision.
func DecodeDigits(digits string, base int, mod *big.Int) (*big.Int, error) {
	if base < 2 || base > 36 {
		return nil, fmt.Errorf("%w: %d", ErrBadBase, base)
	}

	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: empty value string", ErrInvalidDigit)
	}

	value := new(big.Int)
	radix := big.NewInt(int64(base))
	digit := new(big.Int)

	for i := 0; i < len(digits); i++ {
		d, err := digitValue(digits[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}

		if d >= base {
			return nil, fmt.Errorf("position %d: %w: %q in base %d", i, ErrDigitOutOfRange, digits[i], base)
		}

		value.Mul(value, radix)
		value.Add(value, digit.SetInt64(int64(d)))

		if mod != nil {
			value.Mod(value, mod)
		}
	}

	return value, nil
}

func digitValue(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
}
