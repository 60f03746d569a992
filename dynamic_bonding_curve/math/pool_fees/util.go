package pool_fees

import (
	"errors"
	"math/big"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
)

var (
	ErrUnderflow      = errors.New("math underflow")
	ErrOverflow       = errors.New("math overflow")
	ErrDivisionByZero = errors.New("division by zero")
)

type rounding uint8

const (
	roundingDown rounding = iota
	roundingUp
)

func sub(a, b *big.Int) (*big.Int, error) {
	if b.Cmp(a) > 0 {
		return nil, ErrUnderflow
	}
	return new(big.Int).Sub(a, b), nil
}

func mulDiv(x, y, denominator *big.Int, r rounding) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	prod := new(big.Int).Mul(x, y)
	if r == roundingUp {
		prod.Add(prod, new(big.Int).Sub(denominator, big.NewInt(1)))
	}
	return prod.Div(prod, denominator), nil
}

// pow computes base^exponent where base is a Q64 fixed point number.
func pow(base *big.Int, exponent uint64) (*big.Int, error) {
	one := shared.OneQ64
	if exponent == 0 || base.Cmp(one) == 0 {
		return new(big.Int).Set(one), nil
	}
	if base.Sign() == 0 {
		return big.NewInt(0), nil
	}

	result := new(big.Int).Set(one)
	current := new(big.Int).Set(base)
	for exponent > 0 {
		if exponent&1 == 1 {
			res, err := mulDiv(result, current, one, roundingDown)
			if err != nil {
				return nil, err
			}
			result = res
		}
		exponent >>= 1
		if exponent > 0 {
			res, err := mulDiv(current, current, one, roundingDown)
			if err != nil {
				return nil, err
			}
			current = res
		}
	}
	return result, nil
}

func toNumerator(bps uint64) *big.Int {
	n, _ := mulDiv(new(big.Int).SetUint64(bps), big.NewInt(shared.FeeDenominator), big.NewInt(shared.MaxBasisPoint), roundingDown)
	return n
}

func toU64(v *big.Int) (uint64, error) {
	if v.Sign() < 0 {
		return 0, ErrUnderflow
	}
	if !v.IsUint64() {
		return 0, ErrOverflow
	}
	return v.Uint64(), nil
}
