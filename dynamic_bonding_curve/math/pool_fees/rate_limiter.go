package pool_fees

import (
	"errors"
	"math/big"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
)

// FeeRateLimiter raises the fee by FeeIncrementBps for every ReferenceAmount
// of quote input beyond the first, during the first MaxLimiterDuration
// points after activation.
type FeeRateLimiter struct {
	CliffFeeNumerator  uint64
	FeeIncrementBps    uint16
	MaxLimiterDuration uint64
	ReferenceAmount    uint64
}

func (f FeeRateLimiter) MinBaseFeeNumerator() (uint64, error) {
	return f.CliffFeeNumerator, nil
}

func (f FeeRateLimiter) MaxBaseFeeNumerator() uint64 {
	if f.IsZero() {
		return f.CliffFeeNumerator
	}
	return max(f.CliffFeeNumerator, shared.MaxFeeNumerator)
}

// BaseFeeNumerator returns the fee numerator for a trade of at most
// ReferenceAmount, which is always the cliff fee.
func (f FeeRateLimiter) BaseFeeNumerator(_, _ uint64) (uint64, error) {
	return f.CliffFeeNumerator, nil
}

func (f FeeRateLimiter) IsZero() bool {
	return f.ReferenceAmount == 0 && f.MaxLimiterDuration == 0 && f.FeeIncrementBps == 0
}

// IsApplied reports whether the limiter still applies at currentPoint.
func (f FeeRateLimiter) IsApplied(currentPoint, activationPoint uint64) bool {
	if f.IsZero() || currentPoint < activationPoint {
		return false
	}
	return currentPoint-activationPoint <= f.MaxLimiterDuration
}

func (f FeeRateLimiter) maxIndex() (*big.Int, error) {
	if f.CliffFeeNumerator > shared.MaxFeeNumerator {
		return nil, errors.New("cliff fee numerator exceeds maximum fee numerator")
	}
	increment := toNumerator(uint64(f.FeeIncrementBps))
	if increment.Sign() == 0 {
		return nil, errors.New("fee increment numerator is zero")
	}
	delta := new(big.Int).SetUint64(shared.MaxFeeNumerator - f.CliffFeeNumerator)
	return delta.Div(delta, increment), nil
}

// FeeNumeratorForAmount returns the average fee numerator charged on a quote
// input of includedAmount (fee included) while the limiter is applied.
func (f FeeRateLimiter) FeeNumeratorForAmount(includedAmount uint64) (uint64, error) {
	if f.IsZero() || includedAmount <= f.ReferenceAmount {
		return f.CliffFeeNumerator, nil
	}
	maxIndex, err := f.maxIndex()
	if err != nil {
		return 0, err
	}

	one := big.NewInt(1)
	two := big.NewInt(2)
	c := new(big.Int).SetUint64(f.CliffFeeNumerator)
	i := toNumerator(uint64(f.FeeIncrementBps))
	x0 := new(big.Int).SetUint64(f.ReferenceAmount)
	included := new(big.Int).SetUint64(includedAmount)

	diff := new(big.Int).Sub(included, x0)
	a, b := new(big.Int).DivMod(diff, x0, new(big.Int))

	// fee on the first a+1 full reference slices, then on the remainder
	index := a
	if a.Cmp(maxIndex) >= 0 {
		index = maxIndex
	}
	numerator1 := new(big.Int).Add(c, new(big.Int).Mul(c, index))
	numerator1.Add(numerator1, new(big.Int).Div(new(big.Int).Mul(i, new(big.Int).Mul(index, new(big.Int).Add(index, one))), two))
	firstFee := new(big.Int).Mul(x0, numerator1)

	var secondFee *big.Int
	if a.Cmp(maxIndex) < 0 {
		numerator2 := new(big.Int).Add(c, new(big.Int).Mul(i, new(big.Int).Add(a, one)))
		secondFee = new(big.Int).Mul(b, numerator2)
	} else {
		left := new(big.Int).Add(new(big.Int).Mul(new(big.Int).Sub(a, maxIndex), x0), b)
		secondFee = new(big.Int).Mul(left, big.NewInt(shared.MaxFeeNumerator))
	}

	denominator := big.NewInt(shared.FeeDenominator)
	tradingFee, err := mulDiv(new(big.Int).Add(firstFee, secondFee), one, denominator, roundingUp)
	if err != nil {
		return 0, err
	}
	out, err := mulDiv(tradingFee, denominator, included, roundingUp)
	if err != nil {
		return 0, err
	}
	return toU64(out)
}
