package pool_fees

import (
	"math/big"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
)

// FeeScheduler decays the base fee from the cliff fee once every
// PeriodFrequency points, for at most NumberOfPeriod periods.
type FeeScheduler struct {
	CliffFeeNumerator uint64
	NumberOfPeriod    uint16
	PeriodFrequency   uint64
	ReductionFactor   uint64
	Mode              shared.BaseFeeMode
}

func (f FeeScheduler) MinBaseFeeNumerator() (uint64, error) {
	return f.numeratorByPeriod(uint64(f.NumberOfPeriod))
}

func (f FeeScheduler) MaxBaseFeeNumerator() uint64 {
	return f.CliffFeeNumerator
}

// BaseFeeNumerator returns the fee numerator in effect at currentPoint.
// Before activation the fully decayed fee applies.
func (f FeeScheduler) BaseFeeNumerator(currentPoint, activationPoint uint64) (uint64, error) {
	if f.PeriodFrequency == 0 {
		return f.CliffFeeNumerator, nil
	}
	if currentPoint < activationPoint {
		return f.MinBaseFeeNumerator()
	}
	return f.numeratorByPeriod((currentPoint - activationPoint) / f.PeriodFrequency)
}

func (f FeeScheduler) numeratorByPeriod(period uint64) (uint64, error) {
	period = min(period, uint64(f.NumberOfPeriod))
	cliff := new(big.Int).SetUint64(f.CliffFeeNumerator)
	reduction := new(big.Int).SetUint64(f.ReductionFactor)

	var (
		out *big.Int
		err error
	)
	switch f.Mode {
	case shared.BaseFeeModeFeeSchedulerLinear:
		out, err = linearFeeNumerator(cliff, reduction, period)
	case shared.BaseFeeModeFeeSchedulerExponential:
		out, err = exponentialFeeNumerator(cliff, reduction, period)
	default:
		return 0, ErrInvalidBaseFeeMode
	}
	if err != nil {
		return 0, err
	}
	return toU64(out)
}

func linearFeeNumerator(cliff, reduction *big.Int, period uint64) (*big.Int, error) {
	return sub(cliff, new(big.Int).Mul(new(big.Int).SetUint64(period), reduction))
}

// exponentialFeeNumerator is cliff * (1 - reduction/10_000)^period.
func exponentialFeeNumerator(cliff, reduction *big.Int, period uint64) (*big.Int, error) {
	if period == 0 {
		return new(big.Int).Set(cliff), nil
	}
	bps := new(big.Int).Lsh(reduction, shared.Resolution)
	bps.Div(bps, big.NewInt(shared.MaxBasisPoint))
	base, err := sub(shared.OneQ64, bps)
	if err != nil {
		return nil, err
	}
	factor, err := pow(base, period)
	if err != nil {
		return nil, err
	}
	return mulDiv(cliff, factor, shared.OneQ64, roundingDown)
}
