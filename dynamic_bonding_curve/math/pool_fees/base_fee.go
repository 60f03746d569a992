package pool_fees

import (
	"errors"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
)

var ErrInvalidBaseFeeMode = errors.New("invalid base fee mode")

// BaseFeeHandler evaluates a base fee configuration.
type BaseFeeHandler interface {
	MinBaseFeeNumerator() (uint64, error)
	MaxBaseFeeNumerator() uint64
	BaseFeeNumerator(currentPoint, activationPoint uint64) (uint64, error)
}

var (
	_ BaseFeeHandler = FeeScheduler{}
	_ BaseFeeHandler = FeeRateLimiter{}
)

// GetBaseFeeHandler interprets the three generic factors of cfg according to
// its mode. For the schedulers they are the number of periods, the period
// frequency and the reduction factor; for the rate limiter the fee increment
// in bps, the limiter duration and the reference amount.
func GetBaseFeeHandler(cfg shared.BaseFeeConfig) (BaseFeeHandler, error) {
	switch cfg.BaseFeeMode {
	case shared.BaseFeeModeFeeSchedulerLinear, shared.BaseFeeModeFeeSchedulerExponential:
		return FeeScheduler{
			CliffFeeNumerator: cfg.CliffFeeNumerator,
			NumberOfPeriod:    cfg.FirstFactor,
			PeriodFrequency:   cfg.SecondFactor,
			ReductionFactor:   cfg.ThirdFactor,
			Mode:              cfg.BaseFeeMode,
		}, nil
	case shared.BaseFeeModeRateLimiter:
		return FeeRateLimiter{
			CliffFeeNumerator:  cfg.CliffFeeNumerator,
			FeeIncrementBps:    cfg.FirstFactor,
			MaxLimiterDuration: cfg.SecondFactor,
			ReferenceAmount:    cfg.ThirdFactor,
		}, nil
	}
	return nil, ErrInvalidBaseFeeMode
}
