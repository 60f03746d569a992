package helpers

import (
	"errors"
	"math/big"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
	"github.com/krazyTry/meteora-dbc-config/u128"
	"github.com/shopspring/decimal"
)

// GetPriceFromSqrtPrice converts a Q64.64 square root price into a quote per
// base price adjusted for token decimals: (sqrtPrice / 2^64)^2 * 10^(base-quote).
func GetPriceFromSqrtPrice(sqrtPrice u128.Uint128, baseDecimal, quoteDecimal uint8) decimal.Decimal {
	decSqrt := decimal.NewFromBigInt(sqrtPrice.Big(), 0)
	return decSqrt.Mul(decSqrt).
		Mul(decimal.New(1, int32(baseDecimal)-int32(quoteDecimal))).
		Div(decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), 2*shared.Resolution), 0))
}

// GetSqrtPriceFromPrice is the inverse of GetPriceFromSqrtPrice, truncated to
// an integer Q64.64 value.
func GetSqrtPriceFromPrice(price string, baseDecimal, quoteDecimal uint8) (u128.Uint128, error) {
	decimalPrice, err := decimal.NewFromString(price)
	if err != nil {
		return u128.Uint128{}, err
	}
	adjusted := decimalPrice.DivRound(decimal.New(1, int32(baseDecimal)-int32(quoteDecimal)), 25)

	sqrtValue, err := decimalSqrt(adjusted)
	if err != nil {
		return u128.Uint128{}, err
	}
	sqrtValueQ64 := sqrtValue.Mul(decimal.NewFromBigInt(shared.OneQ64, 0))
	return u128.FromBig(sqrtValueQ64.Truncate(0).BigInt())
}

func decimalSqrt(d decimal.Decimal) (decimal.Decimal, error) {
	if d.Sign() < 0 {
		return decimal.Zero, errors.New("cannot sqrt negative value")
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	f := new(big.Float).SetPrec(256)
	if _, ok := f.SetString(d.String()); !ok {
		return decimal.Zero, errors.New("failed to parse decimal for sqrt")
	}
	sqrt := new(big.Float).SetPrec(256).Sqrt(f)
	return decimal.NewFromString(sqrt.Text('f', -1))
}

// ActiveCurvePoints returns the leading run of curve points with a non-zero
// sqrt price. Unused slots at the tail of the stored curve are zeroed.
func ActiveCurvePoints(cfg *shared.PoolConfig) []shared.CurvePoint {
	n := 0
	for n < len(cfg.Curve) && !cfg.Curve[n].SqrtPrice.IsZero() {
		n++
	}
	out := make([]shared.CurvePoint, n)
	copy(out, cfg.Curve[:n])
	return out
}

// CurveProgress is quoteReserve / migrationQuoteThreshold clamped to [0, 1].
// A zero threshold counts as complete.
func CurveProgress(quoteReserve uint64, cfg *shared.PoolConfig) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if cfg.MigrationQuoteThreshold == 0 || quoteReserve >= cfg.MigrationQuoteThreshold {
		return one
	}
	return decimal.NewFromUint64(quoteReserve).Div(decimal.NewFromUint64(cfg.MigrationQuoteThreshold))
}

// MigrationPrice is the decimal price at which the pool migrates.
func MigrationPrice(cfg *shared.PoolConfig, quoteDecimal uint8) decimal.Decimal {
	return GetPriceFromSqrtPrice(cfg.MigrationSqrtPrice, uint8(cfg.TokenDecimal), quoteDecimal)
}

// StartPrice is the decimal price of the first curve segment.
func StartPrice(cfg *shared.PoolConfig, quoteDecimal uint8) decimal.Decimal {
	return GetPriceFromSqrtPrice(cfg.SqrtStartPrice, uint8(cfg.TokenDecimal), quoteDecimal)
}
