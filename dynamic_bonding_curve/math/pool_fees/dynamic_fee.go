package pool_fees

import (
	"math/big"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
	"github.com/krazyTry/meteora-dbc-config/u128"
)

// VariableFeeNumerator is the dynamic fee added on top of the base fee for a
// given volatility accumulator. It is zero when the dynamic fee is disabled.
func VariableFeeNumerator(dynamicFee shared.DynamicFeeConfig, volatilityAccumulator u128.Uint128) *big.Int {
	if !dynamicFee.IsInitialized() {
		return big.NewInt(0)
	}
	v := new(big.Int).Mul(volatilityAccumulator.Big(), big.NewInt(int64(dynamicFee.BinStep)))
	v.Mul(v, v)
	v.Mul(v, big.NewInt(int64(dynamicFee.VariableFeeControl)))
	v.Add(v, big.NewInt(shared.DynamicFeeRoundingOffset))
	return v.Div(v, big.NewInt(shared.DynamicFeeScalingFactor))
}

// MaxVariableFeeNumerator is the variable fee at the volatility cap.
func MaxVariableFeeNumerator(dynamicFee shared.DynamicFeeConfig) *big.Int {
	return VariableFeeNumerator(dynamicFee, u128.FromUint64(uint64(dynamicFee.MaxVolatilityAccumulator)))
}
