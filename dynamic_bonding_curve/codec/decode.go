package codec

import (
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
)

func decodeBaseFeeConfig(c *cursor) (out shared.BaseFeeConfig, err error) {
	if out.CliffFeeNumerator, err = c.readU64("base_fee.cliff_fee_numerator"); err != nil {
		return
	}
	if out.SecondFactor, err = c.readU64("base_fee.second_factor"); err != nil {
		return
	}
	if out.ThirdFactor, err = c.readU64("base_fee.third_factor"); err != nil {
		return
	}
	if out.FirstFactor, err = c.readU16("base_fee.first_factor"); err != nil {
		return
	}
	mode, err := c.readU8("base_fee.base_fee_mode")
	if err != nil {
		return
	}
	out.BaseFeeMode = shared.BaseFeeMode(mode)
	err = c.skip("base_fee.padding", baseFeeReservedSize)
	return
}

func decodeDynamicFeeConfig(c *cursor) (out shared.DynamicFeeConfig, err error) {
	if out.Initialized, err = c.readU8("dynamic_fee.initialized"); err != nil {
		return
	}
	if err = c.skip("dynamic_fee.padding", dynamicFeeFlagReserved); err != nil {
		return
	}
	if out.MaxVolatilityAccumulator, err = c.readU32("dynamic_fee.max_volatility_accumulator"); err != nil {
		return
	}
	if out.VariableFeeControl, err = c.readU32("dynamic_fee.variable_fee_control"); err != nil {
		return
	}
	if out.BinStep, err = c.readU16("dynamic_fee.bin_step"); err != nil {
		return
	}
	if out.FilterPeriod, err = c.readU16("dynamic_fee.filter_period"); err != nil {
		return
	}
	if out.DecayPeriod, err = c.readU16("dynamic_fee.decay_period"); err != nil {
		return
	}
	if out.ReductionFactor, err = c.readU16("dynamic_fee.reduction_factor"); err != nil {
		return
	}
	if err = c.skip("dynamic_fee.padding_1", dynamicFeeReservedSize); err != nil {
		return
	}
	out.BinStepU128, err = c.readU128("dynamic_fee.bin_step_u128")
	return
}

func decodePoolFeesConfig(c *cursor) (out shared.PoolFeesConfig, err error) {
	if out.BaseFee, err = decodeBaseFeeConfig(c); err != nil {
		return
	}
	if out.DynamicFee, err = decodeDynamicFeeConfig(c); err != nil {
		return
	}
	if err = c.skip("pool_fees.padding_0", poolFeesReservedSize); err != nil {
		return
	}
	if err = c.skip("pool_fees.padding_1", poolFeesTailReservedSize); err != nil {
		return
	}
	if out.ProtocolFeePercent, err = c.readU8("pool_fees.protocol_fee_percent"); err != nil {
		return
	}
	out.ReferralFeePercent, err = c.readU8("pool_fees.referral_fee_percent")
	return
}

func decodeLockedVestingConfig(c *cursor) (out shared.LockedVestingConfig, err error) {
	if out.AmountPerPeriod, err = c.readU64("locked_vesting.amount_per_period"); err != nil {
		return
	}
	if out.CliffDurationFromMigrationTime, err = c.readU64("locked_vesting.cliff_duration_from_migration_time"); err != nil {
		return
	}
	if out.Frequency, err = c.readU64("locked_vesting.frequency"); err != nil {
		return
	}
	if out.NumberOfPeriod, err = c.readU64("locked_vesting.number_of_period"); err != nil {
		return
	}
	if out.CliffUnlockAmount, err = c.readU64("locked_vesting.cliff_unlock_amount"); err != nil {
		return
	}
	err = c.skip("locked_vesting.padding", lockedVestingReservedSize)
	return
}

func decodeCurvePoint(c *cursor) (out shared.CurvePoint, err error) {
	if out.SqrtPrice, err = c.readU128("curve.sqrt_price"); err != nil {
		return
	}
	out.Liquidity, err = c.readU128("curve.liquidity")
	return
}

// decodeCurve reads exactly shared.CurvePointCount points in stored order.
func decodeCurve(c *cursor) (out [shared.CurvePointCount]shared.CurvePoint, err error) {
	for i := 0; i < shared.CurvePointCount; i++ {
		if out[i], err = decodeCurvePoint(c); err != nil {
			return [shared.CurvePointCount]shared.CurvePoint{}, err
		}
	}
	return out, nil
}
