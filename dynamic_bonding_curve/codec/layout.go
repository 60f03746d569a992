package codec

import "github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"

const curvePoints = shared.CurvePointCount

// Field widths and reserved regions of the PoolConfig account. The reserved
// widths come from the program's account schema and cannot be recovered from
// the bytes themselves.
const (
	DiscriminatorSize = 8
	PublicKeySize     = 32
	u128Size          = 16

	baseFeeReservedSize       = 5
	dynamicFeeFlagReserved    = 7
	dynamicFeeReservedSize    = 8
	poolFeesReservedSize      = 40
	poolFeesTailReservedSize  = 6
	configFlagsReservedSize   = 7
	lockedVestingReservedSize = 8
	tokenSupplyReservedSize   = 32

	BaseFeeConfigSize = 8 + // cliff_fee_numerator
		8 + // second_factor
		8 + // third_factor
		2 + // first_factor
		1 + // base_fee_mode
		baseFeeReservedSize

	DynamicFeeConfigSize = 1 + // initialized
		dynamicFeeFlagReserved +
		4 + // max_volatility_accumulator
		4 + // variable_fee_control
		2 + // bin_step
		2 + // filter_period
		2 + // decay_period
		2 + // reduction_factor
		dynamicFeeReservedSize +
		u128Size // bin_step_u128

	PoolFeesConfigSize = BaseFeeConfigSize +
		DynamicFeeConfigSize +
		poolFeesReservedSize +
		poolFeesTailReservedSize +
		1 + // protocol_fee_percent
		1 // referral_fee_percent

	LockedVestingConfigSize = 5*8 + lockedVestingReservedSize

	CurvePointSize = 2 * u128Size

	// configFlagCount single-byte fields sit between the pool fees and the
	// swap base amount.
	configFlagCount = 17

	PoolConfigSize = DiscriminatorSize +
		3*PublicKeySize +
		PoolFeesConfigSize +
		configFlagCount +
		configFlagsReservedSize +
		3*8 + // swap_base_amount, migration_quote_threshold, migration_base_threshold
		u128Size + // migration_sqrt_price
		LockedVestingConfigSize +
		2*8 + // pre/post migration token supply
		tokenSupplyReservedSize +
		u128Size + // sqrt_start_price
		curvePoints*CurvePointSize
)

// Offsets of the fields that account filters match on.
const (
	QuoteMintOffset        = DiscriminatorSize
	FeeClaimerOffset       = QuoteMintOffset + PublicKeySize
	LeftoverReceiverOffset = FeeClaimerOffset + PublicKeySize
	PoolFeesOffset         = LeftoverReceiverOffset + PublicKeySize
	CollectFeeModeOffset   = PoolFeesOffset + PoolFeesConfigSize
	SqrtStartPriceOffset   = PoolConfigSize - curvePoints*CurvePointSize - u128Size
	CurveOffset            = SqrtStartPriceOffset + u128Size
)
