// Package codectest builds PoolConfig account bytes for tests. It mirrors the
// decoder field for field and writes zeros into every reserved region.
package codectest

import (
	"bytes"

	binary "github.com/gagliardetto/binary"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
	"github.com/krazyTry/meteora-dbc-config/u128"
)

type writer struct {
	enc *binary.Encoder
	err error
}

func (w *writer) u8(v uint8) {
	if w.err == nil {
		w.err = w.enc.WriteUint8(v)
	}
}

func (w *writer) u16(v uint16) {
	if w.err == nil {
		w.err = w.enc.WriteUint16(v, binary.LE)
	}
}

func (w *writer) u32(v uint32) {
	if w.err == nil {
		w.err = w.enc.WriteUint32(v, binary.LE)
	}
}

func (w *writer) u64(v uint64) {
	if w.err == nil {
		w.err = w.enc.WriteUint64(v, binary.LE)
	}
}

func (w *writer) u128(v u128.Uint128) {
	w.u64(v.Lo)
	w.u64(v.Hi)
}

func (w *writer) bytes(b []byte) {
	if w.err == nil {
		w.err = w.enc.WriteBytes(b, false)
	}
}

func (w *writer) pad(n int) {
	w.bytes(make([]byte, n))
}

// EncodePoolConfig serializes cfg into a PoolConfigSize-byte account,
// discriminator included.
func EncodePoolConfig(cfg *shared.PoolConfig) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Grow(codec.PoolConfigSize)
	w := &writer{enc: binary.NewBinEncoder(buf)}

	w.bytes(codec.PoolConfigDiscriminator[:])
	w.bytes(cfg.QuoteMint[:])
	w.bytes(cfg.FeeClaimer[:])
	w.bytes(cfg.LeftoverReceiver[:])

	fees := cfg.PoolFees
	w.u64(fees.BaseFee.CliffFeeNumerator)
	w.u64(fees.BaseFee.SecondFactor)
	w.u64(fees.BaseFee.ThirdFactor)
	w.u16(fees.BaseFee.FirstFactor)
	w.u8(uint8(fees.BaseFee.BaseFeeMode))
	w.pad(5)

	w.u8(fees.DynamicFee.Initialized)
	w.pad(7)
	w.u32(fees.DynamicFee.MaxVolatilityAccumulator)
	w.u32(fees.DynamicFee.VariableFeeControl)
	w.u16(fees.DynamicFee.BinStep)
	w.u16(fees.DynamicFee.FilterPeriod)
	w.u16(fees.DynamicFee.DecayPeriod)
	w.u16(fees.DynamicFee.ReductionFactor)
	w.pad(8)
	w.u128(fees.DynamicFee.BinStepU128)

	w.pad(40)
	w.pad(6)
	w.u8(fees.ProtocolFeePercent)
	w.u8(fees.ReferralFeePercent)

	w.u8(uint8(cfg.CollectFeeMode))
	w.u8(uint8(cfg.MigrationOption))
	w.u8(uint8(cfg.ActivationType))
	w.u8(uint8(cfg.TokenDecimal))
	w.u8(cfg.Version)
	w.u8(uint8(cfg.TokenType))
	w.u8(cfg.QuoteTokenFlag)
	w.u8(cfg.PartnerLockedLpPercentage)
	w.u8(cfg.PartnerLpPercentage)
	w.u8(cfg.CreatorLockedLpPercentage)
	w.u8(cfg.CreatorLpPercentage)
	w.u8(uint8(cfg.MigrationFeeOption))
	w.u8(cfg.FixedTokenSupplyFlag)
	w.u8(cfg.CreatorTradingFeePercentage)
	w.u8(uint8(cfg.TokenUpdateAuthority))
	w.u8(cfg.MigrationFeePercentage)
	w.u8(cfg.CreatorMigrationFeePercentage)
	w.pad(7)

	w.u64(cfg.SwapBaseAmount)
	w.u64(cfg.MigrationQuoteThreshold)
	w.u64(cfg.MigrationBaseThreshold)
	w.u128(cfg.MigrationSqrtPrice)

	w.u64(cfg.LockedVesting.AmountPerPeriod)
	w.u64(cfg.LockedVesting.CliffDurationFromMigrationTime)
	w.u64(cfg.LockedVesting.Frequency)
	w.u64(cfg.LockedVesting.NumberOfPeriod)
	w.u64(cfg.LockedVesting.CliffUnlockAmount)
	w.pad(8)

	w.u64(cfg.PreMigrationTokenSupply)
	w.u64(cfg.PostMigrationTokenSupply)
	w.pad(32)
	w.u128(cfg.SqrtStartPrice)

	for _, p := range cfg.Curve {
		w.u128(p.SqrtPrice)
		w.u128(p.Liquidity)
	}

	if w.err != nil {
		return nil, w.err
	}
	return buf.Bytes(), nil
}

// MustEncodePoolConfig is EncodePoolConfig for fixtures.
func MustEncodePoolConfig(cfg *shared.PoolConfig) []byte {
	out, err := EncodePoolConfig(cfg)
	if err != nil {
		panic(err)
	}
	return out
}

// SamplePoolConfig returns a fully populated record with distinct values in
// every field, including a strictly increasing curve.
func SamplePoolConfig() *shared.PoolConfig {
	cfg := &shared.PoolConfig{
		QuoteMint:        keyFilledWith(1),
		FeeClaimer:       keyFilledWith(2),
		LeftoverReceiver: keyFilledWith(3),
		PoolFees: shared.PoolFeesConfig{
			BaseFee: shared.BaseFeeConfig{
				CliffFeeNumerator: 500_000_000,
				SecondFactor:      3_600,
				ThirdFactor:       1_000,
				FirstFactor:       120,
				BaseFeeMode:       shared.BaseFeeModeFeeSchedulerExponential,
			},
			DynamicFee: shared.DynamicFeeConfig{
				Initialized:              1,
				MaxVolatilityAccumulator: 14_460_000,
				VariableFeeControl:       1_101_600,
				BinStep:                  1,
				FilterPeriod:             10,
				DecayPeriod:              120,
				ReductionFactor:          5_000,
				BinStepU128:              u128.MustFromString("1844674407370955"),
			},
			ProtocolFeePercent: 20,
			ReferralFeePercent: 20,
		},
		CollectFeeMode:                shared.CollectFeeModeOutputToken,
		MigrationOption:               shared.MigrationOptionMetDammV2,
		ActivationType:                shared.ActivationTypeTimestamp,
		TokenDecimal:                  shared.TokenDecimalSix,
		Version:                       1,
		TokenType:                     shared.TokenTypeToken2022,
		QuoteTokenFlag:                0,
		PartnerLockedLpPercentage:     25,
		PartnerLpPercentage:           25,
		CreatorLockedLpPercentage:     30,
		CreatorLpPercentage:           20,
		MigrationFeeOption:            shared.MigrationFeeOptionFixedBps200,
		FixedTokenSupplyFlag:          1,
		CreatorTradingFeePercentage:   50,
		TokenUpdateAuthority:          shared.TokenUpdateAuthorityImmutable,
		MigrationFeePercentage:        10,
		CreatorMigrationFeePercentage: 50,
		SwapBaseAmount:                800_000_000_000_000,
		MigrationQuoteThreshold:       85_000_000_000,
		MigrationBaseThreshold:        200_000_000_000_000,
		MigrationSqrtPrice:            u128.MustFromString("1844674407370955161600"),
		LockedVesting: shared.LockedVestingConfig{
			AmountPerPeriod:                1_000_000,
			CliffDurationFromMigrationTime: 86_400,
			Frequency:                      3_600,
			NumberOfPeriod:                 24,
			CliffUnlockAmount:              5_000_000,
		},
		PreMigrationTokenSupply:  1_000_000_000_000_000,
		PostMigrationTokenSupply: 1_000_000_000_000_000,
		SqrtStartPrice:           u128.MustFromString("233334906748540631"),
	}
	for i := range cfg.Curve {
		cfg.Curve[i] = shared.CurvePoint{
			SqrtPrice: u128.New(uint64(i+1)*1_000_003, uint64(i)),
			Liquidity: u128.New(^uint64(0)-uint64(i), uint64(i+1)*7),
		}
	}
	cfg.Curve[0].Liquidity = u128.MustFromString("622226417996106429201027821619672729")
	return cfg
}

func keyFilledWith(b byte) (out [32]byte) {
	for i := range out {
		out[i] = b + byte(i)
	}
	return out
}
