package shared

import (
	"math/big"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/krazyTry/meteora-dbc-config/u128"
)

const (
	// CurvePointCount is the fixed length of the liquidity distribution curve
	// stored in a PoolConfig account, whether or not every slot is used.
	CurvePointCount = 20

	Resolution = 64

	FeeDenominator  = 1_000_000_000
	MaxBasisPoint   = 10_000
	MinFeeNumerator = 2_500_000
	MaxFeeNumerator = 990_000_000

	DynamicFeeScalingFactor  = 100_000_000_000
	DynamicFeeRoundingOffset = 99_999_999_999
)

var (
	OneQ64 = new(big.Int).Lsh(big.NewInt(1), Resolution)

	U64Max  = new(big.Int).SetUint64(^uint64(0))
	U128Max = u128.Max.Big()
)

// BaseFeeConfig is the base fee schedule. The meaning of the three factors
// depends on BaseFeeMode (fee scheduler or rate limiter).
type BaseFeeConfig struct {
	CliffFeeNumerator uint64      `json:"cliffFeeNumerator"`
	SecondFactor      uint64      `json:"secondFactor"`
	ThirdFactor       uint64      `json:"thirdFactor"`
	FirstFactor       uint16      `json:"firstFactor"`
	BaseFeeMode       BaseFeeMode `json:"baseFeeMode"`
}

type DynamicFeeConfig struct {
	// Initialized is kept as the raw byte; any non-zero value means enabled.
	Initialized              uint8        `json:"initialized"`
	MaxVolatilityAccumulator uint32       `json:"maxVolatilityAccumulator"`
	VariableFeeControl       uint32       `json:"variableFeeControl"`
	BinStep                  uint16       `json:"binStep"`
	FilterPeriod             uint16       `json:"filterPeriod"`
	DecayPeriod              uint16       `json:"decayPeriod"`
	ReductionFactor          uint16       `json:"reductionFactor"`
	BinStepU128              u128.Uint128 `json:"binStepU128"`
}

func (d DynamicFeeConfig) IsInitialized() bool {
	return d.Initialized != 0
}

type PoolFeesConfig struct {
	BaseFee            BaseFeeConfig    `json:"baseFee"`
	DynamicFee         DynamicFeeConfig `json:"dynamicFee"`
	ProtocolFeePercent uint8            `json:"protocolFeePercent"`
	ReferralFeePercent uint8            `json:"referralFeePercent"`
}

type LockedVestingConfig struct {
	AmountPerPeriod                uint64 `json:"amountPerPeriod"`
	CliffDurationFromMigrationTime uint64 `json:"cliffDurationFromMigrationTime"`
	Frequency                      uint64 `json:"frequency"`
	NumberOfPeriod                 uint64 `json:"numberOfPeriod"`
	CliffUnlockAmount              uint64 `json:"cliffUnlockAmount"`
}

// CurvePoint is one (sqrtPrice, liquidity) segment boundary of the bonding curve.
type CurvePoint struct {
	SqrtPrice u128.Uint128 `json:"sqrtPrice"`
	Liquidity u128.Uint128 `json:"liquidity"`
}

func (p CurvePoint) IsZero() bool {
	return p.SqrtPrice.IsZero() && p.Liquidity.IsZero()
}

// PoolConfig is the decoded PoolConfig account of the dynamic bonding curve
// program. It holds no pointers or slices: copying the value yields an
// independent snapshot.
type PoolConfig struct {
	QuoteMint        solanago.PublicKey `json:"quoteMint"`
	FeeClaimer       solanago.PublicKey `json:"feeClaimer"`
	LeftoverReceiver solanago.PublicKey `json:"leftoverReceiver"`

	PoolFees PoolFeesConfig `json:"poolFees"`

	CollectFeeMode                CollectFeeMode             `json:"collectFeeMode"`
	MigrationOption               MigrationOption            `json:"migrationOption"`
	ActivationType                ActivationType             `json:"activationType"`
	TokenDecimal                  TokenDecimal               `json:"tokenDecimal"`
	Version                       uint8                      `json:"version"`
	TokenType                     TokenType                  `json:"tokenType"`
	QuoteTokenFlag                uint8                      `json:"quoteTokenFlag"`
	PartnerLockedLpPercentage     uint8                      `json:"partnerLockedLpPercentage"`
	PartnerLpPercentage           uint8                      `json:"partnerLpPercentage"`
	CreatorLockedLpPercentage     uint8                      `json:"creatorLockedLpPercentage"`
	CreatorLpPercentage           uint8                      `json:"creatorLpPercentage"`
	MigrationFeeOption            MigrationFeeOption         `json:"migrationFeeOption"`
	FixedTokenSupplyFlag          uint8                      `json:"fixedTokenSupplyFlag"`
	CreatorTradingFeePercentage   uint8                      `json:"creatorTradingFeePercentage"`
	TokenUpdateAuthority          TokenUpdateAuthorityOption `json:"tokenUpdateAuthority"`
	MigrationFeePercentage        uint8                      `json:"migrationFeePercentage"`
	CreatorMigrationFeePercentage uint8                      `json:"creatorMigrationFeePercentage"`

	SwapBaseAmount          uint64       `json:"swapBaseAmount"`
	MigrationQuoteThreshold uint64       `json:"migrationQuoteThreshold"`
	MigrationBaseThreshold  uint64       `json:"migrationBaseThreshold"`
	MigrationSqrtPrice      u128.Uint128 `json:"migrationSqrtPrice"`

	LockedVesting LockedVestingConfig `json:"lockedVestingConfig"`

	PreMigrationTokenSupply  uint64 `json:"preMigrationTokenSupply"`
	PostMigrationTokenSupply uint64 `json:"postMigrationTokenSupply"`

	SqrtStartPrice u128.Uint128 `json:"sqrtStartPrice"`

	// Curve is ordered from the lowest to the highest price segment.
	Curve [CurvePointCount]CurvePoint `json:"curve"`
}

func (c *PoolConfig) IsFixedTokenSupply() bool {
	return c.FixedTokenSupplyFlag != 0
}

// ProgramAccount pairs a decoded account with its address.
type ProgramAccount[T any] struct {
	Pubkey  solanago.PublicKey
	Account *T
}
