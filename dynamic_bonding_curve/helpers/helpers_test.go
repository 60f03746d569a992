package helpers

import (
	"crypto/sha256"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec/codectest"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
	"github.com/krazyTry/meteora-dbc-config/u128"
)

func TestAccountDiscriminator(t *testing.T) {
	assert.Equal(t, codec.PoolConfigDiscriminator, AccountDiscriminator(AccountKeyPoolConfig))

	sum := sha256.Sum256([]byte("account:VirtualPool"))
	got := AccountDiscriminator(AccountKeyVirtualPool)
	assert.Equal(t, sum[:8], got[:])
}

func TestCreateProgramAccountFilter(t *testing.T) {
	filters := CreateProgramAccountFilter(AccountKeyPoolConfig, nil)
	require.Len(t, filters, 1)
	assert.Equal(t, uint64(0), filters[0].Memcmp.Offset)
	assert.Equal(t, codec.PoolConfigDiscriminator[:], []byte(filters[0].Memcmp.Bytes))

	claimer := codectest.SamplePoolConfig().FeeClaimer
	filters = CreateProgramAccountFilter(AccountKeyPoolConfig, &Filter{Owner: claimer, Offset: codec.FeeClaimerOffset})
	require.Len(t, filters, 2)
	assert.Equal(t, uint64(40), filters[1].Memcmp.Offset)
	assert.Equal(t, claimer[:], []byte(filters[1].Memcmp.Bytes))
}

func TestFeeNumeratorBps(t *testing.T) {
	assert.Equal(t, uint64(5000), FeeNumeratorToBps(500_000_000))
	assert.Equal(t, uint64(25), FeeNumeratorToBps(2_500_000))
	assert.Equal(t, "2500000", BpsToFeeNumerator(25).String())
	assert.Equal(t, uint64(100), FeeNumeratorToBps(BpsToFeeNumerator(100).Uint64()))
}

func TestLockedVesting(t *testing.T) {
	assert.True(t, IsDefaultLockedVesting(shared.LockedVestingConfig{}))

	lv := codectest.SamplePoolConfig().LockedVesting
	assert.False(t, IsDefaultLockedVesting(lv))
	assert.Equal(t, u128.FromUint64(1_000_000*24+5_000_000), TotalLockedVestingAmount(lv))

	huge := shared.LockedVestingConfig{
		AmountPerPeriod:   ^uint64(0),
		NumberOfPeriod:    ^uint64(0),
		CliffUnlockAmount: ^uint64(0),
	}
	// (2^64-1)^2 + 2^64-1 = 2^128 - 2^64
	assert.Equal(t, u128.New(0, ^uint64(0)), TotalLockedVestingAmount(huge))
}

func TestGetTotalTokenSupply(t *testing.T) {
	cfg := codectest.SamplePoolConfig()
	total, err := GetTotalTokenSupply(cfg)
	require.NoError(t, err)
	assert.Equal(t, uint64(800_000_000_000_000+200_000_000_000_000+29_000_000), total)

	cfg.SwapBaseAmount = ^uint64(0)
	_, err = GetTotalTokenSupply(cfg)
	assert.Error(t, err)
}

func TestGetPriceFromSqrtPrice(t *testing.T) {
	one := u128.New(0, 1) // 1.0 in Q64.64

	assert.True(t, decimal.NewFromInt(1).Equal(GetPriceFromSqrtPrice(one, 9, 9)))
	assert.True(t, decimal.RequireFromString("0.001").Equal(GetPriceFromSqrtPrice(one, 6, 9)))
	assert.True(t, decimal.NewFromInt(4).Equal(GetPriceFromSqrtPrice(u128.New(0, 2), 9, 9)))
	assert.True(t, GetPriceFromSqrtPrice(u128.Uint128{}, 6, 9).IsZero())
}

func TestGetSqrtPriceFromPrice(t *testing.T) {
	got, err := GetSqrtPriceFromPrice("1", 9, 9)
	require.NoError(t, err)
	assert.Equal(t, u128.New(0, 1), got)

	got, err = GetSqrtPriceFromPrice("4", 6, 6)
	require.NoError(t, err)
	assert.Equal(t, u128.New(0, 2), got)

	_, err = GetSqrtPriceFromPrice("-1", 6, 6)
	assert.Error(t, err)
	_, err = GetSqrtPriceFromPrice("x", 6, 6)
	assert.Error(t, err)
}

func TestActiveCurvePoints(t *testing.T) {
	cfg := codectest.SamplePoolConfig()
	assert.Len(t, ActiveCurvePoints(cfg), shared.CurvePointCount)

	for i := 3; i < shared.CurvePointCount; i++ {
		cfg.Curve[i] = shared.CurvePoint{}
	}
	points := ActiveCurvePoints(cfg)
	require.Len(t, points, 3)
	assert.Equal(t, cfg.Curve[2], points[2])

	// The returned slice is a copy.
	points[0].SqrtPrice = u128.Uint128{}
	assert.False(t, cfg.Curve[0].SqrtPrice.IsZero())

	assert.Empty(t, ActiveCurvePoints(&shared.PoolConfig{}))
}

func TestCurveProgress(t *testing.T) {
	cfg := &shared.PoolConfig{MigrationQuoteThreshold: 200}

	assert.True(t, decimal.Zero.Equal(CurveProgress(0, cfg)))
	assert.True(t, decimal.RequireFromString("0.25").Equal(CurveProgress(50, cfg)))
	assert.True(t, decimal.NewFromInt(1).Equal(CurveProgress(500, cfg)))

	cfg.MigrationQuoteThreshold = 0
	assert.True(t, decimal.NewFromInt(1).Equal(CurveProgress(0, cfg)))
}

func TestDeriveDbcPoolAddressOrdersMints(t *testing.T) {
	config := solanago.NewWallet().PublicKey()
	base := solanago.NewWallet().PublicKey()

	pool := DeriveDbcPoolAddress(NativeMint, base, config)
	assert.Equal(t, pool, DeriveDbcPoolAddress(base, NativeMint, config))
	assert.False(t, solanago.IsOnCurve(pool.Bytes()))
	assert.NotEqual(t, pool, DeriveDbcPoolAddress(USDCMint, base, config))

	vault := DeriveDbcTokenVaultAddress(pool, base)
	assert.NotEqual(t, vault, DeriveDbcTokenVaultAddress(pool, NativeMint))
}

func TestDerivePartnerMetadata(t *testing.T) {
	a := solanago.NewWallet().PublicKey()
	b := solanago.NewWallet().PublicKey()

	assert.Equal(t, DerivePartnerMetadata(a), DerivePartnerMetadata(a))
	assert.NotEqual(t, DerivePartnerMetadata(a), DerivePartnerMetadata(b))
	assert.False(t, solanago.IsOnCurve(DeriveDbcPoolAuthority().Bytes()))
}
