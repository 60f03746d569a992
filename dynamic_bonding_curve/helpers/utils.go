package helpers

import (
	"crypto/sha256"
	"errors"
	"math/big"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
	"github.com/krazyTry/meteora-dbc-config/u128"
)

// Filter narrows a program account scan to accounts holding Owner at Offset.
type Filter struct {
	Owner  solanago.PublicKey // Key to match
	Offset uint64             // Byte offset of the key inside the account
}

// AccountDiscriminator is the Anchor account discriminator for name.
func AccountDiscriminator(name string) [8]byte {
	hash := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out
}

func CreateProgramAccountFilter(key string, filter *Filter) []rpc.RPCFilter {
	disc := AccountDiscriminator(key)

	var filters []rpc.RPCFilter
	filters = append(filters, rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: 0,
			Bytes:  disc[:],
		},
	})

	if filter != nil {
		filters = append(filters, rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: filter.Offset,
				Bytes:  filter.Owner[:],
			},
		})
	}

	return filters
}

func IsNativeSol(mint solanago.PublicKey) bool {
	return mint.Equals(NativeMint)
}

func IsDefaultLockedVesting(lockedVesting shared.LockedVestingConfig) bool {
	return lockedVesting.AmountPerPeriod == 0 &&
		lockedVesting.CliffDurationFromMigrationTime == 0 &&
		lockedVesting.Frequency == 0 &&
		lockedVesting.NumberOfPeriod == 0 &&
		lockedVesting.CliffUnlockAmount == 0
}

// TotalLockedVestingAmount is amountPerPeriod * numberOfPeriod + cliffUnlockAmount.
// The result always fits in 128 bits.
func TotalLockedVestingAmount(lockedVesting shared.LockedVestingConfig) u128.Uint128 {
	total := new(big.Int).Mul(
		new(big.Int).SetUint64(lockedVesting.AmountPerPeriod),
		new(big.Int).SetUint64(lockedVesting.NumberOfPeriod),
	)
	total.Add(total, new(big.Int).SetUint64(lockedVesting.CliffUnlockAmount))
	out, _ := u128.FromBig(total)
	return out
}

// GetTotalTokenSupply is swap base amount + migration base threshold + total
// locked vesting, checked against u64.
func GetTotalTokenSupply(cfg *shared.PoolConfig) (uint64, error) {
	total := new(big.Int).Add(
		new(big.Int).SetUint64(cfg.SwapBaseAmount),
		new(big.Int).SetUint64(cfg.MigrationBaseThreshold),
	)
	total.Add(total, TotalLockedVestingAmount(cfg.LockedVesting).Big())
	return BigIntToU64(total)
}

func BpsToFeeNumerator(bps uint64) *big.Int {
	return new(big.Int).Div(new(big.Int).Mul(new(big.Int).SetUint64(bps), big.NewInt(shared.FeeDenominator)), big.NewInt(shared.MaxBasisPoint))
}

func FeeNumeratorToBps(feeNumerator uint64) uint64 {
	return new(big.Int).Div(new(big.Int).Mul(new(big.Int).SetUint64(feeNumerator), big.NewInt(shared.MaxBasisPoint)), big.NewInt(shared.FeeDenominator)).Uint64()
}

// BigIntToU64 converts a non-negative big.Int to uint64 with bounds check.
func BigIntToU64(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, nil
	}
	if v.Sign() < 0 {
		return 0, errors.New("value must be non-negative")
	}
	if v.BitLen() > 64 {
		return 0, errors.New("value overflows uint64")
	}
	return v.Uint64(), nil
}
