package helpers

import (
	solanago "github.com/gagliardetto/solana-go"
)

const (
	AccountKeyConfig              = "Config"
	AccountKeyPartnerMetadata     = "PartnerMetadata"
	AccountKeyPoolConfig          = "PoolConfig"
	AccountKeyVirtualPool         = "VirtualPool"
	AccountKeyVirtualPoolMetadata = "VirtualPoolMetadata"
)

var (
	DynamicBondingCurveProgramID = solanago.MustPublicKeyFromBase58("dbcij3LWUppWqq96dh6gJWwBifmcGfLSB5D4DuSMaqN")

	// NativeMint is wrapped SOL, the usual quote mint.
	NativeMint = solanago.SolMint
	USDCMint   = solanago.MustPublicKeyFromBase58("EPjFWvLFVh2Vy4ZoDjRGeqbSgiqfxDLjy2Dxh4rAtDdK")
)
