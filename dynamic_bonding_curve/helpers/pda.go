package helpers

import (
	"bytes"

	solanago "github.com/gagliardetto/solana-go"
)

var seed = struct {
	PoolAuthority   []byte
	Pool            []byte
	TokenVault      []byte
	PartnerMetadata []byte
}{
	PoolAuthority:   []byte("pool_authority"),
	Pool:            []byte("pool"),
	TokenVault:      []byte("token_vault"),
	PartnerMetadata: []byte("partner_metadata"),
}

func DeriveDbcPoolAuthority() solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.PoolAuthority}, DynamicBondingCurveProgramID)
	return pub
}

// DeriveDbcPoolAddress is the virtual pool launched from config for the
// given mint pair. The mints are ordered by byte value before hashing.
func DeriveDbcPoolAddress(quoteMint, baseMint, config solanago.PublicKey) solanago.PublicKey {
	first, second := baseMint, quoteMint
	if bytes.Compare(quoteMint.Bytes(), baseMint.Bytes()) > 0 {
		first, second = quoteMint, baseMint
	}
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.Pool, config.Bytes(), first.Bytes(), second.Bytes()}, DynamicBondingCurveProgramID)
	return pub
}

func DeriveDbcTokenVaultAddress(pool, mint solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.TokenVault, mint.Bytes(), pool.Bytes()}, DynamicBondingCurveProgramID)
	return pub
}

// DerivePartnerMetadata is the metadata account of the partner that claims
// fees for a config.
func DerivePartnerMetadata(feeClaimer solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{seed.PartnerMetadata, feeClaimer.Bytes()}, DynamicBondingCurveProgramID)
	return pub
}
