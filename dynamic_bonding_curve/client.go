package dynamic_bonding_curve

import (
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/krazyTry/meteora-dbc-config/solana"
)

// DynamicBondingCurveClient groups high-level services.
type DynamicBondingCurveClient struct {
	State      *StateService
	Commitment rpc.CommitmentType
	RPC        solana.AccountReader
}

// NewDynamicBondingCurveClient constructs a client with the given RPC connection.
func NewDynamicBondingCurveClient(reader solana.AccountReader, commitment rpc.CommitmentType, opts ...Option) *DynamicBondingCurveClient {
	return &DynamicBondingCurveClient{
		State:      NewStateService(reader, commitment, opts...),
		Commitment: commitment,
		RPC:        reader,
	}
}

// Create is a convenience constructor using confirmed commitment by default.
func Create(reader solana.AccountReader, commitment rpc.CommitmentType, opts ...Option) *DynamicBondingCurveClient {
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	return NewDynamicBondingCurveClient(reader, commitment, opts...)
}
