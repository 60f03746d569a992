package dynamic_bonding_curve

import (
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/krazyTry/meteora-dbc-config/solana"
)

type DynamicBondingCurveProgram struct {
	RPC        solana.AccountReader
	ProgramID  solanago.PublicKey
	Commitment rpc.CommitmentType
}

func NewDynamicBondingCurveProgram(reader solana.AccountReader, commitment rpc.CommitmentType) *DynamicBondingCurveProgram {
	return &DynamicBondingCurveProgram{
		RPC:        reader,
		ProgramID:  DynamicBondingCurveProgramID,
		Commitment: commitment,
	}
}
