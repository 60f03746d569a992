package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// MaxMultipleAccounts is the getMultipleAccounts request limit.
const MaxMultipleAccounts = 100

func GetAccountInfo(ctx context.Context, reader AccountReader, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetAccountInfoResult, error) {
	return reader.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{Commitment: commitment, Encoding: solana.EncodingBase64})
}

func GetMultipleAccountInfo(ctx context.Context, reader AccountReader, accounts []solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetMultipleAccountsResult, error) {
	return reader.GetMultipleAccountsWithOpts(ctx, accounts, &rpc.GetMultipleAccountsOpts{Commitment: commitment, Encoding: solana.EncodingBase64})
}

// ChunkKeys splits accounts into batches of at most size keys.
func ChunkKeys(accounts []solana.PublicKey, size int) [][]solana.PublicKey {
	if size <= 0 {
		size = MaxMultipleAccounts
	}
	var chunks [][]solana.PublicKey
	for start := 0; start < len(accounts); start += size {
		end := min(start+size, len(accounts))
		chunks = append(chunks, accounts[start:end])
	}
	return chunks
}
