package solana

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkKeys(t *testing.T) {
	keys := make([]solana.PublicKey, 250)
	for i := range keys {
		keys[i][0] = byte(i)
	}

	chunks := ChunkKeys(keys, MaxMultipleAccounts)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 100)
	assert.Len(t, chunks[2], 50)
	assert.Equal(t, keys[249], chunks[2][49])

	assert.Empty(t, ChunkKeys(nil, 10))
	assert.Len(t, ChunkKeys(keys[:5], 0), 1)
}
