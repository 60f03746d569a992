package meteora

import (
	dbc "github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec"
)

// DecodePoolConfig decodes raw PoolConfig account data.
//
// Example:
//
// acc, _ := rpcClient.GetAccountInfo(ctx, configAddress)
//
// cfg, err := DecodePoolConfig(acc.GetBinary())
var DecodePoolConfig = codec.DecodePoolConfig

// NewStateService creates a service that fetches and decodes PoolConfig accounts.
//
// Example:
//
// state := NewStateService(rpc.New(rpc.MainNetBeta_RPC), rpc.CommitmentConfirmed)
//
// cfg, err := state.GetPoolConfig(ctx, configAddress)
var NewStateService = dbc.NewStateService

// NewClient creates a dynamic bonding curve client, defaulting to confirmed commitment.
var NewClient = dbc.Create
