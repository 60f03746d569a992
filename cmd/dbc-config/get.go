package main

import (
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbc "github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <address>...",
		Short: "Fetch and decode PoolConfig accounts",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	addresses := make([]solanago.PublicKey, len(args))
	for i, arg := range args {
		pk, err := solanago.PublicKeyFromBase58(arg)
		if err != nil {
			return fmt.Errorf("invalid address %q: %w", arg, err)
		}
		addresses[i] = pk
	}

	reg := prometheus.NewRegistry()
	stopMetrics := a.serveMetrics(reg)
	defer stopMetrics()

	state := a.newStateService(reg)
	ctx := cmd.Context()

	if len(addresses) == 1 {
		cfg, err := state.GetPoolConfig(ctx, addresses[0])
		if err != nil {
			return err
		}
		return a.out.print([]entry{{Address: addresses[0], Config: cfg}})
	}

	cfgs, err := state.GetPoolConfigs(ctx, addresses)
	if err != nil {
		return err
	}
	entries := make([]entry, len(cfgs))
	for i, cfg := range cfgs {
		entries[i] = entry{Address: addresses[i], Config: cfg}
	}
	a.logger.Info("decoded pool configs", zap.Int("count", len(entries)))
	return a.out.print(entries)
}

func (a *app) newStateService(reg prometheus.Registerer) *dbc.StateService {
	opts := []dbc.Option{
		dbc.WithLogger(a.logger),
		dbc.WithRegisterer(reg),
		dbc.WithRetry(uint(a.cfg.MaxRetries), a.cfg.RetryBackoff, a.cfg.MaxRetryBackoff),
	}
	if a.cfg.EnumValidation {
		opts = append(opts, dbc.WithDecodeOptions(codec.WithEnumValidation()))
	}
	client := dbc.Create(rpc.New(a.cfg.RPCURL), a.cfg.Commitment, opts...)
	return client.State
}
