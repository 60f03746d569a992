package main

import (
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbc "github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List PoolConfig accounts of the program",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().String("fee-claimer", "", "only configs with this fee claimer")
	cmd.Flags().String("quote-mint", "", "only configs quoted in this mint")
	cmd.MarkFlagsMutuallyExclusive("fee-claimer", "quote-mint")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	reg := prometheus.NewRegistry()
	stopMetrics := a.serveMetrics(reg)
	defer stopMetrics()

	state := a.newStateService(reg)
	ctx := cmd.Context()

	feeClaimer, _ := cmd.Flags().GetString("fee-claimer")
	quoteMint, _ := cmd.Flags().GetString("quote-mint")

	var accounts []dbc.ProgramAccount[dbc.PoolConfig]
	switch {
	case feeClaimer != "":
		pk, err := solanago.PublicKeyFromBase58(feeClaimer)
		if err != nil {
			return fmt.Errorf("invalid fee claimer %q: %w", feeClaimer, err)
		}
		accounts, err = state.GetPoolConfigsByFeeClaimer(ctx, pk)
		if err != nil {
			return err
		}
	case quoteMint != "":
		pk, err := solanago.PublicKeyFromBase58(quoteMint)
		if err != nil {
			return fmt.Errorf("invalid quote mint %q: %w", quoteMint, err)
		}
		accounts, err = state.GetPoolConfigsByQuoteMint(ctx, pk)
		if err != nil {
			return err
		}
	default:
		accounts, err = state.GetProgramPoolConfigs(ctx)
		if err != nil {
			return err
		}
	}

	a.logger.Info("listed pool configs", zap.Int("count", len(accounts)))

	entries := make([]entry, len(accounts))
	for i, acc := range accounts {
		entries[i] = entry{Address: acc.Pubkey, Config: acc.Account}
	}
	return a.out.print(entries)
}
