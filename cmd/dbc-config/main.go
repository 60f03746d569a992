package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	dbc "github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve"
	"github.com/krazyTry/meteora-dbc-config/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dbc-config",
		Short:        "Inspect Meteora dynamic bonding curve PoolConfig accounts",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file path")
	flags.String("rpc", rpc.MainNetBeta_RPC, "Solana RPC URL")
	flags.String("commitment", string(rpc.CommitmentConfirmed), "commitment (processed, confirmed, finalized)")
	flags.Int("max-retries", dbc.DefaultMaxRetries, "maximum retries per RPC call")
	flags.Duration("retry-backoff", dbc.DefaultRetryBackoff, "initial retry backoff")
	flags.Duration("max-retry-backoff", dbc.DefaultMaxRetryBackoff, "maximum retry backoff")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("format", config.FormatText, "output format (text, json)")
	flags.Int("curve-points", config.DefaultCurvePoints, "curve points shown in text output")
	flags.Int("quote-decimals", config.DefaultQuoteDecimals, "quote token decimals used for prices")
	flags.String("metrics-addr", "", "serve Prometheus metrics on this address")
	flags.Bool("validate-enums", false, "reject unknown enum values")

	root.AddCommand(newGetCmd(), newDecodeCmd(), newListCmd())
	return root
}

type app struct {
	cfg    config.Config
	logger *zap.Logger
	out    *printer
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		out:    newPrinter(cmd.OutOrStdout(), cfg),
	}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
