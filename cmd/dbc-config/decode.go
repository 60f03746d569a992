package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbc "github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec"
	"github.com/krazyTry/meteora-dbc-config/solana"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a PoolConfig account dump without RPC access",
		Args:  cobra.NoArgs,
		RunE:  runDecode,
	}
	cmd.Flags().String("file", "-", "account dump path, - for stdin")
	cmd.Flags().String("encoding", string(solana.EncodingBase64), "dump encoding (base64, base58, hex, binary, json)")
	return cmd
}

func runDecode(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	path, _ := cmd.Flags().GetString("file")
	encodingFlag, _ := cmd.Flags().GetString("encoding")
	encoding, err := solana.ParseDataEncoding(encodingFlag)
	if err != nil {
		return err
	}

	raw, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	data, err := accountData(a, raw, encoding)
	if err != nil {
		return err
	}

	var opts []codec.DecodeOption
	if a.cfg.EnumValidation {
		opts = append(opts, codec.WithEnumValidation())
	}
	cfg, err := codec.DecodePoolConfig(data, opts...)
	if err != nil {
		return err
	}
	return a.out.print([]entry{{Config: cfg}})
}

func accountData(a *app, raw []byte, encoding solana.DataEncoding) ([]byte, error) {
	if encoding != solana.EncodingJSON {
		data, err := solana.DecodeAccountData(raw, encoding)
		if err != nil {
			return nil, fmt.Errorf("decode %s input: %w", encoding, err)
		}
		return data, nil
	}

	acc, err := solana.AccountDataFromJSON(raw)
	if err != nil {
		return nil, err
	}
	if !acc.Owner.IsZero() && !acc.Owner.Equals(dbc.DynamicBondingCurveProgramID) {
		a.logger.Warn("account is not owned by the dynamic bonding curve program",
			zap.Stringer("owner", acc.Owner))
	}
	return acc.Data, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
