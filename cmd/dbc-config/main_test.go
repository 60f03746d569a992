package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	dbc "github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec/codectest"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/helpers"
	"github.com/krazyTry/meteora-dbc-config/internal/config"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), err
}

func writeDump(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "account.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDecodeJSONOutput(t *testing.T) {
	cfg := codectest.SamplePoolConfig()
	path := writeDump(t, hex.EncodeToString(codectest.MustEncodePoolConfig(cfg)))

	out, err := runCLI(t, "", "decode", "--file", path, "--encoding", "hex", "--format", "json", "--log-level", "error")
	require.NoError(t, err)
	require.True(t, gjson.Valid(out), out)

	doc := []byte(out)
	assert.Equal(t, cfg.QuoteMint.String(), gjson.GetBytes(doc, "config.quoteMint").String())
	assert.Equal(t, "233334906748540631", gjson.GetBytes(doc, "config.sqrtStartPrice").String())
	assert.Equal(t, "622226417996106429201027821619672729", gjson.GetBytes(doc, "config.curve.0.liquidity").String())
	assert.Equal(t, int64(20), gjson.GetBytes(doc, "config.curve.#").Int())
	assert.Equal(t, int64(6), gjson.GetBytes(doc, "config.tokenDecimal").Int())
	assert.Equal(t, int64(5000), gjson.GetBytes(doc, "derived.cliffFeeBps").Int())
	assert.Equal(t, int64(5000), gjson.GetBytes(doc, "derived.maxBaseFeeBps").Int())
	assert.True(t, gjson.GetBytes(doc, "derived.minBaseFeeBps").Exists())
	assert.Equal(t, "29000000", gjson.GetBytes(doc, "derived.totalLockedVesting").String())
	assert.Equal(t, helpers.DerivePartnerMetadata(cfg.FeeClaimer).String(), gjson.GetBytes(doc, "derived.partnerMetadata").String())
	assert.False(t, gjson.GetBytes(doc, "address").Exists())
}

func TestDecodeTextOutputFromStdin(t *testing.T) {
	data := codectest.MustEncodePoolConfig(codectest.SamplePoolConfig())

	out, err := runCLI(t, hex.EncodeToString(data), "decode", "--encoding", "hex", "--curve-points", "3", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "PoolConfig")
	assert.Contains(t, out, "FeeSchedulerExponential")
	assert.Contains(t, out, "MeteoraDammV2")
	assert.Contains(t, out, "233334906748540631")
	assert.Contains(t, out, "20 of 20")
	assert.Contains(t, out, "... 17 more")
}

func TestDecodeRejectsForeignAccount(t *testing.T) {
	data := codectest.MustEncodePoolConfig(codectest.SamplePoolConfig())
	copy(data, []byte("VirtPool"))
	path := writeDump(t, hex.EncodeToString(data))

	_, err := runCLI(t, "", "decode", "--file", path, "--encoding", "hex", "--log-level", "error")
	assert.ErrorIs(t, err, codec.ErrNotPoolConfig)
}

func TestDecodeRejectsBadEncoding(t *testing.T) {
	_, err := runCLI(t, "", "decode", "--encoding", "base32", "--log-level", "error")
	assert.Error(t, err)
}

func TestInvalidFormatFlag(t *testing.T) {
	_, err := runCLI(t, "", "decode", "--format", "yaml", "--log-level", "error")
	assert.Error(t, err)
}

func TestGetRejectsInvalidAddress(t *testing.T) {
	_, err := runCLI(t, "", "get", "not-a-key", "--log-level", "error")
	assert.Error(t, err)
}

func TestFlagDefaultsMatchServiceDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("", newRootCmd().PersistentFlags())
	require.NoError(t, err)
	assert.Equal(t, dbc.DefaultMaxRetries, cfg.MaxRetries)
	assert.Equal(t, dbc.DefaultRetryBackoff, cfg.RetryBackoff)
	assert.Equal(t, dbc.DefaultMaxRetryBackoff, cfg.MaxRetryBackoff)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, config.DefaultCurvePoints, cfg.CurvePoints)
	assert.Equal(t, config.DefaultQuoteDecimals, cfg.QuoteDecimals)
}
