package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	dbc "github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	DefaultLogLevel      = "info"
	DefaultCurvePoints   = 5
	DefaultQuoteDecimals = 9
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	RPCURL          string
	Commitment      rpc.CommitmentType
	MaxRetries      int
	RetryBackoff    time.Duration
	MaxRetryBackoff time.Duration
	LogLevel        string
	Format          string
	CurvePoints     int
	QuoteDecimals   int
	MetricsAddr     string
	EnumValidation  bool
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DBC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("rpc", rpc.MainNetBeta_RPC)
	v.SetDefault("commitment", string(rpc.CommitmentConfirmed))
	v.SetDefault("max-retries", dbc.DefaultMaxRetries)
	v.SetDefault("retry-backoff", dbc.DefaultRetryBackoff)
	v.SetDefault("max-retry-backoff", dbc.DefaultMaxRetryBackoff)
	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("format", FormatText)
	v.SetDefault("curve-points", DefaultCurvePoints)
	v.SetDefault("quote-decimals", DefaultQuoteDecimals)
	v.SetDefault("metrics-addr", "")
	v.SetDefault("validate-enums", false)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("dbc-config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		RPCURL:          strings.TrimSpace(v.GetString("rpc")),
		Commitment:      rpc.CommitmentType(strings.ToLower(v.GetString("commitment"))),
		MaxRetries:      v.GetInt("max-retries"),
		RetryBackoff:    v.GetDuration("retry-backoff"),
		MaxRetryBackoff: v.GetDuration("max-retry-backoff"),
		LogLevel:        v.GetString("log-level"),
		Format:          strings.ToLower(v.GetString("format")),
		CurvePoints:     v.GetInt("curve-points"),
		QuoteDecimals:   v.GetInt("quote-decimals"),
		MetricsAddr:     v.GetString("metrics-addr"),
		EnumValidation:  v.GetBool("validate-enums"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.RPCURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid rpc url %q", c.RPCURL)
	}
	switch c.Commitment {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
	default:
		return fmt.Errorf("invalid commitment %q", c.Commitment)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max-retries must be >= 0, got %d", c.MaxRetries)
	}
	if c.RetryBackoff <= 0 || c.MaxRetryBackoff < c.RetryBackoff {
		return fmt.Errorf("invalid retry backoff %s..%s", c.RetryBackoff, c.MaxRetryBackoff)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q", c.Format)
	}
	if c.CurvePoints < 0 {
		return fmt.Errorf("curve-points must be >= 0, got %d", c.CurvePoints)
	}
	if c.QuoteDecimals < 0 || c.QuoteDecimals > 18 {
		return fmt.Errorf("quote-decimals out of range: %d", c.QuoteDecimals)
	}
	return nil
}
