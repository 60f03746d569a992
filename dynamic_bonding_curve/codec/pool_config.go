package codec

import (
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
)

type decodeOptions struct {
	validateEnums bool
}

type DecodeOption func(*decodeOptions)

// WithEnumValidation rejects enum-coded bytes outside their known value sets
// with a *DomainError. Off by default: on-chain data is authoritative and a
// newer program version may add values.
func WithEnumValidation() DecodeOption {
	return func(o *decodeOptions) {
		o.validateEnums = true
	}
}

// Decoder holds decode options for repeated use. It carries no per-call
// state and is safe for concurrent use.
type Decoder struct {
	opts decodeOptions
}

func NewDecoder(opts ...DecodeOption) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

func (d *Decoder) Decode(data []byte) (*shared.PoolConfig, error) {
	c := newCursor(data)
	cfg, err := decodePoolConfig(c)
	if err != nil {
		return nil, err
	}
	if d.opts.validateEnums {
		if err := ValidateEnums(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// DecodePoolConfig decodes a raw PoolConfig account. It returns either a
// complete record or the first error met; data is never modified and bytes
// past PoolConfigSize are ignored.
func DecodePoolConfig(data []byte, opts ...DecodeOption) (*shared.PoolConfig, error) {
	return NewDecoder(opts...).Decode(data)
}

func decodePoolConfig(c *cursor) (*shared.PoolConfig, error) {
	if err := ValidateDiscriminator(c.data()); err != nil {
		return nil, err
	}
	if err := c.skip("discriminator", DiscriminatorSize); err != nil {
		return nil, err
	}

	var (
		cfg shared.PoolConfig
		err error
	)

	if cfg.QuoteMint, err = c.readPublicKey("quote_mint"); err != nil {
		return nil, err
	}
	if cfg.FeeClaimer, err = c.readPublicKey("fee_claimer"); err != nil {
		return nil, err
	}
	if cfg.LeftoverReceiver, err = c.readPublicKey("leftover_receiver"); err != nil {
		return nil, err
	}
	if cfg.PoolFees, err = decodePoolFeesConfig(c); err != nil {
		return nil, err
	}

	flags := []struct {
		field string
		dst   *uint8
	}{
		{"collect_fee_mode", (*uint8)(&cfg.CollectFeeMode)},
		{"migration_option", (*uint8)(&cfg.MigrationOption)},
		{"activation_type", (*uint8)(&cfg.ActivationType)},
		{"token_decimal", (*uint8)(&cfg.TokenDecimal)},
		{"version", &cfg.Version},
		{"token_type", (*uint8)(&cfg.TokenType)},
		{"quote_token_flag", &cfg.QuoteTokenFlag},
		{"partner_locked_lp_percentage", &cfg.PartnerLockedLpPercentage},
		{"partner_lp_percentage", &cfg.PartnerLpPercentage},
		{"creator_locked_lp_percentage", &cfg.CreatorLockedLpPercentage},
		{"creator_lp_percentage", &cfg.CreatorLpPercentage},
		{"migration_fee_option", (*uint8)(&cfg.MigrationFeeOption)},
		{"fixed_token_supply_flag", &cfg.FixedTokenSupplyFlag},
		{"creator_trading_fee_percentage", &cfg.CreatorTradingFeePercentage},
		{"token_update_authority", (*uint8)(&cfg.TokenUpdateAuthority)},
		{"migration_fee_percentage", &cfg.MigrationFeePercentage},
		{"creator_migration_fee_percentage", &cfg.CreatorMigrationFeePercentage},
	}
	for _, f := range flags {
		if *f.dst, err = c.readU8(f.field); err != nil {
			return nil, err
		}
	}
	if err = c.skip("padding_0", configFlagsReservedSize); err != nil {
		return nil, err
	}

	if cfg.SwapBaseAmount, err = c.readU64("swap_base_amount"); err != nil {
		return nil, err
	}
	if cfg.MigrationQuoteThreshold, err = c.readU64("migration_quote_threshold"); err != nil {
		return nil, err
	}
	if cfg.MigrationBaseThreshold, err = c.readU64("migration_base_threshold"); err != nil {
		return nil, err
	}
	if cfg.MigrationSqrtPrice, err = c.readU128("migration_sqrt_price"); err != nil {
		return nil, err
	}
	if cfg.LockedVesting, err = decodeLockedVestingConfig(c); err != nil {
		return nil, err
	}
	if cfg.PreMigrationTokenSupply, err = c.readU64("pre_migration_token_supply"); err != nil {
		return nil, err
	}
	if cfg.PostMigrationTokenSupply, err = c.readU64("post_migration_token_supply"); err != nil {
		return nil, err
	}
	if err = c.skip("padding_1", tokenSupplyReservedSize); err != nil {
		return nil, err
	}
	if cfg.SqrtStartPrice, err = c.readU128("sqrt_start_price"); err != nil {
		return nil, err
	}
	if cfg.Curve, err = decodeCurve(c); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateEnums checks every enum-coded byte of cfg against its known values
// and returns a *DomainError for the first one out of range.
func ValidateEnums(cfg *shared.PoolConfig) error {
	checks := []struct {
		field string
		value uint8
		ok    bool
	}{
		{"base_fee.base_fee_mode", uint8(cfg.PoolFees.BaseFee.BaseFeeMode), cfg.PoolFees.BaseFee.BaseFeeMode.Valid()},
		{"dynamic_fee.initialized", cfg.PoolFees.DynamicFee.Initialized, cfg.PoolFees.DynamicFee.Initialized <= 1},
		{"collect_fee_mode", uint8(cfg.CollectFeeMode), cfg.CollectFeeMode.Valid()},
		{"migration_option", uint8(cfg.MigrationOption), cfg.MigrationOption.Valid()},
		{"activation_type", uint8(cfg.ActivationType), cfg.ActivationType.Valid()},
		{"token_decimal", uint8(cfg.TokenDecimal), cfg.TokenDecimal.Valid()},
		{"token_type", uint8(cfg.TokenType), cfg.TokenType.Valid()},
		{"quote_token_flag", cfg.QuoteTokenFlag, cfg.QuoteTokenFlag <= 1},
		{"migration_fee_option", uint8(cfg.MigrationFeeOption), cfg.MigrationFeeOption.Valid()},
		{"fixed_token_supply_flag", cfg.FixedTokenSupplyFlag, cfg.FixedTokenSupplyFlag <= 1},
		{"token_update_authority", uint8(cfg.TokenUpdateAuthority), cfg.TokenUpdateAuthority.Valid()},
	}
	for _, check := range checks {
		if !check.ok {
			return &DomainError{Field: check.field, Value: check.value}
		}
	}
	return nil
}
