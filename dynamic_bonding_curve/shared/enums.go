package shared

import "fmt"

type ActivationType uint8

const (
	ActivationTypeSlot      ActivationType = 0
	ActivationTypeTimestamp ActivationType = 1
)

func (t ActivationType) String() string {
	switch t {
	case ActivationTypeSlot:
		return "Slot"
	case ActivationTypeTimestamp:
		return "Timestamp"
	}
	return unknown(uint8(t))
}

func (t ActivationType) Valid() bool { return t <= ActivationTypeTimestamp }

type TokenType uint8

const (
	TokenTypeSPL       TokenType = 0
	TokenTypeToken2022 TokenType = 1
)

func (t TokenType) String() string {
	switch t {
	case TokenTypeSPL:
		return "SPL"
	case TokenTypeToken2022:
		return "Token2022"
	}
	return unknown(uint8(t))
}

func (t TokenType) Valid() bool { return t <= TokenTypeToken2022 }

type CollectFeeMode uint8

const (
	CollectFeeModeQuoteToken  CollectFeeMode = 0
	CollectFeeModeOutputToken CollectFeeMode = 1
)

func (m CollectFeeMode) String() string {
	switch m {
	case CollectFeeModeQuoteToken:
		return "QuoteToken"
	case CollectFeeModeOutputToken:
		return "OutputToken"
	}
	return unknown(uint8(m))
}

func (m CollectFeeMode) Valid() bool { return m <= CollectFeeModeOutputToken }

type MigrationOption uint8

const (
	MigrationOptionMetDamm   MigrationOption = 0
	MigrationOptionMetDammV2 MigrationOption = 1
)

func (o MigrationOption) String() string {
	switch o {
	case MigrationOptionMetDamm:
		return "MeteoraDamm"
	case MigrationOptionMetDammV2:
		return "MeteoraDammV2"
	}
	return unknown(uint8(o))
}

func (o MigrationOption) Valid() bool { return o <= MigrationOptionMetDammV2 }

type BaseFeeMode uint8

const (
	BaseFeeModeFeeSchedulerLinear      BaseFeeMode = 0
	BaseFeeModeFeeSchedulerExponential BaseFeeMode = 1
	BaseFeeModeRateLimiter             BaseFeeMode = 2
)

func (m BaseFeeMode) String() string {
	switch m {
	case BaseFeeModeFeeSchedulerLinear:
		return "FeeSchedulerLinear"
	case BaseFeeModeFeeSchedulerExponential:
		return "FeeSchedulerExponential"
	case BaseFeeModeRateLimiter:
		return "RateLimiter"
	}
	return unknown(uint8(m))
}

func (m BaseFeeMode) Valid() bool { return m <= BaseFeeModeRateLimiter }

type MigrationFeeOption uint8

const (
	MigrationFeeOptionFixedBps25   MigrationFeeOption = 0
	MigrationFeeOptionFixedBps30   MigrationFeeOption = 1
	MigrationFeeOptionFixedBps100  MigrationFeeOption = 2
	MigrationFeeOptionFixedBps200  MigrationFeeOption = 3
	MigrationFeeOptionFixedBps400  MigrationFeeOption = 4
	MigrationFeeOptionFixedBps600  MigrationFeeOption = 5
	MigrationFeeOptionCustomizable MigrationFeeOption = 6
)

var migrationFeeOptionBps = map[MigrationFeeOption]uint16{
	MigrationFeeOptionFixedBps25:  25,
	MigrationFeeOptionFixedBps30:  30,
	MigrationFeeOptionFixedBps100: 100,
	MigrationFeeOptionFixedBps200: 200,
	MigrationFeeOptionFixedBps400: 400,
	MigrationFeeOptionFixedBps600: 600,
}

// FixedBps returns the migrated pool fee for the fixed options.
// ok is false for Customizable and unknown values.
func (o MigrationFeeOption) FixedBps() (bps uint16, ok bool) {
	bps, ok = migrationFeeOptionBps[o]
	return
}

func (o MigrationFeeOption) String() string {
	if bps, ok := o.FixedBps(); ok {
		return fmt.Sprintf("FixedBps%d", bps)
	}
	if o == MigrationFeeOptionCustomizable {
		return "Customizable"
	}
	return unknown(uint8(o))
}

func (o MigrationFeeOption) Valid() bool { return o <= MigrationFeeOptionCustomizable }

type TokenDecimal uint8

const (
	TokenDecimalSix   TokenDecimal = 6
	TokenDecimalSeven TokenDecimal = 7
	TokenDecimalEight TokenDecimal = 8
	TokenDecimalNine  TokenDecimal = 9
)

func (d TokenDecimal) Valid() bool { return d >= TokenDecimalSix && d <= TokenDecimalNine }

type TokenUpdateAuthorityOption uint8

const (
	TokenUpdateAuthorityCreatorUpdateAuthority        TokenUpdateAuthorityOption = 0
	TokenUpdateAuthorityImmutable                     TokenUpdateAuthorityOption = 1
	TokenUpdateAuthorityPartnerUpdateAuthority        TokenUpdateAuthorityOption = 2
	TokenUpdateAuthorityCreatorUpdateAndMintAuthority TokenUpdateAuthorityOption = 3
	TokenUpdateAuthorityPartnerUpdateAndMintAuthority TokenUpdateAuthorityOption = 4
)

func (o TokenUpdateAuthorityOption) String() string {
	switch o {
	case TokenUpdateAuthorityCreatorUpdateAuthority:
		return "CreatorUpdateAuthority"
	case TokenUpdateAuthorityImmutable:
		return "Immutable"
	case TokenUpdateAuthorityPartnerUpdateAuthority:
		return "PartnerUpdateAuthority"
	case TokenUpdateAuthorityCreatorUpdateAndMintAuthority:
		return "CreatorUpdateAndMintAuthority"
	case TokenUpdateAuthorityPartnerUpdateAndMintAuthority:
		return "PartnerUpdateAndMintAuthority"
	}
	return unknown(uint8(o))
}

func (o TokenUpdateAuthorityOption) Valid() bool {
	return o <= TokenUpdateAuthorityPartnerUpdateAndMintAuthority
}

func unknown(v uint8) string {
	return fmt.Sprintf("Unknown(%d)", v)
}
