package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/sugawarayuuta/sonnet"
	"github.com/tidwall/pretty"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/helpers"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/math/pool_fees"
	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/shared"
	"github.com/krazyTry/meteora-dbc-config/internal/config"
	"github.com/krazyTry/meteora-dbc-config/u128"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Faint(true)
)

type entry struct {
	Address solanago.PublicKey
	Config  *shared.PoolConfig
}

// derived holds values computed from a record for display.
type derived struct {
	PartnerMetadata    string       `json:"partnerMetadata"`
	StartPrice         string       `json:"startPrice"`
	MigrationPrice     string       `json:"migrationPrice"`
	CliffFeeBps        uint64       `json:"cliffFeeBps"`
	MinBaseFeeBps      *uint64      `json:"minBaseFeeBps,omitempty"`
	MaxBaseFeeBps      *uint64      `json:"maxBaseFeeBps,omitempty"`
	MaxDynamicFee      string       `json:"maxDynamicFeeNumerator"`
	ActiveCurvePoints  int          `json:"activeCurvePoints"`
	TotalLockedVesting u128.Uint128 `json:"totalLockedVesting"`
	TotalTokenSupply   *uint64      `json:"totalTokenSupply,omitempty"`
}

type jsonEntry struct {
	Address *solanago.PublicKey `json:"address,omitempty"`
	Config  *shared.PoolConfig  `json:"config"`
	Derived derived             `json:"derived"`
}

type printer struct {
	w             io.Writer
	format        string
	curvePoints   int
	quoteDecimals uint8
}

func newPrinter(w io.Writer, cfg config.Config) *printer {
	return &printer{
		w:             w,
		format:        cfg.Format,
		curvePoints:   cfg.CurvePoints,
		quoteDecimals: uint8(cfg.QuoteDecimals),
	}
}

func (p *printer) print(entries []entry) error {
	if p.format == config.FormatJSON {
		return p.printJSON(entries)
	}
	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(p.w, p.renderText(e)); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) derive(cfg *shared.PoolConfig) derived {
	d := derived{
		PartnerMetadata:    helpers.DerivePartnerMetadata(cfg.FeeClaimer).String(),
		StartPrice:         helpers.StartPrice(cfg, p.quoteDecimals).String(),
		MigrationPrice:     helpers.MigrationPrice(cfg, p.quoteDecimals).String(),
		CliffFeeBps:        helpers.FeeNumeratorToBps(cfg.PoolFees.BaseFee.CliffFeeNumerator),
		ActiveCurvePoints:  len(helpers.ActiveCurvePoints(cfg)),
		TotalLockedVesting: helpers.TotalLockedVestingAmount(cfg.LockedVesting),
	}
	if total, err := helpers.GetTotalTokenSupply(cfg); err == nil {
		d.TotalTokenSupply = &total
	}
	if h, err := pool_fees.GetBaseFeeHandler(cfg.PoolFees.BaseFee); err == nil {
		if minFee, err := h.MinBaseFeeNumerator(); err == nil {
			bps := helpers.FeeNumeratorToBps(minFee)
			d.MinBaseFeeBps = &bps
		}
		bps := helpers.FeeNumeratorToBps(h.MaxBaseFeeNumerator())
		d.MaxBaseFeeBps = &bps
	}
	d.MaxDynamicFee = pool_fees.MaxVariableFeeNumerator(cfg.PoolFees.DynamicFee).String()
	return d
}

func (p *printer) printJSON(entries []entry) error {
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		out[i] = jsonEntry{Config: e.Config, Derived: p.derive(e.Config)}
		if !e.Address.IsZero() {
			addr := e.Address
			out[i].Address = &addr
		}
	}

	var (
		raw []byte
		err error
	)
	if len(out) == 1 {
		raw, err = sonnet.Marshal(out[0])
	} else {
		raw, err = sonnet.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = p.w.Write(pretty.Pretty(raw))
	return err
}

type field struct {
	name  string
	value string
}

func (p *printer) renderText(e entry) string {
	cfg := e.Config
	d := p.derive(cfg)

	var b strings.Builder
	title := "PoolConfig"
	if !e.Address.IsZero() {
		title += " " + e.Address.String()
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	fees := cfg.PoolFees
	writeSection(&b, "accounts", []field{
		{"quote mint", cfg.QuoteMint.String()},
		{"fee claimer", cfg.FeeClaimer.String()},
		{"partner metadata", d.PartnerMetadata},
		{"leftover receiver", cfg.LeftoverReceiver.String()},
	})
	writeSection(&b, "fees", []field{
		{"base fee mode", fees.BaseFee.BaseFeeMode.String()},
		{"cliff fee numerator", fmt.Sprintf("%d (%d bps)", fees.BaseFee.CliffFeeNumerator, d.CliffFeeBps)},
		{"first factor", u64(uint64(fees.BaseFee.FirstFactor))},
		{"second factor", u64(fees.BaseFee.SecondFactor)},
		{"third factor", u64(fees.BaseFee.ThirdFactor)},
		{"base fee range", fmt.Sprintf("%s - %s bps", optionalU64(d.MinBaseFeeBps), optionalU64(d.MaxBaseFeeBps))},
		{"dynamic fee", strconv.FormatBool(fees.DynamicFee.IsInitialized())},
		{"bin step", u64(uint64(fees.DynamicFee.BinStep))},
		{"bin step u128", fees.DynamicFee.BinStepU128.String()},
		{"filter period", u64(uint64(fees.DynamicFee.FilterPeriod))},
		{"decay period", u64(uint64(fees.DynamicFee.DecayPeriod))},
		{"reduction factor", u64(uint64(fees.DynamicFee.ReductionFactor))},
		{"max volatility accumulator", u64(uint64(fees.DynamicFee.MaxVolatilityAccumulator))},
		{"variable fee control", u64(uint64(fees.DynamicFee.VariableFeeControl))},
		{"max dynamic fee numerator", d.MaxDynamicFee},
		{"protocol fee", pct(fees.ProtocolFeePercent)},
		{"referral fee", pct(fees.ReferralFeePercent)},
		{"collect fee mode", cfg.CollectFeeMode.String()},
		{"creator trading fee", pct(cfg.CreatorTradingFeePercentage)},
	})
	writeSection(&b, "token", []field{
		{"token type", cfg.TokenType.String()},
		{"token decimal", u64(uint64(cfg.TokenDecimal))},
		{"quote token flag", u64(uint64(cfg.QuoteTokenFlag))},
		{"update authority", cfg.TokenUpdateAuthority.String()},
		{"activation type", cfg.ActivationType.String()},
		{"version", u64(uint64(cfg.Version))},
		{"fixed token supply", strconv.FormatBool(cfg.IsFixedTokenSupply())},
		{"pre-migration supply", u64(cfg.PreMigrationTokenSupply)},
		{"post-migration supply", u64(cfg.PostMigrationTokenSupply)},
		{"total token supply", optionalU64(d.TotalTokenSupply)},
	})
	writeSection(&b, "migration", []field{
		{"option", cfg.MigrationOption.String()},
		{"fee option", cfg.MigrationFeeOption.String()},
		{"fee", pct(cfg.MigrationFeePercentage)},
		{"creator fee share", pct(cfg.CreatorMigrationFeePercentage)},
		{"quote threshold", u64(cfg.MigrationQuoteThreshold)},
		{"base threshold", u64(cfg.MigrationBaseThreshold)},
		{"swap base amount", u64(cfg.SwapBaseAmount)},
		{"sqrt price", cfg.MigrationSqrtPrice.String()},
		{"price", d.MigrationPrice},
		{"partner lp / locked", fmt.Sprintf("%d%% / %d%%", cfg.PartnerLpPercentage, cfg.PartnerLockedLpPercentage)},
		{"creator lp / locked", fmt.Sprintf("%d%% / %d%%", cfg.CreatorLpPercentage, cfg.CreatorLockedLpPercentage)},
	})
	lv := cfg.LockedVesting
	writeSection(&b, "locked vesting", []field{
		{"amount per period", u64(lv.AmountPerPeriod)},
		{"cliff duration", u64(lv.CliffDurationFromMigrationTime)},
		{"frequency", u64(lv.Frequency)},
		{"periods", u64(lv.NumberOfPeriod)},
		{"cliff unlock", u64(lv.CliffUnlockAmount)},
		{"total", d.TotalLockedVesting.String()},
	})
	writeSection(&b, "curve", []field{
		{"sqrt start price", cfg.SqrtStartPrice.String()},
		{"start price", d.StartPrice},
		{"active points", fmt.Sprintf("%d of %d", d.ActiveCurvePoints, shared.CurvePointCount)},
	})
	b.WriteString(p.renderCurve(cfg, d.ActiveCurvePoints))
	return b.String()
}

func (p *printer) renderCurve(cfg *shared.PoolConfig, active int) string {
	n := min(p.curvePoints, active)
	if n == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "sqrt price", "price", "liquidity")
	for i := 0; i < n; i++ {
		pt := cfg.Curve[i]
		price := helpers.GetPriceFromSqrtPrice(pt.SqrtPrice, uint8(cfg.TokenDecimal), p.quoteDecimals)
		t.Row(strconv.Itoa(i), pt.SqrtPrice.String(), price.String(), pt.Liquidity.String())
	}

	out := t.String() + "\n"
	if active > n {
		out += fmt.Sprintf("  ... %d more\n", active-n)
	}
	return out
}

func writeSection(b *strings.Builder, name string, fields []field) {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.name))
	}
	b.WriteString(sectionStyle.Render(name))
	b.WriteString("\n")
	for _, f := range fields {
		fmt.Fprintf(b, "  %-*s  %s\n", width, f.name, f.value)
	}
}

func u64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func pct(v uint8) string {
	return strconv.Itoa(int(v)) + "%"
}

func optionalU64(v *uint64) string {
	if v == nil {
		return "n/a"
	}
	return u64(*v)
}
