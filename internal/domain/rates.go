package domain

import "github.com/shopspring/decimal"

// RatesConfig carries every jurisdiction-specific numeric parameter used by
// the pension formulas. The engine never embeds defaults for these; the
// config is supplied externally and treated as immutable. All rates are
// decimal fractions.
//
// The tax and public-service-fee fields are validated and passed through for
// the presentation layer; the engine itself performs no tax computation.
type RatesConfig struct {
	IncomeBaseAmount        decimal.Decimal `yaml:"income_base_amount" json:"income_base_amount"`
	PriceBaseAmount         decimal.Decimal `yaml:"price_base_amount" json:"price_base_amount"`
	PublicPensionRate       decimal.Decimal `yaml:"public_pension_rate" json:"public_pension_rate"`
	PremiumPensionRate      decimal.Decimal `yaml:"premium_pension_rate" json:"premium_pension_rate"`
	PensionableIncomeRatio  decimal.Decimal `yaml:"pensionable_income_ratio" json:"pensionable_income_ratio"`
	IBBPensionCapMultiplier decimal.Decimal `yaml:"ibb_pension_cap_multiplier" json:"ibb_pension_cap_multiplier"`
	ITP1LowerRate           decimal.Decimal `yaml:"itp1_lower_rate" json:"itp1_lower_rate"`
	ITP1HigherRate          decimal.Decimal `yaml:"itp1_higher_rate" json:"itp1_higher_rate"`
	ITP1CapMultiplier       decimal.Decimal `yaml:"itp1_cap_multiplier" json:"itp1_cap_multiplier"`
	DefaultOccupationalRate decimal.Decimal `yaml:"default_occupational_rate" json:"default_occupational_rate"`
	MunicipalTaxRate        decimal.Decimal `yaml:"municipal_tax_rate" json:"municipal_tax_rate"`
	StateTaxRate            decimal.Decimal `yaml:"state_tax_rate" json:"state_tax_rate"`
	StateTaxThreshold       decimal.Decimal `yaml:"state_tax_threshold" json:"state_tax_threshold"`
	PublicServiceFeeRate    decimal.Decimal `yaml:"public_service_fee_rate" json:"public_service_fee_rate"`
	PublicServiceFeeCap     decimal.Decimal `yaml:"public_service_fee_cap" json:"public_service_fee_cap"`
}

// requiredRates maps field names to accessors for validation. Tax fields may
// legitimately be zero in some municipalities, so only the pension parameters
// are strictly required to be positive.
var requiredRates = []struct {
	name string
	get  func(*RatesConfig) decimal.Decimal
}{
	{"income_base_amount", func(rc *RatesConfig) decimal.Decimal { return rc.IncomeBaseAmount }},
	{"price_base_amount", func(rc *RatesConfig) decimal.Decimal { return rc.PriceBaseAmount }},
	{"public_pension_rate", func(rc *RatesConfig) decimal.Decimal { return rc.PublicPensionRate }},
	{"premium_pension_rate", func(rc *RatesConfig) decimal.Decimal { return rc.PremiumPensionRate }},
	{"pensionable_income_ratio", func(rc *RatesConfig) decimal.Decimal { return rc.PensionableIncomeRatio }},
	{"ibb_pension_cap_multiplier", func(rc *RatesConfig) decimal.Decimal { return rc.IBBPensionCapMultiplier }},
	{"itp1_lower_rate", func(rc *RatesConfig) decimal.Decimal { return rc.ITP1LowerRate }},
	{"itp1_higher_rate", func(rc *RatesConfig) decimal.Decimal { return rc.ITP1HigherRate }},
	{"itp1_cap_multiplier", func(rc *RatesConfig) decimal.Decimal { return rc.ITP1CapMultiplier }},
	{"default_occupational_rate", func(rc *RatesConfig) decimal.Decimal { return rc.DefaultOccupationalRate }},
}

// Validate returns ErrConfigIncomplete when a required parameter is missing
// or non-positive.
func (rc *RatesConfig) Validate() error {
	for _, f := range requiredRates {
		if !f.get(rc).IsPositive() {
			return configIncompletef("missing required field %s", f.name)
		}
	}
	if rc.MunicipalTaxRate.IsNegative() || rc.StateTaxRate.IsNegative() ||
		rc.StateTaxThreshold.IsNegative() || rc.PublicServiceFeeRate.IsNegative() ||
		rc.PublicServiceFeeCap.IsNegative() {
		return configIncompletef("tax fields must not be negative")
	}
	return nil
}

// MonthlyPensionableIncomeCap returns the monthly ceiling on pensionable
// income: IBB × cap multiplier / 12.
func (rc *RatesConfig) MonthlyPensionableIncomeCap() decimal.Decimal {
	return rc.IncomeBaseAmount.Mul(rc.IBBPensionCapMultiplier).Div(decimal.NewFromInt(12))
}

// MonthlyITP1Cap returns the monthly income breakpoint between the two ITP1
// tiers: IBB × ITP1 cap multiplier / 12.
func (rc *RatesConfig) MonthlyITP1Cap() decimal.Decimal {
	return rc.IncomeBaseAmount.Mul(rc.ITP1CapMultiplier).Div(decimal.NewFromInt(12))
}
