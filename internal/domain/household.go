package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeKind distinguishes pensionable job income from other income streams.
type IncomeKind string

const (
	IncomeKindJob   IncomeKind = "job"
	IncomeKindOther IncomeKind = "other"
)

// PensionScheme identifies the occupational pension agreement attached to a
// job income. Schemes without a modeled tier formula accrue at the flat
// default rate from RatesConfig.
type PensionScheme string

const (
	SchemeITP1   PensionScheme = "ITP1"
	SchemeITP2   PensionScheme = "ITP2"
	SchemeSAFLO  PensionScheme = "SAF-LO"
	SchemeAKAPKR PensionScheme = "AKAP-KR"
	SchemePA16   PensionScheme = "PA16"
	SchemeOther  PensionScheme = "Other"
)

// ContributionInputType says how a custom occupational contribution for the
// "Other" scheme was entered: as a rate or as a fixed monthly amount.
type ContributionInputType string

const (
	ContributionInputPercentage ContributionInputType = "percentage"
	ContributionInputAmount     ContributionInputType = "amount"
)

// Income is one income stream belonging to a Person. The custom contribution
// fields are only interpreted when Scheme is SchemeOther; CustomRate is a
// decimal fraction (0.045 = 4.5%), normalized once at the input boundary.
type Income struct {
	Label                 string                `yaml:"label" json:"label"`
	MonthlyAmount         decimal.Decimal       `yaml:"monthly_amount" json:"monthly_amount"`
	Kind                  IncomeKind            `yaml:"kind" json:"kind"`
	Scheme                PensionScheme         `yaml:"pension_scheme,omitempty" json:"pension_scheme,omitempty"`
	TPInputType           ContributionInputType `yaml:"tp_input_type,omitempty" json:"tp_input_type,omitempty"`
	CustomRate            *decimal.Decimal      `yaml:"custom_rate,omitempty" json:"custom_rate,omitempty"`
	CustomAmount          *decimal.Decimal      `yaml:"custom_amount,omitempty" json:"custom_amount,omitempty"`
	SalaryExchangeMonthly decimal.Decimal       `yaml:"salary_exchange_monthly,omitempty" json:"salary_exchange_monthly,omitempty"`
}

// IsJob reports whether the income accrues pension rights.
func (in Income) IsJob() bool {
	return in.Kind == IncomeKindJob
}

// Person is one household member with their income streams and recurring
// monthly savings.
type Person struct {
	ID                  uuid.UUID       `yaml:"id" json:"id"`
	Name                string          `yaml:"name" json:"name"`
	BirthYear           int             `yaml:"birth_year" json:"birth_year"`
	Incomes             []Income        `yaml:"incomes" json:"incomes"`
	OtherSavingsMonthly decimal.Decimal `yaml:"other_savings_monthly,omitempty" json:"other_savings_monthly,omitempty"`
	IPSMonthly          decimal.Decimal `yaml:"ips_monthly,omitempty" json:"ips_monthly,omitempty"`
}

// Age returns the person's age in the given calendar year.
func (p Person) Age(year int) int {
	return year - p.BirthYear
}

// Asset is a single valued holding. A nil AnnualRate means the category
// default applies.
type Asset struct {
	ID         uuid.UUID        `yaml:"id" json:"id"`
	Category   AssetCategory    `yaml:"category" json:"category"`
	Label      string           `yaml:"label" json:"label"`
	Value      decimal.Decimal  `yaml:"value" json:"value"`
	AnnualRate *decimal.Decimal `yaml:"annual_rate,omitempty" json:"annual_rate,omitempty"`
}

// Rate returns the asset's effective annual rate of return.
func (a Asset) Rate() decimal.Decimal {
	if a.AnnualRate != nil {
		return *a.AnnualRate
	}
	return DefaultAnnualRate(a.Category)
}

// LiabilityType categorizes a debt.
type LiabilityType string

const (
	LiabilityHousingLoan LiabilityType = "housing_loan"
	LiabilityCarLoan     LiabilityType = "car_loan"
	LiabilityOther       LiabilityType = "other"
)

// Liability is a debt amortized at a fixed annual rate. The principal may
// exceed the value of any linked asset; that is permitted, not an error.
type Liability struct {
	ID                     uuid.UUID       `yaml:"id" json:"id"`
	Label                  string          `yaml:"label" json:"label"`
	Principal              decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualAmortizationRate decimal.Decimal `yaml:"annual_amortization_rate" json:"annual_amortization_rate"`
	Type                   LiabilityType   `yaml:"type" json:"type"`
}

// Household aggregates persons, assets and liabilities. The engine treats it
// as an immutable snapshot; projection runs operate on a Clone.
type Household struct {
	ID          uuid.UUID   `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Persons     []Person    `yaml:"persons" json:"persons"`
	Assets      []Asset     `yaml:"assets" json:"assets"`
	Liabilities []Liability `yaml:"liabilities" json:"liabilities"`
	CreatedAt   time.Time   `yaml:"created_at" json:"created_at"`
}

// HouseholdRef identifies a stored household snapshot.
type HouseholdRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NetWorth is the sum of asset values minus the sum of liability principals.
func (h *Household) NetWorth() decimal.Decimal {
	total := decimal.Zero
	for _, a := range h.Assets {
		total = total.Add(a.Value)
	}
	for _, l := range h.Liabilities {
		total = total.Sub(l.Principal)
	}
	return total
}

// Clone returns a deep copy safe to mutate during projection.
func (h *Household) Clone() *Household {
	c := *h
	c.Persons = make([]Person, len(h.Persons))
	for i, p := range h.Persons {
		cp := p
		cp.Incomes = make([]Income, len(p.Incomes))
		for j, in := range p.Incomes {
			ci := in
			if in.CustomRate != nil {
				r := *in.CustomRate
				ci.CustomRate = &r
			}
			if in.CustomAmount != nil {
				a := *in.CustomAmount
				ci.CustomAmount = &a
			}
			cp.Incomes[j] = ci
		}
		c.Persons[i] = cp
	}
	c.Assets = make([]Asset, len(h.Assets))
	for i, a := range h.Assets {
		ca := a
		if a.AnnualRate != nil {
			r := *a.AnnualRate
			ca.AnnualRate = &r
		}
		c.Assets[i] = ca
	}
	c.Liabilities = make([]Liability, len(h.Liabilities))
	copy(c.Liabilities, h.Liabilities)
	return &c
}

// Validate rejects snapshots the engine cannot meaningfully compute on.
func (h *Household) Validate() error {
	for _, a := range h.Assets {
		if a.Value.IsNegative() {
			return invalidInputf("asset %q has negative value %s", a.Label, a.Value)
		}
	}
	for _, l := range h.Liabilities {
		if l.Principal.IsNegative() {
			return invalidInputf("liability %q has negative principal %s", l.Label, l.Principal)
		}
	}
	return nil
}
