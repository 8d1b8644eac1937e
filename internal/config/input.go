// Package config parses and validates engine input documents. It owns the
// one and only percent-to-decimal conversion boundary: rate fields that
// arrive as raw percentages (custom occupational rates flagged with
// tp_input_type: percentage) are divided by 100 exactly once here, and the
// rest of the engine consumes decimal fractions only.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/1th5/formogenhetskompassen/internal/domain"
)

// Input is a fully validated, normalized engine input.
type Input struct {
	Household *domain.Household
	Rates     *domain.RatesConfig
	Ladder    []domain.WealthLevel
}

// InputParser handles parsing of input documents.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// document is the on-disk YAML shape. The household section uses input
// structs rather than domain structs so ids can be generated and percent
// fields normalized during mapping.
type document struct {
	Household *householdInput      `yaml:"household" json:"household"`
	Rates     *domain.RatesConfig  `yaml:"rates" json:"rates"`
	Ladder    []domain.WealthLevel `yaml:"ladder,omitempty" json:"ladder,omitempty"`
}

type householdInput struct {
	Name        string           `yaml:"name" json:"name"`
	Persons     []personInput    `yaml:"persons" json:"persons"`
	Assets      []assetInput     `yaml:"assets" json:"assets"`
	Liabilities []liabilityInput `yaml:"liabilities" json:"liabilities"`
}

type personInput struct {
	Name                string          `yaml:"name" json:"name"`
	BirthYear           int             `yaml:"birth_year" json:"birth_year"`
	Incomes             []incomeInput   `yaml:"incomes" json:"incomes"`
	OtherSavingsMonthly decimal.Decimal `yaml:"other_savings_monthly" json:"other_savings_monthly"`
	IPSMonthly          decimal.Decimal `yaml:"ips_monthly" json:"ips_monthly"`
}

type incomeInput struct {
	Label         string           `yaml:"label" json:"label"`
	MonthlyAmount decimal.Decimal  `yaml:"monthly_amount" json:"monthly_amount"`
	Kind          string           `yaml:"kind" json:"kind"`
	PensionScheme string           `yaml:"pension_scheme" json:"pension_scheme"`
	TPInputType   string           `yaml:"tp_input_type" json:"tp_input_type"`
	// CustomRatePercent is a raw percentage as entered in the UI (4.5 means
	// 4.5%). Normalized to a decimal fraction during mapping.
	CustomRatePercent     *decimal.Decimal `yaml:"custom_rate_percent" json:"custom_rate_percent"`
	CustomAmount          *decimal.Decimal `yaml:"custom_amount" json:"custom_amount"`
	SalaryExchangeMonthly decimal.Decimal  `yaml:"salary_exchange_monthly" json:"salary_exchange_monthly"`
}

type assetInput struct {
	Category   string           `yaml:"category" json:"category"`
	Label      string           `yaml:"label" json:"label"`
	Value      decimal.Decimal  `yaml:"value" json:"value"`
	AnnualRate *decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
}

type liabilityInput struct {
	Label                  string          `yaml:"label" json:"label"`
	Principal              decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualAmortizationRate decimal.Decimal `yaml:"annual_amortization_rate" json:"annual_amortization_rate"`
	Type                   string          `yaml:"type" json:"type"`
}

var knownCategories = func() map[domain.AssetCategory]struct{} {
	m := make(map[domain.AssetCategory]struct{}, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		m[c] = struct{}{}
	}
	return m
}()

// PercentToDecimal converts a raw percentage to the decimal fraction the
// engine consumes: 4.5 becomes 0.045. This is the single normalization
// boundary; nothing past this package divides by 100 again.
func PercentToDecimal(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(decimal.NewFromInt(100))
}

// LoadFromFile loads, validates and normalizes an input document.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse validates and normalizes a raw YAML document.
func (ip *InputParser) Parse(data []byte) (*Input, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", domain.ErrInvalidInput, err)
	}
	return ip.normalize(&doc)
}

// ParseJSON validates and normalizes the same document shape arriving as
// JSON, so API requests pass through the identical normalization boundary.
func (ip *InputParser) ParseJSON(data []byte) (*Input, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON: %v", domain.ErrInvalidInput, err)
	}
	return ip.normalize(&doc)
}

func (ip *InputParser) normalize(doc *document) (*Input, error) {
	if doc.Rates == nil {
		return nil, fmt.Errorf("%w: rates section is required", domain.ErrConfigIncomplete)
	}
	if err := doc.Rates.Validate(); err != nil {
		return nil, err
	}
	if doc.Household == nil {
		return nil, fmt.Errorf("%w: household section is required", domain.ErrInvalidInput)
	}

	household, err := ip.mapHousehold(doc.Household)
	if err != nil {
		return nil, err
	}
	if err := household.Validate(); err != nil {
		return nil, err
	}

	return &Input{Household: household, Rates: doc.Rates, Ladder: doc.Ladder}, nil
}

func (ip *InputParser) mapHousehold(in *householdInput) (*domain.Household, error) {
	h := &domain.Household{
		ID:        uuid.New(),
		Name:      in.Name,
		CreatedAt: time.Now().UTC(),
	}

	for i, p := range in.Persons {
		person, err := ip.mapPerson(&p)
		if err != nil {
			return nil, fmt.Errorf("person %d (%s): %w", i, p.Name, err)
		}
		h.Persons = append(h.Persons, person)
	}

	for i, a := range in.Assets {
		if a.Value.IsNegative() {
			return nil, fmt.Errorf("%w: asset %d (%s) has negative value", domain.ErrInvalidInput, i, a.Label)
		}
		if _, ok := knownCategories[domain.AssetCategory(a.Category)]; !ok {
			return nil, fmt.Errorf("%w: asset %d (%s) has unknown category %q", domain.ErrInvalidInput, i, a.Label, a.Category)
		}
		asset := domain.Asset{
			ID:         uuid.New(),
			Category:   domain.AssetCategory(a.Category),
			Label:      a.Label,
			Value:      a.Value,
			AnnualRate: a.AnnualRate,
		}
		h.Assets = append(h.Assets, asset)
	}

	for i, l := range in.Liabilities {
		if l.Principal.IsNegative() {
			return nil, fmt.Errorf("%w: liability %d (%s) has negative principal", domain.ErrInvalidInput, i, l.Label)
		}
		if l.AnnualAmortizationRate.IsNegative() {
			return nil, fmt.Errorf("%w: liability %d (%s) has negative amortization rate", domain.ErrInvalidInput, i, l.Label)
		}
		h.Liabilities = append(h.Liabilities, domain.Liability{
			ID:                     uuid.New(),
			Label:                  l.Label,
			Principal:              l.Principal,
			AnnualAmortizationRate: l.AnnualAmortizationRate,
			Type:                   domain.LiabilityType(l.Type),
		})
	}

	return h, nil
}

func (ip *InputParser) mapPerson(in *personInput) (domain.Person, error) {
	if in.Name == "" {
		return domain.Person{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	p := domain.Person{
		ID:                  uuid.New(),
		Name:                in.Name,
		BirthYear:           in.BirthYear,
		OtherSavingsMonthly: in.OtherSavingsMonthly,
		IPSMonthly:          in.IPSMonthly,
	}
	for i, inc := range in.Incomes {
		income, err := ip.mapIncome(&inc)
		if err != nil {
			return domain.Person{}, fmt.Errorf("income %d (%s): %w", i, inc.Label, err)
		}
		p.Incomes = append(p.Incomes, income)
	}
	return p, nil
}

func (ip *InputParser) mapIncome(in *incomeInput) (domain.Income, error) {
	if in.MonthlyAmount.IsNegative() {
		return domain.Income{}, fmt.Errorf("%w: monthly amount must not be negative", domain.ErrInvalidInput)
	}
	if in.CustomRatePercent != nil && in.CustomAmount != nil {
		return domain.Income{}, fmt.Errorf("%w: custom rate and custom amount are mutually exclusive", domain.ErrInvalidInput)
	}

	kind := domain.IncomeKind(in.Kind)
	if kind == "" {
		kind = domain.IncomeKindOther
	}

	income := domain.Income{
		Label:                 in.Label,
		MonthlyAmount:         in.MonthlyAmount,
		Kind:                  kind,
		Scheme:                domain.PensionScheme(in.PensionScheme),
		TPInputType:           domain.ContributionInputType(in.TPInputType),
		SalaryExchangeMonthly: in.SalaryExchangeMonthly,
	}

	if in.CustomRatePercent != nil {
		if in.CustomRatePercent.IsNegative() {
			return domain.Income{}, fmt.Errorf("%w: custom rate must not be negative", domain.ErrInvalidInput)
		}
		rate := PercentToDecimal(*in.CustomRatePercent)
		income.CustomRate = &rate
	}
	if in.CustomAmount != nil {
		if in.CustomAmount.IsNegative() {
			return domain.Income{}, fmt.Errorf("%w: custom amount must not be negative", domain.ErrInvalidInput)
		}
		amount := *in.CustomAmount
		income.CustomAmount = &amount
	}

	return income, nil
}
