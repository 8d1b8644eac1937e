package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1th5/formogenhetskompassen/internal/domain"
)

const ratesYAML = `
rates:
  income_base_amount: 76200
  price_base_amount: 57300
  public_pension_rate: 0.16
  premium_pension_rate: 0.025
  pensionable_income_ratio: 0.93
  ibb_pension_cap_multiplier: 7.5
  itp1_lower_rate: 0.045
  itp1_higher_rate: 0.30
  itp1_cap_multiplier: 7.5
  default_occupational_rate: 0.045
  municipal_tax_rate: 0.32
  state_tax_rate: 0.20
  state_tax_threshold: 615000
  public_service_fee_rate: 0.01
  public_service_fee_cap: 1249
`

func TestParseFullDocument(t *testing.T) {
	doc := ratesYAML + `
household:
  name: Familjen Berg
  persons:
    - name: Anna
      birth_year: 1985
      other_savings_monthly: 2000
      ips_monthly: 500
      incomes:
        - label: Lön
          monthly_amount: 40000
          kind: job
          pension_scheme: Other
          tp_input_type: percentage
          custom_rate_percent: 4.5
          salary_exchange_monthly: 1000
  assets:
    - category: funds_stocks
      label: Fonder & Aktier
      value: 100000
    - category: housing
      label: Bostad
      value: 3500000
      annual_rate: 0.015
  liabilities:
    - label: Bolån
      principal: 2100000
      annual_amortization_rate: 0.02
      type: housing_loan
`

	in, err := NewInputParser().Parse([]byte(doc))
	require.NoError(t, err)

	h := in.Household
	assert.Equal(t, "Familjen Berg", h.Name)
	require.Len(t, h.Persons, 1)
	require.Len(t, h.Assets, 2)
	require.Len(t, h.Liabilities, 1)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", h.ID.String())

	anna := h.Persons[0]
	assert.Equal(t, 1985, anna.BirthYear)
	assert.Equal(t, "2000", anna.OtherSavingsMonthly.String())
	require.Len(t, anna.Incomes, 1)

	income := anna.Incomes[0]
	assert.Equal(t, domain.IncomeKindJob, income.Kind)
	assert.Equal(t, domain.SchemeOther, income.Scheme)
	// 4.5% normalized to 0.045 exactly once at this boundary.
	require.NotNil(t, income.CustomRate)
	assert.Equal(t, "0.045", income.CustomRate.String())

	assert.Equal(t, domain.CategoryFundsStocks, h.Assets[0].Category)
	assert.Nil(t, h.Assets[0].AnnualRate)
	require.NotNil(t, h.Assets[1].AnnualRate)
	assert.Equal(t, "0.015", h.Assets[1].AnnualRate.String())

	assert.Equal(t, domain.LiabilityHousingLoan, h.Liabilities[0].Type)
	assert.True(t, in.Rates.PublicPensionRate.Equal(decimal.NewFromFloat(0.16)))
}

func TestParseJSONUsesSameBoundary(t *testing.T) {
	doc := `{
  "rates": {
    "income_base_amount": 76200,
    "price_base_amount": 57300,
    "public_pension_rate": 0.16,
    "premium_pension_rate": 0.025,
    "pensionable_income_ratio": 0.93,
    "ibb_pension_cap_multiplier": 7.5,
    "itp1_lower_rate": 0.045,
    "itp1_higher_rate": 0.30,
    "itp1_cap_multiplier": 7.5,
    "default_occupational_rate": 0.045
  },
  "household": {
    "name": "JSON-hushåll",
    "persons": [
      {
        "name": "Bo",
        "birth_year": 1990,
        "incomes": [
          {
            "label": "Lön",
            "monthly_amount": 35000,
            "kind": "job",
            "pension_scheme": "Other",
            "tp_input_type": "percentage",
            "custom_rate_percent": 6
          }
        ]
      }
    ]
  }
}`

	in, err := NewInputParser().ParseJSON([]byte(doc))
	require.NoError(t, err)
	require.Len(t, in.Household.Persons, 1)
	rate := in.Household.Persons[0].Incomes[0].CustomRate
	require.NotNil(t, rate)
	assert.Equal(t, "0.06", rate.String())
}

func TestLoadFromFile(t *testing.T) {
	in, err := NewInputParser().LoadFromFile("testdata/household.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Exempelhushållet", in.Household.Name)
	require.Len(t, in.Household.Persons, 2)
	assert.Equal(t, domain.SchemeSAFLO, in.Household.Persons[1].Incomes[0].Scheme)
	assert.Len(t, in.Household.Assets, 3)
	assert.Len(t, in.Household.Liabilities, 1)
	assert.True(t, in.Household.NetWorth().Equal(decimal.NewFromInt(2130000)))
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestPercentToDecimal(t *testing.T) {
	assert.Equal(t, "0.045", PercentToDecimal(decimal.RequireFromString("4.5")).String())
	assert.Equal(t, "0.5", PercentToDecimal(decimal.NewFromInt(50)).String())
	assert.Equal(t, "0", PercentToDecimal(decimal.Zero).String())
}

func TestParseRejectsMalformedDocuments(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("household: [unbalanced"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewInputParser().ParseJSON([]byte("{not json"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseRejectsMissingRates(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("household:\n  name: Tom\n"))
	assert.ErrorIs(t, err, domain.ErrConfigIncomplete)
}

func TestParseRejectsIncompleteRates(t *testing.T) {
	doc := `
rates:
  income_base_amount: 76200
household:
  name: Tom
`
	_, err := NewInputParser().Parse([]byte(doc))
	assert.ErrorIs(t, err, domain.ErrConfigIncomplete)
}

func TestParseRejectsMissingHousehold(t *testing.T) {
	_, err := NewInputParser().Parse([]byte(ratesYAML))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseRejectsNegativeValues(t *testing.T) {
	tests := []struct {
		name    string
		section string
	}{
		{"negative asset value", `
  assets:
    - category: cash
      label: Konto
      value: -100
`},
		{"unknown asset category", `
  assets:
    - category: bitcoin
      label: Krypto
      value: 50000
`},
		{"negative liability principal", `
  liabilities:
    - label: Lån
      principal: -1
      annual_amortization_rate: 0.02
`},
		{"negative custom rate", `
  persons:
    - name: Anna
      birth_year: 1985
      incomes:
        - label: Lön
          monthly_amount: 40000
          kind: job
          pension_scheme: Other
          tp_input_type: percentage
          custom_rate_percent: -50
`},
		{"negative income", `
  persons:
    - name: Anna
      birth_year: 1985
      incomes:
        - label: Lön
          monthly_amount: -40000
          kind: job
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ratesYAML + "household:\n  name: Test\n" + tt.section
			_, err := NewInputParser().Parse([]byte(doc))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestParseRejectsMutuallyExclusiveCustomFields(t *testing.T) {
	doc := ratesYAML + `
household:
  name: Test
  persons:
    - name: Anna
      birth_year: 1985
      incomes:
        - label: Lön
          monthly_amount: 40000
          kind: job
          pension_scheme: Other
          custom_rate_percent: 4.5
          custom_amount: 2000
`
	_, err := NewInputParser().Parse([]byte(doc))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
