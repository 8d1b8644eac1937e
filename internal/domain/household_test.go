package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetWorth(t *testing.T) {
	h := &Household{
		Assets: []Asset{
			{Category: CategoryHousing, Value: decimal.NewFromInt(3_000_000)},
			{Category: CategoryCash, Value: decimal.NewFromInt(50_000)},
		},
		Liabilities: []Liability{
			{Principal: decimal.NewFromInt(2_000_000)},
		},
	}
	assert.True(t, h.NetWorth().Equal(decimal.NewFromInt(1_050_000)))

	empty := &Household{}
	assert.True(t, empty.NetWorth().IsZero())
}

func TestNetWorthMayBeNegative(t *testing.T) {
	h := &Household{
		Assets:      []Asset{{Category: CategoryCash, Value: decimal.NewFromInt(10_000)}},
		Liabilities: []Liability{{Principal: decimal.NewFromInt(60_000)}},
	}
	assert.True(t, h.NetWorth().Equal(decimal.NewFromInt(-50_000)))
}

func TestCloneIsDeep(t *testing.T) {
	rate := decimal.NewFromFloat(0.05)
	custom := decimal.NewFromFloat(0.06)
	h := &Household{
		ID:   uuid.New(),
		Name: "Original",
		Persons: []Person{{
			ID:   uuid.New(),
			Name: "Anna",
			Incomes: []Income{{
				Label:         "Lön",
				MonthlyAmount: decimal.NewFromInt(40_000),
				Kind:          IncomeKindJob,
				Scheme:        SchemeOther,
				CustomRate:    &custom,
			}},
		}},
		Assets: []Asset{{
			ID:         uuid.New(),
			Category:   CategoryFundsStocks,
			Value:      decimal.NewFromInt(100_000),
			AnnualRate: &rate,
		}},
		Liabilities: []Liability{{
			ID:        uuid.New(),
			Principal: decimal.NewFromInt(20_000),
		}},
	}

	c := h.Clone()
	c.Name = "Kopia"
	c.Assets[0].Value = decimal.NewFromInt(1)
	*c.Assets[0].AnnualRate = decimal.NewFromFloat(0.99)
	*c.Persons[0].Incomes[0].CustomRate = decimal.NewFromFloat(0.99)
	c.Liabilities[0].Principal = decimal.NewFromInt(1)

	assert.Equal(t, "Original", h.Name)
	assert.True(t, h.Assets[0].Value.Equal(decimal.NewFromInt(100_000)))
	assert.True(t, h.Assets[0].AnnualRate.Equal(rate))
	assert.True(t, h.Persons[0].Incomes[0].CustomRate.Equal(custom))
	assert.True(t, h.Liabilities[0].Principal.Equal(decimal.NewFromInt(20_000)))
}

func TestValidateRejectsNegativeValues(t *testing.T) {
	h := &Household{Assets: []Asset{{Label: "Konto", Value: decimal.NewFromInt(-1)}}}
	assert.ErrorIs(t, h.Validate(), ErrInvalidInput)

	h = &Household{Liabilities: []Liability{{Label: "Lån", Principal: decimal.NewFromInt(-1)}}}
	assert.ErrorIs(t, h.Validate(), ErrInvalidInput)

	require.NoError(t, (&Household{}).Validate())
}

func TestPersonAge(t *testing.T) {
	p := Person{BirthYear: 1985}
	assert.Equal(t, 41, p.Age(2026))
}

func TestAssetRateFallsBackToCategoryDefault(t *testing.T) {
	a := Asset{Category: CategoryFundsStocks}
	assert.True(t, a.Rate().Equal(decimal.NewFromFloat(0.07)))

	rate := decimal.NewFromFloat(0.12)
	a.AnnualRate = &rate
	assert.True(t, a.Rate().Equal(rate))

	vehicle := Asset{Category: CategoryVehicle}
	assert.True(t, vehicle.Rate().IsNegative())
}

func TestCategoryHelpers(t *testing.T) {
	assert.True(t, CategoryIPS.IsPension())
	assert.True(t, CategoryIncomePension.IsPension())
	assert.False(t, CategoryCash.IsPension())

	assert.Equal(t, "Fonder & Aktier", CategoryFundsStocks.DisplayName())
	assert.Equal(t, "okänd", AssetCategory("okänd").DisplayName())

	for _, c := range AllCategories {
		assert.NotEmpty(t, c.DisplayName())
	}
}
