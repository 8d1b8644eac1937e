package domain

import "github.com/shopspring/decimal"

// MonthlyIncreaseBreakdown itemizes one month's net-worth change for a
// household. Pension asset growth (returns) and new pension contributions
// are reported in separate fields so neither is double-counted. All fields
// sum exactly to IncreasePerMonth.
type MonthlyIncreaseBreakdown struct {
	AssetReturns                    decimal.Decimal `json:"asset_returns"`
	Amortization                    decimal.Decimal `json:"amortization"`
	IncomePensionContribution       decimal.Decimal `json:"income_pension_contribution"`
	IncomePensionReturn             decimal.Decimal `json:"income_pension_return"`
	PremiumPensionContribution      decimal.Decimal `json:"premium_pension_contribution"`
	PremiumPensionReturn            decimal.Decimal `json:"premium_pension_return"`
	OccupationalPensionContribution decimal.Decimal `json:"occupational_pension_contribution"`
	OccupationalPensionReturn       decimal.Decimal `json:"occupational_pension_return"`
	SalaryExchange                  decimal.Decimal `json:"salary_exchange"`
	PrivatePensionContribution      decimal.Decimal `json:"private_pension_contribution"`
	PrivatePensionReturn            decimal.Decimal `json:"private_pension_return"`
	OtherSavings                    decimal.Decimal `json:"other_savings"`
	IncreasePerMonth                decimal.Decimal `json:"increase_per_month"`
}

// Sum recomputes the total from the component fields. The aggregator
// guarantees Sum() equals IncreasePerMonth.
func (b MonthlyIncreaseBreakdown) Sum() decimal.Decimal {
	return b.AssetReturns.
		Add(b.Amortization).
		Add(b.IncomePensionContribution).
		Add(b.IncomePensionReturn).
		Add(b.PremiumPensionContribution).
		Add(b.PremiumPensionReturn).
		Add(b.OccupationalPensionContribution).
		Add(b.OccupationalPensionReturn).
		Add(b.SalaryExchange).
		Add(b.PrivatePensionContribution).
		Add(b.PrivatePensionReturn).
		Add(b.OtherSavings)
}

// TotalPensionContribution is the sum of all new pension money for the month.
func (b MonthlyIncreaseBreakdown) TotalPensionContribution() decimal.Decimal {
	return b.IncomePensionContribution.
		Add(b.PremiumPensionContribution).
		Add(b.OccupationalPensionContribution).
		Add(b.SalaryExchange).
		Add(b.PrivatePensionContribution)
}
