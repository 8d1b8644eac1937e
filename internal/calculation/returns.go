package calculation

import "github.com/shopspring/decimal"

var (
	decimalZero   = decimal.Zero
	decimalTwelve = decimal.NewFromInt(12)
)

// MonthlyAssetReturn is one month of expected growth (or decay) on a value
// at a signed annual rate: value × rate / 12. Total and defined for zero.
func MonthlyAssetReturn(value, annualRate decimal.Decimal) decimal.Decimal {
	return value.Mul(annualRate).Div(decimalTwelve)
}

// MonthlyAmortization is one month of scheduled amortization on a principal:
// principal × rate / 12, clamped so a single step never drives the
// principal below zero.
func MonthlyAmortization(principal, annualRate decimal.Decimal) decimal.Decimal {
	amount := principal.Mul(annualRate).Div(decimalTwelve)
	if amount.GreaterThan(principal) {
		return principal
	}
	if amount.IsNegative() {
		return decimalZero
	}
	return amount
}
