// Package pension computes monthly pension contributions for one person
// from their job incomes and a jurisdiction rates config.
//
// All functions are pure, never mutate their inputs, and are total: missing
// optional fields count as zero and a person with no job income contributes
// zero. Every rate consumed here is a decimal fraction; the percent-to-
// decimal conversion happens exactly once, at the input boundary, before
// values reach this package.
//
// Salary-exchange amounts are modeled as independent additive terms. Whether
// they should also reduce the job income used for the pensionable-income
// base is an open product question; until that is confirmed they do not.
package pension

import (
	"github.com/shopspring/decimal"

	"github.com/1th5/formogenhetskompassen/internal/domain"
)

// IncomePension returns the person's monthly state (income) pension
// contribution: capped pensionable income times the public pension rate,
// summed over job incomes.
func IncomePension(p domain.Person, rates *domain.RatesConfig) decimal.Decimal {
	total := decimal.Zero
	for _, in := range p.Incomes {
		if !in.IsJob() {
			continue
		}
		base := cappedPensionableIncome(in.MonthlyAmount, rates)
		total = total.Add(base.Mul(rates.PublicPensionRate))
	}
	return total
}

// PremiumPension returns the monthly premium pension contribution: the same
// capped pensionable-income base times the premium pension rate.
func PremiumPension(p domain.Person, rates *domain.RatesConfig) decimal.Decimal {
	total := decimal.Zero
	for _, in := range p.Incomes {
		if !in.IsJob() {
			continue
		}
		base := cappedPensionableIncome(in.MonthlyAmount, rates)
		total = total.Add(base.Mul(rates.PremiumPensionRate))
	}
	return total
}

// OccupationalPension returns the monthly occupational pension contribution,
// summed over job incomes, dispatching on the income's scheme tag.
func OccupationalPension(p domain.Person, rates *domain.RatesConfig) decimal.Decimal {
	total := decimal.Zero
	for _, in := range p.Incomes {
		if !in.IsJob() {
			continue
		}
		total = total.Add(occupationalForIncome(in, rates))
	}
	return total
}

// SalaryExchange returns the person's total monthly salary-exchange amount
// across job incomes. The caller treats it as an occupational-style
// contribution; it is not netted against gross income anywhere in the engine.
func SalaryExchange(p domain.Person) decimal.Decimal {
	total := decimal.Zero
	for _, in := range p.Incomes {
		if !in.IsJob() {
			continue
		}
		total = total.Add(in.SalaryExchangeMonthly)
	}
	return total
}

// occupationalForIncome dispatches one job income to its scheme formula.
// One case per scheme enumeration value; unknown tags take the flat-rate
// fallback rather than failing.
func occupationalForIncome(in domain.Income, rates *domain.RatesConfig) decimal.Decimal {
	switch in.Scheme {
	case domain.SchemeITP1:
		return itp1TwoTier(in.MonthlyAmount, rates)
	case domain.SchemeITP2, domain.SchemeSAFLO, domain.SchemeAKAPKR, domain.SchemePA16:
		return in.MonthlyAmount.Mul(rates.DefaultOccupationalRate)
	case domain.SchemeOther:
		return customContribution(in, rates)
	case "":
		return decimal.Zero
	default:
		return in.MonthlyAmount.Mul(rates.DefaultOccupationalRate)
	}
}

// itp1TwoTier accrues the income below the ITP1 breakpoint at the lower rate
// and the portion above it at the higher rate.
func itp1TwoTier(monthlyIncome decimal.Decimal, rates *domain.RatesConfig) decimal.Decimal {
	cap := rates.MonthlyITP1Cap()
	if monthlyIncome.LessThanOrEqual(cap) {
		return monthlyIncome.Mul(rates.ITP1LowerRate)
	}
	lower := cap.Mul(rates.ITP1LowerRate)
	upper := monthlyIncome.Sub(cap).Mul(rates.ITP1HigherRate)
	return lower.Add(upper)
}

// customContribution handles the "Other" scheme: a custom rate on income, a
// fixed monthly amount, or the flat default when neither is supplied.
func customContribution(in domain.Income, rates *domain.RatesConfig) decimal.Decimal {
	switch in.TPInputType {
	case domain.ContributionInputAmount:
		if in.CustomAmount == nil {
			return decimal.Zero
		}
		return *in.CustomAmount
	case domain.ContributionInputPercentage:
		if in.CustomRate == nil {
			return in.MonthlyAmount.Mul(rates.DefaultOccupationalRate)
		}
		return in.MonthlyAmount.Mul(*in.CustomRate)
	default:
		if in.CustomRate != nil {
			return in.MonthlyAmount.Mul(*in.CustomRate)
		}
		return in.MonthlyAmount.Mul(rates.DefaultOccupationalRate)
	}
}

// cappedPensionableIncome applies the pensionable-income ratio and the IBB
// cap to one monthly income.
func cappedPensionableIncome(monthlyIncome decimal.Decimal, rates *domain.RatesConfig) decimal.Decimal {
	pensionable := monthlyIncome.Mul(rates.PensionableIncomeRatio)
	cap := rates.MonthlyPensionableIncomeCap()
	if pensionable.GreaterThan(cap) {
		return cap
	}
	return pensionable
}
