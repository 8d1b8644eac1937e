// Package calculation contains the monthly wealth engine: category return
// and amortization functions, the monthly delta aggregator, and the
// projection driver. Everything is a pure computation over value records;
// the engine reads no environment, filesystem or network.
package calculation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/1th5/formogenhetskompassen/internal/domain"
	"github.com/1th5/formogenhetskompassen/internal/pension"
)

// Engine evaluates monthly net-worth deltas for households against one
// immutable rates config.
type Engine struct {
	rates *domain.RatesConfig
}

// NewEngine validates the rates config and returns an engine bound to it.
func NewEngine(rates *domain.RatesConfig) (*Engine, error) {
	if rates == nil {
		return nil, fmt.Errorf("%w: rates config is nil", domain.ErrConfigIncomplete)
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Engine{rates: rates}, nil
}

// StepResult is the outcome of applying one month to a household snapshot.
// Household is an updated working copy; the input snapshot is never mutated.
type StepResult struct {
	Breakdown domain.MonthlyIncreaseBreakdown
	NetWorth  decimal.Decimal
	Household *domain.Household
}

// Aggregate computes one month's increase breakdown and the resulting net
// worth without exposing the updated snapshot.
func (e *Engine) Aggregate(h *domain.Household) (domain.MonthlyIncreaseBreakdown, decimal.Decimal, error) {
	res, err := e.Step(h)
	if err != nil {
		return domain.MonthlyIncreaseBreakdown{}, decimal.Zero, err
	}
	return res.Breakdown, res.NetWorth, nil
}

// Step applies one month to a clone of the household: every asset earns its
// category return, each liability amortizes, and each person's pension
// contributions and savings are credited to the matching assets. The
// resulting net worth always reconciles exactly with the updated asset and
// liability totals.
func (e *Engine) Step(h *domain.Household) (*StepResult, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	work := h.Clone()
	var b domain.MonthlyIncreaseBreakdown

	for i := range work.Assets {
		a := &work.Assets[i]
		ret := MonthlyAssetReturn(a.Value, a.Rate())
		switch a.Category {
		case domain.CategoryIncomePension:
			b.IncomePensionReturn = b.IncomePensionReturn.Add(ret)
		case domain.CategoryPremiumPension:
			b.PremiumPensionReturn = b.PremiumPensionReturn.Add(ret)
		case domain.CategoryOccupationalPension:
			b.OccupationalPensionReturn = b.OccupationalPensionReturn.Add(ret)
		case domain.CategoryIPS:
			b.PrivatePensionReturn = b.PrivatePensionReturn.Add(ret)
		default:
			b.AssetReturns = b.AssetReturns.Add(ret)
		}
		a.Value = a.Value.Add(ret)
	}

	for i := range work.Liabilities {
		l := &work.Liabilities[i]
		amort := MonthlyAmortization(l.Principal, l.AnnualAmortizationRate)
		b.Amortization = b.Amortization.Add(amort)
		l.Principal = l.Principal.Sub(amort)
	}

	for _, p := range work.Persons {
		b.IncomePensionContribution = b.IncomePensionContribution.Add(pension.IncomePension(p, e.rates))
		b.PremiumPensionContribution = b.PremiumPensionContribution.Add(pension.PremiumPension(p, e.rates))
		b.OccupationalPensionContribution = b.OccupationalPensionContribution.Add(pension.OccupationalPension(p, e.rates))
		b.SalaryExchange = b.SalaryExchange.Add(pension.SalaryExchange(p))
		b.PrivatePensionContribution = b.PrivatePensionContribution.Add(p.IPSMonthly)
		b.OtherSavings = b.OtherSavings.Add(p.OtherSavingsMonthly)
	}

	creditAsset(work, domain.CategoryIncomePension, b.IncomePensionContribution)
	creditAsset(work, domain.CategoryPremiumPension, b.PremiumPensionContribution)
	creditAsset(work, domain.CategoryOccupationalPension, b.OccupationalPensionContribution.Add(b.SalaryExchange))
	creditAsset(work, domain.CategoryIPS, b.PrivatePensionContribution)
	creditAsset(work, domain.CategoryCash, b.OtherSavings)

	b.IncreasePerMonth = b.Sum()

	return &StepResult{
		Breakdown: b,
		NetWorth:  work.NetWorth(),
		Household: work,
	}, nil
}

// creditAsset adds a monthly contribution to the household's first asset of
// the given category, creating a zero-based asset when none exists. Keeping
// contributions inside assets is what makes the reconciliation invariant
// hold after every step.
func creditAsset(h *domain.Household, category domain.AssetCategory, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	for i := range h.Assets {
		if h.Assets[i].Category == category {
			h.Assets[i].Value = h.Assets[i].Value.Add(amount)
			return
		}
	}
	h.Assets = append(h.Assets, domain.Asset{
		ID:       uuid.New(),
		Category: category,
		Label:    category.DisplayName(),
		Value:    amount,
	})
}
