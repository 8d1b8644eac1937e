package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/1th5/formogenhetskompassen/internal/domain"
)

// MaxHorizonMonths caps every projection loop at 100 years of monthly
// steps. Searches that exhaust the cap report an unknown result, never an
// error, and never loop unbounded.
const MaxHorizonMonths = 1200

// StopCondition decides after each executed step whether the projection is
// done. step is 1-based; netWorth is the value after that step.
type StopCondition func(step int, netWorth decimal.Decimal) bool

// StopAtTarget terminates once net worth reaches the target.
func StopAtTarget(target decimal.Decimal) StopCondition {
	return func(_ int, netWorth decimal.Decimal) bool {
		return netWorth.GreaterThanOrEqual(target)
	}
}

// StopAfterMonths terminates after a fixed number of steps.
func StopAfterMonths(months int) StopCondition {
	return func(step int, _ decimal.Decimal) bool {
		return step >= months
	}
}

// Projection is a monthly net-worth trajectory. Trajectory holds one entry
// per executed step; Final is the working snapshot after the last step.
type Projection struct {
	Initial       decimal.Decimal
	Trajectory    []decimal.Decimal
	Months        int
	StopSatisfied bool
	Final         *domain.Household
	FirstMonth    domain.MonthlyIncreaseBreakdown
}

// Project iterates the monthly aggregator forward from a household
// snapshot. Each step feeds the updated working copy back in as the next
// month's principal base, so per-category compounding matches the single
// step semantics exactly. The input household is never mutated. maxSteps
// values outside (0, MaxHorizonMonths] are clamped to MaxHorizonMonths.
func (e *Engine) Project(h *domain.Household, stop StopCondition, maxSteps int) (*Projection, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if maxSteps <= 0 || maxSteps > MaxHorizonMonths {
		maxSteps = MaxHorizonMonths
	}

	proj := &Projection{
		Initial:    h.NetWorth(),
		Trajectory: make([]decimal.Decimal, 0, maxSteps),
	}

	current := h
	for step := 1; step <= maxSteps; step++ {
		res, err := e.Step(current)
		if err != nil {
			return nil, err
		}
		if step == 1 {
			proj.FirstMonth = res.Breakdown
		}
		current = res.Household
		proj.Trajectory = append(proj.Trajectory, res.NetWorth)
		proj.Months = step

		if stop != nil && stop(step, res.NetWorth) {
			proj.StopSatisfied = true
			break
		}
	}

	proj.Final = current
	return proj, nil
}

// MonthsToTarget runs the projection until net worth reaches target and
// returns the number of months needed. ok is false when the horizon cap is
// exhausted first; that is an expected outcome, not a fault.
func (e *Engine) MonthsToTarget(h *domain.Household, target decimal.Decimal, maxSteps int) (int, bool, error) {
	if h.NetWorth().GreaterThanOrEqual(target) {
		return 0, true, nil
	}
	proj, err := e.Project(h, StopAtTarget(target), maxSteps)
	if err != nil {
		return 0, false, err
	}
	if !proj.StopSatisfied {
		return 0, false, nil
	}
	return proj.Months, true, nil
}
