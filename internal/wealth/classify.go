package wealth

import (
	"github.com/shopspring/decimal"

	"github.com/1th5/formogenhetskompassen/internal/calculation"
	"github.com/1th5/formogenhetskompassen/internal/domain"
)

// Speed bucket labels, classified by fixed speed-index thresholds.
const (
	SpeedVeryFast = "Mycket snabb"
	SpeedFast     = "Snabb"
	SpeedNormal   = "Normal"
	SpeedSlow     = "Långsam"
)

var (
	speedVeryFastThreshold = decimal.NewFromInt(2)
	speedFastThreshold     = decimal.NewFromInt(1)
	speedNormalThreshold   = decimal.NewFromFloat(0.5)
)

// SpeedIndex annualizes the monthly increase relative to the span of the
// current level. The open-ended top level has no span; its speed is zero.
func SpeedIndex(increasePerMonth decimal.Decimal, level domain.WealthLevel) decimal.Decimal {
	span := level.Span()
	if !span.IsPositive() {
		return decimal.Zero
	}
	return increasePerMonth.Mul(decimal.NewFromInt(12)).Div(span)
}

// SpeedBucket maps a speed index to its qualitative label.
func SpeedBucket(speed decimal.Decimal) string {
	switch {
	case speed.GreaterThanOrEqual(speedVeryFastThreshold):
		return SpeedVeryFast
	case speed.GreaterThanOrEqual(speedFastThreshold):
		return SpeedFast
	case speed.GreaterThanOrEqual(speedNormalThreshold):
		return SpeedNormal
	default:
		return SpeedSlow
	}
}

// Classifier derives wealth metrics for households against one ladder,
// using the engine's monthly recurrence for the time-to-next-level search.
type Classifier struct {
	engine *calculation.Engine
	ladder []domain.WealthLevel
}

// NewClassifier builds a classifier. A nil ladder selects the default one.
func NewClassifier(engine *calculation.Engine, ladder []domain.WealthLevel) (*Classifier, error) {
	if ladder == nil {
		ladder = DefaultLadder()
	}
	if err := ValidateLadder(ladder); err != nil {
		return nil, err
	}
	return &Classifier{engine: engine, ladder: ladder}, nil
}

// Metrics classifies the household's current state: level, progress, speed
// and estimated years to the next level. The estimate runs the projection
// driver forward with the same per-month recurrence as the aggregator, not
// a closed-form shortcut, because per-category compounding differs.
func (c *Classifier) Metrics(h *domain.Household) (*domain.WealthMetrics, error) {
	breakdown, _, err := c.engine.Aggregate(h)
	if err != nil {
		return nil, err
	}

	netWorth := h.NetWorth()
	level := LevelFor(c.ladder, netWorth)
	speed := SpeedIndex(breakdown.IncreasePerMonth, level)

	m := &domain.WealthMetrics{
		NetWorth:         netWorth,
		IncreasePerMonth: breakdown.IncreasePerMonth,
		Level:            level,
		Progress:         Progress(level, netWorth),
		SpeedIndex:       speed,
		SpeedBucket:      SpeedBucket(speed),
	}

	if level.Next == nil {
		return m, nil
	}
	target := *level.Next
	m.NextLevelTarget = &target

	if !breakdown.IncreasePerMonth.IsPositive() {
		return m, nil
	}
	months, ok, err := c.engine.MonthsToTarget(h, target, calculation.MaxHorizonMonths)
	if err != nil {
		return nil, err
	}
	if !ok {
		return m, nil
	}
	years := decimal.NewFromInt(int64(months)).Div(decimal.NewFromInt(12))
	m.YearsToNextLevel = &years
	return m, nil
}
