package domain

import "github.com/shopspring/decimal"

// WealthLevel is one rung of the wealth ladder: an inclusive start and an
// exclusive next threshold. Next is nil for the top level. A ladder is an
// ordered, non-overlapping partition of [0, +inf).
type WealthLevel struct {
	Level       int              `yaml:"level" json:"level"`
	Name        string           `yaml:"name" json:"name"`
	Start       decimal.Decimal  `yaml:"start" json:"start"`
	Next        *decimal.Decimal `yaml:"next,omitempty" json:"next,omitempty"`
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
}

// Span returns the width of the level, or zero for the open-ended top level.
func (w WealthLevel) Span() decimal.Decimal {
	if w.Next == nil {
		return decimal.Zero
	}
	return w.Next.Sub(w.Start)
}

// WealthMetrics is the classifier's full output for one household state.
type WealthMetrics struct {
	NetWorth         decimal.Decimal  `json:"net_worth"`
	IncreasePerMonth decimal.Decimal  `json:"increase_per_month"`
	Level            WealthLevel      `json:"level"`
	Progress         decimal.Decimal  `json:"progress"`
	SpeedIndex       decimal.Decimal  `json:"speed_index"`
	SpeedBucket      string           `json:"speed_bucket"`
	YearsToNextLevel *decimal.Decimal `json:"years_to_next_level,omitempty"`
	NextLevelTarget  *decimal.Decimal `json:"next_level_target,omitempty"`
}
