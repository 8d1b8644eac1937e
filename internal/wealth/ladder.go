// Package wealth classifies a household's net worth against the wealth
// ladder and derives progress, speed and time-to-next-level metrics.
package wealth

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/1th5/formogenhetskompassen/internal/domain"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func ptr(v decimal.Decimal) *decimal.Decimal { return &v }

// DefaultLadder returns the fixed wealth ladder in SEK: an ordered,
// non-overlapping partition of [0, +inf). Callers may substitute their own
// ladder; the classifier only requires the partition property.
func DefaultLadder() []domain.WealthLevel {
	return []domain.WealthLevel{
		{
			Level:       1,
			Name:        "Startgropen",
			Start:       decimal.Zero,
			Next:        ptr(dec(100_000)),
			Description: "Förmögenheten täcker ännu inte oförutsedda utgifter.",
		},
		{
			Level:       2,
			Name:        "Buffertbyggaren",
			Start:       dec(100_000),
			Next:        ptr(dec(500_000)),
			Description: "En stabil buffert finns på plats och sparandet börjar arbeta.",
		},
		{
			Level:       3,
			Name:        "Trygghetsnivån",
			Start:       dec(500_000),
			Next:        ptr(dec(1_500_000)),
			Description: "Ett års utgifter i reserv; avkastningen märks i vardagen.",
		},
		{
			Level:       4,
			Name:        "Förmögenhetsbyggaren",
			Start:       dec(1_500_000),
			Next:        ptr(dec(5_000_000)),
			Description: "Kapitalet växer snabbare än nysparandet de flesta år.",
		},
		{
			Level:       5,
			Name:        "Ekonomiskt oberoende",
			Start:       dec(5_000_000),
			Next:        ptr(dec(15_000_000)),
			Description: "Avkastningen kan bära en normal levnadskostnad.",
		},
		{
			Level:       6,
			Name:        "Generationsförmögenhet",
			Start:       dec(15_000_000),
			Next:        nil,
			Description: "Förmögenheten räcker bortom den egna livstiden.",
		},
	}
}

// ValidateLadder checks that the ladder is a contiguous ordered partition
// starting at zero with an open-ended top level.
func ValidateLadder(ladder []domain.WealthLevel) error {
	if len(ladder) == 0 {
		return fmt.Errorf("%w: ladder is empty", domain.ErrInvalidInput)
	}
	if !ladder[0].Start.IsZero() {
		return fmt.Errorf("%w: ladder must start at 0, got %s", domain.ErrInvalidInput, ladder[0].Start)
	}
	for i, lvl := range ladder {
		last := i == len(ladder)-1
		if last {
			if lvl.Next != nil {
				return fmt.Errorf("%w: top level %d must be open-ended", domain.ErrInvalidInput, lvl.Level)
			}
			continue
		}
		if lvl.Next == nil {
			return fmt.Errorf("%w: level %d below the top has no next threshold", domain.ErrInvalidInput, lvl.Level)
		}
		if !lvl.Next.GreaterThan(lvl.Start) {
			return fmt.Errorf("%w: level %d has non-positive span", domain.ErrInvalidInput, lvl.Level)
		}
		if !ladder[i+1].Start.Equal(*lvl.Next) {
			return fmt.Errorf("%w: gap between level %d and %d", domain.ErrInvalidInput, lvl.Level, ladder[i+1].Level)
		}
	}
	return nil
}

// LevelFor returns the highest level whose start is less than or equal to
// the net worth. Lower bounds are inclusive; negative net worth classifies
// into the bottom level (zero is the implicit floor).
func LevelFor(ladder []domain.WealthLevel, netWorth decimal.Decimal) domain.WealthLevel {
	current := ladder[0]
	for _, lvl := range ladder {
		if netWorth.GreaterThanOrEqual(lvl.Start) {
			current = lvl
		}
	}
	return current
}

// Progress returns how far into its level a net worth sits, clamped to
// [0, 1]. The open-ended top level always reports 1.
func Progress(level domain.WealthLevel, netWorth decimal.Decimal) decimal.Decimal {
	if level.Next == nil {
		return decimal.NewFromInt(1)
	}
	span := level.Span()
	if !span.IsPositive() {
		return decimal.Zero
	}
	p := netWorth.Sub(level.Start).Div(span)
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return p
}
