// Package output renders wealth metrics and projection trajectories as
// console, CSV or JSON reports.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/1th5/formogenhetskompassen/internal/calculation"
	"github.com/1th5/formogenhetskompassen/internal/domain"
)

// Report bundles everything a formatter needs for one household.
type Report struct {
	HouseholdName string                           `json:"household_name"`
	Breakdown     domain.MonthlyIncreaseBreakdown  `json:"breakdown"`
	Metrics       *domain.WealthMetrics            `json:"metrics,omitempty"`
	Projection    *calculation.Projection          `json:"-"`
	Trajectory    []decimal.Decimal                `json:"trajectory,omitempty"`
}

// ReportGenerator writes reports in the supported formats.
type ReportGenerator struct {
	Out io.Writer
}

// NewReportGenerator creates a generator writing to out.
func NewReportGenerator(out io.Writer) *ReportGenerator {
	return &ReportGenerator{Out: out}
}

// Generate writes the report in the requested format: console, csv or json.
func (rg *ReportGenerator) Generate(r *Report, format string) error {
	if r.Projection != nil && r.Trajectory == nil {
		r.Trajectory = r.Projection.Trajectory
	}
	switch format {
	case "console", "":
		return rg.generateConsole(r)
	case "csv":
		return rg.generateCSV(r)
	case "json":
		return rg.generateJSON(r)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (rg *ReportGenerator) generateConsole(r *Report) error {
	w := rg.Out
	title := "FÖRMÖGENHETSÖVERSIKT"
	if r.HouseholdName != "" {
		title = fmt.Sprintf("FÖRMÖGENHETSÖVERSIKT — %s", r.HouseholdName)
	}
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 72))

	fmt.Fprintln(w, "\nMÅNADSVIS ÖKNING")
	printLine := func(label string, v decimal.Decimal) {
		fmt.Fprintf(w, "  %-34s %14s\n", label, FormatCurrency(v))
	}
	b := r.Breakdown
	printLine("Avkastning tillgångar", b.AssetReturns)
	printLine("Amortering", b.Amortization)
	printLine("Inkomstpension (avsättning)", b.IncomePensionContribution)
	printLine("Inkomstpension (avkastning)", b.IncomePensionReturn)
	printLine("Premiepension (avsättning)", b.PremiumPensionContribution)
	printLine("Premiepension (avkastning)", b.PremiumPensionReturn)
	printLine("Tjänstepension (avsättning)", b.OccupationalPensionContribution)
	printLine("Tjänstepension (avkastning)", b.OccupationalPensionReturn)
	printLine("Löneväxling", b.SalaryExchange)
	printLine("IPS (avsättning)", b.PrivatePensionContribution)
	printLine("IPS (avkastning)", b.PrivatePensionReturn)
	printLine("Övrigt sparande", b.OtherSavings)
	fmt.Fprintln(w, "  "+strings.Repeat("-", 50))
	printLine("Summa per månad", b.IncreasePerMonth)
	printLine("  varav nytt pensionssparande", b.TotalPensionContribution())

	if m := r.Metrics; m != nil {
		fmt.Fprintln(w, "\nFÖRMÖGENHETSTRAPPAN")
		fmt.Fprintf(w, "  Nettoförmögenhet:  %s\n", FormatCurrency(m.NetWorth))
		fmt.Fprintf(w, "  Nivå:              %d — %s\n", m.Level.Level, m.Level.Name)
		fmt.Fprintf(w, "  Framsteg i nivån:  %s%%\n", m.Progress.Mul(decimal.NewFromInt(100)).StringFixed(1))
		fmt.Fprintf(w, "  Takt:              %s (%s)\n", m.SpeedIndex.StringFixed(2), m.SpeedBucket)
		if m.NextLevelTarget != nil {
			fmt.Fprintf(w, "  Nästa nivå vid:    %s\n", FormatCurrency(*m.NextLevelTarget))
		}
		if m.YearsToNextLevel != nil {
			fmt.Fprintf(w, "  År till nästa nivå: %s\n", m.YearsToNextLevel.StringFixed(1))
		} else if m.NextLevelTarget != nil {
			fmt.Fprintln(w, "  År till nästa nivå: okänt")
		}
	}

	if len(r.Trajectory) > 0 {
		fmt.Fprintln(w, "\nPROJEKTION")
		fmt.Fprintf(w, "  Horisont: %d månader\n", len(r.Trajectory))
		fmt.Fprintf(w, "  Slutvärde: %s\n", FormatCurrency(r.Trajectory[len(r.Trajectory)-1]))
	}

	fmt.Fprintln(w)
	return nil
}

func (rg *ReportGenerator) generateCSV(r *Report) error {
	w := csv.NewWriter(rg.Out)
	defer w.Flush()

	if err := w.Write([]string{"month", "net_worth"}); err != nil {
		return err
	}
	for i, v := range r.Trajectory {
		if err := w.Write([]string{strconv.Itoa(i + 1), v.StringFixed(2)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (rg *ReportGenerator) generateJSON(r *Report) error {
	enc := json.NewEncoder(rg.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// FormatCurrency renders an amount in SEK with thousands separators,
// rounded to whole kronor.
func FormatCurrency(v decimal.Decimal) string {
	s := v.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, " ")
	if neg {
		out = "-" + out
	}
	return out + " kr"
}
