package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1th5/formogenhetskompassen/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"zero", "0", "0 kr"},
		{"small", "950", "950 kr"},
		{"thousands", "12500", "12 500 kr"},
		{"millions", "3500000", "3 500 000 kr"},
		{"rounds to whole kronor", "1234.56", "1 235 kr"},
		{"negative", "-100000", "-100 000 kr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := decimal.RequireFromString(tt.value)
			assert.Equal(t, tt.want, FormatCurrency(v))
		})
	}
}

func testReport() *Report {
	next := decimal.NewFromInt(500000)
	years := decimal.RequireFromString("7.25")
	return &Report{
		HouseholdName: "Familjen Berg",
		Breakdown: domain.MonthlyIncreaseBreakdown{
			AssetReturns:              decimal.RequireFromString("1750"),
			IncomePensionContribution: decimal.RequireFromString("5952"),
			OtherSavings:              decimal.RequireFromString("2000"),
			IncreasePerMonth:          decimal.RequireFromString("9702"),
		},
		Metrics: &domain.WealthMetrics{
			NetWorth:         decimal.NewFromInt(300000),
			IncreasePerMonth: decimal.RequireFromString("9702"),
			Level: domain.WealthLevel{
				Level: 2,
				Name:  "Buffertbyggaren",
				Start: decimal.NewFromInt(100000),
				Next:  &next,
			},
			Progress:         decimal.RequireFromString("0.5"),
			SpeedIndex:       decimal.RequireFromString("0.29"),
			SpeedBucket:      "Långsam",
			NextLevelTarget:  &next,
			YearsToNextLevel: &years,
		},
		Trajectory: []decimal.Decimal{
			decimal.RequireFromString("309702"),
			decimal.RequireFromString("319500.50"),
		},
	}
}

func TestGenerateConsole(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportGenerator(&buf).Generate(testReport(), "console"))

	out := buf.String()
	assert.Contains(t, out, "FÖRMÖGENHETSÖVERSIKT — Familjen Berg")
	assert.Contains(t, out, "Inkomstpension (avsättning)")
	assert.Contains(t, out, "5 952 kr")
	assert.Contains(t, out, "varav nytt pensionssparande")
	assert.Contains(t, out, "Nivå:              2 — Buffertbyggaren")
	assert.Contains(t, out, "Framsteg i nivån:  50.0%")
	assert.Contains(t, out, "Nästa nivå vid:    500 000 kr")
	assert.Contains(t, out, "Horisont: 2 månader")
}

func TestGenerateConsoleIsDefaultFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportGenerator(&buf).Generate(testReport(), ""))
	assert.Contains(t, buf.String(), "MÅNADSVIS ÖKNING")
}

func TestGenerateCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportGenerator(&buf).Generate(testReport(), "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "month,net_worth", lines[0])
	assert.Equal(t, "1,309702.00", lines[1])
	assert.Equal(t, "2,319500.50", lines[2])
}

func TestGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportGenerator(&buf).Generate(testReport(), "json"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Familjen Berg", decoded["household_name"])
	assert.Contains(t, decoded, "breakdown")
	assert.Contains(t, decoded, "metrics")
	assert.Contains(t, decoded, "trajectory")
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewReportGenerator(&buf).Generate(testReport(), "xml")
	assert.ErrorContains(t, err, "unsupported format")
}
