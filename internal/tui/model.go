// Package tui is an interactive dashboard over the wealth engine: current
// ladder level, progress, monthly breakdown and a projected trajectory.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/1th5/formogenhetskompassen/internal/calculation"
	"github.com/1th5/formogenhetskompassen/internal/config"
	"github.com/1th5/formogenhetskompassen/internal/domain"
	"github.com/1th5/formogenhetskompassen/internal/output"
	"github.com/1th5/formogenhetskompassen/internal/wealth"
)

const (
	minHorizonMonths  = 12
	maxHorizonMonths  = 600
	horizonStepMonths = 12
)

// Model is the dashboard's application state.
type Model struct {
	configPath string

	input      *config.Input
	engine     *calculation.Engine
	classifier *wealth.Classifier

	metrics    *domain.WealthMetrics
	breakdown  domain.MonthlyIncreaseBreakdown
	projection *calculation.Projection
	horizon    int

	progressBar progress.Model
	width       int
	height      int

	loading bool
	err     error
}

// NewModel creates the dashboard model for one input document.
func NewModel(configPath string) Model {
	return Model{
		configPath:  configPath,
		horizon:     120,
		progressBar: progress.New(progress.WithDefaultGradient()),
		width:       80,
		height:      24,
		loading:     true,
	}
}

type loadedMsg struct {
	input      *config.Input
	engine     *calculation.Engine
	classifier *wealth.Classifier
}

type computedMsg struct {
	metrics    *domain.WealthMetrics
	breakdown  domain.MonthlyIncreaseBreakdown
	projection *calculation.Projection
}

type errMsg struct{ err error }

// Init loads the input document.
func (m Model) Init() tea.Cmd {
	return loadCmd(m.configPath)
}

func loadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		in, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return errMsg{err}
		}
		eng, err := calculation.NewEngine(in.Rates)
		if err != nil {
			return errMsg{err}
		}
		classifier, err := wealth.NewClassifier(eng, in.Ladder)
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{input: in, engine: eng, classifier: classifier}
	}
}

func computeCmd(in *config.Input, eng *calculation.Engine, classifier *wealth.Classifier, horizon int) tea.Cmd {
	return func() tea.Msg {
		metrics, err := classifier.Metrics(in.Household)
		if err != nil {
			return errMsg{err}
		}
		breakdown, _, err := eng.Aggregate(in.Household)
		if err != nil {
			return errMsg{err}
		}
		proj, err := eng.Project(in.Household, calculation.StopAfterMonths(horizon), horizon)
		if err != nil {
			return errMsg{err}
		}
		return computedMsg{metrics: metrics, breakdown: breakdown, projection: proj}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = min(msg.Width-20, 60)
		return m, nil

	case loadedMsg:
		m.input = msg.input
		m.engine = msg.engine
		m.classifier = msg.classifier
		return m, computeCmd(m.input, m.engine, m.classifier, m.horizon)

	case computedMsg:
		m.metrics = msg.metrics
		m.breakdown = msg.breakdown
		m.projection = msg.projection
		m.loading = false
		return m, nil

	case errMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadCmd(m.configPath)
		case "left", "-":
			// Ignore until a document is loaded; loads can also fail.
			if m.input != nil && m.horizon > minHorizonMonths {
				m.horizon -= horizonStepMonths
				return m, computeCmd(m.input, m.engine, m.classifier, m.horizon)
			}
		case "right", "+":
			if m.input != nil && m.horizon < maxHorizonMonths {
				m.horizon += horizonStepMonths
				return m, computeCmd(m.input, m.engine, m.classifier, m.horizon)
			}
		}
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Fel: %v", m.err)) + helpStyle.Render("\nq avsluta • r ladda om")
	}
	if m.loading || m.metrics == nil {
		return titleStyle.Render("Förmögenhetskompassen") + "\n\nBeräknar..."
	}

	metrics := m.metrics
	out := titleStyle.Render(fmt.Sprintf("Förmögenhetskompassen — %s", m.input.Household.Name)) + "\n"

	progressFloat, _ := metrics.Progress.Float64()
	level := fmt.Sprintf("%s  %s\n%s\n\n%s",
		labelStyle.Render("Nivå"),
		levelStyle.Render(fmt.Sprintf("%d  %s", metrics.Level.Level, metrics.Level.Name)),
		labelStyle.Render(metrics.Level.Description),
		m.progressBar.ViewAs(progressFloat),
	)
	out += cardStyle.Render(level) + "\n\n"

	increase := goodStyle
	if metrics.IncreasePerMonth.IsNegative() {
		increase = badStyle
	}
	facts := fmt.Sprintf("%s %s\n%s %s\n%s %s\n%s %s (%s)\n%s %s",
		labelStyle.Render("Nettoförmögenhet: "),
		valueStyle.Render(formatKr(metrics.NetWorth)),
		labelStyle.Render("Pensionskapital:  "),
		valueStyle.Render(formatKr(pensionCapital(m.input.Household))),
		labelStyle.Render("Ökning per månad: "),
		increase.Render(formatKr(metrics.IncreasePerMonth)),
		labelStyle.Render("Takt:             "),
		valueStyle.Render(metrics.SpeedIndex.StringFixed(2)),
		metrics.SpeedBucket,
		labelStyle.Render("År till nästa nivå:"),
		valueStyle.Render(yearsLabel(metrics)),
	)
	out += cardStyle.Render(facts) + "\n\n"

	if m.projection != nil && len(m.projection.Trajectory) > 0 {
		points := make([]float64, len(m.projection.Trajectory))
		for i, v := range m.projection.Trajectory {
			points[i], _ = v.Float64()
		}
		last := m.projection.Trajectory[len(m.projection.Trajectory)-1]
		chart := fmt.Sprintf("%s (%d mån)\n%s\n%s %s",
			labelStyle.Render("Projektion"), m.horizon,
			sparkline(points, min(m.width-8, 64)),
			labelStyle.Render("Slutvärde:"),
			valueStyle.Render(formatKr(last)),
		)
		out += cardStyle.Render(chart) + "\n"
	}

	out += helpStyle.Render("←/→ horisont • r ladda om • q avsluta")
	return out
}

func yearsLabel(m *domain.WealthMetrics) string {
	if m.NextLevelTarget == nil {
		return "högsta nivån"
	}
	if m.YearsToNextLevel == nil {
		return "okänt"
	}
	return m.YearsToNextLevel.StringFixed(1)
}

// formatKr matches the console report's currency rendering so the dashboard
// and reports never disagree on the same figure.
func formatKr(v decimal.Decimal) string {
	return output.FormatCurrency(v)
}

func pensionCapital(h *domain.Household) decimal.Decimal {
	total := decimal.Zero
	for _, a := range h.Assets {
		if a.Category.IsPension() {
			total = total.Add(a.Value)
		}
	}
	return total
}
