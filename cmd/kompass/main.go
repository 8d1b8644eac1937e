package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/1th5/formogenhetskompassen/internal/api"
	"github.com/1th5/formogenhetskompassen/internal/calculation"
	"github.com/1th5/formogenhetskompassen/internal/config"
	"github.com/1th5/formogenhetskompassen/internal/output"
	"github.com/1th5/formogenhetskompassen/internal/store/sqlite"
	"github.com/1th5/formogenhetskompassen/internal/tui"
	"github.com/1th5/formogenhetskompassen/internal/wealth"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "kompass",
	Short: "Förmögenhetskompassen wealth projection engine",
	Long:  "Models a household's net worth over time and classifies it against the wealth ladder.",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "kompass %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprintln(os.Stdout, "go:", bi.GoVersion)
			}
		},
	}
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Compute one month's increase breakdown for a household",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			in, eng, err := loadInput(args[0])
			if err != nil {
				return err
			}
			breakdown, _, err := eng.Aggregate(in.Household)
			if err != nil {
				return err
			}
			rg := output.NewReportGenerator(os.Stdout)
			return rg.Generate(&output.Report{
				HouseholdName: in.Household.Name,
				Breakdown:     breakdown,
			}, format)
		},
	}
	cmd.Flags().String("format", "console", "Output format: console, csv, json")
	return cmd
}

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [input-file]",
		Short: "Classify a household against the wealth ladder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			in, eng, err := loadInput(args[0])
			if err != nil {
				return err
			}
			classifier, err := wealth.NewClassifier(eng, in.Ladder)
			if err != nil {
				return err
			}
			metrics, err := classifier.Metrics(in.Household)
			if err != nil {
				return err
			}
			breakdown, _, err := eng.Aggregate(in.Household)
			if err != nil {
				return err
			}
			rg := output.NewReportGenerator(os.Stdout)
			return rg.Generate(&output.Report{
				HouseholdName: in.Household.Name,
				Breakdown:     breakdown,
				Metrics:       metrics,
			}, format)
		},
	}
	cmd.Flags().String("format", "console", "Output format: console, csv, json")
	return cmd
}

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [input-file]",
		Short: "Project the household's net worth forward in monthly steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			months, _ := cmd.Flags().GetInt("months")
			in, eng, err := loadInput(args[0])
			if err != nil {
				return err
			}
			proj, err := eng.Project(in.Household, calculation.StopAfterMonths(months), months)
			if err != nil {
				return err
			}
			rg := output.NewReportGenerator(os.Stdout)
			return rg.Generate(&output.Report{
				HouseholdName: in.Household.Name,
				Breakdown:     proj.FirstMonth,
				Projection:    proj,
			}, format)
		},
	}
	cmd.Flags().Int("months", 120, "Projection horizon in months (max 1200)")
	cmd.Flags().String("format", "console", "Output format: console, csv, json")
	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine as a stateless HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			dbPath, _ := cmd.Flags().GetString("db")

			var store api.SnapshotStore
			if dbPath != "" {
				s, err := sqlite.New(dbPath)
				if err != nil {
					return err
				}
				defer s.Close()
				store = s
			}

			log.Printf("listening on %s", addr)
			return api.ListenAndServe(addr, api.NewHandler(store))
		},
	}
	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().String("db", "", "Optional sqlite snapshot database path")
	return cmd
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [input-file]",
		Short: "Interactive wealth dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err != nil {
				return fmt.Errorf("input file not found: %s", args[0])
			}
			p := tea.NewProgram(tui.NewModel(args[0]), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

func loadInput(path string) (*config.Input, *calculation.Engine, error) {
	in, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	eng, err := calculation.NewEngine(in.Rates)
	if err != nil {
		return nil, nil, err
	}
	return in, eng, nil
}

func main() {
	rootCmd.AddCommand(
		calculateCmd(),
		classifyCmd(),
		projectCmd(),
		serveCmd(),
		tuiCmd(),
		versionCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
