package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/lifebridge/lifebridge/internal/config"
	"github.com/lifebridge/lifebridge/internal/domain"
	"github.com/lifebridge/lifebridge/internal/output"
	"github.com/lifebridge/lifebridge/internal/recommend"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func simulateCmd(a *app) *cobra.Command {
	var (
		format     string
		orderByAge bool
		jobs       int
	)

	cmd := &cobra.Command{
		Use:   "simulate [profile-file]...",
		Short: "Simulate benefits for one or more household profiles",
		Long: `Simulate every benefit for the given profiles. Several files are
simulated concurrently and reported in the order given.

Profile file example:
  name: Tanaka household
  profile:
    annual_income: 4800000
    employment_status: [employed]
    has_spouse: true
    number_of_children: 2
    children_ages: [4, 1]
    is_taking_maternity_leave: true
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown output format: %s (valid: %s)", format, strings.Join(output.FormatterNames(), ", "))
			}

			files, err := loadProfiles(args)
			if err != nil {
				return err
			}

			profiles := make([]domain.UserProfile, len(files))
			for i, f := range files {
				profiles[i] = f.Profile
			}

			engine := a.newEngine(orderByAge)
			if jobs <= 0 {
				jobs = runtime.NumCPU()
			}
			results, err := engine.SimulateAll(cmd.Context(), profiles, jobs)
			if err != nil {
				return err
			}
			a.logger.Debug("simulation complete", zap.Int("profiles", len(results)))

			reports := make([]*output.Report, len(results))
			for i, r := range results {
				reports[i] = output.NewReport(profileTitle(files[i].Name, args[i]), r)
			}

			data, err := formatter.Format(reports)
			if err != nil {
				return fmt.Errorf("failed to format %s output: %w", formatter.Name(), err)
			}
			return writeOutput(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format ("+strings.Join(output.FormatterNames(), ", ")+")")
	cmd.Flags().BoolVar(&orderByAge, "order-by-age", false, "Treat children eldest first instead of in file order")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Profiles simulated at once (default: number of CPUs)")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [profile-file]...",
		Short: "Check profile files without simulating them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			parser := config.NewInputParser()

			failed := 0
			for _, file := range args {
				if _, err := parser.LoadFromFile(file); err != nil {
					failed++
					fmt.Fprintf(out, "✗ %v\n", err)
					continue
				}
				fmt.Fprintf(out, "✓ %s is valid\n", file)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d profiles are invalid", failed, len(args))
			}
			return nil
		},
	}
}

func recommendCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "recommend [profile-file]",
		Short: "List suggested applications and actions for a household",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := loadProfiles(args)
			if err != nil {
				return err
			}
			result, err := a.newEngine(false).SimulateChecked(files[0].Profile)
			if err != nil {
				return err
			}
			recs := recommend.Build(result)

			switch strings.ToLower(format) {
			case "json":
				data, err := json.MarshalIndent(recs, "", "  ")
				if err != nil {
					return err
				}
				return writeOutput(cmd.OutOrStdout(), data)
			case "console", "":
				printRecommendations(cmd.OutOrStdout(), profileTitle(files[0].Name, args[0]), recs)
				return nil
			default:
				return fmt.Errorf("unknown output format: %s (valid: console, json)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, json)")
	return cmd
}

func printRecommendations(w io.Writer, title string, recs []recommend.Recommendation) {
	fmt.Fprintf(w, "RECOMMENDATIONS: %s\n", title)
	if len(recs) == 0 {
		fmt.Fprintln(w, "No actions suggested.")
		return
	}
	for i, r := range recs {
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, strings.ToUpper(string(r.Urgency)), r.Title)
		fmt.Fprintf(w, "   %s\n", r.Description)
		if r.Deadline != "" {
			fmt.Fprintf(w, "   Deadline: %s\n", r.Deadline)
		}
		if len(r.RequiredDocuments) > 0 {
			fmt.Fprintf(w, "   Documents: %s\n", strings.Join(r.RequiredDocuments, ", "))
		}
	}
}

// loadProfiles parses and validates every file, failing on the first error
func loadProfiles(files []string) ([]*config.ProfileFile, error) {
	parser := config.NewInputParser()
	out := make([]*config.ProfileFile, len(files))
	for i, file := range files {
		pf, err := parser.LoadFromFile(file)
		if err != nil {
			return nil, err
		}
		out[i] = pf
	}
	return out, nil
}
