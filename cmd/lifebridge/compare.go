package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lifebridge/lifebridge/internal/compare"
	"github.com/lifebridge/lifebridge/internal/transform"
	"github.com/spf13/cobra"
)

func compareCmd(a *app) *cobra.Command {
	var (
		with       string
		transforms []string
		format     string
		compact    bool
		orderByAge bool
	)

	cmd := &cobra.Command{
		Use:   "compare [base-profile] [other-profile]",
		Short: "Compare a household's benefits against another profile or a life event",
		Long: `Compare a base profile against a second profile file, against built-in
life-event templates, or against an ad-hoc list of transforms.

Examples:
  lifebridge compare now.yaml later.yaml
  lifebridge compare now.yaml --with birth,job_loss
  lifebridge compare now.yaml --transform add_child:age=0 --transform start_leave:kind=paternity
  lifebridge compare now.yaml --with marriage --format csv
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := 0
			if len(args) == 2 {
				modes++
			}
			if with != "" {
				modes++
			}
			if len(transforms) > 0 {
				modes++
			}
			if modes != 1 {
				return fmt.Errorf("give exactly one of: a second profile file, --with, or --transform")
			}

			files, err := loadProfiles(args)
			if err != nil {
				return err
			}
			base := compare.Scenario{Name: profileTitle(files[0].Name, args[0]), Profile: files[0].Profile}

			engine := compare.NewCompareEngine(a.newEngine(orderByAge))

			var compSet *compare.ComparisonSet
			switch {
			case len(args) == 2:
				compSet, err = engine.CompareScenarios(base, []compare.Scenario{{
					Name:    profileTitle(files[1].Name, args[1]),
					Profile: files[1].Profile,
				}})
			case with != "":
				compSet, err = engine.CompareTemplates(base, parseTemplateList(with))
			default:
				compSet, err = engine.CompareTransforms(base, transforms)
			}
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			compSet.ConfigPath = args[0]

			out := cmd.OutOrStdout()
			format = strings.ToLower(format)
			if compact && format != "json" {
				_, err := io.WriteString(out, (&compare.TableFormatter{}).FormatCompact(compSet))
				return err
			}

			switch format {
			case "csv":
				s, err := (&compare.CSVFormatter{}).Format(compSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				_, err = io.WriteString(out, s)
				return err
			case "json":
				s, err := (&compare.JSONFormatter{Pretty: true, Summary: compact}).Format(compSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				return writeOutput(out, []byte(s))
			case "table", "console", "":
				_, err := io.WriteString(out, (&compare.TableFormatter{}).Format(compSet))
				return err
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, csv, json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&with, "with", "", "Comma-separated life-event templates to compare (see 'lifebridge templates')")
	cmd.Flags().StringArrayVar(&transforms, "transform", nil, "Transform spec applied in order, e.g. add_child:age=0 (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, csv, json)")
	cmd.Flags().BoolVar(&compact, "compact", false, "One line per scenario (totals-only summary with -f json)")
	cmd.Flags().BoolVar(&orderByAge, "order-by-age", false, "Treat children eldest first instead of in file order")
	return cmd
}

func parseTemplateList(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func templatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List life-event templates and transforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			templates := transform.CreateBuiltInTemplates()
			fmt.Fprintln(out, "LIFE-EVENT TEMPLATES (use with --with)")
			for _, name := range templates.List() {
				t, _ := templates.Get(name)
				fmt.Fprintf(out, "  %-28s %s\n", t.Name, t.Description)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "TRANSFORMS (use with --transform name:key=value,...)")
			for _, name := range transform.NewTransformRegistry().List() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}
}
