package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/transform"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare the profile against built-in strategy templates",
		Long: `Compare the configured profile against alternative strategies.

Examples:
  ./ley73 compare profile.yaml --with postpone_1yr,salary_15
  ./ley73 compare profile.yaml --with early_max_salary,late_mid_salary --format csv
  ./ley73 compare --list-templates  # Show all available templates
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("input file required for comparison (use --list-templates to see available templates)")
			}
			inputFile := args[0]

			cfg, params, err := loadConfig(inputFile)
			if err != nil {
				return err
			}

			templatesStr, _ := cmd.Flags().GetString("with")
			if templatesStr == "" {
				return fmt.Errorf("--with flag is required to specify templates to compare (or use --list-templates)")
			}
			templateNames := transform.ParseTemplateList(templatesStr)
			if len(templateNames) == 0 {
				return fmt.Errorf("no valid templates specified in --with flag")
			}

			engine, err := newEngine(cmd, params)
			if err != nil {
				return err
			}

			comparisonSet, err := compare.NewCompareEngine(engine).Compare(context.Background(), cfg, compare.CompareOptions{
				Templates: templateNames,
			})
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			comparisonSet.ConfigPath = inputFile

			outputFormat, _ := cmd.Flags().GetString("format")
			out := cmd.OutOrStdout()
			switch strings.ToLower(outputFormat) {
			case "csv":
				formatter := &compare.CSVFormatter{}
				text, err := formatter.Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, text)

			case "json":
				formatter := &compare.JSONFormatter{Pretty: true}
				text, err := formatter.Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprint(out, text)

			case "compact":
				fmt.Fprint(out, (&compare.TableFormatter{}).FormatCompact(comparisonSet))

			case "table", "console", "":
				fmt.Fprint(out, (&compare.TableFormatter{}).Format(comparisonSet))

			default:
				return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().String("with", "", "Comma-separated list of templates to compare (required)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List all available scenario templates")
	cmd.Flags().String("now", "", "Evaluation date as YYYY-MM-DD (default: today)")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}
