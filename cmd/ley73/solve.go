package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rgehrsitz/ley73/internal/breakeven"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [input-file]",
		Short: "Find the salary or retirement age that reaches a pension target",
		Long: `Solve for the Modalidad 40 salary or the retirement age that reaches a target
monthly pension, or for the age that maximizes the cumulative benefit.

Examples:
  ./ley73 solve profile.yaml --target salary --pension 40000
  ./ley73 solve profile.yaml --target age --pension 60000
  ./ley73 solve profile.yaml --target cumulative --format json
  ./ley73 solve profile.yaml --all --pension 60000
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, params, err := loadConfig(args[0])
			if err != nil {
				return err
			}
			engine, err := newEngine(cmd, params)
			if err != nil {
				return err
			}

			target, _ := cmd.Flags().GetString("target")
			goal, _ := cmd.Flags().GetString("goal")
			req := breakeven.OptimizationRequest{
				Profile: cfg.Profile,
				Target:  breakeven.OptimizationTarget(target),
				Goal:    breakeven.OptimizationGoal(goal),
			}

			if raw, _ := cmd.Flags().GetString("pension"); raw != "" {
				pension, err := decimal.NewFromString(raw)
				if err != nil {
					return fmt.Errorf("invalid --pension: %w", err)
				}
				req.Constraints.TargetPension = &pension
			}
			if cmd.Flags().Changed("min-age") {
				v, _ := cmd.Flags().GetInt("min-age")
				req.Constraints.MinRetirementAge = &v
			}
			if cmd.Flags().Changed("max-age") {
				v, _ := cmd.Flags().GetInt("max-age")
				req.Constraints.MaxRetirementAge = &v
			}

			solver := breakeven.NewDefaultSolver(engine)
			outputFormat, _ := cmd.Flags().GetString("format")

			if all, _ := cmd.Flags().GetBool("all"); all {
				md, err := solver.OptimizeMultiDimensional(context.Background(), req.Profile, engine.Now(), req.Constraints)
				if err != nil {
					return err
				}
				if outputFormat == "json" {
					data, err := json.MarshalIndent(md, "", "  ")
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).FormatMulti(md))
				return nil
			}

			result, err := solver.Optimize(context.Background(), req)
			if err != nil {
				return err
			}

			switch outputFormat {
			case "json":
				text, err := (&breakeven.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
			case "table", "":
				fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).Format(result))
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, json)", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().String("target", string(breakeven.OptimizeSalary), "What to solve for (salary, age, cumulative)")
	cmd.Flags().String("goal", "", "match_pension or maximize_cumulative (default depends on --target)")
	cmd.Flags().String("pension", "", "Target monthly pension in pesos")
	cmd.Flags().Int("min-age", 0, "Lowest retirement age to consider")
	cmd.Flags().Int("max-age", 0, "Highest retirement age to consider")
	cmd.Flags().Bool("all", false, "Run every target and rank the results")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	cmd.Flags().String("now", "", "Evaluation date as YYYY-MM-DD (default: today)")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}
