package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/output"
	"github.com/rgehrsitz/ley73/internal/transform"
	"github.com/rgehrsitz/ley73/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ley73 %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ley73",
		Short:         "IMSS Ley 73 pension estimator CLI",
		Long:          "Estimates the IMSS Ley 73 old-age pension and the cost of Modalidad 40 voluntary contributions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(calculateCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(solveCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	return root
}

// loadConfig parses and validates a configuration file
func loadConfig(path string) (*domain.Configuration, domain.Parameters, error) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, domain.Parameters{}, err
	}
	return cfg, config.ResolveParameters(cfg.Parameters), nil
}

// newEngine builds the pension engine, pinning its clock when nowFlag is set
func newEngine(cmd *cobra.Command, params domain.Parameters) (*calculation.PensionEngine, error) {
	engine := calculation.NewPensionEngine(params)

	nowFlag, _ := cmd.Flags().GetString("now")
	if nowFlag != "" {
		now, err := dateutil.ParseDate(nowFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid --now: %w", err)
		}
		engine.Clock = func() time.Time { return now }
	}

	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine, nil
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate the pension estimate for a profile",
		Long: `Calculate the pension at the configured retirement age, the Modalidad 40
contribution cost, the age projection and the age comparison table.

Examples:
  ./ley73 calculate profile.yaml
  ./ley73 calculate profile.yaml --salary-uma 20 --retirement-age 62 --format json
  ./ley73 calculate profile.yaml --transform add_weeks:weeks=52 --format html --save
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, params, err := loadConfig(args[0])
			if err != nil {
				return err
			}

			profile, err := applyOverrides(cmd, cfg.Profile)
			if err != nil {
				return err
			}
			if err := config.NewInputParser().ValidateProfile(&profile, &params); err != nil {
				return fmt.Errorf("invalid profile: %w", err)
			}

			engine, err := newEngine(cmd, params)
			if err != nil {
				return err
			}
			analysis := engine.Analyze(profile)

			outputFormat, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(outputFormat)
			if f == nil {
				return fmt.Errorf("unknown output format: %s (valid: %v)", outputFormat, output.AvailableFormatterNames())
			}

			if save, _ := cmd.Flags().GetBool("save"); save {
				filename, err := output.WriteFormatted(f, analysis, fileExtension(f.Name()))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
			} else {
				data, err := f.Format(analysis)
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
			}

			if path, _ := cmd.Flags().GetString("save-config"); path != "" {
				effective := &domain.Configuration{Profile: profile, Parameters: &params}
				if err := output.SaveConfiguration(effective, path); err != nil {
					return fmt.Errorf("save configuration: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "console", "Output format (console, console-lite, csv, detailed-csv, json, html)")
	cmd.Flags().String("now", "", "Evaluation date as YYYY-MM-DD (default: today)")
	cmd.Flags().String("salary-uma", "", "Override the Modalidad 40 salary, in UMAs")
	cmd.Flags().Int("retirement-age", 0, "Override the retirement age")
	cmd.Flags().Int("weeks", -1, "Override the contribution weeks credited so far")
	cmd.Flags().StringArray("transform", nil, "Apply a transform, e.g. set_salary_uma:uma=15 (repeatable)")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	cmd.Flags().String("save-config", "", "Write the effective configuration to this YAML file")
	cmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	return cmd
}

// applyOverrides applies the profile override flags, then any --transform specs
func applyOverrides(cmd *cobra.Command, base domain.Profile) (domain.Profile, error) {
	var transforms []transform.ProfileTransform

	if raw, _ := cmd.Flags().GetString("salary-uma"); raw != "" {
		salary, err := decimal.NewFromString(raw)
		if err != nil {
			return base, fmt.Errorf("invalid --salary-uma: %w", err)
		}
		transforms = append(transforms, &transform.SetSalaryUMA{SalaryUMA: salary})
	}
	if cmd.Flags().Changed("retirement-age") {
		age, _ := cmd.Flags().GetInt("retirement-age")
		transforms = append(transforms, &transform.SetRetirementAge{Age: age})
	}

	specs, _ := cmd.Flags().GetStringArray("transform")
	registry := transform.NewTransformRegistry()
	for _, spec := range specs {
		t, err := registry.ParseTransformSpec(spec)
		if err != nil {
			return base, err
		}
		transforms = append(transforms, t)
	}

	if cmd.Flags().Changed("weeks") {
		weeks, _ := cmd.Flags().GetInt("weeks")
		if weeks < 0 {
			return base, fmt.Errorf("--weeks cannot be negative, got %d", weeks)
		}
		base.ContributionWeeks = weeks
	}

	return transform.ApplyTransforms(base, transforms)
}

func fileExtension(formatter string) string {
	switch formatter {
	case "json":
		return "json"
	case "html":
		return "html"
	case "csv", "detailed-csv":
		return "csv"
	default:
		return "txt"
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := loadConfig(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", args[0])
			return nil
		},
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
