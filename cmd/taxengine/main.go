package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/gonzalestax/taxengine/internal/calculation"
	"github.com/gonzalestax/taxengine/internal/config"
	"github.com/gonzalestax/taxengine/internal/domain"
	"github.com/gonzalestax/taxengine/internal/output"
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

var rootCmd = &cobra.Command{
	Use:   "taxengine",
	Short: "Federal tax computation engine CLI",
	Long:  "Computes federal income tax returns: gross income through refund or amount owed",
}

// engineForFlags builds an engine from the --year and --rates flags. A rates
// file overrides the built-in tables for its declared year.
func engineForFlags(cmd *cobra.Command) (*calculation.Engine, error) {
	ratesFile, _ := cmd.Flags().GetString("rates")
	if ratesFile != "" {
		cfg, err := config.LoadTaxYearFile(ratesFile)
		if err != nil {
			return nil, err
		}
		return calculation.NewEngine(cfg), nil
	}

	year, _ := cmd.Flags().GetInt("year")
	return calculation.NewEngineForYear(year)
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [return-file]",
	Short: "Calculate a full tax return from a YAML file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewReturnParser()
		ret, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine, err := engineForFlags(cmd)
		if err != nil {
			log.Fatal(err)
		}
		if ret.TaxYear == 0 {
			ret.TaxYear = engine.Config.Year
		}

		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
		}
		engine.Debug = debugMode

		result, err := engine.Calculate(ret)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter, err := output.GetFormatterByName(outputFormat)
		if err != nil {
			log.Fatal(err)
		}
		data, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Quick estimate from W-2 income, withholding, and children",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := engineForFlags(cmd)
		if err != nil {
			log.Fatal(err)
		}

		statusStr, _ := cmd.Flags().GetString("filing-status")
		fs, err := domain.ParseFilingStatus(statusStr)
		if err != nil {
			log.Fatal(err)
		}

		income, _ := cmd.Flags().GetFloat64("income")
		withholding, _ := cmd.Flags().GetFloat64("withholding")
		children, _ := cmd.Flags().GetInt("children")
		age, _ := cmd.Flags().GetInt("age")

		result, err := engine.QuickEstimate(calculation.EstimateRequest{
			FilingStatus:       fs,
			AnnualIncome:       decimal.NewFromFloat(income),
			FederalWithheld:    decimal.NewFromFloat(withholding),
			QualifyingChildren: children,
			Age:                age,
		})
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter, err := output.GetFormatterByName(outputFormat)
		if err != nil {
			log.Fatal(err)
		}
		data, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [return-file]",
	Short: "Validate a tax return file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewReturnParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Return file %s is valid\n", args[0])
	},
}

var bracketsCmd = &cobra.Command{
	Use:   "brackets",
	Short: "Print the bracket schedule for a year and filing status",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := engineForFlags(cmd)
		if err != nil {
			log.Fatal(err)
		}

		statusStr, _ := cmd.Flags().GetString("filing-status")
		fs, err := domain.ParseFilingStatus(statusStr)
		if err != nil {
			log.Fatal(err)
		}

		schedule, err := engine.Config.Brackets.For(fs)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Tax year %d, filing status %s:\n", engine.Config.Year, fs)
		lower := decimal.Zero
		for _, bracket := range schedule {
			rate := bracket.Rate.Mul(decimal.NewFromInt(100)).StringFixed(0)
			if bracket.UpperBound.IsZero() {
				fmt.Printf("  %s%%  over %s\n", rate, output.FormatCurrency(lower))
				continue
			}
			fmt.Printf("  %s%%  %s to %s\n", rate, output.FormatCurrency(lower), output.FormatCurrency(bracket.UpperBound))
			lower = bracket.UpperBound
		}

		years := config.SupportedYears()
		sort.Ints(years)
		fmt.Printf("Supported years: %v\n", years)
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxengine %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func main() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	calculateCmd.Flags().Int("year", 2025, "Tax year")
	calculateCmd.Flags().String("rates", "", "Path to a YAML rate-table override file")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	estimateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	estimateCmd.Flags().Int("year", 2025, "Tax year")
	estimateCmd.Flags().String("rates", "", "Path to a YAML rate-table override file")
	estimateCmd.Flags().Float64("income", 0, "Annual W-2 income")
	estimateCmd.Flags().Float64("withholding", 0, "Federal tax withheld")
	estimateCmd.Flags().String("filing-status", "single", "Filing status")
	estimateCmd.Flags().Int("children", 0, "Number of qualifying children")
	estimateCmd.Flags().Int("age", 40, "Taxpayer age")

	bracketsCmd.Flags().Int("year", 2025, "Tax year")
	bracketsCmd.Flags().String("rates", "", "Path to a YAML rate-table override file")
	bracketsCmd.Flags().String("filing-status", "single", "Filing status")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(bracketsCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
