package main

import (
	"fmt"

	"github.com/rpgo/barrier-pricer/internal/calculation"
	"github.com/rpgo/barrier-pricer/internal/config"
	"github.com/rpgo/barrier-pricer/internal/domain"
	"github.com/rpgo/barrier-pricer/internal/output"
	"github.com/spf13/cobra"
)

// priceFlags collects the price command's flags. Contract and simulation
// flags only override the loaded configuration when explicitly set.
type priceFlags struct {
	configPath     string
	format         string
	outputDir      string
	verbose        bool
	skipValidation bool
	historyPath    string
	periodsPerYear float64

	option   domain.OptionParameters
	settings domain.SimulationSettings
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "barrierprice",
		Short:        "Monte Carlo pricer for up-and-out barrier calls",
		SilenceUsage: true,
	}
	root.AddCommand(newPriceCmd(), newExampleConfigCmd(), newFormatsCmd())
	return root
}

func newPriceCmd() *cobra.Command {
	pf := &priceFlags{
		option:   domain.ReferenceOption(),
		settings: domain.ReferenceSettings(),
	}
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Simulate GBM paths and price the barrier call",
		Long: `Price an up-and-out European call by Monte Carlo simulation.

Without --config the reference contract is used: S0=100, K=110, sigma=0.25,
r=0.05, T=0.75, barrier=130, 10000 paths, 100 steps, seed 42.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrice(cmd, pf)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&pf.configPath, "config", "c", "", "YAML pricing configuration")
	f.StringVarP(&pf.format, "format", "f", "console", "output format (see 'barrierprice formats')")
	f.StringVarP(&pf.outputDir, "output-dir", "o", "", "write a timestamped report file into this directory instead of stdout")
	f.BoolVarP(&pf.verbose, "verbose", "v", false, "log simulation progress to stderr")
	f.BoolVar(&pf.skipValidation, "skip-validation", false, "price the inputs as given, even degenerate ones")

	f.Float64Var(&pf.option.Spot, "spot", pf.option.Spot, "initial spot price")
	f.Float64Var(&pf.option.Strike, "strike", pf.option.Strike, "strike price")
	f.Float64Var(&pf.option.Volatility, "volatility", pf.option.Volatility, "annualized volatility")
	f.Float64Var(&pf.option.RiskFreeRate, "rate", pf.option.RiskFreeRate, "risk-free rate")
	f.Float64Var(&pf.option.MaturityYears, "maturity", pf.option.MaturityYears, "time to maturity in years")
	f.Float64Var(&pf.option.Barrier, "barrier", pf.option.Barrier, "up-and-out barrier level")
	f.IntVar(&pf.option.NumPaths, "paths", pf.option.NumPaths, "number of simulated paths")

	f.Int64Var(&pf.settings.Seed, "seed", pf.settings.Seed, "generator seed (0 picks a time-based seed)")
	f.IntVar(&pf.settings.Steps, "steps", pf.settings.Steps, "time steps per path (0 selects the default of 100)")
	f.IntVar(&pf.settings.TrajectoriesToRecord, "trajectories", pf.settings.TrajectoriesToRecord, "number of leading paths to record")
	f.Float64Var(&pf.settings.ConfidenceLevel, "confidence", pf.settings.ConfidenceLevel, "confidence level for the price interval")
	f.BoolVar(&pf.settings.Strict, "strict", false, "fail when fewer than two paths survive")

	f.StringVar(&pf.historyPath, "volatility-from", "", "CSV of date,close rows; prices with their realized volatility")
	f.Float64Var(&pf.periodsPerYear, "periods-per-year", calculation.TradingDaysPerYear, "observations per year in the --volatility-from series")
	cmd.MarkFlagsMutuallyExclusive("volatility", "volatility-from")

	return cmd
}

func runPrice(cmd *cobra.Command, pf *priceFlags) error {
	parser := config.NewInputParser()

	cfg := parser.CreateExampleConfiguration()
	if pf.configPath != "" {
		loaded, err := parser.DecodeFile(pf.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlagOverrides(cmd, pf, cfg)

	if pf.historyPath != "" {
		series, err := calculation.LoadHistoricalPrices(pf.historyPath)
		if err != nil {
			return fmt.Errorf("load price history: %w", err)
		}
		if pf.periodsPerYear <= 0 {
			return fmt.Errorf("periods-per-year must be greater than 0")
		}
		cfg.Option.Volatility = series.RealizedVolatility(pf.periodsPerYear)
	}

	if !pf.skipValidation {
		if err := parser.ValidateConfiguration(cfg); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	// Zero steps falls back to the default grid; a negative count has no grid at all.
	if cfg.Simulation.Steps < 0 {
		return fmt.Errorf("steps must be at least 0 (0 selects %d), got %d", domain.DefaultSteps, cfg.Simulation.Steps)
	}

	pricer := calculation.NewSeededBarrierPricer(cfg.Option, cfg.Simulation)
	pricer.Logger = newSlogLogger(cmd.ErrOrStderr(), pf.verbose)

	result, priceErr := pricer.Price()
	report := calculation.NewPricingReport(cfg.Option, pricer.Settings, result)

	if err := emit(cmd, pf, report); err != nil {
		return err
	}
	return priceErr
}

func applyFlagOverrides(cmd *cobra.Command, pf *priceFlags, cfg *domain.PricingConfiguration) {
	changed := cmd.Flags().Changed
	if changed("spot") {
		cfg.Option.Spot = pf.option.Spot
	}
	if changed("strike") {
		cfg.Option.Strike = pf.option.Strike
	}
	if changed("volatility") {
		cfg.Option.Volatility = pf.option.Volatility
	}
	if changed("rate") {
		cfg.Option.RiskFreeRate = pf.option.RiskFreeRate
	}
	if changed("maturity") {
		cfg.Option.MaturityYears = pf.option.MaturityYears
	}
	if changed("barrier") {
		cfg.Option.Barrier = pf.option.Barrier
	}
	if changed("paths") {
		cfg.Option.NumPaths = pf.option.NumPaths
	}
	if changed("seed") {
		cfg.Simulation.Seed = pf.settings.Seed
	}
	if changed("steps") {
		cfg.Simulation.Steps = pf.settings.Steps
	}
	if changed("trajectories") {
		cfg.Simulation.TrajectoriesToRecord = pf.settings.TrajectoriesToRecord
	}
	if changed("confidence") {
		cfg.Simulation.ConfidenceLevel = pf.settings.ConfidenceLevel
	}
	if changed("strict") {
		cfg.Simulation.Strict = pf.settings.Strict
	}
}

func emit(cmd *cobra.Command, pf *priceFlags, report *domain.PricingReport) error {
	if pf.outputDir == "" {
		return output.GenerateReport(report, pf.format, cmd.OutOrStdout())
	}
	f := output.GetFormatterByName(pf.format)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, pf.format)
	}
	name, err := output.WriteFormattedFile(f, report, pf.outputDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", name)
	return nil
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config <file>",
		Short: "Write the reference pricing configuration as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(cfg, args[0]); err != nil {
				return fmt.Errorf("save configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
			return nil
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, n := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %s\n", n)
			}
			fmt.Fprintln(out, "Aliases:")
			for _, a := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %s -> %s\n", a, output.NormalizeFormatName(a))
			}
		},
	}
}
