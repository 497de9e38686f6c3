package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"TrendBench/internal/config"
	"TrendBench/internal/generator"
	"TrendBench/internal/portfolio"
	"TrendBench/internal/report"
	"TrendBench/internal/signal"
)

var (
	flagConfig       string
	flagDays         int
	flagInitialPrice float64
	flagVolatility   float64
	flagShortWindow  int
	flagLongWindow   int
	flagInitialCash  float64
	flagSeed         int64
	flagEvery        int
	flagColor        string
)

var rootCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Backtest a moving-average crossover strategy on a synthetic price path",
	Long: `TrendBench generates a synthetic daily price path with a zero-drift
geometric-Brownian-style walk, derives dual moving-average crossover signals,
and simulates a fully-invested trading strategy against them, printing a
day-by-day ledger and a comparison with buy-and-hold.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "configs/config.yaml", "path to YAML config file")
	rootCmd.Flags().IntVar(&flagDays, "days", 0, "number of days to simulate")
	rootCmd.Flags().Float64Var(&flagInitialPrice, "initial-price", 0, "starting price of the asset")
	rootCmd.Flags().Float64Var(&flagVolatility, "volatility", 0, "per-step standard deviation of relative price shocks")
	rootCmd.Flags().IntVar(&flagShortWindow, "short-window", 0, "short moving-average window in days")
	rootCmd.Flags().IntVar(&flagLongWindow, "long-window", 0, "long moving-average window in days")
	rootCmd.Flags().Float64Var(&flagInitialCash, "initial-cash", 0, "starting cash balance")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (0 uses the current time)")
	rootCmd.Flags().IntVar(&flagEvery, "every", 0, "print every Nth ledger row in addition to trade days")
	rootCmd.Flags().StringVar(&flagColor, "color", "", "color output: auto, always or never")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if v := os.Getenv("CONFIG_PATH"); v != "" && !cmd.Flags().Changed("config") {
		flagConfig = v
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	sim := cfg.Simulation

	seed := sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runID := uuid.NewString()
	log.Printf("[INFO] run %s: days=%d initial_price=%.2f volatility=%.4f short=%d long=%d cash=%.2f seed=%d",
		runID, sim.Days, sim.InitialPrice, sim.Volatility, sim.ShortWindow, sim.LongWindow, sim.InitialCash, seed)
	if sim.ShortWindow >= sim.LongWindow {
		log.Printf("[WARN] short_window %d >= long_window %d: the crossover strategy is degenerate", sim.ShortWindow, sim.LongWindow)
	}

	rng := rand.New(rand.NewSource(seed))
	series, err := generator.Generate(sim.Days, sim.InitialPrice, sim.Volatility, rng)
	if err != nil {
		return fmt.Errorf("generate prices: %w", err)
	}
	rows, err := signal.Derive(series, sim.ShortWindow, sim.LongWindow)
	if err != nil {
		return fmt.Errorf("derive signals: %w", err)
	}
	ledger, err := portfolio.Simulate(rows, sim.InitialCash)
	if err != nil {
		return fmt.Errorf("simulate trading: %w", err)
	}
	summary := portfolio.Summarize(ledger, sim.InitialCash)

	rep := report.NewReporter(report.Options{
		Color:  report.ColorMode(cfg.Report.Color),
		EveryN: cfg.Report.Every,
	})
	rep.PrintLedger(ledger)
	rep.PrintSummary(summary)

	log.Printf("[INFO] run %s finished: final=%.2f profit=%.2f trades=%d", runID, summary.FinalValue, summary.Profit, summary.Trades)
	return nil
}

// applyFlags overlays explicitly-set command-line flags onto the config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("days") {
		cfg.Simulation.Days = flagDays
	}
	if cmd.Flags().Changed("initial-price") {
		cfg.Simulation.InitialPrice = flagInitialPrice
	}
	if cmd.Flags().Changed("volatility") {
		cfg.Simulation.Volatility = flagVolatility
	}
	if cmd.Flags().Changed("short-window") {
		cfg.Simulation.ShortWindow = flagShortWindow
	}
	if cmd.Flags().Changed("long-window") {
		cfg.Simulation.LongWindow = flagLongWindow
	}
	if cmd.Flags().Changed("initial-cash") {
		cfg.Simulation.InitialCash = flagInitialCash
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed = flagSeed
	}
	if cmd.Flags().Changed("every") {
		cfg.Report.Every = flagEvery
	}
	if cmd.Flags().Changed("color") {
		cfg.Report.Color = flagColor
	}
}
