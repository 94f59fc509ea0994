package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/jmorrel/montysim/internal/config"
	"github.com/jmorrel/montysim/internal/game"
	"github.com/jmorrel/montysim/internal/metrics"
	"github.com/jmorrel/montysim/internal/sim"
	"github.com/jmorrel/montysim/internal/storage"
	"github.com/jmorrel/montysim/internal/tui"
)

var (
	dataDir    string
	trials     int
	seed       int64
	workers    int
	configFile string
	preset     string
)

// main registers the montysim commands; with no subcommand the
// interactive game starts.
func main() {
	rootCmd := &cobra.Command{
		Use:   "montysim",
		Short: "monty hall probability lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".montysim", "data directory")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "play the door game interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	trialsCmd := &cobra.Command{
		Use:   "trials [keep|switch]",
		Short: "run bulk trials under a fixed strategy",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrials,
	}
	trialsCmd.Flags().IntVarP(&trials, "trials", "n", config.DefaultTrials, "number of trials")
	trialsCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	trialsCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "parallel workers")
	trialsCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	trialsCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run both strategies on the same trial count",
		RunE:  compareStrategies,
	}
	compareCmd.Flags().IntVarP(&trials, "trials", "n", 10000, "number of trials per strategy")
	compareCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's win-rate convergence",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's trial log to csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				cfg := config.GetPreset(p)
				fmt.Printf("  %-12s %s, %d trials\n", p, cfg.Strategy, cfg.Trials)
			}
			return nil
		},
	}

	rootCmd.AddCommand(playCmd, trialsCmd, compareCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTrials(cmd *cobra.Command, args []string) error {
	strategy := args[0]

	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		if !cmd.Flags().Changed("trials") {
			trials = cfg.Trials
		}
		if !cmd.Flags().Changed("workers") {
			workers = cfg.Workers
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// CLI flags override config values.
		if !cmd.Flags().Changed("trials") {
			trials = cfg.Trials
		}
		if !cmd.Flags().Changed("workers") {
			workers = cfg.Workers
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}

	decision, err := game.ParseDecision(strategy)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := sim.New(decision)
	runner.AddMetric(metrics.NewWinRate())
	runner.AddMetric(metrics.NewStreak(game.Won))
	runner.AddMetric(metrics.NewStreak(game.Lost))

	recorder := storage.NewRecorder(trials)
	if workers <= 1 {
		runner.AddObserver(recorder)
	}

	fmt.Printf("running %d trials with strategy %s...\n", trials, decision)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{
		Trials:  trials,
		Seed:    seed,
		Workers: workers,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(decision.String(), seed, workers, result, recorder.Rows())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("wins: %d  losses: %d\n", result.Tally.Wins, result.Tally.Losses)
	if rate, ok := result.Tally.WinRate(); ok {
		fmt.Printf("win rate: %.4f\n", rate)
	}
	if len(result.Metrics) > 0 {
		fmt.Println("\nmetrics:")
		for name, val := range result.Metrics {
			fmt.Printf("  %s: %.4f\n", name, val)
		}
	}
	if workers > 1 {
		fmt.Println("\nnote: per-trial log skipped for parallel runs")
	}

	return nil
}

func compareStrategies(cmd *cobra.Command, args []string) error {
	rates := make(map[game.Decision]float64)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tWINS\tLOSSES\tWIN RATE")

	for _, decision := range []game.Decision{game.Keep, game.Switch} {
		runner := sim.New(decision)
		result, err := runner.Run(context.Background(), sim.Config{Trials: trials, Seed: seed})
		if err != nil {
			return err
		}
		rate, _ := result.Tally.WinRate()
		rates[decision] = rate

		fmt.Fprintf(w, "%s\t%d\t%d\t%.4f\n",
			decision, result.Tally.Wins, result.Tally.Losses, rate)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nswitch advantage: %+.1f pts (theory: keep 1/3, switch 2/3)\n",
		100*(rates[game.Switch]-rates[game.Keep]))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTRATEGY\tTIME\tTRIALS\tWINS\tWIN RATE")

	for _, run := range runs {
		tally := game.Tally{Wins: run.Wins, Losses: run.Losses}
		rateStr := "n/a"
		if rate, ok := tally.WinRate(); ok {
			rateStr = fmt.Sprintf("%.4f", rate)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			run.ID,
			run.Strategy,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Trials,
			run.Wins,
			rateStr,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	rows, err := st.LoadTrials(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no trial data to plot (parallel runs keep no per-trial log)")
	}

	series := make([]float64, len(rows))
	for i, row := range rows {
		series[i] = float64(row.CumWins) / float64(i+1)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("strategy: %s\n", meta.Strategy)
	fmt.Printf("trials: %d\n\n", len(rows))

	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("running win rate (%s)", meta.Strategy)),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Println("theory: keep wins 1/3 ≈ 0.333, switch wins 2/3 ≈ 0.667")

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	rows, err := st.LoadTrials(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no trial data to export")
	}
	return storage.WriteCSV(os.Stdout, rows)
}
