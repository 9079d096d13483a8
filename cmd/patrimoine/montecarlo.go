package main

import (
	"fmt"

	"github.com/rpgo/patrimoine/internal/calculation"
	"github.com/rpgo/patrimoine/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMonteCarloCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "Run stochastic trials and report the distribution of the final net worth",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, model, err := a.loadInputs()
			if err != nil {
				return err
			}
			trials := calculation.TrialsConfig{
				NumTrials: firstPositive(a.v.GetInt("trials"), cfg.Simulation.Trials),
				Seed:      a.v.GetInt64("seed"),
				Workers:   firstPositive(a.v.GetInt("workers"), cfg.Simulation.Workers),
			}
			if trials.Seed == 0 {
				trials.Seed = cfg.Simulation.Seed
			}
			sc := calculation.Scenario{
				Years:      cfg.Simulation.Years,
				Family:     cfg.Family,
				Patrimoine: cfg.Patrimoine,
				Baseline:   cfg.Provider(),
				Volatility: cfg.Economy.Volatility,
			}

			result, err := calculation.RunTrials(cmd.Context(), trials, sc, model,
				calculation.WithLogger(calculation.NewZapLogger(a.logger)))
			if err != nil {
				return err
			}
			a.logger.Info("monte carlo finished",
				zap.String("op", "montecarlo"),
				zap.Int("trials", result.NumTrials),
				zap.Int64("seed", result.Seed),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Trials: %d over %d years (seed %d)\n", result.NumTrials, result.Years, result.Seed)
			fmt.Fprintf(out, "Success rate: %s\n", output.FormatPercentage(result.SuccessRate.Shift(2)))
			fmt.Fprintf(out, "Median final net worth: %s\n", output.FormatCurrency(result.MedianFinalNetWorth))
			p := result.PercentileRanges
			fmt.Fprintf(out, "P10 %s | P25 %s | P75 %s | P90 %s\n",
				output.FormatCurrency(p.P10), output.FormatCurrency(p.P25),
				output.FormatCurrency(p.P75), output.FormatCurrency(p.P90))

			if dir := a.v.GetString("csv-dir"); dir != "" {
				report := &output.MonteCarloCSVReport{Result: result, Config: trials}
				if err := report.GenerateAllCSVReports(dir); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.String("scenario", "", "scenario YAML file")
	f.Int("years", 0, "number of projected years (overrides the scenario)")
	f.Int("trials", 0, "number of trials (overrides the scenario)")
	f.Int64("seed", 0, "base seed; trial i replays seed+i (0: scenario seed, then random)")
	f.Int("workers", 0, "concurrent trials (overrides the scenario)")
	f.String("csv-dir", "", "directory receiving the Monte Carlo CSV reports")
	return cmd
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
