package main

import (
	"fmt"

	"github.com/rpgo/patrimoine/internal/calculation"
	"github.com/rpgo/patrimoine/internal/config"
	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/rpgo/patrimoine/internal/economy"
	"github.com/rpgo/patrimoine/internal/fiscal"
	"github.com/rpgo/patrimoine/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadInputs reads the scenario and the tax models named by the settings.
func (a *app) loadInputs() (*domain.Configuration, fiscal.Model, error) {
	path := a.v.GetString("scenario")
	if path == "" {
		return nil, fiscal.Model{}, fmt.Errorf("a scenario file is required (--scenario or %s_SCENARIO)", envPrefix)
	}
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, fiscal.Model{}, err
	}
	if years := a.v.GetInt("years"); years != 0 {
		cfg.Simulation.Years = years
		if err := parser.ValidateConfiguration(cfg); err != nil {
			return nil, fiscal.Model{}, fmt.Errorf("years override: %w", err)
		}
	}
	model, err := config.LoadFiscalModel(a.v.GetString("fiscal"))
	if err != nil {
		return nil, fiscal.Model{}, err
	}
	a.logger.Info("inputs loaded",
		zap.String("op", "loadInputs"),
		zap.String("scenario", cfg.Name),
		zap.Int("years", cfg.Simulation.Years),
	)
	return cfg, model, nil
}

func newProjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project the household's balance sheet, cash flow and taxes year by year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, model, err := a.loadInputs()
			if err != nil {
				return err
			}
			mode, err := economy.ParseMode(cfg.Simulation.Mode)
			if err != nil {
				return err
			}

			var provider economy.Provider = cfg.Provider()
			if mode == economy.Stochastic {
				seed := a.v.GetInt64("seed")
				if seed == 0 {
					seed = cfg.Simulation.Seed
				}
				if provider, err = economy.NewRandomized(cfg.Provider(), cfg.Economy.Volatility, seed); err != nil {
					return err
				}
			}

			sim, err := calculation.NewSimulation(provider, model,
				calculation.WithLogger(calculation.NewZapLogger(a.logger)))
			if err != nil {
				return err
			}
			result, err := sim.Compute(cmd.Context(), cfg.Simulation.Years, cfg.Family, cfg.Patrimoine, mode)
			if err != nil {
				return err
			}

			if dir := a.v.GetString("csv-dir"); dir != "" {
				if err := sim.Save(output.CSVExporter{Dir: dir}); err != nil {
					return err
				}
				a.logger.Info("series exported", zap.String("op", "project"), zap.String("dir", dir))
			}

			report := &output.Report{
				Name:        cfg.Name,
				Assumptions: output.GenerateAssumptions(cfg, model.Versions()),
				Result:      result,
			}
			format := a.v.GetString("format")
			if dir := a.v.GetString("report-dir"); dir != "" {
				path, err := output.GenerateReport(report, format, dir)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
			}
			data, err := f.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	f := cmd.Flags()
	f.String("scenario", "", "scenario YAML file")
	f.Int("years", 0, "number of projected years (overrides the scenario)")
	f.Int64("seed", 0, "seed of a stochastic run (overrides the scenario)")
	f.String("csv-dir", "", "directory receiving balance_sheet.csv and cash_flow.csv")
	f.String("format", "console-lite", "report format")
	f.String("report-dir", "", "write the report to a timestamped file in this directory instead of stdout")
	return cmd
}
