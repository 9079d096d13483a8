package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rpgo/patrimoine/internal/calculation"
	"github.com/shopspring/decimal"
)

// MonteCarloCSVReport generates CSV exports for Monte Carlo results
type MonteCarloCSVReport struct {
	Result *calculation.MonteCarloResult
	Config calculation.TrialsConfig
}

func (m *MonteCarloCSVReport) writeFile(outputPath string, header []string, rows [][]string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write data row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// GenerateSummaryCSV creates a summary CSV with aggregate statistics
func (m *MonteCarloCSVReport) GenerateSummaryCSV(outputPath string) error {
	r := m.Result
	rows := [][]string{
		{"Success Rate", FormatPercentage(r.SuccessRate.Mul(decimal.NewFromInt(100))), "Share of trials ending with a positive net worth"},
		{"Median Final Net Worth", formatAmount(r.MedianFinalNetWorth), "Median net worth at the end of the last year"},
		{"10th Percentile", formatAmount(r.PercentileRanges.P10), "10th percentile of the final net worth"},
		{"90th Percentile", formatAmount(r.PercentileRanges.P90), "90th percentile of the final net worth"},
		{"Number of Trials", strconv.Itoa(r.NumTrials), "Total number of trials run"},
		{"Years", strconv.Itoa(r.Years), "Projected years per trial"},
		{"Base Seed", strconv.FormatInt(r.Seed, 10), "Trial i replays seed base+i"},
		{"Workers", strconv.Itoa(m.Config.Workers), "Concurrent trials (0: default)"},
	}
	return m.writeFile(outputPath, []string{"Metric", "Value", "Description"}, rows)
}

// GenerateDetailedCSV creates a detailed CSV with individual trial results
func (m *MonteCarloCSVReport) GenerateDetailedCSV(outputPath string) error {
	rows := make([][]string, 0, len(m.Result.Trials))
	for _, trial := range m.Result.Trials {
		rows = append(rows, []string{
			intToString(trial.Index),
			strconv.FormatInt(trial.Seed, 10),
			boolToString(trial.Success),
			formatAmount(trial.FinalNetWorth),
			formatAmount(trial.MinNetWorth),
		})
	}
	return m.writeFile(outputPath, []string{"Trial", "Seed", "Success", "FinalNetWorth", "MinNetWorth"}, rows)
}

// GeneratePercentileCSV creates a CSV with the final net worth percentiles
func (m *MonteCarloCSVReport) GeneratePercentileCSV(outputPath string) error {
	p := m.Result.PercentileRanges
	rows := [][]string{
		{"10th", formatAmount(p.P10), "Worst 10% of trials"},
		{"25th", formatAmount(p.P25), "Below average trials"},
		{"50th (Median)", formatAmount(p.P50), "Typical trial"},
		{"75th", formatAmount(p.P75), "Above average trials"},
		{"90th", formatAmount(p.P90), "Best 10% of trials"},
	}
	return m.writeFile(outputPath, []string{"Percentile", "FinalNetWorth", "Interpretation"}, rows)
}

// GenerateAllCSVReports creates all CSV reports in a single directory
func (m *MonteCarloCSVReport) GenerateAllCSVReports(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := m.GenerateSummaryCSV(filepath.Join(outputDir, "monte_carlo_summary.csv")); err != nil {
		return fmt.Errorf("failed to generate summary CSV: %w", err)
	}
	if err := m.GenerateDetailedCSV(filepath.Join(outputDir, "monte_carlo_detailed.csv")); err != nil {
		return fmt.Errorf("failed to generate detailed CSV: %w", err)
	}
	if err := m.GeneratePercentileCSV(filepath.Join(outputDir, "monte_carlo_percentiles.csv")); err != nil {
		return fmt.Errorf("failed to generate percentile CSV: %w", err)
	}
	return nil
}
