package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpgo/patrimoine/internal/calculation"
	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/shopspring/decimal"
)

// File names written by CSVExporter.
const (
	BalanceSheetFile = "balance_sheet.csv"
	CashFlowFile     = "cash_flow.csv"
)

// seriesRow is one year of an exported series.
type seriesRow interface {
	Headers() []string
	Amounts() []decimal.Decimal
}

// writeSeries renders rows as one column per header and one row per year.
// Every row must carry the header set of the first one.
func writeSeries[R seriesRow](rows []R, year func(R) int) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if len(rows) == 0 {
		w.Flush()
		return buf.Bytes(), w.Error()
	}
	headers := rows[0].Headers()
	if err := w.Write(append([]string{domain.YearHeader}, headers...)); err != nil {
		return nil, err
	}
	want := strings.Join(headers, "\x00")
	for _, row := range rows {
		if got := strings.Join(row.Headers(), "\x00"); got != want {
			return nil, fmt.Errorf("year %d: column schema differs from year %d", year(row), year(rows[0]))
		}
		record := []string{intToString(year(row))}
		for _, amount := range row.Amounts() {
			record = append(record, formatAmount(amount))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CashFlowCSVFormatter exports the yearly cash flow series.
type CashFlowCSVFormatter struct{}

func (c CashFlowCSVFormatter) Name() string { return "csv" }

func (c CashFlowCSVFormatter) Format(report *Report) ([]byte, error) {
	if report.Result == nil {
		return nil, ErrNoResult
	}
	return writeSeries(report.Result.CashFlow, func(l domain.CashFlowLine) int { return l.Year })
}

// BalanceSheetCSVFormatter exports the yearly balance sheet series.
type BalanceSheetCSVFormatter struct{}

func (c BalanceSheetCSVFormatter) Name() string { return "balance-csv" }

func (c BalanceSheetCSVFormatter) Format(report *Report) ([]byte, error) {
	if report.Result == nil {
		return nil, ErrNoResult
	}
	return writeSeries(report.Result.BalanceSheet, func(l domain.BalanceSheetLine) int { return l.Year })
}

// CSVExporter writes both series of a computed run into Dir, one file per
// series. It is the persistence collaborator of calculation.Simulation.Save.
type CSVExporter struct {
	Dir string
}

var _ calculation.Exporter = CSVExporter{}

// Export writes balance_sheet.csv and cash_flow.csv.
func (e CSVExporter) Export(result *calculation.Result) error {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	report := &Report{Result: result}
	files := []struct {
		name string
		f    Formatter
	}{
		{BalanceSheetFile, BalanceSheetCSVFormatter{}},
		{CashFlowFile, CashFlowCSVFormatter{}},
	}
	for _, file := range files {
		data, err := file.f.Format(report)
		if err != nil {
			return fmt.Errorf("failed to format %s: %w", file.name, err)
		}
		if err := os.WriteFile(filepath.Join(e.Dir, file.name), data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.name, err)
		}
	}
	return nil
}
