package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/patrimoine/internal/domain"
)

// ConsoleFormatter provides a concise console summary: net worth evolution
// and the tax breakdown of the last year.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	title := "PATRIMOINE PROJECTION SUMMARY"
	if report.Name != "" {
		title += ": " + report.Name
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, "================================")
	r := report.Result
	if r == nil || len(r.BalanceSheet) == 0 {
		fmt.Fprintln(&buf, "No computed years.")
		return buf.Bytes(), nil
	}
	a := AnalyzeProjection(r)
	fmt.Fprintf(&buf, "Years: %d-%d\n", r.FirstYear, r.LastYear)
	fmt.Fprintf(&buf, "Net worth %d: %s\n", r.FirstYear, FormatCurrency(a.InitialNetWorth))
	fmt.Fprintf(&buf, "Net worth %d: %s (%s)\n", r.LastYear, FormatCurrency(a.FinalNetWorth), FormatPercentage(a.PercentageChange))
	fmt.Fprintf(&buf, "Peak: %s in %d\n", FormatCurrency(a.PeakNetWorth), a.PeakYear)
	fmt.Fprintf(&buf, "Taxes paid over the run: %s\n", FormatCurrency(a.TotalTaxes))
	if a.FirstDeficitYear != 0 {
		fmt.Fprintf(&buf, "First deficit year: %d\n", a.FirstDeficitYear)
	}
	fmt.Fprintln(&buf)
	writeTaxBreakdown(&buf, r.LastYear, r.Taxes)
	return buf.Bytes(), nil
}

func writeTaxBreakdown(buf *bytes.Buffer, year int, taxes domain.ValuedTaxes) {
	fmt.Fprintf(buf, "TAXES %d\n", year)
	fmt.Fprintln(buf, "----------------------------------------")
	for _, table := range taxes.Tables() {
		fmt.Fprintf(buf, "%-24s %14s\n", table.Name, FormatCurrency(table.Total()))
		for _, v := range table.Values {
			if v.Amount.IsZero() {
				continue
			}
			fmt.Fprintf(buf, "  %-22s %14s\n", v.Name, FormatCurrency(v.Amount))
		}
	}
	fmt.Fprintf(buf, "%-24s %14s\n", "TOTAL", FormatCurrency(taxes.Total()))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "IRPP: taxable %s, %s parts, marginal %s, average %s\n",
		FormatCurrency(taxes.IRPP.TaxableIncome),
		taxes.IRPP.FamilyQuotient.String(),
		FormatPercentage(taxes.IRPP.MarginalRate),
		FormatPercentage(taxes.IRPP.AverageRate))
	fmt.Fprintf(buf, "ISF: base %s, marginal %s\n",
		FormatCurrency(taxes.ISF.TaxableBase),
		FormatPercentage(taxes.ISF.MarginalRate))
}
