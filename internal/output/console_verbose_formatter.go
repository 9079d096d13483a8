package output

import (
	"bytes"
	"fmt"
	"strings"
)

// ConsoleVerboseFormatter renders the assumptions, one line per projected
// year and the last year's tax detail.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED PATRIMOINE PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
		fmt.Fprintln(&buf)
	}

	r := report.Result
	if r == nil || len(r.CashFlow) == 0 {
		fmt.Fprintln(&buf, "No computed years.")
		return buf.Bytes(), nil
	}

	fmt.Fprintf(&buf, "%-6s %14s %14s %14s %14s %16s\n", "Year", "Revenues", "Expenses", "Taxes", "Net cash flow", "Net worth")
	fmt.Fprintln(&buf, strings.Repeat("-", 83))
	for i, cf := range r.CashFlow {
		fmt.Fprintf(&buf, "%-6d %14s %14s %14s %14s %16s\n",
			cf.Year,
			FormatCurrency(cf.Revenues.Total()),
			FormatCurrency(cf.Expenses.Total()),
			FormatCurrency(cf.Taxes.Total()),
			FormatCurrency(cf.NetCashFlow()),
			FormatCurrency(r.BalanceSheet[i].NetWorth()))
	}
	fmt.Fprintln(&buf)

	last := r.BalanceSheet[len(r.BalanceSheet)-1]
	fmt.Fprintf(&buf, "BALANCE SHEET %d\n", last.Year)
	fmt.Fprintln(&buf, "----------------------------------------")
	for _, v := range last.Assets.Values {
		fmt.Fprintf(&buf, "  %-22s %14s\n", v.Name, FormatCurrency(v.Amount))
	}
	for _, v := range last.Liabilities.Values {
		fmt.Fprintf(&buf, "  %-22s %14s\n", v.Name, FormatCurrency(v.Amount))
	}
	fmt.Fprintf(&buf, "%-24s %14s\n", "NET WORTH", FormatCurrency(last.NetWorth()))
	fmt.Fprintln(&buf)

	writeTaxBreakdown(&buf, r.LastYear, r.Taxes)
	return buf.Bytes(), nil
}
