package output

import (
	"github.com/rpgo/patrimoine/internal/calculation"
	"github.com/shopspring/decimal"
)

// Analysis summarizes a projection for the human-readable reports.
type Analysis struct {
	InitialNetWorth  decimal.Decimal
	FinalNetWorth    decimal.Decimal
	NetWorthChange   decimal.Decimal
	PercentageChange decimal.Decimal
	PeakYear         int
	PeakNetWorth     decimal.Decimal
	TotalTaxes       decimal.Decimal
	FirstDeficitYear int // first year with a negative net cash flow; 0 if none
}

// AnalyzeProjection walks both series once. The initial net worth is the
// balance sheet at the end of the first year.
func AnalyzeProjection(result *calculation.Result) Analysis {
	var a Analysis
	if result == nil || len(result.BalanceSheet) == 0 {
		return a
	}
	a.InitialNetWorth = result.BalanceSheet[0].NetWorth()
	a.FinalNetWorth = result.FinalNetWorth()
	a.NetWorthChange = a.FinalNetWorth.Sub(a.InitialNetWorth)
	if !a.InitialNetWorth.IsZero() {
		a.PercentageChange = a.NetWorthChange.Div(a.InitialNetWorth.Abs()).Mul(decimal.NewFromInt(100))
	}
	a.PeakYear, a.PeakNetWorth = result.BalanceSheet[0].Year, a.InitialNetWorth
	for _, line := range result.BalanceSheet[1:] {
		if nw := line.NetWorth(); nw.GreaterThan(a.PeakNetWorth) {
			a.PeakYear, a.PeakNetWorth = line.Year, nw
		}
	}
	for _, line := range result.CashFlow {
		a.TotalTaxes = a.TotalTaxes.Add(line.Taxes.Total())
		if a.FirstDeficitYear == 0 && line.NetCashFlow().IsNegative() {
			a.FirstDeficitYear = line.Year
		}
	}
	return a
}
