package domain

import (
	"github.com/shopspring/decimal"
)

// Column labels shared by the exported series.
const (
	YearHeader             = "Year"
	TotalAssetsHeader      = "Total assets"
	TotalLiabilitiesHeader = "Total liabilities"
	NetWorthHeader         = "Net worth"
	TotalRevenuesHeader    = "Total revenues"
	TotalExpensesHeader    = "Total expenses"
	TotalTaxesHeader       = "Total taxes"
	NetCashFlowHeader      = "Net cash flow"
)

// BalanceSheetLine is the household's balance sheet at the end of a year.
// Liabilities are negative amounts.
type BalanceSheetLine struct {
	Year        int             `json:"year"`
	Assets      NamedValueTable `json:"assets"`
	Liabilities NamedValueTable `json:"liabilities"`
}

// NetWorth is assets plus (negative) liabilities.
func (l BalanceSheetLine) NetWorth() decimal.Decimal {
	return l.Assets.Total().Add(l.Liabilities.Total())
}

// Headers returns the column labels, excluding the year.
func (l BalanceSheetLine) Headers() []string {
	headers := append([]string{}, l.Assets.Headers()...)
	headers = append(headers, TotalAssetsHeader)
	headers = append(headers, l.Liabilities.Headers()...)
	return append(headers, TotalLiabilitiesHeader, NetWorthHeader)
}

// Amounts returns the values aligned with Headers.
func (l BalanceSheetLine) Amounts() []decimal.Decimal {
	amounts := append([]decimal.Decimal{}, l.Assets.Amounts()...)
	amounts = append(amounts, l.Assets.Total())
	amounts = append(amounts, l.Liabilities.Amounts()...)
	return append(amounts, l.Liabilities.Total(), l.NetWorth())
}

// CashFlowLine is the household's cash flow over a year.
type CashFlowLine struct {
	Year     int             `json:"year"`
	Revenues NamedValueTable `json:"revenues"`
	Expenses NamedValueTable `json:"expenses"`
	Taxes    ValuedTaxes     `json:"taxes"`
}

// NetCashFlow is revenues less expenses and taxes.
func (l CashFlowLine) NetCashFlow() decimal.Decimal {
	return l.Revenues.Total().Sub(l.Expenses.Total()).Sub(l.Taxes.Total())
}

// Headers returns the column labels, excluding the year. Taxes appear as one
// column per category.
func (l CashFlowLine) Headers() []string {
	headers := append([]string{}, l.Revenues.Headers()...)
	headers = append(headers, TotalRevenuesHeader)
	headers = append(headers, l.Expenses.Headers()...)
	headers = append(headers, TotalExpensesHeader)
	headers = append(headers, l.Taxes.Headers()...)
	return append(headers, TotalTaxesHeader, NetCashFlowHeader)
}

// Amounts returns the values aligned with Headers.
func (l CashFlowLine) Amounts() []decimal.Decimal {
	amounts := append([]decimal.Decimal{}, l.Revenues.Amounts()...)
	amounts = append(amounts, l.Revenues.Total())
	amounts = append(amounts, l.Expenses.Amounts()...)
	amounts = append(amounts, l.Expenses.Total())
	amounts = append(amounts, l.Taxes.Amounts()...)
	return append(amounts, l.Taxes.Total(), l.NetCashFlow())
}
