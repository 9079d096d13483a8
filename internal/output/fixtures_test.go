package output

import (
	"github.com/rpgo/patrimoine/internal/calculation"
	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func buildLine(year int, account, loan, salary, expenses, irpp int64) (domain.BalanceSheetLine, domain.CashFlowLine) {
	bs := domain.BalanceSheetLine{
		Year:        year,
		Assets:      domain.NewNamedValueTable("Assets"),
		Liabilities: domain.NewNamedValueTable("Liabilities"),
	}
	bs.Assets.Add("Compte titres", dec(account))
	bs.Liabilities.Add("Prêt", dec(loan))

	cf := domain.CashFlowLine{
		Year:     year,
		Revenues: domain.NewNamedValueTable("Revenues"),
		Expenses: domain.NewNamedValueTable("Expenses"),
		Taxes:    domain.NewValuedTaxes(),
	}
	cf.Revenues.Add("Alice salary", dec(salary))
	cf.Expenses.Add("Living expenses", dec(expenses))
	cf.Taxes.Append(domain.IncomeTax, "IRPP", dec(irpp))
	cf.Taxes.Append(domain.LocalTaxes, "Maison", decimal.Zero)
	cf.Taxes.IRPP = domain.IncomeTaxSummary{
		Amount:         dec(irpp),
		TaxableIncome:  dec(salary),
		FamilyQuotient: decimal.NewFromInt(1),
		MarginalRate:   dec(11),
		AverageRate:    decimal.NewFromFloat(4.5),
	}
	return bs, cf
}

// buildTestResult is a two-year projection whose second year runs a deficit.
func buildTestResult() *calculation.Result {
	bs1, cf1 := buildLine(2025, 120000, -20000, 50000, 30000, 5000)
	bs2, cf2 := buildLine(2026, 150000, -10000, 50000, 60000, 5000)
	return &calculation.Result{
		FirstYear:    2025,
		LastYear:     2026,
		BalanceSheet: []domain.BalanceSheetLine{bs1, bs2},
		CashFlow:     []domain.CashFlowLine{cf1, cf2},
		Taxes:        cf2.Taxes,
	}
}

func buildTestReport() *Report {
	return &Report{
		Name:        "Test",
		Assumptions: []string{"Inflation: 2.00% annually"},
		Result:      buildTestResult(),
	}
}
