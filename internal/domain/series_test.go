package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceSheetLine(t *testing.T) {
	line := BalanceSheetLine{Year: 2025, Assets: NewNamedValueTable("Assets"), Liabilities: NewNamedValueTable("Liabilities")}
	line.Assets.Add("Livret", d(20000))
	line.Assets.Add("Maison", d(300000))
	line.Liabilities.Add("Prêt", d(-120000))

	assert.True(t, line.NetWorth().Equal(d(200000)))
	headers := line.Headers()
	amounts := line.Amounts()
	require.Equal(t, len(headers), len(amounts))
	assert.Equal(t, []string{"Livret", "Maison", TotalAssetsHeader, "Prêt", TotalLiabilitiesHeader, NetWorthHeader}, headers)
	assert.True(t, amounts[2].Equal(d(320000)))
	assert.True(t, amounts[5].Equal(d(200000)))
}

func TestCashFlowLine(t *testing.T) {
	line := CashFlowLine{Year: 2025, Revenues: NewNamedValueTable("Revenues"), Expenses: NewNamedValueTable("Expenses"), Taxes: NewValuedTaxes()}
	line.Revenues.Add("Salaire", d(60000))
	line.Expenses.Add("Dépenses", d(30000))
	line.Taxes.Append(IncomeTax, "Revenus", d(5000))
	line.Taxes.Append(LocalTaxes, "Maison", d(1000))

	assert.True(t, line.NetCashFlow().Equal(d(24000)))
	headers := line.Headers()
	amounts := line.Amounts()
	require.Equal(t, len(headers), len(amounts))
	assert.Equal(t, "IRPP", headers[4])
	assert.Equal(t, NetCashFlowHeader, headers[len(headers)-1])
	assert.True(t, amounts[len(amounts)-2].Equal(d(6000)))
}
