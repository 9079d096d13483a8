package output

import (
	"strconv"

	money "github.com/rpgo/patrimoine/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as whole euros with grouped thousands.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// formatAmount is the plain two-decimal rendering used in exported files.
func formatAmount(amount decimal.Decimal) string { return amount.StringFixed(2) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
