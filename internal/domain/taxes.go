package domain

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// TaxCategory is the closed set of tax families tracked by a projection.
// Iteration order is declaration order.
type TaxCategory int

const (
	IncomeTax TaxCategory = iota
	WealthTax
	Succession
	SocialLevies
	LocalTaxes

	numTaxCategories
)

var taxCategoryLabels = [numTaxCategories]string{
	IncomeTax:    "IRPP",
	WealthTax:    "ISF",
	Succession:   "Succession",
	SocialLevies: "Prélèvements sociaux",
	LocalTaxes:   "Taxes locales",
}

// AllTaxCategories lists every category in declaration order.
func AllTaxCategories() []TaxCategory {
	all := make([]TaxCategory, numTaxCategories)
	for i := range all {
		all[i] = TaxCategory(i)
	}
	return all
}

func (c TaxCategory) String() string {
	if c < 0 || c >= numTaxCategories {
		return fmt.Sprintf("TaxCategory(%d)", int(c))
	}
	return taxCategoryLabels[c]
}

// Valid reports whether c is one of the declared categories.
func (c TaxCategory) Valid() bool {
	return c >= 0 && c < numTaxCategories
}

// NamedValue is one labelled amount.
type NamedValue struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// NamedValueTable is an ordered list of labelled amounts.
type NamedValueTable struct {
	Name   string       `json:"name"`
	Values []NamedValue `json:"values"`
}

// NewNamedValueTable creates an empty table.
func NewNamedValueTable(name string) NamedValueTable {
	return NamedValueTable{Name: name, Values: []NamedValue{}}
}

// Add appends an entry.
func (t *NamedValueTable) Add(name string, amount decimal.Decimal) {
	t.Values = append(t.Values, NamedValue{Name: name, Amount: amount})
}

// Total sums the amounts.
func (t NamedValueTable) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range t.Values {
		total = total.Add(v.Amount)
	}
	return total
}

// Headers returns the entry labels in order.
func (t NamedValueTable) Headers() []string {
	headers := make([]string, len(t.Values))
	for i, v := range t.Values {
		headers[i] = v.Name
	}
	return headers
}

// Amounts returns the entry amounts in order.
func (t NamedValueTable) Amounts() []decimal.Decimal {
	amounts := make([]decimal.Decimal, len(t.Values))
	for i, v := range t.Values {
		amounts[i] = v.Amount
	}
	return amounts
}

// Clone returns a copy sharing no slice with t.
func (t NamedValueTable) Clone() NamedValueTable {
	c := t
	c.Values = append([]NamedValue{}, t.Values...)
	return c
}

// IncomeTaxSummary describes one year's income tax (IRPP) assessment.
type IncomeTaxSummary struct {
	Amount         decimal.Decimal `json:"amount"`
	TaxableIncome  decimal.Decimal `json:"taxable_income"`
	FamilyQuotient decimal.Decimal `json:"family_quotient"` // number of parts
	MarginalRate   decimal.Decimal `json:"marginal_rate"`   // percent
	AverageRate    decimal.Decimal `json:"average_rate"`    // percent
}

// WealthTaxSummary describes one year's wealth tax (ISF) assessment.
type WealthTaxSummary struct {
	Amount       decimal.Decimal `json:"amount"`
	TaxableBase  decimal.Decimal `json:"taxable_base"`
	MarginalRate decimal.Decimal `json:"marginal_rate"` // percent
}

// ValuedTaxes holds one named table per tax category plus the typed income
// and wealth tax summaries. The zero value is not usable; call
// NewValuedTaxes.
type ValuedTaxes struct {
	tables [numTaxCategories]NamedValueTable
	IRPP   IncomeTaxSummary
	ISF    WealthTaxSummary
}

// NewValuedTaxes returns an aggregate with one empty table per category.
func NewValuedTaxes() ValuedTaxes {
	var v ValuedTaxes
	for _, c := range AllTaxCategories() {
		v.tables[c] = NewNamedValueTable(c.String())
	}
	return v
}

// Append records amount under label in category's table.
func (v *ValuedTaxes) Append(category TaxCategory, label string, amount decimal.Decimal) {
	v.tables[category].Add(label, amount)
}

// Table returns the table of category.
func (v ValuedTaxes) Table(category TaxCategory) NamedValueTable {
	return v.tables[category]
}

// Tables returns all tables in category order.
func (v ValuedTaxes) Tables() []NamedValueTable {
	return append([]NamedValueTable(nil), v.tables[:]...)
}

// CategoryTotal sums the table of category.
func (v ValuedTaxes) CategoryTotal(category TaxCategory) decimal.Decimal {
	return v.tables[category].Total()
}

// Total sums every category.
func (v ValuedTaxes) Total() decimal.Decimal {
	total := decimal.Zero
	for _, t := range v.tables {
		total = total.Add(t.Total())
	}
	return total
}

// Headers returns one label per category, for per-category export columns.
func (v ValuedTaxes) Headers() []string {
	headers := make([]string, 0, numTaxCategories)
	for _, t := range v.tables {
		headers = append(headers, t.Name)
	}
	return headers
}

// Amounts returns the per-category totals aligned with Headers.
func (v ValuedTaxes) Amounts() []decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, numTaxCategories)
	for _, t := range v.tables {
		amounts = append(amounts, t.Total())
	}
	return amounts
}

// DetailedHeaders flattens every table's labels in category order.
func (v ValuedTaxes) DetailedHeaders() []string {
	var headers []string
	for _, t := range v.tables {
		headers = append(headers, t.Headers()...)
	}
	return headers
}

// DetailedAmounts flattens every table's amounts aligned with DetailedHeaders.
func (v ValuedTaxes) DetailedAmounts() []decimal.Decimal {
	var amounts []decimal.Decimal
	for _, t := range v.tables {
		amounts = append(amounts, t.Amounts()...)
	}
	return amounts
}

// Clone returns a copy sharing no slices with v.
func (v ValuedTaxes) Clone() ValuedTaxes {
	c := v
	for i := range c.tables {
		c.tables[i] = v.tables[i].Clone()
	}
	return c
}

type valuedTaxesJSON struct {
	Tables []NamedValueTable `json:"tables"`
	Total  decimal.Decimal   `json:"total"`
	IRPP   IncomeTaxSummary  `json:"irpp"`
	ISF    WealthTaxSummary  `json:"isf"`
}

func (v ValuedTaxes) MarshalJSON() ([]byte, error) {
	return json.Marshal(valuedTaxesJSON{Tables: v.Tables(), Total: v.Total(), IRPP: v.IRPP, ISF: v.ISF})
}
