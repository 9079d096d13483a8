package fiscal

import (
	"github.com/rpgo/patrimoine/internal/domain"
	pctdec "github.com/rpgo/patrimoine/pkg/decimal"
	"github.com/shopspring/decimal"
)

const incomeTaxModelName = "income tax"

var (
	half = decimal.NewFromFloat(0.5)
	one  = decimal.NewFromInt(1)
)

// IncomeTaxConfig is the configuration document of the income tax (IRPP).
type IncomeTaxConfig struct {
	Version              Version         `json:"version"`
	SalaryRebate         decimal.Decimal `json:"salaryRebate"`         // percent deducted from salaries and pensions
	SalaryRebateMax      decimal.Decimal `json:"salaryRebateMax"`      // cap of that deduction; 0 means none
	RentalRebate         decimal.Decimal `json:"rentalRebate"`         // percent deducted from rents
	DividendRebate       decimal.Decimal `json:"dividendRebate"`       // percent deducted from dividends
	HalfPartMaxReduction decimal.Decimal `json:"halfPartMaxReduction"` // cap of the tax reduction per extra half part; 0 means none
	Brackets             []Bracket       `json:"brackets"`
}

// TaxableIncome is a household's gross income by kind for one year.
type TaxableIncome struct {
	Salaries  decimal.Decimal // salaries and pensions
	Rents     decimal.Decimal
	Dividends decimal.Decimal
	Other     decimal.Decimal // taxed without deduction
}

// IncomeTaxModel computes the progressive income tax with family quotient.
type IncomeTaxModel struct {
	cfg   IncomeTaxConfig
	scale ProgressiveScale
}

// NewIncomeTaxModel validates cfg and builds the model.
func NewIncomeTaxModel(cfg IncomeTaxConfig) (*IncomeTaxModel, error) {
	if err := cfg.Version.Validate(incomeTaxModelName); err != nil {
		return nil, err
	}
	rebates := []struct {
		field string
		rate  decimal.Decimal
	}{
		{"salaryRebate", cfg.SalaryRebate},
		{"rentalRebate", cfg.RentalRebate},
		{"dividendRebate", cfg.DividendRebate},
	}
	for _, r := range rebates {
		if err := checkPercent(incomeTaxModelName, r.field, r.rate); err != nil {
			return nil, err
		}
	}
	if err := checkNonNegative(incomeTaxModelName, "salaryRebateMax", cfg.SalaryRebateMax); err != nil {
		return nil, err
	}
	if err := checkNonNegative(incomeTaxModelName, "halfPartMaxReduction", cfg.HalfPartMaxReduction); err != nil {
		return nil, err
	}
	scale, err := NewProgressiveScale(incomeTaxModelName, cfg.Brackets)
	if err != nil {
		return nil, err
	}
	cfg.Brackets = scale.Brackets()
	return &IncomeTaxModel{cfg: cfg, scale: scale}, nil
}

func (m *IncomeTaxModel) Version() Version { return m.cfg.Version }

// Scale returns the model's progressive scale.
func (m *IncomeTaxModel) Scale() ProgressiveScale { return m.scale }

// TaxableBase applies the per-kind deductions and returns the net taxable
// income, never negative.
func (m *IncomeTaxModel) TaxableBase(income TaxableIncome) decimal.Decimal {
	salaryRebate := pctdec.ApplyPercent(income.Salaries, m.cfg.SalaryRebate)
	if m.cfg.SalaryRebateMax.IsPositive() {
		salaryRebate = decimal.Min(salaryRebate, m.cfg.SalaryRebateMax)
	}
	base := pctdec.Sum(
		income.Salaries.Sub(salaryRebate),
		pctdec.ReduceByPercent(income.Rents, m.cfg.RentalRebate),
		pctdec.ReduceByPercent(income.Dividends, m.cfg.DividendRebate),
		income.Other,
	)
	return decimal.Max(base, decimal.Zero)
}

// FamilyParts returns the household's number of parts: one per adult, a half
// for each of the first two dependent children and one from the third.
func FamilyParts(adults, children int) decimal.Decimal {
	parts := decimal.NewFromInt(int64(adults))
	for i := 1; i <= children; i++ {
		if i <= 2 {
			parts = parts.Add(half)
		} else {
			parts = parts.Add(one)
		}
	}
	return parts
}

// Compute assesses the income tax of a household of adults and dependent
// children. The benefit of the children's parts is capped per half part.
func (m *IncomeTaxModel) Compute(income TaxableIncome, adults, children int) domain.IncomeTaxSummary {
	taxable := m.TaxableBase(income)
	if adults < 1 {
		adults = 1
	}
	parts := FamilyParts(adults, children)
	quotient := taxable.Div(parts)
	tax := m.scale.Tax(quotient).Mul(parts)

	adultParts := decimal.NewFromInt(int64(adults))
	if parts.GreaterThan(adultParts) && m.cfg.HalfPartMaxReduction.IsPositive() {
		withoutChildren := m.scale.Tax(taxable.Div(adultParts)).Mul(adultParts)
		extraHalfParts := parts.Sub(adultParts).Div(half)
		capped := withoutChildren.Sub(extraHalfParts.Mul(m.cfg.HalfPartMaxReduction))
		tax = decimal.Max(tax, capped)
	}
	tax = tax.Round(2)

	summary := domain.IncomeTaxSummary{
		Amount:         tax,
		TaxableIncome:  taxable,
		FamilyQuotient: parts,
		MarginalRate:   m.scale.MarginalRate(quotient),
		AverageRate:    decimal.Zero,
	}
	if taxable.IsPositive() {
		summary.AverageRate = pctdec.ToPercent(tax.Div(taxable)).Round(2)
	}
	return summary
}
