package calculation

import (
	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/rpgo/patrimoine/pkg/finmath"
	"github.com/shopspring/decimal"
)

// investment is the running state of a financial envelope over one run. It
// implements domain.Envelope.
type investment struct {
	cfg       domain.FreeInvestment
	firstYear int
	values    []decimal.Decimal // end-of-year values from firstYear on
	invested  decimal.Decimal
}

var _ domain.Envelope = (*investment)(nil)

func newInvestment(cfg domain.FreeInvestment, firstYear int) *investment {
	return &investment{cfg: cfg, firstYear: firstYear, invested: cfg.Invested}
}

func (e *investment) Name() string              { return e.cfg.Name }
func (e *investment) Kind() domain.EnvelopeKind { return e.cfg.Kind }

// ValueAtEndOf returns the envelope's value on December 31st of year. Years
// before the run report the configured value; years after the last computed
// one report the latest value.
func (e *investment) ValueAtEndOf(year int) decimal.Decimal {
	i := year - e.firstYear
	switch {
	case i < 0 || len(e.values) == 0:
		return e.cfg.Value
	case i >= len(e.values):
		return e.values[len(e.values)-1]
	default:
		return e.values[i]
	}
}

func (e *investment) AsLifeInsuranceClause() (domain.Clause, bool) {
	if e.cfg.Kind != domain.LifeInsurance {
		return domain.Clause{}, false
	}
	if e.cfg.Clause == nil {
		return domain.Clause{}, true
	}
	return *e.cfg.Clause, true
}

func (e *investment) current() decimal.Decimal {
	if len(e.values) == 0 {
		return e.cfg.Value
	}
	return e.values[len(e.values)-1]
}

// grow closes the next year: the start value grows at rate (a fraction) and
// deposit is paid in at year end.
func (e *investment) grow(rate float64, deposit decimal.Decimal) {
	fv := finmath.FutureValue(deposit.InexactFloat64(), rate, 1, e.current().InexactFloat64())
	e.values = append(e.values, decimal.NewFromFloat(fv).Round(2))
	if deposit.IsPositive() {
		e.invested = e.invested.Add(deposit)
	}
}

// withdraw takes up to amount out of the year's closing value. It returns
// the amount taken and the part of it that is a gain over the deposits.
func (e *investment) withdraw(amount decimal.Decimal) (taken, gain decimal.Decimal) {
	if len(e.values) == 0 {
		return decimal.Zero, decimal.Zero
	}
	value := e.current()
	if !value.IsPositive() || !amount.IsPositive() {
		return decimal.Zero, decimal.Zero
	}
	taken = decimal.Min(amount, value)
	if value.GreaterThan(e.invested) {
		gain = taken.Mul(value.Sub(e.invested)).Div(value).Round(2)
	}
	e.invested = decimal.Max(e.invested.Sub(taken.Sub(gain)), decimal.Zero)
	e.values[len(e.values)-1] = value.Sub(taken)
	return taken, gain
}

// ownerShares splits amount between the owners by share. Without declared
// owners the whole amount goes to the envelope itself.
func (e *investment) ownerShares(amount decimal.Decimal) []domain.NamedValue {
	if len(e.cfg.Owners) == 0 {
		return []domain.NamedValue{{Name: e.cfg.Name, Amount: amount}}
	}
	shares := make([]domain.NamedValue, 0, len(e.cfg.Owners))
	for _, o := range e.cfg.Owners {
		shares = append(shares, domain.NamedValue{Name: o.Name, Amount: amount.Mul(o.Share).Div(decimal.NewFromInt(100)).Round(2)})
	}
	return shares
}
