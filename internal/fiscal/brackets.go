package fiscal

import (
	"sort"

	"github.com/shopspring/decimal"
)

// floored is implemented by every threshold-indexed table row.
type floored interface {
	lowerBound() decimal.Decimal
}

// lookup returns the index of the row with the greatest floor not exceeding
// x. Rows must be sorted by strictly increasing floor.
func lookup[T floored](table []T, x decimal.Decimal) (int, bool) {
	i := sort.Search(len(table), func(i int) bool {
		return table[i].lowerBound().GreaterThan(x)
	})
	if i == 0 {
		return 0, false
	}
	return i - 1, true
}

// validateFloors requires non-negative, strictly increasing floors.
func validateFloors[T floored](model, field string, table []T) error {
	for i, row := range table {
		floor := row.lowerBound()
		if floor.IsNegative() {
			return configErr(model, field, "floor %s of row %d is negative", floor, i)
		}
		if i > 0 && !floor.GreaterThan(table[i-1].lowerBound()) {
			return configErr(model, field, "floors must be strictly increasing (row %d: %s after %s)",
				i, floor, table[i-1].lowerBound())
		}
	}
	return nil
}

// Bracket is one slice of a progressive scale: income above Floor is taxed
// at Rate percent up to the next bracket's floor.
type Bracket struct {
	Floor decimal.Decimal `json:"floor"`
	Rate  decimal.Decimal `json:"rate"`
}

func (b Bracket) lowerBound() decimal.Decimal { return b.Floor }

// ProgressiveScale computes a marginal-rate tax. The tax owed below each
// floor is precomputed so Tax is a single lookup.
type ProgressiveScale struct {
	brackets []Bracket
	taxBelow []decimal.Decimal
}

// NewProgressiveScale validates brackets and builds the scale.
func NewProgressiveScale(model string, brackets []Bracket) (ProgressiveScale, error) {
	if len(brackets) == 0 {
		return ProgressiveScale{}, configErr(model, "brackets", "at least one bracket is required")
	}
	if err := validateFloors(model, "brackets", brackets); err != nil {
		return ProgressiveScale{}, err
	}
	s := ProgressiveScale{
		brackets: append([]Bracket(nil), brackets...),
		taxBelow: make([]decimal.Decimal, len(brackets)),
	}
	for i, b := range s.brackets {
		if err := checkPercent(model, "brackets.rate", b.Rate); err != nil {
			return ProgressiveScale{}, err
		}
		if i > 0 {
			prev := s.brackets[i-1]
			s.taxBelow[i] = s.taxBelow[i-1].Add(b.Floor.Sub(prev.Floor).Mul(prev.Rate).Div(hundred))
		}
	}
	return s, nil
}

// Tax returns the tax owed on base.
func (s ProgressiveScale) Tax(base decimal.Decimal) decimal.Decimal {
	i, ok := lookup(s.brackets, base)
	if !ok || !base.IsPositive() {
		return decimal.Zero
	}
	b := s.brackets[i]
	return s.taxBelow[i].Add(base.Sub(b.Floor).Mul(b.Rate).Div(hundred))
}

// MarginalRate returns the rate, in percent, applied to the last unit of base.
func (s ProgressiveScale) MarginalRate(base decimal.Decimal) decimal.Decimal {
	i, ok := lookup(s.brackets, base)
	if !ok {
		return decimal.Zero
	}
	return s.brackets[i].Rate
}

// Brackets returns a copy of the scale's brackets.
func (s ProgressiveScale) Brackets() []Bracket {
	return append([]Bracket(nil), s.brackets...)
}
