// Package economy supplies the annual economic rates a projection runs on.
//
// All rates are percents: 5.0 means 5%.
package economy

import "fmt"

// Mode selects whether a run uses fixed or randomly drawn rates.
type Mode int

const (
	Deterministic Mode = iota
	Stochastic
)

func (m Mode) String() string {
	switch m {
	case Deterministic:
		return "deterministic"
	case Stochastic:
		return "stochastic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a configuration string onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "deterministic":
		return Deterministic, nil
	case "stochastic", "random", "montecarlo":
		return Stochastic, nil
	default:
		return Deterministic, fmt.Errorf("unknown simulation mode %q", s)
	}
}

// RatePair holds the annual return of secured assets and of equities.
type RatePair struct {
	SecuredRate float64 `yaml:"secured_rate" json:"secured_rate"`
	StockRate   float64 `yaml:"stock_rate" json:"stock_rate"`
}

// Blended returns the rate of a portfolio holding securedShare percent of
// secured assets and the rest in equities.
func (r RatePair) Blended(securedShare float64) float64 {
	return (securedShare*r.SecuredRate + (100-securedShare)*r.StockRate) / 100
}

// Provider supplies rates to the simulation. A nil forYear asks for the
// scenario's year-independent baseline.
type Provider interface {
	Rates(forYear *int, mode Mode) RatePair
	Inflation(mode Mode) float64
}

// Year is a convenience for passing a year to Provider.Rates.
func Year(y int) *int {
	return &y
}
