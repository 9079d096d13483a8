package economy

import (
	"fmt"
	"math"
	"math/rand"
)

// Volatility holds the standard deviations, in percent points, of the
// normally distributed annual draws.
type Volatility struct {
	SecuredStdDev   float64 `yaml:"secured_std_dev" json:"secured_std_dev"`
	StockStdDev     float64 `yaml:"stock_std_dev" json:"stock_std_dev"`
	InflationStdDev float64 `yaml:"inflation_std_dev" json:"inflation_std_dev"`
}

// Validate rejects negative standard deviations.
func (v Volatility) Validate() error {
	if v.SecuredStdDev < 0 || v.StockStdDev < 0 || v.InflationStdDev < 0 {
		return fmt.Errorf("standard deviations cannot be negative: %+v", v)
	}
	return nil
}

// Randomized draws each year's rates from a normal distribution centred on
// the baseline. Draws are memoised per year so that every query for a year
// within one run agrees, and the inflation rate is drawn once per run.
//
// A Randomized provider owns its generator: one instance per Monte-Carlo
// trial. It is not safe for concurrent use.
type Randomized struct {
	base       Fixed
	volatility Volatility
	seed       int64
	rng        *rand.Rand
	years      map[int]RatePair
	inflation  *float64
}

// NewRandomized creates a stochastic provider replaying the draws identified
// by seed.
func NewRandomized(base Fixed, volatility Volatility, seed int64) (*Randomized, error) {
	if err := volatility.Validate(); err != nil {
		return nil, err
	}
	r := &Randomized{base: base, volatility: volatility}
	r.Reseed(seed)
	return r, nil
}

// Seed returns the seed of the current run.
func (r *Randomized) Seed() int64 { return r.seed }

// Reseed discards the memoised draws and restarts the generator.
func (r *Randomized) Reseed(seed int64) {
	r.seed = seed
	r.rng = rand.New(rand.NewSource(seed))
	r.years = make(map[int]RatePair)
	r.inflation = nil
}

// Rates returns the baseline in deterministic mode or when no year is given.
func (r *Randomized) Rates(forYear *int, mode Mode) RatePair {
	if mode == Deterministic || forYear == nil {
		return r.base.Baseline
	}
	if drawn, ok := r.years[*forYear]; ok {
		return drawn
	}
	drawn := RatePair{
		SecuredRate: r.normal(r.base.Baseline.SecuredRate, r.volatility.SecuredStdDev),
		StockRate:   r.normal(r.base.Baseline.StockRate, r.volatility.StockStdDev),
	}
	r.years[*forYear] = drawn
	return drawn
}

func (r *Randomized) Inflation(mode Mode) float64 {
	if mode == Deterministic {
		return r.base.InflationRate
	}
	if r.inflation == nil {
		v := r.normal(r.base.InflationRate, r.volatility.InflationStdDev)
		r.inflation = &v
	}
	return *r.inflation
}

// normal draws from N(mean, stdDev²) with the Box-Muller transform.
func (r *Randomized) normal(mean, stdDev float64) float64 {
	u1 := 1 - r.rng.Float64() // (0, 1], keeps the log finite
	u2 := r.rng.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*stdDev
}
