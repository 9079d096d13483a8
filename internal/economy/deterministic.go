package economy

// Fixed returns the same rates for every year and every mode.
type Fixed struct {
	Baseline      RatePair `yaml:"rates" json:"rates"`
	InflationRate float64  `yaml:"inflation" json:"inflation"`
}

// NewFixed creates a deterministic provider.
func NewFixed(rates RatePair, inflation float64) Fixed {
	return Fixed{Baseline: rates, InflationRate: inflation}
}

func (f Fixed) Rates(_ *int, _ Mode) RatePair { return f.Baseline }

func (f Fixed) Inflation(_ Mode) float64 { return f.InflationRate }
