package domain

import (
	"github.com/rpgo/patrimoine/internal/economy"
)

// EconomyAssumptions configures the rate provider of a scenario.
type EconomyAssumptions struct {
	Rates      economy.RatePair   `yaml:"rates" json:"rates"`
	Inflation  float64            `yaml:"inflation" json:"inflation"` // percent
	Volatility economy.Volatility `yaml:"volatility" json:"volatility"`
}

// SimulationSettings holds the run parameters of a scenario.
type SimulationSettings struct {
	Years   int    `yaml:"years" json:"years"`
	Mode    string `yaml:"mode" json:"mode"` // deterministic | stochastic
	Trials  int    `yaml:"trials,omitempty" json:"trials,omitempty"`
	Seed    int64  `yaml:"seed,omitempty" json:"seed,omitempty"`
	Workers int    `yaml:"workers,omitempty" json:"workers,omitempty"`
}

// Configuration represents the complete input configuration
type Configuration struct {
	Name       string             `yaml:"name" json:"name"`
	Family     Family             `yaml:"family" json:"family"`
	Patrimoine Patrimoine         `yaml:"patrimoine" json:"patrimoine"`
	Economy    EconomyAssumptions `yaml:"economy" json:"economy"`
	Simulation SimulationSettings `yaml:"simulation" json:"simulation"`
}

// Provider builds the deterministic rate provider of the scenario.
func (c *Configuration) Provider() economy.Fixed {
	return economy.NewFixed(c.Economy.Rates, c.Economy.Inflation)
}
