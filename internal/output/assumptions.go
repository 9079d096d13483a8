package output

import (
	"fmt"
	"sort"

	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/rpgo/patrimoine/internal/economy"
	"github.com/rpgo/patrimoine/internal/fiscal"
)

// GenerateAssumptions lists the economic rates and tax model revisions a
// projection ran on.
func GenerateAssumptions(config *domain.Configuration, versions map[string]fiscal.Version) []string {
	var out []string
	if config != nil {
		e := config.Economy
		out = append(out,
			fmt.Sprintf("Secured assets return: %.2f%% annually", e.Rates.SecuredRate),
			fmt.Sprintf("Equities return: %.2f%% annually", e.Rates.StockRate),
			fmt.Sprintf("Inflation: %.2f%% annually", e.Inflation),
		)
		if e.Volatility != (economy.Volatility{}) {
			out = append(out, fmt.Sprintf("Volatility (std dev): secured %.2f, equities %.2f, inflation %.2f points",
				e.Volatility.SecuredStdDev, e.Volatility.StockStdDev, e.Volatility.InflationStdDev))
		}
	}
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out = append(out, fmt.Sprintf("%s: %s", name, versions[name]))
	}
	return out
}
