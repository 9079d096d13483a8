package calculation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/rpgo/patrimoine/internal/economy"
	"github.com/rpgo/patrimoine/internal/fiscal"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

const defaultWorkers = 10

// TrialsConfig holds the parameters of a Monte Carlo run.
type TrialsConfig struct {
	NumTrials int
	Seed      int64 // 0 draws one from seedFunc
	Workers   int   // concurrent trials; 0 means defaultWorkers
}

// Scenario is the household projected by every trial.
type Scenario struct {
	Years      int
	Family     domain.Family
	Patrimoine domain.Patrimoine
	Baseline   economy.Fixed
	Volatility economy.Volatility
}

// TrialOutcome is the result of one stochastic trial.
type TrialOutcome struct {
	Index         int             `json:"index"`
	Seed          int64           `json:"seed"`
	FinalNetWorth decimal.Decimal `json:"final_net_worth"`
	MinNetWorth   decimal.Decimal `json:"min_net_worth"`
	Success       bool            `json:"success"`
}

// PercentileRanges represents percentile ranges of the final net worth.
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// MonteCarloResult aggregates the trials of a Monte Carlo run.
type MonteCarloResult struct {
	Trials              []TrialOutcome   `json:"trials"`
	SuccessRate         decimal.Decimal  `json:"success_rate"` // fraction of trials ending with a positive net worth
	MedianFinalNetWorth decimal.Decimal  `json:"median_final_net_worth"`
	PercentileRanges    PercentileRanges `json:"percentile_ranges"`
	NumTrials           int              `json:"num_trials"`
	Years               int              `json:"years"`
	Seed                int64            `json:"seed"`
}

// RunTrials runs cfg.NumTrials independent stochastic projections of sc in
// parallel. Trial i owns its Simulation and a provider seeded with
// cfg.Seed+i, so a given seed always yields the same statistics. The first
// failing trial cancels the others.
func RunTrials(ctx context.Context, cfg TrialsConfig, sc Scenario, model fiscal.Model, opts ...Option) (*MonteCarloResult, error) {
	if cfg.NumTrials < 1 {
		return nil, fmt.Errorf("number of trials must be positive, got %d", cfg.NumTrials)
	}
	if err := sc.Volatility.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = seedFunc()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	outcomes := make([]TrialOutcome, cfg.NumTrials)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	semaphore := make(chan struct{}, workers)

	for i := 0; i < cfg.NumTrials; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if ctx.Err() != nil {
				return
			}
			outcome, err := runTrial(ctx, index, cfg.Seed+int64(index), sc, model, opts)
			if err != nil {
				if errors.Is(err, context.Canceled) && ctx.Err() != nil {
					return
				}
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("trial %d: %w", index, err))
				mu.Unlock()
				cancel()
				return
			}
			outcomes[index] = outcome
		}(i)
	}
	wg.Wait()

	if errs != nil {
		return nil, errs
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	finals := make([]decimal.Decimal, len(outcomes))
	for i, o := range outcomes {
		finals[i] = o.FinalNetWorth
	}
	sort.Slice(finals, func(i, j int) bool { return finals[i].LessThan(finals[j]) })

	return &MonteCarloResult{
		Trials:              outcomes,
		SuccessRate:         successRate(outcomes),
		MedianFinalNetWorth: percentile(finals, 50),
		PercentileRanges: PercentileRanges{
			P10: percentile(finals, 10),
			P25: percentile(finals, 25),
			P50: percentile(finals, 50),
			P75: percentile(finals, 75),
			P90: percentile(finals, 90),
		},
		NumTrials: cfg.NumTrials,
		Years:     sc.Years,
		Seed:      cfg.Seed,
	}, nil
}

func runTrial(ctx context.Context, index int, seed int64, sc Scenario, model fiscal.Model, opts []Option) (TrialOutcome, error) {
	provider, err := economy.NewRandomized(sc.Baseline, sc.Volatility, seed)
	if err != nil {
		return TrialOutcome{}, err
	}
	sim, err := NewSimulation(provider, model, opts...)
	if err != nil {
		return TrialOutcome{}, err
	}
	result, err := sim.Compute(ctx, sc.Years, sc.Family, sc.Patrimoine, economy.Stochastic)
	if err != nil {
		return TrialOutcome{}, err
	}

	final := result.FinalNetWorth()
	lowest := final
	for _, line := range result.BalanceSheet {
		if nw := line.NetWorth(); nw.LessThan(lowest) {
			lowest = nw
		}
	}
	return TrialOutcome{
		Index:         index,
		Seed:          seed,
		FinalNetWorth: final,
		MinNetWorth:   lowest,
		Success:       final.IsPositive(),
	}, nil
}

func successRate(outcomes []TrialOutcome) decimal.Decimal {
	successes := 0
	for _, o := range outcomes {
		if o.Success {
			successes++
		}
	}
	return decimal.NewFromInt(int64(successes)).Div(decimal.NewFromInt(int64(len(outcomes))))
}

// percentile reads the p-th percentile of sorted values by nearest rank.
func percentile(sorted []decimal.Decimal, p int) decimal.Decimal {
	if len(sorted) == 0 {
		return decimal.Zero
	}
	i := p * len(sorted) / 100
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i]
}
