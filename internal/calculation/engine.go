package calculation

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/rpgo/patrimoine/internal/economy"
	"github.com/rpgo/patrimoine/internal/fiscal"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotComputed is returned when exporting a simulation that has no
	// successful run.
	ErrNotComputed = errors.New("simulation not computed")
	// ErrRunInProgress is returned by Compute while another run of the same
	// Simulation is in flight.
	ErrRunInProgress = errors.New("simulation already running")
)

// RunError reports the component and year at which a run aborted.
type RunError struct {
	Component string
	Year      int
	Err       error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("simulation aborted in %d (%s): %v", e.Year, e.Component, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// Exporter persists the series of a computed run.
type Exporter interface {
	Export(result *Result) error
}

// ProgressFunc is called after each simulated year.
type ProgressFunc func(year, firstYear, lastYear int)

// Result is the output of a successful run. It shares no state with the
// Simulation that produced it.
type Result struct {
	FirstYear    int                       `json:"first_year"`
	LastYear     int                       `json:"last_year"`
	Mode         economy.Mode              `json:"-"`
	BalanceSheet []domain.BalanceSheetLine `json:"balance_sheet"`
	CashFlow     []domain.CashFlowLine     `json:"cash_flow"`
	Taxes        domain.ValuedTaxes        `json:"taxes"` // breakdown of the last year
}

// FinalNetWorth returns the net worth at the end of the last year.
func (r *Result) FinalNetWorth() decimal.Decimal {
	if len(r.BalanceSheet) == 0 {
		return decimal.Zero
	}
	return r.BalanceSheet[len(r.BalanceSheet)-1].NetWorth()
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the simulation logger.
func WithLogger(l Logger) Option {
	return func(s *Simulation) { s.SetLogger(l) }
}

// WithProgress registers a callback invoked after each simulated year.
func WithProgress(f ProgressFunc) Option {
	return func(s *Simulation) { s.progress = f }
}

// WithFirstYear fixes the first simulated year instead of the current year.
func WithFirstYear(year int) Option {
	return func(s *Simulation) { s.startYear = year }
}

// Simulation projects a household's balance sheet and cash flow year by
// year. A Simulation runs one computation at a time; concurrent trials each
// need their own instance, while the tax models can be shared.
type Simulation struct {
	provider  economy.Provider
	model     fiscal.Model
	logger    Logger
	progress  ProgressFunc
	startYear int
	running   atomic.Bool

	firstYear    *int
	lastYear     *int
	balanceSheet []domain.BalanceSheetLine
	cashFlow     []domain.CashFlowLine
	taxes        domain.ValuedTaxes
	mode         economy.Mode
	computed     bool
	saved        bool
}

// NewSimulation creates a simulation over provider and the tax models.
func NewSimulation(provider economy.Provider, model fiscal.Model, opts ...Option) (*Simulation, error) {
	if provider == nil {
		return nil, errors.New("economy provider is required")
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tax models: %w", err)
	}
	s := &Simulation{provider: provider, model: model, logger: NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s, nil
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (s *Simulation) SetLogger(l Logger) {
	if l == nil {
		s.logger = NopLogger{}
		return
	}
	s.logger = l
}

// Reset discards the series and year bookkeeping. It is idempotent.
func (s *Simulation) Reset() {
	s.firstYear = nil
	s.lastYear = nil
	s.balanceSheet = nil
	s.cashFlow = nil
	s.taxes = domain.NewValuedTaxes()
	s.computed = false
	s.saved = false
}

// Compute resets the simulation and projects nbOfYears years. The context is
// checked before each year. On failure the years computed so far stay
// readable but the simulation is not marked computed.
func (s *Simulation) Compute(ctx context.Context, nbOfYears int, family domain.Family, patrimoine domain.Patrimoine, mode economy.Mode) (*Result, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer s.running.Store(false)

	s.Reset()
	if nbOfYears < 1 {
		return nil, fmt.Errorf("number of years must be positive, got %d", nbOfYears)
	}

	first := s.startYear
	if first == 0 {
		first = nowFunc().Year()
	}
	last := first + nbOfYears - 1
	s.firstYear, s.lastYear = &first, &last
	s.mode = mode

	r, err := newRun(s.model, s.provider, mode, first, family, patrimoine)
	if err != nil {
		s.logger.Errorf("%v", err)
		return nil, err
	}
	s.logger.Infof("simulation started: years %d-%d, mode %s, inflation %.2f%%", first, last, mode, r.inflation)

	for year := first; year <= last; year++ {
		if err := ctx.Err(); err != nil {
			rerr := &RunError{Component: "simulation", Year: year, Err: err}
			s.logger.Errorf("%v", rerr)
			return nil, rerr
		}
		line, flow, err := r.step(year)
		if err != nil {
			s.logger.Errorf("%v", err)
			return nil, err
		}
		s.balanceSheet = append(s.balanceSheet, line)
		s.cashFlow = append(s.cashFlow, flow)
		s.taxes = flow.Taxes
		s.logger.Debugf("year %d: net worth %s, net cash flow %s, taxes %s",
			year, line.NetWorth().StringFixed(2), flow.NetCashFlow().StringFixed(2), flow.Taxes.Total().StringFixed(2))
		if s.progress != nil {
			s.progress(year, first, last)
		}
	}

	s.computed = true
	s.saved = false
	result := s.result()
	s.logger.Infof("simulation finished: final net worth %s", result.FinalNetWorth().StringFixed(2))
	return result, nil
}

// Save hands the computed series to exp.
func (s *Simulation) Save(exp Exporter) error {
	if !s.computed {
		return ErrNotComputed
	}
	if err := exp.Export(s.result()); err != nil {
		return fmt.Errorf("export simulation: %w", err)
	}
	s.saved = true
	return nil
}

// Result returns the last successful run.
func (s *Simulation) Result() (*Result, error) {
	if !s.computed {
		return nil, ErrNotComputed
	}
	return s.result(), nil
}

func (s *Simulation) result() *Result {
	r := &Result{
		FirstYear:    *s.firstYear,
		LastYear:     *s.lastYear,
		Mode:         s.mode,
		BalanceSheet: s.BalanceSheet(),
		CashFlow:     s.CashFlow(),
		Taxes:        s.taxes.Clone(),
	}
	return r
}

// FirstYear returns the first year of the current run, nil after Reset.
func (s *Simulation) FirstYear() *int { return copyYear(s.firstYear) }

// LastYear returns the last year of the current run, nil after Reset.
func (s *Simulation) LastYear() *int { return copyYear(s.lastYear) }

func (s *Simulation) IsComputed() bool { return s.computed }
func (s *Simulation) IsSaved() bool    { return s.saved }

// BalanceSheet returns a copy of the balance sheet rows computed so far.
func (s *Simulation) BalanceSheet() []domain.BalanceSheetLine {
	rows := make([]domain.BalanceSheetLine, len(s.balanceSheet))
	for i, l := range s.balanceSheet {
		rows[i] = domain.BalanceSheetLine{Year: l.Year, Assets: l.Assets.Clone(), Liabilities: l.Liabilities.Clone()}
	}
	return rows
}

// CashFlow returns a copy of the cash flow rows computed so far.
func (s *Simulation) CashFlow() []domain.CashFlowLine {
	rows := make([]domain.CashFlowLine, len(s.cashFlow))
	for i, l := range s.cashFlow {
		rows[i] = domain.CashFlowLine{
			Year:     l.Year,
			Revenues: l.Revenues.Clone(),
			Expenses: l.Expenses.Clone(),
			Taxes:    l.Taxes.Clone(),
		}
	}
	return rows
}

// Taxes returns the tax breakdown of the last computed year.
func (s *Simulation) Taxes() domain.ValuedTaxes { return s.taxes.Clone() }

func copyYear(y *int) *int {
	if y == nil {
		return nil
	}
	v := *y
	return &v
}
