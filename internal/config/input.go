package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/rpgo/patrimoine/internal/economy"
	"github.com/rpgo/patrimoine/pkg/finmath"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxProjectionYears bounds the length of a run.
const MaxProjectionYears = 100

var hundred = decimal.NewFromInt(100)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML scenario.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateFamily(&config.Family); err != nil {
		return fmt.Errorf("family: %w", err)
	}
	if err := ip.validatePatrimoine(&config.Patrimoine); err != nil {
		return fmt.Errorf("patrimoine: %w", err)
	}
	if err := ip.validateEconomy(&config.Economy); err != nil {
		return fmt.Errorf("economy: %w", err)
	}
	if err := ip.validateSimulation(&config.Simulation); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}

func (ip *InputParser) validateFamily(family *domain.Family) error {
	if len(family.Adults) == 0 {
		return fmt.Errorf("at least one adult is required")
	}
	names := make(map[string]bool)
	for i, adult := range family.Adults {
		if adult.Name == "" {
			return fmt.Errorf("adult %d: name is required", i)
		}
		if names[adult.Name] {
			return fmt.Errorf("adult %s: duplicate name", adult.Name)
		}
		names[adult.Name] = true
		if adult.BirthDate.IsZero() {
			return fmt.Errorf("adult %s: birth date is required", adult.Name)
		}
		if adult.RetirementAge <= 0 || adult.RetirementAge > 100 {
			return fmt.Errorf("adult %s: retirement age must be between 1 and 100", adult.Name)
		}
		if adult.DeathYear != 0 && adult.DeathYear <= adult.BirthDate.Year() {
			return fmt.Errorf("adult %s: death year %d precedes birth", adult.Name, adult.DeathYear)
		}
		if adult.WorkIncome.IsNegative() {
			return fmt.Errorf("adult %s: work income cannot be negative", adult.Name)
		}
		if adult.Pension.IsNegative() {
			return fmt.Errorf("adult %s: pension cannot be negative", adult.Name)
		}
	}
	for i, child := range family.Children {
		if child.Name == "" {
			return fmt.Errorf("child %d: name is required", i)
		}
		if child.BirthDate.IsZero() {
			return fmt.Errorf("child %s: birth date is required", child.Name)
		}
	}
	if family.YearlyExpenses.IsNegative() {
		return fmt.Errorf("yearly expenses cannot be negative")
	}
	return nil
}

// validatePatrimoine also requires asset and company names to be unique,
// since they label the exported columns.
func (ip *InputParser) validatePatrimoine(p *domain.Patrimoine) error {
	names := make(map[string]bool)
	unique := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%s: name is required", kind)
		}
		if names[name] {
			return fmt.Errorf("%s %s: duplicate name", kind, name)
		}
		names[name] = true
		return nil
	}

	for _, inv := range p.Investments {
		if err := unique("investment", inv.Name); err != nil {
			return err
		}
		if inv.Value.IsNegative() || inv.Invested.IsNegative() {
			return fmt.Errorf("investment %s: value and invested amount cannot be negative", inv.Name)
		}
		if inv.SecuredShare < 0 || inv.SecuredShare > 100 {
			return fmt.Errorf("investment %s: secured share must be between 0 and 100", inv.Name)
		}
		if inv.Clause != nil && inv.Kind != domain.LifeInsurance {
			return fmt.Errorf("investment %s: only a life insurance carries a beneficiary clause", inv.Name)
		}
		if len(inv.Owners) > 0 {
			total := decimal.Zero
			for _, o := range inv.Owners {
				total = total.Add(o.Share)
			}
			if !total.Equal(hundred) {
				return fmt.Errorf("investment %s: owner shares sum to %s%%, not 100%%", inv.Name, total)
			}
		}
	}
	for _, re := range p.RealEstates {
		if err := unique("real estate", re.Name); err != nil {
			return err
		}
		if re.BuyDate.IsZero() {
			return fmt.Errorf("real estate %s: buy date is required", re.Name)
		}
		if re.BuyPrice.IsNegative() || re.Value.IsNegative() {
			return fmt.Errorf("real estate %s: prices cannot be negative", re.Name)
		}
		if re.SaleYear != 0 && re.SaleYear < re.BuyDate.Year() {
			return fmt.Errorf("real estate %s: sold in %d before being bought", re.Name, re.SaleYear)
		}
		if re.YearlyRent.IsNegative() || re.LocalTaxes.IsNegative() {
			return fmt.Errorf("real estate %s: rent and local taxes cannot be negative", re.Name)
		}
	}
	for _, l := range p.Loans {
		if err := unique("loan", l.Name); err != nil {
			return err
		}
		if !l.LoanedValue.IsNegative() {
			return fmt.Errorf("loan %s: loaned value must be negative", l.Name)
		}
		if l.InterestRate < 0 {
			return fmt.Errorf("loan %s: interest rate cannot be negative", l.Name)
		}
		if l.InterestRate == 0 {
			return fmt.Errorf("loan %s: %w", l.Name, finmath.ErrZeroRate)
		}
		if l.LastYear < l.FirstYear {
			return fmt.Errorf("loan %s: last year %d before first year %d", l.Name, l.LastYear, l.FirstYear)
		}
	}
	for _, c := range p.Companies {
		if err := unique("company", c.Name); err != nil {
			return err
		}
		if !c.Share.IsPositive() || c.Share.GreaterThan(hundred) {
			return fmt.Errorf("company %s: share must be in (0, 100]", c.Name)
		}
	}
	return nil
}

func (ip *InputParser) validateEconomy(e *domain.EconomyAssumptions) error {
	if e.Rates.SecuredRate <= -100 || e.Rates.StockRate <= -100 {
		return fmt.Errorf("rates must be above -100%%")
	}
	if e.Inflation < -10 {
		return fmt.Errorf("inflation rate cannot be less than -10%% (extreme deflation)")
	}
	return e.Volatility.Validate()
}

func (ip *InputParser) validateSimulation(s *domain.SimulationSettings) error {
	if s.Years <= 0 || s.Years > MaxProjectionYears {
		return fmt.Errorf("years must be between 1 and %d", MaxProjectionYears)
	}
	if _, err := economy.ParseMode(s.Mode); err != nil {
		return err
	}
	if s.Trials < 0 || s.Workers < 0 {
		return fmt.Errorf("trials and workers cannot be negative")
	}
	return nil
}

// CreateExampleConfiguration returns a complete sample scenario.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	birth := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	return &domain.Configuration{
		Name: "Famille Martin",
		Family: domain.Family{
			Adults: []domain.Adult{
				{Name: "Claire", BirthDate: birth("1978-04-12"), RetirementAge: 64, WorkIncome: decimal.NewFromInt(62000), Pension: decimal.NewFromInt(28000)},
				{Name: "Julien", BirthDate: birth("1976-09-30"), RetirementAge: 64, WorkIncome: decimal.NewFromInt(48000), Pension: decimal.NewFromInt(21000), DeathYear: 2058},
			},
			Children: []domain.Child{
				{Name: "Léa", BirthDate: birth("2008-02-17")},
				{Name: "Hugo", BirthDate: birth("2012-11-05")},
			},
			YearlyExpenses: decimal.NewFromInt(55000),
		},
		Patrimoine: domain.Patrimoine{
			Investments: []domain.FreeInvestment{
				{Name: "Livret A", Kind: domain.PlainAccount, Value: decimal.NewFromInt(22000), Invested: decimal.NewFromInt(22000), SecuredShare: 100},
				{Name: "PEA", Kind: domain.PEA, Value: decimal.NewFromInt(45000), Invested: decimal.NewFromInt(30000), SecuredShare: 0},
				{
					Name: "Assurance vie", Kind: domain.LifeInsurance,
					Value: decimal.NewFromInt(120000), Invested: decimal.NewFromInt(90000), SecuredShare: 60,
					Owners: []domain.Ownership{{Name: "Claire", Share: decimal.NewFromInt(50)}, {Name: "Julien", Share: decimal.NewFromInt(50)}},
					Clause: &domain.Clause{Beneficiaries: []string{"Léa", "Hugo"}},
				},
			},
			RealEstates: []domain.RealEstate{
				{Name: "Résidence principale", BuyDate: birth("2010-06-01"), BuyPrice: decimal.NewFromInt(280000), Value: decimal.NewFromInt(410000), LocalTaxes: decimal.NewFromInt(1900)},
				{Name: "Studio Lyon", BuyDate: birth("2016-03-15"), BuyPrice: decimal.NewFromInt(140000), Value: decimal.NewFromInt(175000), SaleYear: 2035, YearlyRent: decimal.NewFromInt(8400), LocalTaxes: decimal.NewFromInt(750)},
			},
			Loans: []domain.Loan{
				{Name: "Prêt studio", LoanedValue: decimal.NewFromInt(-120000), InterestRate: 1.6, FirstYear: 2016, LastYear: 2035},
			},
			Companies: []domain.Company{
				{Name: "Martin Conseil SARL", GrossProfit: decimal.NewFromInt(30000), Share: decimal.NewFromInt(100)},
			},
		},
		Economy: domain.EconomyAssumptions{
			Rates:      economy.RatePair{SecuredRate: 2.5, StockRate: 6},
			Inflation:  2,
			Volatility: economy.Volatility{SecuredStdDev: 0.5, StockStdDev: 15, InflationStdDev: 1},
		},
		Simulation: domain.SimulationSettings{Years: 40, Mode: "deterministic", Trials: 500, Seed: 20240101, Workers: 8},
	}
}
