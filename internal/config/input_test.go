package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/rpgo/patrimoine/pkg/finmath"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "name: \"Dupont\"\n" +
		"family:\n" +
		"  adults:\n" +
		"    - name: \"Anne\"\n" +
		"      birth_date: 1980-05-10\n" +
		"      retirement_age: 64\n" +
		"      work_income: 52000\n" +
		"      pension: 24000\n" +
		"  children:\n" +
		"    - name: \"Paul\"\n" +
		"      birth_date: 2010-01-20\n" +
		"  yearly_expenses: 35000\n" +
		"patrimoine:\n" +
		"  investments:\n" +
		"    - name: \"Assurance vie\"\n" +
		"      kind: life_insurance\n" +
		"      value: 80000.50\n" +
		"      invested: 60000\n" +
		"      secured_share: 40\n" +
		"      owners:\n" +
		"        - name: \"Anne\"\n" +
		"          share: 100\n" +
		"      clause:\n" +
		"        beneficiaries: [\"Paul\"]\n" +
		"  loans:\n" +
		"    - name: \"Prêt\"\n" +
		"      loaned_value: -150000\n" +
		"      interest_rate: 1.5\n" +
		"      first_year: 2020\n" +
		"      last_year: 2040\n" +
		"economy:\n" +
		"  rates:\n" +
		"    secured_rate: 2\n" +
		"    stock_rate: 6\n" +
		"  inflation: 1.5\n" +
		"simulation:\n" +
		"  years: 30\n" +
		"  mode: deterministic\n"

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "Dupont", config.Name)
	require.Len(t, config.Family.Adults, 1)
	assert.Equal(t, 1980, config.Family.Adults[0].BirthDate.Year())
	assert.True(t, config.Family.Adults[0].WorkIncome.Equal(decimal.NewFromInt(52000)))
	require.Len(t, config.Patrimoine.Investments, 1)
	inv := config.Patrimoine.Investments[0]
	assert.Equal(t, domain.LifeInsurance, inv.Kind)
	assert.Equal(t, "80000.5", inv.Value.String())
	require.NotNil(t, inv.Clause)
	assert.Equal(t, []string{"Paul"}, inv.Clause.Beneficiaries)
	assert.Equal(t, 1.5, config.Patrimoine.Loans[0].InterestRate)
	assert.Equal(t, 30, config.Simulation.Years)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.Parse([]byte("family: [unclosed"))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_UnknownEnvelopeKind(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.Parse([]byte("patrimoine:\n  investments:\n    - name: x\n      kind: crypto\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown envelope kind")
}

func TestValidateConfiguration_Success(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(createValidTestConfiguration()))
}

func TestValidateConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.Configuration)
		want   string
	}{
		{"no adults", func(c *domain.Configuration) { c.Family.Adults = nil }, "at least one adult"},
		{"duplicate adult", func(c *domain.Configuration) {
			c.Family.Adults = append(c.Family.Adults, c.Family.Adults[0])
		}, "duplicate name"},
		{"missing birth date", func(c *domain.Configuration) { c.Family.Adults[0].BirthDate = time.Time{} }, "birth date is required"},
		{"retirement age", func(c *domain.Configuration) { c.Family.Adults[0].RetirementAge = 0 }, "retirement age"},
		{"death before birth", func(c *domain.Configuration) { c.Family.Adults[0].DeathYear = 1900 }, "precedes birth"},
		{"negative income", func(c *domain.Configuration) {
			c.Family.Adults[0].WorkIncome = decimal.NewFromInt(-1)
		}, "work income cannot be negative"},
		{"negative expenses", func(c *domain.Configuration) {
			c.Family.YearlyExpenses = decimal.NewFromInt(-1)
		}, "yearly expenses"},
		{"unnamed child", func(c *domain.Configuration) { c.Family.Children[0].Name = "" }, "child 0"},
		{"duplicate asset", func(c *domain.Configuration) {
			c.Patrimoine.Loans[0].Name = c.Patrimoine.Investments[0].Name
		}, "duplicate name"},
		{"secured share", func(c *domain.Configuration) { c.Patrimoine.Investments[0].SecuredShare = 120 }, "secured share"},
		{"owner shares", func(c *domain.Configuration) {
			c.Patrimoine.Investments[0].Owners[0].Share = decimal.NewFromInt(60)
		}, "owner shares sum to 60%"},
		{"clause on account", func(c *domain.Configuration) {
			c.Patrimoine.Investments[0].Kind = domain.PEA
		}, "only a life insurance"},
		{"sold before bought", func(c *domain.Configuration) { c.Patrimoine.RealEstates[0].SaleYear = 2000 }, "before being bought"},
		{"positive loan", func(c *domain.Configuration) {
			c.Patrimoine.Loans[0].LoanedValue = decimal.NewFromInt(1000)
		}, "must be negative"},
		{"loan years", func(c *domain.Configuration) { c.Patrimoine.Loans[0].LastYear = 2010 }, "before first year"},
		{"company share", func(c *domain.Configuration) {
			c.Patrimoine.Companies[0].Share = decimal.NewFromInt(150)
		}, "share must be in"},
		{"extreme deflation", func(c *domain.Configuration) { c.Economy.Inflation = -15 }, "extreme deflation"},
		{"negative volatility", func(c *domain.Configuration) { c.Economy.Volatility.StockStdDev = -1 }, "standard deviations"},
		{"zero years", func(c *domain.Configuration) { c.Simulation.Years = 0 }, "years must be between"},
		{"too many years", func(c *domain.Configuration) { c.Simulation.Years = MaxProjectionYears + 1 }, "years must be between"},
		{"unknown mode", func(c *domain.Configuration) { c.Simulation.Mode = "chaotic" }, "unknown simulation mode"},
		{"negative trials", func(c *domain.Configuration) { c.Simulation.Trials = -1 }, "cannot be negative"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createValidTestConfiguration()
			tt.mutate(config)
			err := parser.ValidateConfiguration(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateConfiguration_ZeroRateLoan(t *testing.T) {
	config := createValidTestConfiguration()
	config.Patrimoine.Loans[0].InterestRate = 0

	err := NewInputParser().ValidateConfiguration(config)

	require.Error(t, err)
	assert.ErrorIs(t, err, finmath.ErrZeroRate)
	assert.Contains(t, err.Error(), "patrimoine: loan Prêt immo")
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	require.NotNil(t, config)
	assert.NoError(t, parser.ValidateConfiguration(config))
	assert.Len(t, config.Family.Adults, 2)
	assert.NotEmpty(t, config.Patrimoine.Investments)
	assert.NotEmpty(t, config.Patrimoine.Loans)
}
