package calculation

import (
	"testing"
	"time"

	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/rpgo/patrimoine/internal/economy"
	"github.com/rpgo/patrimoine/internal/fiscal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFirstYear = 2025

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func version(name string) fiscal.Version {
	return fiscal.Version{Name: name, Version: "1.0", Date: fiscal.Date{Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// testModel is a deliberately simple tax system: 10% income tax above 10000,
// 10% social levies, 20% inheritance tax above a 100000 abatement and no
// wealth tax in practice.
func testModel(t *testing.T) fiscal.Model {
	t.Helper()
	var (
		m   fiscal.Model
		err error
	)
	m.IncomeTax, err = fiscal.NewIncomeTaxModel(fiscal.IncomeTaxConfig{
		Version:  version("IRPP"),
		Brackets: []fiscal.Bracket{{Floor: d(0), Rate: d(0)}, {Floor: d(10000), Rate: d(10)}},
	})
	require.NoError(t, err)
	m.WealthTax, err = fiscal.NewWealthTaxModel(fiscal.WealthTaxConfig{
		Version:   version("ISF"),
		Threshold: d(1000000000),
		Brackets:  []fiscal.Bracket{{Floor: d(0), Rate: d(1)}},
	})
	require.NoError(t, err)
	m.RealEstate, err = fiscal.NewRealEstateCapitalGainTaxModel(fiscal.RealEstateCapitalGainConfig{
		Version:         version("PVI"),
		IrppRate:        d(19),
		SocialRate:      d(17),
		DiscountTravaux: d(15),
		DiscountAfter:   5,
		IrppExoneration: []fiscal.ExonerationBracket{{Floor: 6, DiscountRate: d(6)}},
	})
	require.NoError(t, err)
	m.LifeInsurance, err = fiscal.NewLifeInsuranceTaxesModel(fiscal.LifeInsuranceConfig{Version: version("AV"), Rebate: d(4600)})
	require.NoError(t, err)
	m.CompanyProfit, err = fiscal.NewCompanyProfitTaxesModel(fiscal.CompanyProfitConfig{Version: version("IS"), Rate: d(25)})
	require.NoError(t, err)
	m.SocialLevies, err = fiscal.NewSocialLeviesModel(fiscal.SocialLeviesConfig{Version: version("PS"), LaborRate: d(10), CapitalRate: d(10)})
	require.NoError(t, err)
	m.Succession, err = fiscal.NewSuccessionTaxModel(fiscal.SuccessionConfig{
		Version:        version("DMTG"),
		ChildAbatement: d(100000),
		Brackets:       []fiscal.Bracket{{Floor: d(0), Rate: d(20)}},
	})
	require.NoError(t, err)
	return m
}

func testFamily() domain.Family {
	return domain.Family{
		Adults: []domain.Adult{{
			Name:          "Alice",
			BirthDate:     date(1985, time.June, 1),
			RetirementAge: 64,
			WorkIncome:    d(50000),
			Pension:       d(20000),
		}},
		Children:       []domain.Child{{Name: "Bob", BirthDate: date(1990, time.March, 3)}},
		YearlyExpenses: d(30000),
	}
}

func testPatrimoine() domain.Patrimoine {
	return domain.Patrimoine{
		Investments: []domain.FreeInvestment{{
			Name:         "Compte titres",
			Kind:         domain.PlainAccount,
			Value:        d(100000),
			Invested:     d(100000),
			SecuredShare: 100,
		}},
	}
}

var testRates = economy.NewFixed(economy.RatePair{SecuredRate: 2, StockRate: 6}, 0)

func newTestSimulation(t *testing.T, provider economy.Provider, opts ...Option) *Simulation {
	t.Helper()
	opts = append([]Option{WithFirstYear(testFirstYear)}, opts...)
	sim, err := NewSimulation(provider, testModel(t), opts...)
	require.NoError(t, err)
	return sim
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func amountOf(t *testing.T, table domain.NamedValueTable, name string) decimal.Decimal {
	t.Helper()
	for _, v := range table.Values {
		if v.Name == name {
			return v.Amount
		}
	}
	t.Fatalf("no %q in table %s", name, table.Name)
	return decimal.Zero
}
