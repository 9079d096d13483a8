package config

import (
	"time"

	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/rpgo/patrimoine/internal/economy"
	"github.com/shopspring/decimal"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func createValidTestConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Name: "Test",
		Family: domain.Family{
			Adults: []domain.Adult{
				{Name: "Anne", BirthDate: date("1980-05-10"), RetirementAge: 64, WorkIncome: decimal.NewFromInt(52000), Pension: decimal.NewFromInt(24000)},
			},
			Children:       []domain.Child{{Name: "Paul", BirthDate: date("2010-01-20")}},
			YearlyExpenses: decimal.NewFromInt(35000),
		},
		Patrimoine: domain.Patrimoine{
			Investments: []domain.FreeInvestment{{
				Name: "Assurance vie", Kind: domain.LifeInsurance,
				Value: decimal.NewFromInt(80000), Invested: decimal.NewFromInt(60000), SecuredShare: 40,
				Owners: []domain.Ownership{{Name: "Anne", Share: decimal.NewFromInt(100)}},
				Clause: &domain.Clause{Beneficiaries: []string{"Paul"}},
			}},
			RealEstates: []domain.RealEstate{{
				Name: "Maison", BuyDate: date("2015-07-01"), BuyPrice: decimal.NewFromInt(250000), Value: decimal.NewFromInt(300000),
			}},
			Loans: []domain.Loan{{
				Name: "Prêt immo", LoanedValue: decimal.NewFromInt(-150000), InterestRate: 1.5, FirstYear: 2015, LastYear: 2035,
			}},
			Companies: []domain.Company{{Name: "SARL", GrossProfit: decimal.NewFromInt(20000), Share: decimal.NewFromInt(50)}},
		},
		Economy: domain.EconomyAssumptions{
			Rates:     economy.RatePair{SecuredRate: 2, StockRate: 6},
			Inflation: 1.5,
		},
		Simulation: domain.SimulationSettings{Years: 30, Mode: "deterministic"},
	}
}
