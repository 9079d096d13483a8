package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EnvelopeKind is the closed set of financial envelope types.
type EnvelopeKind int

const (
	PlainAccount EnvelopeKind = iota
	PEA
	LifeInsurance
)

var envelopeKindNames = [...]string{
	PlainAccount:  "account",
	PEA:           "pea",
	LifeInsurance: "life_insurance",
}

func (k EnvelopeKind) String() string {
	if k < 0 || int(k) >= len(envelopeKindNames) {
		return fmt.Sprintf("EnvelopeKind(%d)", int(k))
	}
	return envelopeKindNames[k]
}

// ParseEnvelopeKind maps a configuration string onto an EnvelopeKind.
func ParseEnvelopeKind(s string) (EnvelopeKind, error) {
	for k, name := range envelopeKindNames {
		if name == s {
			return EnvelopeKind(k), nil
		}
	}
	return PlainAccount, fmt.Errorf("unknown envelope kind %q", s)
}

func (k EnvelopeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *EnvelopeKind) UnmarshalText(text []byte) error {
	parsed, err := ParseEnvelopeKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Clause designates the beneficiaries of a life insurance contract.
type Clause struct {
	Beneficiaries []string `yaml:"beneficiaries" json:"beneficiaries"`
}

// Envelope is the read-only view of a financial envelope during a run.
type Envelope interface {
	Name() string
	Kind() EnvelopeKind
	ValueAtEndOf(year int) decimal.Decimal
	// AsLifeInsuranceClause returns the contract's clause when the envelope
	// is a life insurance.
	AsLifeInsuranceClause() (Clause, bool)
}

// Ownership is the share, in percent, an adult holds in an asset.
type Ownership struct {
	Name  string          `yaml:"name" json:"name"`
	Share decimal.Decimal `yaml:"share" json:"share"`
}

// FreeInvestment configures a financial envelope at the start of the run.
type FreeInvestment struct {
	Name         string          `yaml:"name" json:"name"`
	Kind         EnvelopeKind    `yaml:"kind" json:"kind"`
	Value        decimal.Decimal `yaml:"value" json:"value"`
	Invested     decimal.Decimal `yaml:"invested" json:"invested"`           // deposits not yet withdrawn
	SecuredShare float64         `yaml:"secured_share" json:"secured_share"` // percent on the secured rate
	Owners       []Ownership     `yaml:"owners,omitempty" json:"owners,omitempty"`
	Clause       *Clause         `yaml:"clause,omitempty" json:"clause,omitempty"`
}

// RealEstate is a property held by the household.
type RealEstate struct {
	Name       string          `yaml:"name" json:"name"`
	BuyDate    time.Time       `yaml:"buy_date" json:"buy_date"`
	BuyPrice   decimal.Decimal `yaml:"buy_price" json:"buy_price"`
	Value      decimal.Decimal `yaml:"value" json:"value"` // first-year estimate
	SaleYear   int             `yaml:"sale_year,omitempty" json:"sale_year,omitempty"`
	YearlyRent decimal.Decimal `yaml:"yearly_rent,omitempty" json:"yearly_rent,omitempty"`
	LocalTaxes decimal.Decimal `yaml:"local_taxes,omitempty" json:"local_taxes,omitempty"`
}

// IsOwned reports whether the property is still held at the end of year.
func (r RealEstate) IsOwned(year int) bool {
	return year >= r.BuyDate.Year() && (r.SaleYear == 0 || year < r.SaleYear)
}

// Loan is an amortized debt. LoanedValue is negative.
type Loan struct {
	Name         string          `yaml:"name" json:"name"`
	LoanedValue  decimal.Decimal `yaml:"loaned_value" json:"loaned_value"`
	InterestRate float64         `yaml:"interest_rate" json:"interest_rate"` // percent
	FirstYear    int             `yaml:"first_year" json:"first_year"`
	LastYear     int             `yaml:"last_year" json:"last_year"`
}

// Company is a business whose profit is distributed to the household.
type Company struct {
	Name        string          `yaml:"name" json:"name"`
	GrossProfit decimal.Decimal `yaml:"gross_profit" json:"gross_profit"` // yearly, first-year value
	Share       decimal.Decimal `yaml:"share" json:"share"`               // percent held
}

// Patrimoine is the household's assets and liabilities at the start of a run.
type Patrimoine struct {
	Investments []FreeInvestment `yaml:"investments" json:"investments"`
	RealEstates []RealEstate     `yaml:"real_estates" json:"real_estates"`
	Loans       []Loan           `yaml:"loans" json:"loans"`
	Companies   []Company        `yaml:"companies" json:"companies"`
}
