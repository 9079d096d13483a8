package domain

import (
	"time"

	"github.com/rpgo/patrimoine/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// DependentAgeLimit is the age from which a child no longer counts in the
// household's family quotient.
const DependentAgeLimit = 25

// Adult is an adult member of the household.
type Adult struct {
	Name          string          `yaml:"name" json:"name"`
	BirthDate     time.Time       `yaml:"birth_date" json:"birth_date"`
	RetirementAge int             `yaml:"retirement_age" json:"retirement_age"`
	DeathYear     int             `yaml:"death_year,omitempty" json:"death_year,omitempty"` // 0: outlives the projection
	WorkIncome    decimal.Decimal `yaml:"work_income" json:"work_income"`                   // yearly, first-year value
	Pension       decimal.Decimal `yaml:"pension" json:"pension"`                           // yearly, first-year value
}

// IsAlive reports whether the adult is alive at the end of year. An adult
// dies during DeathYear.
func (a Adult) IsAlive(year int) bool {
	return a.DeathYear == 0 || year < a.DeathYear
}

// IsRetired reports whether the adult has reached retirement age by the end
// of year.
func (a Adult) IsRetired(year int) bool {
	return dateutil.AgeAtEndOfYear(a.BirthDate, year) >= a.RetirementAge
}

// Child is a child of the household.
type Child struct {
	Name      string    `yaml:"name" json:"name"`
	BirthDate time.Time `yaml:"birth_date" json:"birth_date"`
}

// IsDependent reports whether the child is born and under DependentAgeLimit
// at the end of year.
func (c Child) IsDependent(year int) bool {
	age := dateutil.AgeAtEndOfYear(c.BirthDate, year)
	return year >= c.BirthDate.Year() && age < DependentAgeLimit
}

// Family is the household being projected.
type Family struct {
	Adults         []Adult         `yaml:"adults" json:"adults"`
	Children       []Child         `yaml:"children" json:"children"`
	YearlyExpenses decimal.Decimal `yaml:"yearly_expenses" json:"yearly_expenses"` // first-year value
}

// AdultsAlive returns the adults alive at the end of year.
func (f Family) AdultsAlive(year int) []Adult {
	var alive []Adult
	for _, a := range f.Adults {
		if a.IsAlive(year) {
			alive = append(alive, a)
		}
	}
	return alive
}

// DependentChildren counts the children in the household's charge in year.
func (f Family) DependentChildren(year int) int {
	n := 0
	for _, c := range f.Children {
		if c.IsDependent(year) {
			n++
		}
	}
	return n
}
