// Package finmath holds the time-value-of-money primitives used by the
// projection engine.
//
// All rates are fractions (0.05 means 5%). The functions are pure and do not
// validate their inputs beyond the documented rate branches: a negative or
// zero number of periods where the formula divides by it yields NaN or ±Inf,
// never an error. The only rejected input is a zero rate for the loan
// formulas, reported as ErrZeroRate.
package finmath

import (
	"errors"
	"math"
)

// ErrZeroRate is returned by the loan formulas, which are undefined for a
// zero interest rate.
var ErrZeroRate = errors.New("finmath: loan formulas require a non-zero interest rate")

const monthsPerYear = 12

// FromPercent converts a percent-valued rate (5.0) into a fraction (0.05).
func FromPercent(p float64) float64 {
	return p / 100
}

// FutureValue returns the value after periods of an initial capital growing at
// rate, plus a constant payment made at the end of each period.
func FutureValue(payment, rate float64, periods int, initialValue float64) float64 {
	n := float64(periods)
	if rate == 0 {
		return initialValue + payment*n
	}
	growth := math.Pow(1+rate, n)
	return initialValue*growth + payment*(growth-1)/rate
}

// LoanPayment returns the amount paid over one year (twelve monthly
// installments) to amortize loanedValue over periods years at annualRate.
// The sign of the result follows loanedValue, which is negative for a
// borrowed principal.
func LoanPayment(loanedValue, annualRate float64, periods int) (float64, error) {
	if annualRate == 0 {
		return 0, ErrZeroRate
	}
	months := float64(periods * monthsPerYear)
	return loanedValue * annualRate / (1 - math.Pow(1+annualRate/monthsPerYear, -months)), nil
}

// ResidualLoanValue returns the outstanding principal at the end of
// currentYear of a loan repaid from firstYear to lastYear inclusive.
// Before firstYear the full principal is outstanding; from lastYear on it is
// zero.
func ResidualLoanValue(loanedValue, annualRate float64, firstYear, lastYear, currentYear int) (float64, error) {
	periods := lastYear - firstYear + 1
	yearly, err := LoanPayment(loanedValue, annualRate, periods)
	if err != nil {
		return 0, err
	}
	if currentYear < firstYear {
		return loanedValue, nil
	}
	if currentYear >= lastYear {
		return 0, nil
	}
	monthlyRate := annualRate / monthsPerYear
	remaining := float64((lastYear - currentYear) * monthsPerYear)
	monthly := yearly / monthsPerYear
	return monthly * (1 - math.Pow(1+monthlyRate, -remaining)) / monthlyRate, nil
}
