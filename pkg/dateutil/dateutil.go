package dateutil

import (
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AgeAtEndOfYear returns the age reached on December 31st of year.
func AgeAtEndOfYear(birthDate time.Time, year int) int {
	return Age(birthDate, EndOfYear(time.Date(year, 1, 1, 0, 0, 0, 0, birthDate.Location())))
}

// HoldingYears returns the number of full years an asset bought on buyDate
// has been held at the end of year. Zero when the year precedes the purchase.
func HoldingYears(buyDate time.Time, year int) int {
	held := Age(buyDate, EndOfYear(time.Date(year, 1, 1, 0, 0, 0, 0, buyDate.Location())))
	if held < 0 {
		return 0
	}
	return held
}

// YearRange lists n consecutive years starting at first.
func YearRange(first, n int) []int {
	if n <= 0 {
		return nil
	}
	years := make([]int, n)
	for i := range years {
		years[i] = first + i
	}
	return years
}

// EndOfYear returns the last day of the year for a given date
func EndOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 12, 31, 23, 59, 59, 999999999, date.Location())
}
