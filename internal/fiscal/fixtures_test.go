package fiscal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testVersion(name string) Version {
	return Version{Name: name, Version: "1.0", Date: Date{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func brackets(pairs ...string) []Bracket {
	out := make([]Bracket, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Bracket{Floor: d(pairs[i]), Rate: d(pairs[i+1])})
	}
	return out
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got.String())
}

func assertConfigError(t *testing.T, err error, field string) {
	t.Helper()
	var cfgErr *ConfigError
	if assert.ErrorAs(t, err, &cfgErr) {
		assert.Equal(t, field, cfgErr.Field)
	}
}
