// Package fiscal implements the versioned tax models of the projection.
//
// Every model is built from an already-decoded configuration document,
// validated once at construction and immutable afterwards, so a single
// instance can be shared by any number of concurrent simulations. Rates in
// the configuration are percents.
package fiscal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// DateLayout is the format of version dates in configuration documents.
const DateLayout = "2006-01-02"

// ConfigError reports malformed or inconsistent model parameters.
type ConfigError struct {
	Model  string
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s configuration: invalid %s: %s", e.Model, e.Field, e.Reason)
}

func configErr(model, field, format string, args ...any) error {
	return &ConfigError{Model: model, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Date is a calendar day encoded as "2006-01-02".
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// Version identifies one published revision of a model's parameters.
type Version struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Date    Date   `json:"date"`
	Comment string `json:"comment,omitempty"`
}

// Validate checks that the version string reads major.minor[.patch].
func (v Version) Validate(model string) error {
	if strings.TrimSpace(v.Name) == "" {
		return configErr(model, "version.name", "name is required")
	}
	parts := strings.Split(v.Version, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return configErr(model, "version.version", "%q is not major.minor[.patch]", v.Version)
	}
	if _, err := semver.StrictNewVersion(strings.Join(append(parts, "0", "0")[:3], ".")); err != nil {
		return configErr(model, "version.version", "%q: %v", v.Version, err)
	}
	if v.Date.IsZero() {
		return configErr(model, "version.date", "date is required")
	}
	return nil
}

func (v Version) String() string {
	return fmt.Sprintf("%s v%s (%s)", v.Name, v.Version, v.Date.Format(DateLayout))
}

var hundred = decimal.NewFromInt(100)

// checkPercent rejects rates outside [0, 100].
func checkPercent(model, field string, rate decimal.Decimal) error {
	if rate.IsNegative() {
		return configErr(model, field, "rate %s%% is negative", rate)
	}
	if rate.GreaterThan(hundred) {
		return configErr(model, field, "rate %s%% exceeds 100%%", rate)
	}
	return nil
}

func checkNonNegative(model, field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return configErr(model, field, "amount %s is negative", amount)
	}
	return nil
}
