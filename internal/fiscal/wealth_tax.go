package fiscal

import (
	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/shopspring/decimal"
)

const wealthTaxModelName = "wealth tax"

// WealthTaxConfig is the configuration document of the wealth tax (ISF).
type WealthTaxConfig struct {
	Version   Version         `json:"version"`
	Threshold decimal.Decimal `json:"threshold"` // no tax below this net worth
	Brackets  []Bracket       `json:"brackets"`
}

// WealthTaxModel computes the progressive wealth tax.
type WealthTaxModel struct {
	cfg   WealthTaxConfig
	scale ProgressiveScale
}

func NewWealthTaxModel(cfg WealthTaxConfig) (*WealthTaxModel, error) {
	if err := cfg.Version.Validate(wealthTaxModelName); err != nil {
		return nil, err
	}
	if err := checkNonNegative(wealthTaxModelName, "threshold", cfg.Threshold); err != nil {
		return nil, err
	}
	scale, err := NewProgressiveScale(wealthTaxModelName, cfg.Brackets)
	if err != nil {
		return nil, err
	}
	cfg.Brackets = scale.Brackets()
	return &WealthTaxModel{cfg: cfg, scale: scale}, nil
}

func (m *WealthTaxModel) Version() Version { return m.cfg.Version }

// Compute assesses the tax on a net worth. Nothing is due below the threshold.
func (m *WealthTaxModel) Compute(netWorth decimal.Decimal) domain.WealthTaxSummary {
	base := decimal.Max(netWorth, decimal.Zero)
	if base.LessThan(m.cfg.Threshold) {
		return domain.WealthTaxSummary{Amount: decimal.Zero, TaxableBase: base, MarginalRate: decimal.Zero}
	}
	return domain.WealthTaxSummary{
		Amount:       m.scale.Tax(base).Round(2),
		TaxableBase:  base,
		MarginalRate: m.scale.MarginalRate(base),
	}
}
