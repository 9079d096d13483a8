package fiscal

import (
	pctdec "github.com/rpgo/patrimoine/pkg/decimal"
	"github.com/shopspring/decimal"
)

const realEstateModelName = "real estate capital gain"

// ExonerationBracket discounts a capital gain by DiscountRate percent per
// year held beyond Floor, on top of PrevDiscount accumulated below Floor.
type ExonerationBracket struct {
	Floor        int             `json:"floor"` // years held
	DiscountRate decimal.Decimal `json:"discountRate"`
	PrevDiscount decimal.Decimal `json:"prevDiscount"`
}

func (b ExonerationBracket) lowerBound() decimal.Decimal { return decimal.NewFromInt(int64(b.Floor)) }

// RealEstateCapitalGainConfig is the configuration document of the tax on
// real-estate capital gains.
type RealEstateCapitalGainConfig struct {
	Version           Version              `json:"version"`
	IrppRate          decimal.Decimal      `json:"irpp"`
	SocialRate        decimal.Decimal      `json:"socialTaxes"`
	DiscountTravaux   decimal.Decimal      `json:"discountTravaux"` // flat works-cost discount, percent
	DiscountAfter     int                  `json:"discountAfter"`   // years held before it applies
	IrppExoneration   []ExonerationBracket `json:"exoIrpp"`
	SocialExoneration []ExonerationBracket `json:"exoSocial"`
}

// RealEstateCapitalGainTaxModel taxes the gain realised when selling a
// property, discounted by holding duration.
type RealEstateCapitalGainTaxModel struct {
	cfg RealEstateCapitalGainConfig
}

func NewRealEstateCapitalGainTaxModel(cfg RealEstateCapitalGainConfig) (*RealEstateCapitalGainTaxModel, error) {
	if err := cfg.Version.Validate(realEstateModelName); err != nil {
		return nil, err
	}
	for _, r := range []struct {
		field string
		rate  decimal.Decimal
	}{
		{"irpp", cfg.IrppRate},
		{"socialTaxes", cfg.SocialRate},
		{"discountTravaux", cfg.DiscountTravaux},
	} {
		if err := checkPercent(realEstateModelName, r.field, r.rate); err != nil {
			return nil, err
		}
	}
	if cfg.DiscountAfter < 0 {
		return nil, configErr(realEstateModelName, "discountAfter", "%d years is negative", cfg.DiscountAfter)
	}
	if err := validateExoneration("exoIrpp", cfg.IrppExoneration); err != nil {
		return nil, err
	}
	if err := validateExoneration("exoSocial", cfg.SocialExoneration); err != nil {
		return nil, err
	}
	cfg.IrppExoneration = append([]ExonerationBracket(nil), cfg.IrppExoneration...)
	cfg.SocialExoneration = append([]ExonerationBracket(nil), cfg.SocialExoneration...)
	return &RealEstateCapitalGainTaxModel{cfg: cfg}, nil
}

// validateExoneration also requires each bracket to start at or above the
// discount reached at the end of the previous one, so the discount never
// decreases with holding duration.
func validateExoneration(field string, table []ExonerationBracket) error {
	if err := validateFloors(realEstateModelName, field, table); err != nil {
		return err
	}
	for i, b := range table {
		if err := checkPercent(realEstateModelName, field+".discountRate", b.DiscountRate); err != nil {
			return err
		}
		if err := checkPercent(realEstateModelName, field+".prevDiscount", b.PrevDiscount); err != nil {
			return err
		}
		if i == 0 {
			continue
		}
		reached := discountIn(table[i-1], b.Floor)
		if b.PrevDiscount.LessThan(reached) {
			return configErr(realEstateModelName, field,
				"row %d restarts at %s%% below the %s%% already reached", i, b.PrevDiscount, reached)
		}
	}
	return nil
}

func discountIn(b ExonerationBracket, years int) decimal.Decimal {
	d := b.PrevDiscount.Add(b.DiscountRate.Mul(decimal.NewFromInt(int64(years - b.Floor))))
	return decimal.Min(d, hundred)
}

func discountFor(table []ExonerationBracket, years int) decimal.Decimal {
	i, ok := lookup(table, decimal.NewFromInt(int64(years)))
	if !ok {
		return decimal.Zero
	}
	return discountIn(table[i], years)
}

func (m *RealEstateCapitalGainTaxModel) Version() Version { return m.cfg.Version }

// Discount returns the income-tax discount, in percent, after years held.
func (m *RealEstateCapitalGainTaxModel) Discount(years int) decimal.Decimal {
	return discountFor(m.cfg.IrppExoneration, years)
}

// SocialDiscount returns the social-levies discount, in percent, after years held.
func (m *RealEstateCapitalGainTaxModel) SocialDiscount(years int) decimal.Decimal {
	return discountFor(m.cfg.SocialExoneration, years)
}

func (m *RealEstateCapitalGainTaxModel) works(gain decimal.Decimal, years int) decimal.Decimal {
	if years >= m.cfg.DiscountAfter {
		return pctdec.ReduceByPercent(gain, m.cfg.DiscountTravaux)
	}
	return gain
}

// Irpp returns the income tax due on capitalGain after years held. A loss is
// not taxed.
func (m *RealEstateCapitalGainTaxModel) Irpp(capitalGain decimal.Decimal, years int) decimal.Decimal {
	if !capitalGain.IsPositive() {
		return decimal.Zero
	}
	taxable := pctdec.ReduceByPercent(m.works(capitalGain, years), m.Discount(years))
	return pctdec.ApplyPercent(taxable, m.cfg.IrppRate)
}

// SocialLevies returns the social levies due on capitalGain after years held.
func (m *RealEstateCapitalGainTaxModel) SocialLevies(capitalGain decimal.Decimal, years int) decimal.Decimal {
	if !capitalGain.IsPositive() {
		return decimal.Zero
	}
	taxable := pctdec.ReduceByPercent(m.works(capitalGain, years), m.SocialDiscount(years))
	return pctdec.ApplyPercent(taxable, m.cfg.SocialRate)
}
