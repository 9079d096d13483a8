package fiscal

import (
	pctdec "github.com/rpgo/patrimoine/pkg/decimal"
	"github.com/shopspring/decimal"
)

const (
	companyProfitModelName = "company profit tax"
	lifeInsuranceModelName = "life insurance tax"
	socialLeviesModelName  = "social levies"
	successionModelName    = "succession tax"
)

// CompanyProfitConfig is the configuration document of the corporate tax.
type CompanyProfitConfig struct {
	Version Version         `json:"version"`
	Rate    decimal.Decimal `json:"rate"`
}

// CompanyProfitTaxesModel taxes a company's profit at a flat rate. Losses are
// neither taxed nor carried forward.
type CompanyProfitTaxesModel struct {
	cfg CompanyProfitConfig
}

func NewCompanyProfitTaxesModel(cfg CompanyProfitConfig) (*CompanyProfitTaxesModel, error) {
	if err := cfg.Version.Validate(companyProfitModelName); err != nil {
		return nil, err
	}
	if err := checkPercent(companyProfitModelName, "rate", cfg.Rate); err != nil {
		return nil, err
	}
	return &CompanyProfitTaxesModel{cfg: cfg}, nil
}

func (m *CompanyProfitTaxesModel) Version() Version { return m.cfg.Version }

// Tax returns the tax on grossProfit, zero for a loss.
func (m *CompanyProfitTaxesModel) Tax(grossProfit decimal.Decimal) decimal.Decimal {
	if grossProfit.IsNegative() {
		return decimal.Zero
	}
	return pctdec.ApplyPercent(grossProfit, m.cfg.Rate)
}

// Net returns grossProfit after tax, zero for a loss.
func (m *CompanyProfitTaxesModel) Net(grossProfit decimal.Decimal) decimal.Decimal {
	if grossProfit.IsNegative() {
		return decimal.Zero
	}
	return grossProfit.Sub(m.Tax(grossProfit))
}

// LifeInsuranceConfig is the configuration document of the life insurance tax.
type LifeInsuranceConfig struct {
	Version Version         `json:"version"`
	Rebate  decimal.Decimal `json:"rebate"` // per person and per year
}

// LifeInsuranceTaxesModel only carries the yearly per-person rebate on gains
// withdrawn from life insurance; the gain itself depends on ownership and is
// computed by the simulation.
type LifeInsuranceTaxesModel struct {
	cfg LifeInsuranceConfig
}

func NewLifeInsuranceTaxesModel(cfg LifeInsuranceConfig) (*LifeInsuranceTaxesModel, error) {
	if err := cfg.Version.Validate(lifeInsuranceModelName); err != nil {
		return nil, err
	}
	if err := checkNonNegative(lifeInsuranceModelName, "rebate", cfg.Rebate); err != nil {
		return nil, err
	}
	return &LifeInsuranceTaxesModel{cfg: cfg}, nil
}

func (m *LifeInsuranceTaxesModel) Version() Version { return m.cfg.Version }

// Rebate returns the yearly rebate per person.
func (m *LifeInsuranceTaxesModel) Rebate() decimal.Decimal { return m.cfg.Rebate }

// SocialLeviesConfig is the configuration document of the social levies.
type SocialLeviesConfig struct {
	Version     Version         `json:"version"`
	LaborRate   decimal.Decimal `json:"labour"`
	CapitalRate decimal.Decimal `json:"capital"`
}

// SocialLeviesModel applies flat social levies to labour and capital income.
type SocialLeviesModel struct {
	cfg SocialLeviesConfig
}

func NewSocialLeviesModel(cfg SocialLeviesConfig) (*SocialLeviesModel, error) {
	if err := cfg.Version.Validate(socialLeviesModelName); err != nil {
		return nil, err
	}
	if err := checkPercent(socialLeviesModelName, "labour", cfg.LaborRate); err != nil {
		return nil, err
	}
	if err := checkPercent(socialLeviesModelName, "capital", cfg.CapitalRate); err != nil {
		return nil, err
	}
	return &SocialLeviesModel{cfg: cfg}, nil
}

func (m *SocialLeviesModel) Version() Version { return m.cfg.Version }

// OnLabor returns the levies on labour income.
func (m *SocialLeviesModel) OnLabor(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return pctdec.ApplyPercent(income, m.cfg.LaborRate)
}

// OnCapital returns the levies on capital income.
func (m *SocialLeviesModel) OnCapital(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return pctdec.ApplyPercent(income, m.cfg.CapitalRate)
}

// SuccessionConfig is the configuration document of the inheritance tax
// paid by each child.
type SuccessionConfig struct {
	Version        Version         `json:"version"`
	ChildAbatement decimal.Decimal `json:"childAbatement"`
	Brackets       []Bracket       `json:"brackets"`
}

// SuccessionTaxModel taxes each heir's share above a per-child abatement.
type SuccessionTaxModel struct {
	cfg   SuccessionConfig
	scale ProgressiveScale
}

func NewSuccessionTaxModel(cfg SuccessionConfig) (*SuccessionTaxModel, error) {
	if err := cfg.Version.Validate(successionModelName); err != nil {
		return nil, err
	}
	if err := checkNonNegative(successionModelName, "childAbatement", cfg.ChildAbatement); err != nil {
		return nil, err
	}
	scale, err := NewProgressiveScale(successionModelName, cfg.Brackets)
	if err != nil {
		return nil, err
	}
	cfg.Brackets = scale.Brackets()
	return &SuccessionTaxModel{cfg: cfg, scale: scale}, nil
}

func (m *SuccessionTaxModel) Version() Version { return m.cfg.Version }

// HeirTax returns the tax a child pays on an inherited share.
func (m *SuccessionTaxModel) HeirTax(share decimal.Decimal) decimal.Decimal {
	taxable := share.Sub(m.cfg.ChildAbatement)
	if !taxable.IsPositive() {
		return decimal.Zero
	}
	return m.scale.Tax(taxable).Round(2)
}
