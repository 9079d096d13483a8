package fiscal

import "go.uber.org/multierr"

// Model bundles the tax models a simulation needs. It is immutable and safe
// for concurrent use.
type Model struct {
	IncomeTax     *IncomeTaxModel
	WealthTax     *WealthTaxModel
	RealEstate    *RealEstateCapitalGainTaxModel
	LifeInsurance *LifeInsuranceTaxesModel
	CompanyProfit *CompanyProfitTaxesModel
	SocialLevies  *SocialLeviesModel
	Succession    *SuccessionTaxModel
}

// Validate reports every missing model.
func (m Model) Validate() error {
	var errs error
	for _, c := range []struct {
		name    string
		missing bool
	}{
		{incomeTaxModelName, m.IncomeTax == nil},
		{wealthTaxModelName, m.WealthTax == nil},
		{realEstateModelName, m.RealEstate == nil},
		{lifeInsuranceModelName, m.LifeInsurance == nil},
		{companyProfitModelName, m.CompanyProfit == nil},
		{socialLeviesModelName, m.SocialLevies == nil},
		{successionModelName, m.Succession == nil},
	} {
		if c.missing {
			errs = multierr.Append(errs, configErr(c.name, "model", "not loaded"))
		}
	}
	return errs
}

// Versions lists the version of every loaded model, keyed by model name.
func (m Model) Versions() map[string]Version {
	v := make(map[string]Version, 7)
	if m.IncomeTax != nil {
		v[incomeTaxModelName] = m.IncomeTax.Version()
	}
	if m.WealthTax != nil {
		v[wealthTaxModelName] = m.WealthTax.Version()
	}
	if m.RealEstate != nil {
		v[realEstateModelName] = m.RealEstate.Version()
	}
	if m.LifeInsurance != nil {
		v[lifeInsuranceModelName] = m.LifeInsurance.Version()
	}
	if m.CompanyProfit != nil {
		v[companyProfitModelName] = m.CompanyProfit.Version()
	}
	if m.SocialLevies != nil {
		v[socialLeviesModelName] = m.SocialLevies.Version()
	}
	if m.Succession != nil {
		v[successionModelName] = m.Succession.Version()
	}
	return v
}
