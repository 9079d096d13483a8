package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/rpgo/patrimoine/internal/fiscal"
	"go.uber.org/multierr"
)

// File names of the tax model documents inside a fiscal directory.
const (
	IncomeTaxFile     = "income_tax.json"
	WealthTaxFile     = "wealth_tax.json"
	RealEstateFile    = "real_estate_capital_gain.json"
	LifeInsuranceFile = "life_insurance.json"
	CompanyProfitFile = "company_profit.json"
	SocialLeviesFile  = "social_levies.json"
	SuccessionFile    = "succession.json"
)

// FiscalFiles lists every document LoadFiscalModel reads.
var FiscalFiles = []string{
	IncomeTaxFile,
	WealthTaxFile,
	RealEstateFile,
	LifeInsuranceFile,
	CompanyProfitFile,
	SocialLeviesFile,
	SuccessionFile,
}

// LoadFiscalModel reads the tax model documents from dir and builds the
// validated model bundle.
func LoadFiscalModel(dir string) (fiscal.Model, error) {
	docs := make(map[string][]byte, len(FiscalFiles))
	var errs error
	for _, name := range FiscalFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to read tax model: %w", err))
			continue
		}
		docs[name] = data
	}
	if errs != nil {
		return fiscal.Model{}, errs
	}
	return DecodeFiscalModel(docs)
}

// DecodeFiscalModel builds the model bundle from raw JSON documents keyed by
// file name. Every document is decoded and validated; all failures are
// reported together.
func DecodeFiscalModel(docs map[string][]byte) (fiscal.Model, error) {
	var (
		m    fiscal.Model
		errs error
		err  error
	)
	m.IncomeTax, err = decodeModel(docs, IncomeTaxFile, fiscal.NewIncomeTaxModel)
	errs = multierr.Append(errs, err)
	m.WealthTax, err = decodeModel(docs, WealthTaxFile, fiscal.NewWealthTaxModel)
	errs = multierr.Append(errs, err)
	m.RealEstate, err = decodeModel(docs, RealEstateFile, fiscal.NewRealEstateCapitalGainTaxModel)
	errs = multierr.Append(errs, err)
	m.LifeInsurance, err = decodeModel(docs, LifeInsuranceFile, fiscal.NewLifeInsuranceTaxesModel)
	errs = multierr.Append(errs, err)
	m.CompanyProfit, err = decodeModel(docs, CompanyProfitFile, fiscal.NewCompanyProfitTaxesModel)
	errs = multierr.Append(errs, err)
	m.SocialLevies, err = decodeModel(docs, SocialLeviesFile, fiscal.NewSocialLeviesModel)
	errs = multierr.Append(errs, err)
	m.Succession, err = decodeModel(docs, SuccessionFile, fiscal.NewSuccessionTaxModel)
	errs = multierr.Append(errs, err)
	if errs != nil {
		return fiscal.Model{}, errs
	}
	return m, nil
}

func decodeModel[C any, M any](docs map[string][]byte, name string, build func(C) (*M, error)) (*M, error) {
	data, ok := docs[name]
	if !ok {
		return nil, fmt.Errorf("%s: document missing", name)
	}
	var cfg C
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse JSON: %w", name, err)
	}
	model, err := build(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return model, nil
}
