package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyProfitTaxes(t *testing.T) {
	model, err := NewCompanyProfitTaxesModel(CompanyProfitConfig{Version: testVersion("IS"), Rate: d("25")})
	require.NoError(t, err)

	tests := []struct {
		gross string
		tax   string
		net   string
	}{
		{"100000", "25000", "75000"},
		{"0", "0", "0"},
		{"-5000", "0", "0"},
		{"1234.56", "308.64", "925.92"},
	}
	for _, tt := range tests {
		t.Run(tt.gross, func(t *testing.T) {
			g := d(tt.gross)
			assertDecimal(t, tt.tax, model.Tax(g))
			assertDecimal(t, tt.net, model.Net(g))
			if !g.IsNegative() {
				assert.True(t, model.Tax(g).Add(model.Net(g)).Equal(g))
			}
		})
	}

	_, err = NewCompanyProfitTaxesModel(CompanyProfitConfig{Version: testVersion("IS"), Rate: d("-1")})
	assertConfigError(t, err, "rate")
}

func TestLifeInsuranceRebate(t *testing.T) {
	model, err := NewLifeInsuranceTaxesModel(LifeInsuranceConfig{Version: testVersion("AV"), Rebate: d("4600")})
	require.NoError(t, err)
	assertDecimal(t, "4600", model.Rebate())
	assert.Equal(t, "AV", model.Version().Name)

	_, err = NewLifeInsuranceTaxesModel(LifeInsuranceConfig{Version: testVersion("AV"), Rebate: d("-1")})
	assertConfigError(t, err, "rebate")
}

func TestSocialLevies(t *testing.T) {
	model, err := NewSocialLeviesModel(SocialLeviesConfig{
		Version:     testVersion("PS"),
		LaborRate:   d("9.7"),
		CapitalRate: d("17.2"),
	})
	require.NoError(t, err)

	assertDecimal(t, "970", model.OnLabor(d("10000")))
	assertDecimal(t, "1720", model.OnCapital(d("10000")))
	assertDecimal(t, "0", model.OnCapital(d("-10000")))
	assertDecimal(t, "0", model.OnLabor(d("0")))

	_, err = NewSocialLeviesModel(SocialLeviesConfig{Version: testVersion("PS"), LaborRate: d("9.7"), CapitalRate: d("117.2")})
	assertConfigError(t, err, "capital")
}

func TestSuccessionHeirTax(t *testing.T) {
	model, err := NewSuccessionTaxModel(SuccessionConfig{
		Version:        testVersion("Succession"),
		ChildAbatement: d("100000"),
		Brackets:       brackets("0", "5", "8072", "10", "12109", "15", "15932", "20", "552324", "30"),
	})
	require.NoError(t, err)

	tests := []struct {
		share string
		tax   string
	}{
		{"0", "0"},
		{"50000", "0"},
		{"100000", "0"},
		{"108072", "403.6"},
		{"200000", "18194.35"},
	}
	for _, tt := range tests {
		assertDecimal(t, tt.tax, model.HeirTax(d(tt.share)))
	}

	_, err = NewSuccessionTaxModel(SuccessionConfig{Version: testVersion("Succession"), ChildAbatement: d("-1"), Brackets: brackets("0", "5")})
	assertConfigError(t, err, "childAbatement")
}
