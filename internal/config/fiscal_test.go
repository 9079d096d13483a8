package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/patrimoine/internal/fiscal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fiscalDir = "../../data/fiscal"

func readFiscalDocs(t *testing.T) map[string][]byte {
	t.Helper()
	docs := make(map[string][]byte)
	for _, name := range FiscalFiles {
		data, err := os.ReadFile(filepath.Join(fiscalDir, name))
		require.NoError(t, err)
		docs[name] = data
	}
	return docs
}

func TestLoadFiscalModel_Shipped(t *testing.T) {
	m, err := LoadFiscalModel(fiscalDir)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Len(t, m.Versions(), len(FiscalFiles))
	assert.Equal(t, "2024.0", m.IncomeTax.Version().Version)

	wealth := m.WealthTax.Compute(decimal.NewFromInt(2000000))
	assert.True(t, decimal.NewFromInt(7400).Equal(wealth.Amount), "got %s", wealth.Amount)

	assert.True(t, decimal.NewFromInt(4600).Equal(m.LifeInsurance.Rebate()))
	assert.True(t, decimal.NewFromInt(75).Equal(m.CompanyProfit.Net(decimal.NewFromInt(100))))
}

func TestLoadFiscalModel_MissingDirectory(t *testing.T) {
	_, err := LoadFiscalModel(filepath.Join(t.TempDir(), "nowhere"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read tax model")
	assert.Contains(t, err.Error(), SuccessionFile)
}

func TestLoadFiscalModel_FromCopiedDirectory(t *testing.T) {
	dir := t.TempDir()
	for name, data := range readFiscalDocs(t) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
	}

	_, err := LoadFiscalModel(dir)
	assert.NoError(t, err)
}

func TestDecodeFiscalModel_ReportsEveryFailure(t *testing.T) {
	docs := readFiscalDocs(t)
	docs[WealthTaxFile] = []byte(`{"version": `)
	docs[CompanyProfitFile] = []byte(`{"version": {"name": "IS", "version": "2024.0", "date": "2024-01-01"}, "rate": 25, "surtax": 3}`)
	delete(docs, SuccessionFile)

	_, err := DecodeFiscalModel(docs)

	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, WealthTaxFile+": failed to parse JSON")
	assert.Contains(t, msg, CompanyProfitFile+": failed to parse JSON")
	assert.Contains(t, msg, SuccessionFile+": document missing")
	assert.NotContains(t, msg, IncomeTaxFile)
}

func TestDecodeFiscalModel_InvalidParameters(t *testing.T) {
	docs := readFiscalDocs(t)
	docs[LifeInsuranceFile] = []byte(`{"version": {"name": "AV", "version": "2024", "date": "2024-01-01"}, "rebate": 4600}`)

	_, err := DecodeFiscalModel(docs)

	require.Error(t, err)
	var cfgErr *fiscal.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "version.version", cfgErr.Field)
	assert.Contains(t, err.Error(), LifeInsuranceFile)
}
