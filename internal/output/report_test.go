package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/patrimoine/internal/config"
	"github.com/rpgo/patrimoine/internal/domain"
	"github.com/rpgo/patrimoine/internal/fiscal"
	"github.com/rpgo/patrimoine/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveConfigurationRoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	require.NoError(t, output.SaveConfiguration(cfg, path))
	loaded, err := parser.LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, cfg.Name, loaded.Name)
	assert.True(t, cfg.Family.YearlyExpenses.Equal(loaded.Family.YearlyExpenses))
	assert.Equal(t, cfg.Patrimoine.Investments[2].Kind, loaded.Patrimoine.Investments[2].Kind)
	assert.True(t, cfg.Family.Adults[0].BirthDate.Equal(loaded.Family.Adults[0].BirthDate))
}

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	report := &output.Report{Name: "empty"}

	path, err := output.GenerateReport(report, "summary", dir)

	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".txt"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No computed years.")
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.GenerateReport(&output.Report{}, "definitely-not-a-format", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", err)
	}
}

func TestGenerateAssumptions(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	versions := map[string]fiscal.Version{
		"wealth tax": {Name: "ISF", Version: "2024.0", Date: fiscal.Date{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}},
		"income tax": {Name: "IRPP", Version: "2024.1", Date: fiscal.Date{Time: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}},
	}

	got := output.GenerateAssumptions(cfg, versions)

	require.Len(t, got, 6)
	assert.Equal(t, "Secured assets return: 2.50% annually", got[0])
	assert.Equal(t, "Inflation: 2.00% annually", got[2])
	assert.True(t, strings.HasPrefix(got[3], "Volatility"))
	assert.Equal(t, "income tax: IRPP v2024.1 (2024-02-01)", got[4])
	assert.Equal(t, "wealth tax: ISF v2024.0 (2024-01-01)", got[5])
}

func TestGenerateAssumptions_NoVolatility(t *testing.T) {
	cfg := &domain.Configuration{}
	assert.Len(t, output.GenerateAssumptions(cfg, nil), 3)
}
