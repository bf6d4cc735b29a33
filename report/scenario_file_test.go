package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-sim/domain"
	"rental-sim/service"
)

func TestParseScenarios(t *testing.T) {
	doc := `
worst:
  purchase_price: 135000
  annual_rate: "0,041"
  weeks_rented: 4
best:
  weekly_rent: 140
  weeks_rented: "10"
`
	worst, best, err := ParseScenarios(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 135000.0, worst.PurchasePrice)
	assert.Equal(t, 0.041, worst.AnnualRate)
	assert.Equal(t, 4, worst.WeeksRented)
	assert.Equal(t, domain.RecommendedWorst().HeatingCost, worst.HeatingCost)

	assert.Equal(t, 140.0, best.WeeklyRent)
	assert.Equal(t, 10, best.WeeksRented)
	assert.Equal(t, domain.RecommendedBest().HeatingCost, best.HeatingCost)
}

func TestParseScenarios_Empty(t *testing.T) {
	worst, best, err := ParseScenarios(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, domain.RecommendedWorst(), worst)
	assert.Equal(t, domain.RecommendedBest(), best)
}

func TestParseScenarios_BadValue(t *testing.T) {
	_, _, err := ParseScenarios(strings.NewReader("best:\n  weekly_rent: cher\n"))
	assert.ErrorIs(t, err, service.ErrInvalidParameter)
}

func TestLoadScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("worst:\n  down_payment: 20000\n"), 0o644))

	worst, _, err := LoadScenarioFile(path)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, worst.DownPayment)

	_, _, err = LoadScenarioFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
