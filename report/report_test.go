package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-sim/domain"
	"rental-sim/service"
)

func scenariosFixture(t *testing.T) []domain.Scenario {
	t.Helper()
	var out []domain.Scenario
	for _, name := range []string{domain.ScenarioWorst, domain.ScenarioBest} {
		params := domain.RecommendedWorst()
		if name == domain.ScenarioBest {
			params = domain.RecommendedBest()
		}
		results, err := service.Simulate(params)
		require.NoError(t, err)
		out = append(out, domain.Scenario{Name: name, Parameters: params, Results: results})
	}
	return out
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", formatAmount(0))
	assert.Equal(t, "999", formatAmount(999.4))
	assert.Equal(t, "1 000", formatAmount(999.5))
	assert.Equal(t, "120 000", formatAmount(120000))
	assert.Equal(t, "-12 345", formatAmount(-12344.5))
	assert.Equal(t, "1 234 567", formatAmount(1234567))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "7.50 %", formatRate(0.075))
	assert.Equal(t, "3.24 %", formatRate(0.0324))
	assert.Equal(t, "0.00 %", formatRate(0))
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 7, 3, 9, 5, 1, 0, time.UTC)
	assert.Equal(t, "simulation_report_20240703_090501.txt", FileName(now))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, scenariosFixture(t)))
	out := buf.String()

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "Scenario | Statut"))
	assert.Equal(t, strings.Repeat("-", len([]rune(lines[0]))), lines[1])

	assert.Contains(t, out, "Worst – paramètres saisis")
	assert.Contains(t, out, "Best – paramètres saisis")
	assert.Contains(t, out, "Prix d'achat net vendeur (€)")
	assert.Contains(t, out, ": 120 000")
	assert.Contains(t, out, ": 7.50 %")

	for _, regime := range domain.Regimes() {
		assert.Equal(t, 2, strings.Count(out, " | "+string(regime)), regime)
	}
	assert.Contains(t, out, "Worst    | LMNP_micro_BIC")
	assert.Contains(t, out, "         | LMNP_reel")
}

func TestRender_MissingRegime(t *testing.T) {
	sc := scenariosFixture(t)[0]
	delete(sc.Results, domain.RegimeSCIIS)

	err := Render(&bytes.Buffer{}, []domain.Scenario{sc})
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	path, err := WriteFile(dir, now, scenariosFixture(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "simulation_report_20250102_030405.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LMNP_micro_BIC")
}

func TestWriteFile_RenderErrorLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	sc := scenariosFixture(t)[0]
	delete(sc.Results, domain.RegimeLMNPReel)

	_, err := WriteFile(dir, time.Now(), []domain.Scenario{sc})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
