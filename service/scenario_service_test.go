package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-sim/domain"
	"rental-sim/repository"
)

func TestMidpoint(t *testing.T) {
	worst := domain.RecommendedWorst()
	best := domain.RecommendedBest()
	worst.LoanYears = 19
	best.LoanYears = 20
	worst.WeeksRented = 4
	best.WeeksRented = 9

	base := Midpoint(worst, best)

	assert.Equal(t, 4450.0, base.WindowsCost)
	assert.Equal(t, 500.0, base.PropertyTax)
	assert.Equal(t, 120000.0, base.PurchasePrice)
	assert.InDelta(t, 0.0324, base.AnnualRate, 1e-12)
	// 19.5 and 6.5 round away from zero
	assert.Equal(t, 20, base.LoanYears)
	assert.Equal(t, 7, base.WeeksRented)
}

func TestScenarioService_Compare(t *testing.T) {
	repo := repository.NewSimulationRepositoryMemory()
	sims := NewSimulationService(repo, repository.NewMockCache(), zerolog.Nop())
	scenarios := NewScenarioService(sims)

	out, err := scenarios.Compare(context.Background(), domain.RecommendedWorst(), domain.RecommendedBest())
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, domain.ScenarioWorst, out[0].Name)
	assert.Equal(t, domain.ScenarioBase, out[1].Name)
	assert.Equal(t, domain.ScenarioBest, out[2].Name)
	for _, sc := range out {
		assert.Len(t, sc.Results, 4)
	}

	// Higher works budget means a bigger loan.
	worstDebt := out[0].Results[domain.RegimeSCIIS].AnnualDebtService
	bestDebt := out[2].Results[domain.RegimeSCIIS].AnnualDebtService
	assert.Greater(t, worstDebt, bestDebt)

	assert.Len(t, repo.All(), 3)
}

func TestScenarioService_CompareError(t *testing.T) {
	sims := NewSimulationService(repository.NewSimulationRepositoryMemory(), repository.NewMockCache(), zerolog.Nop())
	scenarios := NewScenarioService(sims)

	worst := domain.RecommendedWorst()
	worst.LoanYears = 0
	best := domain.RecommendedBest()
	best.LoanYears = 0

	_, err := scenarios.Compare(context.Background(), worst, best)
	assert.ErrorIs(t, err, ErrInvalidLoanTerm)
}
