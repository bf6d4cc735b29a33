package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-sim/domain"
	"rental-sim/repository"
)

type MockSimulationRepository struct {
	SaveCalls  int
	ForceError bool
}

func (m *MockSimulationRepository) Save(record domain.SimulationRecord) error {
	m.SaveCalls++
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, bool) { return "", false }
func (failingCache) Set(context.Context, string, string) error { return errors.New("cache down") }

func TestSimulationService_CachesResults(t *testing.T) {
	repo := &MockSimulationRepository{}
	cache := repository.NewMockCache()
	svc := NewSimulationService(repo, cache, zerolog.Nop())
	ctx := context.Background()

	first, err := svc.Simulate(ctx, domain.DefaultParameters())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.SaveCalls)
	assert.Len(t, cache.Data, 1)

	second, err := svc.Simulate(ctx, domain.DefaultParameters())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.SaveCalls, "cache hit should not record a new run")
	assert.Equal(t, first, second)
}

func TestSimulationService_StoreFailuresAreNotFatal(t *testing.T) {
	repo := &MockSimulationRepository{ForceError: true}
	svc := NewSimulationService(repo, failingCache{}, zerolog.Nop())

	result, err := svc.Simulate(context.Background(), domain.DefaultParameters())
	require.NoError(t, err)
	assert.Len(t, result, 4)
	assert.Equal(t, 1, repo.SaveCalls)
}

func TestSimulationService_InvalidInputNotRecorded(t *testing.T) {
	repo := &MockSimulationRepository{}
	svc := NewSimulationService(repo, repository.NewMockCache(), zerolog.Nop())

	params := domain.DefaultParameters()
	params.LoanYears = -1

	_, err := svc.Simulate(context.Background(), params)
	assert.ErrorIs(t, err, ErrInvalidLoanTerm)
	assert.Equal(t, 0, repo.SaveCalls)
}
