package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"rental-sim/domain"
)

type ScenarioService struct {
	simulations *SimulationService
}

func NewScenarioService(simulations *SimulationService) *ScenarioService {
	return &ScenarioService{simulations: simulations}
}

// Midpoint derives the Base scenario field by field. Integer fields are
// rounded to the nearest unit, halves away from zero.
func Midpoint(worst, best domain.ParameterSet) domain.ParameterSet {
	var base domain.ParameterSet
	for _, f := range domain.Fields {
		mid := (f.Get(&worst) + f.Get(&best)) / 2
		if f.Integer {
			mid = decimal.NewFromFloat(mid).Round(0).InexactFloat64()
		}
		f.Set(&base, mid)
	}
	return base
}

// Compare simulates Worst, Base and Best concurrently and returns them in that order.
func (s *ScenarioService) Compare(
	ctx context.Context,
	worst, best domain.ParameterSet,
) ([]domain.Scenario, error) {

	scenarios := []domain.Scenario{
		{Name: domain.ScenarioWorst, Parameters: worst},
		{Name: domain.ScenarioBase, Parameters: Midpoint(worst, best)},
		{Name: domain.ScenarioBest, Parameters: best},
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range scenarios {
		sc := &scenarios[i]
		g.Go(func() error {
			result, err := s.simulations.Simulate(gctx, sc.Parameters)
			if err != nil {
				return fmt.Errorf("%s scenario: %w", sc.Name, err)
			}
			sc.Results = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scenarios, nil
}
