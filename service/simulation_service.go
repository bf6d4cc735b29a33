package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"rental-sim/domain"
	"rental-sim/repository"
)

type SimulationService struct {
	repo  repository.SimulationRepository
	cache repository.CacheRepository
	log   zerolog.Logger
}

// NewSimulationService creates a SimulationService backed by the given run log and cache.
func NewSimulationService(
	repo repository.SimulationRepository,
	cache repository.CacheRepository,
	log zerolog.Logger,
) *SimulationService {
	return &SimulationService{
		repo:  repo,
		cache: cache,
		log:   log.With().Str("component", "simulation").Logger(),
	}
}

// Simulate runs the regime simulation, serving repeated parameter sets from the cache.
// Cache and run-log failures are logged, never returned.
func (s *SimulationService) Simulate(
	ctx context.Context,
	params domain.ParameterSet,
) (domain.SimulationResult, error) {

	key, keyErr := cacheKey(params)
	if keyErr == nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var result domain.SimulationResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				s.log.Debug().Str("key", key).Msg("cache hit")
				return result, nil
			}
			s.log.Warn().Str("key", key).Msg("discarding unreadable cache entry")
		}
	}

	result, err := Simulate(params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(domain.SimulationRecord{Parameters: params, Results: result}); err != nil {
		s.log.Warn().Err(err).Msg("failed to record simulation")
	}

	if keyErr != nil {
		return result, nil
	}
	payload, err := json.Marshal(result)
	if err != nil {
		s.log.Warn().Err(err).Msg("result not cacheable")
		return result, nil
	}
	if err := s.cache.Set(ctx, key, string(payload)); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache simulation")
	}

	return result, nil
}

func cacheKey(params domain.ParameterSet) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%016x", cacheKeyPrefix, xxhash.Sum64(raw)), nil
}
