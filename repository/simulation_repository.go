package repository

import "rental-sim/domain"

type SimulationRepository interface {
	Save(record domain.SimulationRecord) error
}
