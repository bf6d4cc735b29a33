package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"rental-sim/domain"
)

// SimulationRepositoryMemory is an in-memory, process-local run log.
type SimulationRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.SimulationRecord
}

// NewSimulationRepositoryMemory creates an empty run log.
func NewSimulationRepositoryMemory() *SimulationRepositoryMemory {
	return &SimulationRepositoryMemory{
		data: []domain.SimulationRecord{},
	}
}

// Save stores the record, assigning an id and timestamp when missing.
func (r *SimulationRepositoryMemory) Save(record domain.SimulationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, record)
	return nil
}

// All returns a copy of the stored records in insertion order.
func (r *SimulationRepositoryMemory) All() []domain.SimulationRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SimulationRecord, len(r.data))
	copy(out, r.data)
	return out
}
