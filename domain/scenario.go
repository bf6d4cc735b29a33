package domain

import "time"

const (
	ScenarioWorst = "Worst"
	ScenarioBase  = "Base"
	ScenarioBest  = "Best"
)

type ScenarioInput struct {
	Worst ParameterSet `json:"worst"`
	Best  ParameterSet `json:"best"`
}

type Scenario struct {
	Name       string           `json:"name"`
	Parameters ParameterSet     `json:"parameters"`
	Results    SimulationResult `json:"results"`
}

// SimulationRecord is one entry of the in-memory run log.
type SimulationRecord struct {
	ID         string
	CreatedAt  time.Time
	Parameters ParameterSet
	Results    SimulationResult
}
