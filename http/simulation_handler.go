package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"rental-sim/domain"
	"rental-sim/service"
)

type SimulationHandler struct {
	simulations *service.SimulationService
	scenarios   *service.ScenarioService
	log         zerolog.Logger
}

func NewSimulationHandler(
	simulations *service.SimulationService,
	scenarios *service.ScenarioService,
	log zerolog.Logger,
) *SimulationHandler {
	return &SimulationHandler{
		simulations: simulations,
		scenarios:   scenarios,
		log:         log.With().Str("handler", "simulation").Logger(),
	}
}

type regimeResponse struct {
	domain.RegimeResult
	MonthlyCashFlow float64 `json:"monthly_cash_flow"`
	MonthlyEffort   float64 `json:"monthly_effort"`
}

type scenarioResponse struct {
	Name       string                           `json:"name"`
	Parameters domain.ParameterSet              `json:"parameters"`
	Results    map[domain.Regime]regimeResponse `json:"results"`
}

func toResponse(result domain.SimulationResult) map[domain.Regime]regimeResponse {
	out := make(map[domain.Regime]regimeResponse, len(result))
	for regime, r := range result {
		out[regime] = regimeResponse{
			RegimeResult:    r,
			MonthlyCashFlow: r.MonthlyCashFlow(),
			MonthlyEffort:   r.MonthlyEffort(),
		}
	}
	return out
}

// Simulate handles POST /simulate. Omitted fields take the default scenario values.
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	params := domain.DefaultParameters()
	if err := decodeJSON(r, &params); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.simulations.Simulate(r.Context(), params)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, toResponse(result))
}

// CompareScenarios handles POST /scenarios with a Worst/Best pair.
func (h *SimulationHandler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	input := domain.ScenarioInput{
		Worst: domain.RecommendedWorst(),
		Best:  domain.RecommendedBest(),
	}
	if err := decodeJSON(r, &input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	scenarios, err := h.scenarios.Compare(r.Context(), input.Worst, input.Best)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	out := make([]scenarioResponse, 0, len(scenarios))
	for _, sc := range scenarios {
		out = append(out, scenarioResponse{
			Name:       sc.Name,
			Parameters: sc.Parameters,
			Results:    toResponse(sc.Results),
		})
	}
	writeJSON(w, h.log, http.StatusOK, out)
}
