package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"rental-sim/domain"
	"rental-sim/service"
)

type LoanHandler struct {
	log zerolog.Logger
}

func NewLoanHandler(log zerolog.Logger) *LoanHandler {
	return &LoanHandler{log: log.With().Str("handler", "loan").Logger()}
}

// CalculateLoan handles POST /amortization.
func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if err := decodeJSON(r, &input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := service.CalculateLoan(input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, http.StatusOK, result)
}
