package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"rental-sim/service"
)

// writeJSON encodes into a buffer first so a failed encode can still send a 500.
func writeJSON(w http.ResponseWriter, log zerolog.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error().Err(err).Msg("encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Msg("writing response")
	}
}

// writeError maps contract violations to 400 and anything else to 500.
func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	if errors.Is(err, service.ErrInvalidParameter) || errors.Is(err, service.ErrInvalidLoanTerm) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Error().Err(err).Msg("request failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
