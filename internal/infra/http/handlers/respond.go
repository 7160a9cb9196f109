package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xavierca1/leadscore/internal/entity"
	"github.com/xavierca1/leadscore/internal/usecase"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// writeDomainError maps the error taxonomy onto status codes: validation
// failures are 400, unknown ids 404, anything else a logged 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrEmailAlreadyExists):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrLeadNotFound), errors.Is(err, entity.ErrRuleNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
