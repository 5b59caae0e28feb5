package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aether/backend/services/console-service/internal/models"
	"aether/backend/services/console-service/internal/repository"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeEvaluationError maps the evaluator taxonomy onto HTTP statuses. An
// unavailable assessor is 503, never a nominal-looking 200.
func writeEvaluationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrSchemaMismatch):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, models.ErrAssessmentUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, models.ErrInvalidReportInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrReportNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
