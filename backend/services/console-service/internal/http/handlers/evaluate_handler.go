package handlers

import (
	"encoding/json"
	"net/http"

	"aether/backend/services/console-service/internal/models"
	"aether/backend/services/console-service/internal/service"
)

type evaluateRequest struct {
	Temperature float64 `json:"temperature"`
	Vibration   float64 `json:"vibration"`
	FuelPercent float64 `json:"fuel_percent"`
}

type evaluateResponse struct {
	models.Assessment
	ConfidencePercent float64 `json:"confidence_percent"`
	AlarmEligible     bool    `json:"alarm_eligible"`
}

// NewEvaluateHandler returns POST /api/evaluate handler: classification of
// one manual reading.
func NewEvaluateHandler(svc *service.ConsoleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := svc.EvaluateManual(r.Context(), req.Temperature, req.Vibration, req.FuelPercent)
		if err != nil {
			writeEvaluationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, evaluateResponse{
			Assessment:        result,
			ConfidencePercent: result.Confidence * 100,
			AlarmEligible:     result.Status == models.StatusCritical,
		})
	}
}
