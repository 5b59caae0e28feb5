package handlers

import (
	"encoding/json"
	"net/http"

	"aether/backend/services/console-service/internal/assess"
	"aether/backend/services/console-service/internal/models"
	"aether/backend/services/console-service/internal/service"
)

type forecastRequest struct {
	Current  float64   `json:"current"`
	Readings []float64 `json:"readings,omitempty"`
}

type forecastResponse struct {
	models.Assessment
	HorizonSeconds int `json:"horizon_seconds"`
}

// NewForecastHandler returns POST /api/forecast handler: next-value trend
// prediction from explicit readings, the historical feed, or a synthetic
// ramp around a single current value.
func NewForecastHandler(svc *service.ConsoleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req forecastRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := svc.ForecastTrend(r.Context(), service.ForecastInput{
			Current:  req.Current,
			Readings: req.Readings,
		})
		if err != nil {
			writeEvaluationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, forecastResponse{
			Assessment:     result,
			HorizonSeconds: assess.ForecastHorizonSeconds,
		})
	}
}
