package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"aether/backend/services/console-service/internal/models"
	"aether/backend/services/console-service/internal/service"
)

type createReportRequest struct {
	Mode        models.Mode `json:"mode"`
	Temperature float64     `json:"temperature"`
	Vibration   float64     `json:"vibration"`
	FuelPercent float64     `json:"fuel_percent"`
	Current     float64     `json:"current"`
	Readings    []float64   `json:"readings,omitempty"`
}

// NewCreateReportHandler returns POST /api/reports handler. The assessment
// is recomputed server-side from the submitted readings so a report always
// reflects the model, not client-supplied verdicts.
func NewCreateReportHandler(svc *service.ConsoleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var (
			result models.Assessment
			err    error
		)
		switch req.Mode {
		case models.ModeClassification:
			result, err = svc.EvaluateManual(r.Context(), req.Temperature, req.Vibration, req.FuelPercent)
		case models.ModeForecast:
			result, err = svc.ForecastTrend(r.Context(), service.ForecastInput{
				Current:  req.Current,
				Readings: req.Readings,
			})
		default:
			writeError(w, http.StatusBadRequest, "unknown mode")
			return
		}
		if err != nil {
			writeEvaluationError(w, err)
			return
		}

		incident, err := svc.CreateReport(r.Context(), result)
		if err != nil {
			writeEvaluationError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, incident)
	}
}

// NewReportPDFHandler returns GET /api/reports/{id}/pdf handler streaming
// the rendered document.
func NewReportPDFHandler(svc *service.ConsoleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/reports/")
		id := strings.TrimSuffix(rest, "/pdf")
		if id == "" || id == rest || strings.Contains(id, "/") {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		document, err := svc.RenderReport(r.Context(), id)
		if err != nil {
			writeEvaluationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="Mission_Report.pdf"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(document)
	}
}
