package handlers

import (
	"net/http"
	"strconv"

	"aether/backend/services/console-service/internal/service"
)

const defaultHistoryLimit = 50

// NewHistoryHandler returns GET /api/history handler: the cached historical
// feed for the trend chart.
func NewHistoryHandler(svc *service.ConsoleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			limit = parsed
		}

		rows, err := svc.History(r.Context(), limit)
		if err != nil {
			writeEvaluationError(w, err)
			return
		}
		if len(rows) == 0 {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"no_data": true,
				"warning": "No historical data found in the bucket.",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"count": len(rows),
			"rows":  rows,
		})
	}
}
