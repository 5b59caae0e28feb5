package handlers

import (
	"net/http"
	"strconv"

	"aether/backend/services/console-service/internal/service"
)

// NewAuditHandler returns POST /api/audit handler: one synchronous pass over
// the full historical dataset. An unavailable data source answers 200 with a
// no-data warning, never an error.
func NewAuditHandler(svc *service.ConsoleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auditReport, ok, err := svc.RunAudit(r.Context())
		if err != nil {
			writeEvaluationError(w, err)
			return
		}
		if !ok {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"no_data": true,
				"warning": "No data found to audit.",
			})
			return
		}

		writeJSON(w, http.StatusOK, auditReport)
	}
}

const defaultAuditsLimit = 20

// NewRecentAuditsHandler returns GET /api/audits handler: the latest
// persisted audit runs, newest first.
func NewRecentAuditsHandler(svc *service.ConsoleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultAuditsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			limit = parsed
		}

		audits, err := svc.RecentAudits(r.Context(), limit)
		if err != nil {
			writeEvaluationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"count":  len(audits),
			"audits": audits,
		})
	}
}
