package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"aether/backend/services/console-service/internal/assess"
	"aether/backend/services/console-service/internal/models"
)

// Recommended actions. Deterministic text, keyed only on the verdict.
const (
	ActionShutdown = "Initiate Emergency Shutdown Protocol"
	ActionMonitor  = "Continue Monitoring"
)

// Audit verdict strings.
const (
	VerdictElevated = "elevated"
	VerdictStable   = "stable"

	messageElevated = "High risk detected in historical data. Investigation required."
	messageStable   = "Historical data is mostly nominal. System is stable."
)

// BuildIncident converts an assessment into a rendering-ready incident
// record. Well-formed inputs cannot fail; malformed ones fail fast.
func BuildIncident(a models.Assessment) (models.IncidentReport, error) {
	switch a.Status {
	case models.StatusNominal, models.StatusCritical, models.StatusStable, models.StatusRising:
	default:
		return models.IncidentReport{}, fmt.Errorf("%w: unknown status %q", models.ErrInvalidReportInput, a.Status)
	}

	r := models.IncidentReport{
		ID:            uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Mode:          a.Mode,
		Status:        a.Status,
		CriticalAlert: a.CriticalAlert,
	}

	switch a.Mode {
	case models.ModeClassification:
		if a.Snapshot == nil {
			return models.IncidentReport{}, fmt.Errorf("%w: classification report without snapshot", models.ErrInvalidReportInput)
		}
		r.Snapshot = a.Snapshot
		r.Confidence = a.Confidence
	case models.ModeForecast:
		r.Predicted = a.Predicted
		r.Current = a.Current
		r.HorizonSeconds = assess.ForecastHorizonSeconds
	default:
		return models.IncidentReport{}, fmt.Errorf("%w: unknown mode %q", models.ErrInvalidReportInput, a.Mode)
	}

	if a.Status == models.StatusCritical || a.CriticalAlert {
		r.Action = ActionShutdown
	} else {
		r.Action = ActionMonitor
	}

	return r, nil
}

// BuildAudit wraps an audit summary with its verdict and message.
func BuildAudit(summary models.AuditSummary) (models.AuditReport, error) {
	if summary.Total < 0 || summary.CriticalCount+summary.NominalCount != summary.Total {
		return models.AuditReport{}, fmt.Errorf("%w: inconsistent audit counts", models.ErrInvalidReportInput)
	}

	r := models.AuditReport{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
	}
	if assess.Elevated(summary) {
		r.Verdict = VerdictElevated
		r.Message = messageElevated
	} else {
		r.Verdict = VerdictStable
		r.Message = messageStable
	}

	return r, nil
}
