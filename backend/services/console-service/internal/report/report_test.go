package report

import (
	"errors"
	"testing"

	"aether/backend/services/console-service/internal/assess"
	"aether/backend/services/console-service/internal/models"
)

func TestBuildIncidentCriticalAction(t *testing.T) {
	snap := &models.TelemetrySnapshot{Temperature: 135, Vibration: 65, FuelPercent: 10}
	a := models.Assessment{
		Mode:       models.ModeClassification,
		Status:     models.StatusCritical,
		Confidence: 0.92,
		Snapshot:   snap,
	}

	r, err := BuildIncident(a)
	if err != nil {
		t.Fatalf("build incident: %v", err)
	}
	if r.Action != ActionShutdown {
		t.Fatalf("expected shutdown action, got %q", r.Action)
	}
	if r.ID == "" || r.GeneratedAt.IsZero() {
		t.Fatalf("report must carry id and timestamp: %+v", r)
	}
	if r.Snapshot != snap {
		t.Fatalf("report must reference the source snapshot")
	}
}

func TestBuildIncidentNominalAction(t *testing.T) {
	a := models.Assessment{
		Mode:       models.ModeClassification,
		Status:     models.StatusNominal,
		Confidence: 0.957,
		Snapshot:   &models.TelemetrySnapshot{Temperature: 100, Vibration: 50, FuelPercent: 75},
	}

	r, err := BuildIncident(a)
	if err != nil {
		t.Fatalf("build incident: %v", err)
	}
	if r.Action != ActionMonitor {
		t.Fatalf("expected monitoring action, got %q", r.Action)
	}
}

func TestBuildIncidentForecastCarriesHorizonAndValues(t *testing.T) {
	a := models.Assessment{
		Mode:      models.ModeForecast,
		Status:    models.StatusRising,
		Predicted: 125.3,
		Current:   118.0,
	}

	r, err := BuildIncident(a)
	if err != nil {
		t.Fatalf("build incident: %v", err)
	}
	if r.HorizonSeconds != assess.ForecastHorizonSeconds {
		t.Fatalf("expected horizon %d, got %d", assess.ForecastHorizonSeconds, r.HorizonSeconds)
	}
	if r.Predicted != 125.3 || r.Current != 118.0 {
		t.Fatalf("forecast report must carry live and predicted values: %+v", r)
	}
	// RISING alone is not an emergency.
	if r.Action != ActionMonitor {
		t.Fatalf("expected monitoring action for plain RISING, got %q", r.Action)
	}
}

func TestBuildIncidentEscalationForcesShutdownAction(t *testing.T) {
	a := models.Assessment{
		Mode:          models.ModeForecast,
		Status:        models.StatusStable,
		Predicted:     125.3,
		Current:       126.0,
		CriticalAlert: true,
	}

	r, err := BuildIncident(a)
	if err != nil {
		t.Fatalf("build incident: %v", err)
	}
	if r.Action != ActionShutdown {
		t.Fatalf("critical alert must force the shutdown action, got %q", r.Action)
	}
}

func TestBuildIncidentRejectsMalformedInput(t *testing.T) {
	noStatus := models.Assessment{Mode: models.ModeClassification}
	if _, err := BuildIncident(noStatus); !errors.Is(err, models.ErrInvalidReportInput) {
		t.Fatalf("expected ErrInvalidReportInput for missing status, got %v", err)
	}

	noSnapshot := models.Assessment{Mode: models.ModeClassification, Status: models.StatusCritical}
	if _, err := BuildIncident(noSnapshot); !errors.Is(err, models.ErrInvalidReportInput) {
		t.Fatalf("expected ErrInvalidReportInput for missing snapshot, got %v", err)
	}

	badMode := models.Assessment{Mode: models.Mode("oracle"), Status: models.StatusNominal}
	if _, err := BuildIncident(badMode); !errors.Is(err, models.ErrInvalidReportInput) {
		t.Fatalf("expected ErrInvalidReportInput for unknown mode, got %v", err)
	}
}

func TestBuildAuditVerdicts(t *testing.T) {
	stable, err := BuildAudit(models.NewAuditSummary(20, 1))
	if err != nil {
		t.Fatalf("build audit: %v", err)
	}
	if stable.Verdict != VerdictStable {
		t.Fatalf("5.0%% exactly must be stable, got %s", stable.Verdict)
	}

	elevated, err := BuildAudit(models.NewAuditSummary(20, 2))
	if err != nil {
		t.Fatalf("build audit: %v", err)
	}
	if elevated.Verdict != VerdictElevated {
		t.Fatalf("10%% must be elevated, got %s", elevated.Verdict)
	}
	if elevated.Message == stable.Message {
		t.Fatalf("verdicts must carry distinct messages")
	}
}

func TestBuildAuditRejectsInconsistentCounts(t *testing.T) {
	broken := models.AuditSummary{Total: 10, CriticalCount: 3, NominalCount: 4}
	if _, err := BuildAudit(broken); !errors.Is(err, models.ErrInvalidReportInput) {
		t.Fatalf("expected ErrInvalidReportInput, got %v", err)
	}
}
