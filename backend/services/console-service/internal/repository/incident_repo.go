package repository

import (
	"context"
	"database/sql"
	"errors"

	"aether/backend/services/console-service/internal/models"
)

// ErrReportNotFound indicates a missing incident report.
var ErrReportNotFound = errors.New("incident report not found")

// IncidentRepository persists incident and audit reports.
type IncidentRepository struct {
	db *sql.DB
}

// NewIncidentRepository returns repository.
func NewIncidentRepository(db *sql.DB) *IncidentRepository {
	return &IncidentRepository{db: db}
}

// SaveIncident stores a generated incident report.
func (r *IncidentRepository) SaveIncident(ctx context.Context, report models.IncidentReport) error {
	const query = `
		INSERT INTO incident_reports (
			id, generated_at, mode, status, confidence, predicted, current_value,
			horizon_seconds, critical_alert, temperature, vibration, fuel_percent, action
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	var temp, vib, fuel sql.NullFloat64
	if report.Snapshot != nil {
		temp = sql.NullFloat64{Float64: report.Snapshot.Temperature, Valid: true}
		vib = sql.NullFloat64{Float64: report.Snapshot.Vibration, Valid: true}
		fuel = sql.NullFloat64{Float64: report.Snapshot.FuelPercent, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.GeneratedAt,
		report.Mode,
		report.Status,
		report.Confidence,
		report.Predicted,
		report.Current,
		report.HorizonSeconds,
		report.CriticalAlert,
		temp,
		vib,
		fuel,
		report.Action,
	)
	return err
}

// GetIncident loads one incident report by id.
func (r *IncidentRepository) GetIncident(ctx context.Context, id string) (models.IncidentReport, error) {
	const query = `
		SELECT id, generated_at, mode, status, confidence, predicted, current_value,
		       horizon_seconds, critical_alert, temperature, vibration, fuel_percent, action
		FROM incident_reports
		WHERE id = $1
	`
	var (
		report          models.IncidentReport
		temp, vib, fuel sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&report.ID,
		&report.GeneratedAt,
		&report.Mode,
		&report.Status,
		&report.Confidence,
		&report.Predicted,
		&report.Current,
		&report.HorizonSeconds,
		&report.CriticalAlert,
		&temp,
		&vib,
		&fuel,
		&report.Action,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.IncidentReport{}, ErrReportNotFound
	}
	if err != nil {
		return models.IncidentReport{}, err
	}

	if temp.Valid {
		report.Snapshot = &models.TelemetrySnapshot{
			Temperature: temp.Float64,
			Vibration:   vib.Float64,
			FuelPercent: fuel.Float64,
		}
	}
	return report, nil
}

// SaveAudit stores an audit run result.
func (r *IncidentRepository) SaveAudit(ctx context.Context, report models.AuditReport) error {
	const query = `
		INSERT INTO audit_reports (
			id, generated_at, total, critical_count, nominal_count, risk_percentage, verdict, message
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.GeneratedAt,
		report.Summary.Total,
		report.Summary.CriticalCount,
		report.Summary.NominalCount,
		report.Summary.RiskPercentage,
		report.Verdict,
		report.Message,
	)
	return err
}

// GetRecentAudits returns the last N audit runs, newest first.
func (r *IncidentRepository) GetRecentAudits(ctx context.Context, limit int) ([]models.AuditReport, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, generated_at, total, critical_count, nominal_count, risk_percentage, verdict, message
		FROM audit_reports
		ORDER BY generated_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var audits []models.AuditReport
	for rows.Next() {
		var a models.AuditReport
		if err := rows.Scan(
			&a.ID,
			&a.GeneratedAt,
			&a.Summary.Total,
			&a.Summary.CriticalCount,
			&a.Summary.NominalCount,
			&a.Summary.RiskPercentage,
			&a.Verdict,
			&a.Message,
		); err != nil {
			return nil, err
		}
		audits = append(audits, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return audits, nil
}
