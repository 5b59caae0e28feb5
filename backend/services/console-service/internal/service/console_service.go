package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"aether/backend/services/console-service/internal/assess"
	"aether/backend/services/console-service/internal/ingest"
	"aether/backend/services/console-service/internal/metrics"
	"aether/backend/services/console-service/internal/models"
	"aether/backend/services/console-service/internal/report"
)

// DatasetFetcher pulls the historical dataset from object storage.
type DatasetFetcher interface {
	FetchDataset(ctx context.Context) ([]map[string]float64, error)
}

// DatasetCache keeps the last fetch around for a short TTL.
type DatasetCache interface {
	Get(ctx context.Context) ([]map[string]float64, bool)
	Set(ctx context.Context, rows []map[string]float64)
}

// ReportStore persists generated reports.
type ReportStore interface {
	SaveIncident(ctx context.Context, report models.IncidentReport) error
	GetIncident(ctx context.Context, id string) (models.IncidentReport, error)
	SaveAudit(ctx context.Context, report models.AuditReport) error
	GetRecentAudits(ctx context.Context, limit int) ([]models.AuditReport, error)
}

// Renderer turns an incident report into a downloadable document.
type Renderer interface {
	Render(report models.IncidentReport) ([]byte, error)
}

// ConsoleService orchestrates ingestion, assessment and report assembly for
// the telemetry console.
type ConsoleService struct {
	assessor *assess.Assessor
	fetcher  DatasetFetcher
	cache    DatasetCache
	store    ReportStore
	renderer Renderer
	baseline float64
	logger   *zap.Logger
}

// NewConsoleService builds the service. fetcher and cache may be nil when
// object storage or redis is not configured; dataset reads then degrade to
// an empty feed.
func NewConsoleService(
	assessor *assess.Assessor,
	fetcher DatasetFetcher,
	cache DatasetCache,
	store ReportStore,
	renderer Renderer,
	baseline float64,
	logger *zap.Logger,
) *ConsoleService {
	return &ConsoleService{
		assessor: assessor,
		fetcher:  fetcher,
		cache:    cache,
		store:    store,
		renderer: renderer,
		baseline: baseline,
		logger:   logger,
	}
}

// EvaluateManual classifies a single manually entered reading.
func (s *ConsoleService) EvaluateManual(ctx context.Context, temp, vib, fuel float64) (models.Assessment, error) {
	raw := map[string]float64{
		"Temperature": temp,
		"Vibration":   vib,
		"Fuel":        fuel,
	}
	snap, err := ingest.Normalize(ingest.SourceManual, raw)
	if err != nil {
		return models.Assessment{}, err
	}

	result, err := s.assessor.Classify(snap)
	if err != nil {
		return models.Assessment{}, err
	}

	metrics.EvaluationsTotal.WithLabelValues(string(result.Mode), string(result.Status)).Inc()
	if result.Status == models.StatusCritical {
		metrics.CriticalAlertsTotal.Inc()
	}
	return result, nil
}

// ForecastInput carries the trend request. Explicit readings win over the
// historical dataset; a lone current value falls back to a synthetic ramp.
type ForecastInput struct {
	Current  float64
	Readings []float64
}

// ForecastTrend predicts the next temperature over the model's context
// window and derives the trend label plus the independent critical alert.
func (s *ConsoleService) ForecastTrend(ctx context.Context, input ForecastInput) (models.Assessment, error) {
	window := s.assessor.Window()
	if window == 0 {
		return models.Assessment{}, models.ErrAssessmentUnavailable
	}

	seq, err := s.buildSequence(ctx, input, window)
	if err != nil {
		return models.Assessment{}, err
	}

	result, err := s.assessor.Forecast(seq)
	if err != nil {
		return models.Assessment{}, err
	}

	metrics.EvaluationsTotal.WithLabelValues(string(result.Mode), string(result.Status)).Inc()
	if result.CriticalAlert {
		metrics.CriticalAlertsTotal.Inc()
	}
	return result, nil
}

func (s *ConsoleService) buildSequence(ctx context.Context, input ForecastInput, window int) (models.TelemetrySequence, error) {
	if len(input.Readings) > 0 {
		history := make([]models.TelemetrySnapshot, len(input.Readings))
		for i, v := range input.Readings {
			history[i] = models.TelemetrySnapshot{Temperature: v}
		}
		return ingest.HistoricalSequence(history, window)
	}

	if rows := s.dataset(ctx); len(rows) > 0 {
		history, err := ingest.NormalizeBatch(ingest.SourceBatch, rows)
		if err != nil {
			return models.TelemetrySequence{}, err
		}
		return ingest.HistoricalSequence(history, window)
	}

	return ingest.SyntheticRamp(s.baseline, input.Current, window)
}

// RunAudit scores every row of the historical dataset and aggregates the
// result. ok=false means no data was available; that is a first-class
// outcome, not an error.
func (s *ConsoleService) RunAudit(ctx context.Context) (models.AuditReport, bool, error) {
	rows := s.dataset(ctx)
	if len(rows) == 0 {
		return models.AuditReport{}, false, nil
	}

	snaps, err := ingest.NormalizeBatch(ingest.SourceBatch, rows)
	if err != nil {
		return models.AuditReport{}, false, err
	}

	summary, err := s.assessor.Audit(snaps)
	if err != nil {
		return models.AuditReport{}, false, err
	}

	auditReport, err := report.BuildAudit(summary)
	if err != nil {
		return models.AuditReport{}, false, err
	}

	metrics.AuditRunsTotal.WithLabelValues(auditReport.Verdict).Inc()

	if s.store != nil {
		if err := s.store.SaveAudit(ctx, auditReport); err != nil {
			s.logger.Warn("failed to persist audit report", zap.Error(err))
		}
	}
	return auditReport, true, nil
}

// RecentAudits lists the latest persisted audit runs, newest first.
func (s *ConsoleService) RecentAudits(ctx context.Context, limit int) ([]models.AuditReport, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.GetRecentAudits(ctx, limit)
}

// History returns up to limit normalized rows of the cached dataset for the
// trend chart. An empty result means no data, not an error.
func (s *ConsoleService) History(ctx context.Context, limit int) ([]models.TelemetrySnapshot, error) {
	rows := s.dataset(ctx)
	if len(rows) == 0 {
		return nil, nil
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return ingest.NormalizeBatch(ingest.SourceBatch, rows)
}

// CreateReport assembles and persists an incident report.
func (s *ConsoleService) CreateReport(ctx context.Context, a models.Assessment) (models.IncidentReport, error) {
	incident, err := report.BuildIncident(a)
	if err != nil {
		return models.IncidentReport{}, err
	}
	if s.store != nil {
		if err := s.store.SaveIncident(ctx, incident); err != nil {
			return models.IncidentReport{}, err
		}
	}
	return incident, nil
}

// RenderReport loads a stored incident report and renders the document.
func (s *ConsoleService) RenderReport(ctx context.Context, id string) ([]byte, error) {
	if s.store == nil {
		return nil, errors.New("service: report store not configured")
	}
	incident, err := s.store.GetIncident(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(incident)
}

// dataset returns the historical feed, serving the short-TTL cache first.
// Fetch failures degrade to an empty dataset with a logged warning.
func (s *ConsoleService) dataset(ctx context.Context) []map[string]float64 {
	if s.cache != nil {
		if rows, ok := s.cache.Get(ctx); ok {
			metrics.DatasetCacheHits.Inc()
			return rows
		}
		metrics.DatasetCacheMisses.Inc()
	}

	if s.fetcher == nil {
		return nil
	}

	start := time.Now()
	rows, err := s.fetcher.FetchDataset(ctx)
	metrics.DatasetFetchSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Warn("historical feed unavailable, serving empty dataset", zap.Error(err))
		return nil
	}

	if s.cache != nil {
		s.cache.Set(ctx, rows)
	}
	return rows
}
