package models

import "time"

// Status is the operator-facing verdict of an assessment.
type Status string

const (
	StatusNominal  Status = "NOMINAL"
	StatusCritical Status = "CRITICAL"
	StatusStable   Status = "STABLE"
	StatusRising   Status = "RISING"
)

// Mode selects the assessment strategy.
type Mode string

const (
	ModeClassification Mode = "classification"
	ModeForecast       Mode = "forecast"
)

// Provenance records where a forecast context sequence came from. Synthetic
// sequences are interpolated from a single scalar and carry lower confidence
// than genuine history.
type Provenance string

const (
	ProvenanceHistorical Provenance = "historical"
	ProvenanceSynthetic  Provenance = "synthetic"
)

// Instrument calibration bounds for engine temperature. Readings outside the
// range are accepted but flagged, never rejected.
const (
	MinCalibratedTemp = 80.0
	MaxCalibratedTemp = 150.0
)

// TelemetrySnapshot is one point-in-time sensor sample in canonical form.
type TelemetrySnapshot struct {
	Temperature      float64   `json:"temperature"`
	Vibration        float64   `json:"vibration"`
	FuelPercent      float64   `json:"fuel_percent"`
	Timestamp        time.Time `json:"timestamp,omitempty"`
	OutOfCalibration bool      `json:"out_of_calibration,omitempty"`
}

// TelemetrySequence is a fixed-length temperature history fed to the
// forecaster, most recent value last.
type TelemetrySequence struct {
	Temperatures []float64  `json:"temperatures"`
	Provenance   Provenance `json:"provenance"`
}

// Current returns the most recent value of the sequence.
func (s TelemetrySequence) Current() float64 {
	if len(s.Temperatures) == 0 {
		return 0
	}
	return s.Temperatures[len(s.Temperatures)-1]
}

// Assessment is the output of running a model over a snapshot or sequence.
// Confidence always reflects the displayed verdict: p(critical) when the
// verdict is CRITICAL, 1-p(critical) when it is NOMINAL.
type Assessment struct {
	Mode          Mode               `json:"mode"`
	Status        Status             `json:"status"`
	Confidence    float64            `json:"confidence,omitempty"`
	Predicted     float64            `json:"predicted,omitempty"`
	Current       float64            `json:"current,omitempty"`
	CriticalAlert bool               `json:"critical_alert,omitempty"`
	Provenance    Provenance         `json:"provenance,omitempty"`
	Snapshot      *TelemetrySnapshot `json:"snapshot,omitempty"`
}

// AuditSummary aggregates a batch assessment over historical snapshots.
type AuditSummary struct {
	Total          int     `json:"total"`
	CriticalCount  int     `json:"critical_count"`
	NominalCount   int     `json:"nominal_count"`
	RiskPercentage float64 `json:"risk_percentage"`
}

// NewAuditSummary derives the aggregate counters so the count identity and
// the recomputed risk percentage hold by construction.
func NewAuditSummary(total, critical int) AuditSummary {
	s := AuditSummary{
		Total:         total,
		CriticalCount: critical,
		NominalCount:  total - critical,
	}
	if total > 0 {
		s.RiskPercentage = float64(critical) / float64(total) * 100
	}
	return s
}

// IncidentReport is a rendering-ready record for a single assessment.
type IncidentReport struct {
	ID             string             `json:"id"`
	GeneratedAt    time.Time          `json:"generated_at"`
	Mode           Mode               `json:"mode"`
	Status         Status             `json:"status"`
	Confidence     float64            `json:"confidence,omitempty"`
	Predicted      float64            `json:"predicted,omitempty"`
	Current        float64            `json:"current,omitempty"`
	HorizonSeconds int                `json:"horizon_seconds,omitempty"`
	CriticalAlert  bool               `json:"critical_alert,omitempty"`
	Snapshot       *TelemetrySnapshot `json:"snapshot,omitempty"`
	Action         string             `json:"action"`
}

// AuditReport wraps an AuditSummary with the operator-facing verdict.
type AuditReport struct {
	ID          string       `json:"id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Summary     AuditSummary `json:"summary"`
	Verdict     string       `json:"verdict"`
	Message     string       `json:"message"`
}
