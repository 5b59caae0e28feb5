package assess

import (
	"go.uber.org/zap"

	"aether/backend/services/console-service/internal/artifact"
	"aether/backend/services/console-service/internal/models"
)

// Fixed policy thresholds. Configuration constants, never inferred from data.
const (
	// CriticalTempThreshold escalates any forecast above it to a CRITICAL
	// alert, independent of the trend label.
	CriticalTempThreshold = 120.0

	// ElevatedRiskPercent flags a batch audit. Strictly greater: exactly
	// 5.0 reads as stable.
	ElevatedRiskPercent = 5.0

	// ForecastHorizonSeconds is how far ahead the forecaster looks.
	ForecastHorizonSeconds = 5
)

// Assessor applies the pre-trained artifacts to snapshots and sequences.
// Artifacts are injected explicitly; a nil artifact makes the corresponding
// strategy unavailable rather than silently nominal.
type Assessor struct {
	classifier *artifact.Classifier
	forecaster *artifact.Forecaster
	logger     *zap.Logger
}

// New builds an assessor over the given artifacts. Either artifact may be
// nil when its load failed; calls into that strategy then return
// ErrAssessmentUnavailable.
func New(classifier *artifact.Classifier, forecaster *artifact.Forecaster, logger *zap.Logger) *Assessor {
	return &Assessor{classifier: classifier, forecaster: forecaster, logger: logger}
}

// Window returns the forecaster's expected context length, or 0 when the
// forecaster is unavailable.
func (a *Assessor) Window() int {
	if a.forecaster == nil {
		return 0
	}
	return a.forecaster.Window
}

// Classify runs the binary classifier over one snapshot. Confidence reflects
// the displayed verdict: p(critical) when CRITICAL, 1-p(critical) when
// NOMINAL.
func (a *Assessor) Classify(snap models.TelemetrySnapshot) (models.Assessment, error) {
	if a.classifier == nil {
		return models.Assessment{}, models.ErrAssessmentUnavailable
	}

	label, p := a.classifier.Predict(snap)

	result := models.Assessment{
		Mode:     models.ModeClassification,
		Snapshot: &snap,
	}
	if label == 1 {
		result.Status = models.StatusCritical
		result.Confidence = p
	} else {
		result.Status = models.StatusNominal
		result.Confidence = 1 - p
	}

	return result, nil
}

// Audit applies the classifier row-wise over a historical batch and
// aggregates the counts.
func (a *Assessor) Audit(snaps []models.TelemetrySnapshot) (models.AuditSummary, error) {
	if a.classifier == nil {
		return models.AuditSummary{}, models.ErrAssessmentUnavailable
	}

	critical := 0
	for _, snap := range snaps {
		if label, _ := a.classifier.Predict(snap); label == 1 {
			critical++
		}
	}

	return models.NewAuditSummary(len(snaps), critical), nil
}

// Elevated reports whether an audit crosses the investigation threshold.
func Elevated(summary models.AuditSummary) bool {
	return summary.RiskPercentage > ElevatedRiskPercent
}

// Forecast scales the sequence into the model's training space, predicts the
// next value and inverse-transforms it back to sensor units. The trend label
// is a strict comparison against the current value; equal resolves to
// STABLE. A prediction above CriticalTempThreshold additionally raises a
// CRITICAL alert regardless of the trend label.
func (a *Assessor) Forecast(seq models.TelemetrySequence) (models.Assessment, error) {
	if a.forecaster == nil {
		return models.Assessment{}, models.ErrAssessmentUnavailable
	}

	normalized := a.forecaster.Scaler.Transform(seq.Temperatures)
	predictedNorm, err := a.forecaster.PredictNext(normalized)
	if err != nil {
		return models.Assessment{}, err
	}
	predicted := a.forecaster.Scaler.Inverse(predictedNorm)
	current := seq.Current()

	result := models.Assessment{
		Mode:       models.ModeForecast,
		Predicted:  predicted,
		Current:    current,
		Provenance: seq.Provenance,
	}
	if predicted > current {
		result.Status = models.StatusRising
	} else {
		result.Status = models.StatusStable
	}
	if predicted > CriticalTempThreshold {
		result.CriticalAlert = true
		if a.logger != nil {
			a.logger.Warn("predicted temperature above critical threshold",
				zap.Float64("predicted", predicted),
				zap.Float64("current", current),
				zap.String("provenance", string(seq.Provenance)))
		}
	}

	return result, nil
}
