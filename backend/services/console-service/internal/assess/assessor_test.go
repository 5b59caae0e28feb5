package assess

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"aether/backend/services/console-service/internal/artifact"
	"aether/backend/services/console-service/internal/models"
)

// tempThresholdClassifier marks any snapshot above the given temperature
// critical: p = sigmoid(temp - cutoff).
func tempThresholdClassifier(cutoff float64) *artifact.Classifier {
	return &artifact.Classifier{TemperatureWeight: 1, Intercept: -cutoff, Threshold: 0.5}
}

// fixedForecaster always predicts the given value in sensor units.
func fixedForecaster(window int, value float64) *artifact.Forecaster {
	scaler := artifact.Scaler{Min: 80, Max: 150}
	return &artifact.Forecaster{
		Scaler:  scaler,
		Weights: make([]float64, window),
		Bias:    (value - scaler.Min) / (scaler.Max - scaler.Min),
		Window:  window,
	}
}

func seq(provenance models.Provenance, temps ...float64) models.TelemetrySequence {
	return models.TelemetrySequence{Temperatures: temps, Provenance: provenance}
}

func TestClassifyConfidenceFollowsDisplayedVerdict(t *testing.T) {
	a := New(&artifact.Classifier{
		TemperatureWeight: 0.1,
		VibrationWeight:   0.05,
		FuelWeight:        -0.02,
		Intercept:         -14.1077,
		Threshold:         0.5,
	}, nil, zap.NewNop())

	critical, err := a.Classify(models.TelemetrySnapshot{Temperature: 135, Vibration: 65, FuelPercent: 10})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if critical.Status != models.StatusCritical {
		t.Fatalf("expected CRITICAL, got %s", critical.Status)
	}
	if math.Abs(critical.Confidence-0.92) > 0.005 {
		t.Fatalf("critical confidence should be p(critical) about 0.92, got %f", critical.Confidence)
	}

	nominal, err := a.Classify(models.TelemetrySnapshot{Temperature: 100, Vibration: 50, FuelPercent: 75})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if nominal.Status != models.StatusNominal {
		t.Fatalf("expected NOMINAL, got %s", nominal.Status)
	}
	// Confidence in the displayed verdict: 1-p, never the raw critical
	// probability.
	if nominal.Confidence < 0.5 {
		t.Fatalf("nominal confidence must reflect the nominal verdict, got %f", nominal.Confidence)
	}
}

func TestClassifyUnavailableWithoutArtifact(t *testing.T) {
	a := New(nil, nil, zap.NewNop())

	if _, err := a.Classify(models.TelemetrySnapshot{}); !errors.Is(err, models.ErrAssessmentUnavailable) {
		t.Fatalf("expected ErrAssessmentUnavailable, got %v", err)
	}
	if _, err := a.Audit(nil); !errors.Is(err, models.ErrAssessmentUnavailable) {
		t.Fatalf("expected ErrAssessmentUnavailable for audit, got %v", err)
	}
	if _, err := a.Forecast(seq(models.ProvenanceHistorical, 100)); !errors.Is(err, models.ErrAssessmentUnavailable) {
		t.Fatalf("expected ErrAssessmentUnavailable for forecast, got %v", err)
	}
}

func TestAuditCountsAndIdentity(t *testing.T) {
	a := New(tempThresholdClassifier(130), nil, zap.NewNop())

	snaps := make([]models.TelemetrySnapshot, 0, 20)
	for i := 0; i < 17; i++ {
		snaps = append(snaps, models.TelemetrySnapshot{Temperature: 100})
	}
	for i := 0; i < 3; i++ {
		snaps = append(snaps, models.TelemetrySnapshot{Temperature: 140})
	}

	summary, err := a.Audit(snaps)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if summary.Total != 20 || summary.CriticalCount != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.CriticalCount+summary.NominalCount != summary.Total {
		t.Fatalf("count identity broken: %+v", summary)
	}
	if math.Abs(summary.RiskPercentage-15.0) > 1e-9 {
		t.Fatalf("expected 15%% risk, got %f", summary.RiskPercentage)
	}
}

func TestElevatedBoundaryIsStrict(t *testing.T) {
	// Exactly 5.0% resolves to stable; only strictly greater is elevated.
	atBoundary := models.NewAuditSummary(20, 1)
	if atBoundary.RiskPercentage != 5.0 {
		t.Fatalf("fixture broken: got %f", atBoundary.RiskPercentage)
	}
	if Elevated(atBoundary) {
		t.Fatalf("exactly 5.0%% must read as stable")
	}

	above := models.NewAuditSummary(20, 2)
	if !Elevated(above) {
		t.Fatalf("10%% must read as elevated")
	}
}

func TestForecastRisingIsStrictComparison(t *testing.T) {
	a := New(nil, fixedForecaster(4, 100), nil)

	equal, err := a.Forecast(seq(models.ProvenanceHistorical, 100, 100, 100, 100))
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if equal.Status != models.StatusStable {
		t.Fatalf("equal prediction must resolve to STABLE, got %s", equal.Status)
	}

	below := New(nil, fixedForecaster(4, 99), nil)
	falling, err := below.Forecast(seq(models.ProvenanceHistorical, 100, 100, 100, 100))
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if falling.Status != models.StatusStable {
		t.Fatalf("falling prediction must resolve to STABLE, got %s", falling.Status)
	}

	rising := New(nil, fixedForecaster(4, 101), nil)
	up, err := rising.Forecast(seq(models.ProvenanceHistorical, 100, 100, 100, 100))
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if up.Status != models.StatusRising {
		t.Fatalf("expected RISING, got %s", up.Status)
	}
}

func TestForecastCriticalAlertIndependentOfTrend(t *testing.T) {
	// STABLE trend, prediction above 120: the alert must still fire.
	a := New(nil, fixedForecaster(4, 125.3), zap.NewNop())

	stable, err := a.Forecast(seq(models.ProvenanceHistorical, 126, 126, 126, 126))
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if stable.Status != models.StatusStable {
		t.Fatalf("expected STABLE, got %s", stable.Status)
	}
	if !stable.CriticalAlert {
		t.Fatalf("critical alert must fire regardless of trend label")
	}
}

func TestForecastRisingWithCriticalAlert(t *testing.T) {
	// 118.0 current, 125.3 predicted: RISING and the alert, simultaneously.
	a := New(nil, fixedForecaster(4, 125.3), zap.NewNop())

	result, err := a.Forecast(seq(models.ProvenanceSynthetic, 118, 118, 118, 118))
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if result.Status != models.StatusRising {
		t.Fatalf("expected RISING, got %s", result.Status)
	}
	if !result.CriticalAlert {
		t.Fatalf("prediction of 125.3 must raise the critical alert")
	}
	if math.Abs(result.Predicted-125.3) > 1e-9 {
		t.Fatalf("expected 125.3, got %f", result.Predicted)
	}
	if result.Provenance != models.ProvenanceSynthetic {
		t.Fatalf("provenance must carry through, got %s", result.Provenance)
	}
}

func TestForecastNoAlertAtThreshold(t *testing.T) {
	// Exactly 120.0 does not breach: the check is strictly greater.
	a := New(nil, fixedForecaster(4, 120.0), zap.NewNop())

	result, err := a.Forecast(seq(models.ProvenanceHistorical, 119, 119, 119, 119))
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if result.CriticalAlert {
		t.Fatalf("exactly 120.0 must not raise the alert")
	}
	if result.Status != models.StatusRising {
		t.Fatalf("expected RISING, got %s", result.Status)
	}
}

// The trend label compares one predicted point against one current point.
// With a noisy feed that flips easily around equality; pinned here as
// observed behavior, not smoothed.
func TestForecastSingleSampleComparisonIsNoiseSensitive(t *testing.T) {
	a := New(nil, fixedForecaster(4, 100.001), nil)

	result, err := a.Forecast(seq(models.ProvenanceHistorical, 100, 100, 100, 100))
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if result.Status != models.StatusRising {
		t.Fatalf("a 0.001 excursion already flips the label, got %s", result.Status)
	}
}
