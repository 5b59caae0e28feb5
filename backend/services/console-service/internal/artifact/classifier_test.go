package artifact

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"aether/backend/services/console-service/internal/models"
)

// Reference weights: match the shipped artifact so the documented scenario
// (temp=135, vib=65, fuel=10 => critical at ~92%) holds.
func referenceClassifier() *Classifier {
	return &Classifier{
		TemperatureWeight: 0.1,
		VibrationWeight:   0.05,
		FuelWeight:        -0.02,
		Intercept:         -14.1077,
		Threshold:         0.5,
	}
}

func TestClassifierCriticalScenario(t *testing.T) {
	c := referenceClassifier()

	label, p := c.Predict(models.TelemetrySnapshot{Temperature: 135, Vibration: 65, FuelPercent: 10})
	if label != 1 {
		t.Fatalf("expected critical label, got %d (p=%f)", label, p)
	}
	if math.Abs(p-0.92) > 0.005 {
		t.Fatalf("expected p(critical) about 0.92, got %f", p)
	}
}

func TestClassifierNominalScenario(t *testing.T) {
	c := referenceClassifier()

	label, p := c.Predict(models.TelemetrySnapshot{Temperature: 100, Vibration: 50, FuelPercent: 75})
	if label != 0 {
		t.Fatalf("expected nominal label, got %d (p=%f)", label, p)
	}
	if p >= 0.5 {
		t.Fatalf("nominal reading should have low critical probability, got %f", p)
	}
}

func TestLoadClassifierRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.json")
	payload := `{"temperature_weight":0.1,"vibration_weight":0.05,"fuel_weight":-0.02,"intercept":-14.1077,"threshold":0.5}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	c, err := LoadClassifier(path)
	if err != nil {
		t.Fatalf("load classifier: %v", err)
	}
	if c.Threshold != 0.5 || c.TemperatureWeight != 0.1 {
		t.Fatalf("unexpected artifact: %+v", c)
	}
}

func TestLoadClassifierMissingFile(t *testing.T) {
	_, err := LoadClassifier(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, models.ErrAssessmentUnavailable) {
		t.Fatalf("expected ErrAssessmentUnavailable, got %v", err)
	}
}

func TestLoadClassifierRejectsBadThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.json")
	payload := `{"temperature_weight":0.1,"threshold":1.5}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	if _, err := LoadClassifier(path); !errors.Is(err, models.ErrAssessmentUnavailable) {
		t.Fatalf("expected ErrAssessmentUnavailable, got %v", err)
	}
}
