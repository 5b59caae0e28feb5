package artifact

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"aether/backend/services/console-service/internal/models"
)

// Classifier is a pre-trained binary logistic model over the three canonical
// sensor features. Loaded once at startup and read-only afterwards.
type Classifier struct {
	TemperatureWeight float64 `json:"temperature_weight"`
	VibrationWeight   float64 `json:"vibration_weight"`
	FuelWeight        float64 `json:"fuel_weight"`
	Intercept         float64 `json:"intercept"`
	Threshold         float64 `json:"threshold"`
}

// LoadClassifier reads the classifier artifact from disk.
func LoadClassifier(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: classifier artifact: %v", models.ErrAssessmentUnavailable, err)
	}

	var c Classifier
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: classifier artifact: %v", models.ErrAssessmentUnavailable, err)
	}
	if c.Threshold <= 0 || c.Threshold >= 1 {
		return nil, fmt.Errorf("%w: classifier threshold %.3f out of (0,1)", models.ErrAssessmentUnavailable, c.Threshold)
	}

	return &c, nil
}

// Predict returns the class label (0 nominal, 1 critical) and the raw
// probability of the critical class.
func (c *Classifier) Predict(snap models.TelemetrySnapshot) (int, float64) {
	z := c.TemperatureWeight*snap.Temperature +
		c.VibrationWeight*snap.Vibration +
		c.FuelWeight*snap.FuelPercent +
		c.Intercept
	p := 1 / (1 + math.Exp(-z))

	if p > c.Threshold {
		return 1, p
	}
	return 0, p
}
