package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"aether/backend/services/console-service/internal/models"
)

// Scaler is a min-max scaler fitted at training time. It is reused verbatim
// at inference and never refit, so normalization stays stable across calls.
type Scaler struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Transform maps sensor units into the model's [0,1] training space.
func (s Scaler) Transform(seq []float64) []float64 {
	span := s.Max - s.Min
	out := make([]float64, len(seq))
	for i, v := range seq {
		out[i] = (v - s.Min) / span
	}
	return out
}

// Inverse maps a normalized value back into sensor units.
func (s Scaler) Inverse(v float64) float64 {
	return v*(s.Max-s.Min) + s.Min
}

// Forecaster is a pre-trained sequence model: a weight per step of the
// normalized context window plus a bias, exported from training.
type Forecaster struct {
	Scaler  Scaler    `json:"scaler"`
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	Window  int       `json:"window"`
}

// LoadForecaster reads the forecaster artifact pair (model + scaler) from
// disk and validates its shape.
func LoadForecaster(path string) (*Forecaster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: forecaster artifact: %v", models.ErrAssessmentUnavailable, err)
	}

	var f Forecaster
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: forecaster artifact: %v", models.ErrAssessmentUnavailable, err)
	}
	if f.Window <= 0 {
		return nil, fmt.Errorf("%w: forecaster window %d", models.ErrAssessmentUnavailable, f.Window)
	}
	if len(f.Weights) != f.Window {
		return nil, fmt.Errorf("%w: forecaster has %d weights for window %d", models.ErrAssessmentUnavailable, len(f.Weights), f.Window)
	}
	if f.Scaler.Max <= f.Scaler.Min {
		return nil, fmt.Errorf("%w: scaler range [%.2f, %.2f]", models.ErrAssessmentUnavailable, f.Scaler.Min, f.Scaler.Max)
	}

	return &f, nil
}

// PredictNext runs the normalized context window through the model and
// returns the normalized next value.
func (f *Forecaster) PredictNext(normalized []float64) (float64, error) {
	if len(normalized) != f.Window {
		return 0, fmt.Errorf("%w: sequence length %d, expected %d", models.ErrSchemaMismatch, len(normalized), f.Window)
	}

	v := f.Bias
	for i, w := range f.Weights {
		v += w * normalized[i]
	}
	return v, nil
}
