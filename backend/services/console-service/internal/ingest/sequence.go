package ingest

import (
	"fmt"

	"aether/backend/services/console-service/internal/models"
)

// HistoricalSequence builds a fixed-length forecaster context from genuine
// history, most recent value last. Shorter histories are padded at the front
// by repeating the oldest value; the recent end is never cut.
func HistoricalSequence(history []models.TelemetrySnapshot, window int) (models.TelemetrySequence, error) {
	if window <= 0 {
		return models.TelemetrySequence{}, fmt.Errorf("%w: window must be positive", models.ErrSchemaMismatch)
	}
	if len(history) == 0 {
		return models.TelemetrySequence{}, fmt.Errorf("%w: empty history", models.ErrSchemaMismatch)
	}

	temps := make([]float64, 0, window)
	if len(history) >= window {
		for _, snap := range history[len(history)-window:] {
			temps = append(temps, snap.Temperature)
		}
	} else {
		oldest := history[0].Temperature
		for i := 0; i < window-len(history); i++ {
			temps = append(temps, oldest)
		}
		for _, snap := range history {
			temps = append(temps, snap.Temperature)
		}
	}

	return models.TelemetrySequence{
		Temperatures: temps,
		Provenance:   models.ProvenanceHistorical,
	}, nil
}

// SyntheticRamp interpolates a linear ramp from a baseline to the target
// value when only a single current reading exists. The result is tagged so
// downstream consumers can tell it apart from genuine history.
func SyntheticRamp(baseline, target float64, window int) (models.TelemetrySequence, error) {
	if window <= 0 {
		return models.TelemetrySequence{}, fmt.Errorf("%w: window must be positive", models.ErrSchemaMismatch)
	}

	temps := make([]float64, window)
	if window == 1 {
		temps[0] = target
	} else {
		step := (target - baseline) / float64(window-1)
		for i := range temps {
			temps[i] = baseline + step*float64(i)
		}
		temps[window-1] = target
	}

	return models.TelemetrySequence{
		Temperatures: temps,
		Provenance:   models.ProvenanceSynthetic,
	}, nil
}
