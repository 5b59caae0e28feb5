package ingest

import (
	"errors"
	"testing"

	"aether/backend/services/console-service/internal/models"
)

func TestNormalizeManualSource(t *testing.T) {
	row := map[string]float64{
		"Temperature": 100.0,
		"Vibration":   50.0,
		"Fuel":        75.0,
	}

	snap, err := Normalize(SourceManual, row)
	if err != nil {
		t.Fatalf("normalize manual: %v", err)
	}
	if snap.Temperature != 100.0 || snap.Vibration != 50.0 || snap.FuelPercent != 75.0 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.OutOfCalibration {
		t.Fatalf("100.0 C should be within calibration range")
	}
}

func TestNormalizeBatchSourceColumnNames(t *testing.T) {
	row := map[string]float64{
		"Temperature_C": 135.0,
		"Vibration_Hz":  65.0,
		"Fuel_Level_%":  10.0,
	}

	snap, err := Normalize(SourceBatch, row)
	if err != nil {
		t.Fatalf("normalize batch: %v", err)
	}
	if snap.Temperature != 135.0 {
		t.Fatalf("expected 135.0, got %f", snap.Temperature)
	}
}

func TestNormalizeMissingFieldFailsWithSchemaMismatch(t *testing.T) {
	row := map[string]float64{
		"Temperature": 100.0,
		"Vibration":   50.0,
		// Fuel missing: must abort, never default.
	}

	_, err := Normalize(SourceManual, row)
	if !errors.Is(err, models.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestNormalizeWrongSourceNamingFails(t *testing.T) {
	// Batch column names offered to the manual mapping must not pass.
	row := map[string]float64{
		"Temperature_C": 100.0,
		"Vibration_Hz":  50.0,
		"Fuel_Level_%":  75.0,
	}

	if _, err := Normalize(SourceManual, row); !errors.Is(err, models.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestNormalizeUnknownSource(t *testing.T) {
	if _, err := Normalize(Source("satellite"), map[string]float64{}); !errors.Is(err, models.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch for unknown source, got %v", err)
	}
}

func TestNormalizeFlagsOutOfCalibration(t *testing.T) {
	for _, temp := range []float64{79.9, 150.1, 200.0} {
		row := map[string]float64{"Temperature": temp, "Vibration": 50.0, "Fuel": 75.0}
		snap, err := Normalize(SourceManual, row)
		if err != nil {
			t.Fatalf("out-of-range reading must be accepted, got %v", err)
		}
		if !snap.OutOfCalibration {
			t.Fatalf("temp %f should be flagged out of calibration", temp)
		}
	}

	for _, temp := range []float64{80.0, 150.0, 115.0} {
		row := map[string]float64{"Temperature": temp, "Vibration": 50.0, "Fuel": 75.0}
		snap, err := Normalize(SourceManual, row)
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}
		if snap.OutOfCalibration {
			t.Fatalf("temp %f should be within calibration", temp)
		}
	}
}

func TestNormalizeBatchFailsOnFirstBadRow(t *testing.T) {
	rows := []map[string]float64{
		{"Temperature_C": 100.0, "Vibration_Hz": 50.0, "Fuel_Level_%": 75.0},
		{"Temperature_C": 101.0, "Vibration_Hz": 51.0},
	}

	if _, err := NormalizeBatch(SourceBatch, rows); !errors.Is(err, models.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
