package ingest

import (
	"fmt"
	"time"

	"aether/backend/services/console-service/internal/models"
)

// Source identifies where a raw reading came from. Each source carries its
// own column naming convention.
type Source string

const (
	SourceManual Source = "manual"
	SourceBatch  Source = "batch"
	SourceFeed   Source = "feed"
)

// Canonical field names.
const (
	FieldTemperature = "temperature"
	FieldVibration   = "vibration"
	FieldFuelPercent = "fuel_percent"
)

// fieldMaps translates canonical field names to the column names each source
// uses. Kept as one explicit table instead of string matching at call sites.
var fieldMaps = map[Source]map[string]string{
	SourceManual: {
		FieldTemperature: "Temperature",
		FieldVibration:   "Vibration",
		FieldFuelPercent: "Fuel",
	},
	SourceBatch: {
		FieldTemperature: "Temperature_C",
		FieldVibration:   "Vibration_Hz",
		FieldFuelPercent: "Fuel_Level_%",
	},
	SourceFeed: {
		FieldTemperature: "temp_c",
		FieldVibration:   "vib_hz",
		FieldFuelPercent: "fuel_pct",
	},
}

// Normalize maps one raw row of named fields onto the canonical snapshot
// schema. Missing or unmappable fields abort with ErrSchemaMismatch; nothing
// is ever substituted with a default. Out-of-calibration temperatures are
// accepted and flagged.
func Normalize(source Source, row map[string]float64) (models.TelemetrySnapshot, error) {
	mapping, ok := fieldMaps[source]
	if !ok {
		return models.TelemetrySnapshot{}, fmt.Errorf("%w: unknown source %q", models.ErrSchemaMismatch, source)
	}

	values := make(map[string]float64, len(mapping))
	for canonical, column := range mapping {
		v, ok := row[column]
		if !ok {
			return models.TelemetrySnapshot{}, fmt.Errorf("%w: source %q is missing column %q", models.ErrSchemaMismatch, source, column)
		}
		values[canonical] = v
	}

	snap := models.TelemetrySnapshot{
		Temperature: values[FieldTemperature],
		Vibration:   values[FieldVibration],
		FuelPercent: values[FieldFuelPercent],
		Timestamp:   time.Now().UTC(),
	}
	snap.OutOfCalibration = snap.Temperature < models.MinCalibratedTemp || snap.Temperature > models.MaxCalibratedTemp

	return snap, nil
}

// NormalizeBatch maps every row of a historical batch. The first mismatched
// row fails the whole batch.
func NormalizeBatch(source Source, rows []map[string]float64) ([]models.TelemetrySnapshot, error) {
	snaps := make([]models.TelemetrySnapshot, 0, len(rows))
	for i, row := range rows {
		snap, err := Normalize(source, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
