package models

import "errors"

// Error taxonomy shared across ingestion, assessment and reporting.
var (
	// ErrSchemaMismatch means raw fields could not be mapped onto the
	// canonical schema. Surfaced to the caller, never defaulted over.
	ErrSchemaMismatch = errors.New("telemetry: schema mismatch")

	// ErrAssessmentUnavailable means a model or scaler artifact is not
	// loaded. An unavailable assessor must never read as NOMINAL.
	ErrAssessmentUnavailable = errors.New("telemetry: assessment unavailable")

	// ErrDataSourceUnavailable means the object-storage fetch failed. The
	// only condition allowed to degrade to an empty dataset.
	ErrDataSourceUnavailable = errors.New("telemetry: data source unavailable")

	// ErrInvalidReportInput means a malformed assessment reached report
	// assembly. Programming error in the caller.
	ErrInvalidReportInput = errors.New("telemetry: invalid report input")
)
