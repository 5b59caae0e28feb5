package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"aether/backend/services/console-service/internal/models"
)

// PDFRenderer turns an incident report into a downloadable PDF document.
// Page layout and colors live here, not in the evaluator.
type PDFRenderer struct{}

// NewPDFRenderer returns the renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the document bytes for one incident report.
func (p *PDFRenderer) Render(r models.IncidentReport) ([]byte, error) {
	if r.ID == "" {
		return nil, fmt.Errorf("%w: report has no id", models.ErrInvalidReportInput)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "AETHER SYSTEM - INCIDENT REPORT", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Report Generated: %s", r.GeneratedAt.Format("2006-01-02 15:04:05")), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Report ID: %s", r.ID), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.CellFormat(0, 10, "SENSOR READINGS:", "", 1, "L", false, 0, "")
	if r.Snapshot != nil {
		pdf.CellFormat(0, 10, fmt.Sprintf("Engine Temperature: %.1f C", r.Snapshot.Temperature), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Vibration Freq: %.1f Hz", r.Snapshot.Vibration), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Fuel Level: %.1f %%", r.Snapshot.FuelPercent), "", 1, "L", false, 0, "")
	}
	if r.Mode == models.ModeForecast {
		pdf.CellFormat(0, 10, fmt.Sprintf("Live Temperature: %.1f C", r.Current), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Predicted Temperature (+%ds): %.1f C", r.HorizonSeconds, r.Predicted), "", 1, "L", false, 0, "")
	}
	pdf.Ln(10)

	pdf.CellFormat(0, 10, "AI ANALYSIS:", "", 1, "L", false, 0, "")
	if r.Status == models.StatusCritical || r.CriticalAlert {
		pdf.SetTextColor(255, 0, 0)
		pdf.CellFormat(0, 10, "STATUS: CRITICAL FAILURE DETECTED", "", 1, "L", false, 0, "")
	} else {
		pdf.SetTextColor(0, 128, 0)
		pdf.CellFormat(0, 10, fmt.Sprintf("STATUS: %s", r.Status), "", 1, "L", false, 0, "")
	}
	if r.Mode == models.ModeClassification {
		pdf.CellFormat(0, 10, fmt.Sprintf("Confidence: %.1f%%", r.Confidence*100), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 10, fmt.Sprintf("ACTION: %s.", r.Action), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
