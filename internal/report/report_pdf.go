// Package report renders countdown history as a PDF.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/timer"
)

// Summary aggregates a set of countdowns.
type Summary struct {
	Total     int
	Expired   int
	Cancelled int
	Counted   time.Duration
}

// Summarize totals countdowns by outcome and time counted down.
func Summarize(countdowns []models.Countdown) Summary {
	var s Summary
	for _, c := range countdowns {
		s.Total++
		switch c.Outcome {
		case models.OutcomeExpired:
			s.Expired++
		case models.OutcomeCancelled:
			s.Cancelled++
		}
		s.Counted += c.Elapsed()
	}
	return s
}

// WritePDF renders countdowns (most recent first) to w.
func WritePDF(w io.Writer, countdowns []models.Countdown, generated time.Time) error {
	if err := build(countdowns, generated).Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// WritePDFFile renders the report to path.
func WritePDFFile(path string, countdowns []models.Countdown, generated time.Time) error {
	if err := build(countdowns, generated).OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

func build(countdowns []models.Countdown, generated time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Countdown History")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", generated.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	if len(countdowns) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "No countdowns recorded.")
		pdf.Ln(8)
	} else {
		writeTable(pdf, countdowns)
	}

	sum := Summarize(countdowns)
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %d  Expired: %d  Cancelled: %d", sum.Total, sum.Expired, sum.Cancelled))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Time counted down: %s", timer.Format(int(sum.Counted.Seconds()))))
	pdf.Ln(6)
	return pdf
}

var columns = []struct {
	title string
	width float64
}{
	{"Started", 45},
	{"Duration", 30},
	{"Counted", 30},
	{"Remaining", 30},
	{"Outcome", 35},
}

func writeTable(pdf *fpdf.Fpdf, countdowns []models.Countdown) {
	pdf.SetFont("Arial", "B", 11)
	for _, col := range columns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, c := range countdowns {
		cells := []string{
			c.StartedAt.Local().Format("2006-01-02 15:04:05"),
			timer.Format(c.Seconds),
			timer.Format(int(c.Elapsed().Seconds())),
			timer.Format(c.Remaining),
			string(c.Outcome),
		}
		for i, col := range columns {
			pdf.CellFormat(col.width, 7, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
