package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	soil "Stratum/internal/calc/soil"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string           `json:"project"`
	Author  string           `json:"author"`
	Title   string           `json:"title"`
	Samples []soil.USCSInput `json:"samples"`
}

type Handler struct{}

// Generate renders a PDF borehole classification report: one line per
// sample with its USCS and AASHTO results.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Soil Classification Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(20, 7, "Sample")
	pdf.Cell(25, 7, "LL (%)")
	pdf.Cell(25, 7, "PI (%)")
	pdf.Cell(25, 7, "Fines (%)")
	pdf.Cell(50, 7, "USCS")
	pdf.Cell(40, 7, "AASHTO")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, sample := range input.Samples {
		uscs, err := soil.ClassifyUSCS(sample)
		if err != nil {
			http.Error(w, fmt.Sprintf("sample %d: %v", i+1, err), http.StatusBadRequest)
			return
		}
		aashto, err := soil.ClassifyAASHTO(soil.AASHTOInput{
			LiquidLimit:     sample.LiquidLimit,
			PlasticityIndex: sample.PlasticityIndex,
			Fines:           sample.Fines,
		})
		if err != nil {
			http.Error(w, fmt.Sprintf("sample %d: %v", i+1, err), http.StatusBadRequest)
			return
		}

		pdf.Cell(20, 7, fmt.Sprintf("%d", i+1))
		pdf.Cell(25, 7, fmt.Sprintf("%.1f", sample.LiquidLimit))
		pdf.Cell(25, 7, fmt.Sprintf("%.1f", sample.PlasticityIndex))
		pdf.Cell(25, 7, fmt.Sprintf("%.1f", sample.Fines))
		pdf.Cell(50, 7, uscs.Classification)
		pdf.Cell(40, 7, aashto.Classification)
		pdf.Ln(7)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"classification-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
