package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	batch "Stratum/internal/calc/premium/batch"
	soil "Stratum/internal/calc/soil"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                  `json:"count"`
	Skipped int                  `json:"skipped"`
	Results []batch.SampleResult `json:"results"`
}

// Samples imports a borehole log spreadsheet and classifies every row.
// Expected columns: liquid limit, plastic limit, plasticity index, fines,
// sand, gravel, then optional d10, d30, d60 (mm) and an organic flag.
func (h *Handler) Samples(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var out ImportResult
	for i := 1; i < len(rows); i++ {
		input, err := parseSampleRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		uscs, err := soil.ClassifyUSCS(input)
		if err != nil {
			out.Skipped++
			continue
		}
		aashto, err := soil.ClassifyAASHTO(soil.AASHTOInput{
			LiquidLimit:     input.LiquidLimit,
			PlasticityIndex: input.PlasticityIndex,
			Fines:           input.Fines,
		})
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, batch.SampleResult{
			USCS:       uscs.Classification,
			AASHTO:     aashto.Classification,
			GroupIndex: aashto.GroupIndex,
		})
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func parseSampleRow(row []string) (soil.USCSInput, error) {
	if len(row) < 6 {
		return soil.USCSInput{}, fmt.Errorf("bad row")
	}
	var in soil.USCSInput
	var err error
	if in.LiquidLimit, err = toFloat(row[0]); err != nil {
		return soil.USCSInput{}, err
	}
	if in.PlasticLimit, err = toFloat(row[1]); err != nil {
		return soil.USCSInput{}, err
	}
	if in.PlasticityIndex, err = toFloat(row[2]); err != nil {
		return soil.USCSInput{}, err
	}
	if in.Fines, err = toFloat(row[3]); err != nil {
		return soil.USCSInput{}, err
	}
	if in.Sand, err = toFloat(row[4]); err != nil {
		return soil.USCSInput{}, err
	}
	if in.Gravel, err = toFloat(row[5]); err != nil {
		return soil.USCSInput{}, err
	}
	if len(row) > 6 && row[6] != "" {
		in.D10MM, _ = toFloat(row[6])
	}
	if len(row) > 7 && row[7] != "" {
		in.D30MM, _ = toFloat(row[7])
	}
	if len(row) > 8 && row[8] != "" {
		in.D60MM, _ = toFloat(row[8])
	}
	if len(row) > 9 {
		flag := strings.ToLower(strings.TrimSpace(row[9]))
		in.Organic = flag == "yes" || flag == "true" || flag == "1"
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(strings.TrimSpace(s), "%f", &v)
	return v, err
}
