package batch

import (
	"fmt"

	soil "Stratum/internal/calc/soil"
)

type ClassifyBatchInput struct {
	Items []soil.USCSInput `json:"items"`
}

type SampleResult struct {
	USCS       string  `json:"uscs"`
	AASHTO     string  `json:"aashto"`
	GroupIndex float64 `json:"group_index"`
}

type ClassifyBatchResult struct {
	Results []SampleResult `json:"results"`
}

// Classify runs both classifiers over every sample in one request.
func Classify(in ClassifyBatchInput) (ClassifyBatchResult, error) {
	if len(in.Items) == 0 {
		return ClassifyBatchResult{}, fmt.Errorf("no items")
	}
	out := ClassifyBatchResult{Results: make([]SampleResult, 0, len(in.Items))}
	for _, item := range in.Items {
		uscs, err := soil.ClassifyUSCS(item)
		if err != nil {
			return ClassifyBatchResult{}, err
		}
		aashto, err := soil.ClassifyAASHTO(soil.AASHTOInput{
			LiquidLimit:     item.LiquidLimit,
			PlasticityIndex: item.PlasticityIndex,
			Fines:           item.Fines,
		})
		if err != nil {
			return ClassifyBatchResult{}, err
		}
		out.Results = append(out.Results, SampleResult{
			USCS:       uscs.Classification,
			AASHTO:     aashto.Classification,
			GroupIndex: aashto.GroupIndex,
		})
	}
	return out, nil
}
