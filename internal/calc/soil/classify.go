package soil

import "fmt"

type USCSInput struct {
	LiquidLimit     float64 `json:"liquid_limit"`
	PlasticLimit    float64 `json:"plastic_limit"`
	PlasticityIndex float64 `json:"plasticity_index"`
	Fines           float64 `json:"fines"`
	Sand            float64 `json:"sand"`
	Gravel          float64 `json:"gravel"`
	D10MM           float64 `json:"d10_mm"`
	D30MM           float64 `json:"d30_mm"`
	D60MM           float64 `json:"d60_mm"`
	Organic         bool    `json:"organic"`
}

type USCSResult struct {
	Classification string  `json:"classification"`
	ALine          float64 `json:"a_line"`
	AboveALine     bool    `json:"above_a_line"`
	Notes          string  `json:"notes"`
}

type AASHTOInput struct {
	LiquidLimit     float64 `json:"liquid_limit"`
	PlasticityIndex float64 `json:"plasticity_index"`
	Fines           float64 `json:"fines"`
}

type AASHTOResult struct {
	Classification string  `json:"classification"`
	GroupIndex     float64 `json:"group_index"`
	Notes          string  `json:"notes"`
}

// ClassifyUSCS validates the sample and runs the USCS decision chart.
func ClassifyUSCS(in USCSInput) (USCSResult, error) {
	if err := checkPercent("fines", in.Fines); err != nil {
		return USCSResult{}, err
	}
	if err := checkPercent("sand", in.Sand); err != nil {
		return USCSResult{}, err
	}
	if err := checkPercent("gravel", in.Gravel); err != nil {
		return USCSResult{}, err
	}

	atterberg, err := NewAtterbergLimits(in.LiquidLimit, in.PlasticLimit, in.PlasticityIndex)
	if err != nil {
		return USCSResult{}, err
	}
	psd, err := NewPSD(in.Fines, in.Sand, in.Gravel, in.D10MM, in.D30MM, in.D60MM)
	if err != nil {
		return USCSResult{}, err
	}

	clf, err := NewUSCS(atterberg, psd, in.Organic).Classify()
	if err != nil {
		return USCSResult{}, err
	}
	return USCSResult{
		Classification: clf,
		ALine:          atterberg.ALine(),
		AboveALine:     atterberg.AboveALine(),
		Notes:          "USCS group symbol per the Casagrande plasticity chart.",
	}, nil
}

// ClassifyAASHTO validates the sample and runs the AASHTO decision tree.
func ClassifyAASHTO(in AASHTOInput) (AASHTOResult, error) {
	if err := checkPercent("fines", in.Fines); err != nil {
		return AASHTOResult{}, err
	}
	aashto := NewAASHTO(in.LiquidLimit, in.PlasticityIndex, in.Fines)
	return AASHTOResult{
		Classification: aashto.Classify(),
		GroupIndex:     aashto.GroupIndex(),
		Notes:          "AASHTO group with group index in parentheses.",
	}, nil
}

func checkPercent(name string, v float64) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%s must be between 0 and 100, got %.2f", name, v)
	}
	return nil
}
