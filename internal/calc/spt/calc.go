// Package spt corrects recorded SPT N-values for field procedures,
// dilatancy and effective overburden pressure.
package spt

import (
	"fmt"
	"math"
)

// Method selects the overburden pressure correction.
type Method string

const (
	MethodGibbs    Method = "GIBBS"
	MethodBazaraa  Method = "BAZARAA"
	MethodPeck     Method = "PECK"
	MethodLiao     Method = "LIAO"
	MethodSkempton Method = "SKEMPTON"
)

type Input struct {
	RecordedN            float64 `json:"recorded_n"`
	HammerEfficiency     float64 `json:"hammer_efficiency"`
	BoreholeDiameterCorr float64 `json:"borehole_diameter_correction"`
	SamplerCorr          float64 `json:"sampler_correction"`
	RodLengthCorr        float64 `json:"rod_length_correction"`
	EOPKPa               float64 `json:"eop_kpa"`
	Method               Method  `json:"method"`
}

type Result struct {
	N60                  float64 `json:"n60"`
	DilatancyCorrectedN  float64 `json:"dilatancy_corrected_n"`
	OverburdenCorrectedN float64 `json:"overburden_corrected_n"`
	MethodUsed           Method  `json:"method_used"`
	Notes                string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.RecordedN <= 0 {
		return Result{}, fmt.Errorf("invalid recorded N-value")
	}
	if in.HammerEfficiency <= 0 {
		in.HammerEfficiency = 0.6
	}
	if in.BoreholeDiameterCorr <= 0 {
		in.BoreholeDiameterCorr = 1.0
	}
	if in.SamplerCorr <= 0 {
		in.SamplerCorr = 1.0
	}
	if in.RodLengthCorr <= 0 {
		in.RodLengthCorr = 0.75
	}
	if in.Method == "" {
		in.Method = MethodSkempton
	}

	// N60 per Skempton (1986): energy and geometry factors over 0.6.
	n60 := in.HammerEfficiency * in.BoreholeDiameterCorr * in.SamplerCorr *
		in.RodLengthCorr * in.RecordedN / 0.6

	opc, err := overburdenCorrection(in.Method, n60, in.EOPKPa)
	if err != nil {
		return Result{}, err
	}

	return Result{
		N60:                  n60,
		DilatancyCorrectedN:  dilatancyCorrection(n60),
		OverburdenCorrectedN: opc,
		MethodUsed:           in.Method,
		Notes:                "N60 per Skempton (1986); dilatancy per Terzaghi and Peck (1967).",
	}, nil
}

// dilatancyCorrection applies the Terzaghi and Peck (1967) correction for
// silty fine sands below the water table when N60 exceeds 15.
func dilatancyCorrection(n60 float64) float64 {
	if n60 <= 15 {
		return n60
	}
	return 15 + 0.5*(n60-15)
}

func overburdenCorrection(method Method, n60, eop float64) (float64, error) {
	switch method {
	case MethodGibbs:
		if eop > 280 {
			return 0, fmt.Errorf("eop %.2f kPa exceeds the 280 kPa limit for Gibbs-Holtz", eop)
		}
		corr := n60 * 350 / (eop + 70)
		// Nc/NR above 2.0 is halved to obtain the design value.
		if corr/n60 > 2.0 {
			return corr / 2, nil
		}
		return corr, nil

	case MethodBazaraa:
		const stdPressure = 71.8
		switch {
		case math.Abs(eop-stdPressure) <= 0.01*stdPressure:
			return n60, nil
		case eop < stdPressure:
			return 4 * n60 / (1 + 0.0418*eop), nil
		default:
			return 4 * n60 / (3.25 + 0.0104*eop), nil
		}

	case MethodPeck:
		if eop < 24 {
			return 0, fmt.Errorf("eop %.2f kPa is below the 24 kPa minimum for Peck", eop)
		}
		return 0.77 * math.Log10(1905/eop) * n60, nil

	case MethodLiao:
		if eop <= 0 {
			return 0, fmt.Errorf("eop must be positive for Liao-Whitman")
		}
		return math.Sqrt(100/eop) * n60, nil

	case MethodSkempton:
		return 2 / (1 + 0.01044*eop) * n60, nil

	default:
		return 0, fmt.Errorf("unsupported overburden correction method %q", method)
	}
}
