// Package estimate derives soil engineering parameters from corrected
// SPT N-values and index properties using published correlations.
package estimate

import (
	"fmt"
	"math"
)

// Method names the researcher whose correlation is applied.
type Method string

const (
	MethodSkempton Method = "SKEMPTON"
	MethodTerzaghi Method = "TERZAGHI"
	MethodHough    Method = "HOUGH"
	MethodPeck     Method = "PECK"
	MethodKullhawy Method = "KULLHAWY"
	MethodStroud   Method = "STROUD"
)

type UnitWeightInput struct {
	N60 float64 `json:"n60"`
}

type UnitWeightResult struct {
	MoistKNM3     float64 `json:"moist_kn_m3"`
	SaturatedKNM3 float64 `json:"saturated_kn_m3"`
	SubmergedKNM3 float64 `json:"submerged_kn_m3"`
	Notes         string  `json:"notes"`
}

// UnitWeight estimates moist, saturated and submerged unit weights from
// the corrected N-value.
func UnitWeight(in UnitWeightInput) (UnitWeightResult, error) {
	if in.N60 <= 0 {
		return UnitWeightResult{}, fmt.Errorf("invalid N60")
	}
	return UnitWeightResult{
		MoistKNM3:     round2(16.0 + 0.1*in.N60),
		SaturatedKNM3: round2(16.8 + 0.15*in.N60),
		SubmergedKNM3: round2(8.8 + 0.01*in.N60),
		Notes:         "Unit weight correlations with corrected SPT N-value.",
	}, nil
}

type CompressionIndexInput struct {
	LiquidLimit float64 `json:"liquid_limit"`
	VoidRatio   float64 `json:"void_ratio"`
	Method      Method  `json:"method"`
}

type CompressionIndexResult struct {
	CompressionIndex float64 `json:"compression_index"`
	MethodUsed       Method  `json:"method_used"`
	Notes            string  `json:"notes"`
}

// CompressionIndex estimates Cc from the liquid limit (Skempton 1944,
// Terzaghi and Peck 1967) or the in-situ void ratio (Hough 1957).
func CompressionIndex(in CompressionIndexInput) (CompressionIndexResult, error) {
	if in.Method == "" {
		in.Method = MethodSkempton
	}

	var cc float64
	switch in.Method {
	case MethodSkempton:
		cc = 0.007 * (in.LiquidLimit - 10)
	case MethodTerzaghi:
		cc = 0.009 * (in.LiquidLimit - 10)
	case MethodHough:
		cc = 0.29 * (in.VoidRatio - 0.27)
	default:
		return CompressionIndexResult{}, fmt.Errorf("unsupported compression index method %q", in.Method)
	}

	return CompressionIndexResult{
		CompressionIndex: round2(cc),
		MethodUsed:       in.Method,
		Notes:            "Compression index correlation for settlement analysis.",
	}, nil
}

type FrictionAngleInput struct {
	N60            float64 `json:"n60"`
	EOPKPa         float64 `json:"eop_kpa"`
	AtmPressureKPa float64 `json:"atm_pressure_kpa"`
	Method         Method  `json:"method"`
}

type FrictionAngleResult struct {
	FrictionAngleDeg float64 `json:"friction_angle_deg"`
	MethodUsed       Method  `json:"method_used"`
	Notes            string  `json:"notes"`
}

// FrictionAngle estimates the internal angle of friction of cohesionless
// soil per Peck, Hanson and Thornburn (1974) or Kullhawy and Mayne (1990).
func FrictionAngle(in FrictionAngleInput) (FrictionAngleResult, error) {
	if in.N60 <= 0 {
		return FrictionAngleResult{}, fmt.Errorf("invalid N60")
	}
	if in.Method == "" {
		in.Method = MethodPeck
	}

	var phi float64
	switch in.Method {
	case MethodPeck:
		phi = 27.1 + 0.3*in.N60 - 0.00054*in.N60*in.N60
	case MethodKullhawy:
		if in.AtmPressureKPa <= 0 {
			return FrictionAngleResult{}, fmt.Errorf("atmospheric pressure required for Kullhawy-Mayne")
		}
		expr := in.N60 / (12.2 + 20.3*(in.EOPKPa/in.AtmPressureKPa))
		phi = math.Atan(math.Pow(expr, 0.34)) * 180 / math.Pi
	default:
		return FrictionAngleResult{}, fmt.Errorf("unsupported friction angle method %q", in.Method)
	}

	return FrictionAngleResult{
		FrictionAngleDeg: round2(phi),
		MethodUsed:       in.Method,
		Notes:            "Friction angle correlation with corrected SPT N-value.",
	}, nil
}

type ShearStrengthInput struct {
	N60             float64 `json:"n60"`
	EOPKPa          float64 `json:"eop_kpa"`
	PlasticityIndex float64 `json:"plasticity_index"`
	K               float64 `json:"k"`
	Method          Method  `json:"method"`
}

type ShearStrengthResult struct {
	UndrainedShearKPa float64 `json:"undrained_shear_kpa"`
	MethodUsed        Method  `json:"method_used"`
	Notes             string  `json:"notes"`
}

// ShearStrength estimates the undrained shear strength per Stroud (1974)
// or Skempton (1957).
func ShearStrength(in ShearStrengthInput) (ShearStrengthResult, error) {
	if in.Method == "" {
		in.Method = MethodStroud
	}

	var cu float64
	switch in.Method {
	case MethodStroud:
		if in.K == 0 {
			in.K = 3.5
		}
		if in.K < 3.5 || in.K > 6.5 {
			return ShearStrengthResult{}, fmt.Errorf("stroud parameter k should be 3.5 <= k <= 6.5, got %.2f", in.K)
		}
		cu = in.K * in.N60
	case MethodSkempton:
		cu = in.EOPKPa * (0.11 + 0.0037*in.PlasticityIndex)
	default:
		return ShearStrengthResult{}, fmt.Errorf("unsupported shear strength method %q", in.Method)
	}

	return ShearStrengthResult{
		UndrainedShearKPa: round2(cu),
		MethodUsed:        in.Method,
		Notes:             "Undrained shear strength correlation.",
	}, nil
}

type ElasticModulusInput struct {
	N60 float64 `json:"n60"`
}

type ElasticModulusResult struct {
	ElasticModulusKPa float64 `json:"elastic_modulus_kpa"`
	Notes             string  `json:"notes"`
}

// ElasticModulus estimates Es in kPa from the corrected N-value per the
// Bowles correlation.
func ElasticModulus(in ElasticModulusInput) (ElasticModulusResult, error) {
	if in.N60 <= 0 {
		return ElasticModulusResult{}, fmt.Errorf("invalid N60")
	}
	return ElasticModulusResult{
		ElasticModulusKPa: 320 * (in.N60 + 15),
		Notes:             "Elastic modulus correlation for cohesionless soil.",
	}, nil
}

// FoundationDepth returns the Rankine minimum foundation depth for an
// allowable bearing pressure.
func FoundationDepth(allowableBearingKPa, unitWeightKNM3, frictionAngleDeg float64) (float64, error) {
	if allowableBearingKPa <= 0 || unitWeightKNM3 <= 0 {
		return 0, fmt.Errorf("invalid input")
	}
	if frictionAngleDeg <= 0 || frictionAngleDeg >= 90 {
		return 0, fmt.Errorf("friction angle must be in (0, 90) degrees")
	}
	sinPhi := math.Sin(frictionAngleDeg * math.Pi / 180)
	ratio := (1 - sinPhi) / (1 + sinPhi)
	return round2(allowableBearingKPa / unitWeightKNM3 * ratio * ratio), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
