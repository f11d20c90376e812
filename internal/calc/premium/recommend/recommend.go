package recommend

import (
	"fmt"

	estimate "Stratum/internal/calc/estimate"
)

type FoundationDepthInput struct {
	AllowableBearingKPa float64 `json:"allowable_bearing_kpa"`
	UnitWeightKNM3      float64 `json:"unit_weight_kn_m3"`
	FrictionAngleDeg    float64 `json:"friction_angle_deg"`
}

type FoundationDepthResult struct {
	RequiredDepthM float64 `json:"required_depth_m"`
	Notes          string  `json:"notes"`
}

// FoundationDepth recommends a minimum embedment depth from the Rankine
// formula.
func FoundationDepth(in FoundationDepthInput) (FoundationDepthResult, error) {
	if in.AllowableBearingKPa <= 0 || in.UnitWeightKNM3 <= 0 {
		return FoundationDepthResult{}, fmt.Errorf("invalid input")
	}
	depth, err := estimate.FoundationDepth(in.AllowableBearingKPa, in.UnitWeightKNM3, in.FrictionAngleDeg)
	if err != nil {
		return FoundationDepthResult{}, err
	}
	return FoundationDepthResult{
		RequiredDepthM: depth,
		Notes:          "Rankine minimum depth; verify against frost depth and local code.",
	}, nil
}
