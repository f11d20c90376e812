package autodesign

import (
	"fmt"

	bearing "Stratum/internal/calc/bearing"
)

type FootingAutoInput struct {
	LoadKN           float64        `json:"load_kn"`
	CohesionKPa      float64        `json:"cohesion_kpa"`
	FrictionAngleDeg float64        `json:"friction_angle_deg"`
	UnitWeightKNM3   float64        `json:"unit_weight_kn_m3"`
	DepthM           float64        `json:"depth_m"`
	SafetyFactor     float64        `json:"safety_factor"`
	NgammaMethod     bearing.Method `json:"ngamma_method"`
}

type FootingAutoResult struct {
	WidthM              float64 `json:"width_m"`
	AllowableBearingKPa float64 `json:"allowable_bearing_kpa"`
	AppliedPressureKPa  float64 `json:"applied_pressure_kpa"`
	Notes               string  `json:"notes"`
}

const (
	widthStepM = 0.1
	maxWidthM  = 10.0
)

// Footing selects the smallest square footing width whose allowable
// bearing capacity (qult over the safety factor) carries the column load.
func Footing(in FootingAutoInput) (FootingAutoResult, error) {
	if in.LoadKN <= 0 {
		return FootingAutoResult{}, fmt.Errorf("invalid load")
	}
	if in.SafetyFactor <= 0 {
		in.SafetyFactor = 3.0
	}

	for width := widthStepM; width <= maxWidthM+1e-9; width += widthStepM {
		res, err := bearing.Calculate(bearing.Input{
			CohesionKPa:      in.CohesionKPa,
			FrictionAngleDeg: in.FrictionAngleDeg,
			UnitWeightKNM3:   in.UnitWeightKNM3,
			DepthM:           in.DepthM,
			WidthM:           width,
			FootingShape:     bearing.FootingSquare,
			NgammaMethod:     in.NgammaMethod,
		})
		if err != nil {
			return FootingAutoResult{}, err
		}
		allowable := res.UltimateBearingKPa / in.SafetyFactor
		applied := in.LoadKN / (width * width)
		if applied <= allowable {
			return FootingAutoResult{
				WidthM:              width,
				AllowableBearingKPa: allowable,
				AppliedPressureKPa:  applied,
				Notes:               "Smallest square footing satisfying gross allowable bearing.",
			}, nil
		}
	}
	return FootingAutoResult{}, fmt.Errorf("no feasible width up to %.1f m", maxWidthM)
}
