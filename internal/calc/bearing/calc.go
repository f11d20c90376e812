// Package bearing evaluates Terzaghi bearing capacity factors and the
// ultimate bearing capacity of shallow footings.
package bearing

import (
	"fmt"
	"math"
)

// Method selects the Ngamma formula.
type Method string

const (
	MethodMeyerhof Method = "MEYERHOF"
	MethodHansen   Method = "HANSEN"
)

type FootingShape string

const (
	FootingStrip    FootingShape = "strip"
	FootingSquare   FootingShape = "square"
	FootingCircular FootingShape = "circular"
)

type Input struct {
	CohesionKPa      float64      `json:"cohesion_kpa"`
	FrictionAngleDeg float64      `json:"friction_angle_deg"`
	UnitWeightKNM3   float64      `json:"unit_weight_kn_m3"`
	DepthM           float64      `json:"depth_m"`
	WidthM           float64      `json:"width_m"`
	FootingShape     FootingShape `json:"footing_shape"`
	NgammaMethod     Method       `json:"ngamma_method"`
}

type Result struct {
	Nc                 float64      `json:"nc"`
	Nq                 float64      `json:"nq"`
	Ngamma             float64      `json:"ngamma"`
	UltimateBearingKPa float64      `json:"ultimate_bearing_kpa"`
	FootingShape       FootingShape `json:"footing_shape"`
	MethodUsed         Method       `json:"method_used"`
	Notes              string       `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.FrictionAngleDeg <= 0 || in.FrictionAngleDeg >= 60 {
		return Result{}, fmt.Errorf("friction angle must be in (0, 60) degrees")
	}
	if in.CohesionKPa < 0 || in.UnitWeightKNM3 <= 0 || in.DepthM < 0 || in.WidthM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.FootingShape == "" {
		in.FootingShape = FootingSquare
	}
	if in.NgammaMethod == "" {
		in.NgammaMethod = MethodMeyerhof
	}

	nq := factorNq(in.FrictionAngleDeg)
	nc := factorNc(in.FrictionAngleDeg)
	ngamma, err := factorNgamma(in.FrictionAngleDeg, in.NgammaMethod)
	if err != nil {
		return Result{}, err
	}

	qult, err := ultimateBearing(in, nc, nq, ngamma)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Nc:                 round2(nc),
		Nq:                 round2(nq),
		Ngamma:             round2(ngamma),
		UltimateBearingKPa: round2(qult),
		FootingShape:       in.FootingShape,
		MethodUsed:         in.NgammaMethod,
		Notes:              "Terzaghi general shear failure; no water table or inclination corrections.",
	}, nil
}

// Nq = e^((3pi/2 - phi) tan phi) / (2 cos^2(45 + phi/2))
func factorNq(phiDeg float64) float64 {
	phi := deg2rad(phiDeg)
	num := math.Exp((3*math.Pi/2 - phi) * math.Tan(phi))
	den := 2 * math.Pow(math.Cos(deg2rad(45+phiDeg/2)), 2)
	return num / den
}

// Nc = cot(phi) (Nq - 1)
func factorNc(phiDeg float64) float64 {
	return (factorNq(phiDeg) - 1) / math.Tan(deg2rad(phiDeg))
}

func factorNgamma(phiDeg float64, method Method) (float64, error) {
	nq := factorNq(phiDeg)
	switch method {
	case MethodMeyerhof:
		return (nq - 1) * math.Tan(deg2rad(1.4*phiDeg)), nil
	case MethodHansen:
		return 1.8 * (nq - 1) * math.Tan(deg2rad(phiDeg)), nil
	default:
		return 0, fmt.Errorf("unsupported ngamma method %q", method)
	}
}

func ultimateBearing(in Input, nc, nq, ngamma float64) (float64, error) {
	surcharge := in.UnitWeightKNM3 * in.DepthM * nq
	wedge := in.UnitWeightKNM3 * in.WidthM * ngamma

	switch in.FootingShape {
	case FootingStrip:
		return in.CohesionKPa*nc + surcharge + 0.5*wedge, nil
	case FootingSquare:
		return 1.2*in.CohesionKPa*nc + surcharge + 0.4*wedge, nil
	case FootingCircular:
		return 1.2*in.CohesionKPa*nc + surcharge + 0.3*wedge, nil
	default:
		return 0, fmt.Errorf("unsupported footing shape %q", in.FootingShape)
	}
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
