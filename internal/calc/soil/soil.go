// Package soil implements USCS and AASHTO soil classification from
// particle size distribution and Atterberg limits.
package soil

import (
	"errors"
	"math"
)

// USCS symbol fragments.
const (
	Gravel = "G"
	Sand   = "S"
	Clay   = "C"
	Silt   = "M"

	WellGraded   = "W"
	PoorlyGraded = "P"

	Organic        = "O"
	LowPlasticity  = "L"
	HighPlasticity = "H"
)

var (
	ErrPlasticityIndexMismatch  = errors.New("plasticity index mismatch")
	ErrParticleSizeDistribution = errors.New("invalid particle size distribution")
	ErrUndefinedGrading         = errors.New("undefined grading")
)

// relTolerance is the shared relative tolerance for input validation and
// the hatched-zone check on the plasticity chart.
const relTolerance = 0.01

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// approxEqual compares within relTolerance, with an absolute floor so
// values near zero still compare sanely.
func approxEqual(a, b float64) bool {
	tol := relTolerance * math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= math.Max(tol, 1e-9)
}
