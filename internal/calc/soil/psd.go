package soil

import "fmt"

// PSD holds the particle size distribution of a soil sample. Fines, sand
// and gravel are percentages of total aggregate by mass; d10, d30 and d60
// are grain diameters in mm and are zero when no grading curve exists.
type PSD struct {
	Fines  float64
	Sand   float64
	Gravel float64
	D10    float64
	D30    float64
	D60    float64
}

// NewPSD validates that the three fractions sum to approximately 100%.
func NewPSD(fines, sand, gravel, d10, d30, d60 float64) (PSD, error) {
	total := fines + sand + gravel
	if !approxEqual(total, 100) {
		return PSD{}, fmt.Errorf("%w: fines + sand + gravel = %.2f%%, want 100%%",
			ErrParticleSizeDistribution, total)
	}
	return PSD{Fines: fines, Sand: sand, Gravel: gravel, D10: d10, D30: d30, D60: d60}, nil
}

// HasParticleSizes reports whether a grading curve was supplied.
func (p PSD) HasParticleSizes() bool {
	return p.D10 != 0 && p.D30 != 0 && p.D60 != 0
}

// CurvatureCoefficient returns Cc = d30^2 / (d60 * d10).
func (p PSD) CurvatureCoefficient() (float64, error) {
	if !p.HasParticleSizes() {
		return 0, fmt.Errorf("%w: d10, d30 and d60 are required", ErrUndefinedGrading)
	}
	return round2(p.D30 * p.D30 / (p.D60 * p.D10)), nil
}

// UniformityCoefficient returns Cu = d60 / d10.
func (p PSD) UniformityCoefficient() (float64, error) {
	if !p.HasParticleSizes() {
		return 0, fmt.Errorf("%w: d10, d30 and d60 are required", ErrUndefinedGrading)
	}
	return round2(p.D60 / p.D10), nil
}

// Grade returns WellGraded or PoorlyGraded for the dominant coarse
// fraction (Gravel or Sand). Well graded requires 1 < Cc < 3 together
// with Cu >= 4 for gravel or Cu >= 6 for sand.
func (p PSD) Grade(coarse string) (string, error) {
	cc, err := p.CurvatureCoefficient()
	if err != nil {
		return "", err
	}
	cu, err := p.UniformityCoefficient()
	if err != nil {
		return "", err
	}

	minCu := 6.0
	if coarse == Gravel {
		minCu = 4.0
	}
	if cc > 1 && cc < 3 && cu >= minCu {
		return WellGraded, nil
	}
	return PoorlyGraded, nil
}
