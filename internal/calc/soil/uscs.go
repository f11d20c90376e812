package soil

import "fmt"

// USCS classifies a soil sample under the Unified Soil Classification
// System from its Atterberg limits and particle size distribution. The
// organic flag selects O-prefixed symbols on the fine-grained side.
type USCS struct {
	atterberg AtterbergLimits
	psd       PSD
	organic   bool
}

// NewUSCS composes two already-validated value objects into a classifier.
func NewUSCS(atterberg AtterbergLimits, psd PSD, organic bool) USCS {
	return USCS{atterberg: atterberg, psd: psd, organic: organic}
}

// Classify returns the USCS group symbol. When no grading curve is
// available in the 5-12% fines band or below 5% fines, the standard is
// multi-valued and the result is a disjunctive string listing every
// possible symbol; that is a valid answer, not an error.
func (c USCS) Classify() (string, error) {
	if c.psd.Fines < 50 {
		if c.psd.Gravel > c.psd.Sand {
			return c.classifyCoarse(Gravel)
		}
		return c.classifyCoarse(Sand)
	}
	return c.classifyFine(), nil
}

func (c USCS) classifyCoarse(coarse string) (string, error) {
	switch {
	case c.psd.Fines > 12:
		switch {
		case c.atterberg.PlotsInHatchedZone():
			return coarse + Silt + "-" + coarse + Clay, nil
		case c.atterberg.AboveALine():
			return coarse + Clay, nil
		default:
			return coarse + Silt, nil
		}

	case c.psd.Fines >= 5:
		// Dual symbol from graduation and the plasticity chart.
		if c.psd.HasParticleSizes() {
			grade, err := c.psd.Grade(coarse)
			if err != nil {
				return "", err
			}
			return coarse + grade + "-" + coarse + c.atterberg.FineSoilSymbol(), nil
		}
		return fmt.Sprintf("%[1]s%[2]s-%[1]s%[4]s,%[1]s%[3]s-%[1]s%[4]s,%[1]s%[2]s-%[1]s%[5]s,%[1]s%[3]s-%[1]s%[5]s",
			coarse, WellGraded, PoorlyGraded, Silt, Clay), nil

	default: // less than 5% fines
		if c.psd.HasParticleSizes() {
			grade, err := c.psd.Grade(coarse)
			if err != nil {
				return "", err
			}
			return coarse + grade, nil
		}
		return coarse + WellGraded + " or " + coarse + PoorlyGraded, nil
	}
}

func (c USCS) classifyFine() string {
	al := c.atterberg

	if al.LiquidLimit < 50 {
		switch {
		case al.AboveALine() && al.PlasticityIndex > 7:
			return Clay + LowPlasticity
		case !al.AboveALine() || al.PlasticityIndex < 4:
			if c.organic {
				return Organic + LowPlasticity
			}
			return Silt + LowPlasticity
		default:
			// 4 <= PI <= 7 close to the A-line: hatched area of the chart.
			return Clay + LowPlasticity + "-" + Silt + LowPlasticity
		}
	}

	if al.AboveALine() {
		return Clay + HighPlasticity
	}
	if c.organic {
		return Organic + HighPlasticity
	}
	return Silt + HighPlasticity
}
