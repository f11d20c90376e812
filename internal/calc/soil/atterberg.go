package soil

import "fmt"

// AtterbergLimits holds the plasticity characteristics of a soil sample.
// All values are water contents in percent. The value is validated at
// construction and never mutated afterwards.
type AtterbergLimits struct {
	LiquidLimit     float64
	PlasticLimit    float64
	PlasticityIndex float64
}

// NewAtterbergLimits validates that the reported plasticity index agrees
// with liquidLimit - plasticLimit. A mismatch is a data-integrity problem
// in the lab record, not something to correct silently.
func NewAtterbergLimits(liquidLimit, plasticLimit, plasticityIndex float64) (AtterbergLimits, error) {
	want := liquidLimit - plasticLimit
	if !approxEqual(want, plasticityIndex) {
		return AtterbergLimits{}, fmt.Errorf("%w: PI should be %.2f not %.2f",
			ErrPlasticityIndexMismatch, want, plasticityIndex)
	}
	return AtterbergLimits{
		LiquidLimit:     liquidLimit,
		PlasticLimit:    plasticLimit,
		PlasticityIndex: plasticityIndex,
	}, nil
}

// ALine returns the A-line value 0.73(LL - 20) on the plasticity chart.
func (a AtterbergLimits) ALine() float64 {
	return round2(0.73 * (a.LiquidLimit - 20))
}

// AboveALine reports whether the sample plots strictly above the A-line.
func (a AtterbergLimits) AboveALine() bool {
	return a.PlasticityIndex > a.ALine()
}

// PlotsInHatchedZone reports whether the sample plots on the A-line
// itself, where the chart is genuinely borderline between clay and silt.
func (a AtterbergLimits) PlotsInHatchedZone() bool {
	return approxEqual(a.PlasticityIndex, a.ALine())
}

// FineSoilSymbol returns Clay when the sample plots above the A-line and
// Silt otherwise. Borderline samples still resolve one way; callers that
// need dual-symbol output must check PlotsInHatchedZone first.
func (a AtterbergLimits) FineSoilSymbol() string {
	if a.AboveALine() {
		return Clay
	}
	return Silt
}
