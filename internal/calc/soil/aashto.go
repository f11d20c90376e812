package soil

import (
	"fmt"
	"math"
)

// AASHTO classifies a soil sample under the AASHTO highway classification
// system from liquid limit, plasticity index and fines content.
type AASHTO struct {
	LiquidLimit     float64
	PlasticityIndex float64
	Fines           float64
}

func NewAASHTO(liquidLimit, plasticityIndex, fines float64) AASHTO {
	return AASHTO{LiquidLimit: liquidLimit, PlasticityIndex: plasticityIndex, Fines: fines}
}

// GroupIndex returns the AASHTO group index
//
//	GI = (F-35)[0.2 + 0.005(LL-40)] + 0.01(F-15)(PI-10)
//
// with each term clamped to its tabulated range, rounded to a whole
// number and floored at zero.
func (a AASHTO) GroupIndex() float64 {
	x1 := clamp(a.Fines-35, 0, 40)
	x2 := clamp(a.LiquidLimit-40, 0, 20)
	x3 := clamp(a.Fines-15, 0, 40)
	x4 := clamp(a.PlasticityIndex-10, 0, 20)

	gi := x1*(0.2+0.005*x2) + 0.01*x3*x4
	if gi <= 0 {
		return 0
	}
	return math.Round(gi)
}

// Classify returns the AASHTO group, e.g. "A-6(3)", with the group index
// appended in parentheses.
func (a AASHTO) Classify() string {
	var grp string

	if a.Fines <= 35 {
		// Granular materials: A-2 subgroups.
		if a.LiquidLimit <= 40 {
			if a.PlasticityIndex <= 10 {
				grp = "A-2-4"
			} else {
				grp = "A-2-6"
			}
		} else {
			if a.PlasticityIndex <= 10 {
				grp = "A-2-5"
			} else {
				grp = "A-2-7"
			}
		}
	} else {
		// Silt-clay materials: A-4 to A-7.
		if a.LiquidLimit <= 40 {
			if a.PlasticityIndex <= 10 {
				grp = "A-4"
			} else {
				grp = "A-6"
			}
		} else {
			if a.PlasticityIndex <= 10 {
				grp = "A-5"
			} else if a.PlasticityIndex <= a.LiquidLimit-30 {
				grp = "A-7-5"
			} else {
				grp = "A-7-6"
			}
		}
	}

	return fmt.Sprintf("%s(%.0f)", grp, a.GroupIndex())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
