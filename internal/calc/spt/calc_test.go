package spt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDefaults(t *testing.T) {
	res, err := Calculate(Input{RecordedN: 20})
	require.NoError(t, err)

	// 0.6 * 1.0 * 1.0 * 0.75 * 20 / 0.6
	assert.InDelta(t, 15.0, res.N60, 1e-9)
	assert.InDelta(t, 15.0, res.DilatancyCorrectedN, 1e-9)
	assert.Equal(t, MethodSkempton, res.MethodUsed)
	// Skempton with zero overburden doubles the value.
	assert.InDelta(t, 30.0, res.OverburdenCorrectedN, 1e-9)
}

func TestCalculateFieldFactors(t *testing.T) {
	res, err := Calculate(Input{
		RecordedN:            30,
		HammerEfficiency:     0.7,
		BoreholeDiameterCorr: 1.05,
		SamplerCorr:          1.0,
		RodLengthCorr:        0.85,
		Method:               MethodSkempton,
		EOPKPa:               100,
	})
	require.NoError(t, err)
	assert.InDelta(t, 31.2375, res.N60, 1e-6)
	// N60 above 15 is damped: 15 + 0.5*(N60 - 15).
	assert.InDelta(t, 23.11875, res.DilatancyCorrectedN, 1e-6)
}

func TestCalculateInvalidN(t *testing.T) {
	_, err := Calculate(Input{RecordedN: 0})
	assert.Error(t, err)
}

func TestOverburdenCorrections(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		eop    float64
		want   float64
	}{
		{"skempton", MethodSkempton, 100, 2.0 / (1 + 1.044) * 15},
		{"liao", MethodLiao, 100, 15},
		{"peck", MethodPeck, 100, 14.782813},
		{"bazaraa below pivot", MethodBazaraa, 50, 60.0 / 3.09},
		{"bazaraa at pivot", MethodBazaraa, 71.8, 15},
		{"bazaraa above pivot", MethodBazaraa, 100, 60.0 / 4.29},
		// 15 * 350/170 = 30.88, ratio above 2.0 so the design value halves.
		{"gibbs halved above ratio limit", MethodGibbs, 100, 15.441176},
		{"gibbs within ratio limits", MethodGibbs, 200, 15 * 350.0 / 270.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(Input{RecordedN: 20, Method: tt.method, EOPKPa: tt.eop})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, res.OverburdenCorrectedN, 1e-4)
		})
	}
}

func TestOverburdenCorrectionErrors(t *testing.T) {
	_, err := Calculate(Input{RecordedN: 20, Method: MethodGibbs, EOPKPa: 300})
	assert.ErrorContains(t, err, "280")

	_, err = Calculate(Input{RecordedN: 20, Method: MethodPeck, EOPKPa: 10})
	assert.ErrorContains(t, err, "24")

	_, err = Calculate(Input{RecordedN: 20, Method: MethodLiao, EOPKPa: 0})
	assert.Error(t, err)

	_, err = Calculate(Input{RecordedN: 20, Method: Method("GIBBS-HOLTZ")})
	assert.ErrorContains(t, err, "unsupported")
}
