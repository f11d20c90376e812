package bearing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorsAtPhi30(t *testing.T) {
	res, err := Calculate(Input{
		CohesionKPa:      20,
		FrictionAngleDeg: 30,
		UnitWeightKNM3:   18,
		DepthM:           1,
		WidthM:           1.2,
		FootingShape:     FootingStrip,
		NgammaMethod:     MethodMeyerhof,
	})
	require.NoError(t, err)

	assert.InDelta(t, 22.46, res.Nq, 0.05)
	assert.InDelta(t, 37.16, res.Nc, 0.05)
	assert.InDelta(t, 19.32, res.Ngamma, 0.05)
	// c*Nc + gamma*D*Nq + 0.5*gamma*B*Ngamma
	assert.InDelta(t, 1356.1, res.UltimateBearingKPa, 1.0)
}

func TestNgammaHansen(t *testing.T) {
	res, err := Calculate(Input{
		CohesionKPa:      20,
		FrictionAngleDeg: 30,
		UnitWeightKNM3:   18,
		DepthM:           1,
		WidthM:           1.2,
		NgammaMethod:     MethodHansen,
	})
	require.NoError(t, err)
	assert.InDelta(t, 22.30, res.Ngamma, 0.05)
}

func TestFootingShapes(t *testing.T) {
	base := Input{
		FrictionAngleDeg: 30,
		UnitWeightKNM3:   18,
		DepthM:           1,
		WidthM:           1.2,
		NgammaMethod:     MethodMeyerhof,
	}

	strip := base
	strip.FootingShape = FootingStrip
	square := base
	square.FootingShape = FootingSquare
	circular := base
	circular.FootingShape = FootingCircular

	stripRes, err := Calculate(strip)
	require.NoError(t, err)
	squareRes, err := Calculate(square)
	require.NoError(t, err)
	circularRes, err := Calculate(circular)
	require.NoError(t, err)

	// With zero cohesion only the wedge coefficient differs: 0.5 / 0.4 / 0.3.
	assert.Greater(t, stripRes.UltimateBearingKPa, squareRes.UltimateBearingKPa)
	assert.Greater(t, squareRes.UltimateBearingKPa, circularRes.UltimateBearingKPa)
	assert.InDelta(t, 571.1, squareRes.UltimateBearingKPa, 1.0)
}

func TestCalculateDefaults(t *testing.T) {
	res, err := Calculate(Input{
		CohesionKPa:      20,
		FrictionAngleDeg: 30,
		UnitWeightKNM3:   18,
		DepthM:           1,
		WidthM:           1.2,
	})
	require.NoError(t, err)
	assert.Equal(t, FootingSquare, res.FootingShape)
	assert.Equal(t, MethodMeyerhof, res.MethodUsed)
}

func TestCalculateErrors(t *testing.T) {
	valid := Input{CohesionKPa: 20, FrictionAngleDeg: 30, UnitWeightKNM3: 18, DepthM: 1, WidthM: 1.2}

	in := valid
	in.FrictionAngleDeg = 0
	_, err := Calculate(in)
	assert.ErrorContains(t, err, "friction angle")

	in = valid
	in.WidthM = 0
	_, err = Calculate(in)
	assert.Error(t, err)

	in = valid
	in.NgammaMethod = Method("VESIC")
	_, err = Calculate(in)
	assert.ErrorContains(t, err, "unsupported ngamma method")

	in = valid
	in.FootingShape = FootingShape("mat")
	_, err = Calculate(in)
	assert.ErrorContains(t, err, "unsupported footing shape")
}
