package autodesign

import (
	"testing"

	bearing "Stratum/internal/calc/bearing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFooting(t *testing.T) {
	in := FootingAutoInput{
		LoadKN:           500,
		CohesionKPa:      10,
		FrictionAngleDeg: 30,
		UnitWeightKNM3:   18,
		DepthM:           1,
		SafetyFactor:     3,
	}
	res, err := Footing(in)
	require.NoError(t, err)
	require.Greater(t, res.WidthM, 0.0)

	// The selected width carries the load.
	assert.LessOrEqual(t, res.AppliedPressureKPa, res.AllowableBearingKPa)

	// One step narrower does not.
	narrower := res.WidthM - 0.1
	if narrower > 0 {
		b, err := bearing.Calculate(bearing.Input{
			CohesionKPa:      in.CohesionKPa,
			FrictionAngleDeg: in.FrictionAngleDeg,
			UnitWeightKNM3:   in.UnitWeightKNM3,
			DepthM:           in.DepthM,
			WidthM:           narrower,
			FootingShape:     bearing.FootingSquare,
			NgammaMethod:     bearing.MethodMeyerhof,
		})
		require.NoError(t, err)
		assert.Greater(t, in.LoadKN/(narrower*narrower), b.UltimateBearingKPa/in.SafetyFactor)
	}
}

func TestFootingInvalidLoad(t *testing.T) {
	_, err := Footing(FootingAutoInput{})
	assert.Error(t, err)
}

func TestFootingInfeasible(t *testing.T) {
	_, err := Footing(FootingAutoInput{
		LoadKN:           1e9,
		CohesionKPa:      1,
		FrictionAngleDeg: 5,
		UnitWeightKNM3:   16,
		DepthM:           0.5,
		SafetyFactor:     3,
	})
	assert.ErrorContains(t, err, "no feasible width")
}
