package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitWeight(t *testing.T) {
	res, err := UnitWeight(UnitWeightInput{N60: 20})
	require.NoError(t, err)
	assert.Equal(t, 18.0, res.MoistKNM3)
	assert.Equal(t, 19.8, res.SaturatedKNM3)
	assert.Equal(t, 9.0, res.SubmergedKNM3)

	_, err = UnitWeight(UnitWeightInput{})
	assert.Error(t, err)
}

func TestCompressionIndex(t *testing.T) {
	tests := []struct {
		name string
		in   CompressionIndexInput
		want float64
	}{
		{"skempton", CompressionIndexInput{LiquidLimit: 40, Method: MethodSkempton}, 0.21},
		{"skempton by default", CompressionIndexInput{LiquidLimit: 40}, 0.21},
		{"terzaghi and peck", CompressionIndexInput{LiquidLimit: 40, Method: MethodTerzaghi}, 0.27},
		{"hough", CompressionIndexInput{VoidRatio: 0.78, Method: MethodHough}, 0.15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CompressionIndex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.CompressionIndex)
		})
	}

	_, err := CompressionIndex(CompressionIndexInput{LiquidLimit: 40, Method: MethodPeck})
	assert.ErrorContains(t, err, "unsupported")
}

func TestFrictionAngle(t *testing.T) {
	res, err := FrictionAngle(FrictionAngleInput{N60: 20, Method: MethodPeck})
	require.NoError(t, err)
	// 27.1 + 0.3*20 - 0.00054*400
	assert.Equal(t, 32.88, res.FrictionAngleDeg)

	res, err = FrictionAngle(FrictionAngleInput{N60: 20, EOPKPa: 100, AtmPressureKPa: 101.325, Method: MethodKullhawy})
	require.NoError(t, err)
	assert.InDelta(t, 40.37, res.FrictionAngleDeg, 0.5)

	_, err = FrictionAngle(FrictionAngleInput{N60: 20, Method: MethodKullhawy})
	assert.ErrorContains(t, err, "atmospheric pressure")

	_, err = FrictionAngle(FrictionAngleInput{N60: 20, Method: MethodStroud})
	assert.ErrorContains(t, err, "unsupported")
}

func TestShearStrength(t *testing.T) {
	res, err := ShearStrength(ShearStrengthInput{N60: 10, Method: MethodStroud})
	require.NoError(t, err)
	assert.Equal(t, 35.0, res.UndrainedShearKPa)

	res, err = ShearStrength(ShearStrengthInput{N60: 10, K: 5, Method: MethodStroud})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.UndrainedShearKPa)

	res, err = ShearStrength(ShearStrengthInput{EOPKPa: 100, PlasticityIndex: 20, Method: MethodSkempton})
	require.NoError(t, err)
	assert.Equal(t, 18.4, res.UndrainedShearKPa)

	_, err = ShearStrength(ShearStrengthInput{N60: 10, K: 10, Method: MethodStroud})
	assert.ErrorContains(t, err, "3.5")

	_, err = ShearStrength(ShearStrengthInput{N60: 10, Method: MethodHough})
	assert.ErrorContains(t, err, "unsupported")
}

func TestElasticModulus(t *testing.T) {
	res, err := ElasticModulus(ElasticModulusInput{N60: 20})
	require.NoError(t, err)
	assert.Equal(t, 11200.0, res.ElasticModulusKPa)

	res, err = ElasticModulus(ElasticModulusInput{N60: 10})
	require.NoError(t, err)
	assert.Equal(t, 8000.0, res.ElasticModulusKPa)

	_, err = ElasticModulus(ElasticModulusInput{})
	assert.Error(t, err)
}

func TestFoundationDepth(t *testing.T) {
	depth, err := FoundationDepth(100, 18, 30)
	require.NoError(t, err)
	// (100/18) * ((1-sin30)/(1+sin30))^2 = 5.556 * (1/3)^2
	assert.Equal(t, 0.62, depth)

	_, err = FoundationDepth(0, 18, 30)
	assert.Error(t, err)
	_, err = FoundationDepth(100, 18, 0)
	assert.Error(t, err)
}
