package batch

import (
	"testing"

	soil "Stratum/internal/calc/soil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	res, err := Classify(ClassifyBatchInput{Items: []soil.USCSInput{
		{LiquidLimit: 40, PlasticLimit: 20, PlasticityIndex: 20, Fines: 30, Sand: 40, Gravel: 30},
		{LiquidLimit: 45, PlasticLimit: 20, PlasticityIndex: 25, Fines: 80, Sand: 10, Gravel: 10},
	}})
	require.NoError(t, err)
	require.Len(t, res.Results, 2)

	assert.Equal(t, "SC", res.Results[0].USCS)
	assert.Equal(t, "CL", res.Results[1].USCS)
	assert.Equal(t, "A-7-6(15)", res.Results[1].AASHTO)
	assert.Equal(t, 15.0, res.Results[1].GroupIndex)
}

func TestClassifyEmpty(t *testing.T) {
	_, err := Classify(ClassifyBatchInput{})
	assert.Error(t, err)
}

func TestClassifyPropagatesValidation(t *testing.T) {
	_, err := Classify(ClassifyBatchInput{Items: []soil.USCSInput{
		{LiquidLimit: 40, PlasticLimit: 20, PlasticityIndex: 30, Fines: 30, Sand: 40, Gravel: 30},
	}})
	assert.ErrorIs(t, err, soil.ErrPlasticityIndexMismatch)
}
