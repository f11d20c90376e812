package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAASHTOGroupIndex(t *testing.T) {
	tests := []struct {
		name                         string
		liquidLimit, plasticityIndex float64
		fines                        float64
		want                         float64
	}{
		{"plastic clayey soil", 45, 25, 80, 15},
		{"fines at clamp threshold", 45, 25, 35, 3},
		{"all terms clamp to zero", 40, 10, 10, 0},
		{"negative raw index floors at zero", 20, 0, 20, 0},
		{"silty soil", 25, 8, 60, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAASHTO(tt.liquidLimit, tt.plasticityIndex, tt.fines)
			assert.Equal(t, tt.want, a.GroupIndex())
		})
	}
}

func TestAASHTOClassify(t *testing.T) {
	tests := []struct {
		name                         string
		liquidLimit, plasticityIndex float64
		fines                        float64
		want                         string
	}{
		{"granular low LL low PI", 25, 5, 20, "A-2-4(0)"},
		{"granular high LL low PI", 45, 8, 20, "A-2-5(0)"},
		{"granular low LL high PI", 30, 15, 30, "A-2-6(1)"},
		{"granular high LL high PI", 45, 25, 35, "A-2-7(3)"},
		{"silt low LL low PI", 25, 8, 60, "A-4(5)"},
		{"silt high LL low PI", 50, 5, 60, "A-5(6)"},
		{"clay low LL high PI", 35, 20, 60, "A-6(9)"},
		{"elastic clay moderate PI", 70, 30, 60, "A-7-5(16)"},
		{"elastic clay high PI", 45, 25, 80, "A-7-6(15)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAASHTO(tt.liquidLimit, tt.plasticityIndex, tt.fines)
			assert.Equal(t, tt.want, a.Classify())
		})
	}
}

func TestAASHTOIdempotent(t *testing.T) {
	a := NewAASHTO(45, 25, 80)
	assert.Equal(t, a.Classify(), a.Classify())
}

func TestClassifyAASHTOInput(t *testing.T) {
	res, err := ClassifyAASHTO(AASHTOInput{LiquidLimit: 45, PlasticityIndex: 25, Fines: 80})
	assert.NoError(t, err)
	assert.Equal(t, "A-7-6(15)", res.Classification)
	assert.Equal(t, 15.0, res.GroupIndex)

	_, err = ClassifyAASHTO(AASHTOInput{LiquidLimit: 45, PlasticityIndex: 25, Fines: 120})
	assert.Error(t, err)
}
