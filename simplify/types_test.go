package simplify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarField_ToFloat64ZeroesNaN(t *testing.T) {
	f := NewFloat64Field([]float64{1, math.NaN(), 3})
	got := f.toFloat64()
	assert.Equal(t, []float64{1, 0, 3}, got)
}

func TestScalarField_ToFloat64WidensFloat32(t *testing.T) {
	f := NewFloat32Field([]float32{1.5, 2.5})
	got := f.toFloat64()
	assert.Equal(t, []float64{1.5, 2.5}, got)
}

func TestScalarField_WriteBackNarrowsToFloat32(t *testing.T) {
	dst := make([]float32, 2)
	f := NewFloat32Field(dst)
	f.writeBack([]float64{1.25, 2.75})
	assert.Equal(t, []float32{1.25, 2.75}, dst)
}

func TestScalarField_WriteBackFloat64CopiesDirectly(t *testing.T) {
	dst := make([]float64, 2)
	f := NewFloat64Field(dst)
	f.writeBack([]float64{4, 5})
	assert.Equal(t, []float64{4, 5}, dst)
}

func TestScalarField_Len(t *testing.T) {
	assert.Equal(t, 3, NewFloat64Field([]float64{1, 2, 3}).Len())
	assert.Equal(t, 2, NewFloat32Field([]float32{1, 2}).Len())
}
