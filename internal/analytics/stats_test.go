package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile_LinearInterpolation(t *testing.T) {
	valores := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	assert.Equal(t, 55.0, percentile(valores, 50))
	assert.Equal(t, 10.0, percentile(valores, 0))
	assert.Equal(t, 100.0, percentile(valores, 100))
	assert.InDelta(t, 99.1, percentile(valores, 99), 0.0001)
}

func TestPercentile_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, percentile(nil, 50))
	assert.Equal(t, 42.0, percentile([]float64{42}, 90))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 30.0, median([]float64{10, 30, 50}))
	assert.Equal(t, 25.0, median([]float64{10, 20, 30, 40}))
	assert.Equal(t, 0.0, median(nil))
}

func TestMode(t *testing.T) {
	moda, ok := mode([]float64{1, 2, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 2.0, moda)

	_, ok = mode([]float64{1, 2, 3})
	assert.False(t, ok)

	_, ok = mode(nil)
	assert.False(t, ok)
}

func TestVarianceAndStdDev_SampleSemantics(t *testing.T) {
	// Sample variance of {2,4,4,4,5,5,7,9} is 32/7.
	valores := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 32.0/7.0, variance(valores), 0.0001)

	assert.Equal(t, 0.0, variance([]float64{5}))
	assert.Equal(t, 0.0, stdDev([]float64{5}))
}

func TestCoefVariation_FewerThanTwoValuesIsZero(t *testing.T) {
	assert.Equal(t, 0.0, coefVariation(nil))
	assert.Equal(t, 0.0, coefVariation([]float64{100}))
	assert.Greater(t, coefVariation([]float64{100, 200, 300}), 0.0)
}

func TestPearson(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	r, ok := pearson(x, []float64{2, 4, 6, 8, 10})
	assert.True(t, ok)
	assert.InDelta(t, 1.0, r, 0.0001)

	r, ok = pearson(x, []float64{10, 8, 6, 4, 2})
	assert.True(t, ok)
	assert.InDelta(t, -1.0, r, 0.0001)

	_, ok = pearson(x, []float64{3, 3, 3, 3, 3})
	assert.False(t, ok)

	_, ok = pearson(nil, nil)
	assert.False(t, ok)
}

func TestInterpretCorrelation(t *testing.T) {
	assert.Equal(t, "Correlação muito forte positiva", interpretCorrelation(0.95))
	assert.Equal(t, "Correlação forte negativa", interpretCorrelation(-0.75))
	assert.Equal(t, "Correlação moderada positiva", interpretCorrelation(0.55))
	assert.Equal(t, "Correlação fraca negativa", interpretCorrelation(-0.35))
	assert.Equal(t, "Correlação muito fraca negativa", interpretCorrelation(-0.1))
}
