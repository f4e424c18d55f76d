package analytics

import (
	"math"
	"sort"
)

func mean(valores []float64) float64 {
	if len(valores) == 0 {
		return 0
	}
	var soma float64
	for _, v := range valores {
		soma += v
	}
	return soma / float64(len(valores))
}

func median(valores []float64) float64 {
	n := len(valores)
	if n == 0 {
		return 0
	}
	ordenado := make([]float64, n)
	copy(ordenado, valores)
	sort.Float64s(ordenado)
	if n%2 == 1 {
		return ordenado[n/2]
	}
	return (ordenado[n/2-1] + ordenado[n/2]) / 2
}

// mode returns the most frequent value. ok is false when every value is
// distinct, in which case no mode exists.
func mode(valores []float64) (float64, bool) {
	if len(valores) == 0 {
		return 0, false
	}
	freq := make(map[float64]int, len(valores))
	for _, v := range valores {
		freq[v]++
	}
	if len(freq) == len(valores) {
		return 0, false
	}
	var moda float64
	melhor := 0
	for _, v := range valores {
		if freq[v] > melhor {
			melhor = freq[v]
			moda = v
		}
	}
	return moda, true
}

// variance is the sample variance; 0 when fewer than 2 values.
func variance(valores []float64) float64 {
	n := len(valores)
	if n < 2 {
		return 0
	}
	m := mean(valores)
	var soma float64
	for _, v := range valores {
		d := v - m
		soma += d * d
	}
	return soma / float64(n-1)
}

func stdDev(valores []float64) float64 {
	return math.Sqrt(variance(valores))
}

// coefVariation is stddev/mean as a percentage; 0 when fewer than 2 values
// or when the mean is not positive.
func coefVariation(valores []float64) float64 {
	if len(valores) < 2 {
		return 0
	}
	m := mean(valores)
	if m <= 0 {
		return 0
	}
	return (stdDev(valores) / m) * 100
}

// percentile uses linear interpolation between closest ranks, so for
// [10..100] the 50th percentile is 55. valores must be sorted ascending.
func percentile(valores []float64, p float64) float64 {
	n := len(valores)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return valores[0]
	}
	idx := (float64(n) - 1) * p / 100
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return valores[lo]
	}
	frac := idx - float64(lo)
	return valores[lo] + (valores[hi]-valores[lo])*frac
}

// pearson returns the correlation coefficient of two equal-length series.
// ok is false when either series has no variance or the series are empty.
func pearson(x, y []float64) (float64, bool) {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0, false
	}
	mx, my := mean(x), mean(y)
	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, false
	}
	r := sxy / math.Sqrt(sxx*syy)
	if math.IsNaN(r) {
		return 0, false
	}
	return r, true
}

// interpretCorrelation maps a coefficient to the qualitative reading used
// in the statistics report.
func interpretCorrelation(coeficiente float64) string {
	abs := math.Abs(coeficiente)

	var intensidade string
	switch {
	case abs >= 0.9:
		intensidade = "muito forte"
	case abs >= 0.7:
		intensidade = "forte"
	case abs >= 0.5:
		intensidade = "moderada"
	case abs >= 0.3:
		intensidade = "fraca"
	default:
		intensidade = "muito fraca"
	}

	direcao := "negativa"
	if coeficiente > 0 {
		direcao = "positiva"
	}

	return "Correlação " + intensidade + " " + direcao
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
