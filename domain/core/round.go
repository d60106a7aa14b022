package core

import (
	"math"
	"sort"
)

// Round2 rounds to 2 decimal places, the fixed precision of every reported
// statistic except the whole-percent blank rate in the full profile.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundWholePct rounds a percentage to the nearest whole percent.
func RoundWholePct(v float64) int {
	return int(math.Round(v))
}

// Quantile computes the p-quantile (0 <= p <= 1) of data using the linear
// interpolation convention: h = p*(n-1), interpolating between the two
// nearest order statistics. The input is not modified.
func Quantile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	h := p * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
