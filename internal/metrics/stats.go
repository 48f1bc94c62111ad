// Package metrics holds the numeric primitives every aggregation is built
// from. Percentages are always recomputed from summed counts here; nothing
// in this module averages percentages across groups of unequal size.
package metrics

import "math"

// Rate returns numerator/denominator as a percentage on the 0–100 scale.
// Returns 0 when denominator is 0.
func Rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// WeightedMean computes Σ(v·w) / Σw. Returns 0 when the weights sum to 0.
// values and weights must have the same length.
func WeightedMean(values, weights []float64) float64 {
	sum, total := 0.0, 0.0
	for i, v := range values {
		sum += v * weights[i]
		total += weights[i]
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return Round(v, 2)
}

// NormalizeToSum100 rounds each value to two decimals and, when the rounded
// values do not add up to exactly 100.00, folds the residual into the
// largest value (the first one on ties). All-zero input is returned as-is.
// The returned residual is the amount that was added.
func NormalizeToSum100(values [4]float64) (normalized [4]float64, residual float64) {
	// work in hundredths so the sum is exact
	var cents [4]int64
	var sum int64
	for i, v := range values {
		cents[i] = int64(math.Round(v * 100))
		sum += cents[i]
	}
	if sum == 0 {
		return normalized, 0
	}

	diff := 10000 - sum
	if diff != 0 {
		maxIdx := 0
		for i := 1; i < len(cents); i++ {
			if cents[i] > cents[maxIdx] {
				maxIdx = i
			}
		}
		cents[maxIdx] += diff
	}

	for i, c := range cents {
		normalized[i] = float64(c) / 100
	}
	return normalized, float64(diff) / 100
}
