package calculation

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// survivorStats reduces survivor payoffs to their sample mean and unbiased
// standard deviation. An empty sample gives a NaN mean (0/0) and a single
// payoff gives a 0/0 variance; both surface as NaN.
func survivorStats(payoffs []float64, runningSum float64) (mean, stddev float64) {
	n := float64(len(payoffs))
	mean = runningSum / n
	if len(payoffs) == 0 {
		return mean, math.NaN()
	}

	var sumSquaredDiff float64
	for _, p := range payoffs {
		d := p - mean
		sumSquaredDiff += float64(d * d)
	}
	stddev = math.Sqrt(sumSquaredDiff / (n - 1))
	return mean, stddev
}

// confidenceQuantile returns z such that P(-z < Z < z) = level.
func confidenceQuantile(level float64) float64 {
	return distuv.UnitNormal.Quantile(1 - (1-level)/2)
}

// confidenceBand returns the discounted standard error of the estimate and
// the two-sided band around price at the requested level.
func confidenceBand(price, stddev float64, survivors int, discount, level float64) (stderr, low, high float64) {
	stderr = stddev / math.Sqrt(float64(survivors)) * discount
	half := confidenceQuantile(level) * stderr
	return stderr, price - half, price + half
}
