package calculator

import (
	"errors"
	"math"
)

// ErrNoData signals that a usable metric could not be derived from the
// input series. Retrieval failures, short series, and degenerate
// arithmetic all collapse to this one error; callers skip the ticker.
var ErrNoData = errors.New("no usable price data")

// LogReturns computes the natural-log return for each adjacent pair of
// closes. Requires at least 2 closes, all positive.
func LogReturns(closes []float64) ([]float64, error) {
	if len(closes) < 2 {
		return nil, errors.New("need at least 2 closes for returns")
	}
	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return nil, errors.New("non-positive close in series")
		}
		returns[i-1] = math.Log(closes[i] / closes[i-1])
	}
	return returns, nil
}

// SampleStdDev computes the sample standard deviation with Bessel's
// correction (n-1 denominator). Requires at least 2 observations.
func SampleStdDev(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, errors.New("need at least 2 observations for sample stddev")
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	varianceSum := 0.0
	for _, x := range xs {
		varianceSum += (x - mean) * (x - mean)
	}
	return math.Sqrt(varianceSum / float64(len(xs)-1)), nil
}

// AnnualizedVolatility computes the realized volatility of the closing
// series, scaled to a yearly horizon: stddev(log returns) * sqrt(252).
// Needs at least 3 closes (2 returns) under the sample estimator.
func AnnualizedVolatility(closes []float64) (float64, error) {
	returns, err := LogReturns(closes)
	if err != nil {
		return 0, err
	}
	sd, err := SampleStdDev(returns)
	if err != nil {
		return 0, err
	}
	return sd * math.Sqrt(TradingDaysPerYear), nil
}
