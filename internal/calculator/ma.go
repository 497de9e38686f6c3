package calculator

import (
	"fmt"

	"TrendBench/internal/model"
)

// TrailingMean computes, for every day, the simple mean of at most `window`
// prices ending at that day inclusive. Before `window` samples exist the mean
// covers however many prices are available so far (growing window), so the
// first day averages a single price rather than being undefined. Early days
// therefore produce real averages, which affects which days cross.
func TrailingMean(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", model.ErrInvalidParameter, window)
	}
	means := make([]float64, len(prices))
	for i := range prices {
		start := i + 1 - window
		if start < 0 {
			start = 0
		}
		sum := 0.0
		for j := start; j <= i; j++ {
			sum += prices[j]
		}
		means[i] = sum / float64(i+1-start)
	}
	return means, nil
}
