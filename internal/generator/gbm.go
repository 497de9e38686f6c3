package generator

import (
	"fmt"
	"math/rand"

	"TrendBench/internal/model"
)

// Generate produces a synthetic daily price series using a zero-drift,
// geometric-Brownian-style walk with dt=1: each day after the first draws a
// shock from N(0, volatility) and moves the price by prev*shock.
//
// The walk is unbounded. With nonzero volatility a long enough horizon can
// drive the price to zero or below; no floor is applied, since clamping
// would change the model's output.
//
// Determinism: the caller owns the rng, so a fixed seed reproduces the
// series bit for bit. A nil rng is rejected as an invalid parameter.
func Generate(days int, initialPrice, volatility float64, rng *rand.Rand) (model.PriceSeries, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: days must be >= 1, got %d", model.ErrInvalidParameter, days)
	}
	if initialPrice <= 0 {
		return nil, fmt.Errorf("%w: initial price must be positive, got %g", model.ErrInvalidParameter, initialPrice)
	}
	if volatility < 0 {
		return nil, fmt.Errorf("%w: volatility must be non-negative, got %g", model.ErrInvalidParameter, volatility)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: rng must not be nil", model.ErrInvalidParameter)
	}

	series := make(model.PriceSeries, days)
	series[0] = model.PricePoint{Day: 0, Price: initialPrice}
	for i := 1; i < days; i++ {
		prev := series[i-1].Price
		shock := rng.NormFloat64() * volatility
		series[i] = model.PricePoint{Day: i, Price: prev + prev*shock}
	}
	return series, nil
}
