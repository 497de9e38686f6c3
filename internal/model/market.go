package model

// PricePoint is a single day of the synthetic price path.
type PricePoint struct {
	Day   int
	Price float64
}

// PriceSeries holds the generated price path, indexed by day 0..N-1.
// Immutable once generated.
type PriceSeries []PricePoint

// Prices returns the raw price values in day order.
func (s PriceSeries) Prices() []float64 {
	prices := make([]float64, len(s))
	for i, p := range s {
		prices[i] = p.Price
	}
	return prices
}
