package signal

import (
	"fmt"

	"TrendBench/internal/calculator"
	"TrendBench/internal/model"
)

// Derive computes short/long trailing moving averages over the price series
// and converts their relationship into per-day signal rows.
//
// The signal is +1 when the short average is above the long, -1 when below,
// 0 when equal. PositionChange is the signal's day-over-day delta shifted
// forward one day (see model.SignalRow), so a crossing on day i-1 drives the
// trade on day i.
//
// No ordering between the windows is enforced; the strategy is only
// meaningful when shortWindow < longWindow, and choosing sensible windows is
// the caller's responsibility.
func Derive(series model.PriceSeries, shortWindow, longWindow int) ([]model.SignalRow, error) {
	if shortWindow <= 0 {
		return nil, fmt.Errorf("%w: short window must be positive, got %d", model.ErrInvalidParameter, shortWindow)
	}
	if longWindow <= 0 {
		return nil, fmt.Errorf("%w: long window must be positive, got %d", model.ErrInvalidParameter, longWindow)
	}

	prices := series.Prices()
	short, err := calculator.TrailingMean(prices, shortWindow)
	if err != nil {
		return nil, err
	}
	long, err := calculator.TrailingMean(prices, longWindow)
	if err != nil {
		return nil, err
	}

	rows := make([]model.SignalRow, len(prices))
	for i := range rows {
		sig := model.SignalNeutral
		switch {
		case short[i] > long[i]:
			sig = model.SignalLong
		case short[i] < long[i]:
			sig = model.SignalShort
		}
		rows[i] = model.SignalRow{
			Day:       i,
			Price:     prices[i],
			ShortMavg: short[i],
			LongMavg:  long[i],
			Signal:    sig,
		}
	}

	// One-day execution lag: day i acts on the delta that completed on
	// day i-1. Days 0 and 1 have no complete prior delta.
	for i := 2; i < len(rows); i++ {
		rows[i].PositionChange = rows[i-1].Signal - rows[i-2].Signal
	}
	return rows, nil
}
